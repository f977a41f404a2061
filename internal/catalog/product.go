// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"strings"

	"giftshop/internal/models"
)

const defaultProductLimit = 50

// allCategories is the storefront's "no category filter" value.
const allCategories = "all"

func productNotFound() *Error {
	return NotFound("PRODUCT_NOT_FOUND", "product not found")
}

// ListProducts returns products newest first.
func (s *Service) ListProducts(ctx context.Context, f ProductFilter) (_ []models.Product, err error) {
	ctx, end := s.startSpan(ctx, "ListProducts")
	defer end(&err)

	f.Category = strings.TrimSpace(f.Category)
	if strings.EqualFold(f.Category, allCategories) {
		f.Category = ""
	}
	f.Search = strings.TrimSpace(f.Search)
	f.Page = f.Page.withDefault(defaultProductLimit)

	products, rerr := s.products.List(ctx, f)
	if rerr != nil {
		return nil, s.internal(ctx, "list products", rerr)
	}
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, id int64) (_ models.Product, err error) {
	ctx, end := s.startSpan(ctx, "GetProduct")
	defer end(&err)

	p, rerr := s.products.Get(ctx, id)
	if rerr != nil {
		return models.Product{}, s.repoError(ctx, "get product", rerr, productNotFound())
	}
	return p, nil
}

func (s *Service) CreateProduct(ctx context.Context, in CreateProductInput) (_ models.Product, err error) {
	ctx, end := s.startSpan(ctx, "CreateProduct")
	defer end(&err)

	in = normalizeCreateProduct(in)
	if verr := validateCreateProduct(in); verr != nil {
		return models.Product{}, verr
	}

	now := s.now()
	p, rerr := s.products.Create(ctx, models.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Image:       in.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if rerr != nil {
		return models.Product{}, s.internal(ctx, "create product", rerr)
	}
	return p, nil
}

// UpdateProduct applies the fields present in in and refreshes updatedAt.
func (s *Service) UpdateProduct(ctx context.Context, id int64, in UpdateProductInput) (_ models.Product, err error) {
	ctx, end := s.startSpan(ctx, "UpdateProduct")
	defer end(&err)

	in = normalizeUpdateProduct(in)
	if verr := validateUpdateProduct(in); verr != nil {
		return models.Product{}, verr
	}

	patch := models.ProductPatch{UpdatedAt: s.now()}
	if in.Name.Present() {
		patch.Name = &in.Name.Value
	}
	if in.Description.Present() {
		patch.Description = &in.Description.Value
	}
	if in.Price.Present() {
		patch.Price = &in.Price.Value
	}
	if in.Category.Present() {
		patch.Category = &in.Category.Value
	}
	if in.Image.Present() {
		patch.Image = &in.Image.Value
	}

	p, rerr := s.products.Update(ctx, id, patch)
	if rerr != nil {
		return models.Product{}, s.repoError(ctx, "update product", rerr, productNotFound())
	}
	return p, nil
}

// DeleteProduct removes the product and returns it.
func (s *Service) DeleteProduct(ctx context.Context, id int64) (_ models.Product, err error) {
	ctx, end := s.startSpan(ctx, "DeleteProduct")
	defer end(&err)

	p, rerr := s.products.Delete(ctx, id)
	if rerr != nil {
		return models.Product{}, s.repoError(ctx, "delete product", rerr, productNotFound())
	}
	return p, nil
}
