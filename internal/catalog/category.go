// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"errors"

	"giftshop/internal/models"
	"giftshop/internal/slug"
)

const defaultCategoryLimit = 100

func categoryNotFound() *Error {
	return NotFound("CATEGORY_NOT_FOUND", "category not found")
}

// ListCategories returns categories by displayOrder ascending.
func (s *Service) ListCategories(ctx context.Context, f CategoryFilter) (_ []models.Category, err error) {
	ctx, end := s.startSpan(ctx, "ListCategories")
	defer end(&err)

	f.Page = f.Page.withDefault(defaultCategoryLimit)
	cats, rerr := s.categories.List(ctx, f)
	if rerr != nil {
		return nil, s.internal(ctx, "list categories", rerr)
	}
	return cats, nil
}

func (s *Service) GetCategory(ctx context.Context, id int64) (_ models.Category, err error) {
	ctx, end := s.startSpan(ctx, "GetCategory")
	defer end(&err)

	c, rerr := s.categories.Get(ctx, id)
	if rerr != nil {
		return models.Category{}, s.repoError(ctx, "get category", rerr, categoryNotFound())
	}
	return c, nil
}

// CreateCategory rejects a slug already used by another category with
// DUPLICATE_SLUG, including when a concurrent insert wins the race.
func (s *Service) CreateCategory(ctx context.Context, in CreateCategoryInput) (_ models.Category, err error) {
	ctx, end := s.startSpan(ctx, "CreateCategory")
	defer end(&err)

	in = normalizeCreateCategory(in)
	if verr := validateCreateCategory(in); verr != nil {
		return models.Category{}, verr
	}
	if gerr := s.ensureSlugAvailable(ctx, in.Slug, 0); gerr != nil {
		return models.Category{}, gerr
	}

	now := s.now()
	c, rerr := s.categories.Create(ctx, models.Category{
		Name:         in.Name,
		Slug:         in.Slug,
		DisplayOrder: *in.DisplayOrder,
		ImageURL:     in.ImageURL,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(rerr, ErrConflict) {
		return models.Category{}, duplicateSlug()
	}
	if rerr != nil {
		return models.Category{}, s.internal(ctx, "create category", rerr)
	}
	return c, nil
}

// UpdateCategory checks existence first, then the payload, then slug
// uniqueness when the slug actually changes.
func (s *Service) UpdateCategory(ctx context.Context, id int64, in UpdateCategoryInput) (_ models.Category, err error) {
	ctx, end := s.startSpan(ctx, "UpdateCategory")
	defer end(&err)

	current, rerr := s.categories.Get(ctx, id)
	if rerr != nil {
		return models.Category{}, s.repoError(ctx, "get category", rerr, categoryNotFound())
	}

	in = normalizeUpdateCategory(in)
	if verr := validateUpdateCategory(in); verr != nil {
		return models.Category{}, verr
	}
	if in.Slug.Present() && in.Slug.Value != current.Slug {
		if gerr := s.ensureSlugAvailable(ctx, in.Slug.Value, id); gerr != nil {
			return models.Category{}, gerr
		}
	}

	patch := models.CategoryPatch{UpdatedAt: s.now()}
	if in.Name.Present() {
		patch.Name = &in.Name.Value
	}
	if in.Slug.Present() {
		patch.Slug = &in.Slug.Value
	}
	if in.DisplayOrder.Present() {
		patch.DisplayOrder = &in.DisplayOrder.Value
	}
	switch {
	case in.ImageURL.Present():
		patch.ImageURL = &in.ImageURL.Value
	case in.ImageURL.Null:
		patch.ClearImageURL = true
	}

	c, rerr := s.categories.Update(ctx, id, patch)
	if errors.Is(rerr, ErrConflict) {
		return models.Category{}, duplicateSlug()
	}
	if rerr != nil {
		return models.Category{}, s.repoError(ctx, "update category", rerr, categoryNotFound())
	}
	return c, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) (_ models.Category, err error) {
	ctx, end := s.startSpan(ctx, "DeleteCategory")
	defer end(&err)

	c, rerr := s.categories.Delete(ctx, id)
	if rerr != nil {
		return models.Category{}, s.repoError(ctx, "delete category", rerr, categoryNotFound())
	}
	return c, nil
}

// SuggestSlug derives a URL slug from a category name for the admin form.
func (s *Service) SuggestSlug(name string) string {
	return slug.Generate(name)
}
