// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"giftshop/internal/catalog"
	"giftshop/internal/models"
)

// ProductStore manages products in the database.
type ProductStore struct {
	db *sql.DB
}

// NewProductStore returns a new ProductStore.
func NewProductStore(db *sql.DB) *ProductStore {
	return &ProductStore{db: db}
}

const productColumns = `id, name, description, price, category, image, created_at, updated_at`

func scanProduct(sc scanner) (models.Product, error) {
	var p models.Product
	err := sc.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// List returns products newest first, filtered by category tag and a
// case-insensitive search over name and description.
func (s *ProductStore) List(ctx context.Context, f catalog.ProductFilter) ([]models.Product, error) {
	var q query
	if f.Category != "" {
		q.where("category = " + q.bind(f.Category))
	}
	if f.Search != "" {
		p := q.bind(likePattern(f.Search))
		q.where("(name ILIKE " + p + " OR description ILIKE " + p + ")")
	}
	sqlText := `SELECT ` + productColumns + ` FROM products` + q.whereClause() +
		` ORDER BY created_at DESC, id DESC` + q.page(f.Page)

	rows, err := s.db.QueryContext(ctx, sqlText, q.args...)
	if err != nil {
		return nil, wrap("list products", err)
	}
	defer rows.Close()

	items := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// Get retrieves a product by id.
func (s *ProductStore) Get(ctx context.Context, id int64) (models.Product, error) {
	p, err := scanProduct(s.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	return p, wrap("get product", err)
}

// Create inserts p and returns the stored row.
func (s *ProductStore) Create(ctx context.Context, p models.Product) (models.Product, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, category, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+productColumns,
		p.Name, p.Description, p.Price, p.Category, p.Image, p.CreatedAt, p.UpdatedAt,
	)
	created, err := scanProduct(row)
	return created, wrap("create product", err)
}

// Update applies the non-nil fields of patch.
func (s *ProductStore) Update(ctx context.Context, id int64, patch models.ProductPatch) (models.Product, error) {
	var q query
	set := setList{q: &q}
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.Price != nil {
		set.add("price", *patch.Price)
	}
	if patch.Category != nil {
		set.add("category", *patch.Category)
	}
	if patch.Image != nil {
		set.add("image", *patch.Image)
	}
	set.add("updated_at", patch.UpdatedAt)

	stmt := `UPDATE products SET ` + set.String() + ` WHERE id = ` + q.bind(id) + ` RETURNING ` + productColumns
	row := s.db.QueryRowContext(ctx, stmt, q.args...)
	p, err := scanProduct(row)
	return p, wrap("update product", err)
}

// Delete removes a product and returns the deleted row.
func (s *ProductStore) Delete(ctx context.Context, id int64) (models.Product, error) {
	p, err := scanProduct(s.db.QueryRowContext(ctx, `DELETE FROM products WHERE id = $1 RETURNING `+productColumns, id))
	return p, wrap("delete product", err)
}
