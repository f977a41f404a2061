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

// CategoryStore manages categories in the database. Slugs are guarded by a
// UNIQUE constraint; a violation surfaces as catalog.ErrConflict.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, slug, display_order, image_url, created_at, updated_at`

// scanCategory scans a row into a Category struct.
func scanCategory(sc scanner) (models.Category, error) {
	var c models.Category
	err := sc.Scan(&c.ID, &c.Name, &c.Slug, &c.DisplayOrder, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// List returns categories ordered by display_order, then id.
func (s *CategoryStore) List(ctx context.Context, f catalog.CategoryFilter) ([]models.Category, error) {
	var q query
	stmt := `SELECT ` + categoryColumns + ` FROM categories ORDER BY display_order, id` + q.page(f.Page)
	rows, err := s.db.QueryContext(ctx, stmt, q.args...)
	if err != nil {
		return nil, wrap("list categories", err)
	}
	defer rows.Close()

	items := []models.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// Get retrieves a category by id.
func (s *CategoryStore) Get(ctx context.Context, id int64) (models.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id))
	return c, wrap("find category by id", err)
}

// GetBySlug retrieves a category by its slug.
func (s *CategoryStore) GetBySlug(ctx context.Context, slug string) (models.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx, `SELECT `+categoryColumns+` FROM categories WHERE slug = $1`, slug))
	return c, wrap("find category by slug", err)
}

// Create inserts a new category and returns it.
func (s *CategoryStore) Create(ctx context.Context, c models.Category) (models.Category, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO categories (name, slug, display_order, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.DisplayOrder, c.ImageURL, c.CreatedAt, c.UpdatedAt,
	)
	created, err := scanCategory(row)
	return created, wrap("create category", err)
}

// Update modifies an existing category. ClearImageURL sets image_url to NULL.
func (s *CategoryStore) Update(ctx context.Context, id int64, patch models.CategoryPatch) (models.Category, error) {
	var q query
	set := setList{q: &q}
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Slug != nil {
		set.add("slug", *patch.Slug)
	}
	if patch.DisplayOrder != nil {
		set.add("display_order", *patch.DisplayOrder)
	}
	switch {
	case patch.ImageURL != nil:
		set.add("image_url", *patch.ImageURL)
	case patch.ClearImageURL:
		set.add("image_url", nil)
	}
	set.add("updated_at", patch.UpdatedAt)

	stmt := `UPDATE categories SET ` + set.String() + ` WHERE id = ` + q.bind(id) + ` RETURNING ` + categoryColumns
	row := s.db.QueryRowContext(ctx, stmt, q.args...)
	c, err := scanCategory(row)
	return c, wrap("update category", err)
}

// Delete removes a category by id and returns it.
func (s *CategoryStore) Delete(ctx context.Context, id int64) (models.Category, error) {
	c, err := scanCategory(s.db.QueryRowContext(ctx, `DELETE FROM categories WHERE id = $1 RETURNING `+categoryColumns, id))
	return c, wrap("delete category", err)
}
