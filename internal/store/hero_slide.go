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

// HeroSlideStore manages homepage carousel slides.
type HeroSlideStore struct {
	db *sql.DB
}

// NewHeroSlideStore returns a new HeroSlideStore.
func NewHeroSlideStore(db *sql.DB) *HeroSlideStore {
	return &HeroSlideStore{db: db}
}

const heroSlideColumns = `id, title, subtitle, description, image, button_text, button_link,
	display_order, is_active, created_at, updated_at`

func scanHeroSlide(sc scanner) (models.HeroSlide, error) {
	var h models.HeroSlide
	err := sc.Scan(
		&h.ID, &h.Title, &h.Subtitle, &h.Description, &h.Image, &h.ButtonText, &h.ButtonLink,
		&h.DisplayOrder, &h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// List returns slides ordered by display_order, then id.
func (s *HeroSlideStore) List(ctx context.Context, f catalog.HeroSlideFilter) ([]models.HeroSlide, error) {
	var q query
	if f.ActiveOnly {
		q.where("is_active")
	}
	stmt := `SELECT ` + heroSlideColumns + ` FROM hero_slides` + q.whereClause() + ` ORDER BY display_order, id` + q.page(f.Page)
	rows, err := s.db.QueryContext(ctx, stmt, q.args...)
	if err != nil {
		return nil, wrap("list hero slides", err)
	}
	defer rows.Close()

	items := []models.HeroSlide{}
	for rows.Next() {
		h, err := scanHeroSlide(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hero slide: %w", err)
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

func (s *HeroSlideStore) Get(ctx context.Context, id int64) (models.HeroSlide, error) {
	h, err := scanHeroSlide(s.db.QueryRowContext(ctx, `SELECT `+heroSlideColumns+` FROM hero_slides WHERE id = $1`, id))
	return h, wrap("get hero slide", err)
}

func (s *HeroSlideStore) Create(ctx context.Context, h models.HeroSlide) (models.HeroSlide, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO hero_slides (title, subtitle, description, image, button_text, button_link,
		                         display_order, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+heroSlideColumns,
		h.Title, h.Subtitle, h.Description, h.Image, h.ButtonText, h.ButtonLink,
		h.DisplayOrder, h.IsActive, h.CreatedAt, h.UpdatedAt,
	)
	created, err := scanHeroSlide(row)
	return created, wrap("create hero slide", err)
}

func (s *HeroSlideStore) Update(ctx context.Context, id int64, patch models.HeroSlidePatch) (models.HeroSlide, error) {
	var q query
	set := setList{q: &q}
	if patch.Title != nil {
		set.add("title", *patch.Title)
	}
	if patch.Subtitle != nil {
		set.add("subtitle", *patch.Subtitle)
	}
	if patch.Description != nil {
		set.add("description", *patch.Description)
	}
	if patch.Image != nil {
		set.add("image", *patch.Image)
	}
	if patch.ButtonText != nil {
		set.add("button_text", *patch.ButtonText)
	}
	if patch.ButtonLink != nil {
		set.add("button_link", *patch.ButtonLink)
	}
	if patch.DisplayOrder != nil {
		set.add("display_order", *patch.DisplayOrder)
	}
	if patch.IsActive != nil {
		set.add("is_active", *patch.IsActive)
	}
	set.add("updated_at", patch.UpdatedAt)

	stmt := `UPDATE hero_slides SET ` + set.String() + ` WHERE id = ` + q.bind(id) + ` RETURNING ` + heroSlideColumns
	row := s.db.QueryRowContext(ctx, stmt, q.args...)
	h, err := scanHeroSlide(row)
	return h, wrap("update hero slide", err)
}

func (s *HeroSlideStore) Delete(ctx context.Context, id int64) (models.HeroSlide, error) {
	h, err := scanHeroSlide(s.db.QueryRowContext(ctx, `DELETE FROM hero_slides WHERE id = $1 RETURNING `+heroSlideColumns, id))
	return h, wrap("delete hero slide", err)
}
