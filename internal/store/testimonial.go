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

// TestimonialStore manages customer testimonials.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore returns a new TestimonialStore.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

const testimonialColumns = `id, name, role, content, rating, image, is_featured, created_at`

func scanTestimonial(sc scanner) (models.Testimonial, error) {
	var t models.Testimonial
	err := sc.Scan(&t.ID, &t.Name, &t.Role, &t.Content, &t.Rating, &t.Image, &t.IsFeatured, &t.CreatedAt)
	return t, err
}

func (s *TestimonialStore) List(ctx context.Context, f catalog.TestimonialFilter) ([]models.Testimonial, error) {
	var q query
	if f.FeaturedOnly {
		q.where("is_featured")
	}
	stmt := `SELECT ` + testimonialColumns + ` FROM testimonials` + q.whereClause() + ` ORDER BY created_at DESC, id DESC` + q.page(f.Page)
	rows, err := s.db.QueryContext(ctx, stmt, q.args...)
	if err != nil {
		return nil, wrap("list testimonials", err)
	}
	defer rows.Close()

	items := []models.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (s *TestimonialStore) Get(ctx context.Context, id int64) (models.Testimonial, error) {
	t, err := scanTestimonial(s.db.QueryRowContext(ctx, `SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
	return t, wrap("get testimonial", err)
}

func (s *TestimonialStore) Create(ctx context.Context, t models.Testimonial) (models.Testimonial, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO testimonials (name, role, content, rating, image, is_featured, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+testimonialColumns,
		t.Name, t.Role, t.Content, t.Rating, t.Image, t.IsFeatured, t.CreatedAt,
	)
	created, err := scanTestimonial(row)
	return created, wrap("create testimonial", err)
}

// Update applies the non-nil fields of patch. Testimonials carry no
// updated_at, so an empty patch is a plain read.
func (s *TestimonialStore) Update(ctx context.Context, id int64, patch models.TestimonialPatch) (models.Testimonial, error) {
	var q query
	set := setList{q: &q}
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Role != nil {
		set.add("role", *patch.Role)
	}
	if patch.Content != nil {
		set.add("content", *patch.Content)
	}
	if patch.Rating != nil {
		set.add("rating", *patch.Rating)
	}
	if patch.Image != nil {
		set.add("image", *patch.Image)
	}
	if patch.IsFeatured != nil {
		set.add("is_featured", *patch.IsFeatured)
	}
	if len(set.sets) == 0 {
		return s.Get(ctx, id)
	}

	stmt := `UPDATE testimonials SET ` + set.String() + ` WHERE id = ` + q.bind(id) + ` RETURNING ` + testimonialColumns
	row := s.db.QueryRowContext(ctx, stmt, q.args...)
	t, err := scanTestimonial(row)
	return t, wrap("update testimonial", err)
}

func (s *TestimonialStore) Delete(ctx context.Context, id int64) (models.Testimonial, error) {
	t, err := scanTestimonial(s.db.QueryRowContext(ctx, `DELETE FROM testimonials WHERE id = $1 RETURNING `+testimonialColumns, id))
	return t, wrap("delete testimonial", err)
}
