// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package memory

import (
	"context"
	"time"

	"giftshop/internal/catalog"
	"giftshop/internal/models"
)

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ProductRepo implements catalog.ProductRepository.
type ProductRepo struct{ s *Store }

func (r *ProductRepo) List(_ context.Context, f catalog.ProductFilter) ([]models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := collect(r.s.products, func(p models.Product) bool {
		if f.Category != "" && p.Category != f.Category {
			return false
		}
		if f.Search != "" && !containsFold(p.Name, f.Search) && !containsFold(p.Description, f.Search) {
			return false
		}
		return true
	})
	newestFirst(rows, func(p models.Product) time.Time { return p.CreatedAt }, func(p models.Product) int64 { return p.ID })
	return paginate(rows, f.Page), nil
}

func (r *ProductRepo) Get(_ context.Context, id int64) (models.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return models.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

func (r *ProductRepo) Create(_ context.Context, p models.Product) (models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.nextID("products")
	r.s.products[p.ID] = p
	return p, nil
}

func (r *ProductRepo) Update(_ context.Context, id int64, patch models.ProductPatch) (models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return models.Product{}, catalog.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	p.UpdatedAt = patch.UpdatedAt
	r.s.products[id] = p
	return p, nil
}

func (r *ProductRepo) Delete(_ context.Context, id int64) (models.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return models.Product{}, catalog.ErrNotFound
	}
	delete(r.s.products, id)
	return p, nil
}

// CategoryRepo implements catalog.CategoryRepository. Slugs are unique.
type CategoryRepo struct{ s *Store }

func (r *CategoryRepo) List(_ context.Context, f catalog.CategoryFilter) ([]models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := collect(r.s.categories, nil)
	for i := range rows {
		rows[i].ImageURL = clonePtr(rows[i].ImageURL)
	}
	byDisplayOrder(rows, func(c models.Category) int { return c.DisplayOrder }, func(c models.Category) int64 { return c.ID })
	return paginate(rows, f.Page), nil
}

func (r *CategoryRepo) Get(_ context.Context, id int64) (models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return models.Category{}, catalog.ErrNotFound
	}
	c.ImageURL = clonePtr(c.ImageURL)
	return c, nil
}

func (r *CategoryRepo) GetBySlug(_ context.Context, slug string) (models.Category, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if c.Slug == slug {
			c.ImageURL = clonePtr(c.ImageURL)
			return c, nil
		}
	}
	return models.Category{}, catalog.ErrNotFound
}

// slugTaken reports whether another category holds slug. Caller holds the lock.
func (r *CategoryRepo) slugTaken(slug string, selfID int64) bool {
	for _, c := range r.s.categories {
		if c.Slug == slug && c.ID != selfID {
			return true
		}
	}
	return false
}

func (r *CategoryRepo) Create(_ context.Context, c models.Category) (models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.slugTaken(c.Slug, 0) {
		return models.Category{}, catalog.ErrConflict
	}
	c.ID = r.s.nextID("categories")
	c.ImageURL = clonePtr(c.ImageURL)
	r.s.categories[c.ID] = c
	c.ImageURL = clonePtr(c.ImageURL)
	return c, nil
}

func (r *CategoryRepo) Update(_ context.Context, id int64, patch models.CategoryPatch) (models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return models.Category{}, catalog.ErrNotFound
	}
	if patch.Slug != nil && r.slugTaken(*patch.Slug, id) {
		return models.Category{}, catalog.ErrConflict
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Slug != nil {
		c.Slug = *patch.Slug
	}
	if patch.DisplayOrder != nil {
		c.DisplayOrder = *patch.DisplayOrder
	}
	switch {
	case patch.ImageURL != nil:
		c.ImageURL = clonePtr(patch.ImageURL)
	case patch.ClearImageURL:
		c.ImageURL = nil
	}
	c.UpdatedAt = patch.UpdatedAt
	r.s.categories[id] = c
	c.ImageURL = clonePtr(c.ImageURL)
	return c, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id int64) (models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return models.Category{}, catalog.ErrNotFound
	}
	delete(r.s.categories, id)
	return c, nil
}

// HeroSlideRepo implements catalog.HeroSlideRepository.
type HeroSlideRepo struct{ s *Store }

func (r *HeroSlideRepo) List(_ context.Context, f catalog.HeroSlideFilter) ([]models.HeroSlide, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := collect(r.s.heroSlides, func(h models.HeroSlide) bool {
		return !f.ActiveOnly || h.IsActive
	})
	byDisplayOrder(rows, func(h models.HeroSlide) int { return h.DisplayOrder }, func(h models.HeroSlide) int64 { return h.ID })
	return paginate(rows, f.Page), nil
}

func (r *HeroSlideRepo) Get(_ context.Context, id int64) (models.HeroSlide, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	h, ok := r.s.heroSlides[id]
	if !ok {
		return models.HeroSlide{}, catalog.ErrNotFound
	}
	return h, nil
}

func (r *HeroSlideRepo) Create(_ context.Context, h models.HeroSlide) (models.HeroSlide, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h.ID = r.s.nextID("hero_slides")
	r.s.heroSlides[h.ID] = h
	return h, nil
}

func (r *HeroSlideRepo) Update(_ context.Context, id int64, patch models.HeroSlidePatch) (models.HeroSlide, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.heroSlides[id]
	if !ok {
		return models.HeroSlide{}, catalog.ErrNotFound
	}
	if patch.Title != nil {
		h.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		h.Subtitle = *patch.Subtitle
	}
	if patch.Description != nil {
		h.Description = *patch.Description
	}
	if patch.Image != nil {
		h.Image = *patch.Image
	}
	if patch.ButtonText != nil {
		h.ButtonText = *patch.ButtonText
	}
	if patch.ButtonLink != nil {
		h.ButtonLink = *patch.ButtonLink
	}
	if patch.DisplayOrder != nil {
		h.DisplayOrder = *patch.DisplayOrder
	}
	if patch.IsActive != nil {
		h.IsActive = *patch.IsActive
	}
	h.UpdatedAt = patch.UpdatedAt
	r.s.heroSlides[id] = h
	return h, nil
}

func (r *HeroSlideRepo) Delete(_ context.Context, id int64) (models.HeroSlide, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.heroSlides[id]
	if !ok {
		return models.HeroSlide{}, catalog.ErrNotFound
	}
	delete(r.s.heroSlides, id)
	return h, nil
}

// TrackingCodeRepo implements catalog.TrackingCodeRepository.
type TrackingCodeRepo struct{ s *Store }

func (r *TrackingCodeRepo) List(_ context.Context, f catalog.TrackingCodeFilter) ([]models.TrackingCode, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := collect(r.s.trackingCodes, func(tc models.TrackingCode) bool {
		return !f.ActiveOnly || tc.IsActive
	})
	newestFirst(rows, func(tc models.TrackingCode) time.Time { return tc.CreatedAt }, func(tc models.TrackingCode) int64 { return tc.ID })
	return rows, nil
}

// find returns the row for typ. Caller holds the lock.
func (r *TrackingCodeRepo) find(typ models.TrackingCodeType) (models.TrackingCode, bool) {
	for _, tc := range r.s.trackingCodes {
		if tc.Type == typ {
			return tc, true
		}
	}
	return models.TrackingCode{}, false
}

func (r *TrackingCodeRepo) GetByType(_ context.Context, typ models.TrackingCodeType) (models.TrackingCode, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	tc, ok := r.find(typ)
	if !ok {
		return models.TrackingCode{}, catalog.ErrNotFound
	}
	return tc, nil
}

func (r *TrackingCodeRepo) Upsert(_ context.Context, typ models.TrackingCodeType, code string, isActive bool, now time.Time) (models.TrackingCode, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if tc, ok := r.find(typ); ok {
		tc.Code = code
		tc.IsActive = isActive
		tc.UpdatedAt = now
		r.s.trackingCodes[tc.ID] = tc
		return tc, false, nil
	}
	tc := models.TrackingCode{
		ID:        r.s.nextID("tracking_codes"),
		Type:      typ,
		Code:      code,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.s.trackingCodes[tc.ID] = tc
	return tc, true, nil
}

func (r *TrackingCodeRepo) DeleteByType(_ context.Context, typ models.TrackingCodeType) (models.TrackingCode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	tc, ok := r.find(typ)
	if !ok {
		return models.TrackingCode{}, catalog.ErrNotFound
	}
	delete(r.s.trackingCodes, tc.ID)
	return tc, nil
}
