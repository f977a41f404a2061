// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"time"

	"giftshop/internal/models"
)

// MaxLimit caps every list request.
const MaxLimit = 100

// Page selects a window of a sorted list. A zero Limit means "use the
// list's default".
type Page struct {
	Limit  int
	Offset int
}

// withDefault fills in def for an unset limit and clamps to MaxLimit.
func (p Page) withDefault(def int) Page {
	if p.Limit <= 0 {
		p.Limit = def
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// ProductFilter matches products by category tag and a case-insensitive
// substring of name or description. Category "all" or "" disables the
// category match.
type ProductFilter struct {
	Category string
	Search   string
	Page
}

type CategoryFilter struct {
	Page
}

type OrderFilter struct {
	Status models.OrderStatus
	Email  string
	Page
}

type AppointmentFilter struct {
	Status models.AppointmentStatus
	Page
}

type TestimonialFilter struct {
	FeaturedOnly bool
	Page
}

// StoryFilter searches title, client and excerpt.
type StoryFilter struct {
	Search string
	Page
}

// CommentFilter scopes comments to a story (when StoryID > 0) and to a set
// of statuses (when non-empty).
type CommentFilter struct {
	StoryID  int64
	Statuses []models.CommentStatus
	Page
}

type TrackingCodeFilter struct {
	ActiveOnly bool
}

type HeroSlideFilter struct {
	ActiveOnly bool
	Page
}

// Repositories return ErrNotFound when the id matches no row and ErrConflict
// when a unique constraint rejects a write. Lists are sorted by createdAt
// descending (id descending on ties) unless noted.

type ProductRepository interface {
	List(ctx context.Context, f ProductFilter) ([]models.Product, error)
	Get(ctx context.Context, id int64) (models.Product, error)
	Create(ctx context.Context, p models.Product) (models.Product, error)
	Update(ctx context.Context, id int64, patch models.ProductPatch) (models.Product, error)
	Delete(ctx context.Context, id int64) (models.Product, error)
}

// CategoryRepository lists by displayOrder ascending.
type CategoryRepository interface {
	List(ctx context.Context, f CategoryFilter) ([]models.Category, error)
	Get(ctx context.Context, id int64) (models.Category, error)
	GetBySlug(ctx context.Context, slug string) (models.Category, error)
	Create(ctx context.Context, c models.Category) (models.Category, error)
	Update(ctx context.Context, id int64, patch models.CategoryPatch) (models.Category, error)
	Delete(ctx context.Context, id int64) (models.Category, error)
}

type OrderRepository interface {
	List(ctx context.Context, f OrderFilter) ([]models.Order, error)
	Get(ctx context.Context, id int64) (models.Order, error)
	Create(ctx context.Context, o models.Order) (models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus, updatedAt time.Time) (models.Order, error)
	Delete(ctx context.Context, id int64) (models.Order, error)
}

type AppointmentRepository interface {
	List(ctx context.Context, f AppointmentFilter) ([]models.Appointment, error)
	Get(ctx context.Context, id int64) (models.Appointment, error)
	Create(ctx context.Context, a models.Appointment) (models.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status models.AppointmentStatus) (models.Appointment, error)
}

type TestimonialRepository interface {
	List(ctx context.Context, f TestimonialFilter) ([]models.Testimonial, error)
	Get(ctx context.Context, id int64) (models.Testimonial, error)
	Create(ctx context.Context, t models.Testimonial) (models.Testimonial, error)
	Update(ctx context.Context, id int64, patch models.TestimonialPatch) (models.Testimonial, error)
	Delete(ctx context.Context, id int64) (models.Testimonial, error)
}

type StoryRepository interface {
	List(ctx context.Context, f StoryFilter) ([]models.Story, error)
	Get(ctx context.Context, id int64) (models.Story, error)
	Create(ctx context.Context, s models.Story) (models.Story, error)
	Update(ctx context.Context, id int64, patch models.StoryPatch) (models.Story, error)
	Delete(ctx context.Context, id int64) (models.Story, error)
}

type CommentRepository interface {
	List(ctx context.Context, f CommentFilter) ([]models.Comment, error)
	Get(ctx context.Context, id int64) (models.Comment, error)
	Create(ctx context.Context, c models.Comment) (models.Comment, error)
	UpdateStatus(ctx context.Context, id int64, status models.CommentStatus) (models.Comment, error)
	Delete(ctx context.Context, id int64) (models.Comment, error)
}

// TrackingCodeRepository is keyed by type. Upsert is a single atomic write
// and reports whether it inserted a new row.
type TrackingCodeRepository interface {
	List(ctx context.Context, f TrackingCodeFilter) ([]models.TrackingCode, error)
	GetByType(ctx context.Context, typ models.TrackingCodeType) (models.TrackingCode, error)
	Upsert(ctx context.Context, typ models.TrackingCodeType, code string, isActive bool, now time.Time) (models.TrackingCode, bool, error)
	DeleteByType(ctx context.Context, typ models.TrackingCodeType) (models.TrackingCode, error)
}

// HeroSlideRepository lists by displayOrder ascending.
type HeroSlideRepository interface {
	List(ctx context.Context, f HeroSlideFilter) ([]models.HeroSlide, error)
	Get(ctx context.Context, id int64) (models.HeroSlide, error)
	Create(ctx context.Context, h models.HeroSlide) (models.HeroSlide, error)
	Update(ctx context.Context, id int64, patch models.HeroSlidePatch) (models.HeroSlide, error)
	Delete(ctx context.Context, id int64) (models.HeroSlide, error)
}
