// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package memory implements every catalog repository in process memory. It
// backs the service tests and STORAGE_DRIVER=memory. A single RWMutex
// serializes writers, which makes slug checks and tracking-code upserts
// atomic here just as the unique indexes do in Postgres.
package memory

import (
	"cmp"
	"slices"
	"strings"
	"sync"
	"time"

	"giftshop/internal/catalog"
	"giftshop/internal/models"
)

// Store holds all tables. The zero value is not usable; call New.
type Store struct {
	mu  sync.RWMutex
	seq map[string]int64

	products      map[int64]models.Product
	categories    map[int64]models.Category
	orders        map[int64]models.Order
	appointments  map[int64]models.Appointment
	testimonials  map[int64]models.Testimonial
	stories       map[int64]models.Story
	comments      map[int64]models.Comment
	trackingCodes map[int64]models.TrackingCode
	heroSlides    map[int64]models.HeroSlide
}

// New returns an empty store.
func New() *Store {
	return &Store{
		seq:           make(map[string]int64),
		products:      make(map[int64]models.Product),
		categories:    make(map[int64]models.Category),
		orders:        make(map[int64]models.Order),
		appointments:  make(map[int64]models.Appointment),
		testimonials:  make(map[int64]models.Testimonial),
		stories:       make(map[int64]models.Story),
		comments:      make(map[int64]models.Comment),
		trackingCodes: make(map[int64]models.TrackingCode),
		heroSlides:    make(map[int64]models.HeroSlide),
	}
}

// Deps returns catalog dependencies wired to this store. Callers add the
// notifier, logger and clock.
func (s *Store) Deps() catalog.Deps {
	return catalog.Deps{
		Products:      &ProductRepo{s: s},
		Categories:    &CategoryRepo{s: s},
		Orders:        &OrderRepo{s: s},
		Appointments:  &AppointmentRepo{s: s},
		Testimonials:  &TestimonialRepo{s: s},
		Stories:       &StoryRepo{s: s},
		Comments:      &CommentRepo{s: s},
		TrackingCodes: &TrackingCodeRepo{s: s},
		HeroSlides:    &HeroSlideRepo{s: s},
	}
}

// nextID mimics a per-table BIGSERIAL. Caller holds the write lock.
func (s *Store) nextID(table string) int64 {
	s.seq[table]++
	return s.seq[table]
}

// newestFirst orders by created time descending, then id descending.
func newestFirst[T any](rows []T, created func(T) time.Time, id func(T) int64) {
	slices.SortFunc(rows, func(a, b T) int {
		if c := created(b).Compare(created(a)); c != 0 {
			return c
		}
		return cmp.Compare(id(b), id(a))
	})
}

// byDisplayOrder orders by display order ascending, then id ascending.
func byDisplayOrder[T any](rows []T, order func(T) int, id func(T) int64) {
	slices.SortFunc(rows, func(a, b T) int {
		if c := cmp.Compare(order(a), order(b)); c != 0 {
			return c
		}
		return cmp.Compare(id(a), id(b))
	})
}

// paginate applies offset and limit. A non-positive limit returns the rest.
func paginate[T any](rows []T, p catalog.Page) []T {
	if p.Offset >= len(rows) {
		return []T{}
	}
	if p.Offset > 0 {
		rows = rows[p.Offset:]
	}
	if p.Limit > 0 && p.Limit < len(rows) {
		rows = rows[:p.Limit]
	}
	return rows
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// collect copies the rows accepted by keep.
func collect[T any](rows map[int64]T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep == nil || keep(r) {
			out = append(out, r)
		}
	}
	return out
}
