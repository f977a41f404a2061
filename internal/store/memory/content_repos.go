// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package memory

import (
	"context"
	"slices"
	"time"

	"giftshop/internal/catalog"
	"giftshop/internal/models"
)

// TestimonialRepo implements catalog.TestimonialRepository.
type TestimonialRepo struct{ s *Store }

func (r *TestimonialRepo) List(_ context.Context, f catalog.TestimonialFilter) ([]models.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := collect(r.s.testimonials, func(t models.Testimonial) bool {
		return !f.FeaturedOnly || t.IsFeatured
	})
	newestFirst(rows, func(t models.Testimonial) time.Time { return t.CreatedAt }, func(t models.Testimonial) int64 { return t.ID })
	return paginate(rows, f.Page), nil
}

func (r *TestimonialRepo) Get(_ context.Context, id int64) (models.Testimonial, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.testimonials[id]
	if !ok {
		return models.Testimonial{}, catalog.ErrNotFound
	}
	return t, nil
}

func (r *TestimonialRepo) Create(_ context.Context, t models.Testimonial) (models.Testimonial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t.ID = r.s.nextID("testimonials")
	r.s.testimonials[t.ID] = t
	return t, nil
}

func (r *TestimonialRepo) Update(_ context.Context, id int64, patch models.TestimonialPatch) (models.Testimonial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.testimonials[id]
	if !ok {
		return models.Testimonial{}, catalog.ErrNotFound
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Role != nil {
		t.Role = *patch.Role
	}
	if patch.Content != nil {
		t.Content = *patch.Content
	}
	if patch.Rating != nil {
		t.Rating = *patch.Rating
	}
	if patch.Image != nil {
		t.Image = *patch.Image
	}
	if patch.IsFeatured != nil {
		t.IsFeatured = *patch.IsFeatured
	}
	r.s.testimonials[id] = t
	return t, nil
}

func (r *TestimonialRepo) Delete(_ context.Context, id int64) (models.Testimonial, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.testimonials[id]
	if !ok {
		return models.Testimonial{}, catalog.ErrNotFound
	}
	delete(r.s.testimonials, id)
	return t, nil
}

// StoryRepo implements catalog.StoryRepository.
type StoryRepo struct{ s *Store }

func (r *StoryRepo) List(_ context.Context, f catalog.StoryFilter) ([]models.Story, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := collect(r.s.stories, func(st models.Story) bool {
		return f.Search == "" ||
			containsFold(st.Title, f.Search) ||
			containsFold(st.Client, f.Search) ||
			containsFold(st.Excerpt, f.Search)
	})
	newestFirst(rows, func(st models.Story) time.Time { return st.CreatedAt }, func(st models.Story) int64 { return st.ID })
	return paginate(rows, f.Page), nil
}

func (r *StoryRepo) Get(_ context.Context, id int64) (models.Story, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.stories[id]
	if !ok {
		return models.Story{}, catalog.ErrNotFound
	}
	return st, nil
}

func (r *StoryRepo) Create(_ context.Context, st models.Story) (models.Story, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st.ID = r.s.nextID("stories")
	r.s.stories[st.ID] = st
	return st, nil
}

func (r *StoryRepo) Update(_ context.Context, id int64, patch models.StoryPatch) (models.Story, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stories[id]
	if !ok {
		return models.Story{}, catalog.ErrNotFound
	}
	if patch.Title != nil {
		st.Title = *patch.Title
	}
	if patch.Client != nil {
		st.Client = *patch.Client
	}
	if patch.Date != nil {
		st.Date = *patch.Date
	}
	if patch.Excerpt != nil {
		st.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		st.Content = *patch.Content
	}
	if patch.Image != nil {
		st.Image = *patch.Image
	}
	st.UpdatedAt = patch.UpdatedAt
	r.s.stories[id] = st
	return st, nil
}

// Delete leaves the story's comments in place.
func (r *StoryRepo) Delete(_ context.Context, id int64) (models.Story, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	st, ok := r.s.stories[id]
	if !ok {
		return models.Story{}, catalog.ErrNotFound
	}
	delete(r.s.stories, id)
	return st, nil
}

// CommentRepo implements catalog.CommentRepository.
type CommentRepo struct{ s *Store }

func (r *CommentRepo) List(_ context.Context, f catalog.CommentFilter) ([]models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := collect(r.s.comments, func(c models.Comment) bool {
		if f.StoryID > 0 && c.StoryID != f.StoryID {
			return false
		}
		return len(f.Statuses) == 0 || slices.Contains(f.Statuses, c.Status)
	})
	newestFirst(rows, func(c models.Comment) time.Time { return c.CreatedAt }, func(c models.Comment) int64 { return c.ID })
	return paginate(rows, f.Page), nil
}

func (r *CommentRepo) Get(_ context.Context, id int64) (models.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.comments[id]
	if !ok {
		return models.Comment{}, catalog.ErrNotFound
	}
	return c, nil
}

func (r *CommentRepo) Create(_ context.Context, c models.Comment) (models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = r.s.nextID("comments")
	r.s.comments[c.ID] = c
	return c, nil
}

func (r *CommentRepo) UpdateStatus(_ context.Context, id int64, status models.CommentStatus) (models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return models.Comment{}, catalog.ErrNotFound
	}
	c.Status = status
	r.s.comments[id] = c
	return c, nil
}

func (r *CommentRepo) Delete(_ context.Context, id int64) (models.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.comments[id]
	if !ok {
		return models.Comment{}, catalog.ErrNotFound
	}
	delete(r.s.comments, id)
	return c, nil
}
