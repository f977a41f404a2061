// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"

	"giftshop/internal/models"
)

const defaultTestimonialLimit = 20

func testimonialNotFound() *Error {
	return NotFound("TESTIMONIAL_NOT_FOUND", "testimonial not found")
}

func (s *Service) ListTestimonials(ctx context.Context, f TestimonialFilter) (_ []models.Testimonial, err error) {
	ctx, end := s.startSpan(ctx, "ListTestimonials")
	defer end(&err)

	f.Page = f.Page.withDefault(defaultTestimonialLimit)
	list, rerr := s.testimonials.List(ctx, f)
	if rerr != nil {
		return nil, s.internal(ctx, "list testimonials", rerr)
	}
	return list, nil
}

func (s *Service) GetTestimonial(ctx context.Context, id int64) (_ models.Testimonial, err error) {
	ctx, end := s.startSpan(ctx, "GetTestimonial")
	defer end(&err)

	t, rerr := s.testimonials.Get(ctx, id)
	if rerr != nil {
		return models.Testimonial{}, s.repoError(ctx, "get testimonial", rerr, testimonialNotFound())
	}
	return t, nil
}

// CreateTestimonial stores a quote; isFeatured defaults to true.
func (s *Service) CreateTestimonial(ctx context.Context, in CreateTestimonialInput) (_ models.Testimonial, err error) {
	ctx, end := s.startSpan(ctx, "CreateTestimonial")
	defer end(&err)

	in = normalizeCreateTestimonial(in)
	if verr := validateCreateTestimonial(in); verr != nil {
		return models.Testimonial{}, verr
	}

	t, rerr := s.testimonials.Create(ctx, models.Testimonial{
		Name:       in.Name,
		Role:       in.Role,
		Content:    in.Content,
		Rating:     *in.Rating,
		Image:      in.Image,
		IsFeatured: *in.IsFeatured,
		CreatedAt:  s.now(),
	})
	if rerr != nil {
		return models.Testimonial{}, s.internal(ctx, "create testimonial", rerr)
	}
	return t, nil
}

func (s *Service) UpdateTestimonial(ctx context.Context, id int64, in UpdateTestimonialInput) (_ models.Testimonial, err error) {
	ctx, end := s.startSpan(ctx, "UpdateTestimonial")
	defer end(&err)

	in = normalizeUpdateTestimonial(in)
	if verr := validateUpdateTestimonial(in); verr != nil {
		return models.Testimonial{}, verr
	}

	var patch models.TestimonialPatch
	if in.Name.Present() {
		patch.Name = &in.Name.Value
	}
	if in.Role.Present() {
		patch.Role = &in.Role.Value
	}
	if in.Content.Present() {
		patch.Content = &in.Content.Value
	}
	if in.Rating.Present() {
		patch.Rating = &in.Rating.Value
	}
	if in.Image.Present() {
		patch.Image = &in.Image.Value
	}
	if in.IsFeatured.Present() {
		patch.IsFeatured = &in.IsFeatured.Value
	}

	t, rerr := s.testimonials.Update(ctx, id, patch)
	if rerr != nil {
		return models.Testimonial{}, s.repoError(ctx, "update testimonial", rerr, testimonialNotFound())
	}
	return t, nil
}

func (s *Service) DeleteTestimonial(ctx context.Context, id int64) (_ models.Testimonial, err error) {
	ctx, end := s.startSpan(ctx, "DeleteTestimonial")
	defer end(&err)

	t, rerr := s.testimonials.Delete(ctx, id)
	if rerr != nil {
		return models.Testimonial{}, s.repoError(ctx, "delete testimonial", rerr, testimonialNotFound())
	}
	return t, nil
}
