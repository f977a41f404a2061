// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"

	"giftshop/internal/models"
)

const defaultHeroSlideLimit = 100

func slideNotFound() *Error {
	return NotFound("SLIDE_NOT_FOUND", "hero slide not found")
}

// ListHeroSlides returns slides by displayOrder ascending.
func (s *Service) ListHeroSlides(ctx context.Context, f HeroSlideFilter) (_ []models.HeroSlide, err error) {
	ctx, end := s.startSpan(ctx, "ListHeroSlides")
	defer end(&err)

	f.Page = f.Page.withDefault(defaultHeroSlideLimit)
	list, rerr := s.heroSlides.List(ctx, f)
	if rerr != nil {
		return nil, s.internal(ctx, "list hero slides", rerr)
	}
	return list, nil
}

func (s *Service) GetHeroSlide(ctx context.Context, id int64) (_ models.HeroSlide, err error) {
	ctx, end := s.startSpan(ctx, "GetHeroSlide")
	defer end(&err)

	h, rerr := s.heroSlides.Get(ctx, id)
	if rerr != nil {
		return models.HeroSlide{}, s.repoError(ctx, "get hero slide", rerr, slideNotFound())
	}
	return h, nil
}

func (s *Service) CreateHeroSlide(ctx context.Context, in CreateHeroSlideInput) (_ models.HeroSlide, err error) {
	ctx, end := s.startSpan(ctx, "CreateHeroSlide")
	defer end(&err)

	in = normalizeCreateHeroSlide(in)
	if verr := validateCreateHeroSlide(in); verr != nil {
		return models.HeroSlide{}, verr
	}

	now := s.now()
	h, rerr := s.heroSlides.Create(ctx, models.HeroSlide{
		Title:        in.Title,
		Subtitle:     in.Subtitle,
		Description:  in.Description,
		Image:        in.Image,
		ButtonText:   in.ButtonText,
		ButtonLink:   in.ButtonLink,
		DisplayOrder: *in.DisplayOrder,
		IsActive:     *in.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if rerr != nil {
		return models.HeroSlide{}, s.internal(ctx, "create hero slide", rerr)
	}
	return h, nil
}

func (s *Service) UpdateHeroSlide(ctx context.Context, id int64, in UpdateHeroSlideInput) (_ models.HeroSlide, err error) {
	ctx, end := s.startSpan(ctx, "UpdateHeroSlide")
	defer end(&err)

	in = normalizeUpdateHeroSlide(in)
	if verr := validateUpdateHeroSlide(in); verr != nil {
		return models.HeroSlide{}, verr
	}

	patch := models.HeroSlidePatch{UpdatedAt: s.now()}
	if in.Title.Present() {
		patch.Title = &in.Title.Value
	}
	if in.Subtitle.Present() {
		patch.Subtitle = &in.Subtitle.Value
	}
	if in.Description.Present() {
		patch.Description = &in.Description.Value
	}
	if in.Image.Present() {
		patch.Image = &in.Image.Value
	}
	if in.ButtonText.Present() {
		patch.ButtonText = &in.ButtonText.Value
	}
	if in.ButtonLink.Present() {
		patch.ButtonLink = &in.ButtonLink.Value
	}
	if in.DisplayOrder.Present() {
		patch.DisplayOrder = &in.DisplayOrder.Value
	}
	if in.IsActive.Present() {
		patch.IsActive = &in.IsActive.Value
	}

	h, rerr := s.heroSlides.Update(ctx, id, patch)
	if rerr != nil {
		return models.HeroSlide{}, s.repoError(ctx, "update hero slide", rerr, slideNotFound())
	}
	return h, nil
}

func (s *Service) DeleteHeroSlide(ctx context.Context, id int64) (_ models.HeroSlide, err error) {
	ctx, end := s.startSpan(ctx, "DeleteHeroSlide")
	defer end(&err)

	h, rerr := s.heroSlides.Delete(ctx, id)
	if rerr != nil {
		return models.HeroSlide{}, s.repoError(ctx, "delete hero slide", rerr, slideNotFound())
	}
	return h, nil
}
