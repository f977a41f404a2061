// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"

	"giftshop/internal/models"
)

// Normalizers take inputs by value and return canonical copies: strings are
// trimmed, emails lower-cased, empty optional text becomes nil and defaults
// are filled in. Absent update fields stay absent.

const (
	defaultDisplayOrder = 0
	defaultIsActive     = true
	defaultIsFeatured   = true
)

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// optionalText trims s and drops it when nothing is left.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func trimOptional(o Optional[string]) Optional[string] {
	if o.Present() {
		o.Value = strings.TrimSpace(o.Value)
	}
	return o
}

func intOr(p *int, def int) *int {
	v := def
	if p != nil {
		v = *p
	}
	return &v
}

func boolOr(p *bool, def bool) *bool {
	v := def
	if p != nil {
		v = *p
	}
	return &v
}

func normalizeCreateProduct(in CreateProductInput) CreateProductInput {
	return CreateProductInput{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Category:    strings.TrimSpace(in.Category),
		Image:       strings.TrimSpace(in.Image),
	}
}

func normalizeUpdateProduct(in UpdateProductInput) UpdateProductInput {
	return UpdateProductInput{
		Name:        trimOptional(in.Name),
		Description: trimOptional(in.Description),
		Price:       in.Price,
		Category:    trimOptional(in.Category),
		Image:       trimOptional(in.Image),
	}
}

func normalizeCreateCategory(in CreateCategoryInput) CreateCategoryInput {
	return CreateCategoryInput{
		Name:         strings.TrimSpace(in.Name),
		Slug:         strings.TrimSpace(in.Slug),
		DisplayOrder: intOr(in.DisplayOrder, defaultDisplayOrder),
		ImageURL:     optionalText(in.ImageURL),
	}
}

func normalizeUpdateCategory(in UpdateCategoryInput) UpdateCategoryInput {
	out := UpdateCategoryInput{
		Name:         trimOptional(in.Name),
		Slug:         trimOptional(in.Slug),
		DisplayOrder: in.DisplayOrder,
		ImageURL:     trimOptional(in.ImageURL),
	}
	// An empty image URL clears the column, same as null.
	if out.ImageURL.Present() && out.ImageURL.Value == "" {
		out.ImageURL = Null[string]()
	}
	return out
}

func normalizeCreateOrder(in CreateOrderInput) CreateOrderInput {
	items := make([]models.OrderItem, len(in.Items))
	for i, it := range in.Items {
		items[i] = it
		items[i].Name = strings.TrimSpace(it.Name)
		if it.ProductID != nil {
			id := *it.ProductID
			items[i].ProductID = &id
		}
	}
	return CreateOrderInput{
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerEmail:   normalizeEmail(in.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		ShippingAddress: strings.TrimSpace(in.ShippingAddress),
		Notes:           optionalText(in.Notes),
		TotalAmount:     in.TotalAmount,
		Items:           items,
	}
}

func normalizeCreateAppointment(in CreateAppointmentInput) CreateAppointmentInput {
	return CreateAppointmentInput{
		Name:          strings.TrimSpace(in.Name),
		Email:         normalizeEmail(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		PreferredDate: strings.TrimSpace(in.PreferredDate),
		PreferredTime: strings.TrimSpace(in.PreferredTime),
		OccasionType:  strings.TrimSpace(in.OccasionType),
		Message:       optionalText(in.Message),
	}
}

func normalizeCreateTestimonial(in CreateTestimonialInput) CreateTestimonialInput {
	out := CreateTestimonialInput{
		Name:       strings.TrimSpace(in.Name),
		Role:       strings.TrimSpace(in.Role),
		Content:    strings.TrimSpace(in.Content),
		Image:      strings.TrimSpace(in.Image),
		IsFeatured: boolOr(in.IsFeatured, defaultIsFeatured),
	}
	if in.Rating != nil {
		r := *in.Rating
		out.Rating = &r
	}
	return out
}

func normalizeUpdateTestimonial(in UpdateTestimonialInput) UpdateTestimonialInput {
	return UpdateTestimonialInput{
		Name:       trimOptional(in.Name),
		Role:       trimOptional(in.Role),
		Content:    trimOptional(in.Content),
		Rating:     in.Rating,
		Image:      trimOptional(in.Image),
		IsFeatured: in.IsFeatured,
	}
}

func normalizeCreateStory(in CreateStoryInput) CreateStoryInput {
	return CreateStoryInput{
		Title:   strings.TrimSpace(in.Title),
		Client:  strings.TrimSpace(in.Client),
		Date:    strings.TrimSpace(in.Date),
		Excerpt: strings.TrimSpace(in.Excerpt),
		Content: strings.TrimSpace(in.Content),
		Image:   strings.TrimSpace(in.Image),
	}
}

func normalizeUpdateStory(in UpdateStoryInput) UpdateStoryInput {
	return UpdateStoryInput{
		Title:   trimOptional(in.Title),
		Client:  trimOptional(in.Client),
		Date:    trimOptional(in.Date),
		Excerpt: trimOptional(in.Excerpt),
		Content: trimOptional(in.Content),
		Image:   trimOptional(in.Image),
	}
}

func normalizeCreateComment(in CreateCommentInput) CreateCommentInput {
	return CreateCommentInput{
		StoryID: in.StoryID,
		Name:    strings.TrimSpace(in.Name),
		Email:   normalizeEmail(in.Email),
		Message: strings.TrimSpace(in.Message),
	}
}

func normalizeUpsertTrackingCode(in UpsertTrackingCodeInput) UpsertTrackingCodeInput {
	return UpsertTrackingCodeInput{
		Type:     strings.TrimSpace(in.Type),
		Code:     strings.TrimSpace(in.Code),
		IsActive: boolOr(in.IsActive, defaultIsActive),
	}
}

func normalizeCreateHeroSlide(in CreateHeroSlideInput) CreateHeroSlideInput {
	return CreateHeroSlideInput{
		Title:        strings.TrimSpace(in.Title),
		Subtitle:     strings.TrimSpace(in.Subtitle),
		Description:  strings.TrimSpace(in.Description),
		Image:        strings.TrimSpace(in.Image),
		ButtonText:   strings.TrimSpace(in.ButtonText),
		ButtonLink:   strings.TrimSpace(in.ButtonLink),
		DisplayOrder: intOr(in.DisplayOrder, defaultDisplayOrder),
		IsActive:     boolOr(in.IsActive, defaultIsActive),
	}
}

func normalizeUpdateHeroSlide(in UpdateHeroSlideInput) UpdateHeroSlideInput {
	return UpdateHeroSlideInput{
		Title:        trimOptional(in.Title),
		Subtitle:     trimOptional(in.Subtitle),
		Description:  trimOptional(in.Description),
		Image:        trimOptional(in.Image),
		ButtonText:   trimOptional(in.ButtonText),
		ButtonLink:   trimOptional(in.ButtonLink),
		DisplayOrder: in.DisplayOrder,
		IsActive:     in.IsActive,
	}
}

func normalizeContact(in ContactInput) ContactInput {
	return ContactInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   normalizeEmail(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: strings.TrimSpace(in.Message),
	}
}
