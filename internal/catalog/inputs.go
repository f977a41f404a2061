// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"github.com/shopspring/decimal"

	"giftshop/internal/models"
)

// Raw request payloads, decoded straight from JSON. Create inputs use plain
// or pointer fields (nil = not supplied); update inputs use Optional so that
// "absent" and "null" stay distinct.

type CreateProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

type UpdateProductInput struct {
	Name        Optional[string]          `json:"name"`
	Description Optional[string]          `json:"description"`
	Price       Optional[decimal.Decimal] `json:"price"`
	Category    Optional[string]          `json:"category"`
	Image       Optional[string]          `json:"image"`
}

type CreateCategoryInput struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	DisplayOrder *int    `json:"displayOrder"`
	ImageURL     *string `json:"imageUrl"`
}

type UpdateCategoryInput struct {
	Name         Optional[string] `json:"name"`
	Slug         Optional[string] `json:"slug"`
	DisplayOrder Optional[int]    `json:"displayOrder"`
	ImageURL     Optional[string] `json:"imageUrl"`
}

type CreateOrderInput struct {
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	ShippingAddress string             `json:"shippingAddress"`
	Notes           *string            `json:"notes"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	Items           []models.OrderItem `json:"items"`
}

type CreateAppointmentInput struct {
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	PreferredDate string  `json:"preferredDate"`
	PreferredTime string  `json:"preferredTime"`
	OccasionType  string  `json:"occasionType"`
	Message       *string `json:"message"`
}

type CreateTestimonialInput struct {
	Name       string `json:"name"`
	Role       string `json:"role"`
	Content    string `json:"content"`
	Rating     *int   `json:"rating"`
	Image      string `json:"image"`
	IsFeatured *bool  `json:"isFeatured"`
}

type UpdateTestimonialInput struct {
	Name       Optional[string] `json:"name"`
	Role       Optional[string] `json:"role"`
	Content    Optional[string] `json:"content"`
	Rating     Optional[int]    `json:"rating"`
	Image      Optional[string] `json:"image"`
	IsFeatured Optional[bool]   `json:"isFeatured"`
}

type CreateStoryInput struct {
	Title   string `json:"title"`
	Client  string `json:"client"`
	Date    string `json:"date"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

type UpdateStoryInput struct {
	Title   Optional[string] `json:"title"`
	Client  Optional[string] `json:"client"`
	Date    Optional[string] `json:"date"`
	Excerpt Optional[string] `json:"excerpt"`
	Content Optional[string] `json:"content"`
	Image   Optional[string] `json:"image"`
}

type CreateCommentInput struct {
	StoryID int64  `json:"storyId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type UpsertTrackingCodeInput struct {
	Type     string `json:"type"`
	Code     string `json:"code"`
	IsActive *bool  `json:"isActive"`
}

type CreateHeroSlideInput struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ButtonText   string `json:"buttonText"`
	ButtonLink   string `json:"buttonLink"`
	DisplayOrder *int   `json:"displayOrder"`
	IsActive     *bool  `json:"isActive"`
}

type UpdateHeroSlideInput struct {
	Title        Optional[string] `json:"title"`
	Subtitle     Optional[string] `json:"subtitle"`
	Description  Optional[string] `json:"description"`
	Image        Optional[string] `json:"image"`
	ButtonText   Optional[string] `json:"buttonText"`
	ButtonLink   Optional[string] `json:"buttonLink"`
	DisplayOrder Optional[int]    `json:"displayOrder"`
	IsActive     Optional[bool]   `json:"isActive"`
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}
