// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Testimonial is a customer quote shown on the homepage.
type Testimonial struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	Image      string    `json:"image"`
	IsFeatured bool      `json:"isFeatured"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TestimonialPatch carries the fields of a partial testimonial update.
type TestimonialPatch struct {
	Name       *string
	Role       *string
	Content    *string
	Rating     *int
	Image      *string
	IsFeatured *bool
}
