// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// HeroSlide is one frame of the homepage carousel. Active slides are shown
// in ascending DisplayOrder.
type HeroSlide struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	ButtonText   string    `json:"buttonText"`
	ButtonLink   string    `json:"buttonLink"`
	DisplayOrder int       `json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// HeroSlidePatch carries the fields of a partial hero slide update.
type HeroSlidePatch struct {
	Title        *string
	Subtitle     *string
	Description  *string
	Image        *string
	ButtonText   *string
	ButtonLink   *string
	DisplayOrder *int
	IsActive     *bool
	UpdatedAt    time.Time
}
