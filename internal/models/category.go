// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category groups products on the storefront. Slug is unique across all
// categories and DisplayOrder is the ascending sort key.
type Category struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	DisplayOrder int       `json:"displayOrder"`
	ImageURL     *string   `json:"imageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CategoryPatch carries the fields of a partial category update.
// ClearImageURL distinguishes an explicit null from an absent imageUrl.
type CategoryPatch struct {
	Name          *string
	Slug          *string
	DisplayOrder  *int
	ImageURL      *string
	ClearImageURL bool
	UpdatedAt     time.Time
}
