// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Story is an "invitation story": a showcase of a past client order.
// Content is Markdown.
type Story struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Client    string    `json:"client"`
	Date      string    `json:"date"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StoryPatch carries the fields of a partial story update.
type StoryPatch struct {
	Title     *string
	Client    *string
	Date      *string
	Excerpt   *string
	Content   *string
	Image     *string
	UpdatedAt time.Time
}
