// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import "context"

// Cached resource names. The router tags public GET routes with these and
// admin writes invalidate them.
const (
	ResourceProducts      = "products"
	ResourceCategories    = "categories"
	ResourceHeroSlides    = "hero-slides"
	ResourceTestimonials  = "testimonials"
	ResourceStories       = "stories"
	ResourceComments      = "comments"
	ResourceTrackingCodes = "tracking-codes"
)

// Invalidator drops cached responses for resources.
type Invalidator interface {
	InvalidateResource(ctx context.Context, resources ...string)
}

type nopInvalidator struct{}

func (nopInvalidator) InvalidateResource(context.Context, ...string) {}
