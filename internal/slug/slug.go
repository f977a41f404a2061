// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns category names into URL-friendly slugs.
package slug

import (
	"strings"

	gosimple "github.com/gosimple/slug"
)

// maxLength bounds generated slugs; gosimple cuts on a word boundary.
const maxLength = 80

// Generate creates a URL-friendly slug from s. Accented letters are
// transliterated and symbols such as "&" are spelled out.
// Example: "Wedding & Engagement" → "wedding-and-engagement"
func Generate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	out := gosimple.MakeLang(s, "en")
	if len(out) > maxLength {
		out = strings.Trim(out[:maxLength], "-")
	}
	return out
}

// IsValid reports whether s is already in slug form.
func IsValid(s string) bool {
	return gosimple.IsSlug(s)
}
