// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"errors"
)

// ensureSlugAvailable rejects a slug held by any category other than selfID.
// Pass selfID 0 on create. The unique index on categories.slug is the real
// enforcement; this only produces the friendlier error up front.
func (s *Service) ensureSlugAvailable(ctx context.Context, slug string, selfID int64) error {
	existing, err := s.categories.GetBySlug(ctx, slug)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return s.internal(ctx, "check category slug", err)
	}
	if existing.ID != selfID {
		return duplicateSlug()
	}
	return nil
}

// ensureStoryExists rejects comments that point at a missing story.
func (s *Service) ensureStoryExists(ctx context.Context, storyID int64) error {
	_, err := s.stories.Get(ctx, storyID)
	if errors.Is(err, ErrNotFound) {
		return storyNotFound()
	}
	if err != nil {
		return s.internal(ctx, "check story", err)
	}
	return nil
}

func duplicateSlug() *Error {
	return Conflict("DUPLICATE_SLUG", "a category with this slug already exists")
}

func storyNotFound() *Error {
	return NotFound("STORY_NOT_FOUND", "story not found")
}
