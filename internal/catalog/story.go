// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"strings"

	"giftshop/internal/models"
)

const defaultStoryLimit = 20

func (s *Service) ListStories(ctx context.Context, f StoryFilter) (_ []models.Story, err error) {
	ctx, end := s.startSpan(ctx, "ListStories")
	defer end(&err)

	f.Search = strings.TrimSpace(f.Search)
	f.Page = f.Page.withDefault(defaultStoryLimit)
	list, rerr := s.stories.List(ctx, f)
	if rerr != nil {
		return nil, s.internal(ctx, "list stories", rerr)
	}
	return list, nil
}

func (s *Service) GetStory(ctx context.Context, id int64) (_ models.Story, err error) {
	ctx, end := s.startSpan(ctx, "GetStory")
	defer end(&err)

	st, rerr := s.stories.Get(ctx, id)
	if rerr != nil {
		return models.Story{}, s.repoError(ctx, "get story", rerr, storyNotFound())
	}
	return st, nil
}

func (s *Service) CreateStory(ctx context.Context, in CreateStoryInput) (_ models.Story, err error) {
	ctx, end := s.startSpan(ctx, "CreateStory")
	defer end(&err)

	in = normalizeCreateStory(in)
	if verr := validateCreateStory(in); verr != nil {
		return models.Story{}, verr
	}

	now := s.now()
	st, rerr := s.stories.Create(ctx, models.Story{
		Title:     in.Title,
		Client:    in.Client,
		Date:      in.Date,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Image:     in.Image,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if rerr != nil {
		return models.Story{}, s.internal(ctx, "create story", rerr)
	}
	return st, nil
}

func (s *Service) UpdateStory(ctx context.Context, id int64, in UpdateStoryInput) (_ models.Story, err error) {
	ctx, end := s.startSpan(ctx, "UpdateStory")
	defer end(&err)

	in = normalizeUpdateStory(in)
	if verr := validateUpdateStory(in); verr != nil {
		return models.Story{}, verr
	}

	patch := models.StoryPatch{UpdatedAt: s.now()}
	if in.Title.Present() {
		patch.Title = &in.Title.Value
	}
	if in.Client.Present() {
		patch.Client = &in.Client.Value
	}
	if in.Date.Present() {
		patch.Date = &in.Date.Value
	}
	if in.Excerpt.Present() {
		patch.Excerpt = &in.Excerpt.Value
	}
	if in.Content.Present() {
		patch.Content = &in.Content.Value
	}
	if in.Image.Present() {
		patch.Image = &in.Image.Value
	}

	st, rerr := s.stories.Update(ctx, id, patch)
	if rerr != nil {
		return models.Story{}, s.repoError(ctx, "update story", rerr, storyNotFound())
	}
	return st, nil
}

// DeleteStory removes the story only; its comments stay behind.
func (s *Service) DeleteStory(ctx context.Context, id int64) (_ models.Story, err error) {
	ctx, end := s.startSpan(ctx, "DeleteStory")
	defer end(&err)

	st, rerr := s.stories.Delete(ctx, id)
	if rerr != nil {
		return models.Story{}, s.repoError(ctx, "delete story", rerr, storyNotFound())
	}
	return st, nil
}
