// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"strconv"
	"strings"

	"giftshop/internal/lifecycle"
	"giftshop/internal/models"
)

const defaultCommentLimit = 50

func commentNotFound() *Error {
	return NotFound("COMMENT_NOT_FOUND", "comment not found")
}

// CreateComment queues a reader comment for moderation. The story must
// exist at the time of the call.
func (s *Service) CreateComment(ctx context.Context, in CreateCommentInput) (_ models.Comment, err error) {
	ctx, end := s.startSpan(ctx, "CreateComment")
	defer end(&err)

	in = normalizeCreateComment(in)
	if verr := validateCreateComment(in); verr != nil {
		return models.Comment{}, verr
	}
	if gerr := s.ensureStoryExists(ctx, in.StoryID); gerr != nil {
		return models.Comment{}, gerr
	}

	c, rerr := s.comments.Create(ctx, models.Comment{
		StoryID:   in.StoryID,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Status:    lifecycle.Comment.Initial(),
		CreatedAt: s.now(),
	})
	if rerr != nil {
		return models.Comment{}, s.internal(ctx, "create comment", rerr)
	}

	s.notify(ctx, Notification{
		Event:   EventCommentCreated,
		Subject: "New comment awaiting moderation",
		ReplyTo: c.Email,
		Fields: map[string]string{
			"storyId": strconv.FormatInt(c.StoryID, 10),
			"name":    c.Name,
			"message": c.Message,
		},
	})
	return c, nil
}

// ListCommentsForStory applies the moderation gate: only approved comments
// unless visibility is "all".
func (s *Service) ListCommentsForStory(ctx context.Context, storyID int64, visibility string, page Page) (_ []models.Comment, err error) {
	ctx, end := s.startSpan(ctx, "ListCommentsForStory")
	defer end(&err)

	if storyID <= 0 {
		return nil, Validation("MISSING_STORY_ID", "storyId", "story id is required")
	}
	list, rerr := s.comments.List(ctx, CommentFilter{
		StoryID:  storyID,
		Statuses: lifecycle.CommentVisibility(strings.TrimSpace(visibility)),
		Page:     page.withDefault(defaultCommentLimit),
	})
	if rerr != nil {
		return nil, s.internal(ctx, "list story comments", rerr)
	}
	return list, nil
}

// ListComments is the admin moderation queue. An empty status lists every
// comment; storyID 0 spans all stories.
func (s *Service) ListComments(ctx context.Context, status string, storyID int64, page Page) (_ []models.Comment, err error) {
	ctx, end := s.startSpan(ctx, "ListComments")
	defer end(&err)

	f := CommentFilter{StoryID: storyID, Page: page.withDefault(defaultCommentLimit)}
	st := strings.TrimSpace(status)
	switch {
	case st == "" || st == lifecycle.VisibilityAll:
	case lifecycle.Comment.Valid(models.CommentStatus(st)):
		f.Statuses = []models.CommentStatus{models.CommentStatus(st)}
	default:
		return nil, invalidStatus(lifecycle.Comment.Strings())
	}

	list, rerr := s.comments.List(ctx, f)
	if rerr != nil {
		return nil, s.internal(ctx, "list comments", rerr)
	}
	return list, nil
}

// ModerateComment sets a comment's moderation status.
func (s *Service) ModerateComment(ctx context.Context, id int64, status string) (_ models.Comment, err error) {
	ctx, end := s.startSpan(ctx, "ModerateComment")
	defer end(&err)

	next := models.CommentStatus(strings.TrimSpace(status))
	if next == "" {
		return models.Comment{}, missingStatus()
	}
	if !lifecycle.Comment.Valid(next) {
		return models.Comment{}, invalidStatus(lifecycle.Comment.Strings())
	}

	current, rerr := s.comments.Get(ctx, id)
	if rerr != nil {
		return models.Comment{}, s.repoError(ctx, "get comment", rerr, commentNotFound())
	}
	if !lifecycle.Comment.IsTransitionAllowed(current.Status, next) {
		return models.Comment{}, invalidTransition(string(current.Status), string(next))
	}

	c, rerr := s.comments.UpdateStatus(ctx, id, next)
	if rerr != nil {
		return models.Comment{}, s.repoError(ctx, "moderate comment", rerr, commentNotFound())
	}
	return c, nil
}

func (s *Service) DeleteComment(ctx context.Context, id int64) (_ models.Comment, err error) {
	ctx, end := s.startSpan(ctx, "DeleteComment")
	defer end(&err)

	c, rerr := s.comments.Delete(ctx, id)
	if rerr != nil {
		return models.Comment{}, s.repoError(ctx, "delete comment", rerr, commentNotFound())
	}
	return c, nil
}
