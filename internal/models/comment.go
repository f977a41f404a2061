// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// CommentStatus is the moderation state of a story comment.
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusRejected CommentStatus = "rejected"
)

// Comment is a reader comment on a Story. StoryID is a validated weak
// reference; deleting a story does not remove its comments.
type Comment struct {
	ID        int64         `json:"id"`
	StoryID   int64         `json:"storyId"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Message   string        `json:"message"`
	Status    CommentStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// IsPublic reports whether the comment may be shown to storefront visitors.
func (c *Comment) IsPublic() bool {
	return c.Status == CommentStatusApproved
}
