// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"giftshop/internal/catalog"
	"giftshop/internal/models"
)

// CommentStore manages story comments and their moderation status.
type CommentStore struct {
	db *sql.DB
}

// NewCommentStore returns a new CommentStore.
func NewCommentStore(db *sql.DB) *CommentStore {
	return &CommentStore{db: db}
}

const commentColumns = `id, story_id, name, email, message, status, created_at`

func scanComment(sc scanner) (models.Comment, error) {
	var c models.Comment
	err := sc.Scan(&c.ID, &c.StoryID, &c.Name, &c.Email, &c.Message, &c.Status, &c.CreatedAt)
	return c, err
}

// List returns comments newest first, scoped to a story and a status set
// when those are given.
func (s *CommentStore) List(ctx context.Context, f catalog.CommentFilter) ([]models.Comment, error) {
	var q query
	if f.StoryID > 0 {
		q.where("story_id = " + q.bind(f.StoryID))
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, st := range f.Statuses {
			statuses[i] = string(st)
		}
		q.where("status = ANY(" + q.bind(statuses) + ")")
	}
	stmt := `SELECT ` + commentColumns + ` FROM comments` + q.whereClause() + ` ORDER BY created_at DESC, id DESC` + q.page(f.Page)
	rows, err := s.db.QueryContext(ctx, stmt, q.args...)
	if err != nil {
		return nil, wrap("list comments", err)
	}
	defer rows.Close()

	items := []models.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (s *CommentStore) Get(ctx context.Context, id int64) (models.Comment, error) {
	c, err := scanComment(s.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM comments WHERE id = $1`, id))
	return c, wrap("get comment", err)
}

func (s *CommentStore) Create(ctx context.Context, c models.Comment) (models.Comment, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (story_id, name, email, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+commentColumns,
		c.StoryID, c.Name, c.Email, c.Message, string(c.Status), c.CreatedAt,
	)
	created, err := scanComment(row)
	return created, wrap("create comment", err)
}

func (s *CommentStore) UpdateStatus(ctx context.Context, id int64, status models.CommentStatus) (models.Comment, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE comments SET status = $1 WHERE id = $2 RETURNING `+commentColumns,
		string(status), id,
	)
	c, err := scanComment(row)
	return c, wrap("update comment status", err)
}

func (s *CommentStore) Delete(ctx context.Context, id int64) (models.Comment, error) {
	c, err := scanComment(s.db.QueryRowContext(ctx, `DELETE FROM comments WHERE id = $1 RETURNING `+commentColumns, id))
	return c, wrap("delete comment", err)
}
