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

// StoryStore manages customer stories.
type StoryStore struct {
	db *sql.DB
}

// NewStoryStore returns a new StoryStore.
func NewStoryStore(db *sql.DB) *StoryStore {
	return &StoryStore{db: db}
}

const storyColumns = `id, title, client, date, excerpt, content, image, created_at, updated_at`

func scanStory(sc scanner) (models.Story, error) {
	var st models.Story
	err := sc.Scan(&st.ID, &st.Title, &st.Client, &st.Date, &st.Excerpt, &st.Content, &st.Image, &st.CreatedAt, &st.UpdatedAt)
	return st, err
}

// List returns stories newest first. Search matches title, client or excerpt.
func (s *StoryStore) List(ctx context.Context, f catalog.StoryFilter) ([]models.Story, error) {
	var q query
	if f.Search != "" {
		p := q.bind(likePattern(f.Search))
		q.where("(title ILIKE " + p + " OR client ILIKE " + p + " OR excerpt ILIKE " + p + ")")
	}
	stmt := `SELECT ` + storyColumns + ` FROM stories` + q.whereClause() + ` ORDER BY created_at DESC, id DESC` + q.page(f.Page)
	rows, err := s.db.QueryContext(ctx, stmt, q.args...)
	if err != nil {
		return nil, wrap("list stories", err)
	}
	defer rows.Close()

	items := []models.Story{}
	for rows.Next() {
		st, err := scanStory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan story: %w", err)
		}
		items = append(items, st)
	}
	return items, rows.Err()
}

func (s *StoryStore) Get(ctx context.Context, id int64) (models.Story, error) {
	st, err := scanStory(s.db.QueryRowContext(ctx, `SELECT `+storyColumns+` FROM stories WHERE id = $1`, id))
	return st, wrap("get story", err)
}

func (s *StoryStore) Create(ctx context.Context, st models.Story) (models.Story, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO stories (title, client, date, excerpt, content, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+storyColumns,
		st.Title, st.Client, st.Date, st.Excerpt, st.Content, st.Image, st.CreatedAt, st.UpdatedAt,
	)
	created, err := scanStory(row)
	return created, wrap("create story", err)
}

func (s *StoryStore) Update(ctx context.Context, id int64, patch models.StoryPatch) (models.Story, error) {
	var q query
	set := setList{q: &q}
	if patch.Title != nil {
		set.add("title", *patch.Title)
	}
	if patch.Client != nil {
		set.add("client", *patch.Client)
	}
	if patch.Date != nil {
		set.add("date", *patch.Date)
	}
	if patch.Excerpt != nil {
		set.add("excerpt", *patch.Excerpt)
	}
	if patch.Content != nil {
		set.add("content", *patch.Content)
	}
	if patch.Image != nil {
		set.add("image", *patch.Image)
	}
	set.add("updated_at", patch.UpdatedAt)

	stmt := `UPDATE stories SET ` + set.String() + ` WHERE id = ` + q.bind(id) + ` RETURNING ` + storyColumns
	row := s.db.QueryRowContext(ctx, stmt, q.args...)
	st, err := scanStory(row)
	return st, wrap("update story", err)
}

// Delete removes a story. Its comments are left in place.
func (s *StoryStore) Delete(ctx context.Context, id int64) (models.Story, error) {
	st, err := scanStory(s.db.QueryRowContext(ctx, `DELETE FROM stories WHERE id = $1 RETURNING `+storyColumns, id))
	return st, wrap("delete story", err)
}
