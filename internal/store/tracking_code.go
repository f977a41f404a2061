// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"giftshop/internal/catalog"
	"giftshop/internal/models"
)

// TrackingCodeStore manages third-party tracking snippets, one row per type.
type TrackingCodeStore struct {
	db *sql.DB
}

// NewTrackingCodeStore returns a new TrackingCodeStore.
func NewTrackingCodeStore(db *sql.DB) *TrackingCodeStore {
	return &TrackingCodeStore{db: db}
}

const trackingCodeColumns = `id, type, code, is_active, created_at, updated_at`

func scanTrackingCode(sc scanner, extra ...any) (models.TrackingCode, error) {
	var tc models.TrackingCode
	dest := append([]any{&tc.ID, &tc.Type, &tc.Code, &tc.IsActive, &tc.CreatedAt, &tc.UpdatedAt}, extra...)
	err := sc.Scan(dest...)
	return tc, err
}

func (s *TrackingCodeStore) List(ctx context.Context, f catalog.TrackingCodeFilter) ([]models.TrackingCode, error) {
	var q query
	if f.ActiveOnly {
		q.where("is_active")
	}
	stmt := `SELECT ` + trackingCodeColumns + ` FROM tracking_codes` + q.whereClause() + ` ORDER BY created_at DESC, id DESC`
	rows, err := s.db.QueryContext(ctx, stmt, q.args...)
	if err != nil {
		return nil, wrap("list tracking codes", err)
	}
	defer rows.Close()

	items := []models.TrackingCode{}
	for rows.Next() {
		tc, err := scanTrackingCode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tracking code: %w", err)
		}
		items = append(items, tc)
	}
	return items, rows.Err()
}

func (s *TrackingCodeStore) GetByType(ctx context.Context, typ models.TrackingCodeType) (models.TrackingCode, error) {
	tc, err := scanTrackingCode(s.db.QueryRowContext(ctx,
		`SELECT `+trackingCodeColumns+` FROM tracking_codes WHERE type = $1`, string(typ)))
	return tc, wrap("get tracking code", err)
}

// Upsert inserts or replaces the code for typ in one statement. xmax is zero
// only on a freshly inserted tuple, which tells the caller which branch ran.
func (s *TrackingCodeStore) Upsert(ctx context.Context, typ models.TrackingCodeType, code string, isActive bool, now time.Time) (models.TrackingCode, bool, error) {
	var inserted bool
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO tracking_codes (type, code, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (type) DO UPDATE SET
			code = EXCLUDED.code,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
		RETURNING `+trackingCodeColumns+`, (xmax = 0)`,
		string(typ), code, isActive, now,
	)
	tc, err := scanTrackingCode(row, &inserted)
	if err != nil {
		return models.TrackingCode{}, false, wrap("upsert tracking code", err)
	}
	return tc, inserted, nil
}

func (s *TrackingCodeStore) DeleteByType(ctx context.Context, typ models.TrackingCodeType) (models.TrackingCode, error) {
	tc, err := scanTrackingCode(s.db.QueryRowContext(ctx,
		`DELETE FROM tracking_codes WHERE type = $1 RETURNING `+trackingCodeColumns, string(typ)))
	return tc, wrap("delete tracking code", err)
}
