// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the catalog repositories on PostgreSQL through
// database/sql and the pgx driver. Column names stay snake_case here and
// never leave the package.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"giftshop/internal/catalog"
)

// pgUniqueViolation is the SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface{ Scan(...any) error }

// Deps returns catalog dependencies backed by db. Callers add the notifier,
// logger and clock.
func Deps(db *sql.DB) catalog.Deps {
	return catalog.Deps{
		Products:      NewProductStore(db),
		Categories:    NewCategoryStore(db),
		Orders:        NewOrderStore(db),
		Appointments:  NewAppointmentStore(db),
		Testimonials:  NewTestimonialStore(db),
		Stories:       NewStoryStore(db),
		Comments:      NewCommentStore(db),
		TrackingCodes: NewTrackingCodeStore(db),
		HeroSlides:    NewHeroSlideStore(db),
	}
}

// wrap annotates err with op and translates driver errors into the catalog
// sentinels so callers can match them with errors.Is.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, catalog.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%s: %s: %w", op, pgErr.ConstraintName, catalog.ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// query accumulates WHERE conditions and positional arguments.
type query struct {
	conds []string
	args  []any
}

// bind appends v to the argument list and returns its placeholder.
func (q *query) bind(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

func (q *query) where(cond string) {
	q.conds = append(q.conds, cond)
}

// whereClause renders the accumulated conditions, or "" when there are none.
func (q *query) whereClause() string {
	if len(q.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conds, " AND ")
}

// page renders LIMIT/OFFSET. A non-positive limit leaves the list unbounded.
func (q *query) page(p catalog.Page) string {
	var b strings.Builder
	if p.Limit > 0 {
		b.WriteString(" LIMIT " + q.bind(p.Limit))
	}
	if p.Offset > 0 {
		b.WriteString(" OFFSET " + q.bind(p.Offset))
	}
	return b.String()
}

// likePattern escapes LIKE wildcards in s and wraps it for a substring match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// setList collects "column = $n" assignments for partial updates.
type setList struct {
	q    *query
	sets []string
}

func (s *setList) add(column string, v any) {
	s.sets = append(s.sets, column+" = "+s.q.bind(v))
}

func (s *setList) String() string {
	return strings.Join(s.sets, ", ")
}
