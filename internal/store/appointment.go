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

// AppointmentStore manages appointment requests.
type AppointmentStore struct {
	db *sql.DB
}

// NewAppointmentStore returns a new AppointmentStore.
func NewAppointmentStore(db *sql.DB) *AppointmentStore {
	return &AppointmentStore{db: db}
}

const appointmentColumns = `id, name, email, phone, preferred_date, preferred_time, occasion_type,
	message, status, created_at`

func scanAppointment(sc scanner) (models.Appointment, error) {
	var a models.Appointment
	err := sc.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.PreferredDate, &a.PreferredTime, &a.OccasionType,
		&a.Message, &a.Status, &a.CreatedAt,
	)
	return a, err
}

func (s *AppointmentStore) List(ctx context.Context, f catalog.AppointmentFilter) ([]models.Appointment, error) {
	var q query
	if f.Status != "" {
		q.where("status = " + q.bind(string(f.Status)))
	}
	stmt := `SELECT ` + appointmentColumns + ` FROM appointments` + q.whereClause() + ` ORDER BY created_at DESC, id DESC` + q.page(f.Page)
	rows, err := s.db.QueryContext(ctx, stmt, q.args...)
	if err != nil {
		return nil, wrap("list appointments", err)
	}
	defer rows.Close()

	items := []models.Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (s *AppointmentStore) Get(ctx context.Context, id int64) (models.Appointment, error) {
	a, err := scanAppointment(s.db.QueryRowContext(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id))
	return a, wrap("get appointment", err)
}

func (s *AppointmentStore) Create(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO appointments (name, email, phone, preferred_date, preferred_time, occasion_type,
		                          message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+appointmentColumns,
		a.Name, a.Email, a.Phone, a.PreferredDate, a.PreferredTime, a.OccasionType,
		a.Message, string(a.Status), a.CreatedAt,
	)
	created, err := scanAppointment(row)
	return created, wrap("create appointment", err)
}

// UpdateStatus sets the status. Appointments have no modified-at column.
func (s *AppointmentStore) UpdateStatus(ctx context.Context, id int64, status models.AppointmentStatus) (models.Appointment, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE appointments SET status = $1 WHERE id = $2 RETURNING `+appointmentColumns,
		string(status), id,
	)
	a, err := scanAppointment(row)
	return a, wrap("update appointment status", err)
}
