// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"giftshop/internal/catalog"
	"giftshop/internal/models"
)

// OrderStore manages orders. Line items live in a JSONB column.
type OrderStore struct {
	db *sql.DB
}

// NewOrderStore returns a new OrderStore.
func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

const orderColumns = `id, customer_name, customer_email, customer_phone, shipping_address,
	notes, total_amount, items, status, created_at, updated_at`

func scanOrder(sc scanner) (models.Order, error) {
	var (
		o     models.Order
		items []byte
	)
	err := sc.Scan(
		&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.ShippingAddress,
		&o.Notes, &o.TotalAmount, &items, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return o, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return o, fmt.Errorf("decode order items: %w", err)
	}
	return o, nil
}

// List returns orders newest first, optionally filtered by status and email.
func (s *OrderStore) List(ctx context.Context, f catalog.OrderFilter) ([]models.Order, error) {
	var q query
	if f.Status != "" {
		q.where("status = " + q.bind(string(f.Status)))
	}
	if f.Email != "" {
		q.where("customer_email = " + q.bind(f.Email))
	}
	stmt := `SELECT ` + orderColumns + ` FROM orders` + q.whereClause() + ` ORDER BY created_at DESC, id DESC` + q.page(f.Page)
	rows, err := s.db.QueryContext(ctx, stmt, q.args...)
	if err != nil {
		return nil, wrap("list orders", err)
	}
	defer rows.Close()

	items := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

// Get retrieves an order by id.
func (s *OrderStore) Get(ctx context.Context, id int64) (models.Order, error) {
	o, err := scanOrder(s.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	return o, wrap("get order", err)
}

// Create inserts an order together with its items.
func (s *OrderStore) Create(ctx context.Context, o models.Order) (models.Order, error) {
	items := o.Items
	if items == nil {
		items = []models.OrderItem{}
	}
	encoded, err := json.Marshal(items)
	if err != nil {
		return models.Order{}, fmt.Errorf("encode order items: %w", err)
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, customer_email, customer_phone, shipping_address,
		                    notes, total_amount, items, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+orderColumns,
		o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.ShippingAddress,
		o.Notes, o.TotalAmount, encoded, string(o.Status), o.CreatedAt, o.UpdatedAt,
	)
	created, err := scanOrder(row)
	return created, wrap("create order", err)
}

// UpdateStatus sets the status and stamps updated_at.
func (s *OrderStore) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus, updatedAt time.Time) (models.Order, error) {
	row := s.db.QueryRowContext(ctx,
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3 RETURNING `+orderColumns,
		string(status), updatedAt, id,
	)
	o, err := scanOrder(row)
	return o, wrap("update order status", err)
}

// Delete removes an order and returns it.
func (s *OrderStore) Delete(ctx context.Context, id int64) (models.Order, error) {
	o, err := scanOrder(s.db.QueryRowContext(ctx, `DELETE FROM orders WHERE id = $1 RETURNING `+orderColumns, id))
	return o, wrap("delete order", err)
}
