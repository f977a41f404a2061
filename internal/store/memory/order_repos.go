// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package memory

import (
	"context"
	"time"

	"giftshop/internal/catalog"
	"giftshop/internal/models"
)

// cloneOrder copies the item slice so callers cannot reach stored state.
func cloneOrder(o models.Order) models.Order {
	items := make([]models.OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = it
		items[i].ProductID = clonePtr(it.ProductID)
	}
	o.Items = items
	o.Notes = clonePtr(o.Notes)
	return o
}

func cloneAppointment(a models.Appointment) models.Appointment {
	a.Message = clonePtr(a.Message)
	return a
}

// OrderRepo implements catalog.OrderRepository.
type OrderRepo struct{ s *Store }

func (r *OrderRepo) List(_ context.Context, f catalog.OrderFilter) ([]models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := collect(r.s.orders, func(o models.Order) bool {
		if f.Status != "" && o.Status != f.Status {
			return false
		}
		return f.Email == "" || o.CustomerEmail == f.Email
	})
	newestFirst(rows, func(o models.Order) time.Time { return o.CreatedAt }, func(o models.Order) int64 { return o.ID })
	rows = paginate(rows, f.Page)
	for i := range rows {
		rows[i] = cloneOrder(rows[i])
	}
	return rows, nil
}

func (r *OrderRepo) Get(_ context.Context, id int64) (models.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return models.Order{}, catalog.ErrNotFound
	}
	return cloneOrder(o), nil
}

func (r *OrderRepo) Create(_ context.Context, o models.Order) (models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o = cloneOrder(o)
	o.ID = r.s.nextID("orders")
	r.s.orders[o.ID] = o
	return cloneOrder(o), nil
}

func (r *OrderRepo) UpdateStatus(_ context.Context, id int64, status models.OrderStatus, updatedAt time.Time) (models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return models.Order{}, catalog.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	r.s.orders[id] = o
	return cloneOrder(o), nil
}

func (r *OrderRepo) Delete(_ context.Context, id int64) (models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.orders[id]
	if !ok {
		return models.Order{}, catalog.ErrNotFound
	}
	delete(r.s.orders, id)
	return o, nil
}

// AppointmentRepo implements catalog.AppointmentRepository.
type AppointmentRepo struct{ s *Store }

func (r *AppointmentRepo) List(_ context.Context, f catalog.AppointmentFilter) ([]models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rows := collect(r.s.appointments, func(a models.Appointment) bool {
		return f.Status == "" || a.Status == f.Status
	})
	for i := range rows {
		rows[i] = cloneAppointment(rows[i])
	}
	newestFirst(rows, func(a models.Appointment) time.Time { return a.CreatedAt }, func(a models.Appointment) int64 { return a.ID })
	return paginate(rows, f.Page), nil
}

func (r *AppointmentRepo) Get(_ context.Context, id int64) (models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.appointments[id]
	if !ok {
		return models.Appointment{}, catalog.ErrNotFound
	}
	return cloneAppointment(a), nil
}

func (r *AppointmentRepo) Create(_ context.Context, a models.Appointment) (models.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a.ID = r.s.nextID("appointments")
	a = cloneAppointment(a)
	r.s.appointments[a.ID] = a
	return cloneAppointment(a), nil
}

func (r *AppointmentRepo) UpdateStatus(_ context.Context, id int64, status models.AppointmentStatus) (models.Appointment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	a, ok := r.s.appointments[id]
	if !ok {
		return models.Appointment{}, catalog.ErrNotFound
	}
	a.Status = status
	r.s.appointments[id] = a
	return cloneAppointment(a), nil
}
