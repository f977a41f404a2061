// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package lifecycle defines the status machines for orders, appointments and
// comments. The transition graphs are permissive: any valid status may move
// to any other valid status. IsTransitionAllowed is the single point where a
// stricter graph would be introduced.
package lifecycle

import "giftshop/internal/models"

// Machine is a closed set of states with an initial state.
type Machine[S ~string] struct {
	initial S
	states  []S
	allowed map[S]map[S]bool
}

func newMachine[S ~string](initial S, states ...S) Machine[S] {
	allowed := make(map[S]map[S]bool, len(states))
	for _, from := range states {
		allowed[from] = make(map[S]bool, len(states))
		for _, to := range states {
			allowed[from][to] = true
		}
	}
	return Machine[S]{initial: initial, states: states, allowed: allowed}
}

// Valid reports whether s belongs to the machine's state set.
func (m Machine[S]) Valid(s S) bool {
	_, ok := m.allowed[s]
	return ok
}

// Initial returns the state new records start in.
func (m Machine[S]) Initial() S {
	return m.initial
}

// IsTransitionAllowed reports whether a record in from may move to to.
func (m Machine[S]) IsTransitionAllowed(from, to S) bool {
	next, ok := m.allowed[from]
	if !ok {
		return false
	}
	return next[to]
}

// States returns a copy of the state set in declaration order.
func (m Machine[S]) States() []S {
	out := make([]S, len(m.states))
	copy(out, m.states)
	return out
}

// Strings returns the state set as plain strings, for error messages.
func (m Machine[S]) Strings() []string {
	out := make([]string, len(m.states))
	for i, s := range m.states {
		out[i] = string(s)
	}
	return out
}

var (
	// Order is the fulfilment machine for orders.
	Order = newMachine(models.OrderStatusPending,
		models.OrderStatusPending,
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	)

	// Appointment is the booking machine for consultation requests.
	Appointment = newMachine(models.AppointmentStatusPending,
		models.AppointmentStatusPending,
		models.AppointmentStatusConfirmed,
		models.AppointmentStatusCompleted,
		models.AppointmentStatusCancelled,
	)

	// Comment is the moderation machine for story comments.
	Comment = newMachine(models.CommentStatusPending,
		models.CommentStatusPending,
		models.CommentStatusApproved,
		models.CommentStatusRejected,
	)
)

// VisibilityAll is the status filter value that lifts the moderation gate.
const VisibilityAll = "all"

// CommentVisibility returns the comment statuses a reader may see for the
// given status filter. Anything other than "all" yields approved only.
func CommentVisibility(filter string) []models.CommentStatus {
	if filter == VisibilityAll {
		return Comment.States()
	}
	return []models.CommentStatus{models.CommentStatusApproved}
}
