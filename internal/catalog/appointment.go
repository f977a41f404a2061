// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"strings"

	"giftshop/internal/lifecycle"
	"giftshop/internal/models"
)

const defaultAppointmentLimit = 50

func appointmentNotFound() *Error {
	return NotFound("APPOINTMENT_NOT_FOUND", "appointment not found")
}

// CreateAppointment books a consultation as pending and notifies the shop.
func (s *Service) CreateAppointment(ctx context.Context, in CreateAppointmentInput) (_ models.Appointment, err error) {
	ctx, end := s.startSpan(ctx, "CreateAppointment")
	defer end(&err)

	in = normalizeCreateAppointment(in)
	if verr := validateCreateAppointment(in); verr != nil {
		return models.Appointment{}, verr
	}

	a, rerr := s.appointments.Create(ctx, models.Appointment{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		OccasionType:  in.OccasionType,
		Message:       in.Message,
		Status:        lifecycle.Appointment.Initial(),
		CreatedAt:     s.now(),
	})
	if rerr != nil {
		return models.Appointment{}, s.internal(ctx, "create appointment", rerr)
	}

	fields := map[string]string{
		"name":          a.Name,
		"phone":         a.Phone,
		"preferredDate": a.PreferredDate,
		"preferredTime": a.PreferredTime,
		"occasionType":  a.OccasionType,
	}
	if a.Message != nil {
		fields["message"] = *a.Message
	}
	s.notify(ctx, Notification{
		Event:   EventAppointmentCreated,
		Subject: "New consultation request from " + a.Name,
		ReplyTo: a.Email,
		Fields:  fields,
	})
	return a, nil
}

func (s *Service) ListAppointments(ctx context.Context, f AppointmentFilter) (_ []models.Appointment, err error) {
	ctx, end := s.startSpan(ctx, "ListAppointments")
	defer end(&err)

	f.Status = models.AppointmentStatus(strings.TrimSpace(string(f.Status)))
	if f.Status != "" && !lifecycle.Appointment.Valid(f.Status) {
		return nil, invalidStatus(lifecycle.Appointment.Strings())
	}
	f.Page = f.Page.withDefault(defaultAppointmentLimit)

	list, rerr := s.appointments.List(ctx, f)
	if rerr != nil {
		return nil, s.internal(ctx, "list appointments", rerr)
	}
	return list, nil
}

func (s *Service) GetAppointment(ctx context.Context, id int64) (_ models.Appointment, err error) {
	ctx, end := s.startSpan(ctx, "GetAppointment")
	defer end(&err)

	a, rerr := s.appointments.Get(ctx, id)
	if rerr != nil {
		return models.Appointment{}, s.repoError(ctx, "get appointment", rerr, appointmentNotFound())
	}
	return a, nil
}

// UpdateAppointmentStatus changes the booking state. Appointments carry no
// modified-at column, so nothing else is touched.
func (s *Service) UpdateAppointmentStatus(ctx context.Context, id int64, status string) (_ models.Appointment, err error) {
	ctx, end := s.startSpan(ctx, "UpdateAppointmentStatus")
	defer end(&err)

	next := models.AppointmentStatus(strings.TrimSpace(status))
	if next == "" {
		return models.Appointment{}, missingStatus()
	}
	if !lifecycle.Appointment.Valid(next) {
		return models.Appointment{}, invalidStatus(lifecycle.Appointment.Strings())
	}

	current, rerr := s.appointments.Get(ctx, id)
	if rerr != nil {
		return models.Appointment{}, s.repoError(ctx, "get appointment", rerr, appointmentNotFound())
	}
	if !lifecycle.Appointment.IsTransitionAllowed(current.Status, next) {
		return models.Appointment{}, invalidTransition(string(current.Status), string(next))
	}

	a, rerr := s.appointments.UpdateStatus(ctx, id, next)
	if rerr != nil {
		return models.Appointment{}, s.repoError(ctx, "update appointment status", rerr, appointmentNotFound())
	}
	return a, nil
}
