// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"

	"go.uber.org/zap"
)

// notProvided fills optional contact fields in notifications.
const notProvided = "Not provided"

// SubmitContact validates a contact-form message and forwards it to the
// notifier. Nothing is stored.
func (s *Service) SubmitContact(ctx context.Context, in ContactInput) (err error) {
	ctx, end := s.startSpan(ctx, "SubmitContact")
	defer end(&err)

	in = normalizeContact(in)
	if verr := validateContact(in); verr != nil {
		return verr
	}

	phone := in.Phone
	if phone == "" {
		phone = notProvided
	}
	s.log(ctx).Info("contact form submitted",
		zap.String("name", in.Name),
		zap.String("email", in.Email),
	)
	s.notify(ctx, Notification{
		Event:   EventContactSubmitted,
		Subject: "New contact form: " + in.Name,
		ReplyTo: in.Email,
		Fields: map[string]string{
			"name":    in.Name,
			"email":   in.Email,
			"phone":   phone,
			"message": in.Message,
		},
	})
	return nil
}
