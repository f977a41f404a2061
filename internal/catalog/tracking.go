// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"giftshop/internal/models"
	v "giftshop/internal/validate"
)

func trackingCodeNotFound() *Error {
	return NotFound("TRACKING_CODE_NOT_FOUND", "tracking code not found")
}

func parseTrackingType(typ string) (models.TrackingCodeType, *Error) {
	t := models.TrackingCodeType(strings.TrimSpace(typ))
	if !v.IsOneOf(t, models.TrackingCodeTypes...) {
		return "", Validation("INVALID_TYPE", "type", "type must be meta_pixel or google_adsense")
	}
	return t, nil
}

// ListTrackingCodes returns every code, or only active ones.
func (s *Service) ListTrackingCodes(ctx context.Context, activeOnly bool) (_ []models.TrackingCode, err error) {
	ctx, end := s.startSpan(ctx, "ListTrackingCodes")
	defer end(&err)

	list, rerr := s.trackingCodes.List(ctx, TrackingCodeFilter{ActiveOnly: activeOnly})
	if rerr != nil {
		return nil, s.internal(ctx, "list tracking codes", rerr)
	}
	return list, nil
}

func (s *Service) GetTrackingCode(ctx context.Context, typ string) (_ models.TrackingCode, err error) {
	ctx, end := s.startSpan(ctx, "GetTrackingCode")
	defer end(&err)

	t, terr := parseTrackingType(typ)
	if terr != nil {
		return models.TrackingCode{}, terr
	}
	tc, rerr := s.trackingCodes.GetByType(ctx, t)
	if rerr != nil {
		return models.TrackingCode{}, s.repoError(ctx, "get tracking code", rerr, trackingCodeNotFound())
	}
	return tc, nil
}

// UpsertTrackingCode creates or replaces the code for its type in a single
// atomic write. The record id survives replacement; created reports whether
// a new record was inserted.
func (s *Service) UpsertTrackingCode(ctx context.Context, in UpsertTrackingCodeInput) (_ models.TrackingCode, created bool, err error) {
	ctx, end := s.startSpan(ctx, "UpsertTrackingCode")
	defer end(&err)

	in = normalizeUpsertTrackingCode(in)
	if verr := validateUpsertTrackingCode(in); verr != nil {
		return models.TrackingCode{}, false, verr
	}

	tc, created, rerr := s.trackingCodes.Upsert(ctx, models.TrackingCodeType(in.Type), in.Code, *in.IsActive, s.now())
	if rerr != nil {
		return models.TrackingCode{}, false, s.internal(ctx, "upsert tracking code", rerr)
	}
	s.log(ctx).Info("tracking code saved",
		zap.String("type", in.Type),
		zap.Bool("created", created),
		zap.Bool("active", tc.IsActive),
	)
	return tc, created, nil
}

func (s *Service) DeleteTrackingCode(ctx context.Context, typ string) (_ models.TrackingCode, err error) {
	ctx, end := s.startSpan(ctx, "DeleteTrackingCode")
	defer end(&err)

	t, terr := parseTrackingType(typ)
	if terr != nil {
		return models.TrackingCode{}, terr
	}
	tc, rerr := s.trackingCodes.DeleteByType(ctx, t)
	if rerr != nil {
		return models.TrackingCode{}, s.repoError(ctx, "delete tracking code", rerr, trackingCodeNotFound())
	}
	return tc, nil
}
