// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog is the domain service shared by the public storefront and
// the admin back-office. Every write goes through the same sequence:
// normalize, validate in a fixed field order, run integrity guards, then hand
// off to a repository. Failures come back as *Error.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"giftshop/internal/observability"
)

const (
	tracerName    = "giftshop/internal/catalog"
	notifyTimeout = 10 * time.Second
)

// Notification is a fire-and-forget message about a customer submission.
type Notification struct {
	Event      string
	Subject    string
	ReplyTo    string
	Fields     map[string]string
	OccurredAt time.Time
}

// Notification events.
const (
	EventOrderCreated       = "order.created"
	EventAppointmentCreated = "appointment.created"
	EventCommentCreated     = "comment.created"
	EventContactSubmitted   = "contact.submitted"
)

// Notifier delivers notifications. Errors are logged and never reach the
// caller that triggered the notification.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Deps bundles the collaborators of a Service. Every repository is
// required; Notifier, Logger, Clock and Tracer have defaults.
type Deps struct {
	Products      ProductRepository
	Categories    CategoryRepository
	Orders        OrderRepository
	Appointments  AppointmentRepository
	Testimonials  TestimonialRepository
	Stories       StoryRepository
	Comments      CommentRepository
	TrackingCodes TrackingCodeRepository
	HeroSlides    HeroSlideRepository

	Notifier Notifier
	Logger   *zap.Logger
	Clock    func() time.Time
	Tracer   trace.Tracer
}

// Service implements the catalog and order operations.
type Service struct {
	products      ProductRepository
	categories    CategoryRepository
	orders        OrderRepository
	appointments  AppointmentRepository
	testimonials  TestimonialRepository
	stories       StoryRepository
	comments      CommentRepository
	trackingCodes TrackingCodeRepository
	heroSlides    HeroSlideRepository

	notifier Notifier
	logger   *zap.Logger
	clock    func() time.Time
	tracer   trace.Tracer

	pending sync.WaitGroup
}

// New wires deps into a Service.
func New(deps Deps) (*Service, error) {
	switch {
	case deps.Products == nil:
		return nil, errors.New("catalog: product repository is required")
	case deps.Categories == nil:
		return nil, errors.New("catalog: category repository is required")
	case deps.Orders == nil:
		return nil, errors.New("catalog: order repository is required")
	case deps.Appointments == nil:
		return nil, errors.New("catalog: appointment repository is required")
	case deps.Testimonials == nil:
		return nil, errors.New("catalog: testimonial repository is required")
	case deps.Stories == nil:
		return nil, errors.New("catalog: story repository is required")
	case deps.Comments == nil:
		return nil, errors.New("catalog: comment repository is required")
	case deps.TrackingCodes == nil:
		return nil, errors.New("catalog: tracking code repository is required")
	case deps.HeroSlides == nil:
		return nil, errors.New("catalog: hero slide repository is required")
	}

	s := &Service{
		products:      deps.Products,
		categories:    deps.Categories,
		orders:        deps.Orders,
		appointments:  deps.Appointments,
		testimonials:  deps.Testimonials,
		stories:       deps.Stories,
		comments:      deps.Comments,
		trackingCodes: deps.TrackingCodes,
		heroSlides:    deps.HeroSlides,
		notifier:      deps.Notifier,
		logger:        deps.Logger,
		clock:         deps.Clock,
		tracer:        deps.Tracer,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s, nil
}

// now returns the clock reading in UTC, truncated to what Postgres stores.
func (s *Service) now() time.Time {
	return s.clock().UTC().Truncate(time.Microsecond)
}

func (s *Service) log(ctx context.Context) *zap.Logger {
	return observability.LoggerOr(ctx, s.logger)
}

// startSpan opens a span named catalog.<op>. The returned func ends it and
// records *errp when non-nil.
func (s *Service) startSpan(ctx context.Context, op string) (context.Context, func(errp *error)) {
	ctx, span := s.tracer.Start(ctx, "catalog."+op)
	return ctx, func(errp *error) {
		if errp != nil && *errp != nil {
			span.RecordError(*errp)
			span.SetStatus(codes.Error, CodeOf(*errp))
		}
		span.End()
	}
}

// internal logs err with full detail and returns the generic InternalError.
func (s *Service) internal(ctx context.Context, op string, err error) *Error {
	s.log(ctx).Error("catalog operation failed",
		zap.String("operation", op),
		zap.Error(err),
	)
	return Internal(fmt.Errorf("%s: %w", op, err))
}

// repoError maps a repository failure: ErrNotFound becomes the entity's
// not-found error, ErrConflict on categories becomes DUPLICATE_SLUG, and
// anything else is internal.
func (s *Service) repoError(ctx context.Context, op string, err error, notFound *Error) *Error {
	var ce *Error
	switch {
	case errors.As(err, &ce):
		return ce
	case errors.Is(err, ErrNotFound) && notFound != nil:
		return notFound
	default:
		return s.internal(ctx, op, err)
	}
}

// notify hands n to the notifier on its own goroutine with a context that
// survives the request. Wait drains these on shutdown.
func (s *Service) notify(ctx context.Context, n Notification) {
	if s.notifier == nil {
		return
	}
	n.OccurredAt = s.now()
	logger := s.log(ctx)
	detached := context.WithoutCancel(ctx)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		ctx, cancel := context.WithTimeout(detached, notifyTimeout)
		defer cancel()
		if err := s.notifier.Notify(ctx, n); err != nil {
			logger.Warn("notification failed",
				zap.String("event", n.Event),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until every in-flight notification has finished.
func (s *Service) Wait() {
	s.pending.Wait()
}
