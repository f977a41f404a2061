// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the gift
// shop API. Routes are split into the public storefront group under /api
// and the session-protected back-office group under /api/admin.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"giftshop/internal/handlers"
	"giftshop/internal/middleware"
)

// Rate limit policies applied to the public write routes.
const (
	LimitCheckout = "checkout" // orders and appointments
	LimitMessages = "messages" // contact form and story comments
	LimitLogin    = "login"
)

// Limits returns the policies New expects from its limiter. Checkout and
// message routes share perMinute per client; login attempts are capped per
// loginWindow.
func Limits(perMinute, loginAttempts int, loginWindow time.Duration) []middleware.Policy {
	return []middleware.Policy{
		{Name: LimitCheckout, Limit: perMinute, Window: time.Minute},
		{Name: LimitMessages, Limit: perMinute, Window: time.Minute},
		{Name: LimitLogin, Limit: loginAttempts, Window: loginWindow},
	}
}

// New creates and returns the configured Chi router. rc may be nil to turn
// response caching off; limiter may be nil to turn rate limiting off.
func New(
	logger *zap.Logger,
	sessions middleware.SessionGetter,
	rc middleware.ResponseCache,
	limiter *middleware.RateLimiter,
	public *handlers.Public,
	admin *handlers.Admin,
	auth *handlers.Auth,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)

	r.NotFound(middleware.NotFound)
	r.MethodNotAllowed(middleware.MethodNotAllowed)

	r.Get("/health", healthHandler)

	cached := func(resource string) func(http.Handler) http.Handler {
		return middleware.CacheResponses(rc, resource)
	}
	limit := func(policy string) func(http.Handler) http.Handler {
		if limiter == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return limiter.Limit(policy)
	}

	r.Route("/api", func(r chi.Router) {
		// Public storefront.
		r.With(cached(handlers.ResourceProducts)).Route("/products", func(r chi.Router) {
			r.Get("/", public.ListProducts)
			r.Get("/{id}", public.GetProduct)
		})
		r.With(cached(handlers.ResourceCategories)).Route("/categories", func(r chi.Router) {
			r.Get("/", public.ListCategories)
			r.Get("/{id}", public.GetCategory)
		})
		r.With(cached(handlers.ResourceHeroSlides)).Route("/hero-slides", func(r chi.Router) {
			r.Get("/", public.ListHeroSlides)
			r.Get("/{id}", public.GetHeroSlide)
		})
		r.With(cached(handlers.ResourceTestimonials)).Route("/testimonials", func(r chi.Router) {
			r.Get("/", public.ListTestimonials)
			r.Get("/{id}", public.GetTestimonial)
		})
		r.With(cached(handlers.ResourceTrackingCodes)).Route("/tracking-codes", func(r chi.Router) {
			r.Get("/", public.ListTrackingCodes)
			r.Get("/{type}", public.GetTrackingCode)
		})
		r.Route("/stories", func(r chi.Router) {
			r.With(cached(handlers.ResourceStories)).Get("/", public.ListStories)
			r.With(cached(handlers.ResourceStories)).Get("/{id}", public.GetStory)
			r.With(cached(handlers.ResourceComments)).Get("/{id}/comments", public.ListStoryComments)
			r.With(limit(LimitMessages)).Post("/{id}/comments", public.CreateStoryComment)
		})

		// Customer submissions.
		r.Group(func(r chi.Router) {
			r.Use(limit(LimitCheckout))
			r.Post("/orders", public.CreateOrder)
			r.Post("/appointments", public.CreateAppointment)
		})
		r.With(limit(LimitMessages)).Post("/contact", public.Contact)
		r.Get("/orders/by-email", public.OrdersByEmail)

		// Back-office.
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.LoadSession(sessions))

			r.With(limit(LimitLogin), middleware.RequireContentType()).Post("/login", auth.Login)
			r.Post("/logout", auth.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/me", auth.Me)
				r.With(middleware.RequireContentType("multipart/form-data")).Post("/uploads", admin.Upload)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireContentType())
					adminRoutes(r, admin)
				})
			})
		})
	})

	return r
}

// adminRoutes mounts the authenticated JSON routes of the back-office.
func adminRoutes(r chi.Router, admin *handlers.Admin) {
	r.Route("/products", func(r chi.Router) {
		r.Get("/", admin.ProductsList)
		r.Post("/", admin.ProductCreate)
		r.Get("/{id}", admin.ProductGet)
		r.Put("/{id}", admin.ProductUpdate)
		r.Delete("/{id}", admin.ProductDelete)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", admin.CategoriesList)
		r.Post("/", admin.CategoryCreate)
		r.Get("/slug", admin.CategorySlug)
		r.Get("/{id}", admin.CategoryGet)
		r.Put("/{id}", admin.CategoryUpdate)
		r.Delete("/{id}", admin.CategoryDelete)
	})

	r.Route("/hero-slides", func(r chi.Router) {
		r.Get("/", admin.HeroSlidesList)
		r.Post("/", admin.HeroSlideCreate)
		r.Get("/{id}", admin.HeroSlideGet)
		r.Put("/{id}", admin.HeroSlideUpdate)
		r.Delete("/{id}", admin.HeroSlideDelete)
	})

	r.Route("/testimonials", func(r chi.Router) {
		r.Get("/", admin.TestimonialsList)
		r.Post("/", admin.TestimonialCreate)
		r.Get("/{id}", admin.TestimonialGet)
		r.Put("/{id}", admin.TestimonialUpdate)
		r.Delete("/{id}", admin.TestimonialDelete)
	})

	r.Route("/stories", func(r chi.Router) {
		r.Get("/", admin.StoriesList)
		r.Post("/", admin.StoryCreate)
		r.Get("/{id}", admin.StoryGet)
		r.Put("/{id}", admin.StoryUpdate)
		r.Delete("/{id}", admin.StoryDelete)
		r.Get("/{id}/comments", admin.StoryComments)
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/", admin.CommentsList)
		r.Put("/{id}/status", admin.CommentStatus)
		r.Delete("/{id}", admin.CommentDelete)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", admin.OrdersList)
		r.Get("/{id}", admin.OrderGet)
		r.Put("/{id}/status", admin.OrderStatus)
		r.Delete("/{id}", admin.OrderDelete)
	})

	r.Route("/appointments", func(r chi.Router) {
		r.Get("/", admin.AppointmentsList)
		r.Get("/{id}", admin.AppointmentGet)
		r.Put("/{id}/status", admin.AppointmentStatus)
	})

	r.Route("/tracking-codes", func(r chi.Router) {
		r.Get("/", admin.TrackingCodesList)
		r.Post("/", admin.TrackingCodeUpsert)
		r.Delete("/{type}", admin.TrackingCodeDelete)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
