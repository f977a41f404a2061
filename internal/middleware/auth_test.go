// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"giftshop/internal/session"
)

// fakeSessions returns a fixed result from Get.
type fakeSessions struct {
	data *session.Data
	err  error
}

func (f fakeSessions) Get(context.Context, *http.Request) (*session.Data, error) {
	return f.data, f.err
}

// okHandler is a simple handler that records whether it was invoked.
func okHandler() (http.Handler, *bool) {
	var called bool
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return h, &called
}

func TestSessionFromCtx(t *testing.T) {
	t.Run("returns session when present", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), SessionKey, &session.Data{Username: "admin"})
		got := SessionFromCtx(ctx)
		if got == nil || got.Username != "admin" {
			t.Fatalf("expected admin session, got %+v", got)
		}
	})

	t.Run("returns nil when not present", func(t *testing.T) {
		if got := SessionFromCtx(context.Background()); got != nil {
			t.Errorf("expected nil session, got %+v", got)
		}
	})

	t.Run("returns nil for wrong type in context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), SessionKey, "not-a-session")
		if got := SessionFromCtx(ctx); got != nil {
			t.Errorf("expected nil for wrong type, got %+v", got)
		}
	})
}

func TestLoadSession(t *testing.T) {
	tests := []struct {
		name     string
		store    fakeSessions
		wantUser string
	}{
		{"valid session is stored in context", fakeSessions{data: &session.Data{Username: "admin"}}, "admin"},
		{"missing session leaves context empty", fakeSessions{}, ""},
		{"store error is treated as unauthenticated", fakeSessions{err: errors.New("valkey down")}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *session.Data
			handler := LoadSession(tt.store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = SessionFromCtx(r.Context())
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			switch {
			case tt.wantUser == "" && got != nil:
				t.Errorf("expected no session, got %+v", got)
			case tt.wantUser != "" && (got == nil || got.Username != tt.wantUser):
				t.Errorf("expected session for %q, got %+v", tt.wantUser, got)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	t.Run("rejects anonymous request with 401 envelope", func(t *testing.T) {
		next, called := okHandler()
		rr := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil))

		if *called {
			t.Error("next handler must not run without a session")
		}
		if rr.Code != http.StatusUnauthorized {
			t.Errorf("status: got %d, want 401", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), `"code":"UNAUTHORIZED"`) {
			t.Errorf("body: got %s", rr.Body.String())
		}
	})

	t.Run("passes through with session", func(t *testing.T) {
		next, called := okHandler()
		req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
		req = req.WithContext(context.WithValue(req.Context(), SessionKey, &session.Data{Username: "admin"}))
		rr := httptest.NewRecorder()
		RequireAdmin(next).ServeHTTP(rr, req)

		if !*called {
			t.Error("next handler should run for an admin session")
		}
		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
	})
}
