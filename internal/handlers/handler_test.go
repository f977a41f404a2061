// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Handlers run against the in-memory repositories, so nothing here needs
// PostgreSQL or Valkey.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"giftshop/internal/catalog"
	"giftshop/internal/middleware"
	"giftshop/internal/session"
	"giftshop/internal/store/memory"
)

const (
	testAdminUser     = "admin"
	testAdminPassword = "correct horse battery staple"
)

// recordingInvalidator remembers which resources were invalidated.
type recordingInvalidator struct {
	mu        sync.Mutex
	resources []string
}

func (ri *recordingInvalidator) InvalidateResource(_ context.Context, resources ...string) {
	ri.mu.Lock()
	defer ri.mu.Unlock()
	ri.resources = append(ri.resources, resources...)
}

func (ri *recordingInvalidator) has(resource string) bool {
	ri.mu.Lock()
	defer ri.mu.Unlock()
	return slices.Contains(ri.resources, resource)
}

// fakeUploader keeps uploaded objects in memory.
type fakeUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (f *fakeUploader) Upload(_ context.Context, key, contentType string, body io.Reader, _ int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeUploader) FileURL(key string) string {
	return "https://cdn.test/" + key
}

// fakeSessionManager records created and destroyed sessions.
type fakeSessionManager struct {
	created   []string
	destroyed int
	err       error
}

func (f *fakeSessionManager) Create(_ context.Context, w http.ResponseWriter, username string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, username)
	http.SetCookie(w, &http.Cookie{Name: session.CookieName, Value: "test-session"})
	return "test-session", nil
}

func (f *fakeSessionManager) Destroy(context.Context, http.ResponseWriter, *http.Request) error {
	f.destroyed++
	return f.err
}

// testEnv holds all dependencies for handler tests.
type testEnv struct {
	Service  *catalog.Service
	Cache    *recordingInvalidator
	Uploads  *fakeUploader
	Sessions *fakeSessionManager
	Public   *Public
	Admin    *Admin
	Auth     *Auth
}

// newTestEnv creates a complete handler environment on a fresh memory store.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	deps := memory.New().Deps()
	clock := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	deps.Clock = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		clock = clock.Add(time.Second)
		return clock
	}

	svc, err := catalog.New(deps)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	t.Cleanup(svc.Wait)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	inv := &recordingInvalidator{}
	up := newFakeUploader()
	sessions := &fakeSessionManager{}

	return &testEnv{
		Service:  svc,
		Cache:    inv,
		Uploads:  up,
		Sessions: sessions,
		Public:   NewPublic(svc),
		Admin:    NewAdmin(svc, inv, up),
		Auth:     NewAuth(sessions, testAdminUser, string(hash)),
	}
}

// call runs h with a JSON body (empty string for none) and chi URL params
// given as key/value pairs.
func call(t *testing.T, h http.HandlerFunc, method, target, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req = withParams(req, params...)

	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// withParams installs a chi route context carrying the given URL params.
func withParams(req *http.Request, params ...string) *http.Request {
	if len(params) == 0 {
		return req
	}
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(params); i += 2 {
		rctx.URLParams.Add(params[i], params[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, &session.Data{
		Username:  username,
		CreatedAt: time.Now().UTC(),
	})
}

// decode unmarshals the recorder body into v.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

// wantError asserts an error envelope with the given status and code.
func wantError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) errorBody {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	var body errorBody
	decode(t, rec, &body)
	if body.Code != code {
		t.Errorf("code = %q, want %q", body.Code, code)
	}
	if body.Status != status {
		t.Errorf("envelope status = %d, want %d", body.Status, status)
	}
	if body.Error == "" {
		t.Error("envelope error message is empty")
	}
	return body
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return d
}

// mustJSON marshals v for request bodies.
func mustJSON(t *testing.T, v any) string {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.String()
}

const (
	productJSON = `{"name":"Gold Foil Invitation","description":"Letterpress card with gold foil","price":12.5,"category":"wedding","image":"/img/gold.jpg"}`
	orderJSON   = `{"customerName":"Ana Pop","customerEmail":"Ana@Example.com","customerPhone":"+40 700 000 000",
		"shippingAddress":"Str. Lalelelor 1, Cluj","totalAmount":125,"items":[{"name":"Gold Foil Invitation","quantity":10,"unitPrice":12.5}]}`
	storyJSON = `{"title":"Ana & Mihai","client":"Ana Pop","date":"2025-09-12","excerpt":"A vineyard wedding",
		"content":"# Vineyard\n\nWe printed **120** invitations.","image":"/img/story.jpg"}`
	slideJSON = `{"title":"Spring","subtitle":"New collection","description":"Pastel invitations","image":"/img/s.jpg","buttonText":"Shop","buttonLink":"/shop"}`
)
