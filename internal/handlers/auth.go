// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"giftshop/internal/middleware"
	"giftshop/internal/observability"
)

// SessionManager creates and destroys admin sessions.
type SessionManager interface {
	Create(ctx context.Context, w http.ResponseWriter, username string) (string, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// Auth groups the admin login handlers. There is a single admin account
// whose bcrypt hash comes from configuration.
type Auth struct {
	sessions     SessionManager
	username     string
	passwordHash []byte
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions SessionManager, username, passwordHash string) *Auth {
	return &Auth{
		sessions:     sessions,
		username:     username,
		passwordHash: []byte(passwordHash),
	}
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the credential and starts a session.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var body loginBody
	if err := decodeJSON(w, r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	body.Username = strings.TrimSpace(body.Username)
	if body.Username == "" || body.Password == "" {
		writeError(w, r, http.StatusBadRequest, "MISSING_CREDENTIALS", "username and password are required")
		return
	}

	if !a.checkCredentials(body.Username, body.Password) {
		observability.FromContext(r.Context()).Warn("admin login failed", zap.String("username", body.Username))
		writeError(w, r, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid username or password")
		return
	}

	if _, err := a.sessions.Create(r.Context(), w, a.username); err != nil {
		respondError(w, r, err)
		return
	}
	observability.FromContext(r.Context()).Info("admin logged in", zap.String("username", a.username))
	writeJSON(w, r, http.StatusOK, map[string]string{"username": a.username})
}

// checkCredentials always runs bcrypt so a wrong username costs the same as
// a wrong password.
func (a *Auth) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	if len(a.passwordHash) == 0 {
		return false
	}
	passOK := bcrypt.CompareHashAndPassword(a.passwordHash, []byte(password)) == nil
	return userOK && passOK
}

// Logout destroys the session. It succeeds even without one.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"message": "Logged out"})
}

// Me reports the signed-in admin. The route sits behind RequireAdmin.
func (a *Auth) Me(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{
		"username":  sess.Username,
		"createdAt": sess.CreatedAt,
	})
}
