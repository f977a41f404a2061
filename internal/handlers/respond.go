// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON HTTP handlers for the shop API.
// Handlers are grouped by concern (public, admin, auth) and receive their
// dependencies through the handler struct. They decode requests, call the
// catalog service and encode the result; every business rule lives in the
// service.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"giftshop/internal/catalog"
	"giftshop/internal/observability"
)

// maxBodySize caps JSON request bodies.
const maxBodySize = 1 << 20

// errorBody is the envelope for every error response.
type errorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Status    int    `json:"status"`
	RequestID string `json:"request_id,omitempty"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		observability.FromContext(r.Context()).Warn("encode response", zap.Error(err))
	}
}

// writeError writes the error envelope.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, r, status, errorBody{
		Error:     message,
		Code:      code,
		Status:    status,
		RequestID: chimw.GetReqID(r.Context()),
	})
}

// statusFor maps an error kind onto its HTTP status.
func statusFor(k catalog.Kind) int {
	switch k {
	case catalog.KindValidation:
		return http.StatusBadRequest
	case catalog.KindNotFound:
		return http.StatusNotFound
	case catalog.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err. Catalog errors keep their code and message; any
// other error is logged and hidden behind INTERNAL_ERROR.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var ce *catalog.Error
	if !errors.As(err, &ce) {
		observability.FromContext(r.Context()).Error("unhandled error", zap.Error(err))
		ce = catalog.Internal(err)
	}
	writeError(w, r, statusFor(ce.Kind), ce.Code, ce.Message)
}

// decodeJSON reads the request body into dst. An empty or malformed body is
// INVALID_BODY.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return catalog.Validation("INVALID_BODY", "", "request body too large")
		case errors.Is(err, io.EOF):
			return catalog.Validation("INVALID_BODY", "", "request body is required")
		default:
			return catalog.Validation("INVALID_BODY", "", "request body must be valid JSON")
		}
	}
	return nil
}

// pathID parses the {id} URL parameter as a positive integer.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, catalog.Validation("INVALID_ID", "id", "id must be a positive integer")
	}
	return id, nil
}

// pageParams reads limit and offset. Missing values leave the list default
// in place; the service clamps limit to catalog.MaxLimit.
func pageParams(r *http.Request) (catalog.Page, error) {
	var p catalog.Page
	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, catalog.Validation("INVALID_LIMIT", "limit", "limit must be a positive integer")
		}
		p.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p, catalog.Validation("INVALID_OFFSET", "offset", "offset must be a non-negative integer")
		}
		p.Offset = n
	}
	return p, nil
}

// queryID parses an optional positive integer query parameter. A missing
// value yields 0.
func queryID(r *http.Request, name, code string) (int64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, catalog.Validation(code, name, name+" must be a positive integer")
	}
	return id, nil
}

// flagParam reads a boolean query parameter, returning def when it is
// missing or unparsable.
func flagParam(r *http.Request, name string, def bool) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return def
	}
	return v
}

// deleted writes the delete envelope: {"message": ..., "<key>": entity}.
func deleted(w http.ResponseWriter, r *http.Request, message, key string, entity any) {
	writeJSON(w, r, http.StatusOK, map[string]any{
		"message": message,
		key:       entity,
	})
}
