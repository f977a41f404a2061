// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"bytes"
	"context"
	"net/http"

	"giftshop/internal/cache"
)

// ResponseCache is the subset of *cache.ResponseCache the middleware needs.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte)
}

// captureWriter tees the body of a 200 response into buf.
type captureWriter struct {
	responseWriter
	buf bytes.Buffer
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	n, err := cw.responseWriter.Write(b)
	if cw.statusCode == http.StatusOK {
		cw.buf.Write(b[:n])
	}
	return n, err
}

// CacheResponses serves GET requests for resource from rc and stores
// successful responses in it. The key includes the query string. A nil rc
// disables caching.
func CacheResponses(rc ResponseCache, resource string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rc == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := cache.Key(resource, r.URL.RequestURI())
			if body, ok := rc.Get(r.Context(), key); ok {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write(body)
				return
			}

			w.Header().Set("X-Cache", "MISS")
			cw := &captureWriter{responseWriter: responseWriter{ResponseWriter: w, statusCode: http.StatusOK}}
			next.ServeHTTP(cw, r)

			if cw.statusCode == http.StatusOK && cw.buf.Len() > 0 {
				rc.Set(r.Context(), key, cw.buf.Bytes())
			}
		})
	}
}
