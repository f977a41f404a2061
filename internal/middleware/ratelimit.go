// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Policy caps how many requests one client may send to a route group within
// Window. Each policy keeps its own counters, so a customer who used up the
// contact form budget can still check out.
type Policy struct {
	Name   string
	Limit  int
	Window time.Duration
}

// windowCount is the hit count of one client in the current fixed window.
type windowCount struct {
	start time.Time
	count int
}

// RateLimiter counts requests per policy and client IP in fixed windows.
type RateLimiter struct {
	mu       sync.Mutex
	policies map[string]Policy
	counts   map[string]*windowCount // keyed by policy name + client
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter for policies and starts a goroutine that
// drops finished windows every minute. Call Stop to end it.
func NewRateLimiter(policies ...Policy) *RateLimiter {
	rl := &RateLimiter{
		policies: make(map[string]Policy, len(policies)),
		counts:   make(map[string]*windowCount),
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
	for _, p := range policies {
		rl.policies[p.Name] = p
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.sweep()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop terminates the background sweeper. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// allow records a hit by client under p. When the hit does not fit it
// returns false and the time left until the window resets.
func (rl *RateLimiter) allow(p Policy, client string) (bool, time.Duration) {
	now := rl.now()
	key := p.Name + "|" + client

	rl.mu.Lock()
	defer rl.mu.Unlock()

	wc, ok := rl.counts[key]
	if !ok || now.Sub(wc.start) >= p.Window {
		wc = &windowCount{start: now}
		rl.counts[key] = wc
	}
	if wc.count >= p.Limit {
		return false, wc.start.Add(p.Window).Sub(now)
	}
	wc.count++
	return true, 0
}

// sweep removes counters whose window has ended.
func (rl *RateLimiter) sweep() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, wc := range rl.counts {
		name, _, _ := strings.Cut(key, "|")
		if now.Sub(wc.start) >= rl.policies[name].Window {
			delete(rl.counts, key)
		}
	}
}

// Limit returns middleware enforcing the named policy by client IP. Rejected
// requests get a 429 error envelope and a Retry-After header. It panics on a
// policy the limiter was not built with so a wiring mistake fails at startup.
func (rl *RateLimiter) Limit(name string) func(http.Handler) http.Handler {
	p, ok := rl.policies[name]
	if !ok {
		panic(fmt.Sprintf("middleware: unknown rate limit policy %q", name))
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if ok, wait := rl.allow(p, clientIP(r)); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(wait)))
				writeError(w, r, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// retryAfterSeconds rounds wait up to whole seconds, at least one.
func retryAfterSeconds(wait time.Duration) int {
	secs := int((wait + time.Second - 1) / time.Second)
	return max(secs, 1)
}

// clientIP extracts the client's IP address, checking X-Forwarded-For
// and X-Real-IP headers for proxied requests.
func clientIP(r *http.Request) string {
	// Leftmost X-Forwarded-For entry is the original client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
