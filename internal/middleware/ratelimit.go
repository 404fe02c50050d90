// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter provides per-IP rate limiting using fixed windows. It is
// applied to the chat endpoint and the admin API, where a single client
// has no business issuing hundreds of requests per minute.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*windowCounter
	limit   int
	window  time.Duration
	stopCh  chan struct{}
}

// windowCounter counts requests for one client in the current window.
type windowCounter struct {
	start time.Time
	count int
}

// NewRateLimiter creates a rate limiter that allows limit requests per
// window per client IP. A background goroutine drops idle clients.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*windowCounter),
		limit:   limit,
		window:  window,
		stopCh:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// allow checks whether the given key is within the rate limit.
func (rl *RateLimiter) allow(key string) bool {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	wc, ok := rl.clients[key]
	if !ok || now.Sub(wc.start) >= rl.window {
		rl.clients[key] = &windowCounter{start: now, count: 1}
		return true
	}

	if wc.count >= rl.limit {
		return false
	}
	wc.count++
	return true
}

// cleanup removes clients whose window has long expired.
func (rl *RateLimiter) cleanup() {
	cutoff := time.Now().Add(-2 * rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, wc := range rl.clients {
		if wc.start.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

// Middleware returns an HTTP middleware that rate-limits by client IP.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if !rl.allow(ip) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client's IP address, checking X-Forwarded-For
// and X-Real-IP headers for proxied requests.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// The leftmost IP is the original client.
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// Fall back to RemoteAddr (strip port).
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
