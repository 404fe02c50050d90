// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

// view.go provides a Valkey-backed cache of the public JSON view models.
// Each content domain caches its serialized {section, items} payload under
// its own key; admin writes to a domain invalidate that key (plus the
// composed home payload) so the public site never serves stale sections
// longer than one admin action.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// viewKeyPrefix is the Valkey key prefix for cached view models.
	viewKeyPrefix = "view:"

	// DefaultViewTTL is how long a public view model stays cached.
	DefaultViewTTL = 5 * time.Minute

	// HomeKey is the cache key for the composed home payload.
	HomeKey = "home"
)

// ViewCache manages public view-model caching in Valkey. A nil *ViewCache
// is valid and disables caching, so handlers need no nil checks.
type ViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewViewCache creates a view cache backed by the given Valkey client.
func NewViewCache(client *redis.Client, ttl time.Duration) *ViewCache {
	if ttl == 0 {
		ttl = DefaultViewTTL
	}
	return &ViewCache{client: client, ttl: ttl}
}

// Get retrieves the cached JSON payload for a domain key.
func (vc *ViewCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if vc == nil {
		return nil, false
	}
	val, err := vc.client.Get(ctx, viewKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("view cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("view cache hit", "key", key)
	return val, true
}

// Set stores a JSON payload for a domain key with the configured TTL.
func (vc *ViewCache) Set(ctx context.Context, key string, payload []byte) {
	if vc == nil {
		return
	}
	if err := vc.client.Set(ctx, viewKeyPrefix+key, payload, vc.ttl).Err(); err != nil {
		slog.Warn("view cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a domain's cached view along with the composed home
// payload, which embeds every domain.
func (vc *ViewCache) Invalidate(ctx context.Context, key string) {
	if vc == nil {
		return
	}
	if err := vc.client.Del(ctx, viewKeyPrefix+key, viewKeyPrefix+HomeKey).Err(); err != nil {
		slog.Warn("view cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("view cache invalidated", "key", key)
}
