/*
 * Copyright (c) 2025, Hubsight (https://hubsight.io).
 *
 * Hubsight licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package cache provides a best-effort two-tier cache store: a bounded
// in-process tier and an optional shared remote tier with graceful degradation.
package cache

import (
	"encoding/json"
	"time"

	"github.com/hubsight/hubsight/internal/system/config"
	"github.com/hubsight/hubsight/internal/system/log"
)

const loggerComponentName = "CacheStore"

// Store is a two-tier cache for arbitrary JSON-serializable values. Reads and
// writes favor the remote tier when configured and healthy and fall back
// transparently to the local tier otherwise. No operation ever surfaces a
// remote-tier error to its caller; failures degrade to a miss or a local-only
// write. A disabled store accepts every operation but caches nothing, so
// consumers need no separate code path. A Store is constructed explicitly and
// passed to its consumers.
type Store struct {
	local         *localCache
	remote        *remoteCache
	remoteEnabled bool
	disabled      bool
	defaultTTL    time.Duration
}

// NewStore creates a cache store from the given configuration. When the remote
// tier is enabled but unreachable at construction time, the store silently
// operates in local-only mode for the remainder of its lifetime.
func NewStore(cfg config.CacheConfig) *Store {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	defaultTTL := time.Duration(cfg.TTL) * time.Second
	if defaultTTL <= 0 {
		defaultTTL = defaultCacheTTL
	}

	store := &Store{
		local:         newLocalCache(cfg.LocalSize),
		remoteEnabled: cfg.Remote.Enabled,
		disabled:      cfg.Disabled,
		defaultTTL:    defaultTTL,
	}

	if cfg.Disabled {
		logger.Info("Caching is disabled, all reads bypass the store")
		return store
	}

	if cfg.Remote.Enabled {
		remote, err := newRemoteCache(cfg.Remote)
		if err != nil {
			logger.Warn("Remote cache unavailable, operating in local-only mode", log.Error(err))
		} else {
			store.remote = remote
		}
	}

	return store
}

// DefaultTTL returns the entry TTL used when the caller does not override it.
func (s *Store) DefaultTTL() time.Duration {
	return s.defaultTTL
}

// Get retrieves a value by key. The remote tier is queried first when
// available; a remote failure is treated as a miss and the local tier is
// consulted.
func (s *Store) Get(key string) ([]byte, bool) {
	if s.disabled {
		return nil, false
	}

	if s.remote != nil {
		value, found, err := s.remote.Get(key)
		if err != nil {
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
				Debug("Remote cache read failed, falling back to local tier", log.Error(err))
		} else if found {
			return value, true
		}
	}

	return s.local.Get(key)
}

// Set stores a value under key with the given TTL. The write goes to the
// remote tier when available; on any remote failure the value is written into
// the local tier only. A non-positive TTL selects the default TTL.
func (s *Store) Set(key string, value []byte, ttl time.Duration) bool {
	if s.disabled {
		return false
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	if s.remote != nil {
		err := s.remote.Set(key, value, ttl)
		if err == nil {
			return true
		}
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Debug("Remote cache write failed, writing to local tier", log.Error(err))
	}

	s.local.Set(key, value, ttl)
	return true
}

// Delete removes a key from whichever tier holds it and reports whether a
// removal actually occurred.
func (s *Store) Delete(key string) bool {
	removed := false

	if s.remote != nil {
		remoteRemoved, err := s.remote.Delete(key)
		if err != nil {
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
				Debug("Remote cache delete failed", log.Error(err))
		} else if remoteRemoved {
			removed = true
		}
	}

	if s.local.Delete(key) {
		removed = true
	}
	return removed
}

// Clear empties both tiers unconditionally. It reports false when the remote
// tier could not be flushed; the local tier is cleared regardless.
func (s *Store) Clear() bool {
	success := true

	if s.remote != nil {
		if err := s.remote.Clear(); err != nil {
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
				Warn("Failed to clear remote cache", log.Error(err))
			success = false
		}
	}

	s.local.Clear()
	return success
}

// Stats returns a snapshot of the cache state. It never fails; remote-tier
// fields default to not-connected when the remote tier errors while queried.
func (s *Store) Stats() Stats {
	hits, misses, evicts := s.local.Counters()
	stats := Stats{
		LocalSize:       s.local.Size(),
		LocalCapacity:   s.local.Capacity(),
		LocalHitCount:   hits,
		LocalMissCount:  misses,
		LocalEvictCount: evicts,
		RemoteEnabled:   s.remoteEnabled,
	}

	if s.remote != nil {
		info, err := s.remote.Info()
		if err != nil {
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
				Debug("Failed to query remote cache info", log.Error(err))
		} else {
			stats.RemoteConnected = true
			stats.RemoteUsedMemory = info.usedMemory
			stats.RemoteKeyspaceHits = info.keyspaceHits
			stats.RemoteKeyspaceMisses = info.keyspaceMisses
		}
	}

	return stats
}

// CleanupExpired removes expired entries from the local tier. The remote tier
// expires entries natively.
func (s *Store) CleanupExpired() {
	s.local.CleanupExpired()
}

// StartCleanupRoutine starts a background routine that periodically removes
// expired entries from the local tier. Expiry is also enforced at read time;
// the sweep only reclaims memory held by entries that are never read again.
func (s *Store) StartCleanupRoutine(interval time.Duration) {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for range ticker.C {
			s.CleanupExpired()
		}
	}()
}

// Close releases the remote tier connections, if any.
func (s *Store) Close() error {
	if s.remote != nil {
		return s.remote.Close()
	}
	return nil
}

// GetTyped retrieves a cached value and decodes it into T. A value that fails
// to decode is treated as a miss.
func GetTyped[T any](s *Store, key string) (T, bool) {
	var value T

	raw, found := s.Get(key)
	if !found {
		return value, false
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Debug("Failed to decode cached value", log.Error(err))
		return value, false
	}
	return value, true
}

// SetTyped encodes a value as JSON and stores it under key. Serialization
// failures degrade to a skipped write.
func SetTyped[T any](s *Store, key string, value T, ttl time.Duration) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName)).
			Debug("Failed to encode value for caching", log.Error(err))
		return false
	}
	return s.Set(key, raw, ttl)
}

// GetOrCompute returns the cached value for key or, on absence, invokes produce
// exactly once, stores its result, and returns it. Producer errors propagate to
// the caller unchanged and nothing is cached. Concurrent callers racing on the
// same key may each invoke their own producer; this stampede behavior is an
// accepted trade-off over a lock-per-key scheme.
func GetOrCompute[T any](s *Store, key string, ttl time.Duration, produce func() (T, error)) (T, error) {
	if value, found := GetTyped[T](s, key); found {
		return value, nil
	}

	value, err := produce()
	if err != nil {
		return value, err
	}

	SetTyped(s, key, value, ttl)
	return value, nil
}
