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

package cache

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hubsight/hubsight/internal/system/config"
	"github.com/hubsight/hubsight/internal/system/log"
)

// remoteCache is the shared remote tier of the cache store, backed by a Redis
// server. Each operation is an independent round-trip bounded by the configured
// read timeout so that a slow or unreachable server cannot stall the calling
// request indefinitely.
type remoteCache struct {
	client      *redis.Client
	readTimeout time.Duration
}

// remoteInfo holds the subset of the server INFO output surfaced in stats.
type remoteInfo struct {
	usedMemory     string
	keyspaceHits   int64
	keyspaceMisses int64
}

// newRemoteCache connects to the configured Redis server and verifies the
// connection with a ping. It returns an error when the server is unreachable;
// the caller is expected to fall back to local-only operation.
func newRemoteCache(cfg config.RemoteCacheConfig) (*remoteCache, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RemoteCache"))

	connectTimeout := time.Duration(cfg.ConnectTimeout) * time.Second
	if connectTimeout <= 0 {
		connectTimeout = defaultRemoteConnectTimeout
	}
	readTimeout := time.Duration(cfg.ReadTimeout) * time.Second
	if readTimeout <= 0 {
		readTimeout = defaultRemoteReadTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.Database,
		DialTimeout:  connectTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: readTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if cerr := client.Close(); cerr != nil {
			logger.Debug("Failed to close remote cache client", log.Error(cerr))
		}
		return nil, err
	}

	logger.Info("Connected to remote cache", log.String("address", cfg.Address))
	return &remoteCache{
		client:      client,
		readTimeout: readTimeout,
	}, nil
}

// Get retrieves a value from the remote tier. A missing key is reported as a
// miss without an error.
func (c *remoteCache) Get(key string) ([]byte, bool, error) {
	ctx, cancel := c.opContext()
	defer cancel()

	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Set writes a value with the given TTL, relying on the server's native expiry.
func (c *remoteCache) Set(key string, value []byte, ttl time.Duration) error {
	ctx, cancel := c.opContext()
	defer cancel()

	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key and reports whether a removal actually occurred.
func (c *remoteCache) Delete(key string) (bool, error) {
	ctx, cancel := c.opContext()
	defer cancel()

	removed, err := c.client.Del(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

// Clear empties the remote tier database.
func (c *remoteCache) Clear() error {
	ctx, cancel := c.opContext()
	defer cancel()

	return c.client.FlushDB(ctx).Err()
}

// Info queries the server for the memory and keyspace statistics surfaced in
// the stats snapshot.
func (c *remoteCache) Info() (remoteInfo, error) {
	ctx, cancel := c.opContext()
	defer cancel()

	raw, err := c.client.Info(ctx, "memory", "stats").Result()
	if err != nil {
		return remoteInfo{}, err
	}
	return parseRemoteInfo(raw), nil
}

// Close releases the underlying client connections.
func (c *remoteCache) Close() error {
	return c.client.Close()
}

// opContext bounds a single remote round-trip. No caller cancellation is
// threaded through cache operations.
func (c *remoteCache) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.readTimeout)
}

// parseRemoteInfo extracts the used memory and keyspace counters from the raw
// INFO output.
func parseRemoteInfo(raw string) remoteInfo {
	info := remoteInfo{}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		switch name {
		case "used_memory_human":
			info.usedMemory = value
		case "keyspace_hits":
			if hits, err := strconv.ParseInt(value, 10, 64); err == nil {
				info.keyspaceHits = hits
			}
		case "keyspace_misses":
			if misses, err := strconv.ParseInt(value, 10, 64); err == nil {
				info.keyspaceMisses = misses
			}
		}
	}

	return info
}
