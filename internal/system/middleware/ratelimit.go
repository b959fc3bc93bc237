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

package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/hubsight/hubsight/internal/system/config"
	"github.com/hubsight/hubsight/internal/system/constants"
	"github.com/hubsight/hubsight/internal/system/log"
	"github.com/hubsight/hubsight/internal/system/utils"
)

const (
	// idleClientTTL is how long a client may stay idle before its limiter is
	// eligible for eviction. An idle client has regained its full burst, so
	// dropping the limiter does not change what it is allowed to do.
	idleClientTTL = 3 * time.Minute
	// idlePruneThreshold is the tracked client count at which an eviction
	// sweep runs before admitting a new client.
	idlePruneThreshold = 1000
)

// clientLimiter pairs a client's limiter with its last request time.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client. Clients are identified by their
// API key when present, falling back to the remote IP address. Limiters for
// idle clients are evicted so the tracked set stays bounded.
type RateLimiter struct {
	enabled    bool
	limit      rate.Limit
	burst      int
	headerName string
	limiters   map[string]*clientLimiter
	mu         sync.Mutex
	now        func() time.Time
}

// NewRateLimiter creates a new rate limiting middleware from the configuration.
func NewRateLimiter(cfg config.RateLimitConfig, apiKeyHeader string) *RateLimiter {
	requestsPerMinute := cfg.RequestsPerMinute
	if requestsPerMinute <= 0 {
		requestsPerMinute = 60
	}
	if apiKeyHeader == "" {
		apiKeyHeader = constants.DefaultAPIKeyHeaderName
	}

	return &RateLimiter{
		enabled:    cfg.Enabled,
		limit:      rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:      requestsPerMinute,
		headerName: apiKeyHeader,
		limiters:   make(map[string]*clientLimiter),
		now:        time.Now,
	}
}

// Wrap returns a handler that enforces the rate limit before invoking the next
// handler.
func (rl *RateLimiter) Wrap(next http.HandlerFunc) http.HandlerFunc {
	if !rl.enabled {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		clientID := rl.clientID(r)

		if !rl.limiterFor(clientID).Allow() {
			log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RateLimiter")).
				Warn("Rate limit exceeded", log.String("client", clientID))
			utils.WriteJSONError(w, "rate_limit_exceeded", "Too many requests",
				http.StatusTooManyRequests, nil)
			return
		}

		next(w, r)
	}
}

// limiterFor returns the limiter for a client, creating one on first use and
// refreshing its last request time. Before a new client is admitted to a full
// tracked set, limiters idle past idleClientTTL are evicted.
func (rl *RateLimiter) limiterFor(clientID string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()

	entry, exists := rl.limiters[clientID]
	if !exists {
		if len(rl.limiters) >= idlePruneThreshold {
			rl.pruneIdle(now)
		}
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[clientID] = entry
	}
	entry.lastSeen = now

	return entry.limiter
}

// pruneIdle drops limiters whose clients have been idle past idleClientTTL.
// The caller must hold the mutex.
func (rl *RateLimiter) pruneIdle(now time.Time) {
	for clientID, entry := range rl.limiters {
		if now.Sub(entry.lastSeen) > idleClientTTL {
			delete(rl.limiters, clientID)
		}
	}
}

// clientID derives a client identifier from the request, preferring the API
// key over the remote IP.
func (rl *RateLimiter) clientID(r *http.Request) string {
	if apiKey := r.Header.Get(rl.headerName); apiKey != "" {
		return "api_key:" + log.MaskString(apiKey)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
