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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hubsight/hubsight/internal/system/config"
	"github.com/hubsight/hubsight/internal/system/constants"
)

type RateLimiterTestSuite struct {
	suite.Suite
}

func TestRateLimiterSuite(t *testing.T) {
	suite.Run(t, new(RateLimiterTestSuite))
}

func (suite *RateLimiterTestSuite) TestDisabledLimiterPassesThrough() {
	limiter := NewRateLimiter(config.RateLimitConfig{Enabled: false}, "")

	for i := 0; i < 10; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		limiter.Wrap(okHandler)(rec, req)

		assert.Equal(suite.T(), http.StatusOK, rec.Code)
	}
}

func (suite *RateLimiterTestSuite) TestBurstExhaustionReturnsTooManyRequests() {
	limiter := NewRateLimiter(config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 3,
	}, "")

	wrapped := limiter.Wrap(okHandler)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:51000"
		rec := httptest.NewRecorder()
		wrapped(rec, req)

		assert.Equal(suite.T(), http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:51000"
	rec := httptest.NewRecorder()
	wrapped(rec, req)

	assert.Equal(suite.T(), http.StatusTooManyRequests, rec.Code)

	var body map[string]any
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(suite.T(), "rate_limit_exceeded", body["code"])
}

func (suite *RateLimiterTestSuite) TestClientsAreThrottledIndependently() {
	limiter := NewRateLimiter(config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 1,
	}, "")

	wrapped := limiter.Wrap(okHandler)

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.1:51000"
	rec := httptest.NewRecorder()
	wrapped(rec, first)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	exhausted := httptest.NewRequest(http.MethodGet, "/", nil)
	exhausted.RemoteAddr = "10.0.0.1:51001"
	rec = httptest.NewRecorder()
	wrapped(rec, exhausted)
	assert.Equal(suite.T(), http.StatusTooManyRequests, rec.Code)

	// A different client keeps its own budget.
	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.2:51000"
	rec = httptest.NewRecorder()
	wrapped(rec, other)
	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}

func (suite *RateLimiterTestSuite) TestIdleClientsAreEvicted() {
	limiter := NewRateLimiter(config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 60,
	}, "")

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }

	for i := 0; i < idlePruneThreshold; i++ {
		limiter.limiterFor(fmt.Sprintf("ip:10.0.%d.%d", i/256, i%256))
	}
	assert.Len(suite.T(), limiter.limiters, idlePruneThreshold)

	// One client stays active while the rest go idle.
	clock = clock.Add(2 * time.Minute)
	limiter.limiterFor("ip:10.0.0.0")

	// Past the idle TTL for everyone but the active client, a new client
	// triggers the eviction sweep.
	clock = clock.Add(2 * time.Minute)
	limiter.limiterFor("ip:192.168.0.1")

	assert.Len(suite.T(), limiter.limiters, 2)
	assert.Contains(suite.T(), limiter.limiters, "ip:10.0.0.0")
	assert.Contains(suite.T(), limiter.limiters, "ip:192.168.0.1")
}

func (suite *RateLimiterTestSuite) TestActiveClientKeepsItsBudgetAcrossSweeps() {
	limiter := NewRateLimiter(config.RateLimitConfig{
		Enabled:           true,
		RequestsPerMinute: 1,
	}, "")

	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return clock }

	assert.True(suite.T(), limiter.limiterFor("ip:10.0.0.1").Allow())
	assert.False(suite.T(), limiter.limiterFor("ip:10.0.0.1").Allow())

	// Staying under the idle TTL keeps the exhausted limiter in place.
	clock = clock.Add(time.Minute)
	assert.False(suite.T(), limiter.limiterFor("ip:10.0.0.1").AllowN(clock, 2))
}

func (suite *RateLimiterTestSuite) TestClientIDPrefersAPIKey() {
	limiter := NewRateLimiter(config.RateLimitConfig{Enabled: true}, "")

	keyed := httptest.NewRequest(http.MethodGet, "/", nil)
	keyed.Header.Set(constants.DefaultAPIKeyHeaderName, "secret-key")
	keyed.RemoteAddr = "10.0.0.1:51000"
	assert.Contains(suite.T(), limiter.clientID(keyed), "api_key:")
	// The raw key never appears in the identifier.
	assert.NotContains(suite.T(), limiter.clientID(keyed), "secret-key")

	anonymous := httptest.NewRequest(http.MethodGet, "/", nil)
	anonymous.RemoteAddr = "10.0.0.1:51000"
	assert.Equal(suite.T(), "ip:10.0.0.1", limiter.clientID(anonymous))
}
