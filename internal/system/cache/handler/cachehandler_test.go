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

package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hubsight/hubsight/internal/system/cache"
	"github.com/hubsight/hubsight/internal/system/config"
)

type CacheHandlerTestSuite struct {
	suite.Suite

	store        *cache.Store
	cacheHandler *CacheHandler
}

func TestCacheHandlerSuite(t *testing.T) {
	suite.Run(t, new(CacheHandlerTestSuite))
}

func (suite *CacheHandlerTestSuite) SetupTest() {
	suite.store = cache.NewStore(config.CacheConfig{LocalSize: 10, TTL: 60})
	suite.cacheHandler = NewCacheHandler(suite.store)
}

func (suite *CacheHandlerTestSuite) TestHandleStatsRequest() {
	suite.store.Set("key", []byte("value"), time.Minute)
	suite.store.Get("key")
	suite.store.Get("absent")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cache/stats", nil)
	rec := httptest.NewRecorder()
	suite.cacheHandler.HandleStatsRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "application/json", rec.Header().Get("Content-Type"))

	var stats cache.Stats
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(suite.T(), 1, stats.LocalSize)
	assert.Equal(suite.T(), 10, stats.LocalCapacity)
	assert.Equal(suite.T(), int64(1), stats.LocalHitCount)
	assert.Equal(suite.T(), int64(1), stats.LocalMissCount)
	assert.False(suite.T(), stats.RemoteEnabled)
}

func (suite *CacheHandlerTestSuite) TestHandleClearRequest() {
	suite.store.Set("key", []byte("value"), time.Minute)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/cache", nil)
	rec := httptest.NewRecorder()
	suite.cacheHandler.HandleClearRequest(rec, req)

	assert.Equal(suite.T(), http.StatusOK, rec.Code)

	var body map[string]bool
	assert.NoError(suite.T(), json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(suite.T(), body["success"])

	_, found := suite.store.Get("key")
	assert.False(suite.T(), found)
}
