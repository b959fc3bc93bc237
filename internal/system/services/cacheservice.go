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

package services

import (
	"net/http"

	"github.com/hubsight/hubsight/internal/system/cache"
	"github.com/hubsight/hubsight/internal/system/cache/handler"
	"github.com/hubsight/hubsight/internal/system/middleware"
)

// CacheAdminService defines the service for handling cache administration requests.
type CacheAdminService struct {
	cacheHandler *handler.CacheHandler
	apiKeyAuth   *middleware.APIKeyAuth
}

// NewCacheAdminService creates a new instance of CacheAdminService.
func NewCacheAdminService(mux *http.ServeMux, store *cache.Store,
	apiKeyAuth *middleware.APIKeyAuth) ServiceInterface {
	instance := &CacheAdminService{
		cacheHandler: handler.NewCacheHandler(store),
		apiKeyAuth:   apiKeyAuth,
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the CacheAdminService.
func (c *CacheAdminService) RegisterRoutes(mux *http.ServeMux) {
	opts := middleware.CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type, Authorization, X-API-Key",
		AllowCredentials: true,
	}

	mux.HandleFunc(middleware.WithCORS("GET /api/v1/cache/stats",
		c.apiKeyAuth.Wrap(c.cacheHandler.HandleStatsRequest), opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /api/v1/cache",
		c.apiKeyAuth.Wrap(c.cacheHandler.HandleClearRequest), opts))
}
