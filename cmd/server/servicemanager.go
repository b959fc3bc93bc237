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

package main

import (
	"net/http"

	"github.com/hubsight/hubsight/internal/github"
	"github.com/hubsight/hubsight/internal/system/cache"
	"github.com/hubsight/hubsight/internal/system/config"
	"github.com/hubsight/hubsight/internal/system/middleware"
	"github.com/hubsight/hubsight/internal/system/services"
)

// registerServices registers all the services with the provided HTTP multiplexer.
func registerServices(mux *http.ServeMux, cfg *config.Config, store *cache.Store,
	client *github.Client) {
	apiKeyAuth := middleware.NewAPIKeyAuth(cfg.Auth)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, apiKeyAuth.HeaderName())

	// Register the health service.
	services.NewHealthCheckService(mux, store)

	// Register the GitHub data service.
	services.NewGitHubService(mux, client, apiKeyAuth, rateLimiter)

	// Register the cache administration service.
	services.NewCacheAdminService(mux, store, apiKeyAuth)
}
