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

// Package handler provides HTTP handlers for cache administration requests.
package handler

import (
	"net/http"

	"github.com/hubsight/hubsight/internal/system/cache"
	"github.com/hubsight/hubsight/internal/system/log"
	"github.com/hubsight/hubsight/internal/system/utils"
)

// CacheHandler defines the handler for cache administration API requests.
type CacheHandler struct {
	store *cache.Store
}

// NewCacheHandler creates a new instance of CacheHandler.
func NewCacheHandler(store *cache.Store) *CacheHandler {
	return &CacheHandler{
		store: store,
	}
}

// HandleStatsRequest handles the cache statistics request.
func (ch *CacheHandler) HandleStatsRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheHandler"))

	stats := ch.store.Stats()
	utils.WriteJSON(w, http.StatusOK, stats)

	logger.Debug("Cache stats response sent")
}

// HandleClearRequest handles the administrative cache reset request.
func (ch *CacheHandler) HandleClearRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheHandler"))

	success := ch.store.Clear()
	if !success {
		logger.Warn("Cache clear completed with remote tier failure")
	}

	utils.WriteJSON(w, http.StatusOK, map[string]bool{"success": success})
	logger.Info("Cache cleared", log.Bool("success", success))
}
