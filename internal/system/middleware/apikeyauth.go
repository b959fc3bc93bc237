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
	"net/http"

	"github.com/hubsight/hubsight/internal/system/config"
	"github.com/hubsight/hubsight/internal/system/constants"
	"github.com/hubsight/hubsight/internal/system/log"
	"github.com/hubsight/hubsight/internal/system/utils"
)

// APIKeyAuth validates an API key header against the configured key list. When
// authentication is disabled in the configuration, requests pass through
// unchanged.
type APIKeyAuth struct {
	enabled    bool
	headerName string
	validKeys  map[string]struct{}
}

// NewAPIKeyAuth creates a new API key authentication middleware from the
// configuration.
func NewAPIKeyAuth(cfg config.AuthConfig) *APIKeyAuth {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = constants.DefaultAPIKeyHeaderName
	}

	validKeys := make(map[string]struct{}, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		validKeys[key] = struct{}{}
	}

	return &APIKeyAuth{
		enabled:    cfg.Enabled,
		headerName: headerName,
		validKeys:  validKeys,
	}
}

// HeaderName returns the header carrying the API key.
func (a *APIKeyAuth) HeaderName() string {
	return a.headerName
}

// Wrap returns a handler that enforces API key authentication before invoking
// the next handler.
func (a *APIKeyAuth) Wrap(next http.HandlerFunc) http.HandlerFunc {
	if !a.enabled {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "APIKeyAuth"))

		apiKey := r.Header.Get(a.headerName)
		if apiKey == "" {
			logger.Warn("API key not provided", log.String("header", a.headerName))
			utils.WriteJSONError(w, "unauthorized", "API key required in header "+a.headerName,
				http.StatusUnauthorized, []map[string]string{
					{"WWW-Authenticate": a.headerName + ` realm="API"`},
				})
			return
		}

		if _, valid := a.validKeys[apiKey]; !valid {
			logger.Warn("Invalid API key provided", log.String("apiKey", log.MaskString(apiKey)))
			utils.WriteJSONError(w, "forbidden", "Invalid API key",
				http.StatusForbidden, nil)
			return
		}

		next(w, r)
	}
}
