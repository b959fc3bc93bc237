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

	"github.com/google/uuid"

	"github.com/hubsight/hubsight/internal/system/constants"
)

// WithRequestID assigns each request a unique identifier, echoed on the
// response. An identifier supplied by the caller is preserved.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constants.RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
			r.Header.Set(constants.RequestIDHeaderName, requestID)
		}
		w.Header().Set(constants.RequestIDHeaderName, requestID)

		next.ServeHTTP(w, r)
	})
}
