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
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/hubsight/hubsight/internal/system/constants"
)

type RequestIDTestSuite struct {
	suite.Suite
}

func TestRequestIDSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (suite *RequestIDTestSuite) TestAssignsIdentifierWhenAbsent() {
	var seenID string
	handler := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = r.Header.Get(constants.RequestIDHeaderName)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.NotEmpty(suite.T(), seenID)
	assert.Equal(suite.T(), seenID, rec.Header().Get(constants.RequestIDHeaderName))

	_, err := uuid.Parse(seenID)
	assert.NoError(suite.T(), err)
}

func (suite *RequestIDTestSuite) TestPreservesCallerSuppliedIdentifier() {
	handler := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.RequestIDHeaderName, "caller-id-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(suite.T(), "caller-id-123", rec.Header().Get(constants.RequestIDHeaderName))
}

func (suite *RequestIDTestSuite) TestIdentifiersAreUniqueAcrossRequests() {
	handler := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		id := rec.Header().Get(constants.RequestIDHeaderName)
		_, duplicate := seen[id]
		assert.False(suite.T(), duplicate)
		seen[id] = struct{}{}
	}
}
