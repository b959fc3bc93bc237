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

// Package service provides the health check service for the server.
package service

import (
	"github.com/hubsight/hubsight/internal/system/cache"
)

// Status represents the health status of the server.
type Status string

const (
	// StatusUp indicates the server is healthy.
	StatusUp Status = "UP"
	// StatusDown indicates the server is unhealthy.
	StatusDown Status = "DOWN"
)

// ServerStatus holds the readiness state of the server and its cache tiers.
type ServerStatus struct {
	Status      Status `json:"status"`
	CacheRemote string `json:"cache_remote,omitempty"`
}

// HealthCheckService checks the readiness of the server.
type HealthCheckService struct {
	store *cache.Store
}

// NewHealthCheckService creates a new instance of HealthCheckService.
func NewHealthCheckService(store *cache.Store) *HealthCheckService {
	return &HealthCheckService{
		store: store,
	}
}

// CheckReadiness reports the server readiness. Degraded cache availability
// never fails readiness; the remote tier state is surfaced for observability
// only.
func (s *HealthCheckService) CheckReadiness() ServerStatus {
	status := ServerStatus{Status: StatusUp}

	stats := s.store.Stats()
	switch {
	case !stats.RemoteEnabled:
		status.CacheRemote = "disabled"
	case stats.RemoteConnected:
		status.CacheRemote = "connected"
	default:
		status.CacheRemote = "unreachable"
	}

	return status
}
