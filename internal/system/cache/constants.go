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

package cache

import "time"

const (
	// defaultLocalCacheSize is the maximum item count for the local tier when none is configured.
	defaultLocalCacheSize = 1000
	// defaultCacheTTL is the default TTL for cache entries when the caller does not override it.
	defaultCacheTTL = 300 * time.Second
	// defaultRemoteConnectTimeout bounds the remote tier connection attempt.
	defaultRemoteConnectTimeout = 5 * time.Second
	// defaultRemoteReadTimeout bounds each remote tier round-trip.
	defaultRemoteReadTimeout = 5 * time.Second
	// defaultCleanupInterval is the interval between local tier expiry sweeps.
	defaultCleanupInterval = 300 * time.Second
	// keyPartSeparator joins the parts of a cache key before hashing.
	keyPartSeparator = "|"
)
