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

// Stats is a point-in-time snapshot of the cache state. It is recomputed on
// every request and has no persisted lifecycle.
type Stats struct {
	LocalSize            int    `json:"local_cache_size"`
	LocalCapacity        int    `json:"local_cache_capacity"`
	LocalHitCount        int64  `json:"local_hit_count"`
	LocalMissCount       int64  `json:"local_miss_count"`
	LocalEvictCount      int64  `json:"local_evict_count"`
	RemoteEnabled        bool   `json:"remote_enabled"`
	RemoteConnected      bool   `json:"remote_connected"`
	RemoteUsedMemory     string `json:"remote_used_memory,omitempty"`
	RemoteKeyspaceHits   int64  `json:"remote_keyspace_hits,omitempty"`
	RemoteKeyspaceMisses int64  `json:"remote_keyspace_misses,omitempty"`
}
