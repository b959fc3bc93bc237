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

import (
	"container/list"
	"sync"
	"time"
)

// localCacheEntry represents an entry in the local tier with its expiry and
// position in the access order list.
type localCacheEntry struct {
	value       []byte
	expiryTime  time.Time
	listElement *list.Element
}

// localCache is the in-process bounded tier of the cache store. Entries carry a
// per-entry expiry checked at read time; when at capacity, the least recently
// used entry is evicted to admit a new one. All operations are safe for
// concurrent use.
type localCache struct {
	entries     map[string]*localCacheEntry
	accessOrder *list.List
	mu          sync.RWMutex
	capacity    int
	hitCount    int64
	missCount   int64
	evictCount  int64
	now         func() time.Time
}

// newLocalCache creates a new local cache tier with the given capacity.
func newLocalCache(capacity int) *localCache {
	if capacity <= 0 {
		capacity = defaultLocalCacheSize
	}

	return &localCache{
		entries:     make(map[string]*localCacheEntry),
		accessOrder: list.New(),
		capacity:    capacity,
		now:         time.Now,
	}
}

// Get retrieves a value from the local tier. Expired entries are removed on
// read and reported as misses.
func (c *localCache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		c.missCount++
		return nil, false
	}

	if c.now().After(entry.expiryTime) {
		c.deleteEntry(key, entry)
		c.missCount++
		return nil, false
	}

	c.accessOrder.MoveToFront(entry.listElement)
	c.hitCount++
	return entry.value, true
}

// Set adds or updates an entry. Insertion never fails; when the tier is over
// capacity the least recently used entry is evicted.
func (c *localCache) Set(key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiryTime := c.now().Add(ttl)

	if entry, exists := c.entries[key]; exists {
		entry.value = value
		entry.expiryTime = expiryTime
		c.accessOrder.MoveToFront(entry.listElement)
		return
	}

	c.entries[key] = &localCacheEntry{
		value:       value,
		expiryTime:  expiryTime,
		listElement: c.accessOrder.PushFront(key),
	}

	if len(c.entries) > c.capacity {
		c.evictOldest()
	}
}

// Delete removes an entry and reports whether a removal actually occurred.
func (c *localCache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return false
	}
	c.deleteEntry(key, entry)
	return true
}

// Clear removes all entries and resets the counters.
func (c *localCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*localCacheEntry)
	c.accessOrder.Init()
	c.hitCount = 0
	c.missCount = 0
	c.evictCount = 0
}

// Size returns the current item count.
func (c *localCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Capacity returns the maximum item count.
func (c *localCache) Capacity() int {
	return c.capacity
}

// Counters returns the hit, miss and evict counters.
func (c *localCache) Counters() (hits, misses, evicts int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hitCount, c.missCount, c.evictCount
}

// CleanupExpired removes all expired entries from the tier.
func (c *localCache) CleanupExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expiryTime) {
			c.deleteEntry(key, entry)
		}
	}
}

// evictOldest removes the least recently used entry.
func (c *localCache) evictOldest() {
	oldest := c.accessOrder.Back()
	if oldest == nil {
		return
	}

	key := oldest.Value.(string)
	if entry, exists := c.entries[key]; exists {
		c.deleteEntry(key, entry)
		c.evictCount++
	}
}

// deleteEntry removes an entry from both the map and the access order list.
func (c *localCache) deleteEntry(key string, entry *localCacheEntry) {
	delete(c.entries, key)
	c.accessOrder.Remove(entry.listElement)
}
