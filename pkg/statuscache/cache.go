// Package statuscache provides a small in-process TTL cache for batch
// statuses, so hot status polling does not hit the database on every call.
package statuscache

import (
	"sync"
	"time"

	"github.com/dyadlab/fabula/pkg/models"
)

// DefaultTTL is how long a cached status stays valid.
const DefaultTTL = time.Hour

type entry struct {
	status    models.BatchStatus
	expiresAt time.Time
}

// Cache maps batch IDs to their last known status with per-entry expiry.
// Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry

	now func() time.Time // test seam
}

// New creates a cache with the given TTL. A non-positive ttl uses DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Set stores the status for a batch, resetting its expiry.
func (c *Cache) Set(batchID string, status models.BatchStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[batchID] = entry{
		status:    status,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Get returns the cached status for a batch. The second return value is
// false when the batch is absent or its entry has expired.
func (c *Cache) Get(batchID string) (models.BatchStatus, bool) {
	c.mu.RLock()
	e, ok := c.entries[batchID]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; Set may have refreshed it.
		if cur, ok := c.entries[batchID]; ok && c.now().After(cur.expiresAt) {
			delete(c.entries, batchID)
		}
		c.mu.Unlock()
		return "", false
	}
	return e.status, true
}

// Delete removes a batch from the cache. Used on status transitions so the
// next read goes to the database.
func (c *Cache) Delete(batchID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, batchID)
}

// Len returns the number of entries, including any not yet swept.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes all expired entries and returns how many were dropped.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	dropped := 0
	for id, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, id)
			dropped++
		}
	}
	return dropped
}
