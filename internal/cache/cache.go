// Package cache provides a small TTL cache for per-date game snapshots.
// Entries are replaced wholesale on refresh, never merged; a single RWMutex
// is enough since lookups come from the request path and the poller only.
package cache

import (
	"sync"
	"time"

	"nba-scores-dashboard/internal/domain"
)

const defaultTTL = time.Minute

type entry struct {
	games     []domain.Game
	fetchedAt time.Time
}

// Cache memoizes fetched game sets by date key with a fixed TTL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New constructs a Cache with the given TTL. Non-positive TTLs fall back to
// one minute.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached games for a date when the entry is still fresh.
func (c *Cache) Get(date string) ([]domain.Game, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[date]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}

	games := make([]domain.Game, len(e.games))
	copy(games, e.games)
	return games, true
}

// Set replaces the entry for a date with a fresh snapshot.
func (c *Cache) Set(date string, games []domain.Game) {
	snapshot := make([]domain.Game, len(games))
	copy(snapshot, games)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[date] = entry{games: snapshot, fetchedAt: c.now()}
}

// Invalidate drops the entry for a date.
func (c *Cache) Invalidate(date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, date)
}

// InvalidateAll drops every entry; used for user-triggered refresh.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the number of entries currently held, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// SetClock overrides the cache's time source; intended for tests.
func (c *Cache) SetClock(now func() time.Time) {
	if now == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
