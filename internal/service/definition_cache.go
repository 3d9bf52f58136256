package service

import (
	"sync"
	"time"

	"github.com/lshigami/Quolls/config"
	"github.com/lshigami/Quolls/internal/model"
)

type cacheEntry struct {
	def       *model.AssessmentDefinition
	expiresAt time.Time
}

// DefinitionCache is an owned, injected TTL cache for loaded definitions.
// It exists as an explicit dependency of the loader rather than a
// process-wide table; edit-mode reads bypass it entirely.
type DefinitionCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]cacheEntry
	nowFn   func() time.Time
}

func NewDefinitionCache(cfg *config.Config) *DefinitionCache {
	return &DefinitionCache{
		ttl:     time.Duration(cfg.Catalog.CacheTTLSeconds) * time.Second,
		entries: make(map[string]cacheEntry),
		nowFn:   time.Now,
	}
}

func (c *DefinitionCache) Get(assessmentID string) (*model.AssessmentDefinition, bool) {
	c.mu.RLock()
	entry, ok := c.entries[assessmentID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.nowFn().After(entry.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Put may have refreshed it.
		if cur, still := c.entries[assessmentID]; still && c.nowFn().After(cur.expiresAt) {
			delete(c.entries, assessmentID)
		}
		c.mu.Unlock()
		return nil, false
	}
	return entry.def, true
}

func (c *DefinitionCache) Put(assessmentID string, def *model.AssessmentDefinition) {
	c.mu.Lock()
	c.entries[assessmentID] = cacheEntry{def: def, expiresAt: c.nowFn().Add(c.ttl)}
	c.mu.Unlock()
}
