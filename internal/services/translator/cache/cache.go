// Package cache provides the translator memoization store.
// The store is an explicitly owned object handed to the service, never a
// package-level singleton, so tests can construct and reset their own
package cache

import (
	"sync"

	"leadimmo/internal/services/translator/domain"
)

// Store is the memoization seam keyed strictly by cache key
type Store interface {
	Get(key string) (domain.Result, bool)
	Put(key string, r domain.Result)
	Reset()
}

// Memory is an in-process Store with last-writer-wins semantics
type Memory struct {
	mu sync.RWMutex
	m  map[string]domain.Result
}

// NewMemory constructs an empty Memory store
func NewMemory() *Memory {
	return &Memory{m: make(map[string]domain.Result)}
}

// Get returns the cached result for key, if any
func (c *Memory) Get(key string) (domain.Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.m[key]
	return r, ok
}

// Put stores r under key, replacing any prior entry
func (c *Memory) Put(key string, r domain.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = r
}

// Reset drops every entry
func (c *Memory) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m = make(map[string]domain.Result)
}

// Len reports the number of cached entries
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
