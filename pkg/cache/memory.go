package cache

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// Memory is an in-process cache for single-instance deployments.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]entry
	generation atomic.Int64
	now        func() time.Time
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entry), now: time.Now}
}

func (m *Memory) Get(_ context.Context, key string, dest interface{}) bool {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || m.now().After(e.expiresAt) {
		observe("memory", false)
		return false
	}
	if err := json.Unmarshal(e.data, dest); err != nil {
		observe("memory", false)
		return false
	}
	observe("memory", true)
	return true
}

func (m *Memory) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.entries[key] = entry{data: data, expiresAt: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Generation(context.Context) (int64, error) {
	return m.generation.Load(), nil
}

// Bump advances the generation and drops every stored entry.
func (m *Memory) Bump(context.Context) error {
	m.mu.Lock()
	m.generation.Add(1)
	m.entries = make(map[string]entry)
	m.mu.Unlock()
	return nil
}

func (m *Memory) Close() error { return nil }
