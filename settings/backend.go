// Package settings persists the last committed channel values.
package settings

import (
	"maps"
	"sync"

	"rgbpick/channel"
)

// Backend is a durable mapping from channel to value.
type Backend interface {
	// Load returns the stored values; missing channels are absent.
	Load() (channel.Values, error)
	// Save merges batch into the stored values.
	Save(batch channel.Values) error
}

// MemoryPath selects the in-memory backend in Open.
const MemoryPath = "-"

// Open returns the backend for path: a TOML file, or memory for MemoryPath.
func Open(path string) Backend {
	if path == MemoryPath {
		return NewMemory(nil)
	}
	return NewFile(path)
}

// Memory is a Backend that forgets everything on exit.
type Memory struct {
	mu     sync.Mutex
	values channel.Values
	saves  int
}

func NewMemory(initial channel.Values) *Memory {
	m := &Memory{values: channel.Values{}}
	maps.Copy(m.values, initial)
	return m
}

func (m *Memory) Load() (channel.Values, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.values), nil
}

func (m *Memory) Save(batch channel.Values) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	maps.Copy(m.values, batch)
	m.saves++
	return nil
}

// Saves reports how many batches were saved.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
