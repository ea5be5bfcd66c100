package kv

import (
	"context"
	"maps"
	"sync"
)

// Memory is an in-process Repository. Values are copied on the way in and
// out so callers cannot alias stored bytes.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return clone(v), nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = clone(value)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *Memory) List(_ context.Context) (map[string][]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string][]byte, len(m.data))
	for k, v := range m.data {
		out[k] = clone(v)
	}
	return out, nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.data)
	return nil
}

// Atomic applies fn to a scratch copy of the data and publishes it only when
// fn succeeds. Memory is not meant for concurrent writers; a write made by
// another goroutine while fn runs is lost.
func (m *Memory) Atomic(ctx context.Context, fn func(ctx context.Context, repo Repository) error) error {
	m.mu.Lock()
	scratch := &Memory{data: maps.Clone(m.data)}
	m.mu.Unlock()

	if err := fn(ctx, scratch); err != nil {
		return err
	}

	m.mu.Lock()
	m.data = scratch.data
	m.mu.Unlock()
	return nil
}
