package vault

import (
	"context"
	"sync"
)

// Memory is a thread-safe in-memory Vault. Stored slices are copied on the
// way in and out so callers cannot mutate vault contents.
type Memory struct {
	sync.RWMutex
	items map[string][]byte
}

// NewMemory creates an empty in-memory vault.
func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.RLock()
	defer m.RUnlock()
	v, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.Lock()
	defer m.Unlock()
	m.items[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) SetMany(ctx context.Context, values map[string][]byte) error {
	m.Lock()
	defer m.Unlock()
	for k, v := range values {
		m.items[k] = append([]byte(nil), v...)
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.Lock()
	defer m.Unlock()
	delete(m.items, key)
	return nil
}

// Len reports the number of stored keys.
func (m *Memory) Len() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.items)
}
