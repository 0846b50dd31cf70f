package recent

import (
	"sync"
	"time"
)

// memoryKV is an in-process KV for development and tests, so the server can
// run without Redis. Expiry is checked lazily on read.
type memoryKV struct {
	mu    sync.Mutex
	items map[string]memoryItem
}

type memoryItem struct {
	data      []byte
	expiresAt time.Time
}

// NewMemory creates a store backed by an in-process map.
func NewMemory() *Store {
	return New(&memoryKV{items: make(map[string]memoryItem)})
}

func (m *memoryKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		delete(m.items, key)
		return nil, nil
	}
	return item.data, nil
}

func (m *memoryKV) Set(key string, val []byte, exp time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := memoryItem{data: val}
	if exp > 0 {
		item.expiresAt = time.Now().Add(exp)
	}
	m.items[key] = item
	return nil
}

func (m *memoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.items, key)
	return nil
}
