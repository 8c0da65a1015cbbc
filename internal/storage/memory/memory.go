package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Cirillio/DonationApp/internal/domain"
	"github.com/Cirillio/DonationApp/pkg/e"
)

type entry struct {
	data     []byte
	expireAt time.Time
}

// Memory — session-store в памяти процесса. Используется в тестах и
// как fallback, когда Redis не сконфигурирован.
type Memory struct {
	mu    sync.RWMutex
	items map[string]entry
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string]entry)}
}

func (m *Memory) Set(_ context.Context, key string, value interface{}, exp time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return e.Wrap("storage.memory.Set marshal", err)
	}

	var expireAt time.Time
	if exp > 0 {
		expireAt = time.Now().Add(exp)
	}

	m.mu.Lock()
	m.items[key] = entry{data: data, expireAt: expireAt}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(_ context.Context, key string, dest *domain.SessionSnapshot) error {
	m.mu.RLock()
	item, ok := m.items[key]
	m.mu.RUnlock()

	if !ok {
		return e.ErrSessionNotFound
	}
	if !item.expireAt.IsZero() && time.Now().After(item.expireAt) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return e.ErrSessionNotFound
	}

	if err := json.Unmarshal(item.data, dest); err != nil {
		return e.Wrap("storage.memory.Get unmarshal", err)
	}
	return nil
}

func (m *Memory) Del(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.items, key)
	m.mu.Unlock()
	return nil
}
