package adapter

import (
	"context"
	"sync"
	"time"

	"quiz-assign/internal/domain"
)

type memoryEntry struct {
	value     string
	list      []string
	expiresAt time.Time
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCacheAdapter is an in-process domain.Cache used when no Redis address is
// configured. Entries are not shared between processes.
type MemoryCacheAdapter struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

// NewMemoryCacheAdapter creates an empty in-memory cache.
func NewMemoryCacheAdapter() *MemoryCacheAdapter {
	return &MemoryCacheAdapter{
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

// lookup returns a live entry; the caller must hold mu.
func (m *MemoryCacheAdapter) lookup(key string) (*memoryEntry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(m.now()) {
		delete(m.entries, key)
		return nil, false
	}
	return e, true
}

func (m *MemoryCacheAdapter) deadline(expiration time.Duration) time.Time {
	if expiration <= 0 {
		return time.Time{}
	}
	return m.now().Add(expiration)
}

// Get implements Cache.Get
func (m *MemoryCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return e.value, nil
}

// Set implements Cache.Set
func (m *MemoryCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = &memoryEntry{value: value, expiresAt: m.deadline(expiration)}
	return nil
}

// SetNX implements Cache.SetNX
func (m *MemoryCacheAdapter) SetNX(ctx context.Context, key string, value string, expiration time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lookup(key); ok {
		return false, nil
	}
	m.entries[key] = &memoryEntry{value: value, expiresAt: m.deadline(expiration)}
	return true, nil
}

// Delete implements Cache.Delete
func (m *MemoryCacheAdapter) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

// Ping implements Cache.Ping
func (m *MemoryCacheAdapter) Ping(ctx context.Context) error {
	return nil
}

// LPush implements Cache.LPush
func (m *MemoryCacheAdapter) LPush(ctx context.Context, key string, values ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok {
		e = &memoryEntry{}
		m.entries[key] = e
	}
	for _, v := range values {
		e.list = append([]string{v}, e.list...)
	}
	return nil
}

// normalizeRange applies Redis index semantics (negative indexes count from the end).
func normalizeRange(length int, start, stop int64) (int, int, bool) {
	n := int64(length)
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if start > stop || start >= n {
		return 0, 0, false
	}
	return int(start), int(stop), true
}

// LTrim implements Cache.LTrim
func (m *MemoryCacheAdapter) LTrim(ctx context.Context, key string, start, stop int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok {
		return nil
	}
	from, to, ok := normalizeRange(len(e.list), start, stop)
	if !ok {
		delete(m.entries, key)
		return nil
	}
	e.list = append([]string(nil), e.list[from:to+1]...)
	return nil
}

// LRange implements Cache.LRange
func (m *MemoryCacheAdapter) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok {
		return []string{}, nil
	}
	from, to, ok := normalizeRange(len(e.list), start, stop)
	if !ok {
		return []string{}, nil
	}
	return append([]string{}, e.list[from:to+1]...), nil
}

// Expire implements Cache.Expire
func (m *MemoryCacheAdapter) Expire(ctx context.Context, key string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.lookup(key)
	if !ok {
		return nil
	}
	if expiration <= 0 {
		delete(m.entries, key)
		return nil
	}
	e.expiresAt = m.deadline(expiration)
	return nil
}
