package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/cloud-ru/credit-calculator-go/internal/validators"
)

// Cache хранит сериализованные результаты расчетов
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// Key строит ключ кэша по проверенным параметрам
func Key(prefix string, r validators.Resolved) string {
	d := xxhash.New()
	_, _ = d.WriteString(string(r.Scheme))
	_, _ = d.WriteString("|" + r.Target.String())
	_, _ = d.WriteString("|" + strconv.FormatInt(r.Principal, 10))
	_, _ = d.WriteString("|" + strconv.FormatFloat(r.Interest, 'g', -1, 64))
	_, _ = d.WriteString("|" + strconv.FormatInt(r.Periods, 10))
	_, _ = d.WriteString("|" + strconv.FormatInt(r.Payment, 10))
	return prefix + ":" + strconv.FormatUint(d.Sum64(), 16)
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache кэш в памяти процесса, безопасен для конкурентного доступа.
// Просроченные записи удаляются при чтении и периодически при записи,
// при заполнении вытесняется запись, которая истекает раньше всех.
type MemoryCache struct {
	mu         sync.RWMutex
	data       map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	nextSweep  time.Time
	now        func() time.Time
}

// NewMemoryCache создает кэш; ttl <= 0 означает хранение без срока,
// maxEntries <= 0 снимает ограничение на число записей
func NewMemoryCache(ttl time.Duration, maxEntries int) *MemoryCache {
	return &MemoryCache{
		data:       make(map[string]memoryEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if entry.expired(m.now()) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	now := m.now()
	entry := memoryEntry{value: value}
	if m.ttl > 0 {
		entry.expiresAt = now.Add(m.ttl)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ttl > 0 && !now.Before(m.nextSweep) {
		m.sweep(now)
		m.nextSweep = now.Add(m.ttl)
	}
	if _, exists := m.data[key]; !exists && m.maxEntries > 0 && len(m.data) >= m.maxEntries {
		m.sweep(now)
		if len(m.data) >= m.maxEntries {
			m.evictOldest()
		}
	}

	m.data[key] = entry
	return nil
}

// sweep удаляет просроченные записи; вызывается под m.mu
func (m *MemoryCache) sweep(now time.Time) {
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

// evictOldest удаляет запись с самым ранним сроком; вызывается под m.mu
func (m *MemoryCache) evictOldest() {
	var (
		victim string
		oldest time.Time
		found  bool
	)
	for key, entry := range m.data {
		if !found || entry.expiresAt.Before(oldest) {
			victim, oldest, found = key, entry.expiresAt, true
		}
	}
	if found {
		delete(m.data, victim)
	}
}
