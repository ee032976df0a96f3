package store

import (
	"context"
	"sync"

	"github.com/mitchleonard/pebble-path/internal"
	"github.com/mitchleonard/pebble-path/internal/auth"
	"github.com/mitchleonard/pebble-path/internal/storage"
)

// managedStore pairs a pooled store with its one-time hydration gate.
type managedStore struct {
	store   *Store
	hydrate sync.Once
}

// Manager pools one hydrated Store per user for the HTTP layer. A store
// is created and hydrated lazily on first access and dropped on Evict
// (the server-side analogue of sign-out).
type Manager struct {
	mu     sync.Mutex
	stores map[string]*managedStore
	repo   storage.JournalRepository
	logger internal.Logger
}

func NewManager(repo storage.JournalRepository, logger internal.Logger) *Manager {
	return &Manager{
		stores: make(map[string]*managedStore),
		repo:   repo,
		logger: logger,
	}
}

// ForUser returns uid's store, hydrating it on first access. Concurrent
// first accesses all wait for the same hydration to finish, so a caller
// never sees (or writes over) the pre-hydration empty map. Hydration
// failures are logged inside the store and yield an empty journal, per
// the recover-at-the-boundary policy.
func (m *Manager) ForUser(ctx context.Context, uid string) *Store {
	m.mu.Lock()
	ms, ok := m.stores[uid]
	if !ok {
		ms = &managedStore{store: New(m.repo, auth.StaticSession(uid), m.logger)}
		m.stores[uid] = ms
	}
	m.mu.Unlock()

	ms.hydrate.Do(func() { ms.store.Hydrate(ctx) })
	return ms.store
}

// Evict flushes and drops uid's store.
func (m *Manager) Evict(uid string) {
	m.mu.Lock()
	ms, ok := m.stores[uid]
	delete(m.stores, uid)
	m.mu.Unlock()

	if ok {
		ms.store.Flush()
		ms.store.Reset()
	}
}

// Flush waits for every pooled store's pending writes (shutdown path).
func (m *Manager) Flush() {
	m.mu.Lock()
	stores := make([]*Store, 0, len(m.stores))
	for _, ms := range m.stores {
		stores = append(stores, ms.store)
	}
	m.mu.Unlock()

	for _, s := range stores {
		s.Flush()
	}
}
