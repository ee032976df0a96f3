// Package store is the in-memory source of truth for one user's journal.
// Reads are synchronous snapshots; writes apply optimistically and are
// persisted asynchronously as whole-object replacements.
package store

import (
	"context"
	"sync"

	"github.com/mitchleonard/pebble-path/internal"
	"github.com/mitchleonard/pebble-path/internal/auth"
	"github.com/mitchleonard/pebble-path/internal/storage"
)

type Store struct {
	mu      sync.RWMutex
	days    map[string]internal.DayEntry
	presets internal.Presets

	repo    storage.JournalRepository
	session auth.Session
	logger  internal.Logger

	saves sync.WaitGroup
}

// New builds an empty store. Call Bind to react to session changes, or
// Hydrate directly when the session is already signed in.
func New(repo storage.JournalRepository, session auth.Session, logger internal.Logger) *Store {
	return &Store{
		days:    make(map[string]internal.DayEntry),
		presets: internal.DefaultPresets(),
		repo:    repo,
		session: session,
		logger:  logger,
	}
}

// Bind hydrates on sign-in and resets on sign-out.
func (s *Store) Bind() {
	s.session.OnChange(func(uid string, signedIn bool) {
		if signedIn {
			s.Hydrate(context.Background())
		} else {
			s.Reset()
		}
	})
}

// Hydrate loads the signed-in user's full journal, runs every raw day
// through normalization and replaces in-memory state wholesale. Failures
// are logged and leave prior state untouched. No-op when signed out.
func (s *Store) Hydrate(ctx context.Context) {
	uid, ok := s.session.CurrentUID()
	if !ok {
		return
	}

	rawDays, presets, err := s.repo.LoadAll(ctx, uid)
	if err != nil {
		s.logger.Errorf("store: hydrate failed for %s: %v", uid, err)
		return
	}

	migrated := make(map[string]internal.DayEntry, len(rawDays))
	for date, raw := range rawDays {
		migrated[date] = internal.NormalizeEntry(raw, date)
	}

	s.mu.Lock()
	s.days = migrated
	if presets != nil {
		s.presets = *presets
	} else {
		s.presets = internal.DefaultPresets()
	}
	s.mu.Unlock()
}

// Reset clears state back to empty days and default presets (sign-out).
func (s *Store) Reset() {
	s.mu.Lock()
	s.days = make(map[string]internal.DayEntry)
	s.presets = internal.DefaultPresets()
	s.mu.Unlock()
}

// UpsertDay replaces the entry at entry.Date and persists the entire
// updated map in the background. The in-memory update is visible before
// the save settles; a save failure only logs (the optimistic state
// stays). Silently ignored when signed out.
//
// Overlapping saves for the same user are last-write-wins at the
// persistence layer; there is no versioning.
func (s *Store) UpsertDay(ctx context.Context, entry internal.DayEntry) {
	uid, ok := s.session.CurrentUID()
	if !ok {
		return
	}
	if entry.Date == "" {
		s.logger.Warnf("store: dropping day entry without a date")
		return
	}

	s.mu.Lock()
	s.days[entry.Date] = entry
	snapshot := s.copyDaysLocked()
	s.mu.Unlock()

	// The save must outlive the caller: an HTTP request context is
	// canceled as soon as the response is written, before the backend
	// write settles.
	saveCtx := context.WithoutCancel(ctx)
	s.saves.Add(1)
	go func() {
		defer s.saves.Done()
		if err := s.repo.SaveDays(saveCtx, uid, snapshot); err != nil {
			s.logger.Errorf("store: failed to save days for %s: %v", uid, err)
		}
	}()
}

// UpdatePresets applies a pure transform to the presets and persists the
// result. Silently ignored when signed out.
func (s *Store) UpdatePresets(ctx context.Context, updater func(internal.Presets) internal.Presets) {
	uid, ok := s.session.CurrentUID()
	if !ok {
		return
	}

	s.mu.Lock()
	s.presets = updater(s.presets)
	next := s.presets
	s.mu.Unlock()

	saveCtx := context.WithoutCancel(ctx)
	s.saves.Add(1)
	go func() {
		defer s.saves.Done()
		if err := s.repo.SavePresets(saveCtx, uid, next); err != nil {
			s.logger.Errorf("store: failed to save presets for %s: %v", uid, err)
		}
	}()
}

// Day returns the stored entry for date, or a fresh default. The default
// is not persisted; it only becomes durable once the first edit comes
// back through UpsertDay.
func (s *Store) Day(date string) internal.DayEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if e, ok := s.days[date]; ok {
		return e
	}
	return internal.DefaultEntry(date)
}

// Days returns a snapshot copy of the whole day map.
func (s *Store) Days() map[string]internal.DayEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyDaysLocked()
}

// Presets returns the current presets.
func (s *Store) Presets() internal.Presets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.presets
}

// Flush blocks until all in-flight persistence writes have settled.
// Mostly for tests and shutdown.
func (s *Store) Flush() {
	s.saves.Wait()
}

func (s *Store) copyDaysLocked() map[string]internal.DayEntry {
	cp := make(map[string]internal.DayEntry, len(s.days))
	for k, v := range s.days {
		cp[k] = v
	}
	return cp
}
