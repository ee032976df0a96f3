package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/mitchleonard/pebble-path/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStorage(t *testing.T, dir string) *FileStorage {
	s, err := NewFileStorage(filepath.Join(dir, "days.json"), filepath.Join(dir, "presets.json"), internal.NopLogger())
	require.NoError(t, err)
	return s
}

func TestFileStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s := newTestFileStorage(t, dir)
	e := internal.DefaultEntry("2025-01-07")
	e.Mood = 5
	e.Notes = "persisted"
	require.NoError(t, s.SaveDays(ctx, "u1", map[string]internal.DayEntry{"2025-01-07": e}))
	require.NoError(t, s.SavePresets(ctx, "u1", internal.Presets{Workouts: []string{"OTF"}, QuickMeals: []string{"Smoothie"}}))
	require.NoError(t, s.Close())

	// A fresh instance reads everything back from disk, in raw form.
	s2 := newTestFileStorage(t, dir)
	defer s2.Close()

	rawDays, presets, err := s2.LoadAll(ctx, "u1")
	require.NoError(t, err)
	require.Contains(t, rawDays, "2025-01-07")
	got := internal.NormalizeEntry(rawDays["2025-01-07"], "2025-01-07")
	assert.Equal(t, 5, got.Mood)
	assert.Equal(t, "persisted", got.Notes)

	require.NotNil(t, presets)
	assert.Equal(t, []string{"OTF"}, presets.Workouts)
	assert.Equal(t, []string{"Smoothie"}, presets.QuickMeals)
}

func TestFileStorageEmptyForUnknownUser(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()

	rawDays, presets, err := s.LoadAll(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, rawDays)
	assert.Nil(t, presets)
}

func TestFileStorageUsersAreIsolated(t *testing.T) {
	s := newTestFileStorage(t, t.TempDir())
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.SaveDays(ctx, "u1", map[string]internal.DayEntry{
		"2025-01-07": internal.DefaultEntry("2025-01-07"),
	}))

	rawDays, _, err := s.LoadAll(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, rawDays)
}
