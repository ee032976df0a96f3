package storage

import (
	"context"

	"github.com/mitchleonard/pebble-path/internal"
)

// JournalRepository persists one journal document set per user: the full
// date-keyed day map and the presets object. Saves are whole-object
// replacements; there is no per-entry write. Loaded days come back in
// their raw stored shape so callers can run migration on them.
type JournalRepository interface {
	// LoadAll returns everything stored for uid. An empty map and nil
	// presets mean nothing has been saved yet.
	LoadAll(ctx context.Context, uid string) (map[string]internal.RawDay, *internal.Presets, error)
	// SaveDays replaces the user's entire day map.
	SaveDays(ctx context.Context, uid string, days map[string]internal.DayEntry) error
	// SavePresets replaces the user's presets.
	SavePresets(ctx context.Context, uid string, presets internal.Presets) error
}
