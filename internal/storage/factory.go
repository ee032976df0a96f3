package storage

import (
	"context"
	"fmt"

	"github.com/mitchleonard/pebble-path/internal"
	"github.com/mitchleonard/pebble-path/internal/config"
)

// NewRepository builds the JournalRepository selected by config. The
// returned closer flushes/releases the backend on shutdown.
func NewRepository(ctx context.Context, cfg *config.Config, logger internal.Logger) (JournalRepository, func() error, error) {
	switch cfg.StorageBackend {
	case "file":
		s, err := NewFileStorage(cfg.DaysFile, cfg.PresetsFile, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "postgres":
		s, err := NewPostgresStorage(cfg.PostgresDSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "firestore":
		s, err := NewFirestoreStorage(ctx, cfg.FirestoreProject, logger)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
