package storage

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mitchleonard/pebble-path/internal"
)

// PostgresStorage stores day entries and presets as JSONB documents:
//
//	journal_days(user_id TEXT, date TEXT, entry JSONB, PRIMARY KEY (user_id, date))
//	journal_presets(user_id TEXT PRIMARY KEY, presets JSONB)
//
// SaveDays is a full replace inside one transaction, matching the
// whole-map write semantics of the store.
type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// --- JournalRepository ---

func (p *PostgresStorage) LoadAll(ctx context.Context, uid string) (map[string]internal.RawDay, *internal.Presets, error) {
	rows, err := p.pool.Query(ctx, `SELECT date, entry FROM journal_days WHERE user_id = $1`, uid)
	if err != nil {
		p.logger.Errorf("failed to query days: %v", err)
		return nil, nil, err
	}
	defer rows.Close()

	days := make(map[string]internal.RawDay)
	for rows.Next() {
		var date string
		var entry []byte
		if err := rows.Scan(&date, &entry); err != nil {
			p.logger.Errorf("failed to scan day: %v", err)
			return nil, nil, err
		}
		var raw internal.RawDay
		if err := json.Unmarshal(entry, &raw); err != nil {
			p.logger.Errorf("failed to decode day %s: %v", date, err)
			continue
		}
		days[date] = raw
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var presets *internal.Presets
	var blob []byte
	err = p.pool.QueryRow(ctx, `SELECT presets FROM journal_presets WHERE user_id = $1`, uid).Scan(&blob)
	switch {
	case err == pgx.ErrNoRows:
		// nothing stored yet
	case err != nil:
		p.logger.Errorf("failed to query presets: %v", err)
		return nil, nil, err
	default:
		var pr internal.Presets
		if err := json.Unmarshal(blob, &pr); err != nil {
			p.logger.Errorf("failed to decode presets: %v", err)
		} else {
			presets = &pr
		}
	}

	return days, presets, nil
}

func (p *PostgresStorage) SaveDays(ctx context.Context, uid string, days map[string]internal.DayEntry) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Errorf("failed to begin tx: %v", err)
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM journal_days WHERE user_id = $1`, uid); err != nil {
		p.logger.Errorf("failed to clear days: %v", err)
		return err
	}

	batch := &pgx.Batch{}
	for date, entry := range days {
		blob, err := json.Marshal(entry)
		if err != nil {
			p.logger.Errorf("failed to encode day %s: %v", date, err)
			return err
		}
		batch.Queue(`INSERT INTO journal_days (user_id, date, entry) VALUES ($1, $2, $3)`, uid, date, blob)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		p.logger.Errorf("failed to insert days: %v", err)
		return err
	}

	return tx.Commit(ctx)
}

func (p *PostgresStorage) SavePresets(ctx context.Context, uid string, presets internal.Presets) error {
	blob, err := json.Marshal(presets)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `INSERT INTO journal_presets (user_id, presets) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET presets = EXCLUDED.presets`, uid, blob)
	if err != nil {
		p.logger.Errorf("failed to upsert presets: %v", err)
		return err
	}
	return nil
}

// --- Compile-time assertions ---
var _ JournalRepository = (*PostgresStorage)(nil)
