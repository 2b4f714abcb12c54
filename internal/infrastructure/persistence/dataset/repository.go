// Package dataset persists generated datasets so a restart does not force
// regeneration of a still-fresh dataset.
package dataset

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/StoreScope/storescope-go/internal/domain/events"
	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/types"
	"github.com/StoreScope/storescope-go/internal/infrastructure/generation"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/infrastructure/persistence/database"
)

const dateLayout = "2006-01-02"

// Repository stores and retrieves generated datasets.
type Repository struct {
	db     *database.DB
	logger *logging.ChanneledLogger
}

// NewRepository creates a dataset repository on the given connection.
func NewRepository(db *database.DB, logger *logging.ChanneledLogger) *Repository {
	return &Repository{db: db, logger: logger}
}

// Migrate creates the dataset tables if they do not exist.
func (r *Repository) Migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS datasets (
			params_key TEXT PRIMARY KEY,
			record_count INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			generated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS dataset_events (
			params_key TEXT NOT NULL,
			event_id INTEGER NOT NULL,
			user_id INTEGER NOT NULL,
			event_date TEXT NOT NULL,
			event_type TEXT NOT NULL,
			price REAL NOT NULL,
			PRIMARY KEY (params_key, event_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run dataset migration: %w", err)
		}
	}

	r.logger.Database().Info("Dataset tables migrated")
	return nil
}

// Save persists a dataset entry, replacing any previous dataset with the
// same parameters. The write is transactional so readers never observe a
// partially replaced dataset.
func (r *Repository) Save(entry *types.DatasetEntry) error {
	start := time.Now()
	key := entry.Params.Key()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin dataset save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM dataset_events WHERE params_key = ?`, key); err != nil {
		return fmt.Errorf("failed to clear previous dataset events: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM datasets WHERE params_key = ?`, key); err != nil {
		return fmt.Errorf("failed to clear previous dataset: %w", err)
	}

	if _, err := tx.Exec(
		`INSERT INTO datasets (params_key, record_count, seed, generated_at) VALUES (?, ?, ?, ?)`,
		key, entry.Params.Count, entry.Params.Seed, entry.GeneratedAt.UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("failed to insert dataset row: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO dataset_events (params_key, event_id, user_id, event_date, event_type, price) VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare dataset event insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range entry.Events {
		if _, err := stmt.Exec(key, ev.EventID, ev.UserID, ev.Date.Format(dateLayout), string(ev.Event), ev.Price); err != nil {
			return fmt.Errorf("failed to insert dataset event %d: %w", ev.EventID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset save: %w", err)
	}

	r.logger.Database().Info("Dataset persisted",
		"key", key,
		"events", len(entry.Events),
		"duration", time.Since(start))
	return nil
}

// Load retrieves a persisted dataset by parameters key. It returns false
// when no dataset exists or the stored dataset is older than maxAge.
func (r *Repository) Load(key string, maxAge time.Duration) (*types.DatasetEntry, bool, error) {
	var recordCount int
	var seed int64
	var generatedAtRaw string

	err := r.db.QueryRow(
		`SELECT record_count, seed, generated_at FROM datasets WHERE params_key = ?`, key,
	).Scan(&recordCount, &seed, &generatedAtRaw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to query dataset: %w", err)
	}

	generatedAt, err := time.Parse(time.RFC3339, generatedAtRaw)
	if err != nil {
		return nil, false, fmt.Errorf("failed to parse dataset timestamp: %w", err)
	}

	if time.Since(generatedAt) > maxAge {
		r.logger.Database().Debug("Persisted dataset is stale", "key", key, "generatedAt", generatedAtRaw)
		return nil, false, nil
	}

	rows, err := r.db.Query(
		`SELECT event_id, user_id, event_date, event_type, price FROM dataset_events WHERE params_key = ? ORDER BY event_id`, key,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query dataset events: %w", err)
	}
	defer rows.Close()

	loaded := make([]events.Event, 0, recordCount)
	for rows.Next() {
		var ev events.Event
		var rawDate, rawType string
		if err := rows.Scan(&ev.EventID, &ev.UserID, &rawDate, &rawType, &ev.Price); err != nil {
			return nil, false, fmt.Errorf("failed to scan dataset event: %w", err)
		}
		ev.Date, err = time.Parse(dateLayout, rawDate)
		if err != nil {
			return nil, false, fmt.Errorf("failed to parse event date %q: %w", rawDate, err)
		}
		ev.Event = events.EventType(rawType)
		ev.Month = events.MonthKey(ev.Date)
		loaded = append(loaded, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to iterate dataset events: %w", err)
	}

	entry := &types.DatasetEntry{
		Params:      generation.Params{Count: recordCount, Seed: seed},
		Events:      loaded,
		GeneratedAt: generatedAt,
	}

	r.logger.Database().Info("Dataset loaded from persistence", "key", key, "events", len(loaded))
	return entry, true, nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	return r.db.Close()
}
