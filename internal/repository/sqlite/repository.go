package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"study-planner/internal/errors"
	"study-planner/internal/persist"
	"study-planner/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository is a string key/value store with one row per named slot
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Entries(ctx context.Context) ([]*Entry, error)
	Slots(ctx context.Context) ([]persist.SlotInfo, error)
	Close() error
}

// Options tunes the underlying connection
type Options struct {
	BusyTimeout time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db  *sql.DB
	now func() time.Time
}

// New creates a new SQLite repository instance with default options
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{BusyTimeout: 5 * time.Second})
}

// NewWithOptions opens (creating if needed) the database at dbPath and runs migrations.
// ":memory:" gives a private database that lives as long as the repository.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn(dbPath, opts))
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}
	// single writer; also keeps an in-memory database on one connection
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewStorageError("run migrations", err)
	}

	return &SQLiteRepository{db: db, now: time.Now}, nil
}

func dsn(dbPath string, opts Options) string {
	if opts.BusyTimeout <= 0 {
		return dbPath
	}
	return fmt.Sprintf("%s?_pragma=busy_timeout(%d)", dbPath, opts.BusyTimeout.Milliseconds())
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Get returns the value stored under key; found is false when no row exists
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT key, value, updated_at FROM kv WHERE key = ?`

	entry, found, err := QuerySingle(ctx, r.db, query, ScanEntry, "get "+key, key)
	if err != nil || !found {
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set stores value under key, replacing any previous value
func (r *SQLiteRepository) Set(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO kv (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	return Execute(ctx, r.db, query, "set "+key, key, value, FormatTimeForDB(r.now()))
}

// Delete removes key; deleting a missing key is not an error
func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	return Execute(ctx, r.db, `DELETE FROM kv WHERE key = ?`, "delete "+key, key)
}

// Entries lists every stored slot ordered by key
func (r *SQLiteRepository) Entries(ctx context.Context) ([]*Entry, error) {
	query := `SELECT key, value, updated_at FROM kv ORDER BY key ASC`
	return QueryMultiple(ctx, r.db, query, ScanEntries, "list entries")
}

// Slots summarises the stored entries for persist.Inventory
func (r *SQLiteRepository) Slots(ctx context.Context) ([]persist.SlotInfo, error) {
	entries, err := r.Entries(ctx)
	if err != nil {
		return nil, err
	}
	slots := make([]persist.SlotInfo, len(entries))
	for i, entry := range entries {
		slots[i] = persist.SlotInfo{Key: entry.Key, Size: len(entry.Value), UpdatedAt: entry.UpdatedAt}
	}
	return slots, nil
}
