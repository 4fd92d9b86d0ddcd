// Package sqlite provides a SQLite-backed port.Store on the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"pledge-data/internal/core/port"
)

// Store persists collections in SQLite. Indexes are kept as a JSON object
// per row and queried with json_extract.
type Store struct {
	sqlDB *sql.DB
}

var _ port.Store = (*Store)(nil)

// DSN returns the driver connection string for path with WAL journaling and
// a busy timeout, so concurrent writers wait instead of failing.
func DSN(path string) string {
	return filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
}

// Open opens the database at path. The schema is created by the sqlite
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	sqlDB, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err = sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func table(collection string) (string, error) {
	if !port.IsKnownCollection(collection) {
		return "", fmt.Errorf("%w: %q", port.ErrUnknownCollection, collection)
	}
	return `"` + collection + `"`, nil
}

// indexPath builds the JSON path of an index. Only plain identifiers are
// accepted so the path can be inlined and match the expression indexes.
func indexPath(index string) (string, error) {
	if index == "" {
		return "", fmt.Errorf("index name is required")
	}
	for _, r := range index {
		if !(r == '_' || r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return "", fmt.Errorf("invalid index name %q", index)
		}
	}
	return "'$." + index + "'", nil
}

func encodeIndexes(rec port.Record) (string, error) {
	idx := rec.Indexes
	if idx == nil {
		idx = map[string]string{}
	}
	raw, err := json.Marshal(idx)
	if err != nil {
		return "", fmt.Errorf("encode indexes: %w", err)
	}
	return string(raw), nil
}

func now() int64 { return time.Now().UTC().UnixMilli() }

// Put upserts rec and bumps its version.
func (s *Store) Put(ctx context.Context, collection string, rec port.Record) (port.Record, error) {
	t, err := table(collection)
	if err != nil {
		return port.Record{}, err
	}
	idx, err := encodeIndexes(rec)
	if err != nil {
		return port.Record{}, err
	}
	query := fmt.Sprintf(`
        INSERT INTO %[1]s (key, data, indexes, version, updated_at)
        VALUES (?, ?, ?, 1, ?)
        ON CONFLICT (key) DO UPDATE
            SET data = excluded.data,
                indexes = excluded.indexes,
                version = %[1]s.version + 1,
                updated_at = excluded.updated_at
        RETURNING version`, t)
	if err = s.sqlDB.QueryRowContext(ctx, query, rec.Key, string(rec.Data), idx, now()).Scan(&rec.Version); err != nil {
		return port.Record{}, fmt.Errorf("put %s: %w", collection, err)
	}
	return rec, nil
}

// Get returns the row under key.
func (s *Store) Get(ctx context.Context, collection, key string) (port.Record, bool, error) {
	t, err := table(collection)
	if err != nil {
		return port.Record{}, false, err
	}
	row := s.sqlDB.QueryRowContext(ctx, fmt.Sprintf(`SELECT key, data, indexes, version FROM %s WHERE key = ?`, t), key)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return port.Record{}, false, nil
	}
	if err != nil {
		return port.Record{}, false, fmt.Errorf("get %s: %w", collection, err)
	}
	return rec, true, nil
}

// GetAll returns every row ordered by key.
func (s *Store) GetAll(ctx context.Context, collection string) ([]port.Record, error) {
	t, err := table(collection)
	if err != nil {
		return nil, err
	}
	return s.query(ctx, fmt.Sprintf(`SELECT key, data, indexes, version FROM %s ORDER BY key`, t))
}

func (s *Store) GetAllByIndex(ctx context.Context, collection, index string, value *string) ([]port.Record, error) {
	t, err := table(collection)
	if err != nil {
		return nil, err
	}
	path, err := indexPath(index)
	if err != nil {
		return nil, err
	}
	expr := fmt.Sprintf("json_extract(indexes, %s)", path)
	if value == nil {
		return s.query(ctx, fmt.Sprintf(`SELECT key, data, indexes, version FROM %s WHERE %s IS NOT NULL ORDER BY key`, t, expr))
	}
	return s.query(ctx, fmt.Sprintf(`SELECT key, data, indexes, version FROM %s WHERE %s = ? ORDER BY key`, t, expr), *value)
}

func (s *Store) Delete(ctx context.Context, collection, key string) error {
	t, err := table(collection)
	if err != nil {
		return err
	}
	if _, err = s.sqlDB.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE key = ?`, t), key); err != nil {
		return fmt.Errorf("delete %s: %w", collection, err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context, collection string) error {
	t, err := table(collection)
	if err != nil {
		return err
	}
	if _, err = s.sqlDB.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, t)); err != nil {
		return fmt.Errorf("clear %s: %w", collection, err)
	}
	return nil
}

// CompareAndPut inserts when expectedVersion is zero and otherwise updates
// only the row still at expectedVersion.
func (s *Store) CompareAndPut(ctx context.Context, collection string, rec port.Record, expectedVersion int64) (port.Record, error) {
	t, err := table(collection)
	if err != nil {
		return port.Record{}, err
	}
	idx, err := encodeIndexes(rec)
	if err != nil {
		return port.Record{}, err
	}
	var row *sql.Row
	if expectedVersion == 0 {
		row = s.sqlDB.QueryRowContext(ctx, fmt.Sprintf(`
            INSERT INTO %s (key, data, indexes, version, updated_at)
            VALUES (?, ?, ?, 1, ?)
            ON CONFLICT (key) DO NOTHING
            RETURNING version`, t), rec.Key, string(rec.Data), idx, now())
	} else {
		row = s.sqlDB.QueryRowContext(ctx, fmt.Sprintf(`
            UPDATE %s
            SET data = ?, indexes = ?, version = version + 1, updated_at = ?
            WHERE key = ? AND version = ?
            RETURNING version`, t), string(rec.Data), idx, now(), rec.Key, expectedVersion)
	}
	err = row.Scan(&rec.Version)
	if errors.Is(err, sql.ErrNoRows) {
		return port.Record{}, port.ErrVersionConflict
	}
	if err != nil {
		return port.Record{}, fmt.Errorf("compare and put %s: %w", collection, err)
	}
	return rec, nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]port.Record, error) {
	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []port.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (port.Record, error) {
	var (
		rec     port.Record
		data    string
		indexes string
	)
	if err := row.Scan(&rec.Key, &data, &indexes, &rec.Version); err != nil {
		return port.Record{}, err
	}
	rec.Data = []byte(data)
	if err := json.Unmarshal([]byte(indexes), &rec.Indexes); err != nil {
		return port.Record{}, fmt.Errorf("decode indexes of %q: %w", rec.Key, err)
	}
	return rec, nil
}
