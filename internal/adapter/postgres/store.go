package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"pledge-data/internal/core/port"
)

// Store implements port.Store on PostgreSQL. Every collection is a table of
// (key, data, indexes, version) rows where data and indexes are JSONB.
type Store struct {
	pool *pgxpool.Pool
}

var _ port.Store = (*Store)(nil)

// NewStore returns a store over pool. The schema is created by the
// postgres migrations.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func table(collection string) (string, error) {
	if !port.IsKnownCollection(collection) {
		return "", fmt.Errorf("%w: %q", port.ErrUnknownCollection, collection)
	}
	return pq.QuoteIdentifier(collection), nil
}

func indexes(rec port.Record) map[string]string {
	if rec.Indexes == nil {
		return map[string]string{}
	}
	return rec.Indexes
}

// Put upserts rec and bumps its version.
func (s *Store) Put(ctx context.Context, collection string, rec port.Record) (port.Record, error) {
	t, err := table(collection)
	if err != nil {
		return port.Record{}, err
	}
	query := fmt.Sprintf(`
        INSERT INTO %[1]s (key, data, indexes, version, updated_at)
        VALUES ($1, $2, $3, 1, now())
        ON CONFLICT (key) DO UPDATE
            SET data = EXCLUDED.data,
                indexes = EXCLUDED.indexes,
                version = %[1]s.version + 1,
                updated_at = now()
        RETURNING version`, t)
	if err = s.pool.QueryRow(ctx, query, rec.Key, rec.Data, indexes(rec)).Scan(&rec.Version); err != nil {
		return port.Record{}, err
	}
	return rec, nil
}

// Get returns the row under key.
func (s *Store) Get(ctx context.Context, collection, key string) (port.Record, bool, error) {
	t, err := table(collection)
	if err != nil {
		return port.Record{}, false, err
	}
	rec := port.Record{Key: key}
	err = s.pool.QueryRow(ctx, fmt.Sprintf(`SELECT data, indexes, version FROM %s WHERE key = $1`, t), key).
		Scan(&rec.Data, &rec.Indexes, &rec.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.Record{}, false, nil
	}
	if err != nil {
		return port.Record{}, false, err
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

// GetAllByIndex filters on the JSONB index value. The index name is inlined
// as a literal so the expression indexes created by the migrations apply.
func (s *Store) GetAllByIndex(ctx context.Context, collection, index string, value *string) ([]port.Record, error) {
	t, err := table(collection)
	if err != nil {
		return nil, err
	}
	expr := fmt.Sprintf("(indexes->>%s)", pq.QuoteLiteral(index))
	if value == nil {
		return s.query(ctx, fmt.Sprintf(`SELECT key, data, indexes, version FROM %s WHERE %s IS NOT NULL ORDER BY key`, t, expr))
	}
	return s.query(ctx, fmt.Sprintf(`SELECT key, data, indexes, version FROM %s WHERE %s = $1 ORDER BY key`, t, expr), *value)
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]port.Record, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.Record, error) {
		var rec port.Record
		err := row.Scan(&rec.Key, &rec.Data, &rec.Indexes, &rec.Version)
		return rec, err
	})
}

func (s *Store) Delete(ctx context.Context, collection, key string) error {
	t, err := table(collection)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE key = $1`, t), key)
	return err
}

func (s *Store) Clear(ctx context.Context, collection string) error {
	t, err := table(collection)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s`, t))
	return err
}

// CompareAndPut inserts when expectedVersion is zero and otherwise updates
// only the row still at expectedVersion. No returned row means another
// writer got there first.
func (s *Store) CompareAndPut(ctx context.Context, collection string, rec port.Record, expectedVersion int64) (port.Record, error) {
	t, err := table(collection)
	if err != nil {
		return port.Record{}, err
	}
	var row pgx.Row
	if expectedVersion == 0 {
		row = s.pool.QueryRow(ctx, fmt.Sprintf(`
            INSERT INTO %s (key, data, indexes, version, updated_at)
            VALUES ($1, $2, $3, 1, now())
            ON CONFLICT (key) DO NOTHING
            RETURNING version`, t), rec.Key, rec.Data, indexes(rec))
	} else {
		row = s.pool.QueryRow(ctx, fmt.Sprintf(`
            UPDATE %s
            SET data = $2, indexes = $3, version = version + 1, updated_at = now()
            WHERE key = $1 AND version = $4
            RETURNING version`, t), rec.Key, rec.Data, indexes(rec), expectedVersion)
	}
	err = row.Scan(&rec.Version)
	if errors.Is(err, pgx.ErrNoRows) {
		return port.Record{}, port.ErrVersionConflict
	}
	if err != nil {
		return port.Record{}, err
	}
	return rec, nil
}
