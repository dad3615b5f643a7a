package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps each collection as one jsonb row in the
// collections table (see db/migrations). Same whole-document contract
// as the file store, so swapping drivers never touches service logic.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore seeds any collection that has no row yet, mirroring
// the file store's first-run behavior. The schema must already be
// migrated (cmd/migrate).
func NewPostgresStore(ctx context.Context, pool *pgxpool.Pool) (*PostgresStore, error) {
	s := &PostgresStore{pool: pool}

	seeded, err := s.has(ctx, CollectionBooks)
	if err != nil {
		return nil, err
	}
	if !seeded {
		if err := s.Save(ctx, CollectionBooks, seedBooks()); err != nil {
			return nil, err
		}
	}
	for _, collection := range []string{CollectionUsers, CollectionReviews} {
		ok, err := s.has(ctx, collection)
		if err != nil {
			return nil, err
		}
		if !ok {
			if err := s.Save(ctx, collection, []any{}); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

func (s *PostgresStore) has(ctx context.Context, collection string) (bool, error) {
	var name string
	err := s.pool.QueryRow(ctx,
		`SELECT name FROM collections WHERE name = $1`, collection).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PostgresStore) Load(ctx context.Context, collection string, v any) error {
	var doc []byte
	err := s.pool.QueryRow(ctx,
		`SELECT doc FROM collections WHERE name = $1`, collection).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(doc, v); err != nil {
		return nil
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, collection string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO collections (name, doc, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		collection, doc)
	return err
}
