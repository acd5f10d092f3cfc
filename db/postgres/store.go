// Package postgres provides a PostgreSQL-backed inventory and template store.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"pcbuild/core/types"
	"pcbuild/db"
)

const schema = `
CREATE TABLE IF NOT EXISTS inventory (
	category TEXT NOT NULL,
	id       TEXT NOT NULL,
	data     JSONB NOT NULL,
	PRIMARY KEY (category, id)
);
CREATE TABLE IF NOT EXISTS templates (
	brand      TEXT NOT NULL,
	game       TEXT NOT NULL,
	budget_key TEXT NOT NULL,
	selection  JSONB NOT NULL,
	PRIMARY KEY (brand, game, budget_key)
)`

// NewPool creates a connection pool and verifies connectivity
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// Store is the PostgreSQL implementation of db.Store
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to connString and ensures the schema exists
func Open(ctx context.Context, connString string) (*Store, error) {
	pool, err := NewPool(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// NewStore wraps an existing pool; the caller owns the schema
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Inventory(ctx context.Context) (types.Catalog, error) {
	rows, err := s.pool.Query(ctx, `SELECT category, data FROM inventory`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := types.Catalog{}
	for rows.Next() {
		var category string
		var data []byte
		if err := rows.Scan(&category, &data); err != nil {
			return nil, err
		}
		var rec types.ComponentRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("decode %s record: %w", category, err)
		}
		out.Put(types.Category(category), rec)
	}
	return out, rows.Err()
}

func (s *Store) UpsertRecord(ctx context.Context, category types.Category, rec types.ComponentRecord) error {
	if err := db.ValidateRecord(category, rec); err != nil {
		return err
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO inventory (category, id, data)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (category, id) DO UPDATE SET data = EXCLUDED.data`,
		string(category), rec.ID, data,
	)
	return err
}

func (s *Store) DeleteRecord(ctx context.Context, category types.Category, id string) error {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM inventory WHERE category = $1 AND id = $2`,
		string(category), id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

func (s *Store) Templates(ctx context.Context) (types.ConfigTemplate, error) {
	rows, err := s.pool.Query(ctx, `SELECT brand, game, budget_key, selection FROM templates`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := types.ConfigTemplate{}
	for rows.Next() {
		var brand, game, key string
		var data []byte
		if err := rows.Scan(&brand, &game, &key, &data); err != nil {
			return nil, err
		}
		var sel types.Selection
		if err := json.Unmarshal(data, &sel); err != nil {
			return nil, fmt.Errorf("decode template %s/%s/%s: %w", brand, game, key, err)
		}
		out.Put(types.Brand(brand), game, key, sel)
	}
	return out, rows.Err()
}

func (s *Store) UpsertTemplate(ctx context.Context, brand types.Brand, game, budgetKey string, sel types.Selection) error {
	if err := db.ValidateTemplateKey(brand, game, budgetKey); err != nil {
		return err
	}
	game = types.GameKey(game)
	data, err := json.Marshal(sel.Clone())
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO templates (brand, game, budget_key, selection)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (brand, game, budget_key) DO UPDATE SET selection = EXCLUDED.selection`,
		string(brand), game, budgetKey, data,
	)
	return err
}

func (s *Store) DeleteTemplate(ctx context.Context, brand types.Brand, game, budgetKey string) error {
	game = types.GameKey(game)
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM templates WHERE brand = $1 AND game = $2 AND budget_key = $3`,
		string(brand), game, budgetKey,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
