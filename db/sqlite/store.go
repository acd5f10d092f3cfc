// Package sqlite provides a SQLite-backed inventory and template store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"pcbuild/core/types"
	"pcbuild/db"
)

const schema = `
CREATE TABLE IF NOT EXISTS inventory (
	category TEXT NOT NULL,
	id       TEXT NOT NULL,
	data     TEXT NOT NULL,
	PRIMARY KEY (category, id)
);
CREATE TABLE IF NOT EXISTS templates (
	brand      TEXT NOT NULL,
	game       TEXT NOT NULL,
	budget_key TEXT NOT NULL,
	selection  TEXT NOT NULL,
	PRIMARY KEY (brand, game, budget_key)
);
`

// Store persists records as JSON documents
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) a store at path and applies the schema
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) Inventory(ctx context.Context) (types.Catalog, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT category, data FROM inventory`)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	out := types.Catalog{}
	for rows.Next() {
		var category, data string
		if err := rows.Scan(&category, &data); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		var rec types.ComponentRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
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
		return fmt.Errorf("encode record: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO inventory (category, id, data) VALUES (?, ?, ?)
ON CONFLICT (category, id) DO UPDATE SET data = excluded.data
`, string(category), rec.ID, string(data))
	if err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}
	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, category types.Category, id string) error {
	res, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM inventory WHERE category = ? AND id = ?`, string(category), id)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	return affected(res)
}

func (s *Store) Templates(ctx context.Context) (types.ConfigTemplate, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT brand, game, budget_key, selection FROM templates`)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	out := types.ConfigTemplate{}
	for rows.Next() {
		var brand, game, key, data string
		if err := rows.Scan(&brand, &game, &key, &data); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		var sel types.Selection
		if err := json.Unmarshal([]byte(data), &sel); err != nil {
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
		return fmt.Errorf("encode selection: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO templates (brand, game, budget_key, selection) VALUES (?, ?, ?, ?)
ON CONFLICT (brand, game, budget_key) DO UPDATE SET selection = excluded.selection
`, string(brand), game, budgetKey, string(data))
	if err != nil {
		return fmt.Errorf("upsert template: %w", err)
	}
	return nil
}

func (s *Store) DeleteTemplate(ctx context.Context, brand types.Brand, game, budgetKey string) error {
	game = types.GameKey(game)
	res, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM templates WHERE brand = ? AND game = ? AND budget_key = ?`,
		string(brand), game, budgetKey)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	return affected(res)
}

func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return db.ErrNotFound
	}
	return nil
}
