// Package sqlite реализует долговременную локальную стратегию хранения в файле SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера sqlite (pure Go) для database/sql.
	_ "modernc.org/sqlite"

	"github.com/apsaracreations/saree-shop/internal/migrations"
	"github.com/apsaracreations/saree-shop/internal/storage"
)

// Strategy хранит значения в таблице storefront_kv.
type Strategy struct {
	DB *sql.DB
}

// Open открывает файл базы (":memory:" для временной базы) и применяет миграции.
func Open(ctx context.Context, path string) (*Strategy, error) {
	const op = "sqlite.Open"

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// SQLite сериализует запись, а ":memory:" у каждого соединения своя.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.RunSQLite(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Strategy{DB: db}, nil
}

func (s *Strategy) Load(ctx context.Context, key string) ([]byte, error) {
	const op = "sqlite.Load"
	var value []byte
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM storefront_kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return value, nil
}

func (s *Strategy) Save(ctx context.Context, key string, value []byte) error {
	const op = "sqlite.Save"
	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO storefront_kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Strategy) Clear(ctx context.Context, key string) error {
	const op = "sqlite.Clear"
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM storefront_kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с базой.
func (s *Strategy) Close() error {
	return s.DB.Close()
}
