// Package postgresql реализует долговременную общую стратегию хранения в PostgreSQL.
// Подходит, когда несколько экземпляров витрины делят один реестр пользователей.
package postgresql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/apsaracreations/saree-shop/internal/migrations"
	"github.com/apsaracreations/saree-shop/internal/storage"
)

// Strategy хранит значения в таблице storefront_kv.
type Strategy struct {
	DB *sql.DB
}

// New подключается к PostgreSQL и применяет миграции.
func New(ctx context.Context, connectionString string) (*Strategy, error) {
	const op = "postgresql.New"

	db, err := sql.Open("pgx", connectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.RunPostgres(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Strategy{DB: db}, nil
}

// NewWithDB оборачивает уже открытое соединение без миграций.
func NewWithDB(db *sql.DB) *Strategy {
	return &Strategy{DB: db}
}

func (s *Strategy) Load(ctx context.Context, key string) ([]byte, error) {
	const op = "postgresql.Load"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var value []byte
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM storefront_kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return value, nil
}

func (s *Strategy) Save(ctx context.Context, key string, value []byte) error {
	const op = "postgresql.Save"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO storefront_kv (key, value, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := s.DB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Strategy) Clear(ctx context.Context, key string) error {
	const op = "postgresql.Clear"
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM storefront_kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает пул соединений.
func (s *Strategy) Close() error {
	return s.DB.Close()
}
