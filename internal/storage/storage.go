// Package storage описывает стратегию хранения состояния витрины.
//
// Каждое хранилище (реестр пользователей, сессия посетителя, корзина) пишет
// своё состояние через Strategy, выбранную при создании: память процесса,
// сессионный Redis, локальный SQLite или общий PostgreSQL.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Ключи состояния.
const (
	UsersKey         = "apsara_users"
	sessionKeyPrefix = "apsara_session:"
	cartKeyPrefix    = "apsara_cart:"
)

// ErrNotFound возвращается из Load, если по ключу ничего не сохранено.
var ErrNotFound = errors.New("storage: key not found")

// Strategy — подключаемый способ хранения сериализованного состояния.
type Strategy interface {
	// Load возвращает сохранённое значение или ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save перезаписывает значение по ключу.
	Save(ctx context.Context, key string, value []byte) error
	// Clear удаляет значение. Удаление отсутствующего ключа ошибкой не считается.
	Clear(ctx context.Context, key string) error
}

// PersistenceError — сбой чтения или записи состояния: недоступное хранилище,
// превышение квоты, повреждённый JSON.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// SessionKey возвращает ключ сессии посетителя.
func SessionKey(visitorID string) string {
	return sessionKeyPrefix + visitorID
}

// CartKey возвращает ключ снимка корзины посетителя.
func CartKey(visitorID string) string {
	return cartKeyPrefix + visitorID
}

// LoadJSON читает значение и декодирует его в dst.
// Возвращает false без ошибки, если ключ отсутствует.
func LoadJSON(ctx context.Context, s Strategy, key string, dst any) (bool, error) {
	raw, err := s.Load(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, wrap("load", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, &PersistenceError{Op: "decode", Key: key, Err: err}
	}
	return true, nil
}

// SaveJSON кодирует value в JSON и сохраняет его.
func SaveJSON(ctx context.Context, s Strategy, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &PersistenceError{Op: "encode", Key: key, Err: err}
	}
	if err := s.Save(ctx, key, raw); err != nil {
		return wrap("save", key, err)
	}
	return nil
}

// Clear удаляет значение, оборачивая сбой в PersistenceError.
func Clear(ctx context.Context, s Strategy, key string) error {
	if err := s.Clear(ctx, key); err != nil {
		return wrap("clear", key, err)
	}
	return nil
}

func wrap(op, key string, err error) error {
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Key: key, Err: err}
}
