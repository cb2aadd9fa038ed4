// Package auth управляет реестром пользователей и сессией посетителя:
// регистрацией, входом, выходом, проверкой доступа и истечением сессии по
// неактивности.
package auth

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/models"
	"github.com/apsaracreations/saree-shop/internal/storage"
)

// Directory — общий реестр пользователей. Изменения сразу пишутся в стратегию.
type Directory struct {
	mu       sync.RWMutex
	log      *slog.Logger
	strategy storage.Strategy
	now      func() time.Time
	users    []models.User
}

// defaultUsers — учётные записи, которыми заполняется пустой реестр.
func defaultUsers(now time.Time) []models.User {
	return []models.User{
		{
			ID:        "admin-" + uuid.NewString(),
			Email:     "admin@example.com",
			Password:  "admin123",
			Role:      models.RoleAdmin,
			Name:      "Administrator",
			CreatedAt: now,
		},
		{
			ID:        "user-" + uuid.NewString(),
			Email:     "user@example.com",
			Password:  "user123",
			Role:      models.RoleUser,
			Name:      "Demo User",
			CreatedAt: now,
		},
	}
}

// NewDirectory читает реестр из стратегии и заполняет его учётными записями
// по умолчанию, если он пуст. Сбой чтения не фатален: реестр стартует пустым.
func NewDirectory(ctx context.Context, log *slog.Logger, strategy storage.Strategy) *Directory {
	const op = "auth.NewDirectory"
	log = log.With(slog.String("op", op))

	d := &Directory{
		log:      log,
		strategy: strategy,
		now:      time.Now,
	}

	var users []models.User
	if _, err := storage.LoadJSON(ctx, strategy, storage.UsersKey, &users); err != nil {
		log.Warn("failed to load users, starting with defaults", sl.Err(err))
	}
	if len(users) == 0 {
		users = defaultUsers(d.now().UTC())
		d.users = users
		d.save(ctx)
		log.Info("default users initialized")
		return d
	}
	d.users = users
	log.Info("users loaded", slog.Int("count", len(users)))
	return d
}

// Register добавляет пользователя. Email сравнивается точно.
func (d *Directory) Register(ctx context.Context, email, password string, role models.Role, name string) (models.User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.Email == email {
			return models.User{}, ErrDuplicateUser
		}
	}
	user := models.User{
		ID:        string(role) + "-" + uuid.NewString(),
		Email:     email,
		Password:  password,
		Role:      role,
		Name:      name,
		CreatedAt: d.now().UTC(),
	}
	d.users = append(d.users, user)
	d.save(ctx)
	return user, nil
}

// Authenticate ищет пользователя с точно совпадающей парой email/пароль.
func (d *Directory) Authenticate(email, password string) (models.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Lookup возвращает пользователя по email.
func (d *Directory) Lookup(email string) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, u := range d.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// List возвращает копию реестра в порядке регистрации.
func (d *Directory) List() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}

// save вызывается под блокировкой. Сбой записи только логируется.
func (d *Directory) save(ctx context.Context) {
	if err := storage.SaveJSON(ctx, d.strategy, storage.UsersKey, d.users); err != nil {
		d.log.Error("failed to save users", sl.Err(err))
	}
}
