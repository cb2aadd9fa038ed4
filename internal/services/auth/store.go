package auth

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/models"
	"github.com/apsaracreations/saree-shop/internal/storage"
)

// DefaultTimeout — окно неактивности, после которого сессия завершается.
const DefaultTimeout = 1800 * time.Second

const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Navigator перенаправляет посетителя на страницу, при необходимости с сообщением.
type Navigator interface {
	Navigate(page models.Page, message string)
}

// Timer — взведённый таймер, который можно отменить.
type Timer interface {
	Stop() bool
}

// AfterFunc запускает f через d. По умолчанию используется time.AfterFunc.
type AfterFunc func(d time.Duration, f func()) Timer

// Options настраивают Store. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Timeout   time.Duration
	Now       func() time.Time
	AfterFunc AfterFunc
	// OnExpire вызывается после принудительного выхода по таймеру.
	OnExpire func()
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.AfterFunc == nil {
		o.AfterFunc = func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
	}
	return o
}

// Store — сессия одного посетителя.
//
// Состояния: не вошёл и вошёл. Вход и регистрация переводят в «вошёл»,
// выход, истечение таймера и неудачное восстановление возвращают обратно.
// Все переходы выполняются под одной блокировкой.
type Store struct {
	// persistMu упорядочивает пары «переход и запись в хранилище»,
	// mu защищает состояние в памяти. persistMu всегда берётся первым.
	persistMu sync.Mutex
	mu        sync.Mutex
	log      *slog.Logger
	dir      *Directory
	strategy storage.Strategy
	nav      Navigator
	key      string
	opts     Options

	user  *models.User
	timer Timer
	// gen отличает актуальный таймер от уже отменённых.
	gen uint64
}

// NewStore создаёт сессию посетителя visitorID. Состояние не читается из
// хранилища до вызова Restore.
func NewStore(log *slog.Logger, visitorID string, dir *Directory, strategy storage.Strategy, nav Navigator, opts Options) *Store {
	return &Store{
		log:      log.With(sl.Visitor(visitorID)),
		dir:      dir,
		strategy: strategy,
		nav:      nav,
		key:      storage.SessionKey(visitorID),
		opts:     opts.withDefaults(),
	}
}

// Signup регистрирует пользователя с ролью user и сразу открывает для него сессию.
func (s *Store) Signup(ctx context.Context, email, password, confirmPassword string) (models.User, error) {
	switch {
	case email == "" || password == "" || confirmPassword == "":
		return models.User{}, &ValidationError{Message: MsgFieldsRequired}
	case !emailRe.MatchString(email):
		return models.User{}, &ValidationError{Message: MsgInvalidEmail}
	case len(password) < minPasswordLen:
		return models.User{}, &ValidationError{Message: MsgPasswordTooShort}
	case password != confirmPassword:
		return models.User{}, &ValidationError{Message: MsgPasswordMismatch}
	}

	name, _, _ := strings.Cut(email, "@")
	user, err := s.dir.Register(ctx, email, password, models.RoleUser, name)
	if err != nil {
		return models.User{}, err
	}
	s.log.Info("account created", slog.String("email", email))

	s.establish(ctx, user)
	return user, nil
}

// Login открывает сессию, заменяя текущую, если она есть.
func (s *Store) Login(ctx context.Context, email, password string) (models.User, error) {
	if email == "" || password == "" {
		return models.User{}, &ValidationError{Message: MsgCredentialsRequired}
	}
	user, err := s.dir.Authenticate(email, password)
	if err != nil {
		return models.User{}, err
	}
	s.establish(ctx, user)
	s.log.Info("user logged in", slog.String("email", email))
	return user, nil
}

func (s *Store) establish(ctx context.Context, user models.User) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.user = &user
	s.arm()
	session := models.Session{User: user, Timestamp: s.opts.Now().UTC()}
	s.mu.Unlock()

	if err := storage.SaveJSON(ctx, s.strategy, s.key, session); err != nil {
		s.log.Warn("failed to save session", sl.Err(err))
	}
}

// Logout завершает сессию и отправляет посетителя на страницу входа.
// Повторный вызов безопасен.
func (s *Store) Logout(ctx context.Context) {
	s.persistMu.Lock()
	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
	s.clearPersisted(ctx)
	s.persistMu.Unlock()

	s.nav.Navigate(models.PageLogin, "")
}

// CurrentUser возвращает пользователя текущей сессии.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated сообщает, открыта ли сессия.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// RequireAuthentication проверяет доступ. При отказе посетитель перенаправляется
// на страницу входа с сообщением, а вызывающий код должен прекратить работу.
func (s *Store) RequireAuthentication(message string, requireAdmin bool) bool {
	user, ok := s.CurrentUser()
	if !ok {
		if message == "" {
			message = MsgLoginRequired
		}
		s.nav.Navigate(models.PageLogin, message)
		return false
	}
	if requireAdmin && !user.IsAdmin() {
		s.nav.Navigate(models.PageLogin, MsgAdminRequired)
		return false
	}
	return true
}

// Touch отмечает активность посетителя и перезапускает таймер неактивности.
func (s *Store) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.arm()
	}
}

// Restore восстанавливает сессию из хранилища. Сессия принимается целиком,
// только если снимок читается, моложе окна неактивности и его пользователь
// ещё есть в реестре. Иначе всё состояние сессии очищается.
func (s *Store) Restore(ctx context.Context) bool {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	var session models.Session
	found, err := storage.LoadJSON(ctx, s.strategy, s.key, &session)
	if err != nil {
		s.log.Warn("could not restore session", sl.Err(err))
	}

	if found && err == nil && s.valid(session) {
		s.mu.Lock()
		user := session.User
		s.user = &user
		s.arm()
		s.mu.Unlock()
		s.log.Info("session restored", slog.String("email", user.Email))
		return true
	}

	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
	s.clearPersisted(ctx)
	return false
}

func (s *Store) valid(session models.Session) bool {
	if session.User.Email == "" || session.Timestamp.IsZero() {
		return false
	}
	if s.opts.Now().Sub(session.Timestamp) >= s.opts.Timeout {
		return false
	}
	known, ok := s.dir.Lookup(session.User.Email)
	return ok && known.ID == session.User.ID
}

// Close останавливает таймер, не трогая сохранённую сессию.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimer()
}

// arm перезапускает таймер неактивности. Вызывается под блокировкой.
func (s *Store) arm() {
	s.stopTimer()
	gen := s.gen
	s.timer = s.opts.AfterFunc(s.opts.Timeout, func() { s.expire(gen) })
}

// stopTimer вызывается под блокировкой.
func (s *Store) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
}

// reset вызывается под блокировкой.
func (s *Store) reset() {
	s.user = nil
	s.stopTimer()
}

func (s *Store) expire(gen uint64) {
	s.persistMu.Lock()
	s.mu.Lock()
	if gen != s.gen || s.user == nil {
		s.mu.Unlock()
		s.persistMu.Unlock()
		return
	}
	email := s.user.Email
	s.reset()
	s.mu.Unlock()
	s.clearPersisted(context.Background())
	s.persistMu.Unlock()

	s.log.Info("session expired", slog.String("email", email))
	s.nav.Navigate(models.PageLogin, MsgSessionExpired)
	if s.opts.OnExpire != nil {
		s.opts.OnExpire()
	}
}

func (s *Store) clearPersisted(ctx context.Context) {
	if err := storage.Clear(ctx, s.strategy, s.key); err != nil {
		s.log.Warn("failed to clear session", sl.Err(err))
	}
}
