package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/apsaracreations/saree-shop/internal/models"
	"github.com/apsaracreations/saree-shop/internal/storage"
	"github.com/apsaracreations/saree-shop/internal/storage/memory"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type navigation struct {
	Page    models.Page
	Message string
}

type recordingNavigator struct {
	mu    sync.Mutex
	calls []navigation
}

func (n *recordingNavigator) Navigate(page models.Page, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, navigation{Page: page, Message: message})
}

func (n *recordingNavigator) last() navigation {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.calls) == 0 {
		return navigation{}
	}
	return n.calls[len(n.calls)-1]
}

// fakeTimer запоминает отложенную функцию, чтобы тест мог вызвать её сам.
type fakeTimer struct {
	d       time.Duration
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

type fakeTimers struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (ft *fakeTimers) AfterFunc(d time.Duration, f func()) Timer {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	t := &fakeTimer{d: d, f: f}
	ft.timers = append(ft.timers, t)
	return t
}

func (ft *fakeTimers) latest() *fakeTimer {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	if len(ft.timers) == 0 {
		return nil
	}
	return ft.timers[len(ft.timers)-1]
}

func (ft *fakeTimers) count() int {
	ft.mu.Lock()
	defer ft.mu.Unlock()
	return len(ft.timers)
}

// failingStrategy отказывает при любой операции.
type failingStrategy struct{}

var errStorageDown = errors.New("quota exceeded")

func (failingStrategy) Load(context.Context, string) ([]byte, error) { return nil, errStorageDown }
func (failingStrategy) Save(context.Context, string, []byte) error   { return errStorageDown }
func (failingStrategy) Clear(context.Context, string) error          { return errStorageDown }

// blockingStrategy задерживает первую запись ключа key, пока тест не закроет release.
type blockingStrategy struct {
	storage.Strategy
	key     string
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newBlockingStrategy(inner storage.Strategy, key string) *blockingStrategy {
	return &blockingStrategy{Strategy: inner, key: key, entered: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingStrategy) Save(ctx context.Context, key string, value []byte) error {
	first := false
	if key == b.key {
		b.once.Do(func() { first = true })
	}
	if first {
		close(b.entered)
		<-b.release
	}
	return b.Strategy.Save(ctx, key, value)
}

func isClosed(ch <-chan struct{}) func() bool {
	return func() bool {
		select {
		case <-ch:
			return true
		default:
			return false
		}
	}
}

type fixture struct {
	store    *Store
	dir      *Directory
	strategy *memory.Strategy
	nav      *recordingNavigator
	timers   *fakeTimers
	now      time.Time
	expired  int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		strategy: memory.New(),
		nav:      &recordingNavigator{},
		timers:   &fakeTimers{},
		now:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	f.dir = NewDirectory(context.Background(), discardLogger(), f.strategy)
	f.store = f.newStore("visitor-1")
	return f
}

func (f *fixture) newStore(visitorID string) *Store {
	return NewStore(discardLogger(), visitorID, f.dir, f.strategy, f.nav, Options{
		Now:       func() time.Time { return f.now },
		AfterFunc: f.timers.AfterFunc,
		OnExpire:  func() { f.expired++ },
	})
}

func (f *fixture) login(t *testing.T, email, password string) models.User {
	t.Helper()
	u, err := f.store.Login(context.Background(), email, password)
	require.NoError(t, err)
	return u
}
