// Package visitor держит состояние посетителей витрины: сессию, корзину и
// очередь перенаправлений. Посетитель создаётся при первом обращении,
// восстанавливается из хранилища и выгружается после простоя.
package visitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/services/auth"
	"github.com/apsaracreations/saree-shop/internal/services/cart"
	"github.com/apsaracreations/saree-shop/internal/storage"
)

// DefaultIdleTTL задаёт, через сколько простоя посетитель выгружается из памяти.
const DefaultIdleTTL = 2 * time.Hour

// Visitor — состояние одного посетителя.
type Visitor struct {
	ID    string
	Auth  *auth.Store
	Cart  *cart.Store
	Inbox *Inbox

	lastSeen time.Time
	stop     context.CancelFunc
	done     chan struct{}
}

// Config — параметры хранилищ посетителя.
type Config struct {
	BasePath         string
	SessionTimeout   time.Duration
	CartMaxAge       time.Duration
	AutosaveInterval time.Duration
	IdleTTL          time.Duration
}

// Observer получает события реестра. Может быть nil.
type Observer interface {
	AuthEvent(event string, ok bool)
	SetActiveVisitors(n int)
}

// Registry создаёт посетителей по требованию и выгружает простаивающих.
type Registry struct {
	mu       sync.Mutex
	log      *slog.Logger
	dir      *auth.Directory
	sessions storage.Strategy
	carts    storage.Strategy
	cfg      Config
	observer Observer
	now      func() time.Time
	visitors map[string]*Visitor
	loading  singleflight.Group
}

func NewRegistry(log *slog.Logger, dir *auth.Directory, sessions, carts storage.Strategy, cfg Config, observer Observer) *Registry {
	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = DefaultIdleTTL
	}
	return &Registry{
		log:      log,
		dir:      dir,
		sessions: sessions,
		carts:    carts,
		cfg:      cfg,
		observer: observer,
		now:      time.Now,
		visitors: make(map[string]*Visitor),
	}
}

// Get возвращает посетителя id, при первом обращении восстанавливая его
// сессию и корзину и запуская автосохранение корзины. Восстановление идёт
// вне общей блокировки, одновременные обращения к новому id ждут одного
// восстановления.
func (r *Registry) Get(ctx context.Context, id string) *Visitor {
	if v, ok := r.lookup(id); ok {
		return v
	}

	// Загрузку разделяют все ждущие запросы, отмена одного из них её не прерывает.
	ctx = context.WithoutCancel(ctx)
	res, _, _ := r.loading.Do(id, func() (any, error) {
		if v, ok := r.lookup(id); ok {
			return v, nil
		}

		v := r.newVisitor(id)
		v.Auth.Restore(ctx)
		v.Cart.Restore(ctx)

		runCtx, cancel := context.WithCancel(context.Background())
		v.stop = cancel
		go func() {
			defer close(v.done)
			v.Cart.Run(runCtx)
		}()

		r.mu.Lock()
		v.lastSeen = r.now()
		r.visitors[id] = v
		r.report()
		r.mu.Unlock()

		r.log.Debug("visitor attached", sl.Visitor(id))
		return v, nil
	})
	return res.(*Visitor)
}

// lookup возвращает уже загруженного посетителя и отмечает обращение.
func (r *Registry) lookup(id string) (*Visitor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.visitors[id]
	if ok {
		v.lastSeen = r.now()
	}
	return v, ok
}

func (r *Registry) newVisitor(id string) *Visitor {
	inbox := NewInbox(r.cfg.BasePath)
	opts := auth.Options{Timeout: r.cfg.SessionTimeout}
	if r.observer != nil {
		opts.OnExpire = func() { r.observer.AuthEvent("expire", true) }
	}
	return &Visitor{
		ID:       id,
		Auth:     auth.NewStore(r.log, id, r.dir, r.sessions, inbox, opts),
		Cart:     cart.NewStore(r.log, id, r.carts, cart.Options{MaxAge: r.cfg.CartMaxAge, AutosaveInterval: r.cfg.AutosaveInterval}),
		Inbox:    inbox,
		lastSeen: r.now(),
		done:     make(chan struct{}),
	}
}

// Len возвращает число посетителей в памяти.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Sweep выгружает посетителей, простаивающих дольше IdleTTL, и возвращает их число.
// Корзина перед выгрузкой сохраняется, сессия остаётся в хранилище.
func (r *Registry) Sweep(ctx context.Context) int {
	r.mu.Lock()
	var idle []*Visitor
	now := r.now()
	for id, v := range r.visitors {
		if now.Sub(v.lastSeen) >= r.cfg.IdleTTL {
			idle = append(idle, v)
			delete(r.visitors, id)
		}
	}
	r.report()
	r.mu.Unlock()

	for _, v := range idle {
		r.detach(ctx, v)
	}
	if len(idle) > 0 {
		r.log.Info("idle visitors detached", slog.Int("count", len(idle)))
	}
	return len(idle)
}

// Run периодически вызывает Sweep до отмены ctx, затем выгружает всех посетителей.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.Close(context.Background())
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Close выгружает всех посетителей.
func (r *Registry) Close(ctx context.Context) {
	r.mu.Lock()
	all := make([]*Visitor, 0, len(r.visitors))
	for id, v := range r.visitors {
		all = append(all, v)
		delete(r.visitors, id)
	}
	r.report()
	r.mu.Unlock()

	for _, v := range all {
		r.detach(ctx, v)
	}
}

func (r *Registry) detach(ctx context.Context, v *Visitor) {
	v.stop()
	<-v.done
	v.Auth.Close()
	if v.Cart.Count() > 0 {
		if err := v.Cart.Snapshot(ctx); err != nil {
			r.log.Warn("failed to save cart on detach", sl.Visitor(v.ID), sl.Err(err))
		}
	}
}

// report вызывается под блокировкой.
func (r *Registry) report() {
	if r.observer != nil {
		r.observer.SetActiveVisitors(len(r.visitors))
	}
}
