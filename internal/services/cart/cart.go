// Package cart реализует корзину посетителя: строки товаров с итогами и снимки их состояния
// в выбранной стратегии хранения.
package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/apsaracreations/saree-shop/internal/lib/price"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/models"
	"github.com/apsaracreations/saree-shop/internal/storage"
)

const (
	// DefaultMaxAge — снимок старше этого срока при восстановлении отбрасывается.
	DefaultMaxAge = 24 * time.Hour
	// DefaultAutosaveInterval — период автосохранения непустой корзины.
	DefaultAutosaveInterval = 30 * time.Second
)

// ErrInvalidProduct — у товара нет идентификатора или цену нельзя разобрать.
var ErrInvalidProduct = errors.New("invalid product")

// Options настраивают Store. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	MaxAge           time.Duration
	AutosaveInterval time.Duration
	Now              func() time.Time
	// Ticks возвращает канал тиков и функцию остановки. Нужен тестам.
	Ticks func(d time.Duration) (<-chan time.Time, func())
}

func (o Options) withDefaults() Options {
	if o.MaxAge <= 0 {
		o.MaxAge = DefaultMaxAge
	}
	if o.AutosaveInterval <= 0 {
		o.AutosaveInterval = DefaultAutosaveInterval
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Ticks == nil {
		o.Ticks = func(d time.Duration) (<-chan time.Time, func()) {
			t := time.NewTicker(d)
			return t.C, t.Stop
		}
	}
	return o
}

// Store — корзина одного посетителя. Каждое изменение сразу сохраняется.
type Store struct {
	// persistMu упорядочивает пары «изменение и запись в хранилище»,
	// mu защищает строки. persistMu всегда берётся первым.
	persistMu sync.Mutex
	mu        sync.Mutex
	log      *slog.Logger
	strategy storage.Strategy
	key      string
	opts     Options
	items    []models.CartItem
}

// NewStore создаёт пустую корзину посетителя visitorID.
func NewStore(log *slog.Logger, visitorID string, strategy storage.Strategy, opts Options) *Store {
	return &Store{
		log:      log.With(sl.Visitor(visitorID)),
		strategy: strategy,
		key:      storage.CartKey(visitorID),
		opts:     opts.withDefaults(),
	}
}

// AddItem добавляет товар. Повторное добавление увеличивает количество на 1.
func (s *Store) AddItem(ctx context.Context, p models.CartProduct) (models.CartItem, error) {
	if p.ID == "" {
		return models.CartItem{}, ErrInvalidProduct
	}
	if _, err := price.Parse(p.Price); err != nil {
		return models.CartItem{}, ErrInvalidProduct
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	var line models.CartItem
	if i := s.index(p.ID); i >= 0 {
		s.items[i].Quantity++
		line = s.items[i]
	} else {
		category := p.Category
		if category == "" {
			category = models.DefaultCategory
		}
		line = models.CartItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Category: category,
			Quantity: 1,
			AddedAt:  s.opts.Now().UTC(),
		}
		s.items = append(s.items, line)
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return line, nil
}

// RemoveItem удаляет все строки с id. Отсутствие строки ошибкой не считается.
func (s *Store) RemoveItem(ctx context.Context, id string) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	kept := s.items[:0]
	removed := false
	for _, it := range s.items {
		if it.ID == id {
			removed = true
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	if !removed {
		s.mu.Unlock()
		return
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
}

// SetQuantity задаёт количество. n <= 0 удаляет строку.
func (s *Store) SetQuantity(ctx context.Context, id string, n int) {
	if n <= 0 {
		s.RemoveItem(ctx, id)
		return
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	i := s.index(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items[i].Quantity = n
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
}

// Items возвращает копию строк в порядке добавления.
func (s *Store) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total возвращает сумму цена×количество по всем строкам.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, it := range s.items {
		v, err := price.Parse(it.Price)
		if err != nil {
			continue
		}
		total += v * float64(it.Quantity)
	}
	return total
}

// Count возвращает общее количество единиц товара.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, it := range s.items {
		n += it.Quantity
	}
	return n
}

// Clear очищает корзину и удаляет её снимок.
func (s *Store) Clear(ctx context.Context) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()

	if err := storage.Clear(ctx, s.strategy, s.key); err != nil {
		s.log.Warn("failed to clear cart", sl.Err(err))
	}
}

// Snapshot сохраняет все строки вместе с текущим временем.
func (s *Store) Snapshot(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	return storage.SaveJSON(ctx, s.strategy, s.key, snap)
}

// Restore загружает снимок. Снимок принимается, только если он моложе MaxAge
// и все его строки корректны, иначе корзина остаётся пустой.
func (s *Store) Restore(ctx context.Context) bool {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	var snap models.CartSnapshot
	found, err := storage.LoadJSON(ctx, s.strategy, s.key, &snap)
	if err != nil {
		s.log.Warn("could not restore cart", sl.Err(err))
	}

	ok := found && err == nil && s.valid(snap)
	s.mu.Lock()
	if ok {
		s.items = snap.Items
	} else {
		s.items = nil
	}
	s.mu.Unlock()

	if ok {
		s.log.Debug("cart restored", slog.Int("lines", len(snap.Items)))
	}
	return ok
}

func (s *Store) valid(snap models.CartSnapshot) bool {
	if snap.Timestamp.IsZero() || s.opts.Now().Sub(snap.Timestamp) >= s.opts.MaxAge {
		return false
	}
	seen := make(map[string]struct{}, len(snap.Items))
	for _, it := range snap.Items {
		if it.ID == "" || it.Quantity < 1 {
			return false
		}
		if _, err := price.Parse(it.Price); err != nil {
			return false
		}
		if _, dup := seen[it.ID]; dup {
			return false
		}
		seen[it.ID] = struct{}{}
	}
	return true
}

// Run периодически сохраняет непустую корзину до отмены ctx.
func (s *Store) Run(ctx context.Context) {
	ticks, stop := s.opts.Ticks(s.opts.AutosaveInterval)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticks:
			if err := s.autosave(ctx); err != nil {
				s.log.Warn("cart autosave failed", sl.Err(err))
			}
		}
	}
}

// autosave сохраняет снимок, только если корзина не пуста на момент записи.
func (s *Store) autosave(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	if len(s.items) == 0 {
		s.mu.Unlock()
		return nil
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	return storage.SaveJSON(ctx, s.strategy, s.key, snap)
}

// index вызывается под блокировкой.
func (s *Store) index(id string) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// snapshotLocked вызывается под блокировкой.
func (s *Store) snapshotLocked() models.CartSnapshot {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)
	return models.CartSnapshot{Items: items, Timestamp: s.opts.Now().UTC()}
}

func (s *Store) persist(ctx context.Context, snap models.CartSnapshot) {
	if err := storage.SaveJSON(ctx, s.strategy, s.key, snap); err != nil {
		s.log.Warn("failed to save cart", sl.Err(err))
	}
}
