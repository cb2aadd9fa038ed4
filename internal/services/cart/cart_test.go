package cart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apsaracreations/saree-shop/internal/models"
	"github.com/apsaracreations/saree-shop/internal/storage"
	"github.com/apsaracreations/saree-shop/internal/storage/memory"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(strategy storage.Strategy, now func() time.Time) *Store {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewStore(log, "visitor-1", strategy, Options{Now: now})
}

func fixedNow() time.Time { return testNow }

func product(id, p string) models.CartProduct {
	return models.CartProduct{ID: id, Name: "Saree " + id, Price: p, Image: "assets/images/" + id + ".jpg"}
}

// countingStrategy считает записи и может отказывать.
type countingStrategy struct {
	*memory.Strategy
	mu    sync.Mutex
	saves int
	fail  bool
}

func (c *countingStrategy) Save(ctx context.Context, key string, value []byte) error {
	c.mu.Lock()
	c.saves++
	fail := c.fail
	c.mu.Unlock()
	if fail {
		return errors.New("quota exceeded")
	}
	return c.Strategy.Save(ctx, key, value)
}

func (c *countingStrategy) saveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

// blockingStrategy задерживает первую запись, пока тест не закроет release.
type blockingStrategy struct {
	storage.Strategy
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newBlockingStrategy(inner storage.Strategy) *blockingStrategy {
	return &blockingStrategy{Strategy: inner, entered: make(chan struct{}), release: make(chan struct{})}
}

func (b *blockingStrategy) Save(ctx context.Context, key string, value []byte) error {
	first := false
	b.once.Do(func() { first = true })
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

func TestAddItem_RepeatedAddIncrementsQuantity(t *testing.T) {
	s := newTestStore(memory.New(), fixedNow)
	ctx := context.Background()

	_, err := s.AddItem(ctx, product("p1", "₹1,000"))
	require.NoError(t, err)
	line, err := s.AddItem(ctx, product("p1", "₹1,000"))
	require.NoError(t, err)

	assert.Equal(t, 2, line.Quantity)
	require.Len(t, s.Items(), 1)
	assert.Equal(t, 2, s.Count())
	assert.Equal(t, models.DefaultCategory, s.Items()[0].Category)
	assert.Equal(t, testNow, s.Items()[0].AddedAt)

	s.SetQuantity(ctx, "p1", 0)
	assert.Empty(t, s.Items())
	assert.Zero(t, s.Count())
}

func TestAddItem_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		product models.CartProduct
	}{
		{name: "missing id", product: product("", "₹1,000")},
		{name: "empty price", product: product("p1", "")},
		{name: "price without digits", product: product("p1", "₹ on request")},
		{name: "price with trailing text", product: product("p1", "₹1,000 (10% off)")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(memory.New(), fixedNow)

			_, err := s.AddItem(context.Background(), tt.product)

			assert.ErrorIs(t, err, ErrInvalidProduct)
			assert.Empty(t, s.Items())
		})
	}
}

func TestAddItem_KeepsCategory(t *testing.T) {
	s := newTestStore(memory.New(), fixedNow)
	p := product("p1", "₹500")
	p.Category = "Lehenga"

	line, err := s.AddItem(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "Lehenga", line.Category)
}

func TestTotal(t *testing.T) {
	s := newTestStore(memory.New(), fixedNow)
	ctx := context.Background()

	_, err := s.AddItem(ctx, product("p1", "₹1,000"))
	require.NoError(t, err)
	_, err = s.AddItem(ctx, product("p1", "₹1,000"))
	require.NoError(t, err)
	_, err = s.AddItem(ctx, product("p2", "₹500"))
	require.NoError(t, err)

	assert.InDelta(t, 2500.0, s.Total(), 0.0001)
	assert.Equal(t, 3, s.Count())
}

func TestTotal_RsPrefix(t *testing.T) {
	s := newTestStore(memory.New(), fixedNow)

	_, err := s.AddItem(context.Background(), product("p1", "Rs. 500"))
	require.NoError(t, err)

	assert.InDelta(t, 500.0, s.Total(), 0.0001)
}

func TestRemoveItem(t *testing.T) {
	strategy := &countingStrategy{Strategy: memory.New()}
	s := newTestStore(strategy, fixedNow)
	ctx := context.Background()
	_, err := s.AddItem(ctx, product("p1", "₹1,000"))
	require.NoError(t, err)
	_, err = s.AddItem(ctx, product("p2", "₹500"))
	require.NoError(t, err)
	saves := strategy.saveCount()

	s.RemoveItem(ctx, "absent")
	assert.Equal(t, saves, strategy.saveCount(), "no-op does not persist")
	assert.Len(t, s.Items(), 2)

	s.RemoveItem(ctx, "p1")
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ID)
	assert.Equal(t, saves+1, strategy.saveCount())
}

func TestSetQuantity(t *testing.T) {
	s := newTestStore(memory.New(), fixedNow)
	ctx := context.Background()
	_, err := s.AddItem(ctx, product("p1", "₹750"))
	require.NoError(t, err)

	s.SetQuantity(ctx, "p1", 4)
	assert.Equal(t, 4, s.Count())
	assert.InDelta(t, 3000.0, s.Total(), 0.0001)

	s.SetQuantity(ctx, "absent", 3)
	assert.Equal(t, 4, s.Count())

	s.SetQuantity(ctx, "p1", -1)
	assert.Empty(t, s.Items())
}

func TestMutationsSnapshotImmediately(t *testing.T) {
	strategy := memory.New()
	ctx := context.Background()
	s := newTestStore(strategy, fixedNow)

	_, err := s.AddItem(ctx, product("p1", "₹1,000"))
	require.NoError(t, err)

	var snap models.CartSnapshot
	found, err := storage.LoadJSON(ctx, strategy, storage.CartKey("visitor-1"), &snap)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, snap.Items, 1)
	assert.Equal(t, "p1", snap.Items[0].ID)
	assert.True(t, testNow.Equal(snap.Timestamp))
}

func TestClear(t *testing.T) {
	strategy := memory.New()
	ctx := context.Background()
	s := newTestStore(strategy, fixedNow)
	_, err := s.AddItem(ctx, product("p1", "₹1,000"))
	require.NoError(t, err)

	s.Clear(ctx)

	assert.Empty(t, s.Items())
	assert.Zero(t, s.Total())
	_, err = strategy.Load(ctx, storage.CartKey("visitor-1"))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRestore(t *testing.T) {
	valid := []models.CartItem{{ID: "p1", Name: "Silk", Price: "₹1,000", Quantity: 2, Category: "Saree"}}

	tests := []struct {
		name  string
		snap  *models.CartSnapshot
		raw   string
		want  bool
		count int
	}{
		{name: "fresh snapshot", snap: &models.CartSnapshot{Items: valid, Timestamp: testNow.Add(-time.Hour)}, want: true, count: 2},
		{name: "older than a day", snap: &models.CartSnapshot{Items: valid, Timestamp: testNow.Add(-25 * time.Hour)}},
		{name: "exactly a day", snap: &models.CartSnapshot{Items: valid, Timestamp: testNow.Add(-24 * time.Hour)}},
		{name: "no timestamp", snap: &models.CartSnapshot{Items: valid}},
		{
			name: "zero quantity line",
			snap: &models.CartSnapshot{
				Items:     []models.CartItem{{ID: "p1", Price: "₹1,000", Quantity: 0}},
				Timestamp: testNow.Add(-time.Minute),
			},
		},
		{
			name: "unparseable price",
			snap: &models.CartSnapshot{
				Items:     []models.CartItem{{ID: "p1", Price: "free", Quantity: 1}},
				Timestamp: testNow.Add(-time.Minute),
			},
		},
		{
			name: "duplicate ids",
			snap: &models.CartSnapshot{
				Items: []models.CartItem{
					{ID: "p1", Price: "₹1", Quantity: 1},
					{ID: "p1", Price: "₹1", Quantity: 1},
				},
				Timestamp: testNow.Add(-time.Minute),
			},
		},
		{name: "corrupt json", raw: "{items"},
		{name: "nothing saved"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			strategy := memory.New()
			s := newTestStore(strategy, fixedNow)
			_, err := s.AddItem(ctx, product("stale", "₹1"))
			require.NoError(t, err)
			key := storage.CartKey("visitor-1")
			switch {
			case tt.snap != nil:
				require.NoError(t, storage.SaveJSON(ctx, strategy, key, tt.snap))
			case tt.raw != "":
				require.NoError(t, strategy.Save(ctx, key, []byte(tt.raw)))
			default:
				require.NoError(t, strategy.Clear(ctx, key))
			}

			got := s.Restore(ctx)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.count, s.Count())
		})
	}
}

func TestPersistenceFailureIsSoft(t *testing.T) {
	strategy := &countingStrategy{Strategy: memory.New(), fail: true}
	s := newTestStore(strategy, fixedNow)

	_, err := s.AddItem(context.Background(), product("p1", "₹1,000"))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count())

	err = s.Snapshot(context.Background())
	var pe *storage.PersistenceError
	assert.ErrorAs(t, err, &pe)
}

func TestRun_AutosavesOnlyNonEmptyCart(t *testing.T) {
	strategy := &countingStrategy{Strategy: memory.New()}
	ticks := make(chan time.Time)
	stopped := make(chan struct{})
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewStore(log, "visitor-1", strategy, Options{
		Now: fixedNow,
		Ticks: func(d time.Duration) (<-chan time.Time, func()) {
			assert.Equal(t, DefaultAutosaveInterval, d)
			return ticks, func() { close(stopped) }
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	ticks <- testNow
	ticks <- testNow
	assert.Zero(t, strategy.saveCount(), "empty cart is not saved")

	_, err := s.AddItem(context.Background(), product("p1", "₹1,000"))
	require.NoError(t, err)
	require.Equal(t, 1, strategy.saveCount())

	ticks <- testNow
	ticks <- testNow
	assert.Eventually(t, func() bool { return strategy.saveCount() >= 2 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	<-stopped
}

func TestClear_WaitsForPendingSave(t *testing.T) {
	backing := memory.New()
	slow := newBlockingStrategy(backing)
	s := newTestStore(slow, fixedNow)
	ctx := context.Background()

	added := make(chan struct{})
	go func() {
		defer close(added)
		_, err := s.AddItem(ctx, product("p1", "₹1,000"))
		assert.NoError(t, err)
	}()
	<-slow.entered

	cleared := make(chan struct{})
	go func() {
		defer close(cleared)
		s.Clear(ctx)
	}()
	assert.Never(t, isClosed(cleared), 50*time.Millisecond, 5*time.Millisecond, "clear must wait for the pending save")

	close(slow.release)
	<-added
	<-cleared

	assert.Empty(t, s.Items())
	fresh := newTestStore(backing, fixedNow)
	assert.False(t, fresh.Restore(ctx), "cleared cart must not come back from storage")
	assert.Empty(t, fresh.Items())
}
