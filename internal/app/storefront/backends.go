package storefront

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/apsaracreations/saree-shop/internal/cache"
	"github.com/apsaracreations/saree-shop/internal/config"
	"github.com/apsaracreations/saree-shop/internal/http/handlers/health"
	"github.com/apsaracreations/saree-shop/internal/lib/sl"
	"github.com/apsaracreations/saree-shop/internal/storage"
	"github.com/apsaracreations/saree-shop/internal/storage/memory"
	"github.com/apsaracreations/saree-shop/internal/storage/postgresql"
	"github.com/apsaracreations/saree-shop/internal/storage/sqlite"
)

// backends открывает каждое внешнее хранилище не больше одного раза, даже если
// его используют несколько видов состояния.
type backends struct {
	cfg      *config.Config
	counter  storage.FailureCounter
	redis    *cache.Cache
	sqlite   *sqlite.Strategy
	postgres *postgresql.Strategy
	closers  []io.Closer
	checks   map[string]health.Check
}

func newBackends(cfg *config.Config, counter storage.FailureCounter) *backends {
	return &backends{
		cfg:     cfg,
		counter: counter,
		checks:  make(map[string]health.Check),
	}
}

// strategy возвращает стратегию вида kind, обёрнутую счётчиком сбоев.
func (b *backends) strategy(ctx context.Context, kind string) (storage.Strategy, error) {
	const op = "storefront.backends.strategy"

	var s storage.Strategy
	switch kind {
	case config.StorageMemory:
		s = memory.New()
	case config.StorageRedis:
		if b.redis == nil {
			c, err := cache.InitServer(ctx, b.cfg.RedisConnection, b.cfg.SessionScopeTTL)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			b.redis = c
			b.closers = append(b.closers, c)
			b.checks["redis"] = func(ctx context.Context) error { return c.Db.Ping(ctx).Err() }
		}
		s = b.redis
	case config.StorageSQLite:
		if b.sqlite == nil {
			db, err := sqlite.Open(ctx, b.cfg.SQLitePath)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			b.sqlite = db
			b.closers = append(b.closers, db)
			b.checks["sqlite"] = func(ctx context.Context) error { return db.DB.PingContext(ctx) }
		}
		s = b.sqlite
	case config.StoragePostgres:
		if b.postgres == nil {
			db, err := postgresql.New(ctx, b.cfg.PostgresDSN)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			b.postgres = db
			b.closers = append(b.closers, db)
			b.checks["postgres"] = func(ctx context.Context) error { return db.DB.PingContext(ctx) }
		}
		s = b.postgres
	default:
		return nil, fmt.Errorf("%s: unknown strategy %q", op, kind)
	}
	return storage.NewInstrumented(s, kind, b.counter), nil
}

func (b *backends) Close(log *slog.Logger) {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i].Close(); err != nil {
			log.Error("failed to close storage", sl.Err(err))
		}
	}
}
