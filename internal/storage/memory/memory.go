// Package memory реализует стратегию хранения в памяти процесса. Состояние живёт,
// пока живёт процесс.
package memory

import (
	"context"
	"sync"

	"github.com/apsaracreations/saree-shop/internal/storage"
)

type Strategy struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func New() *Strategy {
	return &Strategy{data: make(map[string][]byte)}
}

func (s *Strategy) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *Strategy) Save(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	s.mu.Lock()
	s.data[key] = v
	s.mu.Unlock()
	return nil
}

func (s *Strategy) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
