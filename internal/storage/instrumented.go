package storage

import (
	"context"
	"errors"
)

// FailureCounter считает сбои хранилища.
type FailureCounter interface {
	PersistenceFailure(strategy, op string)
}

// Instrumented оборачивает Strategy и сообщает о каждом сбое в FailureCounter.
type Instrumented struct {
	next    Strategy
	name    string
	counter FailureCounter
}

// NewInstrumented создаёт декоратор стратегии с именем name.
func NewInstrumented(next Strategy, name string, counter FailureCounter) *Instrumented {
	return &Instrumented{next: next, name: name, counter: counter}
}

func (s *Instrumented) Load(ctx context.Context, key string) ([]byte, error) {
	v, err := s.next.Load(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.counter.PersistenceFailure(s.name, "load")
	}
	return v, err
}

func (s *Instrumented) Save(ctx context.Context, key string, value []byte) error {
	err := s.next.Save(ctx, key, value)
	if err != nil {
		s.counter.PersistenceFailure(s.name, "save")
	}
	return err
}

func (s *Instrumented) Clear(ctx context.Context, key string) error {
	err := s.next.Clear(ctx, key)
	if err != nil {
		s.counter.PersistenceFailure(s.name, "clear")
	}
	return err
}
