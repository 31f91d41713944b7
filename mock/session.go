package mock

import (
	"context"

	"github.com/fwojciec/pagelens"
)

var _ pagelens.SessionStore = (*SessionStore)(nil)

// SessionStore is a mock implementation of pagelens.SessionStore.
type SessionStore struct {
	GetFn       func(ctx context.Context, key string, v any) error
	SetFn       func(ctx context.Context, values map[string]any) error
	RemoveFn    func(ctx context.Context, keys ...string) error
	KeysFn      func(ctx context.Context) ([]string, error)
	SubscribeFn func(fn pagelens.SessionChangeFunc) func()
}

func (s *SessionStore) Get(ctx context.Context, key string, v any) error {
	return s.GetFn(ctx, key, v)
}

func (s *SessionStore) Set(ctx context.Context, values map[string]any) error {
	return s.SetFn(ctx, values)
}

func (s *SessionStore) Remove(ctx context.Context, keys ...string) error {
	return s.RemoveFn(ctx, keys...)
}

func (s *SessionStore) Keys(ctx context.Context) ([]string, error) {
	return s.KeysFn(ctx)
}

func (s *SessionStore) Subscribe(fn pagelens.SessionChangeFunc) func() {
	return s.SubscribeFn(fn)
}
