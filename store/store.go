package store

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/spetersoncode/redux"
)

// Option is a functional option for store configuration.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used for dispatch and thunk debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

type subscription[S any] struct {
	id string
	fn func(S)
}

// Store holds application state and applies dispatched actions through its
// reducer. It is safe for concurrent use.
type Store[S any] struct {
	mu      sync.RWMutex
	reducer redux.Reducer[S]
	state   S
	subs    []subscription[S]
	log     *slog.Logger
}

// New creates a store seeded with the reducer's initial state.
func New[S any](reducer redux.Reducer[S], opts ...Option) *Store[S] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store[S]{
		reducer: reducer,
		state:   reducer.Init(),
		log:     o.logger,
	}
}

// State returns the current state.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch reduces action into the current state, then calls every
// subscriber with the new state in subscription order.
// Subscribers run outside the store lock and may dispatch.
func (s *Store[S]) Dispatch(action redux.Action) {
	next, subs := s.reduce(action)

	if action != nil {
		s.log.Debug("action dispatched", "tag", action.ActionTag(), "subscribers", len(subs))
	}
	for _, sub := range subs {
		sub.fn(next)
	}
}

// reduce applies action under the write lock and returns the new state with
// a snapshot of the subscribers. A panicking reducer leaves the state as it was.
func (s *Store[S]) reduce(action redux.Action) (S, []subscription[S]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := s.state
	s.state = s.reducer(&current, action)
	return s.state, slices.Clone(s.subs)
}

// Subscribe registers fn to be called after every dispatch.
// The returned function removes the subscription; calling it more than once
// is a no-op.
func (s *Store[S]) Subscribe(fn func(S)) (unsubscribe func()) {
	id := uuid.New().String()

	s.mu.Lock()
	s.subs = append(s.subs, subscription[S]{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = slices.Delete(s.subs, i, i+1)
				return
			}
		}
	}
}

// Len returns the number of active subscriptions.
func (s *Store[S]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

// Run executes thunk against the store, giving it Dispatch and State.
// Unlike thunktest, getState reflects every action dispatched so far.
func (s *Store[S]) Run(ctx context.Context, thunk redux.Thunk[S]) error {
	if thunk == nil {
		return redux.ErrNilThunk
	}

	log := s.log.With("run_id", uuid.New().String())
	log.Debug("thunk started")

	if err := thunk(ctx, s.Dispatch, s.State); err != nil {
		log.Debug("thunk failed", "error", err)
		return err
	}

	log.Debug("thunk finished")
	return nil
}
