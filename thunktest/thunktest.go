// Package thunktest runs a thunk against a fixed state and records the
// actions it dispatches.
//
//	actions, err := thunktest.New(TodoState{}).
//	    GivenThunk(todos.Load).
//	    WhenThunkIsDispatched(ctx, "user-1")
//
// getState always returns the seed state; use reducertest to check how
// state evolves.
package thunktest

import (
	"context"
	"errors"
	"sync"

	"github.com/spetersoncode/redux"
)

// ErrNoThunk is returned when a session is dispatched before GivenThunk.
var ErrNoThunk = errors.New("thunktest: no thunk given")

// Session holds a seed state and the thunk under test.
type Session[S any] struct {
	initial S
	creator redux.ThunkCreator[S]
}

// New starts a session whose getState returns initial.
func New[S any](initial S) *Session[S] {
	return &Session[S]{initial: initial}
}

// GivenThunk sets the creator invoked with the dispatch arguments.
func (s *Session[S]) GivenThunk(creator redux.ThunkCreator[S]) *Session[S] {
	s.creator = creator
	return s
}

// GivenThunkFunc sets a thunk that takes no arguments.
func (s *Session[S]) GivenThunkFunc(thunk redux.Thunk[S]) *Session[S] {
	return s.GivenThunk(func(...any) redux.Thunk[S] { return thunk })
}

// WhenThunkIsDispatched builds the thunk from args, runs it, and returns
// every action it dispatched in the order dispatch was called. It blocks
// until the thunk returns; ctx is handed to the thunk and is the only way to
// bound a thunk that never finishes. A thunk error is returned unchanged,
// along with the actions dispatched before it.
func (s *Session[S]) WhenThunkIsDispatched(ctx context.Context, args ...any) ([]redux.Action, error) {
	if s.creator == nil {
		return nil, ErrNoThunk
	}
	thunk := s.creator(args...)
	if thunk == nil {
		return nil, ErrNoThunk
	}

	var log actionLog
	initial := s.initial
	err := thunk(ctx, log.dispatch, func() S { return initial })
	return log.actions(), err
}

// actionLog records dispatched actions. Thunks may dispatch from goroutines
// they start, so appends are serialized.
type actionLog struct {
	mu      sync.Mutex
	entries []redux.Action
}

func (l *actionLog) dispatch(action redux.Action) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, action)
}

func (l *actionLog) actions() []redux.Action {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]redux.Action, len(l.entries))
	copy(out, l.entries)
	return out
}
