package store

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/redux"
)

type counterState struct {
	Count   int
	History []int
}

type counter struct {
	add     redux.ActionCreator[int]
	fail    redux.ActionCreator[string]
	reducer redux.Reducer[counterState]
}

func newCounter() counter {
	r := redux.NewRegistry()
	c := counter{
		add:  redux.NewFactory[int]("counter.add", redux.WithRegistry(r)).MustCreate(),
		fail: redux.NewFactory[string]("counter.fail", redux.WithRegistry(r)).MustCreate(),
	}
	c.reducer = redux.NewReducer(counterState{Count: 10}).
		AddMapper(redux.On(c.add, func(s counterState, a redux.Envelope[int]) counterState {
			history := append([]int(nil), s.History...)
			return counterState{Count: s.Count + a.Payload, History: append(history, a.Payload)}
		})).
		AddMapper(redux.On(c.fail, func(counterState, redux.Envelope[string]) counterState {
			panic("reducer failed")
		})).
		Create()
	return c
}

func TestStore_Dispatch(t *testing.T) {
	c := newCounter()

	t.Run("seeds with initial state", func(t *testing.T) {
		s := New(c.reducer)
		assert.Equal(t, counterState{Count: 10}, s.State())
	})

	t.Run("reduces actions in order", func(t *testing.T) {
		s := New(c.reducer)

		s.Dispatch(c.add.New(1))
		s.Dispatch(c.add.New(2))

		assert.Equal(t, counterState{Count: 13, History: []int{1, 2}}, s.State())
	})

	t.Run("reducer panic leaves state and lock intact", func(t *testing.T) {
		s := New(c.reducer)
		s.Dispatch(c.add.New(1))

		assert.PanicsWithValue(t, "reducer failed", func() {
			s.Dispatch(c.fail.New("x"))
		})

		assert.Equal(t, 11, s.State().Count)
		s.Dispatch(c.add.New(1))
		assert.Equal(t, 12, s.State().Count)
	})
}

func TestStore_Subscribe(t *testing.T) {
	c := newCounter()

	t.Run("notifies subscribers in order with new state", func(t *testing.T) {
		s := New(c.reducer)
		var calls []string

		s.Subscribe(func(st counterState) { calls = append(calls, "first") })
		s.Subscribe(func(st counterState) {
			calls = append(calls, "second")
			assert.Equal(t, 15, st.Count)
		})

		s.Dispatch(c.add.New(5))

		assert.Equal(t, []string{"first", "second"}, calls)
	})

	t.Run("unsubscribe stops notifications", func(t *testing.T) {
		s := New(c.reducer)
		calls := 0
		unsubscribe := s.Subscribe(func(counterState) { calls++ })

		s.Dispatch(c.add.New(1))
		unsubscribe()
		unsubscribe()
		s.Dispatch(c.add.New(1))

		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("subscriber may dispatch", func(t *testing.T) {
		s := New(c.reducer)
		s.Subscribe(func(st counterState) {
			if st.Count < 12 {
				s.Dispatch(c.add.New(1))
			}
		})

		s.Dispatch(c.add.New(1))

		assert.Equal(t, 12, s.State().Count)
	})
}

func TestStore_Run(t *testing.T) {
	c := newCounter()
	ctx := context.Background()

	t.Run("getState sees dispatched actions", func(t *testing.T) {
		s := New(c.reducer)
		var seen []int

		err := s.Run(ctx, func(_ context.Context, dispatch redux.Dispatch, getState func() counterState) error {
			seen = append(seen, getState().Count)
			dispatch(c.add.New(5))
			seen = append(seen, getState().Count)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []int{10, 15}, seen)
	})

	t.Run("returns thunk error", func(t *testing.T) {
		s := New(c.reducer)
		cause := errors.New("boom")

		err := s.Run(ctx, func(context.Context, redux.Dispatch, func() counterState) error {
			return cause
		})

		assert.ErrorIs(t, err, cause)
	})

	t.Run("rejects nil thunk", func(t *testing.T) {
		s := New(c.reducer)
		assert.ErrorIs(t, s.Run(ctx, nil), redux.ErrNilThunk)
	})

	t.Run("logs with run id", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		s := New(c.reducer, WithLogger(logger))

		err := s.Run(ctx, func(_ context.Context, dispatch redux.Dispatch, _ func() counterState) error {
			dispatch(c.add.New(1))
			return nil
		})

		require.NoError(t, err)
		out := buf.String()
		assert.Contains(t, out, "thunk started")
		assert.Contains(t, out, "run_id=")
		assert.Contains(t, out, "tag=counter.add")
		assert.Contains(t, out, "thunk finished")
	})
}

func TestStore_Concurrent(t *testing.T) {
	c := newCounter()
	s := New(c.reducer)
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(c.add.New(1))
		}()
	}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.State()
		}()
	}
	wg.Wait()

	assert.Equal(t, 110, s.State().Count)
	assert.Len(t, s.State().History, 100)
}
