package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/redux"
	"github.com/spetersoncode/redux/thunktest"
)

func loadedTitles(t *testing.T, a redux.Action) []string {
	t.Helper()
	env, ok := TodosLoaded.Match(a)
	require.True(t, ok, "expected %s, got %s", TodosLoaded, a.ActionTag())
	return State{Todos: env.Payload}.Titles()
}

func TestLoadTodos(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend(0)

	t.Run("dispatches loading then loaded", func(t *testing.T) {
		actions, err := thunktest.New(Reducer.Init()).
			GivenThunk(LoadTodos(backend)).
			WhenThunkIsDispatched(ctx, "inbox")

		require.NoError(t, err)
		require.Len(t, actions, 2)
		assert.Equal(t, TodosLoading.New(redux.Empty{}), actions[0])
		assert.Equal(t, []string{"reply to Ana", "book dentist"}, loadedTitles(t, actions[1]))
	})

	t.Run("dispatches failure for unknown source", func(t *testing.T) {
		actions, err := thunktest.New(Reducer.Init()).
			GivenThunk(LoadTodos(backend)).
			WhenThunkIsDispatched(ctx, "nowhere")

		assert.ErrorIs(t, err, ErrUnknownSource)
		assert.Equal(t, []redux.Action{
			TodosLoading.New(redux.Empty{}),
			TodosFailed.New("demo: unknown source: nowhere"),
		}, actions)
	})

	t.Run("requires a source", func(t *testing.T) {
		actions, err := thunktest.New(Reducer.Init()).
			GivenThunk(LoadTodos(backend)).
			WhenThunkIsDispatched(ctx)

		assert.ErrorIs(t, err, errMissingSource)
		assert.Empty(t, actions)
	})
}

func TestImportTodos(t *testing.T) {
	ctx := context.Background()
	backend := newMemoryBackend(0)

	t.Run("merges sources in order and skips known titles", func(t *testing.T) {
		seed := State{Todos: []Todo{{ID: "1", Title: "milk"}}}

		actions, err := thunktest.New(seed).
			GivenThunkFunc(ImportTodos(backend, []string{"inbox", "shopping"})).
			WhenThunkIsDispatched(ctx)

		require.NoError(t, err)
		require.Len(t, actions, 2)
		assert.Equal(t, TodosLoading.New(redux.Empty{}), actions[0])
		assert.Equal(t,
			[]string{"reply to Ana", "book dentist", "coffee"},
			loadedTitles(t, actions[1]))
	})

	t.Run("fails when any source fails", func(t *testing.T) {
		actions, err := thunktest.New(Reducer.Init()).
			GivenThunkFunc(ImportTodos(backend, []string{"inbox", "missing"})).
			WhenThunkIsDispatched(ctx)

		assert.True(t, errors.Is(err, ErrUnknownSource))
		require.Len(t, actions, 2)
		_, failed := TodosFailed.Match(actions[1])
		assert.True(t, failed)
	})

	t.Run("stops on cancellation", func(t *testing.T) {
		slow := newMemoryBackend(time.Hour)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := thunktest.New(Reducer.Init()).
			GivenThunkFunc(ImportTodos(slow, []string{"inbox"})).
			WhenThunkIsDispatched(cctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRun(t *testing.T) {
	cfg := &Config{LogLevel: "info", Sources: []string{"inbox", "work"}}

	require.NoError(t, run(context.Background(), cfg, newMemoryBackend(0)))
}
