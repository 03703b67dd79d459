package main

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/spetersoncode/redux"
)

// errMissingSource is returned by LoadTodos when it is not given a source.
var errMissingSource = errors.New("demo: LoadTodos needs a source name")

// LoadTodos returns a creator for thunks that load one source, named by the
// first argument.
func LoadTodos(b Backend) redux.ThunkCreator[State] {
	return func(args ...any) redux.Thunk[State] {
		return func(ctx context.Context, dispatch redux.Dispatch, _ func() State) error {
			var source string
			if len(args) > 0 {
				source, _ = args[0].(string)
			}
			if source == "" {
				return errMissingSource
			}

			dispatch(TodosLoading.New(redux.Empty{}))
			titles, err := b.Fetch(ctx, source)
			if err != nil {
				dispatch(TodosFailed.New(err.Error()))
				return fmt.Errorf("load %s: %w", source, err)
			}

			todos := make([]Todo, len(titles))
			for i, title := range titles {
				todos[i] = NewTodo(title)
			}
			dispatch(TodosLoaded.New(todos))
			return nil
		}
	}
}

// ImportTodos fetches every source concurrently and dispatches one
// TodosLoaded with the titles not already present, in source order.
func ImportTodos(b Backend, sources []string) redux.Thunk[State] {
	return func(ctx context.Context, dispatch redux.Dispatch, getState func() State) error {
		dispatch(TodosLoading.New(redux.Empty{}))

		results := make([][]string, len(sources))
		g, gctx := errgroup.WithContext(ctx)
		for i, source := range sources {
			i, source := i, source
			g.Go(func() error {
				titles, err := b.Fetch(gctx, source)
				if err != nil {
					return fmt.Errorf("import %s: %w", source, err)
				}
				results[i] = titles
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			dispatch(TodosFailed.New(err.Error()))
			return err
		}

		seen := getState().Titles()
		var todos []Todo
		for _, titles := range results {
			for _, title := range titles {
				if slices.Contains(seen, title) {
					continue
				}
				seen = append(seen, title)
				todos = append(todos, NewTodo(title))
			}
		}
		dispatch(TodosLoaded.New(todos))
		return nil
	}
}
