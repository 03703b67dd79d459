// Package store holds application state behind a reducer.
//
// A [Store] is the minimal dispatch loop: it seeds itself from the
// reducer's initial state, reduces every dispatched action, and notifies
// subscribers. It has no middleware, persistence, or history.
//
//	s := store.New(todos.Reducer, store.WithLogger(slog.Default()))
//	unsubscribe := s.Subscribe(func(state todos.State) {
//	    fmt.Println(len(state.Items))
//	})
//	defer unsubscribe()
//
//	s.Dispatch(todos.Add.New("buy milk"))
//
//	if err := s.Run(ctx, todos.Load("user-1")); err != nil {
//	    log.Fatal(err)
//	}
package store
