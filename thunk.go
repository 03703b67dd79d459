package redux

import "context"

// Dispatch sends an action to whatever owns the state.
type Dispatch func(action Action)

// Thunk is deferred dispatch logic. It may block on ctx-aware work, such as
// I/O, and dispatch any number of actions before returning. A thunk that
// starts goroutines must wait for them before returning.
type Thunk[S any] func(ctx context.Context, dispatch Dispatch, getState func() S) error

// ThunkCreator builds a thunk from call arguments.
type ThunkCreator[S any] func(args ...any) Thunk[S]
