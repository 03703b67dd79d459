// Package redux provides typed building blocks for unidirectional data flow:
// action creators with globally unique tags, and reducers composed from
// tag-filtered mappers.
//
// # Action Creators
//
// Every action type is declared once, usually as a package-level variable.
// Creating two creators for the same tag fails with a [DuplicateTagError]:
//
//	var (
//	    AddTodo    = redux.NewFactory[string]("todo.added").MustCreate()
//	    ClearTodos = redux.NewFactory[redux.Empty]("todo.cleared").MustCreate()
//	)
//
//	action := AddTodo.New("buy milk")
//
// Tags are reserved in [DefaultRegistry] unless a registry is passed with
// [WithRegistry]. Tests that declare creators locally should use their own
// [Registry] or call [ResetDefaultRegistry].
//
// # Reducers
//
// A [Builder] collects mapper entries over an initial state and produces a
// [Reducer]:
//
//	reducer := redux.NewReducer(TodoState{}).
//	    AddMapper(redux.On(AddTodo, func(s TodoState, a redux.Envelope[string]) TodoState {
//	        return TodoState{Items: append(slices.Clone(s.Items), a.Payload)}
//	    })).
//	    AddMapper(redux.On(ClearTodos, func(TodoState, redux.Envelope[redux.Empty]) TodoState {
//	        return TodoState{}
//	    })).
//	    Create()
//
//	state := reducer(nil, AddTodo.New("buy milk")) // nil state starts from TodoState{}
//
// The first entry whose tag matches the action wins. Actions without a
// matching entry leave the state unchanged.
//
// # Thunks
//
// A [Thunk] holds dispatch logic that may wait on I/O. The store package
// runs thunks against live state; the thunktest package records what a
// thunk dispatches.
package redux
