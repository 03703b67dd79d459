package redux

import "reflect"

// Reducer computes the next state from the current state and an action.
// A nil state means no state exists yet; the reducer substitutes its
// initial state. Reducers built by Builder are pure: the same state and
// action always produce the same result.
type Reducer[S any] func(state *S, action Action) S

// Init returns the reducer's initial state.
func (r Reducer[S]) Init() S {
	return r(nil, nil)
}

// Mapper computes the next state for one action type.
// Mappers must not modify the state they receive.
type Mapper[S, P any] func(state S, action Envelope[P]) S

// MapperEntry pairs a filter tag with the mapper applied when it matches.
// Entries of one reducer may carry different payload types; build them with On.
type MapperEntry[S any] struct {
	tag   string
	apply func(state S, action Action) S
}

// Tag returns the tag the entry filters on.
func (e MapperEntry[S]) Tag() string {
	return e.tag
}

// On builds an entry that applies mapper to actions created by filter.
//
// Example:
//
//	redux.On(AddTodo, func(s TodoState, a redux.Envelope[string]) TodoState {
//	    return TodoState{Items: append(slices.Clone(s.Items), a.Payload)}
//	})
func On[S, P any](filter ActionCreator[P], mapper Mapper[S, P]) MapperEntry[S] {
	tag := filter.Tag()
	return MapperEntry[S]{
		tag: tag,
		apply: func(state S, action Action) S {
			env, ok := asEnvelope[P](action)
			if !ok {
				panic(&PayloadTypeError{
					Tag:  tag,
					Want: reflect.TypeOf((*Envelope[P])(nil)).Elem().String(),
					Got:  reflect.TypeOf(action).String(),
				})
			}
			return mapper(state, env)
		},
	}
}

// Builder accumulates mapper entries over a fixed initial state.
type Builder[S any] struct {
	initial S
	entries []MapperEntry[S]
}

// NewReducer starts a reducer whose initial state is initial.
//
// Example:
//
//	reducer := redux.NewReducer(TodoState{}).
//	    AddMapper(redux.On(AddTodo, addTodo)).
//	    AddMapper(redux.On(RemoveTodo, removeTodo)).
//	    Create()
func NewReducer[S any](initial S) *Builder[S] {
	return &Builder[S]{initial: initial}
}

// AddMapper appends an entry and returns the builder for chaining.
// Entries may share a tag; only the first one added is ever applied.
func (b *Builder[S]) AddMapper(entry MapperEntry[S]) *Builder[S] {
	b.entries = append(b.entries, entry)
	return b
}

// Len returns the number of entries added so far.
func (b *Builder[S]) Len() int {
	return len(b.entries)
}

// Create returns a reducer over the entries added so far.
// Entries added to the builder afterwards do not affect the returned reducer.
//
// The reducer scans entries in insertion order and applies the first one
// whose tag equals the action's tag. An action no entry matches returns the
// state unchanged. Panics raised by mappers are not recovered.
func (b *Builder[S]) Create() Reducer[S] {
	initial := b.initial
	entries := make([]MapperEntry[S], len(b.entries))
	copy(entries, b.entries)

	return func(state *S, action Action) S {
		current := initial
		if state != nil {
			current = *state
		}
		if action == nil {
			return current
		}
		tag := action.ActionTag()
		for _, e := range entries {
			if e.tag == tag {
				return e.apply(current, action)
			}
		}
		return current
	}
}
