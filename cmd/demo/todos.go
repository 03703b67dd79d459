package main

import (
	"slices"

	"github.com/google/uuid"

	"github.com/spetersoncode/redux"
)

// Todo is a single todo item.
type Todo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// NewTodo creates an open todo with a fresh ID.
func NewTodo(title string) Todo {
	return Todo{ID: uuid.New().String(), Title: title}
}

// State is the demo application state.
type State struct {
	Todos   []Todo `json:"todos"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Titles returns the titles of all todos in order.
func (s State) Titles() []string {
	titles := make([]string, len(s.Todos))
	for i, t := range s.Todos {
		titles[i] = t.Title
	}
	return titles
}

var (
	TodoAdded   = redux.NewFactory[Todo]("todo.added").MustCreate()
	TodoToggled = redux.NewFactory[string]("todo.toggled").MustCreate()
	TodoRemoved = redux.NewFactory[string]("todo.removed").MustCreate()

	TodosLoading = redux.NewFactory[redux.Empty]("todos.loading").MustCreate()
	TodosLoaded  = redux.NewFactory[[]Todo]("todos.loaded").MustCreate()
	TodosFailed  = redux.NewFactory[string]("todos.failed").MustCreate()
)

// Reducer applies todo actions to State.
var Reducer = redux.NewReducer(State{Todos: []Todo{}}).
	AddMapper(redux.On(TodoAdded, func(s State, a redux.Envelope[Todo]) State {
		s.Todos = append(slices.Clone(s.Todos), a.Payload)
		return s
	})).
	AddMapper(redux.On(TodoToggled, func(s State, a redux.Envelope[string]) State {
		todos := slices.Clone(s.Todos)
		for i := range todos {
			if todos[i].ID == a.Payload {
				todos[i].Done = !todos[i].Done
			}
		}
		s.Todos = todos
		return s
	})).
	AddMapper(redux.On(TodoRemoved, func(s State, a redux.Envelope[string]) State {
		s.Todos = slices.DeleteFunc(slices.Clone(s.Todos), func(t Todo) bool {
			return t.ID == a.Payload
		})
		return s
	})).
	AddMapper(redux.On(TodosLoading, func(s State, _ redux.Envelope[redux.Empty]) State {
		s.Loading = true
		s.Error = ""
		return s
	})).
	AddMapper(redux.On(TodosLoaded, func(s State, a redux.Envelope[[]Todo]) State {
		s.Todos = append(slices.Clone(s.Todos), a.Payload...)
		s.Loading = false
		return s
	})).
	AddMapper(redux.On(TodosFailed, func(s State, a redux.Envelope[string]) State {
		s.Loading = false
		s.Error = a.Payload
		return s
	})).
	Create()
