package reducertest

import (
	"encoding/json"

	"github.com/stretchr/testify/assert"

	"github.com/spetersoncode/redux"
)

// TestingT is the failure-reporting surface a Session needs.
type TestingT interface {
	Errorf(format string, args ...any)
}

type tHelper interface {
	Helper()
}

// Option configures a Session.
type Option func(*options)

type options struct {
	purityCheck bool
}

// WithPurityCheck makes every dispatch verify that the reducer left its
// input state untouched. The state is snapshotted through JSON before the
// reducer runs, so S must be JSON-serializable.
func WithPurityCheck() Option {
	return func(o *options) {
		o.purityCheck = true
	}
}

// Session holds a reducer and the state produced by the actions dispatched
// so far.
type Session[S any] struct {
	t       TestingT
	opts    options
	reducer redux.Reducer[S]
	state   S
}

// New starts a session reporting failures to t.
func New[S any](t TestingT, opts ...Option) *Session[S] {
	s := &Session[S]{t: t}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

// GivenReducer sets the reducer under test and the state it starts from.
func (s *Session[S]) GivenReducer(reducer redux.Reducer[S], initial S) *Session[S] {
	s.reducer = reducer
	s.state = initial
	return s
}

// WhenActionIsDispatched runs the reducer once against the current state and
// keeps the result. Calls chain against the evolving state.
func (s *Session[S]) WhenActionIsDispatched(action redux.Action) *Session[S] {
	s.helper()
	if s.reducer == nil {
		s.t.Errorf("reducertest: no reducer given before dispatching %v", describe(action))
		return s
	}

	if !s.opts.purityCheck {
		s.state = s.reducer(&s.state, action)
		return s
	}

	before, err := json.Marshal(s.state)
	if err != nil {
		s.t.Errorf("reducertest: purity check: snapshot state: %v", err)
		return s
	}
	input := s.state
	s.state = s.reducer(&input, action)

	after, err := json.Marshal(input)
	if err != nil {
		s.t.Errorf("reducertest: purity check: snapshot state: %v", err)
		return s
	}
	if string(before) != string(after) {
		s.t.Errorf("reducertest: reducer mutated its input state while handling %v\nbefore: %s\nafter:  %s",
			describe(action), before, after)
	}
	return s
}

// ThenStateShouldEqual reports a failure unless the current state deep-equals
// expected. Returns whether it did.
func (s *Session[S]) ThenStateShouldEqual(expected S) bool {
	s.helper()
	return assert.Equal(s.t, expected, s.state)
}

// ThenStatePredicateShouldEqual reports a failure if predicate returns false
// for the current state. The predicate may also make its own assertions
// against the test, for fields such as timestamps that need custom comparison.
func (s *Session[S]) ThenStatePredicateShouldEqual(predicate func(state S) bool) bool {
	s.helper()
	if predicate(s.state) {
		return true
	}
	return assert.Fail(s.t, "reducertest: state predicate returned false", "state: %#v", s.state)
}

// State returns the current state.
func (s *Session[S]) State() S {
	return s.state
}

func (s *Session[S]) helper() {
	if h, ok := s.t.(tHelper); ok {
		h.Helper()
	}
}

func describe(action redux.Action) string {
	if action == nil {
		return "<nil action>"
	}
	return action.ActionTag()
}
