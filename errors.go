package redux

import (
	"errors"
	"fmt"
)

// ErrNilThunk is returned when a nil thunk is run against a store.
var ErrNilThunk = errors.New("redux: nil thunk")

// DuplicateTagError is returned when an action creator is created for a tag
// that is already reserved in the registry.
type DuplicateTagError struct {
	Tag string
}

// Error returns a formatted error message including the duplicate tag.
func (e *DuplicateTagError) Error() string {
	return fmt.Sprintf("redux: duplicate action tag: %s", e.Tag)
}

// PayloadTypeError is raised when an action carries a registered tag but a
// payload type other than the one its creator was declared with. This only
// happens with hand-built envelopes.
type PayloadTypeError struct {
	Tag  string
	Want string
	Got  string
}

// Error returns a formatted error message including both payload types.
func (e *PayloadTypeError) Error() string {
	return fmt.Sprintf("redux: action %s has payload type %s, want %s", e.Tag, e.Got, e.Want)
}
