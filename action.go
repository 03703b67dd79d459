package redux

// Action is a dispatched envelope with its payload type erased.
// Reducers and dispatch functions accept any Action; the typed payload is
// recovered by the ActionCreator that owns the tag.
type Action interface {
	ActionTag() string
}

// Envelope is an action carrying a payload of type P.
// Envelopes are plain values: two envelopes with the same tag and deep-equal
// payloads are interchangeable.
type Envelope[P any] struct {
	Tag     string
	Payload P
}

// ActionTag returns the envelope's tag.
func (e Envelope[P]) ActionTag() string {
	return e.Tag
}

// Empty is the payload type for actions that carry no data.
type Empty = struct{}

// FactoryOption configures a Factory.
type FactoryOption func(*factoryOptions)

type factoryOptions struct {
	registry *Registry
}

// WithRegistry reserves tags in r instead of DefaultRegistry.
func WithRegistry(r *Registry) FactoryOption {
	return func(o *factoryOptions) {
		o.registry = r
	}
}

// Factory creates the action creator for a single tag.
type Factory[P any] struct {
	tag      string
	registry *Registry
}

// NewFactory returns a factory for actions tagged tag with payloads of type P.
// The tag is not reserved until Create is called.
//
// Example:
//
//	var AddTodo = redux.NewFactory[string]("todo.added").MustCreate()
//
//	action := AddTodo.New("buy milk") // Envelope[string]{Tag: "todo.added", Payload: "buy milk"}
func NewFactory[P any](tag string, opts ...FactoryOption) Factory[P] {
	o := factoryOptions{registry: DefaultRegistry}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry
	}
	return Factory[P]{tag: tag, registry: o.registry}
}

// Create reserves the factory's tag and returns its action creator.
// Returns a *DuplicateTagError if the tag is already reserved, in which case
// no creator is returned.
func (f Factory[P]) Create() (ActionCreator[P], error) {
	if err := f.registry.Reserve(f.tag); err != nil {
		return ActionCreator[P]{}, err
	}
	return ActionCreator[P]{tag: f.tag}, nil
}

// MustCreate is like Create but panics on error.
// This is the form to use in package-level var declarations, where a
// duplicate tag should stop the program at initialization.
func (f Factory[P]) MustCreate() ActionCreator[P] {
	c, err := f.Create()
	if err != nil {
		panic(err)
	}
	return c
}

// ActionCreator builds envelopes for one tag and payload type.
// The zero value is not usable; obtain creators from Factory.Create.
type ActionCreator[P any] struct {
	tag string
}

// Tag returns the creator's tag.
func (c ActionCreator[P]) Tag() string {
	return c.tag
}

// New returns an envelope stamped with the creator's tag and the given payload.
func (c ActionCreator[P]) New(payload P) Envelope[P] {
	return Envelope[P]{Tag: c.tag, Payload: payload}
}

// Match reports whether a was built by this creator and returns it typed.
func (c ActionCreator[P]) Match(a Action) (Envelope[P], bool) {
	if a == nil || a.ActionTag() != c.tag {
		return Envelope[P]{}, false
	}
	return asEnvelope[P](a)
}

// String implements fmt.Stringer for debugging.
func (c ActionCreator[P]) String() string {
	return c.tag
}

func asEnvelope[P any](a Action) (Envelope[P], bool) {
	switch e := a.(type) {
	case Envelope[P]:
		return e, true
	case *Envelope[P]:
		if e == nil {
			return Envelope[P]{}, false
		}
		return *e, true
	}
	return Envelope[P]{}, false
}
