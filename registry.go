package redux

import (
	"slices"
	"sync"
)

// Registry holds the set of reserved action tags.
// It is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	tags map[string]struct{}
}

// DefaultRegistry is the process-wide registry used by factories that are not
// given one with WithRegistry. It lives for the life of the process; tests
// that create creators against it should call ResetDefaultRegistry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty tag registry.
func NewRegistry() *Registry {
	return &Registry{
		tags: make(map[string]struct{}),
	}
}

// Reserve adds a tag to the registry.
// Returns a *DuplicateTagError if the tag is already reserved.
func (r *Registry) Reserve(tag string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tags[tag]; exists {
		return &DuplicateTagError{Tag: tag}
	}
	r.tags[tag] = struct{}{}
	return nil
}

// Has returns true if the tag is reserved.
func (r *Registry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tags[tag]
	return ok
}

// Tags returns all reserved tags in sorted order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.tags))
	for tag := range r.tags {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Len returns the number of reserved tags.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tags)
}

// Reset releases every reserved tag. Creators built before the reset keep
// working, but their tags may be reserved again.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = make(map[string]struct{})
}

// ResetDefaultRegistry releases every tag in DefaultRegistry.
func ResetDefaultRegistry() {
	DefaultRegistry.Reset()
}
