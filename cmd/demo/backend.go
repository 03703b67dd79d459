package main

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnknownSource is returned by the backend for a source it does not hold.
var ErrUnknownSource = errors.New("demo: unknown source")

// Backend fetches todo titles from a named source.
type Backend interface {
	Fetch(ctx context.Context, source string) ([]string, error)
}

// memoryBackend serves fixed titles after a simulated delay.
type memoryBackend struct {
	latency time.Duration
	sources map[string][]string
}

func newMemoryBackend(latency time.Duration) *memoryBackend {
	return &memoryBackend{
		latency: latency,
		sources: map[string][]string{
			"inbox":    {"reply to Ana", "book dentist"},
			"work":     {"review pull request", "write release notes"},
			"shopping": {"milk", "coffee", "book dentist"},
		},
	}
}

func (b *memoryBackend) Fetch(ctx context.Context, source string) ([]string, error) {
	select {
	case <-time.After(b.latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	titles, ok := b.sources[source]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, source)
	}
	return append([]string(nil), titles...), nil
}
