package source

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPageUnavailable is returned by SliceFetcher for pages marked as failing.
var ErrPageUnavailable = errors.New("page unavailable")

// SliceFetcher is an in-memory Fetcher over a slice. Filters and OrderBy are
// ignored: items are served in slice order.
type SliceFetcher[T any] struct {
	mu      sync.Mutex
	items   []T
	failing map[int]int
	calls   int
}

// NewSliceFetcher creates a fetcher serving items.
func NewSliceFetcher[T any](items []T) *SliceFetcher[T] {
	return &SliceFetcher[T]{
		items:   items,
		failing: make(map[int]int),
	}
}

// FailAt makes the next n fetches starting at offset fail with
// ErrPageUnavailable.
func (f *SliceFetcher[T]) FailAt(offset, n int) *SliceFetcher[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.failing[offset] = n
	return f
}

// Calls returns how many times Fetch was invoked.
func (f *SliceFetcher[T]) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

func (f *SliceFetcher[T]) Fetch(ctx context.Context, params FetchParams) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls++

	if n := f.failing[params.Offset]; n > 0 {
		f.failing[params.Offset] = n - 1
		return nil, fmt.Errorf("offset %d: %w", params.Offset, ErrPageUnavailable)
	}

	start := min(params.Offset, len(f.items))
	end := len(f.items)
	if params.Limit > 0 {
		end = min(start+params.Limit, len(f.items))
	}

	out := make([]T, end-start)
	copy(out, f.items[start:end])
	return out, nil
}

func (f *SliceFetcher[T]) Count(ctx context.Context, params FetchParams) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	return int64(len(f.items)), nil
}
