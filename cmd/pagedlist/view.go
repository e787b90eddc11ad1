package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/nrfta/pagedlist"
	"github.com/nrfta/pagedlist/internal/logging"
	"github.com/nrfta/pagedlist/source"
)

var errPageFailed = errors.New("page fetch failed")

// textView renders slots as lines of text and remembers what the last frame showed.
type textView[T any] struct {
	out    io.Writer
	format func(T) string

	empty   bool
	loading bool
	failed  bool
	err     error
}

func (v *textView[T]) reset() {
	v.empty, v.loading, v.failed, v.err = false, false, false, nil
}

func (v *textView[T]) Empty() {
	v.empty = true
	fmt.Fprintln(v.out, "  (no items)")
}

func (v *textView[T]) Item(index int, item T) {
	fmt.Fprintf(v.out, "  %4d  %s\n", index, v.format(item))
}

func (v *textView[T]) Loading(index int) {
	v.loading = true
	fmt.Fprintf(v.out, "  %4d  loading...\n", index)
}

func (v *textView[T]) Error(index int, err error) {
	v.failed = true
	v.err = err
	fmt.Fprintf(v.out, "  %4d  failed to load\n", index)
}

// scroll renders the list one viewport at a time. A frame showing a loading
// slot waits for the fetch and is rendered again; a frame showing the error
// slot resets the list while retries remain.
func scroll[T any](
	ctx context.Context,
	ctl *pagedlist.Controller[*source.Page[T], T],
	out io.Writer,
	cfg *Config,
	format func(T) string,
) error {
	logger := logging.NewLogger("viewport")
	defer ctl.Dispose()

	var changes atomic.Int64
	cancel := ctl.Subscribe(func() {
		changes.Add(1)
	})
	defer cancel()

	view := &textView[T]{out: out, format: format}
	retries := cfg.Retries
	top := 0

	for frame := 1; ; frame++ {
		last := top + cfg.Viewport - 1
		fmt.Fprintf(out, "-- frame %d: slots %d-%d --\n", frame, top, last)

		view.reset()
		ctl.Render(ctx, view, top, last)

		switch {
		case view.empty:
			return nil
		case view.loading:
			ctl.Wait()
			continue
		case view.failed:
			err := pageErr(ctl, view.err)
			if retries == 0 {
				if err != nil {
					return fmt.Errorf("%w: %w", errPageFailed, err)
				}
				return errPageFailed
			}
			retries--
			logger.Warn().Err(err).Int("retries_left", retries).Msg("Resetting list after failed page")
			ctl.Reset()
			top = 0
			continue
		}

		if top+cfg.Viewport >= ctl.RenderableCount() {
			state := ctl.State()
			logger.Info().
				Int("items", len(state.Items)).
				Int("pages", state.PageNumber).
				Int("frames", frame).
				Int64("state_changes", changes.Load()).
				Msg("Reached end of list")
			return nil
		}
		top += cfg.Viewport
	}
}

// pageErr prefers the fetch error and falls back to the error carried by the
// failed page.
func pageErr[T any](ctl *pagedlist.Controller[*source.Page[T], T], fetchErr error) error {
	if fetchErr != nil {
		return fetchErr
	}
	state := ctl.State()
	if state.HasLastPage && state.LastPage != nil {
		return state.LastPage.Err
	}
	return nil
}
