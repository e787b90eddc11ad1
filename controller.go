// Package pagedlist provides an incremental-loading controller for paginated
// lists rendered inside a scrollable view.
//
// The controller owns the accumulated items, the page cursor, the best-known
// total count and the loading/error flags. A presentation layer asks it how
// many slots exist (RenderableCount), reports each slot it is about to show
// (OnSlotRequested), and re-renders whenever a subscribed Listener fires.
//
// Example usage:
//
//	ctl, err := pagedlist.New(pagedlist.Config[*source.Page[User], User]{
//	    FetchPage:  src.FetchPage,
//	    IsError:    source.IsError[User],
//	    TotalCount: source.TotalCount[User],
//	    Items:      source.Items[User],
//	})
//	cancel := ctl.Subscribe(redraw)
//	defer cancel()
//
//	for i := 0; i < ctl.RenderableCount(); i++ {
//	    switch ctl.OnSlotRequested(ctx, i) { ... }
//	}
package pagedlist

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// UnknownTotalCount is the total count used before the first page arrives.
// It means "unknown, assume at least one item" so the first render shows a
// loading slot and triggers a fetch. A total of 0 means the list is known to
// be empty.
const UnknownTotalCount = 1

// FetchFunc fetches a single page. Page numbers start at the configured
// initial page number + 1.
//
// A returned error is handled the same way as a page classified by IsError.
type FetchFunc[P any] func(ctx context.Context, pageNumber int) (P, error)

// Config holds the callbacks that connect a Controller to its data source.
//
// Type parameter P is the page type returned by the data source and T is the
// item type extracted from each page.
type Config[P any, T any] struct {
	// FetchPage fetches one page. Required.
	FetchPage FetchFunc[P]

	// IsError classifies a fetched page as failed. Required.
	IsError func(P) bool

	// TotalCount extracts the best-known total item count. Required.
	TotalCount func(P) int

	// Items extracts the items to append. Required.
	Items func(P) []T

	// InitialPage pre-seeds the controller without an initial fetch.
	InitialPage *P

	// InitialPageNumber is the page number InitialPage corresponds to.
	// Must be 0 when InitialPage is nil.
	InitialPageNumber int
}

// Listener is notified after every state change.
type Listener func()

// Controller mediates between a page fetcher and a list renderer, keeping at
// most one fetch outstanding at a time.
type Controller[P any, T any] struct {
	cfg     Config[P, T]
	name    string
	logger  zerolog.Logger
	metrics bool

	mu         sync.Mutex
	state      State[P, T]
	generation uint64
	disposed   bool
	listeners  map[int]Listener
	nextID     int

	// inflight counts fetch goroutines not yet finished, including ones
	// discarded by Reset. idle is signalled when it drops to zero.
	inflight int
	idle     *sync.Cond
}

// New validates cfg, applies opts and initializes the controller state.
func New[P any, T any](cfg Config[P, T], opts ...Option) (*Controller[P, T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	o := defaultConfig()
	for _, opt := range opts {
		opt(o)
	}

	c := &Controller[P, T]{
		cfg:       cfg,
		name:      o.name,
		logger:    o.logger.With().Str("component", "pagedlist").Str("list", o.name).Logger(),
		metrics:   o.metrics,
		listeners: make(map[int]Listener),
	}
	c.idle = sync.NewCond(&c.mu)
	c.initialize()

	return c, nil
}

func (cfg Config[P, T]) validate() error {
	switch {
	case cfg.FetchPage == nil:
		return &ConfigError{Field: "FetchPage", Reason: "is required"}
	case cfg.IsError == nil:
		return &ConfigError{Field: "IsError", Reason: "is required"}
	case cfg.TotalCount == nil:
		return &ConfigError{Field: "TotalCount", Reason: "is required"}
	case cfg.Items == nil:
		return &ConfigError{Field: "Items", Reason: "is required"}
	case cfg.InitialPageNumber < 0:
		return &ConfigError{Field: "InitialPageNumber", Reason: "must not be negative"}
	case cfg.InitialPage == nil && cfg.InitialPageNumber != 0:
		return &ConfigError{Field: "InitialPageNumber", Reason: "must be 0 when InitialPage is not set"}
	}
	return nil
}

// initialize sets up the mount-time state, ingesting the initial page if any.
func (c *Controller[P, T]) initialize() {
	c.state = State[P, T]{
		PageNumber: c.cfg.InitialPageNumber,
		TotalCount: UnknownTotalCount,
	}

	if c.cfg.InitialPage == nil {
		return
	}

	page := *c.cfg.InitialPage
	if c.cfg.IsError(page) {
		c.state.HasError = true
		c.state.setLastPage(page)
		c.logger.Warn().Int("page", c.cfg.InitialPageNumber).Msg("Initial page classified as error")
		return
	}

	c.ingest(page)
}

// ingest appends a successful page. Caller holds mu (or is still constructing).
func (c *Controller[P, T]) ingest(page P) {
	c.state.HasError = false
	c.state.Err = nil
	c.state.Items = append(c.state.Items, c.cfg.Items(page)...)
	c.state.TotalCount = c.cfg.TotalCount(page)
	c.state.setLastPage(page)
	c.recordItems(len(c.state.Items))
}

// RenderableCount returns the number of slots to render: the loaded items
// plus one loading/error slot while more items are expected.
func (c *Controller[P, T]) RenderableCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.renderableCount()
}

// OnSlotRequested must be called by the presentation layer for every slot it
// is about to display, in ascending index order. Requesting the first unloaded
// slot starts the next fetch unless an error is pending or a fetch is already
// in flight. It returns what the slot should show; indexes outside the
// renderable range, and every index of a list known to be empty, return
// SlotNone without fetching.
func (c *Controller[P, T]) OnSlotRequested(ctx context.Context, index int) SlotKind {
	if index < 0 {
		return SlotNone
	}

	c.mu.Lock()
	loaded := len(c.state.Items)
	renderable := c.state.renderableCount()
	empty := c.state.TotalCount == 0
	hasError := c.state.HasError
	c.mu.Unlock()

	switch {
	case empty || index >= renderable:
		return SlotNone
	case index < loaded:
		return SlotItem
	case hasError:
		return SlotError
	}

	c.RequestNextPage(ctx)
	return SlotLoading
}

// RequestNextPage starts fetching the next page. It returns false without
// doing anything when a fetch is already in flight or the controller has been
// disposed. The fetch runs on its own goroutine; use Wait or Subscribe to
// observe its completion.
func (c *Controller[P, T]) RequestNextPage(ctx context.Context) bool {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return false
	}
	if c.state.Loading {
		c.mu.Unlock()
		c.recordCoalesced()
		return false
	}

	c.state.Loading = true
	c.state.PageNumber++
	pageNumber := c.state.PageNumber
	generation := c.generation
	c.inflight++
	c.mu.Unlock()

	c.logger.Debug().Int("page", pageNumber).Msg("Fetching page")

	go c.fetch(ctx, pageNumber, generation)
	return true
}

func (c *Controller[P, T]) fetch(ctx context.Context, pageNumber int, generation uint64) {
	defer c.fetchDone()

	start := time.Now()
	page, err := c.cfg.FetchPage(ctx, pageNumber)
	duration := time.Since(start)

	c.mu.Lock()
	if generation != c.generation {
		c.mu.Unlock()
		c.logger.Debug().Int("page", pageNumber).Msg("Discarding page fetched before reset")
		return
	}

	failed := err != nil || c.cfg.IsError(page)
	if failed {
		c.state.HasError = true
		c.state.Err = err
		if err == nil {
			c.state.setLastPage(page)
		} else {
			c.state.clearLastPage()
		}
	} else {
		c.ingest(page)
	}
	c.state.Loading = false

	loaded := len(c.state.Items)
	total := c.state.TotalCount
	disposed := c.disposed
	c.mu.Unlock()

	c.recordFetch(failed, duration)

	if failed {
		c.logger.Warn().
			Err(err).
			Int("page", pageNumber).
			Dur("duration", duration).
			Msg("Page fetch failed")
	} else {
		c.logger.Debug().
			Int("page", pageNumber).
			Int("loaded", loaded).
			Int("total", total).
			Dur("duration", duration).
			Msg("Page fetched")
	}

	if !disposed {
		c.notify()
	}
}

// Reset discards everything loaded so far and rewinds the cursor to the
// initial page number. The next requested slot fetches InitialPageNumber + 1
// again. A fetch still in flight is discarded when it completes.
func (c *Controller[P, T]) Reset() {
	c.mu.Lock()
	c.generation++
	c.state = State[P, T]{
		PageNumber: c.cfg.InitialPageNumber,
		TotalCount: UnknownTotalCount,
	}
	disposed := c.disposed
	c.mu.Unlock()

	c.recordReset()
	c.recordItems(0)
	c.logger.Debug().Msg("Reset")

	if !disposed {
		c.notify()
	}
}

// State returns a snapshot of the controller state.
func (c *Controller[P, T]) State() State[P, T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.clone()
}

// IsEmpty reports whether the list is known to contain no items, in which
// case the presentation layer renders its empty-state view.
func (c *Controller[P, T]) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.TotalCount == 0
}

// Subscribe registers l to be called after every state change. The returned
// function removes the listener.
func (c *Controller[P, T]) Subscribe(l Listener) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.disposed {
		return func() {}
	}

	id := c.nextID
	c.nextID++
	c.listeners[id] = l

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Controller[P, T]) notify() {
	c.mu.Lock()
	listeners := make([]Listener, 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l()
	}
}

func (c *Controller[P, T]) fetchDone() {
	c.mu.Lock()
	c.inflight--
	if c.inflight == 0 {
		c.idle.Broadcast()
	}
	c.mu.Unlock()
}

// Wait blocks until no fetch is outstanding. It may be called while other
// goroutines keep requesting pages; it returns at the first moment none is in
// flight.
func (c *Controller[P, T]) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for c.inflight > 0 {
		c.idle.Wait()
	}
}

// Dispose tears the controller down. Listeners are dropped and further
// requests are ignored. A fetch in flight still completes and updates the
// state, but nobody is notified.
func (c *Controller[P, T]) Dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.disposed = true
	c.listeners = make(map[int]Listener)
}
