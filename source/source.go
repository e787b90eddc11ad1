package source

import (
	"context"
	"fmt"
	"maps"
	"time"

	"github.com/nrfta/pagedlist"
)

// Source turns a Fetcher into a page-numbered data source for a
// pagedlist.Controller.
//
// Type parameter T is the item type.
type Source[T any] struct {
	fetcher  Fetcher[T]
	pageSize int
	orderBy  []OrderBy
	filters  map[string]any
}

// Option configures a Source.
type Option func(*config)

// config holds source configuration.
type config struct {
	pageSize   int
	pageConfig *PageConfig
	orderBy    []OrderBy
	filters    map[string]any
}

// WithPageSize sets the number of items per page.
// Default: 50, capped by the PageConfig maximum.
func WithPageSize(n int) Option {
	return func(c *config) {
		c.pageSize = n
	}
}

// WithPageConfig sets the defaults and cap applied to the page size.
func WithPageConfig(pc *PageConfig) Option {
	return func(c *config) {
		c.pageConfig = pc
	}
}

// WithOrderBy sets the sort order passed to the Fetcher.
func WithOrderBy(orderBy ...OrderBy) Option {
	return func(c *config) {
		c.orderBy = orderBy
	}
}

// WithFilters sets equality filters passed to the Fetcher. Keys are column
// names and must come from trusted code, never from user input.
func WithFilters(filters map[string]any) Option {
	return func(c *config) {
		c.filters = maps.Clone(filters)
	}
}

// New creates a Source over fetcher.
func New[T any](fetcher Fetcher[T], opts ...Option) *Source[T] {
	cfg := &config{
		pageConfig: NewPageConfig(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return &Source[T]{
		fetcher:  fetcher,
		pageSize: cfg.pageConfig.EffectiveSize(cfg.pageSize),
		orderBy:  cfg.orderBy,
		filters:  cfg.filters,
	}
}

// PageSize returns the effective page size.
func (s *Source[T]) PageSize() int {
	return s.pageSize
}

// FetchPage counts the matching items and fetches page pageNumber (1-based).
// It never returns an error: failures are reported through Page.Err.
//
// The signature matches pagedlist.FetchFunc.
func (s *Source[T]) FetchPage(ctx context.Context, pageNumber int) (*Page[T], error) {
	startTime := time.Now()

	params := FetchParams{
		Limit:   s.pageSize,
		Offset:  Offset(pageNumber, s.pageSize),
		Filters: s.filters,
		OrderBy: s.orderBy,
	}

	page := &Page[T]{
		Number: pageNumber,
		Metadata: Metadata{
			Offset: params.Offset,
			Limit:  params.Limit,
		},
	}

	total, err := s.fetcher.Count(ctx, params)
	if err != nil {
		page.Err = fmt.Errorf("count items (page %d): %w", pageNumber, err)
		page.Metadata.QueryTimeMs = time.Since(startTime).Milliseconds()
		return page, nil
	}

	items, err := s.fetcher.Fetch(ctx, params)
	if err != nil {
		page.Err = fmt.Errorf("fetch items (page %d): %w", pageNumber, err)
		page.Metadata.QueryTimeMs = time.Since(startTime).Milliseconds()
		return page, nil
	}

	page.Items = items
	page.TotalCount = int(total)
	page.Metadata.QueryTimeMs = time.Since(startTime).Milliseconds()

	return page, nil
}

// NewController creates a pagedlist.Controller fed by src.
func NewController[T any](src *Source[T], opts ...pagedlist.Option) (*pagedlist.Controller[*Page[T], T], error) {
	return pagedlist.New(pagedlist.Config[*Page[T], T]{
		FetchPage:  src.FetchPage,
		IsError:    IsError[T],
		TotalCount: TotalCount[T],
		Items:      Items[T],
	}, opts...)
}

// NewControllerFrom creates a pagedlist.Controller fed by src, seeded with a
// page that was already fetched (for example while rendering server-side).
func NewControllerFrom[T any](src *Source[T], initial *Page[T], opts ...pagedlist.Option) (*pagedlist.Controller[*Page[T], T], error) {
	if initial == nil {
		return NewController(src, opts...)
	}

	return pagedlist.New(pagedlist.Config[*Page[T], T]{
		FetchPage:         src.FetchPage,
		IsError:           IsError[T],
		TotalCount:        TotalCount[T],
		Items:             Items[T],
		InitialPage:       &initial,
		InitialPageNumber: initial.Number,
	}, opts...)
}
