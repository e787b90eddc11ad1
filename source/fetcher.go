// Package source connects storage layers to a pagedlist.Controller.
//
// A Fetcher abstracts the actual queries for any ORM or database layer. A
// Source turns a Fetcher into a page-numbered pagedlist.FetchFunc, mapping
// page numbers onto offset/limit windows and reporting the running total.
//
// Example usage:
//
//	fetcher := sqlboiler.NewFetcher(queryFunc, countFunc, sqlboiler.OffsetToQueryMods)
//	src := source.New(fetcher, source.WithPageSize(20))
//	ctl, err := source.NewController(src, pagedlist.WithName("users"))
package source

import "context"

// Fetcher abstracts database queries for any ORM or database layer.
//
// Type parameter T is the item type (e.g., *models.Item from SQLBoiler).
type Fetcher[T any] interface {
	// Fetch retrieves items from storage based on the given parameters.
	// It should apply limit, offset, ordering, and any filters.
	Fetch(ctx context.Context, params FetchParams) ([]T, error)

	// Count returns the total number of items matching the filters (without pagination).
	Count(ctx context.Context, params FetchParams) (int64, error)
}

// FetchParams contains all parameters needed to fetch a page of data.
type FetchParams struct {
	// Limit is the maximum number of items to fetch.
	Limit int

	// Offset is the number of items to skip.
	Offset int

	// Filters contains equality filter criteria keyed by column name.
	// They are passed through to the Fetcher implementation.
	Filters map[string]any

	// OrderBy specifies the sort order for results.
	OrderBy []OrderBy
}

// OrderBy represents a sort directive for query results.
type OrderBy struct {
	// Column is the name of the column to sort by.
	Column string

	// Desc indicates descending order. False means ascending.
	Desc bool
}
