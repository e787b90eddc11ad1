// Package sqlboiler provides adapters for feeding SQLBoiler queries into a
// pagedlist.Controller.
//
// The Fetcher is generic over SQLBoiler-generated models. The query mods it
// applies come from a strategy function such as OffsetToQueryMods, which keeps
// the ORM integration separate from the way pages are addressed.
//
// Example usage:
//
//	fetcher := sqlboiler.NewFetcher(
//	    func(ctx context.Context, mods ...qm.QueryMod) ([]*models.Item, error) {
//	        return models.Items(mods...).All(ctx, db)
//	    },
//	    func(ctx context.Context, mods ...qm.QueryMod) (int64, error) {
//	        return models.Items(mods...).Count(ctx, db)
//	    },
//	    sqlboiler.OffsetToQueryMods,
//	)
//
//	src := source.New(fetcher, source.WithPageSize(20))
//	ctl, err := source.NewController(src)
package sqlboiler

import (
	"context"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/nrfta/pagedlist/source"
)

// QueryFunc executes a SQLBoiler query and returns results.
//
// Type parameter T is the SQLBoiler model type (e.g., *models.Item).
type QueryFunc[T any] func(ctx context.Context, mods ...qm.QueryMod) ([]T, error)

// CountFunc executes a SQLBoiler count query.
type CountFunc func(ctx context.Context, mods ...qm.QueryMod) (int64, error)

// Fetcher implements source.Fetcher[T] for SQLBoiler queries.
type Fetcher[T any] struct {
	queryFunc   QueryFunc[T]
	countFunc   CountFunc
	queryModsFn func(source.FetchParams) []qm.QueryMod
}

// NewFetcher creates a new SQLBoiler fetcher with a strategy-specific query builder.
//
// Parameters:
//   - queryFunc: Function that executes SQLBoiler queries with query mods
//   - countFunc: Function that counts total records with query mods
//   - queryModsFn: Function that converts FetchParams to QueryMods
func NewFetcher[T any](
	queryFunc QueryFunc[T],
	countFunc CountFunc,
	queryModsFn func(source.FetchParams) []qm.QueryMod,
) source.Fetcher[T] {
	return &Fetcher[T]{
		queryFunc:   queryFunc,
		countFunc:   countFunc,
		queryModsFn: queryModsFn,
	}
}

// Fetch retrieves items from the database using SQLBoiler query mods.
func (f *Fetcher[T]) Fetch(ctx context.Context, params source.FetchParams) ([]T, error) {
	if err := ValidateColumns(params); err != nil {
		return nil, err
	}

	mods := f.queryModsFn(params)
	return f.queryFunc(ctx, mods...)
}

// Count returns the total number of items matching the filters.
// Offset, limit and ordering are not applied.
func (f *Fetcher[T]) Count(ctx context.Context, params source.FetchParams) (int64, error) {
	if err := ValidateColumns(params); err != nil {
		return 0, err
	}

	return f.countFunc(ctx, FilterQueryMods(params.Filters)...)
}
