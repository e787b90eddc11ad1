// Package models contains the SQLBoiler model backing the postgres list
// source. It follows the layout sqlboiler generates for a single table.
package models

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/boil"
	"github.com/aarondl/sqlboiler/v4/drivers"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/friendsofgo/errors"
)

// Item is an object representing the database table.
type Item struct {
	ID        string      `boil:"id" json:"id"`
	Title     string      `boil:"title" json:"title"`
	Subtitle  null.String `boil:"subtitle" json:"subtitle,omitempty"`
	Position  int         `boil:"position" json:"position"`
	CreatedAt time.Time   `boil:"created_at" json:"created_at"`
}

// ItemColumns holds the column names of the items table.
var ItemColumns = struct {
	ID        string
	Title     string
	Subtitle  string
	Position  string
	CreatedAt string
}{
	ID:        "id",
	Title:     "title",
	Subtitle:  "subtitle",
	Position:  "position",
	CreatedAt: "created_at",
}

// TableNames holds the table names in this package.
var TableNames = struct {
	Items string
}{
	Items: "items",
}

var dialect = drivers.Dialect{
	LQ: 0x22,
	RQ: 0x22,

	UseIndexPlaceholders: true,
	UseDefaultKeyword:    true,
}

// NewQuery initializes a new Query using the passed in QueryMods.
func NewQuery(mods ...qm.QueryMod) *queries.Query {
	q := &queries.Query{}
	queries.SetDialect(q, &dialect)
	qm.Apply(q, mods...)

	return q
}

type itemQuery struct {
	*queries.Query
}

// Items retrieves all the records using an executor.
func Items(mods ...qm.QueryMod) itemQuery {
	mods = append(mods, qm.From("\"items\""))
	q := NewQuery(mods...)
	if len(queries.GetSelect(q)) == 0 {
		queries.SetSelect(q, []string{"\"items\".*"})
	}

	return itemQuery{q}
}

// All returns all Item records from the query.
func (q itemQuery) All(ctx context.Context, exec boil.ContextExecutor) ([]*Item, error) {
	var o []*Item

	err := q.Bind(ctx, exec, &o)
	if err != nil {
		return nil, errors.Wrap(err, "models: failed to assign all query results to Item slice")
	}

	return o, nil
}

// Count returns the count of all Item records in the query.
func (q itemQuery) Count(ctx context.Context, exec boil.ContextExecutor) (int64, error) {
	var count int64

	queries.SetSelect(q.Query, nil)
	queries.SetCount(q.Query)

	err := q.Query.QueryRowContext(ctx, exec).Scan(&count)
	if err != nil {
		return 0, errors.Wrap(err, "models: failed to count items rows")
	}

	return count, nil
}
