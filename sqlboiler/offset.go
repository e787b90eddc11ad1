package sqlboiler

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/aarondl/sqlboiler/v4/queries/qm"
	"github.com/nrfta/pagedlist/source"
)

// OffsetToQueryMods converts FetchParams into SQLBoiler query mods for
// page-numbered lists.
//
// The conversion follows these rules:
//   - Filters → qm.Where("col = ?", v), one per column, sorted by column name
//   - Offset → qm.Offset(n), skipped when 0
//   - Limit → qm.Limit(n), skipped when 0
//   - OrderBy → qm.OrderBy("col1 DESC, col2")
func OffsetToQueryMods(params source.FetchParams) []qm.QueryMod {
	mods := FilterQueryMods(params.Filters)

	if params.Offset > 0 {
		mods = append(mods, qm.Offset(params.Offset))
	}

	if params.Limit > 0 {
		mods = append(mods, qm.Limit(params.Limit))
	}

	if len(params.OrderBy) > 0 {
		mods = append(mods, qm.OrderBy(buildOrderByClause(params.OrderBy)))
	}

	return mods
}

// ErrInvalidColumn is returned when a filter or order column is not a plain
// SQL identifier.
var ErrInvalidColumn = errors.New("invalid column name")

// columnPattern matches plain and table-qualified identifiers.
var columnPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// ValidateColumns checks that every filter and order column in params is a
// plain identifier. Column names are written into the SQL text unquoted.
func ValidateColumns(params source.FetchParams) error {
	for column := range params.Filters {
		if !columnPattern.MatchString(column) {
			return fmt.Errorf("filter %q: %w", column, ErrInvalidColumn)
		}
	}
	for _, o := range params.OrderBy {
		if !columnPattern.MatchString(o.Column) {
			return fmt.Errorf("order by %q: %w", o.Column, ErrInvalidColumn)
		}
	}
	return nil
}

// FilterQueryMods converts equality filters into WHERE mods. Columns are
// sorted so the generated SQL is stable. Column names are not escaped; the
// Fetcher rejects anything ValidateColumns does not accept.
func FilterQueryMods(filters map[string]any) []qm.QueryMod {
	mods := []qm.QueryMod{}

	columns := make([]string, 0, len(filters))
	for column := range filters {
		columns = append(columns, column)
	}
	slices.Sort(columns)

	for _, column := range columns {
		mods = append(mods, qm.Where(column+" = ?", filters[column]))
	}

	return mods
}

// buildOrderByClause constructs an ORDER BY clause from OrderBy directives.
// Assumes len(orderBy) > 0 (caller must verify).
//
// Example:
//
//	[]OrderBy{
//	    {Column: "created_at", Desc: true},
//	    {Column: "id", Desc: false},
//	}
//	→ "created_at DESC, id"
func buildOrderByClause(orderBy []source.OrderBy) string {
	parts := make([]string, len(orderBy))
	for i, o := range orderBy {
		if o.Desc {
			parts[i] = o.Column + " DESC"
		} else {
			parts[i] = o.Column
		}
	}
	return strings.Join(parts, ", ")
}
