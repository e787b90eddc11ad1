package source

// Page is the result of fetching one page from a Source.
//
// Failures are carried in Err instead of being returned, so the controller
// classifies them through IsError and renders them as an error slot.
//
// Type parameter T is the item type.
type Page[T any] struct {
	// Number is the page number that was requested.
	Number int

	// Items contains the items of this page.
	Items []T

	// TotalCount is the total number of items available when the page was fetched.
	TotalCount int

	// Err is set when counting or fetching failed.
	Err error

	// Metadata provides observability information about the fetch.
	Metadata Metadata
}

// Metadata provides observability and debugging information about a page fetch.
type Metadata struct {
	// QueryTimeMs is the total time spent in Count and Fetch.
	QueryTimeMs int64

	// Offset is the number of items skipped to reach this page.
	Offset int

	// Limit is the page size used for this page.
	Limit int
}

// IsError reports whether the page failed. A nil page counts as failed.
func IsError[T any](p *Page[T]) bool {
	return p == nil || p.Err != nil
}

// TotalCount returns the total count reported with the page.
func TotalCount[T any](p *Page[T]) int {
	if p == nil {
		return 0
	}
	return p.TotalCount
}

// Items returns the items of the page.
func Items[T any](p *Page[T]) []T {
	if p == nil {
		return nil
	}
	return p.Items
}
