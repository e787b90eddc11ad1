package pagedlist

// State is a snapshot of a Controller.
//
// Type parameter P is the page type and T is the item type.
type State[P any, T any] struct {
	// Items holds every item loaded so far, in display order.
	Items []T

	// PageNumber is the number of the last page requested.
	PageNumber int

	// TotalCount is the best-known total item count. It is
	// UnknownTotalCount until the first page arrives and 0 when the list is
	// known to be empty.
	TotalCount int

	// Loading is true while a fetch is in flight.
	Loading bool

	// HasError is true when the last completed fetch failed.
	HasError bool

	// LastPage is the page the last completed fetch returned. Only valid
	// when HasLastPage is true. A fetch that failed with an error returned no
	// page and clears it.
	LastPage    P
	HasLastPage bool

	// Err is the error returned by FetchPage for the last failed fetch, if it
	// returned one. Pages classified by IsError leave it nil.
	Err error
}

func (s *State[P, T]) setLastPage(page P) {
	s.LastPage = page
	s.HasLastPage = true
}

func (s *State[P, T]) clearLastPage() {
	var zero P
	s.LastPage = zero
	s.HasLastPage = false
}

func (s *State[P, T]) renderableCount() int {
	if len(s.Items) >= s.TotalCount {
		return len(s.Items)
	}
	return len(s.Items) + 1
}

func (s State[P, T]) clone() State[P, T] {
	if s.Items != nil {
		items := make([]T, len(s.Items))
		copy(items, s.Items)
		s.Items = items
	}
	return s
}
