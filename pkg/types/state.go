package types

// TableState is the single source of truth for what a table shows. Tables
// hand it out by reference for inspection; all mutations go through the
// Table's operations.
type TableState struct {
	Sort       SortSpec       `json:"sort"`
	Filters    *Filters       `json:"filters"`
	Pagination PaginationSpec `json:"pagination"`

	// Search mirrors the "search" filter entry, or an empty entry when no
	// search has been registered. Refreshed by Table.TableState.
	Search *FilterEntry `json:"search"`
}

// NewTableState returns the initial state: no sort, no filters, pagination
// at start 0 with no page size.
func NewTableState() *TableState {
	return &TableState{
		Filters: NewFilters(),
		Search:  &FilterEntry{PredicateObject: make(map[string]any)},
	}
}
