package control

import "github.com/mesh-intelligence/smarttable/pkg/types"

// Pagination is a page selector showing a window of page numbers around
// the current page.
type Pagination struct {
	table          types.Table
	itemsByPage    int
	displayedPages int
}

// NewPagination binds a page selector to table and shows the first page.
// Non-positive sizes fall back to DefaultItemsByPage and
// DefaultDisplayedPages.
func NewPagination(table types.Table, itemsByPage, displayedPages int) *Pagination {
	if itemsByPage <= 0 {
		itemsByPage = types.DefaultItemsByPage
	}
	if displayedPages <= 0 {
		displayedPages = types.DefaultDisplayedPages
	}
	p := &Pagination{table: table, itemsByPage: itemsByPage, displayedPages: displayedPages}
	table.Slice(0, itemsByPage)
	return p
}

// ItemsByPage returns the page size.
func (p *Pagination) ItemsByPage() int {
	return p.itemsByPage
}

// SetItemsByPage changes the page size and returns to the first page.
func (p *Pagination) SetItemsByPage(n int) {
	if n <= 0 {
		n = types.DefaultItemsByPage
	}
	p.itemsByPage = n
	p.table.Slice(0, n)
}

// SetDisplayedPages changes how many page numbers Pages returns at most.
func (p *Pagination) SetDisplayedPages(n int) {
	if n <= 0 {
		n = types.DefaultDisplayedPages
	}
	p.displayedPages = n
}

// SelectPage shows the 1-based page.
// Returns ErrInvalidPage if page is outside 1..NumberOfPages.
func (p *Pagination) SelectPage(page int) error {
	if page < 1 || page > p.NumberOfPages() {
		return ErrInvalidPage
	}
	p.table.Slice((page-1)*p.itemsByPage, p.itemsByPage)
	return nil
}

// CurrentPage returns the 1-based page the table shows.
func (p *Pagination) CurrentPage() int {
	return p.table.TableState().Pagination.CurrentPage()
}

// NumberOfPages returns the page count the last pipe derived.
func (p *Pagination) NumberOfPages() int {
	return p.table.TableState().Pagination.NumberOfPages
}

// Pages returns the page numbers to display: at most DisplayedPages
// consecutive pages, centred on the current page where possible.
func (p *Pagination) Pages() []int {
	current := p.CurrentPage()
	numPages := p.NumberOfPages()

	start := max(1, current-p.displayedPages/2)
	end := start + p.displayedPages
	if end > numPages {
		end = numPages + 1
		start = max(1, end-p.displayedPages)
	}

	pages := make([]int, 0, max(0, end-start))
	for i := start; i < end; i++ {
		pages = append(pages, i)
	}
	return pages
}

// Visible reports whether there is more than one page to choose from.
func (p *Pagination) Visible() bool {
	return len(p.Pages()) >= 2
}
