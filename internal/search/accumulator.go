package search

import "github.com/danialhaz/gigmate/internal/types"

// Accumulator merges candidate pages into the ordered result list for one
// filter set. It is owned exclusively by the active session; pages either
// replace the list (new search) or append to it (infinite scroll).
type Accumulator struct {
	filters     types.SearchFilters
	filterKey   string
	entries     []types.CandidateResult
	total       int
	currentPage int
	totalPages  int
}

// Replace resets the accumulator to the first page of a fresh search.
func (a *Accumulator) Replace(filters types.SearchFilters, page *types.CandidatePage) {
	a.filters = filters
	a.filterKey = filters.Key()
	a.entries = append([]types.CandidateResult(nil), page.Results...)
	a.total = page.Total
	a.currentPage = page.Page
	a.totalPages = page.TotalPages
}

// Append merges a load-more page. It is accepted only when the page number is
// exactly currentPage+1 and the filters are unchanged; anything else is a no-op
// so a slow earlier response arriving late cannot duplicate or reorder entries.
// Server order is preserved as-is.
func (a *Accumulator) Append(filters types.SearchFilters, page *types.CandidatePage) bool {
	if a.filterKey == "" || filters.Key() != a.filterKey {
		return false
	}
	if page.Page != a.currentPage+1 {
		return false
	}
	a.entries = append(a.entries, page.Results...)
	a.currentPage = page.Page
	a.total = page.Total
	if page.TotalPages > 0 {
		a.totalPages = page.TotalPages
	}
	return true
}

// Clear empties the accumulator.
func (a *Accumulator) Clear() {
	*a = Accumulator{}
}

// Results returns the accumulated entries in server order.
func (a *Accumulator) Results() []types.CandidateResult { return a.entries }

// Filters returns the filter set that produced the accumulated entries.
func (a *Accumulator) Filters() types.SearchFilters { return a.filters }

// Total returns the server-reported total result count.
func (a *Accumulator) Total() int { return a.total }

// CurrentPage returns the last page merged, 0 when empty.
func (a *Accumulator) CurrentPage() int { return a.currentPage }

// TotalPages returns the number of pages for the current filter set.
func (a *Accumulator) TotalPages() int { return a.totalPages }

// HasMore reports whether another page can be requested.
func (a *Accumulator) HasMore() bool {
	return a.currentPage > 0 && a.currentPage < a.totalPages
}
