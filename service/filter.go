package service

import (
	"strings"

	"github.com/samridhisinghh987188/saas-contract-dashboard/model"
)

// FilterAll is the sentinel that disables a status or risk filter.
const FilterAll = "all"

// DefaultPageSize matches the dashboard table's page size.
const DefaultPageSize = 5

// Criteria describes the active contract filters.
type Criteria struct {
	Search string
	Status string
	Risk   string
}

// NewCriteria returns criteria that match every contract.
func NewCriteria() Criteria {
	return Criteria{Status: FilterAll, Risk: FilterAll}
}

// Matches reports whether a contract satisfies the criteria. The search
// term is a case-insensitive substring match against name and parties.
func Matches(c model.Contract, criteria Criteria) bool {
	if criteria.Search != "" {
		term := strings.ToLower(criteria.Search)
		if !strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Parties), term) {
			return false
		}
	}
	if criteria.Status != FilterAll && criteria.Status != "" && c.Status != criteria.Status {
		return false
	}
	if criteria.Risk != FilterAll && criteria.Risk != "" && c.Risk != criteria.Risk {
		return false
	}
	return true
}

// Page is the result of applying filters and pagination.
type Page struct {
	Contracts    []model.Contract
	TotalMatched int
	TotalPages   int
	Page         int
}

// Apply filters contracts by criteria and slices out the requested page.
// Store order is preserved; filtering is not a sort. Out-of-range pages
// are clamped rather than rejected.
func Apply(contracts []model.Contract, criteria Criteria, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	matched := make([]model.Contract, 0, len(contracts))
	for _, c := range contracts {
		if Matches(c, criteria) {
			matched = append(matched, c)
		}
	}

	totalPages := (len(matched) + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	return Page{
		Contracts:    matched[start:end],
		TotalMatched: len(matched),
		TotalPages:   totalPages,
		Page:         page,
	}
}

// FilterState owns the current criteria and page for a contracts view.
// Any criteria change resets pagination to page one.
type FilterState struct {
	criteria Criteria
	page     int
	pageSize int
}

// NewFilterState creates a state with empty criteria on page one.
func NewFilterState(pageSize int) *FilterState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &FilterState{
		criteria: NewCriteria(),
		page:     1,
		pageSize: pageSize,
	}
}

// Criteria returns the current criteria.
func (f *FilterState) Criteria() Criteria { return f.criteria }

// Page returns the current page number.
func (f *FilterState) Page() int { return f.page }

// SetSearch updates the search term and resets to page one.
func (f *FilterState) SetSearch(term string) {
	f.criteria.Search = term
	f.page = 1
}

// SetStatus updates the status filter and resets to page one.
func (f *FilterState) SetStatus(status string) {
	f.criteria.Status = status
	f.page = 1
}

// SetRisk updates the risk filter and resets to page one.
func (f *FilterState) SetRisk(risk string) {
	f.criteria.Risk = risk
	f.page = 1
}

// SetPage moves to the given page, clamped to at least one.
func (f *FilterState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	f.page = page
}

// Clear resets all criteria and returns to page one.
func (f *FilterState) Clear() {
	f.criteria = NewCriteria()
	f.page = 1
}

// Apply runs the engine over the given contracts with the current state.
func (f *FilterState) Apply(contracts []model.Contract) Page {
	return Apply(contracts, f.criteria, f.page, f.pageSize)
}
