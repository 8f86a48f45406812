package table

import (
	"sort"
	"time"

	"github.com/salestrace/salestrace/internal/filter"
	"github.com/salestrace/salestrace/internal/transaction"
)

// SortField represents a column that can be sorted on.
type SortField string

const (
	SortByDate   SortField = "date"
	SortByAmount SortField = "amount"
)

// SortDirection represents sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOptions holds sorting preferences.
type SortOptions struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSortOptions returns the default sort (date descending, newest
// first).
func DefaultSortOptions() *SortOptions {
	return &SortOptions{
		Field:     SortByDate,
		Direction: SortDesc,
	}
}

// String returns the sort options as a string (e.g., "date:desc").
func (s *SortOptions) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}

// DefaultPageSize matches the dashboard table.
const DefaultPageSize = 10

// Page is one rendered window of the filtered, sorted row set.
type Page struct {
	Rows       []transaction.Formatted
	PageIndex  int
	PageCount  int
	TotalRows  int
	HasPrev    bool
	HasNext    bool
	PageSize   int
	FirstIndex int // 1-based index of the first row on the page, 0 when empty
	LastIndex  int
}

// View filters, sorts and paginates the formatted transaction list. An
// out-of-range page index is clamped rather than rejected.
func View(rows []transaction.Formatted, filters filter.Filters, sortOpts *SortOptions, pageIndex, pageSize int) Page {
	return ViewAt(rows, filters, sortOpts, pageIndex, pageSize, time.Now())
}

// ViewAt is View with an explicit clock for the date predicate.
func ViewAt(
	rows []transaction.Formatted,
	filters filter.Filters,
	sortOpts *SortOptions,
	pageIndex, pageSize int,
	now time.Time,
) Page {
	if sortOpts == nil {
		sortOpts = DefaultSortOptions()
	}

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := make([]transaction.Formatted, 0, len(rows))
	for _, row := range rows {
		if filters.MatchAt(row, now) {
			filtered = append(filtered, row)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a := sortKey(filtered[i], sortOpts.Field)
		b := sortKey(filtered[j], sortOpts.Field)

		if sortOpts.Direction == SortDesc {
			return a > b
		}
		return a < b
	})

	pageCount := (len(filtered) + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}

	if pageIndex < 0 {
		pageIndex = 0
	}
	if pageIndex >= pageCount {
		pageIndex = pageCount - 1
	}

	start := pageIndex * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	page := Page{
		Rows:      filtered[start:end],
		PageIndex: pageIndex,
		PageCount: pageCount,
		TotalRows: len(filtered),
		HasPrev:   pageIndex > 0,
		HasNext:   pageIndex < pageCount-1,
		PageSize:  pageSize,
		LastIndex: end,
	}

	if len(page.Rows) > 0 {
		page.FirstIndex = start + 1
	}

	return page
}

func sortKey(row transaction.Formatted, field SortField) int64 {
	switch field {
	case SortByAmount:
		return row.Amount
	default:
		return row.CreatedAt
	}
}
