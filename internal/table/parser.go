package table

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// parseSort parses a sort string like "date:desc" into SortOptions.
func parseSort(s string) (*SortOptions, error) {
	if s == "" {
		return nil, fmt.Errorf("sort string cannot be empty")
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid sort format, expected field:direction")
	}

	field := SortField(parts[0])
	direction := SortDirection(parts[1])

	if field != SortByDate && field != SortByAmount {
		return nil, fmt.Errorf("invalid sort field: %s (must be date or amount)", field)
	}

	if direction != SortAsc && direction != SortDesc {
		return nil, fmt.Errorf("invalid sort direction: %s (must be asc or desc)", direction)
	}

	return &SortOptions{
		Field:     field,
		Direction: direction,
	}, nil
}

// ParseViewOptions parses URL query parameters into sort options and a
// zero-based page index.
func ParseViewOptions(params url.Values) (*SortOptions, int, error) {
	sortOpts := DefaultSortOptions()
	page := 0

	if sortStr := params.Get("sort"); sortStr != "" {
		parsed, err := parseSort(sortStr)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid sort: %w", err)
		}
		sortOpts = parsed
	}

	if pageStr := params.Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 0 {
			return nil, 0, fmt.Errorf("invalid page: %s", pageStr)
		}
		page = parsed
	}

	return sortOpts, page, nil
}
