package utils

import (
	"strconv"
	"strings"
)

// PageSize is the fixed page length used by every paginated list view.
const PageSize = 10

// FilterAll is the sentinel meaning "no status filter".
const FilterAll = "all"

// SortOrder is a parsed "field-direction" sort parameter.
type SortOrder struct {
	Field     string
	Direction string // "asc" or "desc"
}

// ParseSortBy splits a query value like "startDate-desc" into field and
// direction. Missing or malformed input falls back to the given default.
func ParseSortBy(raw, defField, defDirection string) SortOrder {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SortOrder{Field: defField, Direction: defDirection}
	}

	idx := strings.LastIndex(raw, "-")
	if idx <= 0 || idx == len(raw)-1 {
		return SortOrder{Field: defField, Direction: defDirection}
	}

	field := raw[:idx]
	dir := strings.ToLower(raw[idx+1:])
	if dir != "asc" && dir != "desc" {
		dir = defDirection
	}
	return SortOrder{Field: field, Direction: dir}
}

// ParsePage parses a 1-indexed page number; anything missing or invalid is
// page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ParseStatusFilter normalizes the status filter value; empty means "all".
func ParseStatusFilter(raw string) string {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return FilterAll
	}
	return raw
}
