package filter

import (
	"fmt"
	"strings"
)

// SortField is a field bills can be ordered by
type SortField string

const (
	SortByExecutionDate SortField = "execution_date"
	SortByTotalAmount   SortField = "total_amount"
	SortByName          SortField = "name"
	SortByCreatedAt     SortField = "created_at"
)

// SortDirection is the ordering direction
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOptions holds sorting preferences
type SortOptions struct {
	Field     SortField
	Direction SortDirection
}

// DefaultSortOptions orders by execution date, newest first
func DefaultSortOptions() SortOptions {
	return SortOptions{Field: SortByExecutionDate, Direction: SortDesc}
}

// ParseSortOptions parses "field" or "field:direction". An empty string
// yields the default sort; a missing direction means ascending.
func ParseSortOptions(raw string) (SortOptions, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSortOptions(), nil
	}

	fieldPart, dirPart, hasDir := strings.Cut(raw, ":")
	opts := SortOptions{
		Field:     SortField(strings.ToLower(strings.TrimSpace(fieldPart))),
		Direction: SortAsc,
	}
	if hasDir {
		opts.Direction = SortDirection(strings.ToLower(strings.TrimSpace(dirPart)))
	}

	switch opts.Field {
	case SortByExecutionDate, SortByTotalAmount, SortByName, SortByCreatedAt:
	default:
		return SortOptions{}, fmt.Errorf("unsupported sort field %q", fieldPart)
	}
	switch opts.Direction {
	case SortAsc, SortDesc:
	default:
		return SortOptions{}, fmt.Errorf("unsupported sort direction %q", dirPart)
	}

	return opts, nil
}

// String returns the sort options as "field:direction"
func (s SortOptions) String() string {
	return string(s.Field) + ":" + string(s.Direction)
}
