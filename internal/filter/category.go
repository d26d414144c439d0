package filter

import "strings"

type categoryMode int

const (
	categoryAny categoryMode = iota
	categoryNone
	categoryNamed
)

// CategoryFilter selects bills by category. The zero value matches any category.
type CategoryFilter struct {
	mode categoryMode
	name string
}

// AnyCategory does not constrain the category
func AnyCategory() CategoryFilter {
	return CategoryFilter{mode: categoryAny}
}

// Uncategorized matches bills whose category is null or empty
func Uncategorized() CategoryFilter {
	return CategoryFilter{mode: categoryNone}
}

// CategoryNamed matches bills in the named category, ignoring case
func CategoryNamed(name string) CategoryFilter {
	return CategoryFilter{mode: categoryNamed, name: name}
}

// IsAny reports whether the filter leaves the category unconstrained
func (f CategoryFilter) IsAny() bool {
	return f.mode == categoryAny || (f.mode == categoryNamed && strings.TrimSpace(f.name) == "")
}

// IsUncategorized reports whether the filter selects bills without category
func (f CategoryFilter) IsUncategorized() bool {
	return f.mode == categoryNone
}

// Name returns the category name for a named filter
func (f CategoryFilter) Name() (string, bool) {
	if f.mode != categoryNamed {
		return "", false
	}
	return f.name, true
}

func (f CategoryFilter) String() string {
	switch {
	case f.IsUncategorized():
		return "<uncategorized>"
	case f.IsAny():
		return "<any>"
	default:
		return f.name
	}
}
