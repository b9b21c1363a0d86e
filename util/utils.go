package util

import (
	"strings"
)

// TrimNonEmpty trims every entry and drops the ones that end up empty,
// preserving order.
func TrimNonEmpty(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// Paginate normalizes page/limit query values. Page defaults to 1,
// limit to 10, capped at 100.
func Paginate(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// TotalPages for a collection of total items split into limit-sized pages.
func TotalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return pages
}
