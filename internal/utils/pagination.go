// Package utils provides small, generic helper functions used across
// different layers of the application. These utilities are independent
// of domain or business logic.
package utils

import "strconv"

// AtoiDefault converts a string to an int using strconv.Atoi.
// If the string is empty or cannot be parsed as an integer,
// it returns the provided default value instead.
//
// Example:
//
//	n := utils.AtoiDefault("42", 0) // returns 42
//	n = utils.AtoiDefault("", 10)   // returns 10
//	n = utils.AtoiDefault("x", 5)   // returns 5
func AtoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

// Page clamps page and pageSize and returns them with the row offset.
// page < 1 becomes 1, pageSize <= 0 becomes def, and pageSize is capped at max
// when max > 0.
func Page(page, pageSize, def, max int) (p, size, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = def
	}
	if max > 0 && pageSize > max {
		pageSize = max
	}
	return page, pageSize, (page - 1) * pageSize
}

// PageBounds returns the [start, end) slice bounds of one page over n items.
// Both are n when the page starts past the end.
func PageBounds(n, offset, size int) (start, end int) {
	if offset >= n {
		return n, n
	}
	end = offset + size
	if end > n {
		end = n
	}
	return offset, end
}
