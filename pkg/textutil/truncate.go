// Package textutil holds small string helpers shared by the HTTP layer.
package textutil

import "strings"

const (
	DefaultLimit    = 25
	DefaultEllipsis = "..."
)

// Truncate shortens value to limit runes and appends ellipsis.
// With completeWords the cut moves back to the last space inside the limit.
func Truncate(value string, limit int, completeWords bool, ellipsis string) string {
	if value == "" {
		return ""
	}

	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}

	if completeWords {
		limit = strings.LastIndex(string(runes[:limit]), " ")
		if limit < 0 {
			limit = 0
		} else {
			limit = len([]rune(string(runes[:limit])))
		}
	}

	return string(runes[:limit]) + ellipsis
}

// Summary applies the default limit and ellipsis.
func Summary(value string) string {
	return Truncate(value, DefaultLimit, false, DefaultEllipsis)
}
