package merger

import (
	"slices"
	"strings"

	"example.com/stipends/models"
)

// Sort orders transactions by name, then date, both compared as raw text.
// The sort is stable and empty values go last. Dates are not parsed, so
// only formats like 2024-01-31 sort chronologically.
func Sort(transactions []models.Transaction) {
	slices.SortStableFunc(transactions, func(a, b models.Transaction) int {
		if c := compareEmptyLast(a.Name, b.Name); c != 0 {
			return c
		}
		return compareEmptyLast(a.Date, b.Date)
	})
}

func compareEmptyLast(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}
	return strings.Compare(a, b)
}
