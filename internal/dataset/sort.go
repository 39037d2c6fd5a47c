package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// SortBy stably orders the records by the values of column.
// With numeric set, values are compared as numbers; values that do not parse sort last.
func (c *Collection) SortBy(column string, numeric bool) error {
	if c.ColumnIndex(column) < 0 {
		return fmt.Errorf("sort: unknown column %q", column)
	}

	sort.SliceStable(c.Rows, func(i, j int) bool {
		a := c.Rows[i][column]
		b := c.Rows[j][column]
		if numeric {
			return compareNumeric(a, b)
		}
		return strings.ToLower(a) < strings.ToLower(b)
	})
	return nil
}

// compareNumeric returns true if a should come before b
func compareNumeric(a, b string) bool {
	x, errA := parseNumber(a)
	y, errB := parseNumber(b)

	// If both parse, compare them
	if errA == nil && errB == nil {
		return x < y
	}

	// If only one parses, put the valid one first
	if errA == nil {
		return true
	}
	if errB == nil {
		return false
	}

	return strings.ToLower(a) < strings.ToLower(b)
}

// parseNumber accepts plain numbers as well as thousands separators ("1,234")
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	return strconv.ParseFloat(s, 64)
}
