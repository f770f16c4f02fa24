// Package parse turns spreadsheet grids into domain records.
//
// Input is the 2D string matrix a batch range read returns for one tab.
// Parsing never fails: malformed cells coerce to zero and malformed rows
// are dropped, so a partially authored sheet still produces a usable
// (if sparse) result.
package parse

import (
	"strconv"
	"strings"
	"time"
)

// Num converts a metric cell to a number. Currency, percent and thousands
// formatting is stripped; empty or non-numeric cells are zero.
func Num(cell string) float64 {
	cleaned := strings.TrimSpace(strings.NewReplacer("$", "", ",", "", "%", "").Replace(cell))
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// cell returns row[idx], or "" when the row is short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// IsCurrentMonth reports whether a month cell refers to now's calendar
// month. Sheet authoring is inconsistent ("Feb", "February", "FEBRUARY
// 2026"), so matching is bidirectional substring containment against the
// long and short month names, not equality.
func IsCurrentMonth(monthStr string, now time.Time) bool {
	lower := strings.ToLower(strings.TrimSpace(monthStr))
	if lower == "" {
		return false
	}
	long := strings.ToLower(now.Month().String())
	short := long[:3]
	return strings.Contains(lower, long) || strings.Contains(lower, short) || strings.Contains(long, lower)
}
