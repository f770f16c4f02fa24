// Package pacing computes month-to-date scorecards and the time tooling
// around weekly series: range labels and calendar-period filters.
package pacing

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var usDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// Extra layouts occasionally seen in hand-edited sheets.
var fallbackLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
	"2 January 2006",
}

// ParseSheetDate parses the date strings Google Sheets hands back. ISO
// (2026-01-10) and US (1/10/2026) forms dominate; a few other layouts are
// tried before giving up.
func ParseSheetDate(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Time{}, false
	}

	if len(trimmed) >= 10 {
		if t, err := time.Parse("2006-01-02", trimmed[:10]); err == nil {
			return t, true
		}
	}

	if m := usDatePattern.FindStringSubmatch(trimmed); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthIndex resolves a month label ("FEBRUARY", "feb", "Feb 2026") to
// 1-12, or 0 when it names no month. Full names are checked before the
// three-letter forms so "March" does not stop at "Mar".
func MonthIndex(label string) int {
	lower := strings.ToLower(strings.TrimSpace(label))
	if lower == "" {
		return 0
	}
	for m := time.January; m <= time.December; m++ {
		long := strings.ToLower(m.String())
		if strings.Contains(lower, long) || strings.Contains(long, lower) {
			return int(m)
		}
	}
	for m := time.January; m <= time.December; m++ {
		if strings.Contains(lower, strings.ToLower(m.String())[:3]) {
			return int(m)
		}
	}
	return 0
}
