package parse

import (
	"regexp"
	"strings"
)

// RowType is the grain of a rollup-tab row. The same physical tab stores
// daily, weekly, monthly and annual rows side by side.
type RowType int

const (
	RowUnknown RowType = iota
	RowDaily
	RowWeekly
	RowMonthly
	RowAnnual
)

func (t RowType) String() string {
	switch t {
	case RowDaily:
		return "daily"
	case RowWeekly:
		return "weekly"
	case RowMonthly:
		return "monthly"
	case RowAnnual:
		return "annual"
	default:
		return "unknown"
	}
}

var (
	yearPattern = regexp.MustCompile(`^\d{4}$`)
	weekPattern = regexp.MustCompile(`(?i)^Week\s+\d+`)
)

var monthNames = map[string]struct{}{
	"JANUARY": {}, "FEBRUARY": {}, "MARCH": {}, "APRIL": {},
	"MAY": {}, "JUNE": {}, "JULY": {}, "AUGUST": {},
	"SEPTEMBER": {}, "OCTOBER": {}, "NOVEMBER": {}, "DECEMBER": {},
}

// ClassifyRollupRow determines a rollup row's grain from columns A and B:
//
//	daily:   A = "Week N",  B = date
//	weekly:  A = date,      B = "Week N"
//	monthly: A = date,      B = month name
//	annual:  B = 4-digit year
//
// Note the column swap: weekly and monthly rows store (date, label) in the
// opposite order from daily rows, so readers must consult the classified
// type before picking columns.
func ClassifyRollupRow(row []string) RowType {
	colA := strings.TrimSpace(cell(row, 0))
	colB := strings.TrimSpace(cell(row, 1))

	switch {
	case yearPattern.MatchString(colB):
		return RowAnnual
	case isMonthName(colB):
		return RowMonthly
	case weekPattern.MatchString(colB):
		return RowWeekly
	case weekPattern.MatchString(colA):
		return RowDaily
	default:
		return RowUnknown
	}
}

func isMonthName(s string) bool {
	_, ok := monthNames[strings.ToUpper(s)]
	return ok
}
