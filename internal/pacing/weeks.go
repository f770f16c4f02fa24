package pacing

import (
	"fmt"
	"time"

	"pacedash/internal/core"
)

// BuildWeekLabels renders date-range labels ("Jan 4-10", "Jan 28 - Feb 3")
// for a weekly series. Each week's end date is its Date column; the start
// is the previous week's end plus one day, or end minus six days for the
// first week (and for any week following an unparsable date). Weeks whose
// date cannot be parsed fall back to their sheet label.
func BuildWeekLabels(weeks []core.WeeklyRollup) []string {
	if len(weeks) == 0 {
		return nil
	}

	ends := make([]*time.Time, len(weeks))
	for i, w := range weeks {
		if t, ok := ParseSheetDate(w.Date); ok {
			ends[i] = &t
		}
	}

	labels := make([]string, len(weeks))
	for i, end := range ends {
		if end == nil {
			switch {
			case weeks[i].WeekLabel != "":
				labels[i] = weeks[i].WeekLabel
			case weeks[i].Date != "":
				labels[i] = weeks[i].Date
			default:
				labels[i] = fmt.Sprintf("W%d", i+1)
			}
			continue
		}

		var start time.Time
		if i > 0 && ends[i-1] != nil {
			start = ends[i-1].AddDate(0, 0, 1)
		} else {
			start = end.AddDate(0, 0, -6)
		}

		sMonth := start.Month().String()[:3]
		eMonth := end.Month().String()[:3]
		if sMonth == eMonth {
			labels[i] = fmt.Sprintf("%s %d-%d", sMonth, start.Day(), end.Day())
		} else {
			labels[i] = fmt.Sprintf("%s %d - %s %d", sMonth, start.Day(), eMonth, end.Day())
		}
	}
	return labels
}

// TimePeriod names a calendar window for filtering weekly series.
type TimePeriod string

const (
	PeriodCurrentMonth TimePeriod = "current_month"
	PeriodLastMonth    TimePeriod = "last_month"
	PeriodLast90Days   TimePeriod = "last_90_days"
	PeriodYearToDate   TimePeriod = "ytd"
)

// FilterWeeklyByPeriod restricts a weekly series to the named calendar
// window, judged by each week's ending date. Weeks with an unparsable date
// are excluded, and an unrecognized period keeps everything.
func FilterWeeklyByPeriod(weeks []core.WeeklyRollup, period TimePeriod, now time.Time) []core.WeeklyRollup {
	var out []core.WeeklyRollup
	for _, w := range weeks {
		d, ok := ParseSheetDate(w.Date)
		if !ok {
			continue
		}
		if inPeriod(d, period, now) {
			out = append(out, w)
		}
	}
	return out
}

func inPeriod(d time.Time, period TimePeriod, now time.Time) bool {
	switch period {
	case PeriodCurrentMonth:
		return d.Month() == now.Month() && d.Year() == now.Year()
	case PeriodLastMonth:
		last := now.AddDate(0, 0, -now.Day()) // last day of previous month
		return d.Month() == last.Month() && d.Year() == last.Year()
	case PeriodLast90Days:
		return !d.Before(now.AddDate(0, 0, -90))
	case PeriodYearToDate:
		return d.Year() == now.Year()
	default:
		return true
	}
}
