package pacing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pacedash/internal/core"
)

func week(label, date string) core.WeeklyRollup {
	return core.WeeklyRollup{WeekLabel: label, Date: date}
}

func TestBuildWeekLabels(t *testing.T) {
	tests := []struct {
		name  string
		weeks []core.WeeklyRollup
		want  []string
	}{
		{
			name:  "empty",
			weeks: nil,
			want:  nil,
		},
		{
			name:  "single week spans six days back",
			weeks: []core.WeeklyRollup{week("Week 1", "2026-01-10")},
			want:  []string{"Jan 4-10"},
		},
		{
			name: "consecutive weeks chain off the previous end",
			weeks: []core.WeeklyRollup{
				week("Week 1", "2026-01-10"),
				week("Week 2", "2026-01-17"),
				week("Week 3", "2026-01-24"),
			},
			want: []string{"Jan 4-10", "Jan 11-17", "Jan 18-24"},
		},
		{
			name: "month boundary renders both months",
			weeks: []core.WeeklyRollup{
				week("Week 4", "2026-01-28"),
				week("Week 5", "2026-02-03"),
			},
			want: []string{"Jan 22-28", "Jan 29 - Feb 3"},
		},
		{
			name: "unparsable date falls back to sheet label",
			weeks: []core.WeeklyRollup{
				week("Week 1", "not a date"),
				week("Week 2", "2026-01-17"),
			},
			want: []string{"Week 1", "Jan 11-17"},
		},
		{
			name:  "no label and no date falls back to position",
			weeks: []core.WeeklyRollup{week("", "")},
			want:  []string{"W1"},
		},
		{
			name:  "us format dates parse",
			weeks: []core.WeeklyRollup{week("Week 2", "1/17/2026")},
			want:  []string{"Jan 11-17"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildWeekLabels(tt.weeks))
		})
	}
}

func TestBuildWeekLabelsResetsAfterGap(t *testing.T) {
	weeks := []core.WeeklyRollup{
		week("Week 1", "garbage"),
		week("Week 2", "2026-01-17"),
	}
	got := BuildWeekLabels(weeks)
	assert.Equal(t, "Jan 11-17", got[1], "a week after an unparsable one starts six days before its end")
}

func TestFilterWeeklyByPeriod(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	weeks := []core.WeeklyRollup{
		week("Week 1", "2025-12-06"),
		week("Week 2", "2026-01-10"),
		week("Week 6", "2026-02-14"),
		week("Week 10", "2026-03-14"),
		week("Week 11", "bad date"),
	}

	tests := []struct {
		period TimePeriod
		want   []string
	}{
		{PeriodCurrentMonth, []string{"Week 10"}},
		{PeriodLastMonth, []string{"Week 6"}},
		{PeriodLast90Days, []string{"Week 2", "Week 6", "Week 10"}},
		{PeriodYearToDate, []string{"Week 2", "Week 6", "Week 10"}},
		{TimePeriod("everything"), []string{"Week 1", "Week 2", "Week 6", "Week 10"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			got := FilterWeeklyByPeriod(weeks, tt.period, now)
			var labels []string
			for _, w := range got {
				labels = append(labels, w.WeekLabel)
			}
			assert.Equal(t, tt.want, labels)
		})
	}
}

func TestParseSheetDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2026-01-10", "2026-01-10", true},
		{"2026-01-10T15:04:05Z", "2026-01-10", true},
		{"1/10/2026", "2026-01-10", true},
		{" 2026-01-10 ", "2026-01-10", true},
		{"January 10, 2026", "2026-01-10", true},
		{"", "", false},
		{"Week 3", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSheetDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got.Format("2006-01-02"))
			}
		})
	}
}

func TestMonthIndex(t *testing.T) {
	assert.Equal(t, 1, MonthIndex("JANUARY"))
	assert.Equal(t, 3, MonthIndex("March"))
	assert.Equal(t, 3, MonthIndex("Mar"))
	assert.Equal(t, 12, MonthIndex("dec"))
	assert.Equal(t, 0, MonthIndex("not a month"))
	assert.Equal(t, 0, MonthIndex(""))
}
