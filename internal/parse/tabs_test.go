package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacedash/internal/config"
)

// rawRow builds a raw-tab data row with the given cells set by column index.
func rawRow(cells map[int]string) []string {
	row := make([]string, 44)
	for idx, v := range cells {
		row[idx] = v
	}
	return row
}

// rollupRow builds a rollup-tab row: columns A and B plus metric cells.
func rollupRow(colA, colB string, cells map[int]string) []string {
	row := make([]string, 36)
	row[0] = colA
	row[1] = colB
	for idx, v := range cells {
		row[idx] = v
	}
	return row
}

func TestParseRawTab(t *testing.T) {
	cols := config.RawColumns
	rows := [][]string{
		{"note: do not edit"},
		{"Date", "Month", "GMV Target"},
		rawRow(map[int]string{
			cols.Date:             "2026-03-02",
			cols.Month:            "MARCH",
			cols.GmvTargetMonth:   "$10,000",
			cols.DailyGmv:         "$100.50",
			cols.CumulativeMtdGmv: "100.5",
			cols.VideosPosted:     "3",
			cols.Roi:              "1.2",
		}),
		rawRow(map[int]string{cols.Date: "", cols.Month: "MARCH", cols.DailyGmv: "999"}),
		rawRow(map[int]string{
			cols.Date:     "2026-03-03",
			cols.Month:    "MARCH",
			cols.DailyGmv: "not a number",
			cols.AdSpend:  "$25",
		}),
	}

	daily := ParseRawTab(rows)
	require.Len(t, daily, 2, "empty-date row must be dropped")

	assert.Equal(t, "2026-03-02", daily[0].Date)
	assert.Equal(t, "MARCH", daily[0].Month)
	assert.Equal(t, 10000.0, daily[0].GmvTargetMonth)
	assert.Equal(t, 100.5, daily[0].DailyGmv)
	assert.Equal(t, 3.0, daily[0].VideosPosted)
	assert.Equal(t, 1.2, daily[0].Roi)

	assert.Equal(t, 0.0, daily[1].DailyGmv, "malformed cell coerces to zero")
	assert.Equal(t, 25.0, daily[1].AdSpend)
}

func TestParseRawTabEmpty(t *testing.T) {
	assert.Empty(t, ParseRawTab(nil))
	assert.Empty(t, ParseRawTab([][]string{{"note"}, {"Date", "Month"}}))
}

func TestParseRollupTabRouting(t *testing.T) {
	cols := config.RollupColumns
	rows := [][]string{
		{"Date", "Period"},
		rollupRow("2026-01-10", "Week 2", map[int]string{cols.DailyGmv: "500", cols.CumulativeMtdGmv: "900"}),
		rollupRow("2026-01-31", "JANUARY", map[int]string{cols.CumulativeMtdGmv: "4000"}),
		rollupRow("Week 2", "2026-01-06", map[int]string{cols.DailyGmv: "120"}),
		rollupRow("", "2026", map[int]string{cols.DailyGmv: "99999"}),
		rollupRow("junk", "junk", nil),
		{"short"},
	}

	data := ParseRollupTab(rows)

	require.Len(t, data.WeeklyRows, 1)
	require.Len(t, data.MonthlyRows, 1)
	require.Len(t, data.DailyRows, 1)

	// Weekly: date from A, label from B.
	assert.Equal(t, "2026-01-10", data.WeeklyRows[0].Date)
	assert.Equal(t, "Week 2", data.WeeklyRows[0].WeekLabel)
	assert.Equal(t, 500.0, data.WeeklyRows[0].DailyGmv)
	assert.Equal(t, 900.0, data.WeeklyRows[0].CumulativeMtdGmv)

	// Monthly: same column order as weekly.
	assert.Equal(t, "2026-01-31", data.MonthlyRows[0].Date)
	assert.Equal(t, "JANUARY", data.MonthlyRows[0].WeekLabel)
	assert.Equal(t, 4000.0, data.MonthlyRows[0].CumulativeMtdGmv)

	// Daily: swapped, label from A and date from B.
	assert.Equal(t, "2026-01-06", data.DailyRows[0].Date)
	assert.Equal(t, "Week 2", data.DailyRows[0].WeekLabel)
	assert.Equal(t, 120.0, data.DailyRows[0].DailyGmv)
}
