package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacedash/internal/config"
)

func TestParseSkuData(t *testing.T) {
	cols := config.RawColumns
	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	rows := [][]string{
		{"note"},
		{"headers"},
		// Active March rows.
		rawRow(map[int]string{
			cols.Date: "2026-03-02", cols.Month: "MARCH", cols.DailyGmv: "100",
			cols.SkuStart: "3", cols.SkuStart + 1: "1",
		}),
		rawRow(map[int]string{
			cols.Date: "2026-03-03", cols.Month: "MARCH", cols.VideosPosted: "2",
			cols.SkuStart: "2", cols.SkuStart + 1: "0",
		}),
		// Inactive March row: excluded even though it has SKU cells.
		rawRow(map[int]string{
			cols.Date: "2026-03-04", cols.Month: "MARCH",
			cols.SkuStart: "50", cols.SkuStart + 1: "50",
		}),
		// Active, but February: excluded.
		rawRow(map[int]string{
			cols.Date: "2026-02-27", cols.Month: "FEBRUARY", cols.DailyGmv: "900",
			cols.SkuStart: "7",
		}),
	}

	skus := []config.SkuConfig{
		{Name: "Gummies", ColumnOffset: 0},
		{Name: "Variety Pack", ColumnOffset: 1},
	}

	out := ParseSkuData(rows, skus, now)
	require.Len(t, out, 2)

	assert.Equal(t, "Gummies", out[0].Name)
	assert.Equal(t, 5.0, out[0].SamplesApproved)
	assert.Equal(t, out[0].SamplesApproved, out[0].SampleRequests, "both fields come from the same column")

	assert.Equal(t, "Variety Pack", out[1].Name)
	assert.Equal(t, 1.0, out[1].SamplesApproved)
}

func TestParseSkuDataNoCurrentMonthRows(t *testing.T) {
	cols := config.RawColumns
	now := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	rows := [][]string{
		{"note"}, {"headers"},
		rawRow(map[int]string{cols.Date: "2026-03-02", cols.Month: "MARCH", cols.DailyGmv: "1", cols.SkuStart: "9"}),
	}
	out := ParseSkuData(rows, []config.SkuConfig{{Name: "Glow", ColumnOffset: 0}}, now)
	require.Len(t, out, 1)
	assert.Zero(t, out[0].SamplesApproved)
	assert.Zero(t, out[0].SampleRequests)
}
