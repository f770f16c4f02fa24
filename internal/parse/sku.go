package parse

import (
	"strings"
	"time"

	"pacedash/internal/config"
	"pacedash/internal/core"
)

// ParseSkuData sums per-SKU sample columns over the current calendar
// month's rows that show activity (GMV, videos or approved samples).
//
// The sheet currently exposes one sample column per SKU, so both output
// fields carry the same sum until a dedicated requests column lands.
func ParseSkuData(rows [][]string, skus []config.SkuConfig, now time.Time) []core.SkuData {
	cols := config.RawColumns

	var dataRows [][]string
	for i := rawHeaderRows; i < len(rows); i++ {
		row := rows[i]
		if strings.TrimSpace(cell(row, cols.Date)) == "" {
			continue
		}
		if !IsCurrentMonth(cell(row, cols.Month), now) {
			continue
		}
		if Num(cell(row, cols.DailyGmv)) > 0 ||
			Num(cell(row, cols.VideosPosted)) > 0 ||
			Num(cell(row, cols.TotalSamplesApproved)) > 0 {
			dataRows = append(dataRows, row)
		}
	}

	out := make([]core.SkuData, 0, len(skus))
	for _, sku := range skus {
		colIdx := cols.SkuStart + sku.ColumnOffset
		var total float64
		for _, row := range dataRows {
			total += Num(cell(row, colIdx))
		}
		out = append(out, core.SkuData{
			Name:            sku.Name,
			SampleRequests:  total,
			SamplesApproved: total,
		})
	}
	return out
}
