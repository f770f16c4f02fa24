package parse

import (
	"strings"

	"pacedash/internal/config"
	"pacedash/internal/core"
)

// The raw tab carries a note row and a header row before data; the rollup
// tab has a single header row.
const (
	rawHeaderRows    = 2
	rollupHeaderRows = 1
)

// ParseRawTab converts a raw daily tab into the ordered per-day series.
// Rows with an empty date cell are gaps in the sheet and are dropped.
func ParseRawTab(rows [][]string) []core.DailyMetric {
	cols := config.RawColumns

	var out []core.DailyMetric
	for i := rawHeaderRows; i < len(rows); i++ {
		row := rows[i]
		if strings.TrimSpace(cell(row, cols.Date)) == "" {
			continue
		}
		out = append(out, core.DailyMetric{
			Date:           cell(row, cols.Date),
			Month:          cell(row, cols.Month),
			GmvTargetMonth: Num(cell(row, cols.GmvTargetMonth)),
			MetricSet:      parseRawMetrics(row),
		})
	}
	return out
}

// RollupData is the classified output of a rollup tab. Annual rows are
// discarded; daily rows are kept only so weekly summaries can be derived
// when the tab carries no weekly rows of its own.
type RollupData struct {
	WeeklyRows  []core.WeeklyRollup
	MonthlyRows []core.WeeklyRollup
	DailyRows   []core.WeeklyRollup
}

// ParseRollupTab classifies each data row and routes it by grain.
// Weekly and monthly rows read the date from column A and the label
// ("Week N" or a month name) from column B; daily rows are swapped.
// Short or unclassifiable rows are skipped without error.
func ParseRollupTab(rows [][]string) RollupData {
	var data RollupData
	for i := rollupHeaderRows; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			continue
		}
		switch ClassifyRollupRow(row) {
		case RowWeekly:
			data.WeeklyRows = append(data.WeeklyRows, rollupRecord(row, 0, 1))
		case RowMonthly:
			data.MonthlyRows = append(data.MonthlyRows, rollupRecord(row, 0, 1))
		case RowDaily:
			data.DailyRows = append(data.DailyRows, rollupRecord(row, 1, 0))
		}
	}
	return data
}

func rollupRecord(row []string, dateCol, labelCol int) core.WeeklyRollup {
	return core.WeeklyRollup{
		Date:      strings.TrimSpace(cell(row, dateCol)),
		WeekLabel: strings.TrimSpace(cell(row, labelCol)),
		MetricSet: parseRollupMetrics(row),
	}
}

func parseRawMetrics(row []string) core.MetricSet {
	cols := config.RawColumns
	return core.MetricSet{
		MonthlyVideoPostedPacing: Num(cell(row, cols.MonthlyVideoPostedPacing)),
		SamplingPacing:           Num(cell(row, cols.SamplingPacing)),
		MonthlyGmvPacing:         Num(cell(row, cols.MonthlyGmvPacing)),
		DailyTargetGmv:           Num(cell(row, cols.DailyTargetGmv)),
		CumulativeMtdGmv:         Num(cell(row, cols.CumulativeMtdGmv)),
		ProjectedMonthlyGmv:      Num(cell(row, cols.ProjectedMonthlyGmv)),
		ProjectedGmvDelta:        Num(cell(row, cols.ProjectedGmvDelta)),
		GmvPacing:                Num(cell(row, cols.GmvPacing)),
		AffiliatesAdded:          Num(cell(row, cols.AffiliatesAdded)),
		ContentPending:           Num(cell(row, cols.ContentPending)),
		VideosPosted:             Num(cell(row, cols.VideosPosted)),
		MonthlyVideoTarget:       Num(cell(row, cols.MonthlyVideoTarget)),
		VideosConverted:          Num(cell(row, cols.VideosConverted)),
		SparkCodesAcquired:       Num(cell(row, cols.SparkCodesAcquired)),
		TargetInvitesSent:        Num(cell(row, cols.TargetInvitesSent)),
		DailySampleRequests:      Num(cell(row, cols.DailySampleRequests)),
		L0Approved:               Num(cell(row, cols.L0Approved)),
		L1Approved:               Num(cell(row, cols.L1Approved)),
		L2Approved:               Num(cell(row, cols.L2Approved)),
		L3Approved:               Num(cell(row, cols.L3Approved)),
		L4Approved:               Num(cell(row, cols.L4Approved)),
		L5Approved:               Num(cell(row, cols.L5Approved)),
		L6Approved:               Num(cell(row, cols.L6Approved)),
		TotalSamplesApproved:     Num(cell(row, cols.TotalSamplesApproved)),
		TargetSamplesGoals:       Num(cell(row, cols.TargetSamplesGoals)),
		SamplesDecline:           Num(cell(row, cols.SamplesDecline)),
		SamplesRemain:            Num(cell(row, cols.SamplesRemain)),
		DailyGmv:                 Num(cell(row, cols.DailyGmv)),
		GmvTarget:                Num(cell(row, cols.GmvTarget)),
		AdSpend:                  Num(cell(row, cols.AdSpend)),
		SpendTarget:              Num(cell(row, cols.SpendTarget)),
		Roi:                      Num(cell(row, cols.Roi)),
		RoiTarget:                Num(cell(row, cols.RoiTarget)),
	}
}

func parseRollupMetrics(row []string) core.MetricSet {
	cols := config.RollupColumns
	return core.MetricSet{
		MonthlyVideoPostedPacing: Num(cell(row, cols.MonthlyVideoPostedPacing)),
		SamplingPacing:           Num(cell(row, cols.SamplingPacing)),
		MonthlyGmvPacing:         Num(cell(row, cols.MonthlyGmvPacing)),
		DailyTargetGmv:           Num(cell(row, cols.DailyTargetGmv)),
		CumulativeMtdGmv:         Num(cell(row, cols.CumulativeMtdGmv)),
		ProjectedMonthlyGmv:      Num(cell(row, cols.ProjectedMonthlyGmv)),
		ProjectedGmvDelta:        Num(cell(row, cols.ProjectedGmvDelta)),
		GmvPacing:                Num(cell(row, cols.GmvPacing)),
		AffiliatesAdded:          Num(cell(row, cols.AffiliatesAdded)),
		ContentPending:           Num(cell(row, cols.ContentPending)),
		VideosPosted:             Num(cell(row, cols.VideosPosted)),
		MonthlyVideoTarget:       Num(cell(row, cols.MonthlyVideoTarget)),
		VideosConverted:          Num(cell(row, cols.VideosConverted)),
		SparkCodesAcquired:       Num(cell(row, cols.SparkCodesAcquired)),
		TargetInvitesSent:        Num(cell(row, cols.TargetInvitesSent)),
		DailySampleRequests:      Num(cell(row, cols.DailySampleRequests)),
		L0Approved:               Num(cell(row, cols.L0Approved)),
		L1Approved:               Num(cell(row, cols.L1Approved)),
		L2Approved:               Num(cell(row, cols.L2Approved)),
		L3Approved:               Num(cell(row, cols.L3Approved)),
		L4Approved:               Num(cell(row, cols.L4Approved)),
		L5Approved:               Num(cell(row, cols.L5Approved)),
		L6Approved:               Num(cell(row, cols.L6Approved)),
		TotalSamplesApproved:     Num(cell(row, cols.TotalSamplesApproved)),
		TargetSamplesGoals:       Num(cell(row, cols.TargetSamplesGoals)),
		SamplesDecline:           Num(cell(row, cols.SamplesDecline)),
		SamplesRemain:            Num(cell(row, cols.SamplesRemain)),
		DailyGmv:                 Num(cell(row, cols.DailyGmv)),
		GmvTarget:                Num(cell(row, cols.GmvTarget)),
		AdSpend:                  Num(cell(row, cols.AdSpend)),
		SpendTarget:              Num(cell(row, cols.SpendTarget)),
		Roi:                      Num(cell(row, cols.Roi)),
		RoiTarget:                Num(cell(row, cols.RoiTarget)),
	}
}
