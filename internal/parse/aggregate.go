package parse

import (
	"pacedash/internal/core"
)

// AggregateByMonth folds daily records into per-month summaries, in the
// order the months first appear in the sheet. Flow metrics are summed over
// active days only; targets are the monthly constants from the first row
// of the group; ROI averages the active days with nonzero ROI. A month
// with no active day at all is template padding and is dropped.
func AggregateByMonth(daily []core.DailyMetric) []core.MonthlyAggregate {
	var order []string
	byMonth := make(map[string][]core.DailyMetric)
	for _, d := range daily {
		if d.Month == "" {
			continue
		}
		if _, seen := byMonth[d.Month]; !seen {
			order = append(order, d.Month)
		}
		byMonth[d.Month] = append(byMonth[d.Month], d)
	}

	var out []core.MonthlyAggregate
	for _, month := range order {
		days := byMonth[month]

		var active []core.DailyMetric
		for _, d := range days {
			if d.Active() {
				active = append(active, d)
			}
		}
		if len(active) == 0 {
			continue
		}

		agg := core.MonthlyAggregate{
			Month:         month,
			GmvTarget:     days[0].GmvTargetMonth,
			VideoTarget:   days[0].MonthlyVideoTarget,
			SamplesTarget: days[0].TargetSamplesGoals,
			SpendTarget:   days[0].SpendTarget,
			RoiTarget:     days[0].RoiTarget,
		}

		var roiSum float64
		var roiDays int
		for _, d := range active {
			agg.TotalGmv += d.DailyGmv
			agg.TotalVideosPosted += d.VideosPosted
			agg.TotalSamplesApproved += d.TotalSamplesApproved
			agg.TotalAdSpend += d.AdSpend
			if d.Roi > 0 {
				roiSum += d.Roi
				roiDays++
			}
		}
		if roiDays > 0 {
			agg.AvgRoi = roiSum / float64(roiDays)
		}

		out = append(out, agg)
	}
	return out
}

// AggregateWeeksFromDaily folds daily rollup rows into weekly summaries,
// for rollup tabs that carry no weekly rows of their own. Rows group by
// week label (falling back to the date when the label is blank). Flow
// metrics sum across the week; cumulative, pacing and target columns are
// point-in-time values taken from the week's last day; ROI averages the
// days with nonzero ROI. Weeks with no activity are pre-populated template
// rows and are dropped after aggregation.
func AggregateWeeksFromDaily(days []core.WeeklyRollup) []core.WeeklyRollup {
	var order []string
	byWeek := make(map[string][]core.WeeklyRollup)
	for _, d := range days {
		key := d.WeekLabel
		if key == "" {
			key = d.Date
		}
		if key == "" {
			continue
		}
		if _, seen := byWeek[key]; !seen {
			order = append(order, key)
		}
		byWeek[key] = append(byWeek[key], d)
	}

	var out []core.WeeklyRollup
	for _, key := range order {
		group := byWeek[key]
		last := group[len(group)-1]

		// Point-in-time columns carry over from the last day.
		week := core.WeeklyRollup{
			WeekLabel: key,
			Date:      last.Date,
			MetricSet: core.MetricSet{
				MonthlyVideoPostedPacing: last.MonthlyVideoPostedPacing,
				SamplingPacing:           last.SamplingPacing,
				MonthlyGmvPacing:         last.MonthlyGmvPacing,
				DailyTargetGmv:           last.DailyTargetGmv,
				CumulativeMtdGmv:         last.CumulativeMtdGmv,
				ProjectedMonthlyGmv:      last.ProjectedMonthlyGmv,
				ProjectedGmvDelta:        last.ProjectedGmvDelta,
				GmvPacing:                last.GmvPacing,
				MonthlyVideoTarget:       last.MonthlyVideoTarget,
				TargetSamplesGoals:       last.TargetSamplesGoals,
				SamplesRemain:            last.SamplesRemain,
				GmvTarget:                last.GmvTarget,
				SpendTarget:              last.SpendTarget,
				RoiTarget:                last.RoiTarget,
			},
		}

		var roiSum float64
		var roiDays int
		for _, d := range group {
			week.DailyGmv += d.DailyGmv
			week.VideosPosted += d.VideosPosted
			week.VideosConverted += d.VideosConverted
			week.TotalSamplesApproved += d.TotalSamplesApproved
			week.AdSpend += d.AdSpend
			week.AffiliatesAdded += d.AffiliatesAdded
			week.ContentPending += d.ContentPending
			week.SparkCodesAcquired += d.SparkCodesAcquired
			week.TargetInvitesSent += d.TargetInvitesSent
			week.DailySampleRequests += d.DailySampleRequests
			week.SamplesDecline += d.SamplesDecline
			week.L0Approved += d.L0Approved
			week.L1Approved += d.L1Approved
			week.L2Approved += d.L2Approved
			week.L3Approved += d.L3Approved
			week.L4Approved += d.L4Approved
			week.L5Approved += d.L5Approved
			week.L6Approved += d.L6Approved
			if d.Roi > 0 {
				roiSum += d.Roi
				roiDays++
			}
		}
		if roiDays > 0 {
			week.Roi = roiSum / float64(roiDays)
		}

		if !week.Active() {
			continue
		}
		out = append(out, week)
	}
	return out
}
