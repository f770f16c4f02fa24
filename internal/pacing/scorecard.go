package pacing

import (
	"time"

	"pacedash/internal/core"
	"pacedash/internal/parse"
)

// BuildScorecard builds the month-to-date scorecard for one client, trying
// sources in order: the pre-aggregated monthly rollup row is authoritative
// when present, the raw daily series is the fallback, and an all-zero
// scorecard covers the no-data case. Each strategy either yields a
// scorecard or passes to the next, so the order is testable on its own.
func BuildScorecard(monthlyRows []core.WeeklyRollup, daily []core.DailyMetric, now time.Time) core.MtdScorecard {
	strategies := []func() (core.MtdScorecard, bool){
		func() (core.MtdScorecard, bool) { return BuildFromRollup(monthlyRows, now) },
		func() (core.MtdScorecard, bool) { return BuildFromRaw(daily, now), true },
	}
	for _, build := range strategies {
		if sc, ok := build(); ok {
			return sc
		}
	}
	return core.EmptyScorecard()
}

// BuildFromRollup derives the scorecard from pre-aggregated monthly rollup
// rows. It wants the row matching the current calendar month; failing
// that, the most recent row showing cumulative GMV or posted videos.
// Returns false when no usable row exists, signalling the caller to derive
// from raw daily data instead.
func BuildFromRollup(monthlyRows []core.WeeklyRollup, now time.Time) (core.MtdScorecard, bool) {
	row, ok := selectMonthlyRow(monthlyRows, now)
	if !ok {
		return core.MtdScorecard{}, false
	}

	sc := core.MtdScorecard{
		CumulativeMtdGmv:     row.CumulativeMtdGmv,
		GmvTargetMonth:       row.GmvTarget,
		ProjectedMonthlyGmv:  row.ProjectedMonthlyGmv,
		VideosPosted:         row.VideosPosted,
		MonthlyVideoTarget:   row.MonthlyVideoTarget,
		TotalSamplesApproved: row.TotalSamplesApproved,
		TargetSamplesGoals:   row.TargetSamplesGoals,
		AdSpend:              row.AdSpend,
		SpendTarget:          row.SpendTarget,
		Roi:                  row.Roi,
		RoiTarget:            row.RoiTarget,

		AffiliatesAdded:     row.AffiliatesAdded,
		ContentPending:      row.ContentPending,
		DailySampleRequests: row.DailySampleRequests,
		SparkCodesAcquired:  row.SparkCodesAcquired,
		TargetInvitesSent:   row.TargetInvitesSent,
		SamplesDecline:      row.SamplesDecline,
		L0Approved:          row.L0Approved,
		L1Approved:          row.L1Approved,
		L2Approved:          row.L2Approved,
		L3Approved:          row.L3Approved,
		L4Approved:          row.L4Approved,
		L5Approved:          row.L5Approved,
		L6Approved:          row.L6Approved,
	}
	fillPacing(&sc)
	return sc, true
}

func selectMonthlyRow(monthlyRows []core.WeeklyRollup, now time.Time) (core.WeeklyRollup, bool) {
	for _, row := range monthlyRows {
		if parse.IsCurrentMonth(row.WeekLabel, now) {
			return row, true
		}
	}
	// No current-month row yet: take the most recent one with real data.
	for i := len(monthlyRows) - 1; i >= 0; i-- {
		if monthlyRows[i].CumulativeMtdGmv > 0 || monthlyRows[i].VideosPosted > 0 {
			return monthlyRows[i], true
		}
	}
	return core.WeeklyRollup{}, false
}

// BuildFromRaw derives the scorecard from the raw daily series. It never
// fails: with no rows at all it returns the all-zero scorecard.
//
// Cumulative and target columns are point-in-time values read from the
// latest active day of the selected month (or its first row when no day is
// active, since targets are valid without activity). Flow metrics sum over
// active days only, so pre-populated future rows cannot contaminate MTD
// totals. The spend target is a daily allocation and sums over the whole
// month instead of being read once.
func BuildFromRaw(daily []core.DailyMetric, now time.Time) core.MtdScorecard {
	group := selectMonthGroup(daily, now)
	if len(group) == 0 {
		return core.EmptyScorecard()
	}

	latest := group[0]
	for _, d := range group {
		if d.Active() {
			latest = d
		}
	}

	sc := core.MtdScorecard{
		CumulativeMtdGmv:    latest.CumulativeMtdGmv,
		GmvTargetMonth:      latest.GmvTargetMonth,
		ProjectedMonthlyGmv: latest.ProjectedMonthlyGmv,
		MonthlyVideoTarget:  latest.MonthlyVideoTarget,
		TargetSamplesGoals:  latest.TargetSamplesGoals,
		RoiTarget:           latest.RoiTarget,
	}

	var roiSum float64
	var roiDays int
	for _, d := range group {
		sc.SpendTarget += d.SpendTarget
		if !d.Active() {
			continue
		}
		sc.VideosPosted += d.VideosPosted
		sc.TotalSamplesApproved += d.TotalSamplesApproved
		sc.AdSpend += d.AdSpend
		sc.AffiliatesAdded += d.AffiliatesAdded
		sc.ContentPending += d.ContentPending
		sc.DailySampleRequests += d.DailySampleRequests
		sc.SparkCodesAcquired += d.SparkCodesAcquired
		sc.TargetInvitesSent += d.TargetInvitesSent
		sc.SamplesDecline += d.SamplesDecline
		sc.L0Approved += d.L0Approved
		sc.L1Approved += d.L1Approved
		sc.L2Approved += d.L2Approved
		sc.L3Approved += d.L3Approved
		sc.L4Approved += d.L4Approved
		sc.L5Approved += d.L5Approved
		sc.L6Approved += d.L6Approved
		if d.Roi > 0 {
			roiSum += d.Roi
			roiDays++
		}
	}
	if roiDays > 0 {
		sc.Roi = roiSum / float64(roiDays)
	}

	fillPacing(&sc)
	return sc
}

// selectMonthGroup picks the month the scorecard covers: the current
// calendar month when it has rows, otherwise the most recent month that
// contains an active day, otherwise the last month present (its targets
// are still worth reporting).
func selectMonthGroup(daily []core.DailyMetric, now time.Time) []core.DailyMetric {
	if len(daily) == 0 {
		return nil
	}

	var current []core.DailyMetric
	for _, d := range daily {
		if parse.IsCurrentMonth(d.Month, now) {
			current = append(current, d)
		}
	}
	if len(current) > 0 {
		return current
	}

	month := daily[len(daily)-1].Month
	for i := len(daily) - 1; i >= 0; i-- {
		if daily[i].Active() {
			month = daily[i].Month
			break
		}
	}

	var group []core.DailyMetric
	for _, d := range daily {
		if d.Month == month {
			group = append(group, d)
		}
	}
	return group
}

// fillPacing computes every pacing ratio and status from the actual/target
// pairs already set. ROI pacing is target-relative when a ROI target
// exists; with no target the metric defaults to green rather than
// misreading as behind.
func fillPacing(sc *core.MtdScorecard) {
	sc.GmvPacing = ratio(sc.CumulativeMtdGmv, sc.GmvTargetMonth)
	sc.VideoPacing = ratio(sc.VideosPosted, sc.MonthlyVideoTarget)
	sc.SamplesPacing = ratio(sc.TotalSamplesApproved, sc.TargetSamplesGoals)
	sc.SpendPacing = ratio(sc.AdSpend, sc.SpendTarget)

	sc.GmvStatus = core.PacingStatus(sc.GmvPacing)
	sc.VideoStatus = core.PacingStatus(sc.VideoPacing)
	sc.SamplesStatus = core.PacingStatus(sc.SamplesPacing)
	sc.SpendStatus = core.PacingStatus(sc.SpendPacing)

	if sc.RoiTarget > 0 {
		sc.RoiStatus = core.PacingStatus(sc.Roi / sc.RoiTarget)
	} else {
		sc.RoiStatus = core.StatusGreen
	}
}

func ratio(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return actual / target
}
