// Package report rolls client scorecards up through the pod and company
// levels and orchestrates the per-pod spreadsheet fetches.
package report

import (
	"time"

	"pacedash/internal/core"
	"pacedash/internal/pacing"
)

// AggregatePod folds a pod's client summaries into pod totals. Every flow
// metric and target sums across clients; the pod's GMV pacing is recomputed
// as sum(actual)/sum(target), never an average of per-client ratios, so
// clients with tiny targets cannot distort it. ROI is an arithmetic mean
// over clients with nonzero ROI; zero-ROI clients are left out of the
// denominator entirely.
func AggregatePod(podSlug, podName string, clients []core.ClientMtdSummary) core.PodSummary {
	pod := core.PodSummary{
		PodSlug:      podSlug,
		PodName:      podName,
		ClientsTotal: len(clients),
		Clients:      clients,
	}

	var roiSum float64
	var roiClients int
	for _, c := range clients {
		pod.TotalMtdGmv += c.CumulativeMtdGmv
		pod.TotalMtdTarget += c.GmvTargetMonth
		pod.ProjectedMonthlyGmv += c.ProjectedMonthlyGmv
		pod.TotalVideosPosted += c.VideosPosted
		pod.TotalVideoTarget += c.MonthlyVideoTarget
		pod.TotalSamplesApproved += c.TotalSamplesApproved
		pod.TotalSamplesTarget += c.TargetSamplesGoals
		pod.TotalAdSpend += c.AdSpend
		pod.TotalSpendTarget += c.SpendTarget

		pod.TotalSampleRequests += c.DailySampleRequests
		pod.TotalSamplesDecline += c.SamplesDecline
		pod.TotalAffiliatesAdded += c.AffiliatesAdded
		pod.TotalContentPending += c.ContentPending
		pod.TotalInvitesSent += c.TargetInvitesSent
		pod.TotalSparkCodes += c.SparkCodesAcquired

		if c.Roi > 0 {
			roiSum += c.Roi
			roiClients++
		}
		if clientReporting(c) {
			pod.ClientsReporting++
		}
	}

	if pod.TotalMtdTarget > 0 {
		pod.GmvPacing = pod.TotalMtdGmv / pod.TotalMtdTarget
	}
	pod.GmvStatus = core.PacingStatus(pod.GmvPacing)
	if roiClients > 0 {
		pod.AvgRoi = roiSum / float64(roiClients)
	}
	return pod
}

func clientReporting(c core.ClientMtdSummary) bool {
	return c.CumulativeMtdGmv > 0 || c.VideosPosted > 0 || c.TotalSamplesApproved > 0 || c.AdSpend > 0
}

// MergePodWeekly merges the clients' weekly series into one pod-level
// series, keyed by week label (or date when the label is blank), in
// first-seen order. Flow metrics, cumulative GMV and targets sum on merge.
//
// ROI merges as the pairwise average of the accumulator and the incoming
// value. For three or more clients that is order-dependent and is not a
// true mean; it matches the established dashboard numbers, so it stays
// until product decides otherwise.
func MergePodWeekly(series ...[]core.WeeklyRollup) []core.WeeklyRollup {
	var order []string
	acc := make(map[string]*core.WeeklyRollup)

	for _, weeks := range series {
		for _, w := range weeks {
			key := w.WeekLabel
			if key == "" {
				key = w.Date
			}
			if key == "" {
				continue
			}

			existing, ok := acc[key]
			if !ok {
				merged := w
				acc[key] = &merged
				order = append(order, key)
				continue
			}

			existing.DailyGmv += w.DailyGmv
			existing.CumulativeMtdGmv += w.CumulativeMtdGmv
			existing.ProjectedMonthlyGmv += w.ProjectedMonthlyGmv
			existing.GmvTarget += w.GmvTarget
			existing.VideosPosted += w.VideosPosted
			existing.VideosConverted += w.VideosConverted
			existing.MonthlyVideoTarget += w.MonthlyVideoTarget
			existing.TotalSamplesApproved += w.TotalSamplesApproved
			existing.TargetSamplesGoals += w.TargetSamplesGoals
			existing.AdSpend += w.AdSpend
			existing.SpendTarget += w.SpendTarget
			existing.AffiliatesAdded += w.AffiliatesAdded
			existing.ContentPending += w.ContentPending
			existing.SparkCodesAcquired += w.SparkCodesAcquired
			existing.TargetInvitesSent += w.TargetInvitesSent
			existing.DailySampleRequests += w.DailySampleRequests
			existing.SamplesDecline += w.SamplesDecline
			existing.SamplesRemain += w.SamplesRemain
			existing.L0Approved += w.L0Approved
			existing.L1Approved += w.L1Approved
			existing.L2Approved += w.L2Approved
			existing.L3Approved += w.L3Approved
			existing.L4Approved += w.L4Approved
			existing.L5Approved += w.L5Approved
			existing.L6Approved += w.L6Approved

			existing.Roi = (existing.Roi + w.Roi) / 2

			if existing.GmvTarget > 0 {
				existing.GmvPacing = existing.CumulativeMtdGmv / existing.GmvTarget
			} else {
				existing.GmvPacing = 0
			}
		}
	}

	out := make([]core.WeeklyRollup, 0, len(order))
	for _, key := range order {
		out = append(out, *acc[key])
	}
	return out
}

// AggregateCompany folds pod summaries into the company view. GMV pacing
// is again recomputed from the summed actual and target. Two annual KPIs
// come out of it: a forward projection of the current month's daily run
// rate times twelve, and the backward year-to-date actual (summed from
// the clients' monthly rollup rows for January through the current month)
// paced against the annual target pro-rated by day of year.
func AggregateCompany(pods []core.PodSummary, monthlyRows []core.WeeklyRollup, annualTarget float64, now time.Time) core.CompanyResponse {
	resp := core.CompanyResponse{
		AnnualTarget: annualTarget,
		Pods:         pods,
	}

	for _, p := range pods {
		resp.CompanyMtdGmv += p.TotalMtdGmv
		resp.CompanyMtdTarget += p.TotalMtdTarget
		resp.ProjectedMonthlyGmv += p.ProjectedMonthlyGmv
		resp.AllClients = append(resp.AllClients, p.Clients...)
	}
	if resp.CompanyMtdTarget > 0 {
		resp.CompanyGmvPacing = resp.CompanyMtdGmv / resp.CompanyMtdTarget
	}
	resp.CompanyGmvStatus = core.PacingStatus(resp.CompanyGmvPacing)

	// Forward: extrapolate this month's daily run rate to a year.
	dayOfMonth := now.Day()
	daysInMonth := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	if dayOfMonth > 0 {
		resp.ProjectedAnnualGmv = resp.CompanyMtdGmv / float64(dayOfMonth) * float64(daysInMonth) * 12
	}

	// Backward: what has actually landed since January.
	resp.YtdGmv = ytdGmv(monthlyRows, now)
	resp.YtdTarget = annualTarget / 365 * float64(now.YearDay())
	if resp.YtdTarget > 0 {
		resp.YtdPacing = resp.YtdGmv / resp.YtdTarget
	}
	resp.YtdStatus = core.PacingStatus(resp.YtdPacing)

	return resp
}

// ytdGmv sums the cumulative month-end GMV of every monthly rollup row
// whose label falls in January through the current month.
func ytdGmv(monthlyRows []core.WeeklyRollup, now time.Time) float64 {
	var total float64
	for _, row := range monthlyRows {
		idx := pacing.MonthIndex(row.WeekLabel)
		if idx == 0 || idx > int(now.Month()) {
			continue
		}
		total += row.CumulativeMtdGmv
	}
	return total
}
