package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"pacedash/internal/config"
	"pacedash/internal/core"
	"pacedash/internal/pacing"
	"pacedash/internal/parse"
	"pacedash/internal/sheets"
)

// tabSpan is the range read for every tab; wide enough for the SKU
// columns, deep enough for several years of daily rows.
const tabSpan = "A1:AZ1000"

// ErrNotFound is returned for slugs absent from the registry.
var ErrNotFound = fmt.Errorf("not found")

// Service builds the client, pod and company reports. Every report is
// computed fresh from a spreadsheet fetch; the HTTP layer owns caching.
type Service struct {
	fetcher      sheets.RangeFetcher
	registry     *config.Registry
	annualTarget float64

	now func() time.Time
}

func NewService(fetcher sheets.RangeFetcher, registry *config.Registry, annualTarget float64) *Service {
	return &Service{
		fetcher:      fetcher,
		registry:     registry,
		annualTarget: annualTarget,
		now:          time.Now,
	}
}

// Client builds the full single-client report: scorecard, weekly and
// monthly history, and the SKU breakdown when the client has SKU columns
// configured. A non-empty period restricts the weekly series to that
// calendar window.
func (s *Service) Client(ctx context.Context, slug string, period pacing.TimePeriod) (core.ClientResponse, error) {
	pod, client := s.registry.FindClient(slug)
	if client == nil {
		return core.ClientResponse{}, fmt.Errorf("client %q: %w", slug, ErrNotFound)
	}

	ranges := []string{
		rangeFor(client.RawTabName),
		rangeFor(client.RollupTabName),
	}
	grids, err := s.fetcher.FetchRanges(ctx, pod.SpreadsheetID, ranges)
	if err != nil {
		return core.ClientResponse{}, fmt.Errorf("fetch %s: %w", slug, err)
	}

	now := s.now()
	daily := parse.ParseRawTab(grids[0])
	rollup := parse.ParseRollupTab(grids[1])
	weekly := filterPeriod(weeklySeries(rollup), period, now)

	resp := core.ClientResponse{
		ClientName:   client.DisplayName,
		MtdScorecard: pacing.BuildScorecard(rollup.MonthlyRows, daily, now),
		WeeklyData:   weekly,
		WeekLabels:   pacing.BuildWeekLabels(weekly),
		MonthlyData:  parse.AggregateByMonth(daily),
		LastUpdated:  now.UTC().Format(time.RFC3339),
	}

	if len(client.Skus) > 0 {
		for _, sku := range parse.ParseSkuData(grids[0], client.Skus, now) {
			if sku.SampleRequests == 0 && sku.SamplesApproved == 0 {
				continue
			}
			resp.SkuBreakdown = append(resp.SkuBreakdown, sku)
		}
	}
	return resp, nil
}

// Pod builds the pod report: per-client summaries plus the merged
// pod-level weekly series, optionally restricted to a calendar period.
func (s *Service) Pod(ctx context.Context, slug string, period pacing.TimePeriod) (core.PodResponse, error) {
	pod := s.registry.FindPod(slug)
	if pod == nil {
		return core.PodResponse{}, fmt.Errorf("pod %q: %w", slug, ErrNotFound)
	}

	now := s.now()
	resp := core.PodResponse{
		PodName:     pod.DisplayName,
		PodSlug:     pod.Slug,
		Clients:     []core.ClientMtdSummary{},
		LastUpdated: now.UTC().Format(time.RFC3339),
	}
	if len(pod.Clients) == 0 {
		return resp, nil
	}

	clients, weekly, _, err := s.fetchPod(ctx, pod, now)
	if err != nil {
		return core.PodResponse{}, err
	}

	summary := AggregatePod(pod.Slug, pod.DisplayName, clients)
	weekly = filterPeriod(weekly, period, now)
	resp.Clients = clients
	resp.WeeklyData = weekly
	resp.WeekLabels = pacing.BuildWeekLabels(weekly)
	resp.ClientsReporting = summary.ClientsReporting
	resp.ClientsTotal = summary.ClientsTotal
	return resp, nil
}

// Company builds the CEO report. Pods fetch concurrently, one batched
// spreadsheet read per pod, and aggregation starts only after every fetch
// has resolved. Any fetch failure fails the whole report.
func (s *Service) Company(ctx context.Context) (core.CompanyResponse, error) {
	now := s.now()

	var active []*config.PodConfig
	for i := range s.registry.Pods {
		if len(s.registry.Pods[i].Clients) > 0 {
			active = append(active, &s.registry.Pods[i])
		}
	}

	summaries := make([]core.PodSummary, len(active))
	monthlyRows := make([][]core.WeeklyRollup, len(active))

	g, gctx := errgroup.WithContext(ctx)
	for i, pod := range active {
		g.Go(func() error {
			clients, _, monthly, err := s.fetchPod(gctx, pod, now)
			if err != nil {
				return err
			}
			summaries[i] = AggregatePod(pod.Slug, pod.DisplayName, clients)
			monthlyRows[i] = monthly
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return core.CompanyResponse{}, err
	}

	var allMonthly []core.WeeklyRollup
	for _, rows := range monthlyRows {
		allMonthly = append(allMonthly, rows...)
	}

	resp := AggregateCompany(summaries, allMonthly, s.annualTarget, now)
	resp.LastUpdated = now.UTC().Format(time.RFC3339)
	return resp, nil
}

// fetchPod reads every client tab of a pod in one batchGet and builds the
// per-client summaries, the merged pod weekly series, and the pod's
// monthly rollup rows.
func (s *Service) fetchPod(ctx context.Context, pod *config.PodConfig, now time.Time) ([]core.ClientMtdSummary, []core.WeeklyRollup, []core.WeeklyRollup, error) {
	ranges := make([]string, 0, 2*len(pod.Clients))
	for _, c := range pod.Clients {
		ranges = append(ranges, rangeFor(c.RawTabName), rangeFor(c.RollupTabName))
	}

	grids, err := s.fetcher.FetchRanges(ctx, pod.SpreadsheetID, ranges)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("fetch pod %s: %w", pod.Slug, err)
	}

	clients := make([]core.ClientMtdSummary, 0, len(pod.Clients))
	var weeklyPerClient [][]core.WeeklyRollup
	var monthly []core.WeeklyRollup

	for i, cfg := range pod.Clients {
		daily := parse.ParseRawTab(grids[2*i])
		rollup := parse.ParseRollupTab(grids[2*i+1])

		scorecard := pacing.BuildScorecard(rollup.MonthlyRows, daily, now)
		clients = append(clients, clientSummary(cfg, scorecard, daily))
		weeklyPerClient = append(weeklyPerClient, weeklySeries(rollup))
		monthly = append(monthly, rollup.MonthlyRows...)
	}

	return clients, MergePodWeekly(weeklyPerClient...), monthly, nil
}

// filterPeriod applies the optional calendar-window filter; an empty
// period means the full series.
func filterPeriod(weeks []core.WeeklyRollup, period pacing.TimePeriod, now time.Time) []core.WeeklyRollup {
	if period == "" {
		return weeks
	}
	return pacing.FilterWeeklyByPeriod(weeks, period, now)
}

// weeklySeries prefers the tab's own weekly rows and falls back to
// summaries derived from its daily rollup rows.
func weeklySeries(rollup parse.RollupData) []core.WeeklyRollup {
	if len(rollup.WeeklyRows) > 0 {
		return rollup.WeeklyRows
	}
	return parse.AggregateWeeksFromDaily(rollup.DailyRows)
}

func clientSummary(cfg config.ClientConfig, sc core.MtdScorecard, daily []core.DailyMetric) core.ClientMtdSummary {
	return core.ClientMtdSummary{
		ClientSlug: cfg.Slug,
		ClientName: cfg.DisplayName,

		CumulativeMtdGmv:    sc.CumulativeMtdGmv,
		GmvTargetMonth:      sc.GmvTargetMonth,
		GmvPacing:           sc.GmvPacing,
		GmvStatus:           sc.GmvStatus,
		ProjectedMonthlyGmv: sc.ProjectedMonthlyGmv,

		VideosPosted:         sc.VideosPosted,
		MonthlyVideoTarget:   sc.MonthlyVideoTarget,
		TotalSamplesApproved: sc.TotalSamplesApproved,
		TargetSamplesGoals:   sc.TargetSamplesGoals,
		AdSpend:              sc.AdSpend,
		SpendTarget:          sc.SpendTarget,
		Roi:                  sc.Roi,
		RoiTarget:            sc.RoiTarget,

		AffiliatesAdded:     sc.AffiliatesAdded,
		ContentPending:      sc.ContentPending,
		DailySampleRequests: sc.DailySampleRequests,
		SparkCodesAcquired:  sc.SparkCodesAcquired,
		TargetInvitesSent:   sc.TargetInvitesSent,
		SamplesDecline:      sc.SamplesDecline,
		L0Approved:          sc.L0Approved,
		L1Approved:          sc.L1Approved,
		L2Approved:          sc.L2Approved,
		L3Approved:          sc.L3Approved,
		L4Approved:          sc.L4Approved,
		L5Approved:          sc.L5Approved,
		L6Approved:          sc.L6Approved,

		DailyData: daily,
	}
}

func rangeFor(tab string) string {
	return fmt.Sprintf("'%s'!%s", tab, tabSpan)
}
