package pacing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pacedash/internal/core"
)

var march = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func marchDay(date string, gmv, cumulative, videos float64) core.DailyMetric {
	return core.DailyMetric{
		Date:           date,
		Month:          "MARCH",
		GmvTargetMonth: 10000,
		MetricSet: core.MetricSet{
			DailyGmv:           gmv,
			CumulativeMtdGmv:   cumulative,
			VideosPosted:       videos,
			MonthlyVideoTarget: 20,
		},
	}
}

func TestBuildFromRawMtdScenario(t *testing.T) {
	daily := []core.DailyMetric{
		marchDay("2026-03-02", 100, 100, 1),
		marchDay("2026-03-03", 200, 300, 2),
		marchDay("2026-03-04", 300, 600, 3),
		marchDay("2026-03-05", 0, 0, 0), // future placeholder
		marchDay("2026-03-06", 0, 0, 0),
	}

	sc := BuildFromRaw(daily, march)

	assert.Equal(t, 600.0, sc.CumulativeMtdGmv, "cumulative comes from the latest active day, not a sum")
	assert.Equal(t, 6.0, sc.VideosPosted)
	assert.Equal(t, 0.3, sc.VideoPacing)
	assert.Equal(t, core.StatusRed, sc.VideoStatus)
	assert.Equal(t, 10000.0, sc.GmvTargetMonth)
	assert.Equal(t, 0.06, sc.GmvPacing)
}

func TestBuildFromRawNoData(t *testing.T) {
	sc := BuildFromRaw(nil, march)
	assert.Equal(t, core.EmptyScorecard(), sc)
}

func TestBuildFromRawFallsBackToLatestActiveMonth(t *testing.T) {
	daily := []core.DailyMetric{
		{Month: "JANUARY", GmvTargetMonth: 5000, MetricSet: core.MetricSet{DailyGmv: 500, CumulativeMtdGmv: 500}},
		{Month: "FEBRUARY", GmvTargetMonth: 6000, MetricSet: core.MetricSet{DailyGmv: 700, CumulativeMtdGmv: 700}},
		// Nothing for March.
	}

	sc := BuildFromRaw(daily, march)
	assert.Equal(t, 700.0, sc.CumulativeMtdGmv)
	assert.Equal(t, 6000.0, sc.GmvTargetMonth)
}

func TestBuildFromRawTargetsValidWithoutActivity(t *testing.T) {
	daily := []core.DailyMetric{
		{Month: "MARCH", GmvTargetMonth: 8000, MetricSet: core.MetricSet{MonthlyVideoTarget: 30}},
	}
	sc := BuildFromRaw(daily, march)
	assert.Equal(t, 8000.0, sc.GmvTargetMonth, "targets come from the first row when no day is active")
	assert.Zero(t, sc.CumulativeMtdGmv)
	assert.Equal(t, core.StatusRed, sc.GmvStatus)
}

func TestBuildFromRawSpendTargetSummed(t *testing.T) {
	mk := func(spend, spendTarget, gmv float64) core.DailyMetric {
		return core.DailyMetric{Month: "MARCH", MetricSet: core.MetricSet{
			AdSpend: spend, SpendTarget: spendTarget, DailyGmv: gmv,
		}}
	}
	daily := []core.DailyMetric{
		mk(40, 50, 1),
		mk(60, 50, 1),
		mk(0, 50, 0), // inactive: its spend target still counts
	}
	sc := BuildFromRaw(daily, march)
	assert.Equal(t, 100.0, sc.AdSpend, "spend sums over active days only")
	assert.Equal(t, 150.0, sc.SpendTarget, "spend target sums over all days of the month")
	assert.InDelta(t, 100.0/150.0, sc.SpendPacing, 1e-9)
}

func TestBuildFromRollup(t *testing.T) {
	monthly := []core.WeeklyRollup{
		{WeekLabel: "FEBRUARY", Date: "2026-02-28", MetricSet: core.MetricSet{CumulativeMtdGmv: 9000, GmvTarget: 9000}},
		{WeekLabel: "MARCH", Date: "2026-03-31", MetricSet: core.MetricSet{
			CumulativeMtdGmv: 5000, GmvTarget: 10000, VideosPosted: 10, MonthlyVideoTarget: 20,
		}},
	}

	sc, ok := BuildFromRollup(monthly, march)
	require.True(t, ok)
	assert.Equal(t, 5000.0, sc.CumulativeMtdGmv)
	assert.Equal(t, 0.5, sc.GmvPacing)
	assert.Equal(t, core.StatusRed, sc.GmvStatus)
	assert.Equal(t, 0.5, sc.VideoPacing)
}

func TestBuildFromRollupFallsBackToMostRecentWithData(t *testing.T) {
	monthly := []core.WeeklyRollup{
		{WeekLabel: "JANUARY", MetricSet: core.MetricSet{CumulativeMtdGmv: 1000, GmvTarget: 2000}},
		{WeekLabel: "FEBRUARY", MetricSet: core.MetricSet{CumulativeMtdGmv: 2000, GmvTarget: 2000}},
		{WeekLabel: "APRIL"}, // future template row, no data
	}

	sc, ok := BuildFromRollup(monthly, march)
	require.True(t, ok)
	assert.Equal(t, 2000.0, sc.CumulativeMtdGmv, "scan from the end for the last row with data")
}

func TestBuildFromRollupUnusable(t *testing.T) {
	_, ok := BuildFromRollup(nil, march)
	assert.False(t, ok)

	_, ok = BuildFromRollup([]core.WeeklyRollup{{WeekLabel: "JANUARY"}}, march)
	assert.False(t, ok, "rows with no GMV and no videos are unusable")
}

func TestBuildScorecardPrefersRollup(t *testing.T) {
	monthly := []core.WeeklyRollup{
		{WeekLabel: "MARCH", MetricSet: core.MetricSet{CumulativeMtdGmv: 7777, GmvTarget: 10000}},
	}
	daily := []core.DailyMetric{marchDay("2026-03-02", 100, 100, 1)}

	sc := BuildScorecard(monthly, daily, march)
	assert.Equal(t, 7777.0, sc.CumulativeMtdGmv, "rollup row wins over raw derivation")
}

func TestBuildScorecardFallsBackToRaw(t *testing.T) {
	daily := []core.DailyMetric{marchDay("2026-03-02", 100, 100, 1)}

	sc := BuildScorecard(nil, daily, march)
	assert.Equal(t, 100.0, sc.CumulativeMtdGmv)
}

func TestBuildScorecardNoDataAtAll(t *testing.T) {
	sc := BuildScorecard(nil, nil, march)
	assert.Equal(t, core.EmptyScorecard(), sc)
}

func TestRoiStatusDefaultsGreenWithoutTarget(t *testing.T) {
	daily := []core.DailyMetric{
		{Month: "MARCH", MetricSet: core.MetricSet{DailyGmv: 10, Roi: 0.5}},
	}
	sc := BuildFromRaw(daily, march)
	assert.Equal(t, core.StatusGreen, sc.RoiStatus)

	daily[0].RoiTarget = 2
	sc = BuildFromRaw(daily, march)
	assert.Equal(t, core.StatusRed, sc.RoiStatus, "0.5 against a target of 2 paces at 0.25")
}
