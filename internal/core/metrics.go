// Package core holds the domain value objects served by the dashboard.
//
// Everything here is constructed per request from spreadsheet data and is
// never mutated after construction. The JSON tags are a serialization
// contract with the dashboard frontend; renaming a field breaks consumers.
package core

// MetricSet is the block of numeric columns shared by raw daily rows and
// rollup rows. Absent or unparsable cells are zero.
type MetricSet struct {
	MonthlyVideoPostedPacing float64 `json:"monthlyVideoPostedPacing"`
	SamplingPacing           float64 `json:"samplingPacing"`
	MonthlyGmvPacing         float64 `json:"monthlyGmvPacing"`
	DailyTargetGmv           float64 `json:"dailyTargetGmv"`
	CumulativeMtdGmv         float64 `json:"cumulativeMtdGmv"`
	ProjectedMonthlyGmv      float64 `json:"projectedMonthlyGmv"`
	ProjectedGmvDelta        float64 `json:"projectedGmvDelta"`
	GmvPacing                float64 `json:"gmvPacing"`
	AffiliatesAdded          float64 `json:"affiliatesAdded"`
	ContentPending           float64 `json:"contentPending"`
	VideosPosted             float64 `json:"videosPosted"`
	MonthlyVideoTarget       float64 `json:"monthlyVideoTarget"`
	VideosConverted          float64 `json:"videosConverted"`
	SparkCodesAcquired       float64 `json:"sparkCodesAcquired"`
	TargetInvitesSent        float64 `json:"targetInvitesSent"`
	DailySampleRequests      float64 `json:"dailySampleRequests"`
	L0Approved               float64 `json:"l0Approved"`
	L1Approved               float64 `json:"l1Approved"`
	L2Approved               float64 `json:"l2Approved"`
	L3Approved               float64 `json:"l3Approved"`
	L4Approved               float64 `json:"l4Approved"`
	L5Approved               float64 `json:"l5Approved"`
	L6Approved               float64 `json:"l6Approved"`
	TotalSamplesApproved     float64 `json:"totalSamplesApproved"`
	TargetSamplesGoals       float64 `json:"targetSamplesGoals"`
	SamplesDecline           float64 `json:"samplesDecline"`
	SamplesRemain            float64 `json:"samplesRemain"`
	DailyGmv                 float64 `json:"dailyGmv"`
	GmvTarget                float64 `json:"gmvTarget"`
	AdSpend                  float64 `json:"adSpend"`
	SpendTarget              float64 `json:"spendTarget"`
	Roi                      float64 `json:"roi"`
	RoiTarget                float64 `json:"roiTarget"`
}

// Active reports whether the row shows any real activity. Sheet templates
// pre-populate future dates with all-zero rows; those must never count
// toward MTD totals or aggregation output.
func (m MetricSet) Active() bool {
	return m.DailyGmv > 0 || m.VideosPosted > 0 || m.TotalSamplesApproved > 0 || m.AdSpend > 0
}

// DailyMetric is one calendar day of data for one client, parsed from the
// raw tab. Month is the grouping label as written in the sheet.
type DailyMetric struct {
	Date           string  `json:"date"`
	Month          string  `json:"month"`
	GmvTargetMonth float64 `json:"gmvTargetMonth"`
	MetricSet
}

// WeeklyRollup is a classified row from the rollup tab. The same shape
// serves three roles: a weekly summary, a monthly summary, or a single
// daily rollup row. For weekly and monthly rows Date comes from column A
// and WeekLabel ("Week N" or a month name) from column B; daily rows store
// them the other way around.
type WeeklyRollup struct {
	WeekLabel string `json:"weekLabel"`
	Date      string `json:"date"`
	MetricSet
}

// MonthlyAggregate is one month folded down from daily records.
type MonthlyAggregate struct {
	Month                string  `json:"month"`
	TotalGmv             float64 `json:"totalGmv"`
	GmvTarget            float64 `json:"gmvTarget"`
	TotalVideosPosted    float64 `json:"totalVideosPosted"`
	VideoTarget          float64 `json:"videoTarget"`
	TotalSamplesApproved float64 `json:"totalSamplesApproved"`
	SamplesTarget        float64 `json:"samplesTarget"`
	TotalAdSpend         float64 `json:"totalAdSpend"`
	SpendTarget          float64 `json:"spendTarget"`
	AvgRoi               float64 `json:"avgRoi"`
	RoiTarget            float64 `json:"roiTarget"`
}

// SkuData is the current-month sample volume for one SKU.
//
// Both fields are currently summed from the same source column; the sheet
// does not yet carry a separate requests column. Confirm the intended
// column before treating the two numbers as independent.
type SkuData struct {
	Name            string  `json:"name"`
	SampleRequests  float64 `json:"sampleRequests"`
	SamplesApproved float64 `json:"samplesApproved"`
}
