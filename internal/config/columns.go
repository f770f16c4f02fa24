package config

// Column index maps for the two tab layouts. These positions are fixed by
// the sheet template; if the template moves a column, only this file
// changes.

// RawColumnMap indexes the raw daily tab. Row 0 is a note row, row 1 is
// headers, data starts at row 2.
type RawColumnMap struct {
	Date           int
	Month          int
	GmvTargetMonth int

	MonthlyVideoPostedPacing int
	SamplingPacing           int
	MonthlyGmvPacing         int
	DailyTargetGmv           int
	CumulativeMtdGmv         int
	ProjectedMonthlyGmv      int
	ProjectedGmvDelta        int
	GmvPacing                int
	AffiliatesAdded          int
	ContentPending           int
	VideosPosted             int
	MonthlyVideoTarget       int
	VideosConverted          int
	SparkCodesAcquired       int
	TargetInvitesSent        int
	DailySampleRequests      int
	L0Approved               int
	L1Approved               int
	L2Approved               int
	L3Approved               int
	L4Approved               int
	L5Approved               int
	L6Approved               int
	TotalSamplesApproved     int
	TargetSamplesGoals       int
	SamplesDecline           int
	SamplesRemain            int
	DailyGmv                 int
	GmvTarget                int
	AdSpend                  int
	SpendTarget              int
	Roi                      int
	RoiTarget                int

	// First per-SKU sample column; SKU configs offset from here.
	SkuStart int
}

// RollupColumnMap indexes the rollup tab. Columns A and B hold the date
// and period label (order depends on the classified row type); metric
// columns are shared across all row types.
type RollupColumnMap struct {
	MonthlyVideoPostedPacing int
	SamplingPacing           int
	MonthlyGmvPacing         int
	DailyTargetGmv           int
	CumulativeMtdGmv         int
	ProjectedMonthlyGmv      int
	ProjectedGmvDelta        int
	GmvPacing                int
	AffiliatesAdded          int
	ContentPending           int
	VideosPosted             int
	MonthlyVideoTarget       int
	VideosConverted          int
	SparkCodesAcquired       int
	TargetInvitesSent        int
	DailySampleRequests      int
	L0Approved               int
	L1Approved               int
	L2Approved               int
	L3Approved               int
	L4Approved               int
	L5Approved               int
	L6Approved               int
	TotalSamplesApproved     int
	TargetSamplesGoals       int
	SamplesDecline           int
	SamplesRemain            int
	DailyGmv                 int
	GmvTarget                int
	AdSpend                  int
	SpendTarget              int
	Roi                      int
	RoiTarget                int
}

// RawColumns is the raw-tab layout currently published by the template.
var RawColumns = RawColumnMap{
	Date:           0,
	Month:          1,
	GmvTargetMonth: 2,

	MonthlyVideoPostedPacing: 3,
	SamplingPacing:           4,
	MonthlyGmvPacing:         5,
	DailyTargetGmv:           6,
	CumulativeMtdGmv:         7,
	ProjectedMonthlyGmv:      8,
	ProjectedGmvDelta:        9,
	GmvPacing:                10,
	AffiliatesAdded:          11,
	ContentPending:           12,
	VideosPosted:             13,
	MonthlyVideoTarget:       14,
	VideosConverted:          15,
	SparkCodesAcquired:       16,
	TargetInvitesSent:        17,
	DailySampleRequests:      18,
	L0Approved:               19,
	L1Approved:               20,
	L2Approved:               21,
	L3Approved:               22,
	L4Approved:               23,
	L5Approved:               24,
	L6Approved:               25,
	TotalSamplesApproved:     26,
	TargetSamplesGoals:       27,
	SamplesDecline:           28,
	SamplesRemain:            29,
	DailyGmv:                 30,
	GmvTarget:                31,
	AdSpend:                  32,
	SpendTarget:              33,
	Roi:                      34,
	RoiTarget:                35,

	SkuStart: 36,
}

// RollupColumns is the rollup-tab layout; metrics start after the two
// date/label columns.
var RollupColumns = RollupColumnMap{
	MonthlyVideoPostedPacing: 2,
	SamplingPacing:           3,
	MonthlyGmvPacing:         4,
	DailyTargetGmv:           5,
	CumulativeMtdGmv:         6,
	ProjectedMonthlyGmv:      7,
	ProjectedGmvDelta:        8,
	GmvPacing:                9,
	AffiliatesAdded:          10,
	ContentPending:           11,
	VideosPosted:             12,
	MonthlyVideoTarget:       13,
	VideosConverted:          14,
	SparkCodesAcquired:       15,
	TargetInvitesSent:        16,
	DailySampleRequests:      17,
	L0Approved:               18,
	L1Approved:               19,
	L2Approved:               20,
	L3Approved:               21,
	L4Approved:               22,
	L5Approved:               23,
	L6Approved:               24,
	TotalSamplesApproved:     25,
	TargetSamplesGoals:       26,
	SamplesDecline:           27,
	SamplesRemain:            28,
	DailyGmv:                 29,
	GmvTarget:                30,
	AdSpend:                  31,
	SpendTarget:              32,
	Roi:                      33,
	RoiTarget:                34,
}
