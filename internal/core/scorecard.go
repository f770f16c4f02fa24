package core

// MtdScorecard is the month-to-date view for one client: actual vs target
// vs pacing vs status for each headline metric, plus the creator-pipeline
// counters.
type MtdScorecard struct {
	CumulativeMtdGmv    float64 `json:"cumulativeMtdGmv"`
	GmvTargetMonth      float64 `json:"gmvTargetMonth"`
	GmvPacing           float64 `json:"gmvPacing"`
	GmvStatus           Status  `json:"gmvStatus"`
	ProjectedMonthlyGmv float64 `json:"projectedMonthlyGmv"`

	VideosPosted       float64 `json:"videosPosted"`
	MonthlyVideoTarget float64 `json:"monthlyVideoTarget"`
	VideoPacing        float64 `json:"videoPacing"`
	VideoStatus        Status  `json:"videoStatus"`

	TotalSamplesApproved float64 `json:"totalSamplesApproved"`
	TargetSamplesGoals   float64 `json:"targetSamplesGoals"`
	SamplesPacing        float64 `json:"samplesPacing"`
	SamplesStatus        Status  `json:"samplesStatus"`

	AdSpend     float64 `json:"adSpend"`
	SpendTarget float64 `json:"spendTarget"`
	SpendPacing float64 `json:"spendPacing"`
	SpendStatus Status  `json:"spendStatus"`

	Roi       float64 `json:"roi"`
	RoiTarget float64 `json:"roiTarget"`
	RoiStatus Status  `json:"roiStatus"`

	// Pipeline counters
	AffiliatesAdded     float64 `json:"affiliatesAdded"`
	ContentPending      float64 `json:"contentPending"`
	DailySampleRequests float64 `json:"dailySampleRequests"`
	SparkCodesAcquired  float64 `json:"sparkCodesAcquired"`
	TargetInvitesSent   float64 `json:"targetInvitesSent"`
	SamplesDecline      float64 `json:"samplesDecline"`
	L0Approved          float64 `json:"l0Approved"`
	L1Approved          float64 `json:"l1Approved"`
	L2Approved          float64 `json:"l2Approved"`
	L3Approved          float64 `json:"l3Approved"`
	L4Approved          float64 `json:"l4Approved"`
	L5Approved          float64 `json:"l5Approved"`
	L6Approved          float64 `json:"l6Approved"`
}

// EmptyScorecard is the well-defined all-zero scorecard returned when a
// client has no data at all. Downstream display code never null-checks.
func EmptyScorecard() MtdScorecard {
	return MtdScorecard{
		GmvStatus:     StatusRed,
		VideoStatus:   StatusRed,
		SamplesStatus: StatusRed,
		SpendStatus:   StatusRed,
		RoiStatus:     StatusRed,
	}
}

// HasActivity reports whether any headline actual is nonzero. Used for the
// "N of M clients reporting" indicator.
func (s MtdScorecard) HasActivity() bool {
	return s.CumulativeMtdGmv > 0 || s.VideosPosted > 0 || s.TotalSamplesApproved > 0 || s.AdSpend > 0
}
