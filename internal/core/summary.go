package core

// ClientMtdSummary flattens a client's scorecard together with its identity
// and the raw daily series (the pod and CEO views need the daily series for
// heatmaps and yesterday lookups).
type ClientMtdSummary struct {
	ClientSlug string `json:"clientSlug"`
	ClientName string `json:"clientName"`

	CumulativeMtdGmv    float64 `json:"cumulativeMtdGmv"`
	GmvTargetMonth      float64 `json:"gmvTargetMonth"`
	GmvPacing           float64 `json:"gmvPacing"`
	GmvStatus           Status  `json:"gmvStatus"`
	ProjectedMonthlyGmv float64 `json:"projectedMonthlyGmv"`

	VideosPosted         float64 `json:"videosPosted"`
	MonthlyVideoTarget   float64 `json:"monthlyVideoTarget"`
	TotalSamplesApproved float64 `json:"totalSamplesApproved"`
	TargetSamplesGoals   float64 `json:"targetSamplesGoals"`
	AdSpend              float64 `json:"adSpend"`
	SpendTarget          float64 `json:"spendTarget"`
	Roi                  float64 `json:"roi"`
	RoiTarget            float64 `json:"roiTarget"`

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

	DailyData []DailyMetric `json:"dailyData"`
}

// PodSummary aggregates a pod's clients. Totals are sums; GMV pacing is
// recomputed from the summed actual and target, never averaged across
// clients; ROI is a mean over clients with nonzero ROI.
type PodSummary struct {
	PodSlug string `json:"podSlug"`
	PodName string `json:"podName"`

	TotalMtdGmv         float64 `json:"totalMtdGmv"`
	TotalMtdTarget      float64 `json:"totalMtdTarget"`
	GmvPacing           float64 `json:"gmvPacing"`
	GmvStatus           Status  `json:"gmvStatus"`
	ProjectedMonthlyGmv float64 `json:"projectedMonthlyGmv"`

	TotalVideosPosted    float64 `json:"totalVideosPosted"`
	TotalVideoTarget     float64 `json:"totalVideoTarget"`
	TotalSamplesApproved float64 `json:"totalSamplesApproved"`
	TotalSamplesTarget   float64 `json:"totalSamplesTarget"`
	TotalAdSpend         float64 `json:"totalAdSpend"`
	TotalSpendTarget     float64 `json:"totalSpendTarget"`
	AvgRoi               float64 `json:"avgRoi"`

	TotalSampleRequests  float64 `json:"totalSampleRequests"`
	TotalSamplesDecline  float64 `json:"totalSamplesDecline"`
	TotalAffiliatesAdded float64 `json:"totalAffiliatesAdded"`
	TotalContentPending  float64 `json:"totalContentPending"`
	TotalInvitesSent     float64 `json:"totalInvitesSent"`
	TotalSparkCodes      float64 `json:"totalSparkCodes"`

	ClientsReporting int `json:"clientsReporting"`
	ClientsTotal     int `json:"clientsTotal"`

	Clients []ClientMtdSummary `json:"clients"`
}

// ClientResponse is the payload behind /api/client/{slug}. WeekLabels are
// positional: WeekLabels[i] names the date range of WeeklyData[i].
type ClientResponse struct {
	ClientName   string             `json:"clientName"`
	MtdScorecard MtdScorecard       `json:"mtdScorecard"`
	WeeklyData   []WeeklyRollup     `json:"weeklyData"`
	WeekLabels   []string           `json:"weekLabels"`
	MonthlyData  []MonthlyAggregate `json:"monthlyData"`
	SkuBreakdown []SkuData          `json:"skuBreakdown,omitempty"`
	LastUpdated  string             `json:"lastUpdated"`
}

// PodResponse is the payload behind /api/pod/{slug}.
type PodResponse struct {
	PodName          string             `json:"podName"`
	PodSlug          string             `json:"podSlug"`
	Clients          []ClientMtdSummary `json:"clients"`
	WeeklyData       []WeeklyRollup     `json:"weeklyData"`
	WeekLabels       []string           `json:"weekLabels"`
	ClientsReporting int                `json:"clientsReporting"`
	ClientsTotal     int                `json:"clientsTotal"`
	LastUpdated      string             `json:"lastUpdated"`
}

// CompanyResponse is the payload behind /api/ceo.
//
// It exposes two forward/backward KPIs that answer different questions:
// ProjectedAnnualGmv extrapolates the current month's daily run rate, while
// YtdGmv sums what has actually landed since January and is compared
// against the annual target pro-rated by day of year.
type CompanyResponse struct {
	CompanyMtdGmv       float64 `json:"companyMtdGmv"`
	CompanyMtdTarget    float64 `json:"companyMtdTarget"`
	CompanyGmvPacing    float64 `json:"companyGmvPacing"`
	CompanyGmvStatus    Status  `json:"companyGmvStatus"`
	ProjectedMonthlyGmv float64 `json:"projectedMonthlyGmv"`

	AnnualTarget       float64 `json:"annualTarget"`
	ProjectedAnnualGmv float64 `json:"projectedAnnualGmv"`

	YtdGmv    float64 `json:"ytdGmv"`
	YtdTarget float64 `json:"ytdTarget"`
	YtdPacing float64 `json:"ytdPacing"`
	YtdStatus Status  `json:"ytdStatus"`

	Pods       []PodSummary       `json:"pods"`
	AllClients []ClientMtdSummary `json:"allClients"`

	LastUpdated string `json:"lastUpdated"`
}
