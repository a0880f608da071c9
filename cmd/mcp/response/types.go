package response

// Summary holds the headline KPIs for the filtered view
type Summary struct {
	InstanceCount int    `json:"instance_count"`
	AvgCostUSD    string `json:"avg_cost_usd_per_hr"`
	BucketCount   int    `json:"bucket_count"`
	TotalSizeGB   string `json:"total_size_gb"`
}

// RegionStat is one region with its aggregated value
type RegionStat struct {
	Region string  `json:"region"`
	Value  float64 `json:"value"`
}

// Instance is a single EC2 row from the filtered view
type Instance struct {
	ResourceID     string  `json:"resource_id"`
	Region         string  `json:"region"`
	CostUSD        float64 `json:"cost_usd_per_hr"`
	CPUUtilization float64 `json:"cpu_utilization_percent"`
}

// Bucket is a single S3 row from the filtered view
type Bucket struct {
	BucketName  string  `json:"bucket_name"`
	Region      string  `json:"region"`
	TotalSizeGB float64 `json:"total_size_gb"`
	CostUSD     float64 `json:"cost_usd"`
}

// StrategyRow is one row of the optimization strategy matrix
type StrategyRow struct {
	Area    string `json:"area"`
	Pattern string `json:"pattern_observed"`
	Action string `json:"optimization_action"`
	Impact string `json:"expected_impact"`
}

// ImpactScore is the estimated cost reduction for one action
type ImpactScore struct {
	Action  string `json:"action"`
	Percent int    `json:"estimated_percent_reduction"`
}

// Strategies bundles the strategy matrix with its impact estimates
type Strategies struct {
	Matrix       []StrategyRow  `json:"strategies"`
	ImpactScores []ImpactScore  `json:"impact_scores"`
	FocusSplit   map[string]int `json:"focus_split"`
}

// RawData holds both filtered datasets unaggregated
type RawData struct {
	Compute []Instance `json:"compute"`
	Storage []Bucket   `json:"storage"`
}
