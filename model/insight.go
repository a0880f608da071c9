package model

// StrategyRow is one entry of the optimization strategy matrix. Pattern may
// embed a live aggregate (region + value) or a fixed placeholder when the
// relevant view is empty.
type StrategyRow struct {
	Area    string
	Pattern string
	Action  string
	Impact  string
}

// ImpactScore is a static estimate of the cost-reduction potential of one
// optimization action, in percent.
type ImpactScore struct {
	Action  string
	Percent int
}

// Summary holds the four dashboard KPIs. The numeric KPIs are pre-formatted
// strings so empty views render as "0.00"/"0" rather than NaN.
type Summary struct {
	InstanceCount int
	AvgCostUSD    string
	BucketCount   int
	TotalSizeGB   string
}

// Dashboard is everything one render cycle produces. It is assembled by the
// orchestrator from pure pipeline stages and handed to the presentation
// layer; nothing in it is mutated after assembly.
type Dashboard struct {
	Summary         Summary
	AvgCostByRegion []RegionStat
	StorageByRegion []RegionStat
	CPUDistribution []HistogramBin
	TopInstances    []ComputeInstance
	TopBuckets      []StorageBucket
	Strategies      []StrategyRow
	ImpactScores    []ImpactScore
	FocusSplit      map[string]int

	ComputeView []ComputeInstance
	StorageView []StorageBucket
}
