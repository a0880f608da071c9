package service

import (
	"github.com/elC0mpa/aws-explorer/model"
)

// DatasetService loads and cleans the two CSV snapshots. Results are
// memoized per (path, modtime) so repeated loads of unchanged files are free.
type DatasetService interface {
	Load(computePath, storagePath string) ([]model.ComputeInstance, []model.StorageBucket, error)
}

// FilterService produces filtered views. Pure: the input slices are never
// mutated.
type FilterService interface {
	FilterCompute(instances []model.ComputeInstance, criteria model.FilterCriteria) []model.ComputeInstance
	FilterStorage(buckets []model.StorageBucket, criteria model.FilterCriteria) []model.StorageBucket
}

// AggregationService computes grouped statistics and rankings over filtered
// views. Grouped results are sorted by value descending. All operations are
// deterministic: ties keep input order.
type AggregationService interface {
	MeanCostByRegion(instances []model.ComputeInstance) []model.RegionStat
	TotalStorageByRegion(buckets []model.StorageBucket) []model.RegionStat
	TopInstancesByCost(instances []model.ComputeInstance, k int) []model.ComputeInstance
	TopBucketsBySize(buckets []model.StorageBucket, k int) []model.StorageBucket
	CPUDistribution(instances []model.ComputeInstance, bins int) []model.HistogramBin
}

// InsightService derives the strategy matrix and the KPI summary from
// filtered views. Empty views produce placeholder text, never errors.
type InsightService interface {
	DeriveStrategies(instances []model.ComputeInstance, buckets []model.StorageBucket) []model.StrategyRow
	Summarize(instances []model.ComputeInstance, buckets []model.StorageBucket) model.Summary
	ImpactScores() []model.ImpactScore
	FocusSplit() map[string]int
}
