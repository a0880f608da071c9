package aggregate

import (
	"github.com/elC0mpa/aws-explorer/model"
)

type service struct{}

// AggregationService computes grouped statistics over filtered views. The
// grouped operations are defined for non-empty views; callers are expected
// to check emptiness first and substitute a "no data" presentation. On an
// empty view they return an empty result rather than failing.
type AggregationService interface {
	MeanCostByRegion(instances []model.ComputeInstance) []model.RegionStat
	TotalStorageByRegion(buckets []model.StorageBucket) []model.RegionStat
	TopInstancesByCost(instances []model.ComputeInstance, k int) []model.ComputeInstance
	TopBucketsBySize(buckets []model.StorageBucket, k int) []model.StorageBucket
	CPUDistribution(instances []model.ComputeInstance, bins int) []model.HistogramBin
}
