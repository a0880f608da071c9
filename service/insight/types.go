package insight

import (
	"github.com/elC0mpa/aws-explorer/model"
	"github.com/elC0mpa/aws-explorer/service"
)

const (
	noComputeData = "No EC2 data for current filters"
	noStorageData = "No S3 data for current filters"
)

type insightService struct {
	aggregationService service.AggregationService
}

type InsightService interface {
	DeriveStrategies(instances []model.ComputeInstance, buckets []model.StorageBucket) []model.StrategyRow
	Summarize(instances []model.ComputeInstance, buckets []model.StorageBucket) model.Summary
	ImpactScores() []model.ImpactScore
	FocusSplit() map[string]int
}
