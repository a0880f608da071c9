package orchestrator

import (
	"github.com/elC0mpa/aws-explorer/model"
	"github.com/elC0mpa/aws-explorer/service"
)

const (
	// topResources is the fixed size of the "Top Resources" rankings.
	topResources = 5
	// histogramBins matches the CPU utilization distribution granularity.
	histogramBins = 20
)

type orchestratorService struct {
	datasetService     service.DatasetService
	filterService      service.FilterService
	aggregationService service.AggregationService
	insightService     service.InsightService
}

type OrchestratorService interface {
	Orchestrate(model.Flags) error
	BuildDashboard(instances []model.ComputeInstance, buckets []model.StorageBucket, criteria model.FilterCriteria) model.Dashboard
	CriteriaFromFlags(instances []model.ComputeInstance, buckets []model.StorageBucket, flags model.Flags) model.FilterCriteria
}
