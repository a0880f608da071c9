package orchestrator

import (
	"math"
	"sort"
	"strings"

	"github.com/elC0mpa/aws-explorer/model"
	"github.com/elC0mpa/aws-explorer/service"
	"github.com/elC0mpa/aws-explorer/utils"
)

func NewService(datasetService service.DatasetService, filterService service.FilterService, aggregationService service.AggregationService, insightService service.InsightService) *orchestratorService {
	return &orchestratorService{
		datasetService:     datasetService,
		filterService:      filterService,
		aggregationService: aggregationService,
		insightService:     insightService,
	}
}

// Orchestrate runs one full render cycle: load both snapshots, resolve the
// filter criteria from the flags and the loaded data, compute the dashboard,
// and draw it. Each invocation recomputes everything downstream of the
// cached load.
func (s *orchestratorService) Orchestrate(flags model.Flags) error {
	instances, buckets, err := s.datasetService.Load(flags.ComputePath, flags.StoragePath)
	if err != nil {
		return err
	}

	criteria := s.CriteriaFromFlags(instances, buckets, flags)
	dashboard := s.BuildDashboard(instances, buckets, criteria)

	utils.StopSpinner()

	utils.DrawSummary(dashboard.Summary)
	utils.DrawRegionCharts(dashboard.AvgCostByRegion, dashboard.StorageByRegion)
	utils.DrawCPUHistogram(dashboard.CPUDistribution)
	utils.DrawTopInstances(dashboard.TopInstances)
	utils.DrawTopBuckets(dashboard.TopBuckets)
	utils.DrawStrategyTable(dashboard.Strategies)

	if flags.ShowRaw {
		utils.DrawRawTables(dashboard.ComputeView, dashboard.StorageView)
	}

	if flags.HTMLPath != "" {
		if err := utils.WriteHTMLReport(flags.HTMLPath, dashboard); err != nil {
			return err
		}
	}

	return nil
}

// BuildDashboard is the pure compute half of a render cycle: filter both
// tables and derive every aggregate, ranking, and insight the presentation
// layer consumes. It never fails; empty views yield empty sections.
func (s *orchestratorService) BuildDashboard(instances []model.ComputeInstance, buckets []model.StorageBucket, criteria model.FilterCriteria) model.Dashboard {
	computeView := s.filterService.FilterCompute(instances, criteria)
	storageView := s.filterService.FilterStorage(buckets, criteria)

	dashboard := model.Dashboard{
		Summary:      s.insightService.Summarize(computeView, storageView),
		Strategies:   s.insightService.DeriveStrategies(computeView, storageView),
		ImpactScores: s.insightService.ImpactScores(),
		FocusSplit:   s.insightService.FocusSplit(),
		ComputeView:  computeView,
		StorageView:  storageView,
	}

	if len(computeView) > 0 {
		dashboard.AvgCostByRegion = s.aggregationService.MeanCostByRegion(computeView)
		dashboard.CPUDistribution = s.aggregationService.CPUDistribution(computeView, histogramBins)
		dashboard.TopInstances = s.aggregationService.TopInstancesByCost(computeView, topResources)
	}

	if len(storageView) > 0 {
		dashboard.StorageByRegion = s.aggregationService.TotalStorageByRegion(storageView)
		dashboard.TopBuckets = s.aggregationService.TopBucketsBySize(storageView, topResources)
	}

	return dashboard
}

// CriteriaFromFlags turns the CLI selections into concrete criteria. Unset
// region flags mean every region observed in the loaded data; unset bounds
// (NaN) mean the observed minimum or maximum.
func (s *orchestratorService) CriteriaFromFlags(instances []model.ComputeInstance, buckets []model.StorageBucket, flags model.Flags) model.FilterCriteria {
	computeRegions := SplitRegions(flags.EC2Regions)
	if len(computeRegions) == 0 {
		computeRegions = DistinctComputeRegions(instances)
	}

	storageRegions := SplitRegions(flags.S3Regions)
	if len(storageRegions) == 0 {
		storageRegions = DistinctStorageRegions(buckets)
	}

	costRange := ObservedCostRange(instances)
	if !math.IsNaN(flags.CostMin) {
		costRange.Min = flags.CostMin
	}
	if !math.IsNaN(flags.CostMax) {
		costRange.Max = flags.CostMax
	}

	cpuRange := ObservedCPURange(instances)
	if !math.IsNaN(flags.CPUMin) {
		cpuRange.Min = flags.CPUMin
	}
	if !math.IsNaN(flags.CPUMax) {
		cpuRange.Max = flags.CPUMax
	}

	return model.FilterCriteria{
		ComputeRegions: computeRegions,
		StorageRegions: storageRegions,
		CostRange:      costRange,
		CPURange:       cpuRange,
	}
}

// SplitRegions parses a comma-separated region list, dropping blanks.
func SplitRegions(raw string) []string {
	var regions []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			regions = append(regions, trimmed)
		}
	}
	return regions
}

// DistinctComputeRegions returns the sorted set of regions present in the
// compute table.
func DistinctComputeRegions(instances []model.ComputeInstance) []string {
	seen := make(map[string]bool)
	var regions []string
	for _, instance := range instances {
		if !seen[instance.Region] {
			seen[instance.Region] = true
			regions = append(regions, instance.Region)
		}
	}
	sort.Strings(regions)
	return regions
}

// DistinctStorageRegions returns the sorted set of regions present in the
// storage table.
func DistinctStorageRegions(buckets []model.StorageBucket) []string {
	seen := make(map[string]bool)
	var regions []string
	for _, bucket := range buckets {
		if !seen[bucket.Region] {
			seen[bucket.Region] = true
			regions = append(regions, bucket.Region)
		}
	}
	sort.Strings(regions)
	return regions
}

// ObservedCostRange returns the min/max hourly cost in the compute table, or
// a zero range when the table is empty.
func ObservedCostRange(instances []model.ComputeInstance) model.Range {
	return observedRange(instances, func(i model.ComputeInstance) float64 { return i.CostUSD })
}

// ObservedCPURange returns the min/max CPU utilization in the compute table.
func ObservedCPURange(instances []model.ComputeInstance) model.Range {
	return observedRange(instances, func(i model.ComputeInstance) float64 { return i.CPUUtilization })
}

func observedRange(instances []model.ComputeInstance, value func(model.ComputeInstance) float64) model.Range {
	if len(instances) == 0 {
		return model.Range{}
	}

	r := model.Range{Min: value(instances[0]), Max: value(instances[0])}
	for _, instance := range instances[1:] {
		r.Min = math.Min(r.Min, value(instance))
		r.Max = math.Max(r.Max, value(instance))
	}
	return r
}
