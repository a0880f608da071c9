package insight

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/elC0mpa/aws-explorer/model"
	"github.com/elC0mpa/aws-explorer/service"
)

func NewService(aggregationService service.AggregationService) *insightService {
	return &insightService{
		aggregationService: aggregationService,
	}
}

// DeriveStrategies builds the optimization strategy matrix: always exactly
// four rows, two per area, EC2 first. The first row of each area embeds the
// extremal region of a live aggregate; when the relevant view is empty it
// carries a fixed placeholder instead. The remaining rows are static advice.
// Ties for the extremal region resolve to whichever group the aggregation's
// stable descending sort places first.
func (s *insightService) DeriveStrategies(instances []model.ComputeInstance, buckets []model.StorageBucket) []model.StrategyRow {
	computePattern := noComputeData
	if len(instances) > 0 {
		avgCost := s.aggregationService.MeanCostByRegion(instances)
		top := avgCost[0]
		computePattern = fmt.Sprintf("Highest avg hourly cost in region %s (~%.2f USD/hr)", top.Region, top.Value)
	}

	storagePattern := noStorageData
	if len(buckets) > 0 {
		totalStorage := s.aggregationService.TotalStorageByRegion(buckets)
		top := totalStorage[0]
		storagePattern = fmt.Sprintf("Largest total storage in region %s (~%s GB)", top.Region, formatThousands(top.Value))
	}

	return []model.StrategyRow{
		{
			Area:    "EC2",
			Pattern: computePattern,
			Action:  "Rightsize instances or move flexible workloads to cheaper regions.",
			Impact:  "Lower compute spend while keeping performance acceptable.",
		},
		{
			Area:    "EC2",
			Pattern: "Under-utilized instances with low CPU but non-trivial cost.",
			Action:  "Downsize instance types or schedule shutdown outside business hours.",
			Impact:  "Avoid paying for idle capacity.",
		},
		{
			Area:    "S3",
			Pattern: storagePattern,
			Action:  "Use lifecycle rules to move cold data to STANDARD_IA/GLACIER and expire old objects.",
			Impact:  "Reduce monthly storage cost, especially for archival data.",
		},
		{
			Area:    "S3",
			Pattern: "Potential growth from versioning and duplicate copies.",
			Action:  "Review versioning; clean up non-current versions and unnecessary replicas.",
			Impact:  "Control long-term storage growth and cost.",
		},
	}
}

// Summarize computes the four KPIs. The numeric KPIs are formatted here so
// an empty view renders as "0.00"/"0" instead of NaN.
func (s *insightService) Summarize(instances []model.ComputeInstance, buckets []model.StorageBucket) model.Summary {
	avgCost := "0.00"
	if len(instances) > 0 {
		var total float64
		for _, instance := range instances {
			total += instance.CostUSD
		}
		avgCost = fmt.Sprintf("%.2f", total/float64(len(instances)))
	}

	totalSize := "0"
	if len(buckets) > 0 {
		var total float64
		for _, bucket := range buckets {
			total += bucket.TotalSizeGB
		}
		totalSize = formatThousands(total)
	}

	return model.Summary{
		InstanceCount: len(instances),
		AvgCostUSD:    avgCost,
		BucketCount:   len(buckets),
		TotalSizeGB:   totalSize,
	}
}

// ImpactScores returns the static cost-reduction estimates for the four
// strategy actions. Filter independent.
func (s *insightService) ImpactScores() []model.ImpactScore {
	return []model.ImpactScore{
		{Action: "Rightsizing EC2 / Region Move", Percent: 35},
		{Action: "EC2 Scheduling Idle Instances", Percent: 20},
		{Action: "S3 Lifecycle Tiering", Percent: 30},
		{Action: "S3 Versioning Cleanup", Percent: 15},
	}
}

// FocusSplit returns the strategy count per area.
func (s *insightService) FocusSplit() map[string]int {
	return map[string]int{"EC2": 2, "S3": 2}
}

// formatThousands renders v rounded to an integer with comma separators,
// e.g. 12345.4 -> "12,345".
func formatThousands(v float64) string {
	raw := strconv.FormatFloat(math.Round(v), 'f', 0, 64)

	neg := strings.HasPrefix(raw, "-")
	if neg {
		raw = raw[1:]
	}

	var b strings.Builder
	lead := len(raw) % 3
	if lead > 0 {
		b.WriteString(raw[:lead])
	}
	for i := lead; i < len(raw); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(raw[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
