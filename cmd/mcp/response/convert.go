package response

import "github.com/elC0mpa/aws-explorer/model"

// ConvertSummary converts model.Summary to response.Summary
func ConvertSummary(summary model.Summary) Summary {
	return Summary{
		InstanceCount: summary.InstanceCount,
		AvgCostUSD:    summary.AvgCostUSD,
		BucketCount:   summary.BucketCount,
		TotalSizeGB:   summary.TotalSizeGB,
	}
}

// ConvertRegionStats converts []model.RegionStat to response format
func ConvertRegionStats(stats []model.RegionStat) []RegionStat {
	result := make([]RegionStat, 0, len(stats))
	for _, stat := range stats {
		result = append(result, RegionStat{
			Region: stat.Region,
			Value:  stat.Value,
		})
	}
	return result
}

// ConvertInstances converts []model.ComputeInstance to response format
func ConvertInstances(instances []model.ComputeInstance) []Instance {
	result := make([]Instance, 0, len(instances))
	for _, instance := range instances {
		result = append(result, Instance{
			ResourceID:     instance.ResourceID,
			Region:         instance.Region,
			CostUSD:        instance.CostUSD,
			CPUUtilization: instance.CPUUtilization,
		})
	}
	return result
}

// ConvertBuckets converts []model.StorageBucket to response format
func ConvertBuckets(buckets []model.StorageBucket) []Bucket {
	result := make([]Bucket, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, Bucket{
			BucketName:  bucket.BucketName,
			Region:      bucket.Region,
			TotalSizeGB: bucket.TotalSizeGB,
			CostUSD:     bucket.CostUSD,
		})
	}
	return result
}

// ConvertStrategies converts []model.StrategyRow to response format
func ConvertStrategies(strategies []model.StrategyRow) []StrategyRow {
	result := make([]StrategyRow, 0, len(strategies))
	for _, strategy := range strategies {
		result = append(result, StrategyRow{
			Area:    strategy.Area,
			Pattern: strategy.Pattern,
			Action:  strategy.Action,
			Impact:  strategy.Impact,
		})
	}
	return result
}

// ConvertImpactScores converts []model.ImpactScore to response format
func ConvertImpactScores(scores []model.ImpactScore) []ImpactScore {
	result := make([]ImpactScore, 0, len(scores))
	for _, score := range scores {
		result = append(result, ImpactScore{
			Action:  score.Action,
			Percent: score.Percent,
		})
	}
	return result
}
