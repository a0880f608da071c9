package utils

import (
	"github.com/elC0mpa/aws-explorer/model"
)

// The aggregation engine hands back top-k rankings largest-first. Bar charts
// grow left to right, so the bars are re-ordered smallest-first here to make
// the largest bar read at the top of the list. This reorder is purely
// presentational; the ranking itself stays descending everywhere else.

// AscendingByCost returns a reversed copy of a descending cost ranking.
func AscendingByCost(instances []model.ComputeInstance) []model.ComputeInstance {
	out := make([]model.ComputeInstance, len(instances))
	for i, instance := range instances {
		out[len(instances)-1-i] = instance
	}
	return out
}

// AscendingBySize returns a reversed copy of a descending size ranking.
func AscendingBySize(buckets []model.StorageBucket) []model.StorageBucket {
	out := make([]model.StorageBucket, len(buckets))
	for i, bucket := range buckets {
		out[len(buckets)-1-i] = bucket
	}
	return out
}
