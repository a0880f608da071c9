package aggregate

import (
	"fmt"
	"math"
	"sort"

	"github.com/elC0mpa/aws-explorer/model"
)

func NewService() *service {
	return &service{}
}

// MeanCostByRegion returns the average hourly cost per region, sorted by
// value descending.
func (s *service) MeanCostByRegion(instances []model.ComputeInstance) []model.RegionStat {
	return groupStat(instances,
		func(i model.ComputeInstance) string { return i.Region },
		func(i model.ComputeInstance) float64 { return i.CostUSD },
		opMean)
}

// TotalStorageByRegion returns the summed bucket size per region, sorted by
// value descending.
func (s *service) TotalStorageByRegion(buckets []model.StorageBucket) []model.RegionStat {
	return groupStat(buckets,
		func(b model.StorageBucket) string { return b.Region },
		func(b model.StorageBucket) float64 { return b.TotalSizeGB },
		opSum)
}

// TopInstancesByCost returns the k most expensive instances, costliest
// first. Ties keep their input order; k is clipped to the view size.
func (s *service) TopInstancesByCost(instances []model.ComputeInstance, k int) []model.ComputeInstance {
	return topK(instances, k, func(i model.ComputeInstance) float64 { return i.CostUSD })
}

// TopBucketsBySize returns the k largest buckets, largest first.
func (s *service) TopBucketsBySize(buckets []model.StorageBucket, k int) []model.StorageBucket {
	return topK(buckets, k, func(b model.StorageBucket) float64 { return b.TotalSizeGB })
}

// CPUDistribution buckets the view's CPU utilization values into equal-width
// bins spanning [min, max] observed in the view. The last bin includes the
// maximum. Returns nil for an empty view.
func (s *service) CPUDistribution(instances []model.ComputeInstance, bins int) []model.HistogramBin {
	if len(instances) == 0 || bins <= 0 {
		return nil
	}

	lo, hi := instances[0].CPUUtilization, instances[0].CPUUtilization
	for _, instance := range instances[1:] {
		lo = math.Min(lo, instance.CPUUtilization)
		hi = math.Max(hi, instance.CPUUtilization)
	}

	// All values identical: a single bin holds everything.
	if hi == lo {
		return []model.HistogramBin{{
			Label: binLabel(lo, hi),
			Low:   lo,
			High:  hi,
			Count: len(instances),
		}}
	}

	width := (hi - lo) / float64(bins)
	result := make([]model.HistogramBin, bins)
	for i := range result {
		low := lo + float64(i)*width
		high := low + width
		if i == bins-1 {
			high = hi
		}
		result[i] = model.HistogramBin{Label: binLabel(low, high), Low: low, High: high}
	}

	for _, instance := range instances {
		idx := int((instance.CPUUtilization - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		result[idx].Count++
	}

	return result
}

type op int

const (
	opMean op = iota
	opSum
)

// groupStat groups rows by key, folds value with op, and sorts the groups by
// value descending. The sort is stable: groups that tie keep the order in
// which their key first appeared, so repeated runs over identical input
// produce identical output.
func groupStat[T any](rows []T, key func(T) string, value func(T) float64, o op) []model.RegionStat {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, row := range rows {
		k := key(row)
		if _, seen := sums[k]; !seen {
			order = append(order, k)
		}
		sums[k] += value(row)
		counts[k]++
	}

	stats := make([]model.RegionStat, 0, len(order))
	for _, k := range order {
		v := sums[k]
		if o == opMean {
			v /= float64(counts[k])
		}
		stats = append(stats, model.RegionStat{Region: k, Value: v})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Value > stats[j].Value
	})

	return stats
}

// topK returns the k rows with the largest value, descending, ties in input
// order, k clipped to the row count.
func topK[T any](rows []T, k int, value func(T) float64) []T {
	ranked := make([]T, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		return value(ranked[i]) > value(ranked[j])
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	if k < 0 {
		k = 0
	}

	return ranked[:k]
}

func binLabel(low, high float64) string {
	return fmt.Sprintf("%.0f-%.0f", low, high)
}
