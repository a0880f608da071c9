package filter

import (
	"github.com/elC0mpa/aws-explorer/model"
)

func NewService() *service {
	return &service{}
}

// FilterCompute keeps instances whose region is accepted and whose cost and
// CPU utilization both fall inside the criteria's inclusive ranges. An empty
// accepted-region set matches nothing; a range with Min > Max matches
// nothing. Both are valid empty results, not errors.
func (s *service) FilterCompute(instances []model.ComputeInstance, criteria model.FilterCriteria) []model.ComputeInstance {
	accepted := regionSet(criteria.ComputeRegions)

	view := make([]model.ComputeInstance, 0, len(instances))
	for _, instance := range instances {
		if !accepted[instance.Region] {
			continue
		}
		if !criteria.CostRange.Contains(instance.CostUSD) {
			continue
		}
		if !criteria.CPURange.Contains(instance.CPUUtilization) {
			continue
		}
		view = append(view, instance)
	}

	return view
}

// FilterStorage keeps buckets whose region is accepted. No numeric filters
// apply to the storage dataset.
func (s *service) FilterStorage(buckets []model.StorageBucket, criteria model.FilterCriteria) []model.StorageBucket {
	accepted := regionSet(criteria.StorageRegions)

	view := make([]model.StorageBucket, 0, len(buckets))
	for _, bucket := range buckets {
		if accepted[bucket.Region] {
			view = append(view, bucket)
		}
	}

	return view
}

func regionSet(regions []string) map[string]bool {
	set := make(map[string]bool, len(regions))
	for _, region := range regions {
		set[region] = true
	}
	return set
}
