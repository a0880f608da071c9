package filter

import (
	"github.com/elC0mpa/aws-explorer/model"
)

type service struct{}

type FilterService interface {
	FilterCompute(instances []model.ComputeInstance, criteria model.FilterCriteria) []model.ComputeInstance
	FilterStorage(buckets []model.StorageBucket, criteria model.FilterCriteria) []model.StorageBucket
}
