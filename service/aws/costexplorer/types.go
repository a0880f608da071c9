package awscostexplorer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/aws-explorer/model"
)

type service struct {
	client *costexplorer.Client
}

type CostService interface {
	GetInstanceMetrics(ctx context.Context) (map[string]model.InstanceMetrics, error)
}
