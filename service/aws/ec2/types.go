package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/elC0mpa/aws-explorer/model"
)

type service struct {
	client *ec2.Client
}

type EC2Service interface {
	GetRunningInstances(ctx context.Context) ([]model.InstanceInventory, error)
}
