package awsec2

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/aws-explorer/model"
)

func NewService(awsconfig aws.Config) *service {
	client := ec2.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GetRunningInstances lists every running instance visible to the client's
// region. The instance region is derived from its availability zone.
func (s *service) GetRunningInstances(ctx context.Context) ([]model.InstanceInventory, error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("instance-state-name"),
				Values: []string{"running"},
			},
		},
	}

	var inventory []model.InstanceInventory

	paginator := ec2.NewDescribeInstancesPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				inventory = append(inventory, model.InstanceInventory{
					InstanceID:   aws.ToString(instance.InstanceId),
					Region:       regionFromAZ(instance.Placement),
					InstanceType: string(instance.InstanceType),
				})
			}
		}
	}

	return inventory, nil
}

// regionFromAZ strips the zone letter, e.g. "us-east-1a" -> "us-east-1".
func regionFromAZ(placement *types.Placement) string {
	if placement == nil {
		return ""
	}
	az := aws.ToString(placement.AvailabilityZone)
	return strings.TrimRight(az, "abcdefghijklmnopqrstuvwxyz")
}
