package awscostexplorer

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/aws-explorer/model"
)

func NewService(awsconfig aws.Config) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GetInstanceMetrics pulls the EC2 rightsizing recommendations and extracts,
// per instance, the hourly on-demand rate and the max CPU utilization Cost
// Explorer observed. Instances without a recommendation are simply absent
// from the map; the exporter leaves their columns empty.
func (s *service) GetInstanceMetrics(ctx context.Context) (map[string]model.InstanceMetrics, error) {
	metrics := make(map[string]model.InstanceMetrics)

	input := &costexplorer.GetRightsizingRecommendationInput{
		Service: aws.String("AmazonEC2"),
	}

	for {
		output, err := s.client.GetRightsizingRecommendation(ctx, input)
		if err != nil {
			return nil, err
		}

		for _, recommendation := range output.RightsizingRecommendations {
			current := recommendation.CurrentInstance
			if current == nil || current.ResourceId == nil {
				continue
			}

			var m model.InstanceMetrics
			if current.ResourceDetails != nil && current.ResourceDetails.EC2ResourceDetails != nil {
				m.HourlyRateUSD = parseFloat(current.ResourceDetails.EC2ResourceDetails.HourlyOnDemandRate)
			}
			if current.ResourceUtilization != nil && current.ResourceUtilization.EC2ResourceUtilization != nil {
				m.MaxCPUUtilization = parseFloat(current.ResourceUtilization.EC2ResourceUtilization.MaxCpuUtilizationPercentage)
			}

			metrics[aws.ToString(current.ResourceId)] = m
		}

		if output.NextPageToken == nil || *output.NextPageToken == "" {
			break
		}
		input.NextPageToken = output.NextPageToken
	}

	return metrics, nil
}

func parseFloat(raw *string) float64 {
	if raw == nil {
		return 0
	}
	v, _ := strconv.ParseFloat(*raw, 64)
	return v
}
