package awss3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/elC0mpa/aws-explorer/model"
)

func NewService(awsconfig aws.Config) *service {
	return &service{
		cfg:    awsconfig,
		client: s3.NewFromConfig(awsconfig),
	}
}

// GetBucketUsage lists every bucket in the account, resolves its region, and
// sums its object sizes. Cost is estimated at the standard storage rate;
// operators with billing exports can overwrite the column before loading.
func (s *service) GetBucketUsage(ctx context.Context) ([]model.BucketUsage, error) {
	output, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, err
	}

	var usage []model.BucketUsage
	for _, bucket := range output.Buckets {
		name := aws.ToString(bucket.Name)

		region, err := s.bucketRegion(ctx, name)
		if err != nil {
			return nil, err
		}

		sizeGB, err := s.bucketSizeGB(ctx, name, region)
		if err != nil {
			return nil, err
		}

		usage = append(usage, model.BucketUsage{
			Name:           name,
			Region:         region,
			TotalSizeGB:    sizeGB,
			MonthlyCostUSD: sizeGB * standardStorageRateUSD,
		})
	}

	return usage, nil
}

func (s *service) bucketRegion(ctx context.Context, name string) (string, error) {
	output, err := s.client.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(name),
	})
	if err != nil {
		return "", err
	}

	// An empty location constraint means the legacy default region.
	if output.LocationConstraint == "" {
		return "us-east-1", nil
	}
	return string(output.LocationConstraint), nil
}

// bucketSizeGB sums the object sizes with a client scoped to the bucket's
// own region, since listing cross-region through the default client fails
// with a redirect.
func (s *service) bucketSizeGB(ctx context.Context, name, region string) (float64, error) {
	regional := s3.NewFromConfig(s.cfg, func(o *s3.Options) {
		o.Region = region
	})

	var totalBytes int64
	paginator := s3.NewListObjectsV2Paginator(regional, &s3.ListObjectsV2Input{
		Bucket: aws.String(name),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		for _, object := range page.Contents {
			totalBytes += aws.ToInt64(object.Size)
		}
	}

	return float64(totalBytes) / (1024 * 1024 * 1024), nil
}
