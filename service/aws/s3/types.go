package awss3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/elC0mpa/aws-explorer/model"
)

// standardStorageRateUSD is the S3 Standard per-GB-month rate used for the
// estimated bucket cost column.
const standardStorageRateUSD = 0.023

type service struct {
	cfg    aws.Config
	client *s3.Client
}

type S3Service interface {
	GetBucketUsage(ctx context.Context) ([]model.BucketUsage, error)
}
