package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/elC0mpa/aws-explorer/model"
	awsconfig "github.com/elC0mpa/aws-explorer/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-explorer/service/aws/costexplorer"
	awsec2 "github.com/elC0mpa/aws-explorer/service/aws/ec2"
	awss3 "github.com/elC0mpa/aws-explorer/service/aws/s3"
	awssts "github.com/elC0mpa/aws-explorer/service/aws/sts"
	"github.com/elC0mpa/aws-explorer/service/export"
)

// The exporter takes a one-shot snapshot of a live account and writes the
// two CSVs the dashboard consumes, plus a metadata JSON describing the run.
func main() {
	region := flag.String("region", "us-east-1", "AWS region")
	profile := flag.String("profile", "", "AWS profile configuration")
	computePath := flag.String("compute", "aws_resources_compute.csv", "Compute snapshot output path")
	storagePath := flag.String("storage", "aws_resources_s3.csv", "Storage snapshot output path")
	metaPath := flag.String("meta", "snapshot_meta.json", "Snapshot metadata output path")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, *region, *profile)
	if err != nil {
		logger.Error("failed to configure AWS", slog.String("error", err.Error()))
		os.Exit(1)
	}

	stsService := awssts.NewService(awsCfg)
	ec2Service := awsec2.NewService(awsCfg)
	costService := awscostexplorer.NewService(awsCfg)
	s3Service := awss3.NewService(awsCfg)
	exportService := export.NewService()

	accountInfo, err := stsService.GetAccountInfo(ctx)
	if err != nil {
		logger.Error("failed to resolve caller identity", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("taking snapshot", slog.String("account", accountInfo.AccountID), slog.String("region", *region))

	inventory, err := ec2Service.GetRunningInstances(ctx)
	if err != nil {
		logger.Error("failed to list instances", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("collected instances", slog.Int("count", len(inventory)))

	metrics, err := costService.GetInstanceMetrics(ctx)
	if err != nil {
		logger.Error("failed to fetch rightsizing metrics", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("collected instance metrics", slog.Int("count", len(metrics)))

	buckets, err := s3Service.GetBucketUsage(ctx)
	if err != nil {
		logger.Error("failed to list buckets", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("collected buckets", slog.Int("count", len(buckets)))

	if err := exportService.WriteComputeCSV(*computePath, inventory, metrics); err != nil {
		logger.Error("failed to write compute snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := exportService.WriteStorageCSV(*storagePath, buckets); err != nil {
		logger.Error("failed to write storage snapshot", slog.String("error", err.Error()))
		os.Exit(1)
	}

	meta := model.SnapshotMeta{
		Provider:      accountInfo.Provider,
		AccountID:     accountInfo.AccountID,
		AccountName:   accountInfo.AccountName,
		Region:        *region,
		TakenAt:       time.Now().UTC(),
		InstanceCount: len(inventory),
		BucketCount:   len(buckets),
	}
	if err := exportService.WriteMeta(*metaPath, meta); err != nil {
		logger.Error("failed to write snapshot metadata", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("snapshot complete",
		slog.String("compute", *computePath),
		slog.String("storage", *storagePath),
		slog.String("meta", *metaPath))
}
