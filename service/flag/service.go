package flag

import (
	"flag"
	"fmt"
	"math"

	"github.com/elC0mpa/aws-explorer/model"
)

type service struct{}

func NewService() *service {
	return &service{}
}

// GetParsedFlags parses the dashboard's CLI selections. Region flags default
// to every region observed in the data and range flags to the observed
// bounds; both defaults are resolved later against the loaded tables, so the
// unset markers here are the empty string and NaN.
func (s *service) GetParsedFlags() (model.Flags, error) {
	computePath := flag.String("compute", "aws_resources_compute.csv", "Compute (EC2) snapshot CSV")
	storagePath := flag.String("storage", "aws_resources_s3.csv", "Storage (S3) snapshot CSV")

	ec2Regions := flag.String("ec2-regions", "", "Comma-separated EC2 regions to include (default: all)")
	s3Regions := flag.String("s3-regions", "", "Comma-separated S3 regions to include (default: all)")

	costMin := flag.Float64("cost-min", math.NaN(), "Minimum EC2 cost, USD/hr (default: observed minimum)")
	costMax := flag.Float64("cost-max", math.NaN(), "Maximum EC2 cost, USD/hr (default: observed maximum)")
	cpuMin := flag.Float64("cpu-min", math.NaN(), "Minimum EC2 CPU utilization, percent (default: observed minimum)")
	cpuMax := flag.Float64("cpu-max", math.NaN(), "Maximum EC2 CPU utilization, percent (default: observed maximum)")

	showRaw := flag.Bool("show-raw", false, "Print the filtered raw tables")
	htmlPath := flag.String("html", "", "Also write an HTML report to this path")

	flag.Parse()

	if *computePath == "" || *storagePath == "" {
		return model.Flags{}, fmt.Errorf("both -compute and -storage paths are required")
	}

	return model.Flags{
		ComputePath: *computePath,
		StoragePath: *storagePath,
		EC2Regions:  *ec2Regions,
		S3Regions:   *s3Regions,
		CostMin:     *costMin,
		CostMax:     *costMax,
		CPUMin:      *cpuMin,
		CPUMax:      *cpuMax,
		ShowRaw:     *showRaw,
		HTMLPath:    *htmlPath,
	}, nil
}
