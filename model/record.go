package model

// ComputeInstance is one row of the compute dataset: a single EC2 instance
// with its hourly cost and observed CPU utilization.
type ComputeInstance struct {
	ResourceID     string
	Region         string
	CostUSD        float64
	CPUUtilization float64
}

// StorageBucket is one row of the storage dataset: a single S3 bucket with
// its total size and monthly cost.
type StorageBucket struct {
	BucketName  string
	Region      string
	TotalSizeGB float64
	CostUSD     float64
}
