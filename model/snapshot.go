package model

import "time"

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}

// InstanceInventory is a running EC2 instance discovered by the exporter.
type InstanceInventory struct {
	InstanceID   string
	Region       string
	InstanceType string
}

// InstanceMetrics carries the per-instance figures the rightsizing API
// reports. Instances without a recommendation have no metrics at all.
type InstanceMetrics struct {
	HourlyRateUSD     float64
	MaxCPUUtilization float64
}

// BucketUsage is an S3 bucket discovered by the exporter, with its summed
// object size and estimated monthly storage cost.
type BucketUsage struct {
	Name           string
	Region         string
	TotalSizeGB    float64
	MonthlyCostUSD float64
}

// SnapshotMeta describes one export run.
type SnapshotMeta struct {
	Provider      string    `json:"provider"`
	AccountID     string    `json:"account_id"`
	AccountName   string    `json:"account_name"`
	Region        string    `json:"region"`
	TakenAt       time.Time `json:"taken_at"`
	InstanceCount int       `json:"instance_count"`
	BucketCount   int       `json:"bucket_count"`
}
