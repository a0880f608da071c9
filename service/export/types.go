package export

import (
	"github.com/elC0mpa/aws-explorer/model"
)

type service struct{}

// ExportService writes the dashboard's two CSV inputs plus a metadata file
// describing the snapshot run.
type ExportService interface {
	WriteComputeCSV(path string, inventory []model.InstanceInventory, metrics map[string]model.InstanceMetrics) error
	WriteStorageCSV(path string, buckets []model.BucketUsage) error
	WriteMeta(path string, meta model.SnapshotMeta) error
}
