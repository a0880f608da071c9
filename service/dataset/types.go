package dataset

import (
	"fmt"
	"sync"

	"github.com/elC0mpa/aws-explorer/model"
)

// Required header columns for each dataset. Extra columns are ignored.
var (
	computeColumns = []string{"ResourceId", "Region", "CostUSD", "CPUUtilization"}
	storageColumns = []string{"BucketName", "Region", "TotalSizeGB", "CostUSD"}
)

// LoadError is the single fatal error class of the pipeline: a dataset file
// that is missing, unreadable, or structurally invalid. Everything downstream
// of a successful load is total.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// cacheKey identifies a parsed file by path and modification time, so an
// edited file is reloaded and an unchanged one is served from memory.
type cacheKey struct {
	path    string
	modTime int64
	size    int64
}

type service struct {
	mu      sync.Mutex
	compute map[cacheKey][]model.ComputeInstance
	storage map[cacheKey][]model.StorageBucket
}

type DatasetService interface {
	Load(computePath, storagePath string) ([]model.ComputeInstance, []model.StorageBucket, error)
}
