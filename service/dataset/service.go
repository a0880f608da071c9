package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/elC0mpa/aws-explorer/model"
)

func NewService() *service {
	return &service{
		compute: make(map[cacheKey][]model.ComputeInstance),
		storage: make(map[cacheKey][]model.StorageBucket),
	}
}

// Load reads both snapshots into memory, applying the cleaning rules:
// compute rows with an empty CostUSD or CPUUtilization are dropped, storage
// rows with an empty CostUSD are coerced to zero. The cleaned tables are
// cached per (path, modtime) and must be treated as read-only by callers.
func (s *service) Load(computePath, storagePath string) ([]model.ComputeInstance, []model.StorageBucket, error) {
	instances, err := s.loadCompute(computePath)
	if err != nil {
		return nil, nil, err
	}

	buckets, err := s.loadStorage(storagePath)
	if err != nil {
		return nil, nil, err
	}

	return instances, buckets, nil
}

func (s *service) loadCompute(path string) ([]model.ComputeInstance, error) {
	key, err := fileKey(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	s.mu.Lock()
	cached, ok := s.compute[key]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	rows, idx, err := readTable(path, computeColumns)
	if err != nil {
		return nil, err
	}

	var instances []model.ComputeInstance
	for n, row := range rows {
		// Cleaning: rows missing cost or utilization carry no signal
		// and are dropped, matching the snapshot exporter's contract.
		if row[idx["CostUSD"]] == "" || row[idx["CPUUtilization"]] == "" {
			continue
		}

		cost, err := parseField(row[idx["CostUSD"]], "CostUSD", n)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		cpu, err := parseField(row[idx["CPUUtilization"]], "CPUUtilization", n)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		instances = append(instances, model.ComputeInstance{
			ResourceID:     row[idx["ResourceId"]],
			Region:         row[idx["Region"]],
			CostUSD:        cost,
			CPUUtilization: cpu,
		})
	}

	s.mu.Lock()
	s.compute[key] = instances
	s.mu.Unlock()

	return instances, nil
}

func (s *service) loadStorage(path string) ([]model.StorageBucket, error) {
	key, err := fileKey(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	s.mu.Lock()
	cached, ok := s.storage[key]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	rows, idx, err := readTable(path, storageColumns)
	if err != nil {
		return nil, err
	}

	var buckets []model.StorageBucket
	for n, row := range rows {
		size, err := parseField(row[idx["TotalSizeGB"]], "TotalSizeGB", n)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		// Cleaning: a bucket with no cost figure is free until proven
		// otherwise.
		cost := 0.0
		if raw := row[idx["CostUSD"]]; raw != "" {
			cost, err = parseField(raw, "CostUSD", n)
			if err != nil {
				return nil, &LoadError{Path: path, Err: err}
			}
		}

		buckets = append(buckets, model.StorageBucket{
			BucketName:  row[idx["BucketName"]],
			Region:      row[idx["Region"]],
			TotalSizeGB: size,
			CostUSD:     cost,
		})
	}

	s.mu.Lock()
	s.storage[key] = buckets
	s.mu.Unlock()

	return buckets, nil
}

func fileKey(path string) (cacheKey, error) {
	info, err := os.Stat(path)
	if err != nil {
		return cacheKey{}, err
	}
	return cacheKey{path: path, modTime: info.ModTime().UnixNano(), size: info.Size()}, nil
}

// readTable parses a CSV file and validates that every required column is
// present, returning the data rows and a name→index map for the header.
func readTable(path string, required []string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, nil, &LoadError{Path: path, Err: fmt.Errorf("file has no header row")}
	}

	idx := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		idx[name] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, nil, &LoadError{Path: path, Err: fmt.Errorf("missing required column %q", name)}
		}
	}

	return records[1:], idx, nil
}

func parseField(raw, column string, row int) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("row %d: column %s: invalid number %q", row+2, column, raw)
	}
	return v, nil
}
