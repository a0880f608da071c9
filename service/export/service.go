package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/elC0mpa/aws-explorer/model"
)

func NewService() *service {
	return &service{}
}

// WriteComputeCSV writes the compute snapshot. Instances with no rightsizing
// metrics get empty CostUSD/CPUUtilization cells; the dashboard's loader
// drops such rows during cleaning.
func (s *service) WriteComputeCSV(path string, inventory []model.InstanceInventory, metrics map[string]model.InstanceMetrics) error {
	rows := [][]string{{"ResourceId", "Region", "CostUSD", "CPUUtilization"}}

	for _, instance := range inventory {
		cost, cpu := "", ""
		if m, ok := metrics[instance.InstanceID]; ok {
			cost = formatFloat(m.HourlyRateUSD)
			cpu = formatFloat(m.MaxCPUUtilization)
		}
		rows = append(rows, []string{instance.InstanceID, instance.Region, cost, cpu})
	}

	return writeCSV(path, rows)
}

// WriteStorageCSV writes the storage snapshot.
func (s *service) WriteStorageCSV(path string, buckets []model.BucketUsage) error {
	rows := [][]string{{"BucketName", "Region", "TotalSizeGB", "CostUSD"}}

	for _, bucket := range buckets {
		rows = append(rows, []string{
			bucket.Name,
			bucket.Region,
			formatFloat(bucket.TotalSizeGB),
			formatFloat(bucket.MonthlyCostUSD),
		})
	}

	return writeCSV(path, rows)
}

// WriteMeta writes the snapshot run description next to the CSVs.
func (s *service) WriteMeta(path string, meta model.SnapshotMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot metadata: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot metadata: %w", err)
	}

	return nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
