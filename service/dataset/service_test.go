package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const computeHeader = "ResourceId,Region,CostUSD,CPUUtilization\n"
const storageHeader = "BucketName,Region,TotalSizeGB,CostUSD\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func TestLoadCleansComputeRows(t *testing.T) {
	dir := t.TempDir()
	computePath := writeFile(t, dir, "compute.csv", computeHeader+
		"i-1,us-east-1,0.5,12.5\n"+
		"i-2,us-east-1,,30.0\n"+
		"i-3,eu-west-1,0.8,\n"+
		"i-4,eu-west-1,1.2,70.0\n")
	storagePath := writeFile(t, dir, "storage.csv", storageHeader+
		"bkt-a,us-east-1,100,2.3\n"+
		"bkt-b,eu-west-1,50,\n")

	svc := NewService()
	instances, buckets, err := svc.Load(computePath, storagePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(instances) != 2 {
		t.Fatalf("expected 2 instances after cleaning, got %d", len(instances))
	}
	if instances[0].ResourceID != "i-1" || instances[1].ResourceID != "i-4" {
		t.Errorf("wrong rows survived cleaning: %v", instances)
	}
	if instances[1].CostUSD != 1.2 || instances[1].CPUUtilization != 70.0 {
		t.Errorf("wrong parsed values: %+v", instances[1])
	}

	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[1].CostUSD != 0 {
		t.Errorf("empty storage cost should coerce to 0, got %v", buckets[1].CostUSD)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	goodStorage := writeFile(t, dir, "storage.csv", storageHeader+"bkt-a,us-east-1,100,2.3\n")

	tests := []struct {
		name    string
		compute string
	}{
		{
			name:    "missing file",
			compute: filepath.Join(dir, "does-not-exist.csv"),
		},
		{
			name:    "missing column",
			compute: writeFile(t, dir, "no_cpu.csv", "ResourceId,Region,CostUSD\ni-1,us-east-1,0.5\n"),
		},
		{
			name:    "malformed numeric",
			compute: writeFile(t, dir, "bad_number.csv", computeHeader+"i-1,us-east-1,abc,12.5\n"),
		},
		{
			name:    "empty file",
			compute: writeFile(t, dir, "empty.csv", ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService()
			_, _, err := svc.Load(tt.compute, goodStorage)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected LoadError, got %T: %v", err, err)
			}
			if loadErr.Path != tt.compute {
				t.Errorf("LoadError path = %q, want %q", loadErr.Path, tt.compute)
			}
		})
	}
}

func TestLoadMemoization(t *testing.T) {
	dir := t.TempDir()
	computePath := writeFile(t, dir, "compute.csv", computeHeader+"i-1,us-east-1,1.5,12.5\n")
	storagePath := writeFile(t, dir, "storage.csv", storageHeader+"bkt-a,us-east-1,100,2.3\n")

	svc := NewService()
	first, _, err := svc.Load(computePath, storagePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first[0].CostUSD != 1.5 {
		t.Fatalf("unexpected first load: %+v", first)
	}

	info, err := os.Stat(computePath)
	if err != nil {
		t.Fatal(err)
	}

	// Same byte count, same modtime: the cache key is unchanged and the
	// stale table must be served.
	writeFile(t, dir, "compute.csv", computeHeader+"i-1,us-east-1,9.5,12.5\n")
	if err := os.Chtimes(computePath, info.ModTime(), info.ModTime()); err != nil {
		t.Fatal(err)
	}

	cached, _, err := svc.Load(computePath, storagePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cached[0].CostUSD != 1.5 {
		t.Errorf("expected cached value 1.5, got %v", cached[0].CostUSD)
	}

	// A new modtime invalidates the entry.
	later := info.ModTime().Add(2 * time.Second)
	if err := os.Chtimes(computePath, later, later); err != nil {
		t.Fatal(err)
	}

	reloaded, _, err := svc.Load(computePath, storagePath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reloaded[0].CostUSD != 9.5 {
		t.Errorf("expected reloaded value 9.5, got %v", reloaded[0].CostUSD)
	}
}
