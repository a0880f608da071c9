package aggregate

import (
	"math"
	"reflect"
	"testing"

	"github.com/elC0mpa/aws-explorer/model"
)

func instance(id, region string, cost, cpu float64) model.ComputeInstance {
	return model.ComputeInstance{ResourceID: id, Region: region, CostUSD: cost, CPUUtilization: cpu}
}

func bucket(name, region string, size float64) model.StorageBucket {
	return model.StorageBucket{BucketName: name, Region: region, TotalSizeGB: size}
}

func TestMeanCostByRegion(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name      string
		instances []model.ComputeInstance
		want      []model.RegionStat
	}{
		{
			name: "means sorted descending",
			instances: []model.ComputeInstance{
				instance("i-1", "us-east-1", 10, 0),
				instance("i-2", "us-east-1", 20, 0),
				instance("i-3", "eu-west-1", 5, 0),
			},
			want: []model.RegionStat{
				{Region: "us-east-1", Value: 15},
				{Region: "eu-west-1", Value: 5},
			},
		},
		{
			name: "ties keep first appearance order",
			instances: []model.ComputeInstance{
				instance("i-1", "eu-west-1", 3, 0),
				instance("i-2", "us-east-1", 3, 0),
			},
			want: []model.RegionStat{
				{Region: "eu-west-1", Value: 3},
				{Region: "us-east-1", Value: 3},
			},
		},
		{
			name:      "empty view",
			instances: nil,
			want:      []model.RegionStat{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.MeanCostByRegion(tt.instances)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d stats, want %d: %v", len(got), len(tt.want), got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("stat %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMeanCostByRegionIsDeterministic(t *testing.T) {
	svc := NewService()
	instances := []model.ComputeInstance{
		instance("i-1", "b", 2, 0),
		instance("i-2", "a", 2, 0),
		instance("i-3", "c", 2, 0),
	}

	first := svc.MeanCostByRegion(instances)
	for i := 0; i < 20; i++ {
		if again := svc.MeanCostByRegion(instances); !reflect.DeepEqual(again, first) {
			t.Fatalf("run %d differed: %v vs %v", i, again, first)
		}
	}
}

func TestTotalStorageByRegion(t *testing.T) {
	svc := NewService()
	buckets := []model.StorageBucket{
		bucket("bkt-a", "us-east-1", 100),
		bucket("bkt-b", "eu-west-1", 300),
		bucket("bkt-c", "us-east-1", 150),
	}

	got := svc.TotalStorageByRegion(buckets)
	want := []model.RegionStat{
		{Region: "eu-west-1", Value: 300},
		{Region: "us-east-1", Value: 250},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTopInstancesByCost(t *testing.T) {
	svc := NewService()

	seven := []model.ComputeInstance{
		instance("i-1", "r", 1, 0),
		instance("i-2", "r", 7, 0),
		instance("i-3", "r", 3, 0),
		instance("i-4", "r", 5, 0),
		instance("i-5", "r", 2, 0),
		instance("i-6", "r", 6, 0),
		instance("i-7", "r", 4, 0),
	}

	tests := []struct {
		name      string
		instances []model.ComputeInstance
		k         int
		wantIDs   []string
	}{
		{
			name:      "seven rows clipped to five",
			instances: seven,
			k:         5,
			wantIDs:   []string{"i-2", "i-6", "i-4", "i-7", "i-3"},
		},
		{
			name: "fewer rows than k",
			instances: []model.ComputeInstance{
				instance("i-1", "r", 1, 0),
				instance("i-2", "r", 2, 0),
			},
			k:       5,
			wantIDs: []string{"i-2", "i-1"},
		},
		{
			name: "ties keep input order",
			instances: []model.ComputeInstance{
				instance("i-a", "r", 4, 0),
				instance("i-b", "r", 4, 0),
				instance("i-c", "r", 9, 0),
			},
			k:       3,
			wantIDs: []string{"i-c", "i-a", "i-b"},
		},
		{
			name:      "empty view",
			instances: nil,
			k:         5,
			wantIDs:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.TopInstancesByCost(tt.instances, tt.k)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d rows, want %d", len(got), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if got[i].ResourceID != want {
					t.Errorf("rank %d = %s, want %s", i, got[i].ResourceID, want)
				}
			}
		})
	}
}

func TestTopInstancesByCostDoesNotMutateInput(t *testing.T) {
	svc := NewService()
	instances := []model.ComputeInstance{
		instance("i-1", "r", 1, 0),
		instance("i-2", "r", 3, 0),
		instance("i-3", "r", 2, 0),
	}

	svc.TopInstancesByCost(instances, 2)

	if instances[0].ResourceID != "i-1" || instances[1].ResourceID != "i-2" || instances[2].ResourceID != "i-3" {
		t.Fatalf("input order mutated: %v", instances)
	}
}

func TestTopBucketsBySize(t *testing.T) {
	svc := NewService()
	buckets := []model.StorageBucket{
		bucket("bkt-a", "r", 10),
		bucket("bkt-b", "r", 30),
		bucket("bkt-c", "r", 20),
	}

	got := svc.TopBucketsBySize(buckets, 2)
	if len(got) != 2 || got[0].BucketName != "bkt-b" || got[1].BucketName != "bkt-c" {
		t.Errorf("unexpected ranking: %v", got)
	}
}

func TestCPUDistribution(t *testing.T) {
	svc := NewService()

	t.Run("counts sum to view size", func(t *testing.T) {
		instances := []model.ComputeInstance{
			instance("i-1", "r", 0, 5),
			instance("i-2", "r", 0, 25),
			instance("i-3", "r", 0, 50),
			instance("i-4", "r", 0, 75),
			instance("i-5", "r", 0, 95),
		}

		bins := svc.CPUDistribution(instances, 20)
		if len(bins) != 20 {
			t.Fatalf("got %d bins, want 20", len(bins))
		}

		total := 0
		for _, b := range bins {
			total += b.Count
		}
		if total != len(instances) {
			t.Errorf("bin counts sum to %d, want %d", total, len(instances))
		}
	})

	t.Run("maximum lands in last bin", func(t *testing.T) {
		instances := []model.ComputeInstance{
			instance("i-1", "r", 0, 0),
			instance("i-2", "r", 0, 100),
		}

		bins := svc.CPUDistribution(instances, 10)
		last := bins[len(bins)-1]
		if last.Count != 1 {
			t.Errorf("last bin count = %d, want 1", last.Count)
		}
		if math.Abs(last.High-100) > 1e-9 {
			t.Errorf("last bin high = %v, want 100", last.High)
		}
	})

	t.Run("identical values collapse to one bin", func(t *testing.T) {
		instances := []model.ComputeInstance{
			instance("i-1", "r", 0, 42),
			instance("i-2", "r", 0, 42),
			instance("i-3", "r", 0, 42),
		}

		bins := svc.CPUDistribution(instances, 20)
		if len(bins) != 1 {
			t.Fatalf("got %d bins, want 1", len(bins))
		}
		if bins[0].Count != 3 {
			t.Errorf("count = %d, want 3", bins[0].Count)
		}
		if bins[0].Label != "42-42" {
			t.Errorf("label = %q, want 42-42", bins[0].Label)
		}
	})

	t.Run("empty view yields nil", func(t *testing.T) {
		if bins := svc.CPUDistribution(nil, 20); bins != nil {
			t.Errorf("expected nil, got %v", bins)
		}
	})
}
