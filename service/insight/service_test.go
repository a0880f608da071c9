package insight

import (
	"testing"

	"github.com/elC0mpa/aws-explorer/model"
	"github.com/elC0mpa/aws-explorer/service/aggregate"
)

func newTestService() *insightService {
	return NewService(aggregate.NewService())
}

func TestDeriveStrategies(t *testing.T) {
	svc := newTestService()

	instances := []model.ComputeInstance{
		{ResourceID: "i-1", Region: "us-east-1", CostUSD: 1.0, CPUUtilization: 10},
		{ResourceID: "i-2", Region: "us-east-1", CostUSD: 3.0, CPUUtilization: 20},
		{ResourceID: "i-3", Region: "eu-west-1", CostUSD: 1.5, CPUUtilization: 30},
	}
	buckets := []model.StorageBucket{
		{BucketName: "bkt-a", Region: "ap-south-1", TotalSizeGB: 12345.4},
		{BucketName: "bkt-b", Region: "eu-west-1", TotalSizeGB: 500},
	}

	strategies := svc.DeriveStrategies(instances, buckets)
	if len(strategies) != 4 {
		t.Fatalf("got %d strategy rows, want 4", len(strategies))
	}

	wantAreas := []string{"EC2", "EC2", "S3", "S3"}
	for i, want := range wantAreas {
		if strategies[i].Area != want {
			t.Errorf("row %d area = %s, want %s", i, strategies[i].Area, want)
		}
	}

	wantCompute := "Highest avg hourly cost in region us-east-1 (~2.00 USD/hr)"
	if strategies[0].Pattern != wantCompute {
		t.Errorf("compute pattern = %q, want %q", strategies[0].Pattern, wantCompute)
	}

	wantStorage := "Largest total storage in region ap-south-1 (~12,345 GB)"
	if strategies[2].Pattern != wantStorage {
		t.Errorf("storage pattern = %q, want %q", strategies[2].Pattern, wantStorage)
	}
}

func TestDeriveStrategiesEmptyViews(t *testing.T) {
	svc := newTestService()

	strategies := svc.DeriveStrategies(nil, nil)
	if len(strategies) != 4 {
		t.Fatalf("got %d strategy rows, want 4", len(strategies))
	}

	if strategies[0].Pattern != "No EC2 data for current filters" {
		t.Errorf("compute placeholder = %q", strategies[0].Pattern)
	}
	if strategies[2].Pattern != "No S3 data for current filters" {
		t.Errorf("storage placeholder = %q", strategies[2].Pattern)
	}
}

func TestSummarize(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name      string
		instances []model.ComputeInstance
		buckets   []model.StorageBucket
		want      model.Summary
	}{
		{
			name: "populated views",
			instances: []model.ComputeInstance{
				{CostUSD: 1.0},
				{CostUSD: 2.0},
			},
			buckets: []model.StorageBucket{
				{TotalSizeGB: 1000.4},
				{TotalSizeGB: 234.2},
			},
			want: model.Summary{
				InstanceCount: 2,
				AvgCostUSD:    "1.50",
				BucketCount:   2,
				TotalSizeGB:   "1,235",
			},
		},
		{
			name: "empty views",
			want: model.Summary{
				InstanceCount: 0,
				AvgCostUSD:    "0.00",
				BucketCount:   0,
				TotalSizeGB:   "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Summarize(tt.instances, tt.buckets)
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestImpactScores(t *testing.T) {
	svc := newTestService()

	scores := svc.ImpactScores()
	if len(scores) != 4 {
		t.Fatalf("got %d scores, want 4", len(scores))
	}

	total := 0
	for _, score := range scores {
		total += score.Percent
	}
	if total != 100 {
		t.Errorf("scores sum to %d, want 100", total)
	}
}

func TestFocusSplit(t *testing.T) {
	svc := newTestService()

	split := svc.FocusSplit()
	if split["EC2"] != 2 || split["S3"] != 2 {
		t.Errorf("unexpected split: %v", split)
	}
}

func TestFormatThousands(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345.4, "12,345"},
		{12345.6, "12,346"},
		{1234567, "1,234,567"},
		{-54321, "-54,321"},
	}

	for _, tt := range tests {
		if got := formatThousands(tt.in); got != tt.want {
			t.Errorf("formatThousands(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
