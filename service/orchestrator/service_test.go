package orchestrator

import (
	"math"
	"reflect"
	"testing"

	"github.com/elC0mpa/aws-explorer/model"
	"github.com/elC0mpa/aws-explorer/service/aggregate"
	"github.com/elC0mpa/aws-explorer/service/dataset"
	"github.com/elC0mpa/aws-explorer/service/filter"
	"github.com/elC0mpa/aws-explorer/service/insight"
)

func newTestService() *orchestratorService {
	aggregationSvc := aggregate.NewService()
	return NewService(
		dataset.NewService(),
		filter.NewService(),
		aggregationSvc,
		insight.NewService(aggregationSvc),
	)
}

func defaultFlags() model.Flags {
	return model.Flags{
		CostMin: math.NaN(),
		CostMax: math.NaN(),
		CPUMin:  math.NaN(),
		CPUMax:  math.NaN(),
	}
}

var testInstances = []model.ComputeInstance{
	{ResourceID: "i-1", Region: "us-east-1", CostUSD: 0.5, CPUUtilization: 10},
	{ResourceID: "i-2", Region: "eu-west-1", CostUSD: 2.5, CPUUtilization: 80},
	{ResourceID: "i-3", Region: "us-east-1", CostUSD: 1.0, CPUUtilization: 45},
}

var testBuckets = []model.StorageBucket{
	{BucketName: "bkt-a", Region: "us-east-1", TotalSizeGB: 100, CostUSD: 2.3},
	{BucketName: "bkt-b", Region: "ap-south-1", TotalSizeGB: 300, CostUSD: 6.9},
}

func TestCriteriaFromFlags(t *testing.T) {
	svc := newTestService()

	t.Run("defaults resolve from the data", func(t *testing.T) {
		criteria := svc.CriteriaFromFlags(testInstances, testBuckets, defaultFlags())

		wantCompute := []string{"eu-west-1", "us-east-1"}
		if !reflect.DeepEqual(criteria.ComputeRegions, wantCompute) {
			t.Errorf("compute regions = %v, want %v", criteria.ComputeRegions, wantCompute)
		}

		wantStorage := []string{"ap-south-1", "us-east-1"}
		if !reflect.DeepEqual(criteria.StorageRegions, wantStorage) {
			t.Errorf("storage regions = %v, want %v", criteria.StorageRegions, wantStorage)
		}

		if criteria.CostRange != (model.Range{Min: 0.5, Max: 2.5}) {
			t.Errorf("cost range = %+v", criteria.CostRange)
		}
		if criteria.CPURange != (model.Range{Min: 10, Max: 80}) {
			t.Errorf("cpu range = %+v", criteria.CPURange)
		}
	})

	t.Run("explicit flags win", func(t *testing.T) {
		flags := defaultFlags()
		flags.EC2Regions = "us-east-1, eu-west-1"
		flags.S3Regions = "ap-south-1"
		flags.CostMin = 1.0
		flags.CPUMax = 50

		criteria := svc.CriteriaFromFlags(testInstances, testBuckets, flags)

		if !reflect.DeepEqual(criteria.ComputeRegions, []string{"us-east-1", "eu-west-1"}) {
			t.Errorf("compute regions = %v", criteria.ComputeRegions)
		}
		if !reflect.DeepEqual(criteria.StorageRegions, []string{"ap-south-1"}) {
			t.Errorf("storage regions = %v", criteria.StorageRegions)
		}
		if criteria.CostRange != (model.Range{Min: 1.0, Max: 2.5}) {
			t.Errorf("cost range = %+v", criteria.CostRange)
		}
		if criteria.CPURange != (model.Range{Min: 10, Max: 50}) {
			t.Errorf("cpu range = %+v", criteria.CPURange)
		}
	})

	t.Run("empty data yields zero ranges", func(t *testing.T) {
		criteria := svc.CriteriaFromFlags(nil, nil, defaultFlags())
		if criteria.CostRange != (model.Range{}) || criteria.CPURange != (model.Range{}) {
			t.Errorf("expected zero ranges, got %+v / %+v", criteria.CostRange, criteria.CPURange)
		}
	})
}

func TestBuildDashboard(t *testing.T) {
	svc := newTestService()
	criteria := svc.CriteriaFromFlags(testInstances, testBuckets, defaultFlags())

	dashboard := svc.BuildDashboard(testInstances, testBuckets, criteria)

	if dashboard.Summary.InstanceCount != 3 || dashboard.Summary.BucketCount != 2 {
		t.Errorf("unexpected summary: %+v", dashboard.Summary)
	}
	if len(dashboard.AvgCostByRegion) != 2 {
		t.Errorf("avg cost stats = %v", dashboard.AvgCostByRegion)
	}
	if len(dashboard.TopInstances) != 3 {
		t.Errorf("top instances = %v", dashboard.TopInstances)
	}
	if dashboard.TopInstances[0].ResourceID != "i-2" {
		t.Errorf("top instance = %s, want i-2", dashboard.TopInstances[0].ResourceID)
	}
	if len(dashboard.TopBuckets) != 2 || dashboard.TopBuckets[0].BucketName != "bkt-b" {
		t.Errorf("top buckets = %v", dashboard.TopBuckets)
	}
	if len(dashboard.CPUDistribution) != histogramBins {
		t.Errorf("got %d histogram bins, want %d", len(dashboard.CPUDistribution), histogramBins)
	}
	if len(dashboard.Strategies) != 4 {
		t.Errorf("got %d strategies, want 4", len(dashboard.Strategies))
	}
}

func TestBuildDashboardEmptyView(t *testing.T) {
	svc := newTestService()

	// Empty accepted-region sets select nothing; every section must come
	// back empty rather than erroring.
	criteria := model.FilterCriteria{
		CostRange: model.Range{Min: 0, Max: 10},
		CPURange:  model.Range{Min: 0, Max: 100},
	}

	dashboard := svc.BuildDashboard(testInstances, testBuckets, criteria)

	if dashboard.Summary.AvgCostUSD != "0.00" || dashboard.Summary.TotalSizeGB != "0" {
		t.Errorf("unexpected empty summary: %+v", dashboard.Summary)
	}
	if dashboard.AvgCostByRegion != nil || dashboard.StorageByRegion != nil {
		t.Errorf("expected no region stats, got %v / %v", dashboard.AvgCostByRegion, dashboard.StorageByRegion)
	}
	if dashboard.CPUDistribution != nil {
		t.Errorf("expected no histogram, got %v", dashboard.CPUDistribution)
	}
	if len(dashboard.TopInstances) != 0 || len(dashboard.TopBuckets) != 0 {
		t.Errorf("expected empty rankings")
	}
	if len(dashboard.Strategies) != 4 {
		t.Errorf("strategy matrix must stay four rows, got %d", len(dashboard.Strategies))
	}
}

func TestSplitRegions(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"us-east-1", []string{"us-east-1"}},
		{"us-east-1,eu-west-1", []string{"us-east-1", "eu-west-1"}},
		{" us-east-1 , , eu-west-1 ", []string{"us-east-1", "eu-west-1"}},
	}

	for _, tt := range tests {
		if got := SplitRegions(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitRegions(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
