package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/elC0mpa/aws-explorer/cmd/mcp/response"
	"github.com/elC0mpa/aws-explorer/model"
	"github.com/elC0mpa/aws-explorer/service/aggregate"
	"github.com/elC0mpa/aws-explorer/service/dataset"
	"github.com/elC0mpa/aws-explorer/service/filter"
	"github.com/elC0mpa/aws-explorer/service/insight"
	"github.com/elC0mpa/aws-explorer/service/orchestrator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterDashboardTools registers all dashboard tools with the MCP server
func RegisterDashboardTools(s *server.MCPServer, computePath, storagePath string) {
	// Summary KPIs
	s.AddTool(
		mcp.NewTool("dashboard_get_summary",
			append([]mcp.ToolOption{
				mcp.WithDescription("Get the headline KPIs for the filtered view: instance count, average hourly cost, bucket count, and total storage size"),
			}, filterOptions()...)...,
		),
		makeSummaryHandler(computePath, storagePath),
	)

	// Average cost by region
	s.AddTool(
		mcp.NewTool("dashboard_get_cost_by_region",
			append([]mcp.ToolOption{
				mcp.WithDescription("Get average EC2 hourly cost per region for the filtered view, sorted descending"),
			}, filterOptions()...)...,
		),
		makeCostByRegionHandler(computePath, storagePath),
	)

	// Total storage by region
	s.AddTool(
		mcp.NewTool("dashboard_get_storage_by_region",
			append([]mcp.ToolOption{
				mcp.WithDescription("Get total S3 storage in GB per region for the filtered view, sorted descending"),
			}, filterOptions()...)...,
		),
		makeStorageByRegionHandler(computePath, storagePath),
	)

	// Top instances
	s.AddTool(
		mcp.NewTool("dashboard_get_top_instances",
			append([]mcp.ToolOption{
				mcp.WithDescription("Get the top 5 most expensive EC2 instances in the filtered view"),
			}, filterOptions()...)...,
		),
		makeTopInstancesHandler(computePath, storagePath),
	)

	// Top buckets
	s.AddTool(
		mcp.NewTool("dashboard_get_top_buckets",
			append([]mcp.ToolOption{
				mcp.WithDescription("Get the top 5 largest S3 buckets in the filtered view"),
			}, filterOptions()...)...,
		),
		makeTopBucketsHandler(computePath, storagePath),
	)

	// Strategy matrix
	s.AddTool(
		mcp.NewTool("dashboard_get_strategies",
			append([]mcp.ToolOption{
				mcp.WithDescription("Get the optimization strategy matrix derived from the filtered view, with estimated impact scores"),
			}, filterOptions()...)...,
		),
		makeStrategiesHandler(computePath, storagePath),
	)

	// Raw data
	s.AddTool(
		mcp.NewTool("dashboard_get_raw_data",
			append([]mcp.ToolOption{
				mcp.WithDescription("Get the unaggregated filtered EC2 and S3 rows"),
			}, filterOptions()...)...,
		),
		makeRawDataHandler(computePath, storagePath),
	)
}

// filterOptions returns the filter arguments shared by every dashboard tool.
// Region arguments left out mean every region in the data; an explicit empty
// string selects no regions.
func filterOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("ec2_regions",
			mcp.Description("Comma-separated EC2 regions to include. Omit for all regions; empty string for none"),
		),
		mcp.WithString("s3_regions",
			mcp.Description("Comma-separated S3 regions to include. Omit for all regions; empty string for none"),
		),
		mcp.WithNumber("cost_min",
			mcp.Description("Minimum hourly cost in USD (inclusive). Omit for the observed minimum"),
		),
		mcp.WithNumber("cost_max",
			mcp.Description("Maximum hourly cost in USD (inclusive). Omit for the observed maximum"),
		),
		mcp.WithNumber("cpu_min",
			mcp.Description("Minimum CPU utilization percent (inclusive). Omit for the observed minimum"),
		),
		mcp.WithNumber("cpu_max",
			mcp.Description("Maximum CPU utilization percent (inclusive). Omit for the observed maximum"),
		),
	}
}

func makeSummaryHandler(computePath, storagePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dashboard, err := buildDashboard(computePath, storagePath, request)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build dashboard: %v", err)), nil
		}

		resp := response.ConvertSummary(dashboard.Summary)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeCostByRegionHandler(computePath, storagePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dashboard, err := buildDashboard(computePath, storagePath, request)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build dashboard: %v", err)), nil
		}

		resp := response.ConvertRegionStats(dashboard.AvgCostByRegion)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeStorageByRegionHandler(computePath, storagePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dashboard, err := buildDashboard(computePath, storagePath, request)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build dashboard: %v", err)), nil
		}

		resp := response.ConvertRegionStats(dashboard.StorageByRegion)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeTopInstancesHandler(computePath, storagePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dashboard, err := buildDashboard(computePath, storagePath, request)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build dashboard: %v", err)), nil
		}

		resp := response.ConvertInstances(dashboard.TopInstances)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeTopBucketsHandler(computePath, storagePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dashboard, err := buildDashboard(computePath, storagePath, request)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build dashboard: %v", err)), nil
		}

		resp := response.ConvertBuckets(dashboard.TopBuckets)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeStrategiesHandler(computePath, storagePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dashboard, err := buildDashboard(computePath, storagePath, request)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build dashboard: %v", err)), nil
		}

		resp := response.Strategies{
			Matrix:       response.ConvertStrategies(dashboard.Strategies),
			ImpactScores: response.ConvertImpactScores(dashboard.ImpactScores),
			FocusSplit:   dashboard.FocusSplit,
		}
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeRawDataHandler(computePath, storagePath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dashboard, err := buildDashboard(computePath, storagePath, request)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build dashboard: %v", err)), nil
		}

		resp := response.RawData{
			Compute: response.ConvertInstances(dashboard.ComputeView),
			Storage: response.ConvertBuckets(dashboard.StorageView),
		}
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

// buildDashboard loads both snapshots, resolves the request's filter
// arguments, and computes the full dashboard. Every tool shares this path so
// their views stay consistent.
func buildDashboard(computePath, storagePath string, request mcp.CallToolRequest) (model.Dashboard, error) {
	datasetSvc := dataset.NewService()
	filterSvc := filter.NewService()
	aggregationSvc := aggregate.NewService()
	insightSvc := insight.NewService(aggregationSvc)
	orchestratorSvc := orchestrator.NewService(datasetSvc, filterSvc, aggregationSvc, insightSvc)

	instances, buckets, err := datasetSvc.Load(computePath, storagePath)
	if err != nil {
		return model.Dashboard{}, err
	}

	criteria := criteriaFromRequest(instances, buckets, request)
	return orchestratorSvc.BuildDashboard(instances, buckets, criteria), nil
}

func criteriaFromRequest(instances []model.ComputeInstance, buckets []model.StorageBucket, request mcp.CallToolRequest) model.FilterCriteria {
	args := request.GetArguments()

	computeRegions := regionsFromArg(args, "ec2_regions", func() []string {
		return orchestrator.DistinctComputeRegions(instances)
	})
	storageRegions := regionsFromArg(args, "s3_regions", func() []string {
		return orchestrator.DistinctStorageRegions(buckets)
	})

	costRange := orchestrator.ObservedCostRange(instances)
	if v := mcp.ParseFloat64(request, "cost_min", math.NaN()); !math.IsNaN(v) {
		costRange.Min = v
	}
	if v := mcp.ParseFloat64(request, "cost_max", math.NaN()); !math.IsNaN(v) {
		costRange.Max = v
	}

	cpuRange := orchestrator.ObservedCPURange(instances)
	if v := mcp.ParseFloat64(request, "cpu_min", math.NaN()); !math.IsNaN(v) {
		cpuRange.Min = v
	}
	if v := mcp.ParseFloat64(request, "cpu_max", math.NaN()); !math.IsNaN(v) {
		cpuRange.Max = v
	}

	return model.FilterCriteria{
		ComputeRegions: computeRegions,
		StorageRegions: storageRegions,
		CostRange:      costRange,
		CPURange:       cpuRange,
	}
}

// regionsFromArg distinguishes an absent region argument (all regions) from
// an explicitly empty one (no regions).
func regionsFromArg(args map[string]any, key string, all func() []string) []string {
	raw, present := args[key]
	if !present {
		return all()
	}
	value, _ := raw.(string)
	return orchestrator.SplitRegions(value)
}
