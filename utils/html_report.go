package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-explorer/model"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// WriteHTMLReport renders the dashboard as a single interactive HTML page.
// It consumes the same Dashboard the terminal renderer does; no aggregation
// happens here.
func WriteHTMLReport(path string, dashboard model.Dashboard) error {
	page := components.NewPage()
	page.AddCharts(
		regionBarChart("Average EC2 Cost per Region (Filtered)", "USD/hr", dashboard.AvgCostByRegion),
		regionBarChart("S3 Total Storage by Region (Filtered)", "GB", dashboard.StorageByRegion),
		cpuCostScatter(dashboard.ComputeView),
		storageScatter(dashboard.StorageView),
		impactBarChart(dashboard.ImpactScores),
		focusPieChart(dashboard.FocusSplit),
	)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML report: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render HTML report: %w", err)
	}

	return nil
}

func regionBarChart(title, unit string, stats []model.RegionStat) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithYAxisOpts(opts.YAxis{Name: unit}),
	)

	labels := make([]string, len(stats))
	values := make([]opts.BarData, len(stats))
	for i, stat := range stats {
		labels[i] = stat.Region
		values[i] = opts.BarData{Value: stat.Value}
	}

	bar.SetXAxis(labels).AddSeries(unit, values)
	return bar
}

func cpuCostScatter(instances []model.ComputeInstance) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "EC2 CPU vs Cost (Filtered)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "CPU Utilization (%)",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Cost (USD/hr)",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	points := make([]opts.ScatterData, len(instances))
	for i, instance := range instances {
		points[i] = opts.ScatterData{
			Value:      []float64{instance.CPUUtilization, instance.CostUSD},
			Symbol:     "circle",
			SymbolSize: 8,
		}
	}

	scatter.AddSeries("Instances", points)
	return scatter
}

func storageScatter(buckets []model.StorageBucket) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "S3 Cost vs Storage Size (Filtered)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Total Size (GB)",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      "Cost (USD)",
			SplitLine: &opts.SplitLine{Show: opts.Bool(true)},
		}),
	)

	points := make([]opts.ScatterData, len(buckets))
	for i, bucket := range buckets {
		points[i] = opts.ScatterData{
			Value:      []float64{bucket.TotalSizeGB, bucket.CostUSD},
			Symbol:     "circle",
			SymbolSize: 8,
		}
	}

	scatter.AddSeries("Buckets", points)
	return scatter
}

func impactBarChart(scores []model.ImpactScore) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Estimated Cost Reduction by Optimization Action"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Estimated % Cost Reduction Potential"}),
	)

	labels := make([]string, len(scores))
	values := make([]opts.BarData, len(scores))
	for i, score := range scores {
		labels[i] = score.Action
		values[i] = opts.BarData{Value: score.Percent}
	}

	bar.SetXAxis(labels).AddSeries("%", values)
	return bar
}

func focusPieChart(split map[string]int) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Optimization Focus Areas (EC2 vs S3)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
	)

	// Fixed order so repeated renders are byte identical.
	data := []opts.PieData{
		{Name: "EC2", Value: split["EC2"]},
		{Name: "S3", Value: split["S3"]},
	}

	pie.AddSeries("Focus", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}: {c}",
		}),
	)
	return pie
}
