package utils

import (
	"fmt"
	"os"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-explorer/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawTopInstances renders the most expensive instances of the filtered view
// as a bar chart plus a detail table.
func DrawTopInstances(top []model.ComputeInstance) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 💸  TOP 5 MOST EXPENSIVE EC2 INSTANCES"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(top) == 0 {
		fmt.Println(text.FgYellow.Sprint(" No EC2 data available for the selected filters."))
		return
	}

	bc := barchart.New(100, 12)
	ascending := AscendingByCost(top)
	colors := rankedPaletteAscending(len(ascending))
	for idx, instance := range ascending {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %.2f USD/hr", instance.ResourceID, instance.CostUSD),
			Values: []barchart.BarValue{
				{Value: instance.CostUSD, Style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[idx]))},
			},
		})
	}
	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Resource ID", "Region", "Cost (USD/hr)"})
	for _, instance := range top {
		tw.AppendRow(table.Row{
			instance.ResourceID,
			instance.Region,
			text.FgHiYellow.Sprintf("%.2f", instance.CostUSD),
		})
	}
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})
	tw.Render()
}

// DrawTopBuckets renders the largest buckets of the filtered view.
func DrawTopBuckets(top []model.StorageBucket) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🪣  TOP 5 LARGEST S3 BUCKETS"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(top) == 0 {
		fmt.Println(text.FgYellow.Sprint(" No S3 data available for the selected filters."))
		return
	}

	bc := barchart.New(100, 12)
	ascending := AscendingBySize(top)
	colors := rankedPaletteAscending(len(ascending))
	for idx, bucket := range ascending {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %.0f GB", bucket.BucketName, bucket.TotalSizeGB),
			Values: []barchart.BarValue{
				{Value: bucket.TotalSizeGB, Style: lipgloss.NewStyle().Foreground(lipgloss.Color(colors[idx]))},
			},
		})
	}
	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Bucket Name", "Region", "Total Size (GB)", "Cost (USD)"})
	for _, bucket := range top {
		tw.AppendRow(table.Row{
			bucket.BucketName,
			bucket.Region,
			text.FgHiYellow.Sprintf("%.0f", bucket.TotalSizeGB),
			text.FgHiGreen.Sprintf("%.2f", bucket.CostUSD),
		})
	}
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	tw.Render()
}

// rankedPaletteAscending colors bars that arrive smallest-first, hottest
// color on the largest (last) bar.
func rankedPaletteAscending(n int) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	colors := make([]string, n)
	for i := 0; i < n; i++ {
		rank := n - 1 - i
		if rank >= len(palette) {
			rank = len(palette) - 1
		}
		colors[i] = palette[rank]
	}
	return colors
}
