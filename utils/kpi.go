package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-explorer/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawSummary prints the four KPI scalars. The summary carries pre-formatted
// values, so an empty view shows "0.00"/"0" here rather than NaN.
func DrawSummary(summary model.Summary) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🔭  AWS EXPLORER: EC2 & S3 OVERVIEW"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"EC2 Instances", "Avg EC2 Cost (USD/hr)", "S3 Buckets", "Total S3 Storage (GB)"})
	tw.AppendRow(table.Row{
		text.FgHiGreen.Sprintf("%d", summary.InstanceCount),
		text.FgHiYellow.Sprint(summary.AvgCostUSD),
		text.FgHiGreen.Sprintf("%d", summary.BucketCount),
		text.FgHiYellow.Sprint(summary.TotalSizeGB),
	})
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignCenter},
		{Number: 2, Align: text.AlignCenter},
		{Number: 3, Align: text.AlignCenter},
		{Number: 4, Align: text.AlignCenter},
	})
	tw.Render()
}
