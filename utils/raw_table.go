package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-explorer/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawRawTables prints the unaggregated filtered views. Only called when the
// operator asked for them.
func DrawRawTables(instances []model.ComputeInstance, buckets []model.StorageBucket) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🗃️   RAW DATA (FILTERED)"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	fmt.Printf("\n %s\n", text.FgHiCyan.Sprint("EC2 Data"))
	if len(instances) == 0 {
		fmt.Println(text.FgYellow.Sprint(" No EC2 data available for the selected filters."))
	} else {
		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"Resource ID", "Region", "Cost (USD/hr)", "CPU Utilization (%)"})
		for _, instance := range instances {
			tw.AppendRow(table.Row{
				instance.ResourceID,
				instance.Region,
				fmt.Sprintf("%.2f", instance.CostUSD),
				fmt.Sprintf("%.1f", instance.CPUUtilization),
			})
		}
		tw.SetStyle(table.StyleRounded)
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
		})
		tw.Render()
	}

	fmt.Printf("\n %s\n", text.FgHiCyan.Sprint("S3 Data"))
	if len(buckets) == 0 {
		fmt.Println(text.FgYellow.Sprint(" No S3 data available for the selected filters."))
	} else {
		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"Bucket Name", "Region", "Total Size (GB)", "Cost (USD)"})
		for _, bucket := range buckets {
			tw.AppendRow(table.Row{
				bucket.BucketName,
				bucket.Region,
				fmt.Sprintf("%.0f", bucket.TotalSizeGB),
				fmt.Sprintf("%.2f", bucket.CostUSD),
			})
		}
		tw.SetStyle(table.StyleRounded)
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, Align: text.AlignRight},
			{Number: 4, Align: text.AlignRight},
		})
		tw.Render()
	}
}
