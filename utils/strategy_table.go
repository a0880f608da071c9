package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-explorer/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawStrategyTable prints the optimization strategy matrix.
func DrawStrategyTable(strategies []model.StrategyRow) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🩺  OPTIMIZATION STRATEGY MATRIX"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"Area", "Pattern Observed", "Optimization Action", "Expected Impact"})

	for _, strategy := range strategies {
		areaColor := text.FgHiYellow
		if strategy.Area == "S3" {
			areaColor = text.FgHiCyan
		}
		tw.AppendRow(table.Row{
			areaColor.Sprint(strategy.Area),
			strategy.Pattern,
			strategy.Action,
			strategy.Impact,
		})
	}

	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 50},
		{Number: 3, WidthMax: 45},
		{Number: 4, WidthMax: 40},
	})
	tw.Render()
}
