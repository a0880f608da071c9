package utils

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-explorer/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawCPUHistogram renders the CPU utilization distribution of the filtered
// compute view.
func DrawCPUHistogram(bins []model.HistogramBin) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📈  EC2 CPU UTILIZATION DISTRIBUTION"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(bins) == 0 {
		fmt.Println(text.FgYellow.Sprint(" No EC2 data available for the selected filters."))
		return
	}

	bc := barchart.New(130, 16)

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRank5))
	for _, bin := range bins {
		bc.Push(barchart.BarData{
			Label: bin.Label,
			Values: []barchart.BarValue{
				{Value: float64(bin.Count), Style: style},
			},
		})
	}

	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))
}
