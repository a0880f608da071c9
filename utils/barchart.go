package utils

import (
	"fmt"
	"sort"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-explorer/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

// DrawRegionCharts renders the two per-region aggregates: average EC2 cost
// and total S3 storage. An empty aggregate renders an info line instead of
// an empty chart.
func DrawRegionCharts(avgCost, storage []model.RegionStat) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📊  COMPUTE & STORAGE BY REGION"))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	fmt.Printf("\n %s\n", text.FgHiCyan.Sprint("Average EC2 Cost per Region (Filtered)"))
	drawRegionChart(avgCost, "USD/hr")

	fmt.Printf("\n %s\n", text.FgHiCyan.Sprint("S3 Total Storage by Region (Filtered)"))
	drawRegionChart(storage, "GB")
}

func drawRegionChart(stats []model.RegionStat, unit string) {
	if len(stats) == 0 {
		fmt.Println(text.FgYellow.Sprint(" No data available for the selected filters."))
		return
	}

	bc := barchart.New(100, 16)

	indexedColors := assignRankedColors(stats)

	for idx, stat := range stats {
		bc.Push(barchart.BarData{
			Label: fmt.Sprintf("%s: %.2f %s", stat.Region, stat.Value, unit),
			Values: []barchart.BarValue{
				{
					Value: stat.Value,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		})
	}

	bc.Draw()
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, defaultStyle.Render(bc.View())))
}

// assignRankedColors maps the hottest palette entries to the largest values
// while keeping the bars in their original order.
func assignRankedColors(stats []model.RegionStat) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type statWithIndex struct {
		index int
		value float64
	}

	toSort := make([]statWithIndex, len(stats))
	for i, stat := range stats {
		toSort[i] = statWithIndex{index: i, value: stat.Value}
	}

	sort.Slice(toSort, func(i, j int) bool {
		return toSort[i].value > toSort[j].value
	})

	resultColors := make([]string, len(stats))
	for rank, sorted := range toSort {
		if rank < len(palette) {
			resultColors[sorted.index] = palette[rank]
		} else {
			resultColors[sorted.index] = palette[len(palette)-1]
		}
	}

	return resultColors
}
