package utils

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-nighthawk/go-figure"
)

var loadSpinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

func DrawBanner() {
	figure.NewColorFigure("AWS Explorer", "", "blue", true).Print()
}

func StartSpinner() {
	loadSpinner.Suffix = " crunching snapshots..."
	loadSpinner.Start()
}

func StopSpinner() {
	loadSpinner.Stop()
}
