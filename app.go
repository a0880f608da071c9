package main

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-explorer/service/aggregate"
	"github.com/elC0mpa/aws-explorer/service/dataset"
	"github.com/elC0mpa/aws-explorer/service/filter"
	flagservice "github.com/elC0mpa/aws-explorer/service/flag"
	"github.com/elC0mpa/aws-explorer/service/insight"
	"github.com/elC0mpa/aws-explorer/service/orchestrator"
	"github.com/elC0mpa/aws-explorer/utils"
)

func main() {
	utils.DrawBanner()

	flagService := flagservice.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	utils.StartSpinner()

	datasetService := dataset.NewService()
	filterService := filter.NewService()
	aggregationService := aggregate.NewService()
	insightService := insight.NewService(aggregationService)

	orchestratorService := orchestrator.NewService(datasetService, filterService, aggregationService, insightService)

	if err := orchestratorService.Orchestrate(flags); err != nil {
		utils.StopSpinner()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
