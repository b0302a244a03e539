package main

import (
	"fmt"
	"os"

	"study-planner/internal/cli"
	"study-planner/internal/config"
	"study-planner/internal/logging"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	logging.Configure(cfg.Application.Verbose, cfg.Application.Debug)

	factory := NewStoreFactory(getEnvironment())
	root := cli.NewRootCommand(factory.CreatePlanner, cfg)

	err = root.Execute()
	if closeErr := root.Close(); closeErr != nil {
		logging.Warnf("closing store: %v", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
