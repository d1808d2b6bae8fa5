package main

import (
	"context"
	"flag"
	"os"

	tableimporter "github.com/louisbranch/dicecast/internal/cmd/tableimporter"
	"github.com/louisbranch/dicecast/internal/platform/config"
)

func main() {
	cfg, err := tableimporter.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := tableimporter.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
