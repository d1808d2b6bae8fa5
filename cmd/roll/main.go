package main

import (
	"context"
	"flag"
	"os"

	rollcmd "github.com/louisbranch/dicecast/internal/cmd/roll"
	"github.com/louisbranch/dicecast/internal/platform/config"
)

func main() {
	cfg, err := rollcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	if err := rollcmd.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}
