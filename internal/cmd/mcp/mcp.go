// Package mcp parses MCP command flags and serves dice tools over stdio.
package mcp

import (
	"context"
	"flag"
	"log"
	"time"

	mcpserver "github.com/louisbranch/dicecast/internal/mcp"
	"github.com/louisbranch/dicecast/internal/platform/config"
	"github.com/louisbranch/dicecast/internal/platform/otel"
	tablesqlite "github.com/louisbranch/dicecast/internal/table/sqlite"
)

// Config holds MCP command configuration.
type Config struct {
	TablesDB string `env:"DICECAST_TABLES_DB"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.TablesDB, "tables-db", cfg.TablesDB, "path to the roll-table catalog database (optional)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP server and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	var catalog mcpserver.Catalog
	if cfg.TablesDB != "" {
		store, err := tablesqlite.Open(cfg.TablesDB)
		if err != nil {
			return err
		}
		defer store.Close()
		catalog = store
	}

	return mcpserver.New(catalog).Run(ctx)
}
