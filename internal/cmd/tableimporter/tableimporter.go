// Package tableimporter parses importer flags and loads roll tables into the catalog.
package tableimporter

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/louisbranch/dicecast/internal/platform/config"
	"github.com/louisbranch/dicecast/internal/table"
	tablesqlite "github.com/louisbranch/dicecast/internal/table/sqlite"
)

// Config holds importer configuration.
type Config struct {
	DB   string `env:"DICECAST_TABLES_DB"`
	Name string

	// Args holds the positional arguments, expected to be a single table file.
	Args []string
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DB, "db", cfg.DB, "path to the roll-table catalog database")
	fs.StringVar(&cfg.Name, "name", "", "table name (defaults to the file name)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()
	return cfg, nil
}

// Run imports a single roll-table file into the catalog database.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if cfg.DB == "" {
		return errors.New("no catalog database configured")
	}
	if len(cfg.Args) != 1 {
		return fmt.Errorf("expected exactly one table file, got %d arguments", len(cfg.Args))
	}

	path := cfg.Args[0]
	name := cfg.Name
	if name == "" {
		base := filepath.Base(path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open table file: %w", err)
	}
	defer f.Close()

	t, err := table.Parse(name, f)
	if err != nil {
		return fmt.Errorf("parse table %q: %w", name, err)
	}

	store, err := tablesqlite.Open(cfg.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveTable(ctx, t); err != nil {
		return fmt.Errorf("save table %q: %w", name, err)
	}

	fmt.Fprintf(out, "imported table %q (%d entries, d%d)\n", t.Name, len(t.Entries), t.Sides())
	return nil
}
