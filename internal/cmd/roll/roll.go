// Package roll parses roll command flags and evaluates dice expressions.
package roll

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/dicecast/internal/dice"
	"github.com/louisbranch/dicecast/internal/expr"
	"github.com/louisbranch/dicecast/internal/platform/config"
	"github.com/louisbranch/dicecast/internal/random"
	tablesqlite "github.com/louisbranch/dicecast/internal/table/sqlite"
)

// Config holds roll command configuration.
type Config struct {
	TablesDB string `env:"DICECAST_TABLES_DB"`
	Seed     int64
	Rolls    bool
	Table    string
	Args     []string
}

// ParseConfig parses environment and flags into a Config. Remaining
// arguments form the dice expression.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.Int64Var(&cfg.Seed, "seed", 0, "seed for deterministic rolls (0 = random)")
	fs.BoolVar(&cfg.Rolls, "rolls", false, "show individual die results")
	fs.StringVar(&cfg.Table, "table", "", "roll a catalog table instead of an expression")
	fs.StringVar(&cfg.TablesDB, "tables-db", cfg.TablesDB, "path to the roll-table catalog database")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Args = fs.Args()
	return cfg, nil
}

// Run evaluates the configured expression or catalog table and writes the
// results to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		value, err := random.NewSeed()
		if err != nil {
			return err
		}
		seed = value
	}
	roller := dice.NewRoller(seed)

	if cfg.Table != "" {
		return runTable(ctx, cfg, roller, out)
	}

	expression := strings.TrimSpace(strings.Join(cfg.Args, " "))
	if expression == "" {
		return errors.New("a dice expression is required")
	}

	results, err := expr.Evaluate(expression, roller)
	if err != nil {
		return err
	}

	for _, res := range results {
		var b strings.Builder
		if res.Label != "" {
			fmt.Fprintf(&b, "%s: ", res.Label)
		}
		fmt.Fprintf(&b, "%d", res.Total)
		if cfg.Rolls {
			for _, roll := range res.Rolls {
				fmt.Fprintf(&b, " [%dd%d: %s]", len(roll.Results), roll.Sides, joinInts(roll.Results))
			}
		}
		fmt.Fprintln(out, b.String())
	}
	return nil
}

func runTable(ctx context.Context, cfg Config, roller dice.Roller, out io.Writer) error {
	if cfg.TablesDB == "" {
		return errors.New("a catalog database is required (set -tables-db or DICECAST_TABLES_DB)")
	}

	store, err := tablesqlite.Open(cfg.TablesDB)
	if err != nil {
		return err
	}
	defer store.Close()

	tbl, err := store.GetTable(ctx, cfg.Table)
	if err != nil {
		return fmt.Errorf("get table %q: %w", cfg.Table, err)
	}
	res, err := tbl.Roll(roller)
	if err != nil {
		return fmt.Errorf("roll table %q: %w", cfg.Table, err)
	}

	fmt.Fprintf(out, "%s: %d %s\n", tbl.Name, res.Value, res.Entry.Text)
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = strconv.Itoa(value)
	}
	return strings.Join(parts, " ")
}
