package mcp

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/louisbranch/dicecast/internal/dice"
	"github.com/louisbranch/dicecast/internal/expr"
	"github.com/louisbranch/dicecast/internal/table"
)

// memoryCatalog serves tables from a map for handler tests.
type memoryCatalog struct {
	tables map[string]*table.Table
}

func (c *memoryCatalog) GetTable(_ context.Context, name string) (*table.Table, error) {
	t, ok := c.tables[name]
	if !ok {
		return nil, errors.New("table not found")
	}
	return t, nil
}

func (c *memoryCatalog) ListTables(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}
	return names, nil
}

func seedPtr(v int64) *int64 { return &v }

// TestRollExpressionDeterministic ensures a client seed produces identical
// results across calls.
func TestRollExpressionDeterministic(t *testing.T) {
	server := New(nil)
	input := RollExpressionInput{Expression: "hp: 3d6; 2d4 + 1", Seed: seedPtr(11)}

	_, first, err := server.handleRollExpression(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("roll_expression returned error: %v", err)
	}
	_, second, err := server.handleRollExpression(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("roll_expression returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("results differ across calls:\n%+v\n%+v", first, second)
	}
	if first.SeedUsed != 11 {
		t.Fatalf("seed_used = %d, want 11", first.SeedUsed)
	}
	if len(first.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %+v", first.Statements)
	}
	if first.Statements[0].Label != "hp" {
		t.Fatalf("first label = %q, want hp", first.Statements[0].Label)
	}
	if len(first.Statements[0].Rolls) != 1 || len(first.Statements[0].Rolls[0].Results) != 3 {
		t.Fatalf("unexpected hp rolls: %+v", first.Statements[0].Rolls)
	}
}

// TestRollExpressionPropagatesParseErrors ensures malformed expressions
// fail with the parser's classification.
func TestRollExpressionPropagatesParseErrors(t *testing.T) {
	server := New(nil)

	_, _, err := server.handleRollExpression(context.Background(), nil, RollExpressionInput{Expression: "1d6 + + 3", Seed: seedPtr(1)})
	if !errors.Is(err, expr.ErrUnexpectedToken) {
		t.Fatalf("roll_expression error = %v, want %v", err, expr.ErrUnexpectedToken)
	}
}

// TestRollDiceDefaultsCount ensures a missing count rolls one die.
func TestRollDiceDefaultsCount(t *testing.T) {
	server := New(nil)

	_, out, err := server.handleRollDice(context.Background(), nil, RollDiceInput{Sides: 20, Seed: seedPtr(5)})
	if err != nil {
		t.Fatalf("roll_dice returned error: %v", err)
	}
	if len(out.Roll.Results) != 1 {
		t.Fatalf("expected 1 result, got %+v", out.Roll)
	}
	if out.Roll.Results[0] < 1 || out.Roll.Results[0] > 20 {
		t.Fatalf("result %d outside [1, 20]", out.Roll.Results[0])
	}
}

// TestRollDiceRejectsOversizedCount ensures a count beyond the die bound
// fails with an error instead of taking down the server.
func TestRollDiceRejectsOversizedCount(t *testing.T) {
	server := New(nil)

	_, _, err := server.handleRollDice(context.Background(), nil, RollDiceInput{Sides: 6, Count: 9000000000000000000, Seed: seedPtr(1)})
	if !errors.Is(err, dice.ErrInvalidDice) {
		t.Fatalf("roll_dice error = %v, want %v", err, dice.ErrInvalidDice)
	}
}

// TestRollTable ensures catalog tables resolve and roll.
func TestRollTable(t *testing.T) {
	catalog := &memoryCatalog{tables: map[string]*table.Table{
		"mood": {
			Name: "mood",
			Entries: []table.Entry{
				{Min: 1, Max: 1, Text: "grim"},
				{Min: 2, Max: 2, Text: "cheerful"},
			},
		},
	}}
	server := New(catalog)

	_, out, err := server.handleRollTable(context.Background(), nil, RollTableInput{Table: "mood", Seed: seedPtr(3)})
	if err != nil {
		t.Fatalf("roll_table returned error: %v", err)
	}
	if out.Table != "mood" {
		t.Fatalf("table = %q, want mood", out.Table)
	}
	if out.Value < 1 || out.Value > 2 {
		t.Fatalf("value %d outside table range", out.Value)
	}
	entry, ok := catalog.tables["mood"].Lookup(out.Value)
	if !ok || entry.Text != out.Text {
		t.Fatalf("text %q does not match entry for value %d", out.Text, out.Value)
	}
}

// TestRollTableWithoutCatalog ensures a clear error when no catalog is
// configured.
func TestRollTableWithoutCatalog(t *testing.T) {
	server := New(nil)

	_, _, err := server.handleRollTable(context.Background(), nil, RollTableInput{Table: "mood"})
	if err == nil || !strings.Contains(err.Error(), "no table catalog") {
		t.Fatalf("roll_table error = %v, want catalog error", err)
	}
}

// TestDrawCardDeterministic ensures seeded draws replay bit-identically.
func TestDrawCardDeterministic(t *testing.T) {
	server := New(nil)
	input := DrawCardInput{Count: 5, Seed: seedPtr(8)}

	_, first, err := server.handleDrawCard(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("draw_card returned error: %v", err)
	}
	_, second, err := server.handleDrawCard(context.Background(), nil, input)
	if err != nil {
		t.Fatalf("draw_card returned error: %v", err)
	}

	if len(first.Cards) != 5 {
		t.Fatalf("expected 5 cards, got %d", len(first.Cards))
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("draws differ across calls:\n%+v\n%+v", first, second)
	}
}
