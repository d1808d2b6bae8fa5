package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/dicecast/internal/deck"
	"github.com/louisbranch/dicecast/internal/dice"
	"github.com/louisbranch/dicecast/internal/expr"
	"github.com/louisbranch/dicecast/internal/random"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// DieRollResult represents one die-notation term's rolls in MCP output.
type DieRollResult struct {
	Sides   int   `json:"sides" jsonschema:"number of sides on the die"`
	Results []int `json:"results" jsonschema:"individual face values in roll order"`
	Total   int   `json:"total" jsonschema:"sum of the face values"`
}

// StatementResult represents one evaluated statement in MCP output.
type StatementResult struct {
	Label string          `json:"label,omitempty" jsonschema:"statement label, if present"`
	Total int             `json:"total" jsonschema:"evaluated total of the statement"`
	Rolls []DieRollResult `json:"rolls,omitempty" jsonschema:"per-notation roll details in source order"`
}

// RollExpressionInput represents the MCP tool input for expression rolls.
type RollExpressionInput struct {
	Expression string `json:"expression" jsonschema:"dice expression, statements separated by ';' with optional 'label:' prefixes"`
	Seed       *int64 `json:"seed,omitempty" jsonschema:"optional seed for deterministic rolls"`
}

// RollExpressionResult represents the MCP tool output for expression rolls.
type RollExpressionResult struct {
	Statements []StatementResult `json:"statements" jsonschema:"results in statement order"`
	SeedUsed   int64             `json:"seed_used" jsonschema:"seed value used by the server"`
}

// RollDiceInput represents the MCP tool input for plain dice rolls.
type RollDiceInput struct {
	Sides int    `json:"sides" jsonschema:"number of sides on the die"`
	Count int    `json:"count,omitempty" jsonschema:"number of dice to roll, default 1"`
	Seed  *int64 `json:"seed,omitempty" jsonschema:"optional seed for deterministic rolls"`
}

// RollDiceResult represents the MCP tool output for plain dice rolls.
type RollDiceResult struct {
	Roll     DieRollResult `json:"roll" jsonschema:"roll details"`
	SeedUsed int64         `json:"seed_used" jsonschema:"seed value used by the server"`
}

// RollTableInput represents the MCP tool input for roll-table rolls.
type RollTableInput struct {
	Table string `json:"table" jsonschema:"name of the roll table in the catalog"`
	Seed  *int64 `json:"seed,omitempty" jsonschema:"optional seed for deterministic rolls"`
}

// RollTableResult represents the MCP tool output for roll-table rolls.
type RollTableResult struct {
	Table    string `json:"table" jsonschema:"name of the rolled table"`
	Value    int    `json:"value" jsonschema:"rolled die value"`
	Text     string `json:"text" jsonschema:"text of the matched entry"`
	SeedUsed int64  `json:"seed_used" jsonschema:"seed value used by the server"`
}

// CardResult represents one drawn card in MCP output.
type CardResult struct {
	Rank string `json:"rank" jsonschema:"card rank"`
	Suit string `json:"suit" jsonschema:"card suit"`
	Name string `json:"name" jsonschema:"readable card name"`
}

// DrawCardInput represents the MCP tool input for card draws.
type DrawCardInput struct {
	Count int    `json:"count,omitempty" jsonschema:"number of cards to draw, default 1"`
	Seed  *int64 `json:"seed,omitempty" jsonschema:"optional seed for deterministic draws"`
}

// DrawCardResult represents the MCP tool output for card draws.
type DrawCardResult struct {
	Cards    []CardResult `json:"cards" jsonschema:"drawn cards in draw order"`
	SeedUsed int64        `json:"seed_used" jsonschema:"seed value used by the server"`
}

// resolveSeed returns the client seed when provided, otherwise a fresh
// crypto-random seed. The seed used is always echoed back so clients can
// replay a roll.
func resolveSeed(seed *int64) (int64, error) {
	if seed != nil {
		return *seed, nil
	}
	value, err := random.NewSeed()
	if err != nil {
		return 0, fmt.Errorf("generate seed: %w", err)
	}
	return value, nil
}

func toDieRollResult(roll dice.DieRoll) DieRollResult {
	return DieRollResult{Sides: roll.Sides, Results: roll.Results, Total: roll.Total}
}

func (s *Server) handleRollExpression(ctx context.Context, _ *sdk.CallToolRequest, input RollExpressionInput) (*sdk.CallToolResult, RollExpressionResult, error) {
	_, span := s.tracer.Start(ctx, "roll_expression")
	defer span.End()

	seed, err := resolveSeed(input.Seed)
	if err != nil {
		return nil, RollExpressionResult{}, err
	}

	results, err := expr.Evaluate(input.Expression, dice.NewRoller(seed))
	if err != nil {
		return nil, RollExpressionResult{}, err
	}

	out := RollExpressionResult{
		Statements: make([]StatementResult, 0, len(results)),
		SeedUsed:   seed,
	}
	for _, res := range results {
		statement := StatementResult{Label: res.Label, Total: res.Total}
		for _, roll := range res.Rolls {
			statement.Rolls = append(statement.Rolls, toDieRollResult(roll))
		}
		out.Statements = append(out.Statements, statement)
	}
	return nil, out, nil
}

func (s *Server) handleRollDice(ctx context.Context, _ *sdk.CallToolRequest, input RollDiceInput) (*sdk.CallToolResult, RollDiceResult, error) {
	_, span := s.tracer.Start(ctx, "roll_dice")
	defer span.End()

	seed, err := resolveSeed(input.Seed)
	if err != nil {
		return nil, RollDiceResult{}, err
	}

	count := input.Count
	if count == 0 {
		count = 1
	}
	roll, err := dice.Dice{Count: count, Sides: input.Sides}.Roll(dice.NewRoller(seed))
	if err != nil {
		return nil, RollDiceResult{}, err
	}

	return nil, RollDiceResult{Roll: toDieRollResult(roll), SeedUsed: seed}, nil
}

func (s *Server) handleRollTable(ctx context.Context, _ *sdk.CallToolRequest, input RollTableInput) (*sdk.CallToolResult, RollTableResult, error) {
	ctx, span := s.tracer.Start(ctx, "roll_table")
	defer span.End()

	if s.catalog == nil {
		return nil, RollTableResult{}, errors.New("no table catalog is configured")
	}

	seed, err := resolveSeed(input.Seed)
	if err != nil {
		return nil, RollTableResult{}, err
	}

	tbl, err := s.catalog.GetTable(ctx, input.Table)
	if err != nil {
		return nil, RollTableResult{}, fmt.Errorf("get table %q: %w", input.Table, err)
	}
	res, err := tbl.Roll(dice.NewRoller(seed))
	if err != nil {
		return nil, RollTableResult{}, fmt.Errorf("roll table %q: %w", input.Table, err)
	}

	return nil, RollTableResult{
		Table:    tbl.Name,
		Value:    res.Value,
		Text:     res.Entry.Text,
		SeedUsed: seed,
	}, nil
}

func (s *Server) handleDrawCard(ctx context.Context, _ *sdk.CallToolRequest, input DrawCardInput) (*sdk.CallToolResult, DrawCardResult, error) {
	_, span := s.tracer.Start(ctx, "draw_card")
	defer span.End()

	seed, err := resolveSeed(input.Seed)
	if err != nil {
		return nil, DrawCardResult{}, err
	}

	count := input.Count
	if count == 0 {
		count = 1
	}
	if count < 0 {
		return nil, DrawCardResult{}, errors.New("count must be non-negative")
	}

	cards := deck.Draw(dice.NewRoller(seed), count)
	out := DrawCardResult{Cards: make([]CardResult, 0, len(cards)), SeedUsed: seed}
	for _, card := range cards {
		out.Cards = append(out.Cards, CardResult{
			Rank: card.Rank.String(),
			Suit: card.Suit.String(),
			Name: card.String(),
		})
	}
	return nil, out, nil
}
