package expr

import (
	"strings"

	"github.com/louisbranch/dicecast/internal/dice"
)

// Evaluate evaluates a raw multi-statement input string.
//
// Statements are separated by ';' and evaluated strictly in source order so
// a seeded roller consumes random values deterministically. Each statement
// may carry a "label:" prefix; everything before the first ':' is the
// label, trimmed of surrounding whitespace. A single empty statement left
// by a trailing separator is ignored; any other empty statement is an
// error.
//
// Evaluation is fail-fast: the first statement that fails aborts the whole
// input and the returned error is a StatementError identifying it by index
// and label.
func Evaluate(input string, roller dice.Roller) ([]Result, error) {
	statements := strings.Split(input, ";")
	if len(statements) > 1 && strings.TrimSpace(statements[len(statements)-1]) == "" {
		statements = statements[:len(statements)-1]
	}

	results := make([]Result, 0, len(statements))
	for i, raw := range statements {
		label, text := splitLabel(raw)

		node, err := Parse(text)
		if err != nil {
			return nil, &StatementError{Index: i, Label: label, Err: err}
		}
		total, rolls, err := Eval(node, roller)
		if err != nil {
			return nil, &StatementError{Index: i, Label: label, Err: err}
		}

		results = append(results, Result{Label: label, Total: total, Rolls: rolls})
	}
	return results, nil
}

// splitLabel separates an optional "label:" prefix from the expression
// text. The grammar has no ':' production, so the first colon always
// belongs to the label.
func splitLabel(raw string) (label, text string) {
	idx := strings.IndexByte(raw, ':')
	if idx < 0 {
		return "", raw
	}
	return strings.TrimSpace(raw[:idx]), raw[idx+1:]
}
