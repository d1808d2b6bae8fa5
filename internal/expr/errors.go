// Package expr parses and evaluates dice-notation expressions such as
// "4d6 + 1d4 + 3 - 1d8", optionally labeled and separated by ';'.
package expr

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter indicates the lexer hit a character outside the grammar.
var ErrInvalidCharacter = errors.New("invalid character")

// ErrInvalidDie indicates a die notation with no sides, such as "d0".
var ErrInvalidDie = errors.New("die must have at least one side")

// ErrNumberTooLarge indicates a numeric literal that does not fit in an int.
var ErrNumberTooLarge = errors.New("number is too large")

// ErrUnexpectedToken indicates the parser expected a term but found something else.
var ErrUnexpectedToken = errors.New("unexpected token")

// ErrEmptyExpression indicates a statement with no terms at all.
var ErrEmptyExpression = errors.New("statement has no expression")

// ErrTrailingInput indicates tokens left over after a complete expression.
var ErrTrailingInput = errors.New("trailing input after expression")

// ErrOverflow indicates integer overflow while combining totals.
var ErrOverflow = errors.New("arithmetic overflow")

// SyntaxError reports a lexing or parsing failure at a byte position within
// one statement's expression text. It unwraps to one of the sentinel errors
// above so callers can classify the failure with errors.Is.
type SyntaxError struct {
	Pos  int
	Text string
	Err  error
}

func (e *SyntaxError) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%v at position %d: %q", e.Err, e.Pos, e.Text)
	}
	return fmt.Sprintf("%v at position %d", e.Err, e.Pos)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// StatementError identifies which statement of a multi-statement input
// failed. Index is zero-based and follows source order.
type StatementError struct {
	Index int
	Label string
	Err   error
}

func (e *StatementError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("statement %d (%q): %v", e.Index+1, e.Label, e.Err)
	}
	return fmt.Sprintf("statement %d: %v", e.Index+1, e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }
