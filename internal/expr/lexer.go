package expr

import (
	"strconv"
	"unicode/utf8"

	"github.com/louisbranch/dicecast/internal/dice"
)

// Lexer splits one statement's expression text into tokens. Tokens are
// produced on demand; once the input is exhausted Next keeps returning an
// end token.
type Lexer struct {
	input string
	pos   int
}

// NewLexer returns a lexer positioned at the start of input.
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// Next returns the next token or a SyntaxError at the first character that
// matches no production.
func (l *Lexer) Next() (Token, error) {
	l.skipSpaces()
	if l.pos >= len(l.input) {
		return Token{Kind: KindEnd, Pos: l.pos}, nil
	}

	start := l.pos
	switch c := l.input[l.pos]; {
	case c == '+':
		l.pos++
		return Token{Kind: KindPlus, Pos: start}, nil
	case c == '-':
		l.pos++
		return Token{Kind: KindMinus, Pos: start}, nil
	case isDigit(c) || c == 'd' || c == 'D':
		return l.lexTerm()
	default:
		r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
		return Token{}, &SyntaxError{Pos: start, Text: string(r), Err: ErrInvalidCharacter}
	}
}

// lexTerm scans a number, optionally followed by a die suffix. The current
// byte is a digit or a 'd', so a missing count defaults to 1.
func (l *Lexer) lexTerm() (Token, error) {
	start := l.pos
	count, hasCount, err := l.scanNumber()
	if err != nil {
		return Token{}, err
	}

	if l.pos < len(l.input) && (l.input[l.pos] == 'd' || l.input[l.pos] == 'D') {
		l.pos++
		sides, hasSides, err := l.scanNumber()
		if err != nil {
			return Token{}, err
		}
		if !hasSides {
			return Token{}, &SyntaxError{Pos: start, Text: l.input[start:l.pos], Err: ErrInvalidCharacter}
		}
		if sides == 0 {
			return Token{}, &SyntaxError{Pos: start, Text: l.input[start:l.pos], Err: ErrInvalidDie}
		}
		if !hasCount {
			count = 1
		}
		if int64(count) > dice.MaxDieValue || int64(sides) > dice.MaxDieValue {
			return Token{}, &SyntaxError{Pos: start, Text: l.input[start:l.pos], Err: ErrNumberTooLarge}
		}
		return Token{
			Kind: KindDie,
			Dice: dice.Dice{Count: count, Sides: sides},
			Pos:  start,
		}, nil
	}

	return Token{Kind: KindNumber, Value: count, Pos: start}, nil
}

// scanNumber consumes a run of digits. ok is false when no digits were
// present at the current position.
func (l *Lexer) scanNumber() (value int, ok bool, err error) {
	start := l.pos
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.pos == start {
		return 0, false, nil
	}

	value, convErr := strconv.Atoi(l.input[start:l.pos])
	if convErr != nil {
		return 0, false, &SyntaxError{Pos: start, Text: l.input[start:l.pos], Err: ErrNumberTooLarge}
	}
	return value, true, nil
}

func (l *Lexer) skipSpaces() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		default:
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
