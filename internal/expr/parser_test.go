package expr

import (
	"errors"
	"reflect"
	"testing"

	"github.com/louisbranch/dicecast/internal/dice"
)

// TestParseSingleTerms ensures lone terms become leaf nodes.
func TestParseSingleTerms(t *testing.T) {
	node, err := Parse("3")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !reflect.DeepEqual(node, &Literal{Value: 3}) {
		t.Fatalf("Parse(\"3\") = %#v, want literal 3", node)
	}

	node, err = Parse("2d6")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !reflect.DeepEqual(node, &Roll{Dice: dice.Dice{Count: 2, Sides: 6}}) {
		t.Fatalf("Parse(\"2d6\") = %#v, want roll 2d6", node)
	}
}

// TestParseLeftAssociativeChain ensures successive terms nest left-to-right.
func TestParseLeftAssociativeChain(t *testing.T) {
	node, err := Parse("1d6 + 2 - 3")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := &Binary{
		Op: OpSub,
		Left: &Binary{
			Op:    OpAdd,
			Left:  &Roll{Dice: dice.Dice{Count: 1, Sides: 6}},
			Right: &Literal{Value: 2},
		},
		Right: &Literal{Value: 3},
	}
	if !reflect.DeepEqual(node, want) {
		t.Fatalf("Parse tree = %#v, want %#v", node, want)
	}
}

// TestParseLeadingSign ensures an explicit sign before the first term is
// applied to that term.
func TestParseLeadingSign(t *testing.T) {
	node, err := Parse("-2")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := &Binary{Op: OpSub, Left: &Literal{Value: 0}, Right: &Literal{Value: 2}}
	if !reflect.DeepEqual(node, want) {
		t.Fatalf("Parse(\"-2\") = %#v, want %#v", node, want)
	}

	node, err = Parse("+4")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if !reflect.DeepEqual(node, &Literal{Value: 4}) {
		t.Fatalf("Parse(\"+4\") = %#v, want literal 4", node)
	}
}

// TestParseErrors ensures malformed statements fail with the right error
// classification.
func TestParseErrors(t *testing.T) {
	tcs := []struct {
		input string
		want  error
	}{
		{"", ErrEmptyExpression},
		{"   ", ErrEmptyExpression},
		{"1d6 + + 3", ErrUnexpectedToken},
		{"1 +", ErrUnexpectedToken},
		{"-", ErrUnexpectedToken},
		{"1 2", ErrTrailingInput},
		{"2d6 1d4", ErrTrailingInput},
		{"2d6 * 3", ErrInvalidCharacter},
		{"9000000000000000000d6", ErrNumberTooLarge},
	}

	for _, tc := range tcs {
		_, err := Parse(tc.input)
		if !errors.Is(err, tc.want) {
			t.Fatalf("Parse(%q) error = %v, want %v", tc.input, err, tc.want)
		}
	}
}
