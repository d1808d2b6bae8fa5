package expr

import "github.com/louisbranch/dicecast/internal/dice"

// Op is a binary arithmetic operator.
type Op int

const (
	// OpAdd is addition.
	OpAdd Op = iota
	// OpSub is subtraction.
	OpSub
)

func (o Op) String() string {
	if o == OpSub {
		return "-"
	}
	return "+"
}

// Expr is a node in a parsed statement's expression tree.
//
// The grammar only chains terms left-to-right at a single precedence level,
// so the tree is always a left-leaning chain of Binary nodes over Literal
// and Roll leaves. It is kept as a tree so additional precedence levels can
// be added without changing evaluation.
type Expr interface {
	expr()
}

// Literal is an integer term.
type Literal struct {
	Value int
}

// Roll is a die-notation term.
type Roll struct {
	Dice dice.Dice
}

// Binary applies an operator to two sub-expressions.
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (*Literal) expr() {}
func (*Roll) expr()    {}
func (*Binary) expr()  {}
