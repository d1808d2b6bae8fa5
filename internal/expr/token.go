package expr

import (
	"fmt"

	"github.com/louisbranch/dicecast/internal/dice"
)

// Kind identifies the type of a lexed token.
type Kind int

const (
	// KindEnd marks the end of a statement's input.
	KindEnd Kind = iota
	// KindNumber is an unsigned integer literal.
	KindNumber
	// KindDie is a die notation such as 2d6 or d4.
	KindDie
	// KindPlus is the + operator.
	KindPlus
	// KindMinus is the - operator.
	KindMinus
)

func (k Kind) String() string {
	switch k {
	case KindEnd:
		return "end of input"
	case KindNumber:
		return "number"
	case KindDie:
		return "die"
	case KindPlus:
		return "'+'"
	case KindMinus:
		return "'-'"
	default:
		return "unknown"
	}
}

// Token is one lexical unit of a statement. Pos is the byte offset of the
// token within the statement's expression text.
type Token struct {
	Kind  Kind
	Value int       // set for KindNumber
	Dice  dice.Dice // set for KindDie
	Pos   int
}

func (t Token) String() string {
	switch t.Kind {
	case KindNumber:
		return fmt.Sprintf("number %d", t.Value)
	case KindDie:
		return fmt.Sprintf("die %s", t.Dice)
	default:
		return t.Kind.String()
	}
}
