package expr

import (
	"errors"
	"fmt"

	"github.com/louisbranch/dicecast/internal/dice"
)

// Result is the evaluated outcome of one statement.
//
// Rolls holds one entry per die-notation term, in source order, so callers
// can show the individual face values next to the total.
type Result struct {
	Label string
	Total int
	Rolls []dice.DieRoll
}

// Eval walks an expression tree, rolling dice through roller, and returns
// the total along with the per-notation roll details in left-to-right
// source order. Totals are combined with overflow checking; a combination
// that would wrap fails with ErrOverflow.
func Eval(node Expr, roller dice.Roller) (int, []dice.DieRoll, error) {
	var rolls []dice.DieRoll
	total, err := eval(node, roller, &rolls)
	if err != nil {
		return 0, nil, err
	}
	return total, rolls, nil
}

func eval(node Expr, roller dice.Roller, rolls *[]dice.DieRoll) (int, error) {
	switch n := node.(type) {
	case *Literal:
		return n.Value, nil
	case *Roll:
		roll, err := n.Dice.Roll(roller)
		if err != nil {
			if errors.Is(err, dice.ErrOverflow) {
				return 0, ErrOverflow
			}
			return 0, err
		}
		*rolls = append(*rolls, roll)
		return roll.Total, nil
	case *Binary:
		left, err := eval(n.Left, roller, rolls)
		if err != nil {
			return 0, err
		}
		right, err := eval(n.Right, roller, rolls)
		if err != nil {
			return 0, err
		}
		if n.Op == OpSub {
			return checkedSub(left, right)
		}
		return checkedAdd(left, right)
	default:
		return 0, fmt.Errorf("unknown expression node %T", node)
	}
}

func checkedAdd(a, b int) (int, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrOverflow
	}
	return sum, nil
}

func checkedSub(a, b int) (int, error) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, ErrOverflow
	}
	return diff, nil
}
