// Package dice implements dice values and the rolling capability used by
// expression evaluation.
package dice

import (
	"errors"
	"fmt"
	"math"
)

// MaxDieValue bounds Count and Sides. Dice are 32-bit values; anything
// larger is rejected rather than rolled.
const MaxDieValue = 1<<32 - 1

// ErrInvalidDice indicates a dice value has invalid fields.
var ErrInvalidDice = errors.New("dice count or sides out of range")

// ErrOverflow indicates a roll total exceeds the integer range.
var ErrOverflow = errors.New("roll total overflows")

// Dice represents one or more fair dice of the same size, written NdS.
type Dice struct {
	Count int
	Sides int
}

// String renders the value in NdS notation.
func (d Dice) String() string {
	return fmt.Sprintf("%dd%d", d.Count, d.Sides)
}

// DieRoll captures the results for rolling a single dice value.
type DieRoll struct {
	Sides   int
	Results []int
	Total   int
}

// Roll rolls the dice through the provided roller.
//
// The roller is invoked Count times in order and Results preserves that
// order, so a fixed roller seed always reproduces the same DieRoll. A zero
// count is valid and produces an empty result set with a zero total.
// Counts or sides above MaxDieValue fail with ErrInvalidDice; a total that
// would exceed the int range fails with ErrOverflow.
func (d Dice) Roll(roller Roller) (DieRoll, error) {
	if d.Sides <= 0 || d.Count < 0 || int64(d.Sides) > MaxDieValue || int64(d.Count) > MaxDieValue {
		return DieRoll{}, ErrInvalidDice
	}

	results := make([]int, d.Count)
	total := 0
	for i := 0; i < d.Count; i++ {
		value := roller.Roll(d.Sides)
		results[i] = value
		if value > math.MaxInt-total {
			return DieRoll{}, ErrOverflow
		}
		total += value
	}

	return DieRoll{
		Sides:   d.Sides,
		Results: results,
		Total:   total,
	}, nil
}
