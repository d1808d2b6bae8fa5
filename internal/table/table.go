// Package table implements roll tables: named lookup tables that map
// contiguous die-value ranges to text entries, resolved by rolling a die.
package table

import (
	"errors"
	"fmt"

	"github.com/louisbranch/dicecast/internal/dice"
)

// ErrEmptyTable indicates a table with no entries.
var ErrEmptyTable = errors.New("table has no entries")

// ErrInvalidRange indicates an entry whose range is inverted or non-positive.
var ErrInvalidRange = errors.New("entry range is invalid")

// ErrNotContiguous indicates entry ranges that leave gaps or overlap.
var ErrNotContiguous = errors.New("entry ranges must cover 1..N without gaps or overlaps")

// Entry maps an inclusive die-value range to its outcome text.
type Entry struct {
	Min  int
	Max  int
	Text string
}

// Table is an ordered set of entries covering every face of one die.
type Table struct {
	Name    string
	Entries []Entry
}

// Result is the outcome of rolling a table.
type Result struct {
	Value int
	Entry Entry
}

// Sides returns the size of the die the table is rolled with, which is the
// highest value covered by its entries. A table with no entries has zero
// sides.
func (t *Table) Sides() int {
	if len(t.Entries) == 0 {
		return 0
	}
	return t.Entries[len(t.Entries)-1].Max
}

// Validate checks that entries cover 1..N contiguously in ascending order.
func (t *Table) Validate() error {
	if len(t.Entries) == 0 {
		return ErrEmptyTable
	}

	next := 1
	for _, entry := range t.Entries {
		if entry.Min < 1 || entry.Max < entry.Min {
			return fmt.Errorf("%w: %d-%d", ErrInvalidRange, entry.Min, entry.Max)
		}
		if entry.Min != next {
			return fmt.Errorf("%w: expected range to start at %d, got %d", ErrNotContiguous, next, entry.Min)
		}
		next = entry.Max + 1
	}
	return nil
}

// Lookup returns the entry covering value.
func (t *Table) Lookup(value int) (Entry, bool) {
	for _, entry := range t.Entries {
		if value >= entry.Min && value <= entry.Max {
			return entry, true
		}
	}
	return Entry{}, false
}

// Roll rolls the table's die through roller and returns the matched entry.
func (t *Table) Roll(roller dice.Roller) (Result, error) {
	if err := t.Validate(); err != nil {
		return Result{}, err
	}

	value := roller.Roll(t.Sides())
	entry, ok := t.Lookup(value)
	if !ok {
		return Result{}, fmt.Errorf("no entry covers roll %d", value)
	}
	return Result{Value: value, Entry: entry}, nil
}
