// Package tape provides the two-way unbounded tape of a Turing machine.
package tape

import (
	"slices"
	"strings"

	"github.com/ezrec/tmachine/machine"
)

// Tape is a sequence of symbols under a movable head. Any cell outside of
// the materialised range reads as machine.BLANK; reading, writing or moving
// past either end grows the tape instead of failing.
//
// Each side of position 0 grows by appending, so extending the tape costs
// the same in either direction.
type Tape struct {
	left  []machine.Symbol // Positions -1, -2, ... in that order.
	right []machine.Symbol // Positions 0, 1, ...
	head  int              // Head position, relative to the input start.
}

// NewTape creates a tape holding input, with the head on its first symbol.
func NewTape(input []machine.Symbol) (tp *Tape) {
	tp = &Tape{
		right: slices.Clone(input),
	}

	return
}

// FromString creates a tape from the runes of input. Invalid UTF-8 bytes
// become utf8.RuneError cells.
func FromString(input string) *Tape {
	symbols := make([]machine.Symbol, 0, len(input))
	for _, r := range input {
		symbols = append(symbols, machine.Symbol(r))
	}

	return NewTape(symbols)
}

// Head returns the head position. Position 0 is the first input symbol.
func (tp *Tape) Head() int {
	return tp.head
}

// Len returns the number of materialised cells.
func (tp *Tape) Len() int {
	return len(tp.left) + len(tp.right)
}

// Bounds returns the leftmost and one-past-rightmost materialised positions.
func (tp *Tape) Bounds() (left, right int) {
	return -len(tp.left), len(tp.right)
}

// cell grows the tape with blanks until the head is on a materialised cell,
// and returns that cell.
func (tp *Tape) cell() *machine.Symbol {
	if tp.head < 0 {
		index := -tp.head - 1
		for index >= len(tp.left) {
			tp.left = append(tp.left, machine.BLANK)
		}
		return &tp.left[index]
	}

	for tp.head >= len(tp.right) {
		tp.right = append(tp.right, machine.BLANK)
	}
	return &tp.right[tp.head]
}

// Read returns the symbol under the head.
func (tp *Tape) Read() machine.Symbol {
	return *tp.cell()
}

// Write replaces the symbol under the head.
func (tp *Tape) Write(symbol machine.Symbol) {
	*tp.cell() = symbol
}

// Move displaces the head by one cell.
func (tp *Tape) Move(move machine.Movement) {
	tp.head += int(move)
}

// Symbols returns a copy of the materialised cells, leftmost first.
func (tp *Tape) Symbols() (symbols []machine.Symbol) {
	symbols = make([]machine.Symbol, 0, tp.Len())
	for n := len(tp.left) - 1; n >= 0; n-- {
		symbols = append(symbols, tp.left[n])
	}
	symbols = append(symbols, tp.right...)

	return
}

// String returns the tape contents without leading and trailing blanks.
func (tp *Tape) String() string {
	var sb strings.Builder
	for _, symbol := range tp.Symbols() {
		sb.WriteRune(rune(symbol))
	}

	return strings.Trim(sb.String(), string(machine.BLANK))
}
