package machine

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Transition is one rule of the machine: in State, reading Read, write Write,
// move the head by Move, and continue in Next.
type Transition struct {
	LineNo int    // Source line of the rule, 0 if not loaded from text.
	State  Label  // State the rule applies from.
	Read   Symbol // Symbol that must be under the head.
	Next   Label  // State to continue in.
	Write  Symbol // Symbol written before moving.
	Move   Movement
}

// transitionRe matches (<state>,<symbol>)->(<state>,<symbol>,<direction>).
// States are any run of characters but the comma. The parenthesis opening
// the right hand side is optional, and taken as such when present.
var transitionRe = regexp.MustCompile(`^\(([^,]+),(.)\)->\(?([^,]+),(.),([LR])\)$`)

// ParseTransition parses a single rule line. Either all five fields of the
// rule are recovered, or the whole line is rejected.
func ParseTransition(line string) (trans Transition, err error) {
	if utf8.RuneCountInString(line) < 3 {
		err = ErrTransitionShort
		return
	}

	if !utf8.ValidString(line) {
		err = ErrTransitionMalformed
		return
	}

	fields := transitionRe.FindStringSubmatch(line)
	if fields == nil {
		err = ErrTransitionMalformed
		return
	}

	move, ok := movementMap[fields[5]]
	if !ok {
		err = ErrTransitionMalformed
		return
	}

	trans = Transition{
		State: Label(fields[1]),
		Read:  symbolOf(fields[2]),
		Next:  Label(fields[3]),
		Write: symbolOf(fields[4]),
		Move:  move,
	}

	return
}

// symbolOf returns the single symbol held by text.
func symbolOf(text string) Symbol {
	r, _ := utf8.DecodeRuneInString(text)
	return Symbol(r)
}

// Matches returns true if the rule applies to state reading symbol.
func (trans Transition) Matches(state Label, symbol Symbol) bool {
	return trans.State == state && trans.Read == symbol
}

// Validate checks a rule built outside of ParseTransition.
func (trans Transition) Validate() (err error) {
	switch {
	case len(trans.State) == 0 || len(trans.Next) == 0:
		err = ErrStateEmpty
	case !trans.Move.Valid():
		err = ErrMovementInvalid
	}

	return
}

// String renders the rule in its canonical text form.
func (trans Transition) String() string {
	return fmt.Sprintf("(%s,%c)->(%s,%c,%v)", trans.State, trans.Read, trans.Next, trans.Write, trans.Move)
}
