package machine

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/ezrec/tmachine/internal"
)

// Description is a loaded machine. It is not modified after loading, so it
// may be shared by any number of concurrent runs.
type Description struct {
	Initial Label // State the run starts in.
	Accept  Label // Absorbing state yielding an accept verdict.
	Reject  Label // Absorbing state yielding a reject verdict.

	Transitions []Transition // Rules, in file order.
}

// Validate checks the invariants of the description.
func (desc *Description) Validate() (err error) {
	if len(desc.Initial) == 0 || len(desc.Accept) == 0 || len(desc.Reject) == 0 {
		err = ErrStateEmpty
		return
	}

	if desc.Accept == desc.Reject {
		err = ErrStateConflict
		return
	}

	for _, trans := range desc.Transitions {
		err = trans.Validate()
		if err != nil {
			err = fmt.Errorf("%v: %w", trans, err)
			return
		}
	}

	return
}

// Terminal returns true if state is the accept or reject state.
func (desc *Description) Terminal(state Label) bool {
	return state == desc.Accept || state == desc.Reject
}

// Lookup scans the rules in file order and returns the first one that
// applies to state reading symbol.
func (desc *Description) Lookup(state Label, symbol Symbol) (trans Transition, ok bool) {
	for _, trans = range desc.Transitions {
		if trans.Matches(state, symbol) {
			ok = true
			return
		}
	}

	trans = Transition{}
	return
}

// States returns every distinct state label of the description, the header
// states first, then the rule states in order of first appearance.
func (desc *Description) States() iter.Seq[Label] {
	header := slices.Values([]Label{desc.Initial, desc.Accept, desc.Reject})

	var rules iter.Seq[Label] = func(yield func(Label) bool) {
		for _, trans := range desc.Transitions {
			if !yield(trans.State) || !yield(trans.Next) {
				return
			}
		}
	}

	return internal.IterSeqUnique(internal.IterSeqConcat(header, rules))
}

// Marshal writes the description in its text form.
func (desc *Description) Marshal(file io.Writer) (err error) {
	_, err = fmt.Fprintf(file, "%s\n%s\n%s\n", desc.Initial, desc.Accept, desc.Reject)
	if err != nil {
		return
	}

	for _, trans := range desc.Transitions {
		_, err = fmt.Fprintln(file, trans.String())
		if err != nil {
			return
		}
	}

	return
}
