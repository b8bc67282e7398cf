// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package engine executes Turing machine descriptions against an input tape.
package engine

import (
	"context"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/ezrec/tmachine/machine"
	"github.com/ezrec/tmachine/tape"
)

// Engine is the execution state of a single run. The Description is only
// read, so it may be shared between engines; the Tape belongs to the Engine.
type Engine struct {
	Verbose     bool                 // If set, logs every step.
	Limit       int                  // Maximum steps per run, 0 for no limit.
	Description *machine.Description // Machine being executed.

	Tape  *tape.Tape    // Tape of the current run.
	State machine.Label // Current state.
	Steps int           // Transitions applied since the last reset.
}

// NewEngine creates a new engine for desc.
func NewEngine(desc *machine.Description) (eng *Engine) {
	eng = &Engine{
		Description: desc,
	}

	return
}

// Reset starts a new run on input. The input must be valid UTF-8 and may
// not hold the blank symbol.
func (eng *Engine) Reset(input string) (err error) {
	if !utf8.ValidString(input) || strings.ContainsRune(input, rune(machine.BLANK)) {
		err = ErrInputSymbol
		return
	}

	eng.Tape = tape.FromString(input)
	eng.State = eng.Description.Initial
	eng.Steps = 0

	return
}

// Halted returns true once the run is in the accept or reject state.
func (eng *Engine) Halted() bool {
	return eng.Description.Terminal(eng.State)
}

// Verdict returns the outcome of the run, and false if it has not halted.
func (eng *Engine) Verdict() (verdict Verdict, ok bool) {
	switch eng.State {
	case eng.Description.Accept:
		verdict, ok = VERDICT_ACCEPT, true
	case eng.Description.Reject:
		verdict, ok = VERDICT_REJECT, true
	}

	return
}

// Tick applies a single transition. A state and symbol without a rule moves
// the run to the reject state.
func (eng *Engine) Tick() (done bool, err error) {
	if eng.Tape == nil {
		err = ErrNotReset
		return
	}

	if eng.Halted() {
		done = true
		return
	}

	symbol := eng.Tape.Read()
	trans, ok := eng.Description.Lookup(eng.State, symbol)
	if !ok {
		if eng.Verbose {
			log.Printf("%d: (%s,%c) no rule, rejecting", eng.Steps, eng.State, symbol)
		}
		eng.State = eng.Description.Reject
		done = true
		return
	}

	if eng.Limit > 0 && eng.Steps >= eng.Limit {
		err = &ErrRuntime{Step: eng.Steps, State: eng.State, Err: ErrStepLimit}
		return
	}

	if eng.Verbose {
		log.Printf("%d: head %d %v (line %d)", eng.Steps, eng.Tape.Head(), trans, trans.LineNo)
	}

	eng.Tape.Write(trans.Write)
	eng.Tape.Move(trans.Move)
	eng.State = trans.Next
	eng.Steps++

	done = eng.Halted()

	return
}

// Run ticks the engine until it halts. There is no implicit bound on the
// number of steps: a machine that never reaches a terminal state runs until
// Limit is reached or ctx is done.
func (eng *Engine) Run(ctx context.Context) (verdict Verdict, err error) {
	for {
		err = ctx.Err()
		if err != nil {
			err = &ErrRuntime{Step: eng.Steps, State: eng.State, Err: err}
			return
		}

		var done bool
		done, err = eng.Tick()
		if err != nil {
			return
		}
		if done {
			break
		}
	}

	verdict, _ = eng.Verdict()

	return
}
