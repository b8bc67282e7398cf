package engine

import (
	"errors"

	"github.com/ezrec/tmachine/machine"
	"github.com/ezrec/tmachine/translate"
)

var f = translate.From

var (
	ErrInputSymbol     = errors.New(f("input symbol invalid"))
	ErrNotReset        = errors.New(f("engine not reset"))
	ErrStepLimit       = errors.New(f("step limit reached"))
	ErrLimitExpression = errors.New(f("step limit expression"))
)

// ErrRuntime indicates the step and state of a runtime error.
type ErrRuntime struct {
	Step  int
	State machine.Label
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("step %d state %v %v", err.Step, err.State, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
