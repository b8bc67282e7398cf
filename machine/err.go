package machine

import (
	"errors"

	"github.com/ezrec/tmachine/translate"
)

var f = translate.From

var (
	// Loader errors
	ErrSourceUnavailable = errors.New(f("source unavailable"))
	ErrHeaderIncomplete  = errors.New(f("header incomplete"))
	ErrStateConflict     = errors.New(f("accept and reject states are identical"))
	ErrStateEmpty        = errors.New(f("state empty"))

	// Transition errors
	ErrTransitionShort     = errors.New(f("transition too short"))
	ErrTransitionMalformed = errors.New(f("transition malformed"))
	ErrMovementInvalid     = errors.New(f("movement invalid"))
)

// ErrSyntax locates an error in a description source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrSource reports a description source that could not be opened or read.
// It matches ErrSourceUnavailable and the underlying I/O error.
type ErrSource struct {
	Name string
	Err  error
}

func (err *ErrSource) Error() string {
	return f("%v: %v: %v", err.Name, ErrSourceUnavailable, err.Err)
}

func (err *ErrSource) Unwrap() []error {
	return []error{ErrSourceUnavailable, err.Err}
}
