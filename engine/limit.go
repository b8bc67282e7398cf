package engine

import (
	"errors"
	"slices"
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/tmachine/machine"
)

// ErrLimit describes a step limit expression that could not be evaluated.
type ErrLimit struct {
	Expr string
	Err  error
}

func (err *ErrLimit) Error() string {
	return f("%v '%v': %v", ErrLimitExpression, err.Expr, err.Err)
}

func (err *ErrLimit) Unwrap() []error {
	return []error{ErrLimitExpression, err.Err}
}

// EvalLimit evaluates a step limit expression such as
// "100 * INPUT_LEN * INPUT_LEN". The predeclared names are INPUT_LEN, the
// number of input symbols, STATES, the number of distinct states, and RULES,
// the number of transitions.
func EvalLimit(expr string, desc *machine.Description, input string) (limit int, err error) {
	defer func() {
		if err != nil {
			err = &ErrLimit{Expr: expr, Err: err}
		}
	}()

	thread := starlark.Thread{Name: "limit"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"INPUT_LEN": starlark.MakeInt(utf8.RuneCountInString(input)),
		"STATES":    starlark.MakeInt(len(slices.Collect(desc.States()))),
		"RULES":     starlark.MakeInt(len(desc.Transitions)),
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "limit", prog, pred)
	if err != nil {
		return
	}

	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = errors.New(f("not an integer"))
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > int64(^uint(0)>>1) {
		err = errors.New(f("%v out of range", st_int))
		return
	}

	limit = int(st_int64)
	return
}
