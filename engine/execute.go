package engine

import (
	"context"
	"io"

	"github.com/ezrec/tmachine/machine"
)

// Execute loads a description from source and runs it on input.
// No step is taken unless the whole description loads.
func Execute(source io.Reader, input string) (verdict Verdict, err error) {
	desc, err := machine.Load(source)
	if err != nil {
		return
	}

	return run(desc, input)
}

// ExecuteFile loads the description at path and runs it on input.
func ExecuteFile(path string, input string) (verdict Verdict, err error) {
	desc, err := machine.LoadFile(path)
	if err != nil {
		return
	}

	return run(desc, input)
}

func run(desc *machine.Description, input string) (verdict Verdict, err error) {
	eng := NewEngine(desc)

	err = eng.Reset(input)
	if err != nil {
		return
	}

	return eng.Run(context.Background())
}
