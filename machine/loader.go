// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"
)

const (
	HEADER_LINES  = 3       // Initial, accept and reject state lines.
	LINE_SIZE_MAX = 1 << 20 // Longest accepted description line.
)

// Loader reads machine descriptions.
type Loader struct {
	Verbose bool   // If set, logs every line read.
	Name    string // Source name used in errors.
}

// Load reads a description from input.
func (ld *Loader) Load(input io.Reader) (desc *Description, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, LINE_SIZE_MAX)

	var line string
	var lineno int

	var header []Label
	var transitions []Transition

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(text)

		if len(header) < HEADER_LINES {
			if len(line) == 0 {
				err = &ErrSyntax{LineNo: lineno, Line: text, Err: ErrHeaderIncomplete}
				return
			}
			header = append(header, Label(line))
			continue
		}

		if len(line) == 0 {
			continue
		}

		var trans Transition
		trans, err = ParseTransition(line)
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
		trans.LineNo = lineno

		transitions = append(transitions, trans)
	}

	err = scanner.Err()
	if err != nil {
		err = &ErrSource{Name: ld.name(), Err: err}
		return
	}

	if len(header) < HEADER_LINES {
		err = ErrHeaderIncomplete
		return
	}

	desc = &Description{
		Initial:     header[0],
		Accept:      header[1],
		Reject:      header[2],
		Transitions: transitions,
	}

	err = desc.Validate()
	if err != nil {
		desc = nil
		return
	}

	return
}

// LoadFile opens and reads the description at path.
func (ld *Loader) LoadFile(path string) (desc *Description, err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = &ErrSource{Name: path, Err: err}
		return
	}
	defer inf.Close()

	if len(ld.Name) == 0 {
		named := *ld
		named.Name = path
		ld = &named
	}

	return ld.Load(inf)
}

func (ld *Loader) name() string {
	if len(ld.Name) == 0 {
		return "description"
	}
	return ld.Name
}

// Load reads a description from input with a default Loader.
func Load(input io.Reader) (desc *Description, err error) {
	return (&Loader{}).Load(input)
}

// LoadFile reads the description at path with a default Loader.
func LoadFile(path string) (desc *Description, err error) {
	return (&Loader{}).LoadFile(path)
}
