// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/ezrec/tmachine/engine"
	"github.com/ezrec/tmachine/machine"
)

func main() {
	var description string
	var input string
	var limit string
	var showTape bool
	var verbose bool

	flag.StringVar(&description, "m", "", "Machine description file")
	flag.StringVar(&input, "i", "-", "Tape input, or - to run each line of stdin")
	flag.StringVar(&limit, "l", "", "Step limit expression (INPUT_LEN, STATES, RULES)")
	flag.BoolVar(&showTape, "t", false, "Print the final tape")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(description) == 0 {
		log.Fatalf("%v: -m is required", os.Args[0])
	}

	ld := &machine.Loader{Verbose: verbose}
	desc, err := ld.LoadFile(description)
	if err != nil {
		log.Fatalf("%v: %v", description, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var inputs []string
	if input == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			inputs = append(inputs, strings.TrimSpace(scanner.Text()))
		}
		if err := scanner.Err(); err != nil {
			log.Fatalf("stdin: %v", err)
		}
	} else {
		inputs = []string{input}
	}

	accepted := true
	for _, text := range inputs {
		eng := engine.NewEngine(desc)
		eng.Verbose = verbose

		if len(limit) != 0 {
			eng.Limit, err = engine.EvalLimit(limit, desc, text)
			if err != nil {
				log.Fatalf("%v: %v", os.Args[0], err)
			}
		}

		err = eng.Reset(text)
		if err != nil {
			log.Fatalf("%q: %v", text, err)
		}

		var verdict engine.Verdict
		verdict, err = eng.Run(ctx)
		if err != nil {
			log.Fatalf("%q: %v", text, err)
		}

		line := verdict.String()
		if len(inputs) > 1 {
			line = fmt.Sprintf("%s: %s", text, line)
		}
		if showTape {
			line = fmt.Sprintf("%s %s", line, eng.Tape.String())
		}
		fmt.Println(line)

		if verdict != engine.VERDICT_ACCEPT {
			accepted = false
		}
	}

	if !accepted {
		stop()
		os.Exit(1)
	}
}
