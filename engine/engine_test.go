package engine

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tmachine/machine"
)

// Increments a binary number: scan right to the first blank, then carry
// leftwards.
var incrementMachine = []string{
	"q0",
	"qA",
	"qR",
	"(q0,0)->(q0,0,R)",
	"(q0,1)->(q0,1,R)",
	"(q0,_)->(q1,_,L)",
	"(q1,1)->(q1,0,L)",
	"(q1,0)->(qA,1,R)",
	"(q1,_)->(qA,1,R)",
}

var acceptOneMachine = []string{
	"q0",
	"qA",
	"qR",
	"(q0,1)->(qA,1,R)",
}

func doLoad(t *testing.T, lines []string) *machine.Description {
	t.Helper()

	desc, err := machine.Load(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	return desc
}

func doRun(t *testing.T, eng *Engine, input string) (verdict Verdict) {
	t.Helper()
	assert := assert.New(t)

	eng.Verbose = testing.Verbose()

	err := eng.Reset(input)
	assert.NoError(err)

	verdict, err = eng.Run(context.Background())
	assert.NoError(err)
	assert.True(eng.Halted())

	return
}

func TestEngine(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(doLoad(t, acceptOneMachine))
	assert.False(eng.Verbose)
	assert.Equal(0, eng.Limit)
	assert.Nil(eng.Tape)

	_, err := eng.Tick()
	assert.ErrorIs(err, ErrNotReset)
}

func TestEngineAccept(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(doLoad(t, acceptOneMachine))
	assert.Equal(VERDICT_ACCEPT, doRun(t, eng, "1"))
	assert.Equal(1, eng.Steps)
	assert.Equal(1, eng.Tape.Head())
	assert.Equal(machine.Label("qA"), eng.State)
}

func TestEngineImplicitReject(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(doLoad(t, acceptOneMachine))
	assert.Equal(VERDICT_REJECT, doRun(t, eng, "0"))
	assert.Equal(0, eng.Steps)
	assert.Equal(machine.Label("qR"), eng.State)

	assert.Equal(VERDICT_REJECT, doRun(t, eng, ""))
}

func TestEngineIncrement(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(doLoad(t, incrementMachine))

	table := [](struct {
		input string
		tape  string
		steps int
	}){
		{"111", "1000", 8},
		{"101", "110", 6},
		{"0", "1", 3},
		{"", "1", 2},
	}

	for _, entry := range table {
		assert.Equal(VERDICT_ACCEPT, doRun(t, eng, entry.input), entry.input)
		assert.Equal(entry.tape, eng.Tape.String(), entry.input)
		assert.Equal(entry.steps, eng.Steps, entry.input)
	}
}

func TestEngineTick(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(doLoad(t, incrementMachine))
	assert.NoError(eng.Reset("1"))

	expected := []machine.Label{"q0", "q0", "q1", "q1"}
	for n, state := range expected {
		assert.Equal(state, eng.State, n)
		_, ok := eng.Verdict()
		assert.False(ok, n)

		done, err := eng.Tick()
		assert.NoError(err)
		assert.Equal(n == len(expected)-1, done, n)
	}

	done, err := eng.Tick()
	assert.NoError(err)
	assert.True(done)
	assert.Equal(4, eng.Steps)

	verdict, ok := eng.Verdict()
	assert.True(ok)
	assert.Equal(VERDICT_ACCEPT, verdict)
	assert.Equal("10", eng.Tape.String())
}

func TestEngineInitialTerminal(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(doLoad(t, []string{"qR", "qA", "qR", "(qR,1)->(qA,1,R)"}))
	assert.Equal(VERDICT_REJECT, doRun(t, eng, "1"))
	assert.Equal(0, eng.Steps)
}

func TestEngineDeterministic(t *testing.T) {
	assert := assert.New(t)

	desc := doLoad(t, incrementMachine)

	first := NewEngine(desc)
	second := NewEngine(desc)

	assert.Equal(doRun(t, first, "1011"), doRun(t, second, "1011"))
	assert.Equal(first.Tape.Symbols(), second.Tape.Symbols())
	assert.Equal(first.Steps, second.Steps)
}

func TestEngineShared(t *testing.T) {
	assert := assert.New(t)

	desc := doLoad(t, incrementMachine)
	inputs := []string{"1", "11", "111", "1111", "10", "100"}
	tapes := make([]string, len(inputs))

	var wg sync.WaitGroup
	for n, input := range inputs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			eng := NewEngine(desc)
			if eng.Reset(input) != nil {
				return
			}
			if _, err := eng.Run(context.Background()); err == nil {
				tapes[n] = eng.Tape.String()
			}
		}()
	}
	wg.Wait()

	assert.Equal([]string{"10", "100", "1000", "10000", "11", "101"}, tapes)
	assert.Equal(9, len(desc.Transitions))
}

func TestEngineInputSymbol(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(doLoad(t, acceptOneMachine))
	for _, input := range []string{"1_1", "_", "1\xff"} {
		err := eng.Reset(input)
		assert.ErrorIs(err, ErrInputSymbol, input)
		assert.Nil(eng.Tape, input)
	}
}

var loopMachine = []string{
	"q0",
	"qA",
	"qR",
	"(q0,_)->(q0,_,R)",
}

func TestEngineLimit(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(doLoad(t, loopMachine))
	eng.Limit = 100
	assert.NoError(eng.Reset(""))

	_, err := eng.Run(context.Background())
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(100, eng.Steps)
	assert.False(eng.Halted())

	var runtime *ErrRuntime
	assert.True(errors.As(err, &runtime))
	assert.Equal(100, runtime.Step)
	assert.Equal(machine.Label("q0"), runtime.State)
	assert.Equal("step 100 state q0 step limit reached", err.Error())

	// A run halting within the limit is unaffected.
	eng = NewEngine(doLoad(t, incrementMachine))
	eng.Limit = 8
	assert.Equal(VERDICT_ACCEPT, doRun(t, eng, "111"))
}

func TestEngineContext(t *testing.T) {
	assert := assert.New(t)

	eng := NewEngine(doLoad(t, loopMachine))
	assert.NoError(eng.Reset(""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eng.Run(ctx)
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(0, eng.Steps)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = eng.Run(ctx)
	assert.ErrorIs(err, context.DeadlineExceeded)
	assert.Less(0, eng.Steps)
}
