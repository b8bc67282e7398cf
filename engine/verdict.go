package engine

// Verdict is the outcome of a halted run.
type Verdict int

//go:generate go tool stringer -linecomment -type=Verdict
const (
	VERDICT_REJECT = Verdict(0) // reject
	VERDICT_ACCEPT = Verdict(1) // accept
)
