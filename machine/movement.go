package machine

// Symbol is a single tape character.
type Symbol rune

// BLANK is the symbol of every tape cell not written from the input.
// It is never a valid input symbol, but rules may read and write it.
const BLANK = Symbol('_')

// Label names a machine state.
type Label string

// Movement is the head displacement of a transition.
type Movement int

//go:generate go tool stringer -linecomment -type=Movement
const (
	MOVE_LEFT  = Movement(-1) // L
	MOVE_RIGHT = Movement(1)  // R
)

// movementMap maps the rule text of a direction to its Movement.
var movementMap = map[string]Movement{
	"L": MOVE_LEFT,
	"R": MOVE_RIGHT,
}

// Valid returns true for MOVE_LEFT and MOVE_RIGHT.
func (m Movement) Valid() bool {
	return m == MOVE_LEFT || m == MOVE_RIGHT
}
