// Package machine implements the description of a single-tape Turing machine
// and the loader for its textual form.
//
// A description file names the initial, accepting and rejecting states on its
// first three lines, followed by one transition rule per line:
//
//	q0
//	qA
//	qR
//	(q0,1)->(qA,1,R)
//
// Rules are kept in file order. When several rules apply to the same state and
// symbol, the first one in the file wins.
package machine
