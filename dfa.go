package dfa

import (
	"github.com/bits-and-blooms/bitset"
)

// DFA Represents a deterministic finite automaton over a dense transition
// matrix. States are integers in [0, NumStates); input symbols are integers
// indexing each state's transition row. State 0 is always the initial state.
// Accept states are tracked in a bitset. A DFA built from untrusted input
// should be checked with Validate before any algorithmic work.
type DFA struct {
	numStates int

	// Accept states as declared by the caller, kept verbatim so Validate
	// can report out-of-range entries.
	finals []int

	isAccept *bitset.BitSet

	// Holds the destination state for each (state, symbol).
	transitions [][]int
}

// New Create a DFA from a full description: the declared state count, the
// declared accept states, and one transition row per state, where
// transitions[s][a] is the destination of state s on symbol a. The
// description is taken as-is; call Validate to check it for consistency.
func New(numStates int, finals []int, transitions [][]int) *DFA {
	n := 0
	if numStates > 0 {
		n = numStates
	}
	isAccept := bitset.New(uint(n))
	for _, s := range finals {
		if s >= 0 && s < numStates {
			isAccept.Set(uint(s))
		}
	}
	return &DFA{
		numStates:   numStates,
		finals:      finals,
		isAccept:    isAccept,
		transitions: transitions,
	}
}

// NumStates How many states this automaton has.
func (d *DFA) NumStates() int {
	return d.numStates
}

// NumSymbols Size of the widest transition row. For a validated DFA every
// row has exactly this length.
func (d *DFA) NumSymbols() int {
	width := 0
	for _, row := range d.transitions {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Finals Returns the accept states as declared, in declaration order.
func (d *DFA) Finals() []int {
	return d.finals
}

// IsAccept Returns true if this state is an accept state.
func (d *DFA) IsAccept(state int) bool {
	return d.isAccept.Test(uint(state))
}

// Row Returns the transition row for the given state.
func (d *DFA) Row(state int) []int {
	return d.transitions[state]
}

// Step Performs lookup in the transition matrix.
// Params: 	state – starting state
//
//	symbol – input symbol to look up
//
// Returns: destination state, -1 if the state has no transition on symbol
func (d *DFA) Step(state, symbol int) int {
	if state < 0 || state >= len(d.transitions) {
		return -1
	}
	row := d.transitions[state]
	if symbol < 0 || symbol >= len(row) {
		return -1
	}
	return row[symbol]
}
