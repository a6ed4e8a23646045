package dfa

import (
	"github.com/bits-and-blooms/bitset"
)

// Table Distinguishability relation over the state set of one automaton,
// as computed by BuildTable. A set bit for the unordered pair {i, j} means
// some input string drives exactly one of i, j to an accept state. Marking
// is monotone: once set during propagation a pair is never cleared. The
// table is owned by the run that built it and is not safe for concurrent
// mutation, but reads after BuildTable returns are safe from any goroutine.
type Table struct {
	numStates int

	// One bit per ordered (i, j) with i < j, at flat index i*numStates+j.
	// The lower triangle and the diagonal stay unset.
	marked *bitset.BitSet
}

func newTable(numStates int) *Table {
	return &Table{
		numStates: numStates,
		marked:    bitset.New(uint(numStates * numStates)),
	}
}

// NumStates The state count this table was built over.
func (t *Table) NumStates() int {
	return t.numStates
}

func (t *Table) index(i, j int) uint {
	if i > j {
		i, j = j, i
	}
	return uint(i*t.numStates + j)
}

// Distinguishable Reports whether the pair {i, j} is marked. Argument order
// is irrelevant; a state is never distinguishable from itself.
func (t *Table) Distinguishable(i, j int) bool {
	if i == j {
		return false
	}
	return t.marked.Test(t.index(i, j))
}

func (t *Table) mark(i, j int) {
	t.marked.Set(t.index(i, j))
}

// BuildTable Computes the distinguishability table for the given automaton
// with the table-filling (Moore) algorithm. First every pair with differing
// finality is marked: the empty string already tells them apart. Then full
// passes over the unmarked pairs extend the marking one symbol backwards,
// marking {i, j} when some symbol leads them to a marked pair, until a pass
// makes no progress. Each productive pass marks at least one of the
// n*(n-1)/2 pairs, and a distinguishing string of length k is discovered by
// pass k, so at most NumStates passes run.
//
// The input must have passed Validate; the result is unspecified for
// descriptions with out-of-range destinations. Rows of differing lengths are
// tolerated by comparing only symbols present in both, but validated input
// never has such rows.
func BuildTable(d *DFA) *Table {
	t, _ := buildTable(d)
	return t
}

// buildTable additionally reports how many propagation passes ran, counting
// the final no-progress pass.
func buildTable(d *DFA) (*Table, int) {
	n := d.NumStates()
	t := newTable(n)

	// Base case: one accepts the empty string, the other does not.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d.IsAccept(i) != d.IsAccept(j) {
				t.mark(i, j)
			}
		}
	}

	// Propagate to a fixed point.
	passes := 0
	for changed := true; changed; {
		changed = false
		passes++

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if t.Distinguishable(i, j) {
					continue
				}

				rowI, rowJ := d.Row(i), d.Row(j)
				symbols := len(rowI)
				if len(rowJ) < symbols {
					symbols = len(rowJ)
				}

				for a := 0; a < symbols; a++ {
					p, q := rowI[a], rowJ[a]
					if p != q && t.Distinguishable(p, q) {
						t.mark(i, j)
						changed = true
						break
					}
				}
			}
		}
	}

	return t, passes
}
