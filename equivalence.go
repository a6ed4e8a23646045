package dfa

// StatePair An unordered pair of equivalent states, normalized to I < J.
type StatePair struct {
	I int
	J int
}

// EquivalentPairs Returns every pair of states the table never marked
// distinguishable, i.e. pairs no input string can tell apart. Pairs are
// normalized to I < J and sorted by I, then J. The slice is non-nil and
// empty when no two states are equivalent.
func (t *Table) EquivalentPairs() []StatePair {
	pairs := make([]StatePair, 0)
	for i := 0; i < t.numStates; i++ {
		for j := i + 1; j < t.numStates; j++ {
			if !t.Distinguishable(i, j) {
				pairs = append(pairs, StatePair{I: i, J: j})
			}
		}
	}
	return pairs
}

// Classes Partitions the state set into equivalence classes. States within a
// class are ascending, and classes are ordered by their smallest state, so a
// fully distinguishable automaton yields NumStates singleton classes. The
// equivalence relation is transitive by construction, so a plain union over
// the equivalent pairs suffices.
func (t *Table) Classes() [][]int {
	n := t.numStates

	// parent[s] is the smallest known equivalent state of s.
	parent := make([]int, n)
	for s := range parent {
		parent[s] = s
	}
	find := func(s int) int {
		for parent[s] != s {
			parent[s] = parent[parent[s]]
			s = parent[s]
		}
		return s
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if t.Distinguishable(i, j) {
				continue
			}
			ri, rj := find(i), find(j)
			if ri > rj {
				ri, rj = rj, ri
			}
			parent[rj] = ri
		}
	}

	members := make(map[int][]int, n)
	roots := make([]int, 0, n)
	for s := 0; s < n; s++ {
		root := find(s)
		if len(members[root]) == 0 {
			roots = append(roots, root)
		}
		members[root] = append(members[root], s)
	}

	// Roots are their class's minimum and were appended in ascending state
	// order, so no further sorting is needed.
	classes := make([][]int, 0, len(roots))
	for _, root := range roots {
		classes = append(classes, members[root])
	}
	return classes
}
