package dfa

// Run Returns true if the given symbol sequence is accepted by the automaton,
// starting from state 0. A symbol with no outgoing transition rejects.
func Run(d *DFA, input []int) bool {
	state := 0
	for _, symbol := range input {
		nextState := d.Step(state, symbol)
		if nextState == -1 {
			return false
		}
		state = nextState
	}
	return d.IsAccept(state)
}
