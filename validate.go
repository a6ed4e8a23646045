package dfa

import "fmt"

// Validate Checks the structural consistency of the automaton description:
// positive state count, accept states in range, one equal-length transition
// row per state, every destination in range. Pure; the first violation is
// returned and the description is left untouched. All sentinel errors wrap
// position detail, so callers match with errors.Is.
func (d *DFA) Validate() error {
	if d.numStates <= 0 {
		return fmt.Errorf("%w: got %d", ErrStateCount, d.numStates)
	}

	for _, s := range d.finals {
		if s < 0 || s >= d.numStates {
			return fmt.Errorf("%w: state %d not in [0, %d)", ErrFinalRange, s, d.numStates)
		}
	}

	if len(d.transitions) != d.numStates {
		return fmt.Errorf("%w: %d rows for %d states", ErrRowCount, len(d.transitions), d.numStates)
	}

	width := len(d.transitions[0])
	for i, row := range d.transitions {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d symbols, row 0 has %d", ErrTransitionArity, i, len(row), width)
		}
		for a, dest := range row {
			if dest < 0 || dest >= d.numStates {
				return fmt.Errorf("%w: state %d, symbol %d: destination %d not in [0, %d)",
					ErrTargetRange, i, a, dest, d.numStates)
			}
		}
	}

	return nil
}
