package dfa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Decode Reads one automaton description in the line-oriented text format:
// a state count line, an alphabet line (symbol names, unused by the
// algorithms), a final-states line (possibly blank), then one transition row
// per state with a destination per alphabet symbol. The decoded DFA is
// returned as-is; callers run Validate before building tables. Syntax-level
// problems wrap ErrSyntax.
func Decode(r io.Reader) (*DFA, error) {
	sc := bufio.NewScanner(r)

	line, err := nextLine(sc, "state count")
	if err != nil {
		return nil, err
	}
	numStates, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("%w: state count %q", ErrSyntax, strings.TrimSpace(line))
	}

	// Alphabet line. Only its presence matters; rows carry the transitions.
	if _, err := nextLine(sc, "alphabet"); err != nil {
		return nil, err
	}

	line, err = nextLine(sc, "final states")
	if err != nil {
		return nil, err
	}
	finals, err := parseInts(line, "final state")
	if err != nil {
		return nil, err
	}

	transitions := make([][]int, 0, max(numStates, 0))
	for i := 0; i < numStates; i++ {
		line, err := nextLine(sc, fmt.Sprintf("transition row %d", i))
		if err != nil {
			return nil, err
		}
		row, err := parseInts(line, "transition target")
		if err != nil {
			return nil, err
		}
		transitions = append(transitions, row)
	}

	return New(numStates, finals, transitions), nil
}

func nextLine(sc *bufio.Scanner, what string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: unexpected end of input reading %s", ErrSyntax, what)
	}
	return sc.Text(), nil
}

func parseInts(line, what string) ([]int, error) {
	fields := strings.Fields(line)
	values := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q", ErrSyntax, what, f)
		}
		values = append(values, v)
	}
	return values, nil
}

// FormatPairs Renders an equivalence pair sequence as "(0,1) (2,3)", or the
// sentinel "none" when the sequence is empty.
func FormatPairs(pairs []StatePair) string {
	if len(pairs) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("(%d,%d)", p.I, p.J))
	}
	return strings.Join(parts, " ")
}
