package dfa

import "errors"

var (
	// ErrStateCount indicates a non-positive declared state count.
	ErrStateCount = errors.New("dfa: state count must be positive")
	// ErrFinalRange indicates a declared accept state outside [0, NumStates).
	ErrFinalRange = errors.New("dfa: final state out of range")
	// ErrRowCount indicates the transition matrix has the wrong number of rows.
	ErrRowCount = errors.New("dfa: transition row count does not match state count")
	// ErrTargetRange indicates a transition destination outside [0, NumStates).
	ErrTargetRange = errors.New("dfa: transition target out of range")
	// ErrTransitionArity indicates transition rows of differing lengths.
	ErrTransitionArity = errors.New("dfa: transition rows must have equal length")
	// ErrSyntax indicates a textual description that could not be decoded.
	ErrSyntax = errors.New("dfa: malformed description")
)
