// Package dfa finds the behaviorally equivalent state pairs of a
// deterministic finite automaton with the table-filling (Moore) algorithm.
//
// A run is three sequential steps over one description: Validate checks the
// structural invariants, BuildTable computes the distinguishability relation
// by base-case marking plus fixed-point propagation, and EquivalentPairs
// reads off every pair no input string can tell apart. Nothing is shared
// between runs, so independent automata can be processed concurrently
// without coordination.
package dfa
