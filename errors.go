package fsa

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAutomaton is returned when a Config violates a structural or referential invariant.
	ErrInvalidAutomaton = errors.New("invalid automaton")

	// ErrSimulation is returned when an automaton cannot be run against the given input.
	ErrSimulation = errors.New("simulation error")

	// ErrUnknownState is returned when a state id is not declared by the automaton.
	ErrUnknownState = fmt.Errorf("%w: unknown state", ErrSimulation)

	// ErrConversion is returned when subset construction is not defined for the input.
	ErrConversion = errors.New("conversion error")

	// ErrTooComplex is returned when determinizing would materialize more subsets
	// than the work limit allows.
	ErrTooComplex = fmt.Errorf("%w: too complex to determinize", ErrConversion)
)
