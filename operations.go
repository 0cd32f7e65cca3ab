package fsa

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Determinize Converts the given NFA into an equivalent DFA using a default Converter.
// Worst case complexity: exponential in number of states. If a is already a DFA it
// is returned unchanged.
func Determinize(a *Automaton) (*Automaton, error) {
	if a != nil && a.IsDFA() {
		return a, nil
	}
	return NewConverter().Convert(a)
}

// Reachable Returns the states reachable from the start states over any transition,
// epsilon transitions included. A nil automaton has no reachable states.
func Reachable(a *Automaton) StateSet {
	if a == nil {
		return StateSet{}
	}
	return StateSet{a: a, bits: reachable(a)}
}

func reachable(a *Automaton) *bitset.BitSet {
	seen := a.start.Clone()
	workList := make([]uint, 0, a.GetNumStates())
	for s, ok := seen.NextSet(0); ok; s, ok = seen.NextSet(s + 1) {
		workList = append(workList, s)
	}

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		for _, indices := range a.edges[state] {
			for _, ti := range indices {
				for _, dest := range a.targets[ti] {
					if !seen.Test(dest) {
						seen.Set(dest)
						workList = append(workList, dest)
					}
				}
			}
		}
	}
	return seen
}

// IsEmpty Returns true if the given automaton accepts no strings.
func IsEmpty(a *Automaton) bool {
	if a == nil || a.accept.None() {
		// Common case: no accept states at all
		return true
	}
	return reachable(a).IntersectionCardinality(a.accept) == 0
}

// RemoveUnreachable Returns an automaton without the states that cannot be reached
// from the start states, and without their transitions. The language is unchanged.
func RemoveUnreachable(a *Automaton) (*Automaton, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: automaton is nil", ErrConversion)
	}
	live := reachable(a)
	if live.Count() == uint(a.GetNumStates()) {
		return a, nil
	}

	keep := func(id string) bool {
		return live.Test(uint(a.stateIndex[id]))
	}

	cfg := Config{
		Alphabet:    a.Alphabet(),
		StartStates: a.StartStates(),
	}
	for _, s := range a.states {
		if keep(s) {
			cfg.States = append(cfg.States, s)
		}
	}
	for _, s := range a.acceptStates {
		if keep(s) {
			cfg.AcceptStates = append(cfg.AcceptStates, s)
		}
	}
	// Every destination of a live source is live too.
	for _, t := range a.transitions {
		if keep(t.from) {
			cfg.Transitions = append(cfg.Transitions, t.Config())
		}
	}
	return New(cfg)
}

// Totalize Returns a DFA whose transition function is total: a non-accepting trap
// state absorbs every (state, symbol) pair that has no transition, and loops on every
// symbol. The trap state is named EmptySetName, primed until the name is unused.
// If a is already total it is returned unchanged.
func Totalize(a *Automaton) (*Automaton, error) {
	if a == nil || !a.IsDFA() {
		return nil, fmt.Errorf("%w: only a DFA can be totalized", ErrConversion)
	}

	trap := EmptySetName
	for a.HasState(trap) {
		trap += "'"
	}

	cfg := a.Config()
	added := false
	for i, s := range a.states {
		for _, sym := range a.alphabet {
			if len(a.transitionsFrom(uint(i), sym)) > 0 {
				continue
			}
			cfg.Transitions = append(cfg.Transitions, TransitionConfig{From: s, Input: sym, To: []string{trap}})
			added = true
		}
	}
	if !added {
		return a, nil
	}

	cfg.States = append(cfg.States, trap)
	for _, sym := range a.alphabet {
		cfg.Transitions = append(cfg.Transitions, TransitionConfig{From: trap, Input: sym, To: []string{trap}})
	}
	return New(cfg)
}

// IsTotal Returns true if every state of a has at least one transition on every symbol.
func IsTotal(a *Automaton) bool {
	if a == nil {
		return false
	}
	for i := range a.states {
		for _, sym := range a.alphabet {
			if len(a.transitionsFrom(uint(i), sym)) == 0 {
				return false
			}
		}
	}
	return true
}
