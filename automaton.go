// Package fsa models deterministic and non-deterministic finite-state automata over
// string-labelled states and symbols, runs them against input and converts NFAs into
// equivalent DFAs by subset construction.
package fsa

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// Automaton Represents an automaton and all its states and transitions. An Automaton
// is built once by New, fully validated, and never modified afterwards; methods that
// look like mutations (WithState, WithTransition, WithAccept) return a new automaton.
//
// Internally every state is numbered by its declaration position so that sets of
// states can be held in bitsets.
type Automaton struct {
	states     []string
	stateIndex map[string]int

	alphabet []string
	symbols  map[string]struct{}

	transitions []Transition

	// Destination state numbers of transitions[i].
	targets [][]uint

	// For each state number, label -> indices into transitions leaving that state.
	edges []map[string][]int

	startStates  []string
	acceptStates []string

	start  *bitset.BitSet
	accept *bitset.BitSet

	// True if there is exactly one start state, no epsilon transition and every
	// transition has exactly one destination.
	deterministic bool
}

// New Validates cfg and builds an automaton from it. The config is copied; later
// changes to cfg do not affect the automaton.
func New(cfg Config) (*Automaton, error) {
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	numStates := len(cfg.States)
	a := &Automaton{
		states:       cfg.States,
		stateIndex:   make(map[string]int, numStates),
		alphabet:     cfg.Alphabet,
		symbols:      make(map[string]struct{}, len(cfg.Alphabet)),
		transitions:  make([]Transition, 0, len(cfg.Transitions)),
		targets:      make([][]uint, 0, len(cfg.Transitions)),
		edges:        make([]map[string][]int, numStates),
		startStates:  cfg.StartStates,
		acceptStates: cfg.AcceptStates,
		start:        bitset.New(uint(numStates)),
		accept:       bitset.New(uint(numStates)),
	}

	for i, s := range cfg.States {
		a.stateIndex[s] = i
	}
	for _, sym := range cfg.Alphabet {
		a.symbols[sym] = struct{}{}
	}
	for _, s := range cfg.StartStates {
		a.start.Set(uint(a.stateIndex[s]))
	}
	for _, s := range cfg.AcceptStates {
		a.accept.Set(uint(a.stateIndex[s]))
	}

	a.deterministic = len(cfg.StartStates) == 1
	for i, tc := range cfg.Transitions {
		t := Transition{from: tc.From, input: tc.Input, to: tc.To}
		dests := make([]uint, len(tc.To))
		for j, d := range tc.To {
			dests[j] = uint(a.stateIndex[d])
		}
		a.transitions = append(a.transitions, t)
		a.targets = append(a.targets, dests)

		src := a.stateIndex[tc.From]
		if a.edges[src] == nil {
			a.edges[src] = make(map[string][]int)
		}
		a.edges[src][tc.Input] = append(a.edges[src][tc.Input], i)

		if t.IsEpsilon() || !t.IsDeterministic() {
			a.deterministic = false
		}
	}

	return a, nil
}

// States Returns the states in declaration order.
func (a *Automaton) States() []string {
	return slices.Clone(a.states)
}

// Alphabet Returns the input symbols in declaration order.
func (a *Automaton) Alphabet() []string {
	return slices.Clone(a.alphabet)
}

// Transitions Returns the transitions in declaration order.
func (a *Automaton) Transitions() []Transition {
	return slices.Clone(a.transitions)
}

func (a *Automaton) StartStates() []string {
	return slices.Clone(a.startStates)
}

func (a *Automaton) AcceptStates() []string {
	return slices.Clone(a.acceptStates)
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.states)
}

// GetNumTransitions How many transitions this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return len(a.transitions)
}

func (a *Automaton) HasState(id string) bool {
	_, ok := a.stateIndex[id]
	return ok
}

// HasSymbol Returns true if sym belongs to the alphabet. Epsilon never does.
func (a *Automaton) HasSymbol(sym string) bool {
	_, ok := a.symbols[sym]
	return ok
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(id string) bool {
	i, ok := a.stateIndex[id]
	return ok && a.accept.Test(uint(i))
}

// IsDFA Returns true if the automaton has exactly one start state, no epsilon
// transitions and only single-destination transitions.
func (a *Automaton) IsDFA() bool {
	return a.deterministic
}

// IsNFA Returns true if the automaton is not a DFA.
func (a *Automaton) IsNFA() bool {
	return !a.deterministic
}

// StartSet Returns the start states as a StateSet.
func (a *Automaton) StartSet() StateSet {
	return StateSet{a: a, bits: a.start.Clone()}
}

// AcceptSet Returns the accept states as a StateSet.
func (a *Automaton) AcceptSet() StateSet {
	return StateSet{a: a, bits: a.accept.Clone()}
}

// NewStateSet Returns the set of the given states. Every id must be declared by a.
func (a *Automaton) NewStateSet(ids ...string) (StateSet, error) {
	bits := a.newBits()
	for _, id := range ids {
		i, ok := a.stateIndex[id]
		if !ok {
			return StateSet{}, fmt.Errorf("%w: %q", ErrUnknownState, id)
		}
		bits.Set(uint(i))
	}
	return StateSet{a: a, bits: bits}, nil
}

// Equals Returns true if both automata declare the same states, alphabet, start and
// accept states, and the same transitions compared as a set. Declaration order is
// ignored everywhere.
func (a *Automaton) Equals(other *Automaton) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	return sameSet(a.states, other.states) &&
		sameSet(a.alphabet, other.alphabet) &&
		sameSet(a.startStates, other.startStates) &&
		sameSet(a.acceptStates, other.acceptStates) &&
		sameSet(transitionKeys(a.transitions), transitionKeys(other.transitions))
}

// Config Flattens the automaton back into its serializable description.
func (a *Automaton) Config() Config {
	transitions := make([]TransitionConfig, len(a.transitions))
	for i, t := range a.transitions {
		transitions[i] = t.Config()
	}
	return Config{
		States:       a.States(),
		Alphabet:     a.Alphabet(),
		Transitions:  transitions,
		StartStates:  a.StartStates(),
		AcceptStates: a.AcceptStates(),
	}
}

func (a *Automaton) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Config())
}

func (a *Automaton) String() string {
	kind := "NFA"
	if a.IsDFA() {
		kind = "DFA"
	}
	return fmt.Sprintf("%s{states: %v, alphabet: %v, transitions: %d, start: %v, accept: %v}",
		kind, a.states, a.alphabet, len(a.transitions), a.startStates, a.acceptStates)
}

// WithState Returns a new automaton with an additional state.
func (a *Automaton) WithState(id string) (*Automaton, error) {
	cfg := a.Config()
	cfg.States = append(cfg.States, id)
	return New(cfg)
}

// WithTransition Returns a new automaton with an additional transition.
func (a *Automaton) WithTransition(from, input string, to ...string) (*Automaton, error) {
	cfg := a.Config()
	cfg.Transitions = append(cfg.Transitions, TransitionConfig{From: from, Input: input, To: slices.Clone(to)})
	return New(cfg)
}

// WithAccept Returns a new automaton in which id is (or is not) an accept state.
func (a *Automaton) WithAccept(id string, accept bool) (*Automaton, error) {
	cfg := a.Config()
	idx := slices.Index(cfg.AcceptStates, id)
	switch {
	case accept && idx < 0:
		cfg.AcceptStates = append(cfg.AcceptStates, id)
	case !accept && idx >= 0:
		cfg.AcceptStates = slices.Delete(cfg.AcceptStates, idx, idx+1)
	}
	return New(cfg)
}

func (a *Automaton) newBits() *bitset.BitSet {
	return bitset.New(uint(len(a.states)))
}

// transitionsFrom Returns the indices of the transitions leaving state s with the given label.
func (a *Automaton) transitionsFrom(s uint, label string) []int {
	m := a.edges[s]
	if m == nil {
		return nil
	}
	return m[label]
}

func transitionKeys(transitions []Transition) []string {
	keys := make([]string, len(transitions))
	for i, t := range transitions {
		keys[i] = t.key()
	}
	return keys
}

// sameSet compares two string slices as sets.
func sameSet(x, y []string) bool {
	xs := make(map[string]struct{}, len(x))
	for _, v := range x {
		xs[v] = struct{}{}
	}
	ys := make(map[string]struct{}, len(y))
	for _, v := range y {
		if _, ok := xs[v]; !ok {
			return false
		}
		ys[v] = struct{}{}
	}
	return len(xs) == len(ys)
}
