package fsa

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/go-logr/logr"
)

// Step is one entry of a simulation trace.
type Step struct {
	// CurrentStates is the active set after InputSymbol was consumed.
	CurrentStates StateSet

	// InputSymbol is empty for the initial step.
	InputSymbol string

	// Transition is set only when exactly one transition explains the move.
	Transition *Transition
}

// Trace is the result of a step-by-step simulation. Steps[0] always holds the
// epsilon closure of the start states.
type Trace struct {
	Steps    []Step
	Accepted bool
}

// Simulator runs automata against input by tracking the set of active states.
// It holds no per-call state and can be shared.
type Simulator struct {
	log logr.Logger
}

func NewSimulator(opts ...Option) *Simulator {
	o := newOptions(opts...)
	return &Simulator{log: o.log}
}

// EpsilonClosure Returns the states reachable from states using only epsilon transitions,
// states included.
func (s *Simulator) EpsilonClosure(a *Automaton, states StateSet) (StateSet, error) {
	if err := checkStateSet(a, states); err != nil {
		return StateSet{}, err
	}
	return StateSet{a: a, bits: epsilonClosure(a, states.bits)}, nil
}

// Step Returns the active set after consuming symbol from current: the epsilon closure
// of current is moved over symbol and the epsilon closure of the result is returned.
// It fails if symbol is not in the alphabet, even when no state could move on it.
func (s *Simulator) Step(a *Automaton, current StateSet, symbol string) (StateSet, error) {
	if err := checkStateSet(a, current); err != nil {
		return StateSet{}, err
	}
	if !a.HasSymbol(symbol) {
		return StateSet{}, notInAlphabet(symbol)
	}
	closed := epsilonClosure(a, current.bits)
	return StateSet{a: a, bits: epsilonClosure(a, move(a, closed, symbol))}, nil
}

// FindApplicableTransitions Returns the transitions labeled symbol that leave any
// member of current, in declaration order. symbol may be Epsilon.
func (s *Simulator) FindApplicableTransitions(a *Automaton, current StateSet, symbol string) ([]Transition, error) {
	if err := checkStateSet(a, current); err != nil {
		return nil, err
	}
	if symbol != Epsilon && !a.HasSymbol(symbol) {
		return nil, notInAlphabet(symbol)
	}
	indices := applicable(a, current.bits, symbol)
	out := make([]Transition, len(indices))
	for i, ti := range indices {
		out[i] = a.transitions[ti]
	}
	return out, nil
}

// Simulate Returns true if a accepts input. Every rune of input is one symbol.
func (s *Simulator) Simulate(a *Automaton, input string) (bool, error) {
	return s.SimulateSymbols(a, splitInput(input))
}

// SimulateSymbols Returns true if a accepts the symbol sequence. The run stops with a
// rejection as soon as no state is active.
func (s *Simulator) SimulateSymbols(a *Automaton, symbols []string) (bool, error) {
	if err := checkInput(a, symbols); err != nil {
		return false, err
	}

	active := epsilonClosure(a, a.start)
	for i, sym := range symbols {
		active = epsilonClosure(a, move(a, active, sym))
		s.logStep(a, i, sym, active)
		if active.None() {
			return false, nil
		}
	}
	return active.IntersectionCardinality(a.accept) > 0, nil
}

// Trace Runs a against input and records every step. Every rune of input is one symbol.
func (s *Simulator) Trace(a *Automaton, input string) (*Trace, error) {
	return s.TraceSymbols(a, splitInput(input))
}

// TraceSymbols Runs a against the symbol sequence and records every step. When the
// active set becomes empty, the step that emptied it is recorded and the walk stops.
func (s *Simulator) TraceSymbols(a *Automaton, symbols []string) (*Trace, error) {
	if err := checkInput(a, symbols); err != nil {
		return nil, err
	}

	active := epsilonClosure(a, a.start)
	trace := &Trace{
		Steps: make([]Step, 1, len(symbols)+1),
	}
	trace.Steps[0] = Step{CurrentStates: StateSet{a: a, bits: active}}

	for i, sym := range symbols {
		used := applicable(a, active, sym)
		active = epsilonClosure(a, move(a, active, sym))
		s.logStep(a, i, sym, active)

		step := Step{CurrentStates: StateSet{a: a, bits: active}, InputSymbol: sym}
		if len(used) == 1 {
			t := a.transitions[used[0]]
			step.Transition = &t
		}
		trace.Steps = append(trace.Steps, step)

		if active.None() {
			return trace, nil
		}
	}

	trace.Accepted = active.IntersectionCardinality(a.accept) > 0
	return trace, nil
}

func (s *Simulator) logStep(a *Automaton, pos int, sym string, active *bitset.BitSet) {
	if log := s.log.V(2); log.Enabled() {
		log.Info("step", "pos", pos, "symbol", sym, "active", StateSet{a: a, bits: active}.String())
	}
}

var defaultSimulator = NewSimulator()

// epsilonClosure Returns states plus everything reachable from them over epsilon
// transitions. The worklist is an explicit stack.
func epsilonClosure(a *Automaton, states *bitset.BitSet) *bitset.BitSet {
	closure := a.newBits()
	var stack []uint
	if states != nil {
		for i, ok := states.NextSet(0); ok; i, ok = states.NextSet(i + 1) {
			closure.Set(i)
			stack = append(stack, i)
		}
	}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, ti := range a.transitionsFrom(state, Epsilon) {
			for _, dest := range a.targets[ti] {
				if !closure.Test(dest) {
					closure.Set(dest)
					stack = append(stack, dest)
				}
			}
		}
	}
	return closure
}

// move Returns the union of the symbol-labeled destinations of states.
func move(a *Automaton, states *bitset.BitSet, symbol string) *bitset.BitSet {
	next := a.newBits()
	for i, ok := states.NextSet(0); ok; i, ok = states.NextSet(i + 1) {
		for _, ti := range a.transitionsFrom(i, symbol) {
			for _, dest := range a.targets[ti] {
				next.Set(dest)
			}
		}
	}
	return next
}

// applicable Returns the sorted indices of the symbol-labeled transitions leaving states.
func applicable(a *Automaton, states *bitset.BitSet, symbol string) []int {
	var indices []int
	if states == nil {
		return indices
	}
	for i, ok := states.NextSet(0); ok; i, ok = states.NextSet(i + 1) {
		indices = append(indices, a.transitionsFrom(i, symbol)...)
	}
	slices.Sort(indices)
	return indices
}

func checkStateSet(a *Automaton, set StateSet) error {
	if a == nil {
		return fmt.Errorf("%w: automaton is nil", ErrSimulation)
	}
	if set.a != nil && set.a != a && !set.IsEmpty() {
		return fmt.Errorf("%w: state set %s belongs to another automaton", ErrSimulation, set)
	}
	return nil
}

// checkInput rejects the whole input if any symbol is outside the alphabet.
func checkInput(a *Automaton, symbols []string) error {
	if a == nil {
		return fmt.Errorf("%w: automaton is nil", ErrSimulation)
	}
	for i, sym := range symbols {
		if !a.HasSymbol(sym) {
			return fmt.Errorf("%w at position %d", notInAlphabet(sym), i)
		}
	}
	return nil
}

func notInAlphabet(symbol string) error {
	return fmt.Errorf("%w: symbol %q is not in the alphabet", ErrSimulation, symbol)
}

func splitInput(input string) []string {
	symbols := make([]string, 0, len(input))
	for _, r := range input {
		symbols = append(symbols, string(r))
	}
	return symbols
}
