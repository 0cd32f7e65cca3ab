package fsa

import (
	"fmt"

	"github.com/go-logr/logr"
)

// ConversionStep records the processing of one (subset, symbol) pair during subset
// construction.
type ConversionStep struct {
	// CurrentSubset is the set of NFA states being expanded.
	CurrentSubset StateSet

	Symbol string

	// NextSubset is the epsilon closure of the move on Symbol. It is empty when
	// no NFA state can move on Symbol, in which case no DFA transition is recorded.
	NextSubset StateSet

	// IsNewSubset is true if NextSubset was discovered by this step.
	IsNewSubset bool

	// Transitions are the NFA transitions that take part in the move.
	Transitions []Transition
}

// Conversion is the result of a recorded subset construction.
type Conversion struct {
	DFA   *Automaton
	Steps []ConversionStep
}

// Converter turns NFAs into equivalent DFAs by subset construction. Only subsets
// reachable from the start closure are materialized. The produced transition
// function is partial: a missing transition means rejection. Use Totalize for an
// explicit trap state.
type Converter struct {
	log       logr.Logger
	workLimit int
}

func NewConverter(opts ...Option) *Converter {
	o := newOptions(opts...)
	return &Converter{log: o.log, workLimit: o.workLimit}
}

// Convert Returns a DFA accepting the same language as nfa. It fails with
// ErrConversion if nfa is already a DFA.
func (c *Converter) Convert(nfa *Automaton) (*Automaton, error) {
	conv, err := c.convert(nfa, false)
	if err != nil {
		return nil, err
	}
	return conv.DFA, nil
}

// ConvertWithSteps Like Convert, and also returns one ConversionStep per processed
// (subset, symbol) pair in processing order.
func (c *Converter) ConvertWithSteps(nfa *Automaton) (*Conversion, error) {
	return c.convert(nfa, true)
}

type subset struct {
	set  StateSet
	name string
}

func (c *Converter) convert(nfa *Automaton, record bool) (*Conversion, error) {
	if nfa == nil {
		return nil, fmt.Errorf("%w: automaton is nil", ErrConversion)
	}
	if nfa.IsDFA() {
		return nil, fmt.Errorf("%w: automaton is already deterministic", ErrConversion)
	}

	initialSet := StateSet{a: nfa, bits: epsilonClosure(nfa, nfa.start)}
	initial := subset{set: initialSet, name: initialSet.Name()}

	visited := map[string]StateSet{initial.name: initial.set}
	discovered := []subset{initial}
	worklist := []subset{initial}
	c.log.V(1).Info("subset discovered", "name", initial.name)

	var transitions []TransitionConfig
	var steps []ConversionStep

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		for _, sym := range nfa.alphabet {
			next := StateSet{a: nfa, bits: epsilonClosure(nfa, move(nfa, current.set.bits, sym))}

			isNew := false
			if !next.IsEmpty() {
				name := next.Name()
				seen, ok := visited[name]
				switch {
				case !ok:
					if c.workLimit > 0 && len(discovered) >= c.workLimit {
						return nil, fmt.Errorf("%w: more than %d subsets", ErrTooComplex, c.workLimit)
					}
					visited[name] = next
					discovered = append(discovered, subset{set: next, name: name})
					worklist = append(worklist, subset{set: next, name: name})
					isNew = true
					c.log.V(1).Info("subset discovered", "name", name, "from", current.name, "symbol", sym)
				case !seen.Equal(next):
					return nil, fmt.Errorf("%w: subsets %s and %s share the name %q", ErrConversion, seen, next, name)
				}
				transitions = append(transitions, TransitionConfig{From: current.name, Input: sym, To: []string{name}})
			}

			if record {
				indices := applicable(nfa, current.set.bits, sym)
				used := make([]Transition, len(indices))
				for i, ti := range indices {
					used[i] = nfa.transitions[ti]
				}
				steps = append(steps, ConversionStep{
					CurrentSubset: current.set,
					Symbol:        sym,
					NextSubset:    next,
					IsNewSubset:   isNew,
					Transitions:   used,
				})
			}
		}
	}

	cfg := Config{
		States:      make([]string, 0, len(discovered)),
		Alphabet:    nfa.Alphabet(),
		Transitions: transitions,
		StartStates: []string{initial.name},
	}
	for _, s := range discovered {
		cfg.States = append(cfg.States, s.name)
		if s.set.bits.IntersectionCardinality(nfa.accept) > 0 {
			cfg.AcceptStates = append(cfg.AcceptStates, s.name)
		}
	}

	dfa, err := New(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConversion, err)
	}
	c.log.V(1).Info("determinized", "nfaStates", nfa.GetNumStates(), "dfaStates", dfa.GetNumStates())

	return &Conversion{DFA: dfa, Steps: steps}, nil
}
