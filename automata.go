package fsa

import "fmt"

// Automata builds small deterministic automata over a caller-supplied alphabet.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (*Automata) MakeEmpty(alphabet ...string) (*Automaton, error) {
	return New(Config{
		States:      []string{"q0"},
		Alphabet:    alphabet,
		StartStates: []string{"q0"},
	})
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet ...string) (*Automaton, error) {
	return New(Config{
		States:       []string{"q0"},
		Alphabet:     alphabet,
		StartStates:  []string{"q0"},
		AcceptStates: []string{"q0"},
	})
}

// MakeAnyString
// Returns a new (deterministic) automaton that accepts all strings over the alphabet.
func (*Automata) MakeAnyString(alphabet ...string) (*Automaton, error) {
	cfg := Config{
		States:       []string{"q0"},
		Alphabet:     alphabet,
		StartStates:  []string{"q0"},
		AcceptStates: []string{"q0"},
	}
	for _, sym := range alphabet {
		cfg.Transitions = append(cfg.Transitions, TransitionConfig{From: "q0", Input: sym, To: []string{"q0"}})
	}
	return New(cfg)
}

// MakeString
// Returns a new (deterministic) automaton that accepts exactly the given symbol sequence.
func (*Automata) MakeString(alphabet []string, symbols ...string) (*Automaton, error) {
	cfg := Config{
		States:      []string{"q0"},
		Alphabet:    alphabet,
		StartStates: []string{"q0"},
	}
	for i, sym := range symbols {
		next := fmt.Sprintf("q%d", i+1)
		cfg.States = append(cfg.States, next)
		cfg.Transitions = append(cfg.Transitions, TransitionConfig{
			From:  fmt.Sprintf("q%d", i),
			Input: sym,
			To:    []string{next},
		})
	}
	cfg.AcceptStates = []string{cfg.States[len(cfg.States)-1]}
	return New(cfg)
}
