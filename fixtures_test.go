package fsa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// endsWithAB is an NFA over {a, b} accepting the strings ending in "ab".
func endsWithAB(t *testing.T) *Automaton {
	t.Helper()
	a, err := New(Config{
		States:   []string{"q0", "q1", "q2"},
		Alphabet: []string{"a", "b"},
		Transitions: []TransitionConfig{
			{From: "q0", Input: "a", To: []string{"q0", "q1"}},
			{From: "q0", Input: "b", To: []string{"q0"}},
			{From: "q1", Input: "b", To: []string{"q2"}},
		},
		StartStates:  []string{"q0"},
		AcceptStates: []string{"q2"},
	})
	require.NoError(t, err)
	return a
}

// evenZeros is a DFA over {0, 1} accepting the strings with an even number of 0s.
func evenZeros(t *testing.T) *Automaton {
	t.Helper()
	a, err := New(Config{
		States:   []string{"q0", "q1"},
		Alphabet: []string{"0", "1"},
		Transitions: []TransitionConfig{
			{From: "q0", Input: "1", To: []string{"q0"}},
			{From: "q0", Input: "0", To: []string{"q1"}},
			{From: "q1", Input: "0", To: []string{"q0"}},
			{From: "q1", Input: "1", To: []string{"q1"}},
		},
		StartStates:  []string{"q0"},
		AcceptStates: []string{"q0"},
	})
	require.NoError(t, err)
	return a
}

// epsilonB is an NFA that folds q1 into the start closure before reading "b".
func epsilonB(t *testing.T) *Automaton {
	t.Helper()
	a, err := New(Config{
		States:   []string{"q0", "q1", "q2"},
		Alphabet: []string{"b"},
		Transitions: []TransitionConfig{
			{From: "q0", Input: Epsilon, To: []string{"q1"}},
			{From: "q1", Input: "b", To: []string{"q2"}},
		},
		StartStates:  []string{"q0"},
		AcceptStates: []string{"q2"},
	})
	require.NoError(t, err)
	return a
}

// allStrings returns every string over alphabet of length <= maxLen.
func allStrings(alphabet []string, maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for n := 0; n < maxLen; n++ {
		var next []string
		for _, prefix := range frontier {
			for _, sym := range alphabet {
				next = append(next, prefix+sym)
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}
