package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutomata(t *testing.T) {
	automata := defaultAutomata
	inputs := allStrings([]string{"m", "n"}, 3)

	accepted := func(t *testing.T, a *Automaton) []string {
		t.Helper()
		var out []string
		for _, input := range inputs {
			ok, err := Run(a, input)
			require.NoError(t, err)
			if ok {
				out = append(out, input)
			}
		}
		return out
	}

	t.Run("MakeEmpty", func(t *testing.T) {
		a, err := automata.MakeEmpty("m", "n")
		require.NoError(t, err)
		assert.True(t, a.IsDFA())
		assert.True(t, IsEmpty(a))
		assert.Empty(t, accepted(t, a))
	})

	t.Run("MakeEmptyString", func(t *testing.T) {
		a, err := automata.MakeEmptyString("m", "n")
		require.NoError(t, err)
		assert.Equal(t, []string{""}, accepted(t, a))
	})

	t.Run("MakeAnyString", func(t *testing.T) {
		a, err := automata.MakeAnyString("m", "n")
		require.NoError(t, err)
		assert.True(t, IsTotal(a))
		assert.Equal(t, inputs, accepted(t, a))
	})

	t.Run("MakeString", func(t *testing.T) {
		a, err := automata.MakeString([]string{"m", "n"}, "m", "n")
		require.NoError(t, err)
		assert.True(t, a.IsDFA())
		assert.Equal(t, []string{"q0", "q1", "q2"}, a.States())
		assert.Equal(t, []string{"mn"}, accepted(t, a))
	})

	t.Run("needs an alphabet", func(t *testing.T) {
		_, err := automata.MakeEmpty()
		assert.ErrorIs(t, err, ErrInvalidAutomaton)

		_, err = automata.MakeString([]string{"m"}, "x")
		assert.ErrorIs(t, err, ErrInvalidAutomaton)
	})
}
