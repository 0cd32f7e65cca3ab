package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransition(t *testing.T) {
	tr := NewTransition("q0", "a", "q2", "q1")

	assert.Equal(t, "q0", tr.From())
	assert.Equal(t, "a", tr.Input())
	assert.Equal(t, []string{"q2", "q1"}, tr.To())
	assert.False(t, tr.IsEpsilon())
	assert.False(t, tr.IsDeterministic())
	assert.True(t, NewTransition("q0", "a", "q1").IsDeterministic())
	assert.True(t, NewTransition("q0", Epsilon, "q1").IsEpsilon())
	assert.Equal(t, "q0 --a--> {q2, q1}", tr.String())

	t.Run("destinations are copied", func(t *testing.T) {
		to := []string{"q1"}
		tr := NewTransition("q0", "a", to...)
		to[0] = "changed"
		assert.Equal(t, []string{"q1"}, tr.To())
	})

	t.Run("equality ignores destination order", func(t *testing.T) {
		assert.True(t, tr.Equals(NewTransition("q0", "a", "q1", "q2")))
		assert.False(t, tr.Equals(NewTransition("q0", "b", "q1", "q2")))
		assert.False(t, tr.Equals(NewTransition("q1", "a", "q1", "q2")))
		assert.False(t, tr.Equals(NewTransition("q0", "a", "q1")))
	})

	t.Run("config", func(t *testing.T) {
		cfg := tr.Config()
		assert.Equal(t, TransitionConfig{From: "q0", Input: "a", To: []string{"q2", "q1"}}, cfg)
	})
}
