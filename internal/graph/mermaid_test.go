package graph

import (
	"testing"

	"github.com/geange/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func endsWithAB(t *testing.T) *fsa.Automaton {
	t.Helper()
	a, err := fsa.New(fsa.Config{
		States:   []string{"q0", "q1", "q2"},
		Alphabet: []string{"a", "b"},
		Transitions: []fsa.TransitionConfig{
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

func TestGenerateMermaid(t *testing.T) {
	out := GenerateMermaid(endsWithAB(t), nil)

	want := `graph LR
    s0(("q0"))
    s1(("q1"))
    s2((("q2")))
    start0[ ] --> s0
    style start0 fill:none,stroke:none
    s0 -- "a, b" --> s0
    s0 -- "a" --> s1
    s1 -- "b" --> s2
`
	assert.Equal(t, want, out)
	assert.NotContains(t, out, "classDef")
}

func TestGenerateMermaid_Escaping(t *testing.T) {
	a, err := fsa.New(fsa.Config{
		States:      []string{`say "hi"`},
		Alphabet:    []string{`"`},
		StartStates: []string{`say "hi"`},
		Transitions: []fsa.TransitionConfig{
			{From: `say "hi"`, Input: `"`, To: []string{`say "hi"`}},
		},
	})
	require.NoError(t, err)

	out := GenerateMermaid(a, nil)
	assert.Contains(t, out, `s0(("say #quot;hi#quot;"))`)
	assert.Contains(t, out, `s0 -- "#quot;" --> s0`)
}

func TestOverlayFromTrace(t *testing.T) {
	a := endsWithAB(t)
	trace, err := fsa.NewSimulator().Trace(a, "ab")
	require.NoError(t, err)

	overlay := OverlayFromTrace(trace)
	require.NotNil(t, overlay)
	assert.Equal(t, []string{"q0", "q1", "q2"}, overlay.VisitedStates)
	assert.Equal(t, []string{"q0", "q2"}, overlay.CurrentStates)

	out := GenerateMermaid(a, overlay)
	assert.Contains(t, out, "classDef visited")
	assert.Contains(t, out, "class s1 visited;")
	assert.NotContains(t, out, "class s0 visited;")
	assert.Contains(t, out, "class s0 current;")
	assert.Contains(t, out, "class s2 current;")

	assert.Nil(t, OverlayFromTrace(nil))
	assert.Nil(t, OverlayFromTrace(&fsa.Trace{}))
}
