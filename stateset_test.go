package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsetName(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want string
	}{
		{name: "empty", ids: nil, want: EmptySetName},
		{name: "single", ids: []string{"q0"}, want: "q0"},
		{name: "sorted", ids: []string{"q0", "q1", "q2"}, want: "q0,q1,q2"},
		{name: "unsorted", ids: []string{"q2", "q0", "q1"}, want: "q0,q1,q2"},
		{name: "lexicographic", ids: []string{"q10", "q2", "q1"}, want: "q1,q10,q2"},
		{name: "duplicates", ids: []string{"b", "a", "b"}, want: "a,b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubsetName(tt.ids))
		})
	}

	t.Run("does not modify its input", func(t *testing.T) {
		ids := []string{"q2", "q0"}
		SubsetName(ids)
		assert.Equal(t, []string{"q2", "q0"}, ids)
	})
}

func TestStateSet(t *testing.T) {
	a := endsWithAB(t)

	s1, err := a.NewStateSet("q1", "q0")
	require.NoError(t, err)
	s2, err := a.NewStateSet("q0", "q1")
	require.NoError(t, err)
	s3, err := a.NewStateSet("q2")
	require.NoError(t, err)
	empty, err := a.NewStateSet()
	require.NoError(t, err)

	t.Run("membership", func(t *testing.T) {
		assert.Equal(t, 2, s1.Len())
		assert.True(t, s1.Contains("q0"))
		assert.False(t, s1.Contains("q2"))
		assert.False(t, s1.Contains("missing"))
		assert.True(t, empty.IsEmpty())
		assert.Equal(t, 0, empty.Len())
	})

	t.Run("equal sets have equal names", func(t *testing.T) {
		assert.True(t, s1.Equal(s2))
		assert.Equal(t, s1.Name(), s2.Name())
		assert.Equal(t, "q0,q1", s1.Name())
		assert.False(t, s1.Equal(s3))
		assert.Equal(t, EmptySetName, empty.Name())
	})

	t.Run("intersects", func(t *testing.T) {
		assert.False(t, s1.Intersects(s3))
		assert.True(t, s1.Intersects(s2))
		assert.False(t, empty.Intersects(s1))
		assert.True(t, s3.Intersects(a.AcceptSet()))
	})

	t.Run("zero value", func(t *testing.T) {
		var zero StateSet
		assert.True(t, zero.IsEmpty())
		assert.Equal(t, 0, zero.Len())
		assert.False(t, zero.Contains("q0"))
		assert.Empty(t, zero.States())
		assert.True(t, zero.Equal(empty))
		assert.Equal(t, "{}", zero.String())
	})

	t.Run("sets of different automata compare by ids", func(t *testing.T) {
		other, err := epsilonB(t).NewStateSet("q0", "q1")
		require.NoError(t, err)
		assert.True(t, s1.Equal(other))
		assert.True(t, s1.Intersects(other))
		assert.False(t, s3.Equal(other))
	})

	assert.Equal(t, "{q0, q1}", s1.String())
}
