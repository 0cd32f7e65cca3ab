package fsa

import (
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const (
	// SubsetDelimiter separates member ids in a subset name.
	SubsetDelimiter = ","

	// EmptySetName is the name of the empty subset.
	EmptySetName = "∅"
)

// StateSet An immutable set of states of one automaton. The zero value is an empty
// set that belongs to no automaton.
type StateSet struct {
	a    *Automaton
	bits *bitset.BitSet
}

// Len Returns the number of states in the set.
func (s StateSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

func (s StateSet) IsEmpty() bool {
	return s.bits == nil || s.bits.None()
}

// Contains Returns true if the state with the given id is a member.
func (s StateSet) Contains(id string) bool {
	if s.a == nil || s.bits == nil {
		return false
	}
	i, ok := s.a.stateIndex[id]
	return ok && s.bits.Test(uint(i))
}

// States Returns the member ids sorted lexicographically.
func (s StateSet) States() []string {
	ids := make([]string, 0, s.Len())
	s.each(func(i uint) {
		ids = append(ids, s.a.states[i])
	})
	slices.Sort(ids)
	return ids
}

// Name Returns the canonical subset name. Two equal sets always have the same name.
func (s StateSet) Name() string {
	return SubsetName(s.States())
}

// Equal Returns true if both sets have the same members.
func (s StateSet) Equal(other StateSet) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return s.IsEmpty() && other.IsEmpty()
	}
	if s.a == other.a {
		return s.bits.Equal(other.bits)
	}
	return slices.Equal(s.States(), other.States())
}

// Intersects Returns true if the two sets share at least one state.
func (s StateSet) Intersects(other StateSet) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return false
	}
	if s.a == other.a {
		return s.bits.IntersectionCardinality(other.bits) > 0
	}
	for _, id := range s.States() {
		if other.Contains(id) {
			return true
		}
	}
	return false
}

func (s StateSet) String() string {
	return "{" + strings.Join(s.States(), ", ") + "}"
}

// each calls fn for every member state number in ascending order.
func (s StateSet) each(fn func(i uint)) {
	if s.bits == nil {
		return
	}
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		fn(i)
	}
}

// SubsetName Returns the canonical name of a set of state ids: the ids sorted
// lexicographically and joined by SubsetDelimiter, or EmptySetName for no ids. The
// result does not depend on the order of ids.
func SubsetName(ids []string) string {
	if len(ids) == 0 {
		return EmptySetName
	}
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	return strings.Join(sorted, SubsetDelimiter)
}
