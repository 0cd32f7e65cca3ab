package fsa

import (
	"fmt"
	"slices"
	"strings"
)

// Epsilon labels a transition that is taken without consuming input. It is never
// a member of an alphabet.
const Epsilon = "ε"

// TransitionConfig is the serialized form of a Transition.
type TransitionConfig struct {
	From  string   `json:"from" yaml:"from" mapstructure:"from"`
	Input string   `json:"input" yaml:"input" mapstructure:"input"`
	To    []string `json:"to" yaml:"to" mapstructure:"to"`
}

// Transition A labeled edge from one source state to one or more destination states.
// Transitions are values; the destination slice is never modified after construction.
type Transition struct {
	from  string
	input string
	to    []string
}

// NewTransition Creates a transition. The destinations are copied.
func NewTransition(from, input string, to ...string) Transition {
	return Transition{from: from, input: input, to: slices.Clone(to)}
}

func (t Transition) From() string {
	return t.from
}

func (t Transition) Input() string {
	return t.input
}

// To Returns a copy of the destination states in declaration order.
func (t Transition) To() []string {
	return slices.Clone(t.to)
}

// IsEpsilon Returns true if this transition is labeled with Epsilon.
func (t Transition) IsEpsilon() bool {
	return t.input == Epsilon
}

// IsDeterministic Returns true if this transition has exactly one destination.
func (t Transition) IsDeterministic() bool {
	return len(t.to) == 1
}

// Equals Returns true if both transitions have the same source, the same label and
// the same set of destinations, regardless of destination order.
func (t Transition) Equals(other Transition) bool {
	return t.key() == other.key()
}

// Config Flattens the transition for serialization.
func (t Transition) Config() TransitionConfig {
	return TransitionConfig{From: t.from, Input: t.input, To: slices.Clone(t.to)}
}

func (t Transition) String() string {
	return fmt.Sprintf("%s --%s--> {%s}", t.from, t.input, strings.Join(t.to, ", "))
}

// key is a canonical encoding used for structural equality.
func (t Transition) key() string {
	to := slices.Clone(t.to)
	slices.Sort(to)
	to = slices.Compact(to)

	var sb strings.Builder
	sb.WriteString(t.from)
	sb.WriteByte(0)
	sb.WriteString(t.input)
	for _, s := range to {
		sb.WriteByte(0)
		sb.WriteString(s)
	}
	return sb.String()
}
