package fsa

import "slices"

// Config describes an automaton. It is validated by New and never retained by it.
type Config struct {
	States       []string           `json:"states" yaml:"states" mapstructure:"states"`
	Alphabet     []string           `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
	Transitions  []TransitionConfig `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
	StartStates  []string           `json:"startStates" yaml:"startStates" mapstructure:"startStates"`
	AcceptStates []string           `json:"acceptStates" yaml:"acceptStates" mapstructure:"acceptStates"`
}

// Clone Returns a deep copy of the config.
func (c Config) Clone() Config {
	out := Config{
		States:       slices.Clone(c.States),
		Alphabet:     slices.Clone(c.Alphabet),
		StartStates:  slices.Clone(c.StartStates),
		AcceptStates: slices.Clone(c.AcceptStates),
	}
	if c.Transitions != nil {
		out.Transitions = make([]TransitionConfig, len(c.Transitions))
		for i, t := range c.Transitions {
			out.Transitions[i] = TransitionConfig{From: t.From, Input: t.Input, To: slices.Clone(t.To)}
		}
	}
	return out
}
