package fsa

import (
	"fmt"
	"strings"
)

// Validate checks the structural and referential invariants of cfg. Checks run in
// a fixed order: states, alphabet, transition structure, transition references,
// start/accept membership, transition symbols. The first failure is returned and
// always matches ErrInvalidAutomaton.
func Validate(cfg *Config) error {
	if cfg == nil {
		return invalid("config is nil")
	}

	states, err := validateStates(cfg.States)
	if err != nil {
		return err
	}
	symbols, err := validateAlphabet(cfg.Alphabet)
	if err != nil {
		return err
	}
	if err := validateTransitionStructure(cfg.Transitions); err != nil {
		return err
	}
	if err := validateTransitionReferences(cfg.Transitions, states); err != nil {
		return err
	}
	if err := validateMembership("start", cfg.StartStates, states, true); err != nil {
		return err
	}
	if err := validateMembership("accept", cfg.AcceptStates, states, false); err != nil {
		return err
	}
	return validateTransitionSymbols(cfg.Transitions, symbols)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidAutomaton, fmt.Sprintf(format, args...))
}

func validateStates(states []string) (map[string]struct{}, error) {
	if len(states) == 0 {
		return nil, invalid("states must not be empty")
	}
	seen := make(map[string]struct{}, len(states))
	for _, s := range states {
		if strings.TrimSpace(s) == "" {
			return nil, invalid("state id must not be blank")
		}
		if _, ok := seen[s]; ok {
			return nil, invalid("duplicate state %q", s)
		}
		seen[s] = struct{}{}
	}
	return seen, nil
}

func validateAlphabet(alphabet []string) (map[string]struct{}, error) {
	if len(alphabet) == 0 {
		return nil, invalid("alphabet must not be empty")
	}
	seen := make(map[string]struct{}, len(alphabet))
	for _, sym := range alphabet {
		if sym == "" {
			return nil, invalid("alphabet symbol must not be empty")
		}
		if sym == Epsilon {
			return nil, invalid("alphabet must not contain the epsilon marker %q", Epsilon)
		}
		if _, ok := seen[sym]; ok {
			return nil, invalid("duplicate alphabet symbol %q", sym)
		}
		seen[sym] = struct{}{}
	}
	return seen, nil
}

func validateTransitionStructure(transitions []TransitionConfig) error {
	for i, t := range transitions {
		if t.From == "" {
			return invalid("transition %d: missing source state", i)
		}
		if t.Input == "" {
			return invalid("transition %d: missing input symbol", i)
		}
		if len(t.To) == 0 {
			return invalid("transition %d: missing destination states", i)
		}
		seen := make(map[string]struct{}, len(t.To))
		for _, dest := range t.To {
			if dest == "" {
				return invalid("transition %d: empty destination state", i)
			}
			if _, ok := seen[dest]; ok {
				return invalid("transition %d: duplicate destination %q", i, dest)
			}
			seen[dest] = struct{}{}
		}
	}
	return nil
}

func validateTransitionReferences(transitions []TransitionConfig, states map[string]struct{}) error {
	for i, t := range transitions {
		if _, ok := states[t.From]; !ok {
			return invalid("transition %d: undeclared source state %q", i, t.From)
		}
		for _, dest := range t.To {
			if _, ok := states[dest]; !ok {
				return invalid("transition %d: undeclared destination state %q", i, dest)
			}
		}
	}
	return nil
}

func validateMembership(kind string, ids []string, states map[string]struct{}, required bool) error {
	if required && len(ids) == 0 {
		return invalid("%s states must not be empty", kind)
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := states[id]; !ok {
			return invalid("%s state %q is not declared", kind, id)
		}
		if _, ok := seen[id]; ok {
			return invalid("duplicate %s state %q", kind, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func validateTransitionSymbols(transitions []TransitionConfig, symbols map[string]struct{}) error {
	for i, t := range transitions {
		if t.Input == Epsilon {
			continue
		}
		if _, ok := symbols[t.Input]; !ok {
			return invalid("transition %d: symbol %q is not in the alphabet", i, t.Input)
		}
	}
	return nil
}
