package fsa

// Run Returns true if the given string is accepted by the automaton. Every rune of s
// is one symbol.
func Run(a *Automaton, s string) (bool, error) {
	return defaultSimulator.Simulate(a, s)
}

// Accepts Returns true if set contains an accept state of its automaton.
func Accepts(set StateSet) bool {
	if set.a == nil || set.IsEmpty() {
		return false
	}
	return set.bits.IntersectionCardinality(set.a.accept) > 0
}
