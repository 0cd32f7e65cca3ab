package graph

import (
	"fmt"
	"strings"

	"github.com/geange/fsa"
)

// Overlay contains simulation data to visualize on the graph.
type Overlay struct {
	VisitedStates []string
	CurrentStates []string
}

// OverlayFromTrace marks every state active at some step as visited and the states
// of the last step as current.
func OverlayFromTrace(trace *fsa.Trace) *Overlay {
	if trace == nil || len(trace.Steps) == 0 {
		return nil
	}
	o := &Overlay{}
	seen := make(map[string]bool)
	for _, step := range trace.Steps {
		for _, s := range step.CurrentStates.States() {
			if !seen[s] {
				seen[s] = true
				o.VisitedStates = append(o.VisitedStates, s)
			}
		}
	}
	o.CurrentStates = trace.Steps[len(trace.Steps)-1].CurrentStates.States()
	return o
}

// GenerateMermaid produces a Mermaid flowchart of the automaton.
// It applies semantic styling:
// - Accept state: (((Double circle)))
// - Other states: ((Circle))
// - Start states: an arrow from an invisible entry point
// Transitions between the same pair of states are merged into one edge whose label
// lists every symbol. Overlay styles (visited/current) are applied if provided.
func GenerateMermaid(a *fsa.Automaton, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	ids := make(map[string]string)
	for i, s := range a.States() {
		ids[s] = fmt.Sprintf("s%d", i)
	}

	for _, s := range a.States() {
		opener, closer := "((", "))"
		if a.IsAccept(s) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[s], opener, escapeLabel(s), closer))
	}

	for i, s := range a.StartStates() {
		entry := fmt.Sprintf("start%d", i)
		sb.WriteString(fmt.Sprintf("    %s[ ] --> %s\n", entry, ids[s]))
		sb.WriteString(fmt.Sprintf("    style %s fill:none,stroke:none\n", entry))
	}

	type edge struct{ from, to string }
	var order []edge
	labels := make(map[edge][]string)
	for _, t := range a.Transitions() {
		for _, to := range t.To() {
			e := edge{from: t.From(), to: to}
			if _, ok := labels[e]; !ok {
				order = append(order, e)
			}
			labels[e] = append(labels[e], t.Input())
		}
	}
	for _, e := range order {
		label := escapeLabel(strings.Join(labels[e], ", "))
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", ids[e.from], label, ids[e.to]))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		current := make(map[string]bool)
		for _, s := range overlay.CurrentStates {
			current[s] = true
		}
		for _, s := range overlay.VisitedStates {
			if id, ok := ids[s]; ok && !current[s] {
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
			}
		}
		for _, s := range overlay.CurrentStates {
			if id, ok := ids[s]; ok {
				sb.WriteString(fmt.Sprintf("    class %s current;\n", id))
			}
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
