package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/geange/fsa"
	"github.com/muesli/termenv"
)

func verdict(out *termenv.Output, accepted bool) string {
	if accepted {
		return out.String("ACCEPT").Foreground(out.Color("2")).Bold().String()
	}
	return out.String("REJECT").Foreground(out.Color("1")).String()
}

func printTrace(w io.Writer, trace *fsa.Trace) {
	for i, step := range trace.Steps {
		if i == 0 {
			fmt.Fprintf(w, "  start   %s\n", step.CurrentStates)
			continue
		}
		line := fmt.Sprintf("  %-7s %s", quoteSymbol(step.InputSymbol), step.CurrentStates)
		if step.Transition != nil {
			line += "  via " + step.Transition.String()
		}
		fmt.Fprintln(w, line)
	}
}

func printConversionSteps(w io.Writer, steps []fsa.ConversionStep) {
	for _, step := range steps {
		next := step.NextSubset.String()
		if step.NextSubset.IsEmpty() {
			next = "(no move)"
		} else if step.IsNewSubset {
			next += " new"
		}
		used := make([]string, len(step.Transitions))
		for i, t := range step.Transitions {
			used[i] = t.String()
		}
		fmt.Fprintf(w, "%s --%s--> %s", step.CurrentSubset, step.Symbol, next)
		if len(used) > 0 {
			fmt.Fprintf(w, "  [%s]", strings.Join(used, "; "))
		}
		fmt.Fprintln(w)
	}
}

func quoteSymbol(s string) string {
	return "'" + s + "'"
}

// splitSymbols splits input into symbols: one per rune, or by sep when it is set.
func splitSymbols(input, sep string) []string {
	if sep == "" {
		symbols := make([]string, 0, len(input))
		for _, r := range input {
			symbols = append(symbols, string(r))
		}
		return symbols
	}
	if input == "" {
		return nil
	}
	return strings.Split(input, sep)
}
