package main

import (
	"fmt"

	"github.com/geange/fsa"
	"github.com/geange/fsa/internal/config"
	"github.com/geange/fsa/internal/graph"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph FILE",
	Short: "Export the automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart of the automaton. With --input, the states visited while
reading the input are highlighted and the final active states are marked as current.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGraph(cmd, args[0])
	},
}

func init() {
	graphCmd.Flags().String("input", "", "Overlay the trace of this input")
	graphCmd.Flags().Bool("determinize", false, "Convert an NFA to a DFA before exporting")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, file string) error {
	input, _ := cmd.Flags().GetString("input")
	determinize, _ := cmd.Flags().GetBool("determinize")

	a, err := config.LoadAutomaton(file)
	if err != nil {
		return err
	}
	opts := libraryOptions(cmd)
	if determinize && a.IsNFA() {
		if a, err = fsa.NewConverter(opts...).Convert(a); err != nil {
			return err
		}
	}

	var overlay *graph.Overlay
	if cmd.Flags().Changed("input") {
		trace, err := fsa.NewSimulator(opts...).Trace(a, input)
		if err != nil {
			return err
		}
		overlay = graph.OverlayFromTrace(trace)
	}

	fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(a, overlay))
	return nil
}
