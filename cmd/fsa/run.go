package main

import (
	"bufio"
	"fmt"

	"github.com/geange/fsa"
	"github.com/geange/fsa/internal/config"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var runCmd = &cobra.Command{
	Use:   "run FILE [INPUT...]",
	Short: "Run the automaton against input strings",
	Long: `Runs the automaton against every INPUT, or against every line of stdin when no INPUT
is given, and prints ACCEPT or REJECT for each. Inputs containing symbols outside the
alphabet are reported as errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRun(cmd, args[0], args[1:])
	},
}

func init() {
	runCmd.Flags().Bool("trace", false, "Print every step of the simulation")
	runCmd.Flags().Bool("determinize", false, "Convert an NFA to a DFA before running")
	runCmd.Flags().String("sep", "", "Separator between symbols (default: one symbol per character)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, file string, inputs []string) error {
	trace, _ := cmd.Flags().GetBool("trace")
	determinize, _ := cmd.Flags().GetBool("determinize")
	sep, _ := cmd.Flags().GetString("sep")

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

	if len(inputs) == 0 {
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read inputs: %w", err)
		}
	}

	w := cmd.OutOrStdout()
	out := termenv.NewOutput(w)
	sim := fsa.NewSimulator(opts...)

	var errs error
	for _, input := range inputs {
		symbols := splitSymbols(input, sep)
		if trace {
			t, err := sim.TraceSymbols(a, symbols)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("input %q: %w", input, err))
				continue
			}
			fmt.Fprintf(w, "%q %s\n", input, verdict(out, t.Accepted))
			printTrace(w, t)
			continue
		}

		accepted, err := sim.SimulateSymbols(a, symbols)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("input %q: %w", input, err))
			continue
		}
		fmt.Fprintf(w, "%q %s\n", input, verdict(out, accepted))
	}
	return errs
}
