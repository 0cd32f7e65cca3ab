package main

import (
	"fmt"

	"github.com/geange/fsa/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Check automaton files for consistency",
	Long:  `Validates every file and reports each invalid one. Valid automata are classified as DFA or NFA.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, files []string) error {
	log := newLogger(cmd)
	out := cmd.OutOrStdout()

	var errs error
	for _, file := range files {
		a, err := config.LoadAutomaton(file)
		if err != nil {
			log.Debug("validation failed", "file", file, "error", err)
			errs = multierr.Append(errs, err)
			continue
		}
		kind := "NFA"
		if a.IsDFA() {
			kind = "DFA"
		}
		fmt.Fprintf(out, "%s: valid %s (%d states, %d transitions)\n",
			file, kind, a.GetNumStates(), a.GetNumTransitions())
	}

	if errs != nil {
		return fmt.Errorf("%d of %d files invalid: %w", len(multierr.Errors(errs)), len(files), errs)
	}
	return nil
}
