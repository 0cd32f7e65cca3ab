package main

import (
	"fmt"

	"github.com/geange/fsa"
	"github.com/geange/fsa/internal/config"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert FILE",
	Short: "Convert an NFA into an equivalent DFA",
	Long: `Runs subset construction on the NFA in FILE and prints the resulting DFA.
The DFA's transition function is partial unless --total is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0])
	},
}

func init() {
	convertCmd.Flags().StringP("format", "o", "yaml", "Output format (yaml|json)")
	convertCmd.Flags().Bool("steps", false, "Print every subset construction step to stderr")
	convertCmd.Flags().Bool("total", false, "Add a trap state so every state has a transition on every symbol")
	convertCmd.Flags().Bool("prune", false, "Remove unreachable states of the input first")
	convertCmd.Flags().Int("work-limit", fsa.DefaultWorkLimit, "Maximum number of DFA states (0 disables the limit)")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, file string) error {
	formatName, _ := cmd.Flags().GetString("format")
	showSteps, _ := cmd.Flags().GetBool("steps")
	total, _ := cmd.Flags().GetBool("total")
	prune, _ := cmd.Flags().GetBool("prune")
	workLimit, _ := cmd.Flags().GetInt("work-limit")

	format, err := config.ParseFormat(formatName)
	if err != nil {
		return err
	}

	nfa, err := config.LoadAutomaton(file)
	if err != nil {
		return err
	}
	if prune {
		if nfa, err = fsa.RemoveUnreachable(nfa); err != nil {
			return err
		}
	}

	opts := append(libraryOptions(cmd), fsa.WithWorkLimit(workLimit))
	conv, err := fsa.NewConverter(opts...).ConvertWithSteps(nfa)
	if err != nil {
		return err
	}
	if showSteps {
		printConversionSteps(cmd.ErrOrStderr(), conv.Steps)
	}

	dfa := conv.DFA
	if total {
		if dfa, err = fsa.Totalize(dfa); err != nil {
			return err
		}
	}

	if err := config.Write(cmd.OutOrStdout(), dfa.Config(), format); err != nil {
		return fmt.Errorf("failed to write DFA: %w", err)
	}
	return nil
}
