package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/geange/fsa"
	"github.com/geange/fsa/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fsa",
	Short: "fsa validates, runs and determinizes finite-state automata",
	Long: `fsa reads automata described in YAML or JSON files, runs them against input strings
and converts NFAs into equivalent DFAs by subset construction.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log subset discovery and simulation steps")
}

// newLogger builds the stderr logger honoring --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level)
}

// libraryOptions wires the command logger into the fsa components.
func libraryOptions(cmd *cobra.Command) []fsa.Option {
	return []fsa.Option{fsa.WithLogger(logging.Logr(newLogger(cmd)))}
}
