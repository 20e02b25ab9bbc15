// SPDX-License-Identifier: MIT

// Package cli implements the kisoext command line.
package cli

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Input holds the persistent flags shared by every subcommand.
type Input struct {
	verbose     bool
	configPath  string
	historyPath string
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand(version string) *cobra.Command {
	input := new(Input)

	rootCmd := &cobra.Command{
		Use:          "kisoext",
		Short:        "Minimal k-isomorphic subgraph extension of directed multigraphs",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if input.verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&input.configPath, "config", "", "YAML config file (default: $XDG_CONFIG_HOME/kisoext/config.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&input.historyPath, "history", "", "run history database (default: $XDG_DATA_HOME/kisoext/history.db)")

	rootCmd.AddCommand(
		newSolveCommand(input),
		newGenerateCommand(input),
		newBenchCommand(input),
		newHistoryCommand(input),
	)

	return rootCmd
}
