package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ashrey-kulkarni/tentsolve/cmd/tentsolve/internal/clicommon"
)

var (
	trace    bool
	noCache  bool
	cacheDir string
)

// rootCmd is the base command when tentsolve is called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "tentsolve",
	Short: "Solve and play Tents puzzles",
	Long: `tentsolve loads a Tents puzzle from a JSON file and either solves it
outright or walks it one move at a time.

It provides:
  - solve: run the full propagate+search pipeline and print the result
  - play:  reveal one move per invocation, for scripted or interactive play
  - cache: inspect or clear the on-disk solved-puzzle cache`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		clicommon.ConfigureLogging(trace)
	},
}

// Execute runs the root command. Called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "enable structured trace output of every propagate/search decision")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "skip the on-disk solved-puzzle cache")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", defaultCacheDir(), "directory for the solved-puzzle cache")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(cacheCmd)
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ".tentsolve-cache"
	}
	return dir + "/tentsolve"
}
