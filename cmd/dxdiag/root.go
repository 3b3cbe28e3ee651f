// Command dxdiag loads a combinational circuit model and runs it
// through the single-fault diagnoser, or synthesizes a test scenario
// for a chosen stuck-at fault. See root.go's command tree for usage.
package main

import (
	"fmt"
	"os"

	"github.com/fyerfyer/dxdiag/internal/logx"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logFile string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dxdiag",
		Short:         "Combinational circuit fault diagnoser",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&logFile, "log", "", "write logs to this file instead of stdout")

	root.AddCommand(newValidateCmd())
	root.AddCommand(newDiagnoseCmd())
	root.AddCommand(newGenScenarioCmd())

	return root
}

func newLogger() (*logx.Logger, error) {
	level := logx.InfoLevel
	if verbose {
		level = logx.DebugLevel
	}
	if logFile == "" {
		return logx.New(level), nil
	}
	return logx.NewFile(level, logFile)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "dxdiag:", err)
		os.Exit(1)
	}
}
