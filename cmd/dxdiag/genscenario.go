package main

import (
	"fmt"
	"os"

	"github.com/fyerfyer/dxdiag/internal/atpg"
	"github.com/fyerfyer/dxdiag/internal/scenario"
	"github.com/fyerfyer/dxdiag/internal/simulate"
	"github.com/spf13/cobra"
)

func newGenScenarioCmd() *cobra.Command {
	var gate string
	var stuckAt int
	var output string

	cmd := &cobra.Command{
		Use:   "gen-scenario <model>",
		Short: "Synthesize a scenario file exercising a chosen stuck-at fault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if gate == "" {
				return fmt.Errorf("--gate is required")
			}
			if stuckAt != 0 && stuckAt != 1 {
				return fmt.Errorf("--stuck-at must be 0 or 1")
			}

			logger, err := newLogger()
			if err != nil {
				return err
			}

			c, err := loadModel(args[0])
			if err != nil {
				return err
			}

			stuckValue := stuckAt == 1
			vector, ok := atpg.Synthesize(c, gate, stuckValue, logger)
			if !ok {
				return fmt.Errorf("no input vector sensitizes %s stuck-at-%d to a primary output", gate, stuckAt)
			}

			faulty := simulate.Run(c, vector, &simulate.Fault{Gate: gate, Value: stuckValue})

			sample := make(map[string]bool, len(vector)+len(c.Outputs))
			for name, v := range vector {
				sample[name] = v
			}
			for _, out := range c.Outputs {
				sample[out] = faulty[out]
			}

			w := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if err := scenario.EncodeSensors(w, 0, sample); err != nil {
				return err
			}
			if err := scenario.EncodeFaultInjection(w, 0, gate); err != nil {
				return err
			}
			logger.Info("gen-scenario: wrote fixture for %s stuck-at-%d", gate, stuckAt)
			return nil
		},
	}

	cmd.Flags().StringVar(&gate, "gate", "", "target gate name")
	cmd.Flags().IntVar(&stuckAt, "stuck-at", 1, "stuck-at value: 0 or 1")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
