package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <model>",
		Short: "Load a model and report its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}

			c, err := loadModel(args[0])
			if err != nil {
				return err
			}
			logger.Model("loaded %s: %d inputs, %d outputs, %d gates", c.Name, len(c.Inputs), len(c.Outputs), len(c.Gates))

			fmt.Fprintf(cmd.OutOrStdout(), "circuit %q: %d inputs, %d outputs, %d gates\n", c.Name, len(c.Inputs), len(c.Outputs), len(c.Gates))
			if len(c.Dropped) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d dropped unknown-gate components:\n", len(c.Dropped))
				for _, d := range c.Dropped {
					fmt.Fprintf(cmd.OutOrStdout(), "  %s (type %q)\n", d.Name, d.RawType)
				}
			}
			return nil
		},
	}
}
