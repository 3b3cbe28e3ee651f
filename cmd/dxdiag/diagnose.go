package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/fyerfyer/dxdiag/internal/diagnose"
	"github.com/fyerfyer/dxdiag/internal/scenario"
	"github.com/spf13/cobra"
)

func newDiagnoseCmd() *cobra.Command {
	var budget time.Duration
	var concurrent bool
	var workers int

	cmd := &cobra.Command{
		Use:   "diagnose <model> <scenario.scn>",
		Short: "Stream scenario observations through the single-fault diagnoser",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}

			c, err := loadModel(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			adapter := scenario.NewAdapter(c)
			d := diagnose.New(c, logger)
			out := cmd.OutOrStdout()

			return scenario.Decode(f, func(obs scenario.Observation) {
				inputs := adapter.InputValues(obs)
				sample := adapter.Sample(obs)

				var res diagnose.Result
				if concurrent {
					res = d.ProcessConcurrent(inputs, sample, budget, workers)
				} else {
					res = d.Process(inputs, sample, budget)
				}

				fmt.Fprintf(out, "@%d detected=%v candidates=%s\n", obs.Timestamp, res.Detected, formatCandidates(res.Candidates))
			}, nil, nil)
		},
	}

	cmd.Flags().DurationVar(&budget, "budget", 0, "soft wall-clock budget per observation (0 = unbounded)")
	cmd.Flags().BoolVar(&concurrent, "concurrent", false, "enumerate fault candidates concurrently")
	cmd.Flags().IntVar(&workers, "workers", 4, "worker count when --concurrent is set")

	return cmd
}

func formatCandidates(candidates map[string]bool) string {
	if len(candidates) == 0 {
		return "{}"
	}
	names := make([]string, 0, len(candidates))
	for name := range candidates {
		names = append(names, name)
	}
	sort.Strings(names)

	out := "{"
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out + "}"
}
