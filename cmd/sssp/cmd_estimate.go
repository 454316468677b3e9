package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sssp/bellmanford"
)

type estimateSummary struct {
	Nodes               int64  `json:"nodes" yaml:"nodes"`
	Concurrency         int    `json:"concurrency" yaml:"concurrency"`
	TrackNegativeCycles bool   `json:"track_negative_cycles" yaml:"track_negative_cycles"`
	MinBytes            uint64 `json:"min_bytes" yaml:"min_bytes"`
	MaxBytes            uint64 `json:"max_bytes" yaml:"max_bytes"`
	Human               string `json:"human" yaml:"human"`
}

func newEstimateCmd() *cobra.Command {
	var (
		nodes       int64
		concurrency int
		track       bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the peak memory of one run",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := estimate(nodes, concurrency, track)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), flagFmt, s)
		},
	}

	cmd.Flags().Int64Var(&nodes, "nodes", 1_000_000, "Node count")
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "Number of workers")
	cmd.Flags().BoolVar(&track, "track-negative-cycles", false, "Account for hop lengths")

	return cmd
}

func estimate(nodes int64, concurrency int, track bool) (estimateSummary, error) {
	if nodes < 0 {
		return estimateSummary{}, fmt.Errorf("%w: nodes=%d must be >= 0", errBadConfig, nodes)
	}
	if concurrency < 1 {
		return estimateSummary{}, fmt.Errorf("%w: concurrency=%d must be >= 1", errBadConfig, concurrency)
	}
	r := bellmanford.MemoryEstimation(nodes, concurrency, track)

	return estimateSummary{
		Nodes:               nodes,
		Concurrency:         concurrency,
		TrackNegativeCycles: track,
		MinBytes:            r.Min,
		MaxBytes:            r.Max,
		Human:               r.String(),
	}, nil
}
