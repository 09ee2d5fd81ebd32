package main

import (
	"fmt"

	phylomds "github.com/alexeid/phylo-mds"
	"github.com/spf13/cobra"
)

func newMDSCmd() *cobra.Command {
	var metric string
	var maxTrees int

	var input, format string
	var burnin float64

	cmd := &cobra.Command{
		Use:   "mds",
		Short: "Embed a tree sample's pairwise distance matrix in two dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := loadTrees(input, format)
			if err != nil {
				return err
			}

			m, err := parseMetric(metric)
			if err != nil {
				return err
			}

			result, err := phylomds.MDSPipeline(trees, m, maxTrees, burnin, phylomds.WithLogger(log))
			if err != nil {
				return err
			}

			fmt.Printf("%-12s %10s %10s\n", "label", "x", "y")
			for i, c := range result.Coords {
				fmt.Printf("%-12s %10.4f %10.4f\n", result.Labels[i], c.X, c.Y)
			}
			fmt.Printf("\nstress=%.4f variance_explained=%.4f eigenvalues=[%.4f %.4f]\n",
				result.Summary.StressValue, result.Summary.VarianceExplained,
				result.Summary.Eigenvalues[0], result.Summary.Eigenvalues[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "path to a file of trees (required)")
	cmd.Flags().StringVar(&format, "format", "auto", "tree format: auto, newick")
	cmd.Flags().Float64Var(&burnin, "burnin", 0, "fraction of leading trees to discard, in [0,1)")
	cmd.MarkFlagRequired("input")
	cmd.Flags().StringVar(&metric, "metric", "rf", "distance metric: rf, spr, path")
	cmd.Flags().IntVar(&maxTrees, "max-trees", 0, "subsample to at most this many trees (0 disables)")
	return cmd
}

func parseMetric(s string) (phylomds.Metric, error) {
	switch s {
	case "rf", "robinson-foulds":
		return phylomds.RobinsonFoulds, nil
	case "spr":
		return phylomds.SPRApprox, nil
	case "path":
		return phylomds.PathDifference, nil
	default:
		return 0, fmt.Errorf("unknown metric %q, want one of rf, spr, path", s)
	}
}
