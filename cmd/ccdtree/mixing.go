package main

import (
	"context"
	"fmt"

	phylomds "github.com/alexeid/phylo-mds"
	"github.com/alexeid/phylo-mds/tree"
	"github.com/spf13/cobra"
)

func newMixingCmd() *cobra.Command {
	var input, format string
	var burnin float64
	var splits int

	cmd := &cobra.Command{
		Use:   "mixing",
		Short: "Check within-chain mixing by comparing split CCDs against the pooled CCD",
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := loadTrees(input, format)
			if err != nil {
				return err
			}
			retained := discardBurnin(trees, burnin)

			result, err := phylomds.WithinChainDissonance(context.Background(), retained, splits, nil, phylomds.WithLogger(log))
			if err != nil {
				return err
			}

			fmt.Printf("dissonance: final=%.4f mean=%.4f min=%.4f max=%.4f\n",
				result.Summary.Final, result.Summary.Mean, result.Summary.Min, result.Summary.Max)
			fmt.Printf("relative=%.4f (%s)\n", result.RelativeDissonance, result.Interpretation)
			if cmp := result.ProbabilityComparison; cmp != nil {
				fmt.Printf("probability comparison over %d sampled trees: higher=%v in_one_only=%d rms_log_diff=%.4f rms_relative_diff=%.4f\n",
					cmp.SampledTrees, cmp.HigherCount, cmp.InOneOnlyCount, cmp.RMSLogProbDiff, cmp.RMSRelativeProbDiff)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "path to a file of trees (required)")
	cmd.Flags().StringVar(&format, "format", "auto", "tree format: auto, newick")
	cmd.Flags().Float64Var(&burnin, "burnin", 0, "fraction of leading trees to discard, in [0,1)")
	cmd.Flags().IntVar(&splits, "splits", 2, "number of contiguous blocks to compare")
	cmd.MarkFlagRequired("input")
	return cmd
}

func discardBurnin(trees []*tree.Tree, pct float64) []*tree.Tree {
	if pct <= 0 {
		return trees
	}
	discard := int(float64(len(trees)) * pct)
	if discard > len(trees) {
		discard = len(trees)
	}
	return trees[discard:]
}
