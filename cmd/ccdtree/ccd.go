package main

import (
	"fmt"
	"strings"

	phylomds "github.com/alexeid/phylo-mds"
	"github.com/spf13/cobra"
)

func newCCDCmd() *cobra.Command {
	var input, format string
	var burnin float64

	cmd := &cobra.Command{
		Use:   "ccd",
		Short: "Build a conditional clade distribution and print its summary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := loadTrees(input, format)
			if err != nil {
				return err
			}

			ccd, err := phylomds.BuildCCDFromTrees(trees, burnin, phylomds.WithLogger(log))
			if err != nil {
				return err
			}

			stats := phylomds.Statistics(ccd)
			fmt.Printf("trees=%d leaves=%d clades=%d\n", stats.NumberOfTrees, stats.NumberOfLeaves, stats.NumberOfClades)
			fmt.Printf("entropy=%.4f entropy_lewis=%.4f\n", stats.Entropy, stats.EntropyLewis)
			fmt.Printf("max_tree_log_probability=%.4f max_tree_probability=%.6f\n", stats.MaxLogTreeProbability, stats.MaxTreeProbability)
			fmt.Println("top clades:")
			for _, c := range stats.TopClades {
				fmt.Printf("  %8.6f  {%s}\n", c.Probability, strings.Join(c.Bits, ","))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "path to a file of trees (required)")
	cmd.Flags().StringVar(&format, "format", "auto", "tree format: auto, newick")
	cmd.Flags().Float64Var(&burnin, "burnin", 0, "fraction of leading trees to discard, in [0,1)")
	cmd.MarkFlagRequired("input")
	return cmd
}
