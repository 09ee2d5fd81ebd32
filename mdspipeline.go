package phylomds

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/alexeid/phylo-mds/internal/distance"
	"github.com/alexeid/phylo-mds/internal/mds"
	"github.com/alexeid/phylo-mds/internal/xerrors"
	"github.com/alexeid/phylo-mds/tree"
	"github.com/pkg/errors"
)

// Metric re-exports the distance kernel selector for callers of this
// package who should not need to import the internal distance package.
type Metric = distance.Metric

const (
	RobinsonFoulds = distance.RobinsonFoulds
	SPRApprox      = distance.SPRApprox
	PathDifference = distance.PathDifference
)

// MDSSummary is the goodness-of-fit view of an MDS embedding: the
// SPEC_FULL.md section 4 resolution of spec.md's unspecified "summary"
// field.
type MDSSummary struct {
	StressValue       float64
	Eigenvalues       [2]float64
	VarianceExplained float64
}

// MDSResult is the return shape of MDSPipeline, matching spec.md section
// 6's mdsPipeline entry point.
type MDSResult struct {
	Distances [][]float64
	Coords    []mds.Coordinate
	Labels    []string
	Summary   MDSSummary
}

// MDSPipeline runs the trees -> distances -> MDS path of spec.md section
// 2: after removing burninPct of the leading trees, if more than
// maxTrees remain it subsamples maxTrees of them by partial Fisher-Yates
// shuffle (then sorts the chosen indices ascending), computes the n x n
// distance matrix under metric, and embeds it with classical MDS.
//
// maxTrees <= 0 disables subsampling.
func MDSPipeline(trees []*tree.Tree, metric Metric, maxTrees int, burninPct float64, opts ...Option) (*MDSResult, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	retained, originalIndex := applyBurnin(trees, burninPct)
	if len(retained) < 2 {
		return nil, errors.Wrapf(xerrors.ErrInsufficientTrees, "got %d trees after burnin, need at least 2", len(retained))
	}

	if maxTrees > 0 && len(retained) > maxTrees {
		retained, originalIndex = subsample(retained, originalIndex, maxTrees, cfg.randSeed)
	}

	var d [][]float64
	var err error
	if cfg.parallelDistance {
		d, err = distance.MatrixParallel(context.Background(), retained, metric)
		if err != nil {
			return nil, err
		}
	} else {
		d = distance.Matrix(retained, metric)
	}

	result, err := mds.ClassicalDetailed(d)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(retained))
	for i, orig := range originalIndex {
		labels[i] = fmt.Sprintf("Tree %d", orig+1)
	}

	return &MDSResult{
		Distances: d,
		Coords:    result.Coords,
		Labels:    labels,
		Summary: MDSSummary{
			StressValue:       mds.Stress(d, result.Coords),
			Eigenvalues:       result.Eigenvalues,
			VarianceExplained: mds.VarianceExplained(result.AllEigenvalues),
		},
	}, nil
}

// applyBurnin discards the first floor(len(trees)*burninPct) trees and
// returns the remainder together with each retained tree's original,
// zero-based index, needed for the "Tree {originalIndex+1}" labels.
func applyBurnin(trees []*tree.Tree, burninPct float64) ([]*tree.Tree, []int) {
	discard := 0
	if burninPct > 0 {
		discard = int(float64(len(trees)) * burninPct)
	}
	if discard > len(trees) {
		discard = len(trees)
	}
	retained := trees[discard:]
	idx := make([]int, len(retained))
	for i := range idx {
		idx[i] = discard + i
	}
	return retained, idx
}

// subsample selects n of retained by a partial Fisher-Yates shuffle, then
// sorts the selected indices ascending so both the trees and their
// original-index labels stay in input order.
func subsample(retained []*tree.Tree, originalIndex []int, n int, seed uint64) ([]*tree.Tree, []int) {
	rng := rand.New(rand.NewPCG(seed, seed))
	perm := make([]int, len(retained))
	for i := range perm {
		perm[i] = i
	}
	// partial Fisher-Yates: only shuffle the first n positions.
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(perm)-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	chosen := append([]int{}, perm[:n]...)
	sort.Ints(chosen)

	outTrees := make([]*tree.Tree, n)
	outIndex := make([]int, n)
	for i, c := range chosen {
		outTrees[i] = retained[c]
		outIndex[i] = originalIndex[c]
	}
	return outTrees, outIndex
}
