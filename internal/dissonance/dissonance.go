// Package dissonance implements the within-chain mixing diagnostic:
// incremental construction of k per-chain CCDs and one pooled CCD in
// lockstep, comparing split vs. pooled entropy, per spec.md section 4.5.
package dissonance

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/alexeid/phylo-mds/internal/clade"
	"github.com/alexeid/phylo-mds/internal/xerrors"
	"github.com/alexeid/phylo-mds/tree"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

// ProgressFunc reports that step i of total has completed, the per-tree
// suspension point of incremental dissonance construction (spec.md
// section 5).
type ProgressFunc func(step, total int)

// Summary collects the scalar view of a per-step dissonance series.
type Summary struct {
	Final, Mean, Min, Max float64
}

// ProbabilityComparison is the optional k=2 CCD probability comparison
// described in spec.md section 4.5, computed only when k==2 and the
// average final chain entropy exceeds 10.
type ProbabilityComparison struct {
	SampledTrees        int
	HigherCount         [2]int
	InOneOnlyCount      int
	RMSLogProbDiff      float64
	RMSRelativeProbDiff float64
}

// Result is the full within-chain dissonance report.
type Result struct {
	ChainEntropies         [][]float64
	PooledEntropies        []float64
	Dissonance             []float64
	Summary                Summary
	RelativeDissonance     float64
	Interpretation         string
	ProbabilityComparison  *ProbabilityComparison
}

// Options configure a dissonance run.
type Options struct {
	Progress ProgressFunc
	Log      zerolog.Logger
	// RandSeed seeds the sampler used by the optional probability
	// comparison, for reproducibility (spec.md section 9's
	// "deterministic ordering... distance-matrix sampling uses a
	// supplied random seed" applies equally here).
	RandSeed uint64
}

// WithinChain partitions trees into numSplits contiguous blocks (the
// last absorbing any remainder) and runs MultiChain across them.
func WithinChain(ctx context.Context, trees []*tree.Tree, numSplits int, opts Options) (*Result, error) {
	if numSplits < 2 || len(trees) < 2*numSplits {
		return nil, errors.Wrapf(xerrors.ErrInsufficientTrees, "got %d trees for %d splits, need at least %d", len(trees), numSplits, 2*numSplits)
	}
	blockSize := len(trees) / numSplits
	sets := make([][]*tree.Tree, numSplits)
	for j := 0; j < numSplits; j++ {
		start := j * blockSize
		end := start + blockSize
		if j == numSplits-1 {
			end = len(trees)
		}
		sets[j] = trees[start:end]
	}
	return MultiChain(ctx, sets, opts)
}

// MultiChain runs the incremental multi-CCD construction described in
// spec.md section 4.5 over k already-partitioned tree sets.
func MultiChain(ctx context.Context, treeSets [][]*tree.Tree, opts Options) (*Result, error) {
	k := len(treeSets)
	if k < 2 {
		return nil, errors.Wrap(xerrors.ErrInsufficientTrees, "need at least 2 tree sets")
	}

	m := len(treeSets[0])
	for _, s := range treeSets {
		if len(s) < m {
			m = len(s)
		}
	}
	if m == 0 {
		return nil, errors.Wrap(xerrors.ErrInsufficientTrees, "tree sets are empty")
	}

	var all []*tree.Tree
	for _, s := range treeSets {
		all = append(all, s...)
	}
	taxa := tree.NewTaxonIndex(all)

	chains := make([]*clade.CCD, k)
	for j := range chains {
		chains[j] = clade.New(taxa, opts.Log)
	}
	pooled := clade.New(taxa, opts.Log)

	chainEntropies := make([][]float64, k)
	pooledEntropies := make([]float64, 0, m)
	dissonance := make([]float64, 0, m)

	for i := 0; i < m; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var sumH float64
		for j := 0; j < k; j++ {
			t := treeSets[j][i]
			if err := chains[j].AddTree(t); err != nil {
				return nil, errors.Wrapf(err, "chain %d step %d", j, i)
			}
			chains[j].Initialise()
			h := chains[j].EntropyForward()
			chainEntropies[j] = append(chainEntropies[j], h)
			sumH += h

			if err := pooled.AddTree(t); err != nil {
				return nil, errors.Wrapf(err, "pooled step %d", i)
			}
		}
		pooled.Initialise()
		hPool := pooled.EntropyForward()
		pooledEntropies = append(pooledEntropies, hPool)
		dissonance = append(dissonance, hPool-sumH/float64(k))

		if opts.Progress != nil {
			opts.Progress(i+1, m)
		}
	}

	summary := summarize(dissonance)

	finalEntropies := make([]float64, k)
	for j := 0; j < k; j++ {
		finalEntropies[j] = chainEntropies[j][m-1]
	}
	avgFinalChainEntropy := stat.Mean(finalEntropies, nil)

	var relative float64
	if avgFinalChainEntropy != 0 {
		relative = summary.Final / avgFinalChainEntropy
	}

	result := &Result{
		ChainEntropies:     chainEntropies,
		PooledEntropies:    pooledEntropies,
		Dissonance:         dissonance,
		Summary:            summary,
		RelativeDissonance: relative,
		Interpretation:     interpret(relative),
	}

	if k == 2 && avgFinalChainEntropy > 10 {
		result.ProbabilityComparison = compareProbabilities(treeSets[0][:m], treeSets[1][:m], chains[0], chains[1], opts.RandSeed)
	}

	return result, nil
}

func summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	s := Summary{Final: xs[len(xs)-1], Min: xs[0], Max: xs[0], Mean: stat.Mean(xs, nil)}
	for _, x := range xs {
		if x < s.Min {
			s.Min = x
		}
		if x > s.Max {
			s.Max = x
		}
	}
	return s
}

func interpret(relative float64) string {
	switch {
	case relative < 0.001:
		return "Exceptional mixing"
	case relative < 0.01:
		return "Excellent mixing"
	case relative < 0.02:
		return "Very good mixing"
	case relative < 0.05:
		return "Good mixing"
	case relative < 0.10:
		return "Moderate mixing"
	case relative < 0.20:
		return "Poor mixing"
	default:
		return "Very poor mixing"
	}
}

func compareProbabilities(setA, setB []*tree.Tree, ccdA, ccdB *clade.CCD, seed uint64) *ProbabilityComparison {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	sampleA := subsample(setA, 1000, rng)
	sampleB := subsample(setB, 1000, rng)
	sample := append(append([]*tree.Tree{}, sampleA...), sampleB...)

	cmp := &ProbabilityComparison{}
	var sumSqLog, sumSqRel float64
	var nLog, nRel int

	for _, t := range sample {
		logP1, err1 := ccdA.TreeLogProbability(t)
		logP2, err2 := ccdB.TreeLogProbability(t)
		if err1 != nil || err2 != nil {
			continue
		}
		cmp.SampledTrees++

		inf1 := math.IsInf(logP1, -1)
		inf2 := math.IsInf(logP2, -1)
		if inf1 && inf2 {
			continue
		}
		if inf1 != inf2 {
			cmp.InOneOnlyCount++
			if inf2 {
				cmp.HigherCount[0]++
			} else {
				cmp.HigherCount[1]++
			}
			continue
		}

		if logP1 > logP2 {
			cmp.HigherCount[0]++
		} else if logP2 > logP1 {
			cmp.HigherCount[1]++
		}

		diff := logP1 - logP2
		sumSqLog += diff * diff
		nLog++

		p1, p2 := math.Exp(logP1), math.Exp(logP2)
		denom := (p1 + p2) / 2
		if denom > 0 {
			rel := (p1 - p2) / denom
			sumSqRel += rel * rel
			nRel++
		}
	}

	if nLog > 0 {
		cmp.RMSLogProbDiff = math.Sqrt(sumSqLog / float64(nLog))
	}
	if nRel > 0 {
		cmp.RMSRelativeProbDiff = math.Sqrt(sumSqRel / float64(nRel))
	}
	return cmp
}

func subsample(trees []*tree.Tree, max int, rng *rand.Rand) []*tree.Tree {
	if len(trees) <= max {
		return trees
	}
	idx := rng.Perm(len(trees))[:max]
	out := make([]*tree.Tree, max)
	for i, j := range idx {
		out[i] = trees[j]
	}
	return out
}
