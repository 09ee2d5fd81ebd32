package phylomds

import (
	"context"

	"github.com/alexeid/phylo-mds/internal/clade"
	"github.com/alexeid/phylo-mds/tree"
)

// CCD is a re-export of the internal clade DAG type, the return shape of
// BuildCCDFromTrees per spec.md section 6.
type CCD = clade.CCD

// CCDProgressFunc reports treesDone out of treesTotal ingested.
type CCDProgressFunc = clade.ProgressFunc

// BuildCCDFromTrees runs the trees -> CCD path of spec.md section 2:
// builds a taxon index, ingests every tree after burnin, and normalises
// the result.
func BuildCCDFromTrees(trees []*tree.Tree, burninFraction float64, opts ...Option) (*CCD, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return clade.Build(trees, burninFraction, cfg.log)
}

// BuildCCDFromTreesAsync is the progress-reporting, cancellable variant
// of BuildCCDFromTrees, yielding between tree ingestions per spec.md
// section 5.
func BuildCCDFromTreesAsync(ctx context.Context, trees []*tree.Tree, burninFraction float64, progress CCDProgressFunc, opts ...Option) (*CCD, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return clade.BuildContext(ctx, trees, burninFraction, 1, progress, cfg.log)
}

// CladeSummary is one entry of CCDStatistics' TopClades list.
type CladeSummary struct {
	Bits        []string
	Probability float64
}

// CCDStatistics is the return shape of spec.md section 6's
// ccdStatistics: the derived quantities a CCD exposes once normalised.
type CCDStatistics struct {
	NumberOfTrees          int
	NumberOfClades         int
	NumberOfLeaves         int
	Entropy                float64
	EntropyLewis           float64
	MaxLogTreeProbability  float64
	MaxTreeProbability     float64
	TopClades              []CladeSummary
}

// Statistics computes CCDStatistics for ccd, per spec.md section 6.
// TopClades holds up to 10 non-leaf, non-root clades with the highest
// marginal probability.
func Statistics(ccd *CCD) CCDStatistics {
	top := ccd.TopClades(10)
	summaries := make([]CladeSummary, len(top))
	for i, id := range top {
		cl := ccd.Clade(id)
		summaries[i] = CladeSummary{
			Bits:        bitLabels(ccd, cl),
			Probability: ccd.Probability(id),
		}
	}

	return CCDStatistics{
		NumberOfTrees:         ccd.NumTrees(),
		NumberOfClades:        ccd.NumClades(),
		NumberOfLeaves:        ccd.NumLeaves(),
		Entropy:               ccd.EntropyForward(),
		EntropyLewis:          ccd.EntropyLewis(),
		MaxLogTreeProbability: ccd.MaxTreeLogProbability(),
		MaxTreeProbability:    ccd.MaxTreeProbability(),
		TopClades:             summaries,
	}
}

func bitLabels(ccd *CCD, cl *clade.Clade) []string {
	taxa := ccd.Taxa()
	var labels []string
	for i, ok := cl.Bits.NextSetBit(0); ok; i, ok = cl.Bits.NextSetBit(i + 1) {
		labels = append(labels, taxa.Label(int(i)))
	}
	return labels
}
