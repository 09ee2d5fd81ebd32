package phylomds

import (
	"context"

	"github.com/alexeid/phylo-mds/internal/dissonance"
	"github.com/alexeid/phylo-mds/tree"
)

// DissonanceResult re-exports the dissonance package's report shape.
type DissonanceResult = dissonance.Result

// DissonanceProgressFunc reports that step i of total has completed.
type DissonanceProgressFunc = dissonance.ProgressFunc

// WithinChainDissonance runs the trees -> split -> dissonance path of
// spec.md section 2: splits trees into numSplits contiguous blocks and
// compares per-block CCDs against the pooled CCD, per section 4.5.
// numSplits defaults to 2 when <= 0.
func WithinChainDissonance(ctx context.Context, trees []*tree.Tree, numSplits int, progress DissonanceProgressFunc, opts ...Option) (*DissonanceResult, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if numSplits <= 0 {
		numSplits = 2
	}
	return dissonance.WithinChain(ctx, trees, numSplits, dissonance.Options{
		Progress: progress,
		Log:      cfg.log,
		RandSeed: cfg.randSeed,
	})
}
