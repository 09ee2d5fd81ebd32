package clade

import (
	"context"

	"github.com/alexeid/phylo-mds/tree"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// ProgressFunc reports treesDone out of treesTotal ingested, the async
// CCD-construction suspension point from spec.md section 5.
type ProgressFunc func(treesDone, treesTotal int)

// Build discards the first floor(len(trees)*burninFraction) trees,
// builds a taxon index from the leaf labels of the remainder, allocates a
// CCD, ingests every retained tree, and initialises it, per spec.md
// section 4.4's buildCCD entry point.
func Build(trees []*tree.Tree, burninFraction float64, log zerolog.Logger) (*CCD, error) {
	return BuildContext(context.Background(), trees, burninFraction, 0, nil, log)
}

// BuildContext is the async-progress variant, yielding (reporting to
// progress) between tree ingestions, every progressEvery trees (0
// disables reporting). It can be cancelled via ctx; a cancelled build
// returns ctx.Err() and the partially built CCD is left Accumulating and
// must be discarded, per spec.md section 5's cancellation policy.
func BuildContext(ctx context.Context, trees []*tree.Tree, burninFraction float64, progressEvery int, progress ProgressFunc, log zerolog.Logger) (*CCD, error) {
	retained := applyBurnin(trees, burninFraction)

	taxa := tree.NewTaxonIndex(retained)
	ccd := New(taxa, log)

	for i, t := range retained {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if err := ccd.AddTree(t); err != nil {
			return nil, errors.Wrapf(err, "tree %d", i)
		}
		if progress != nil && progressEvery > 0 && (i+1)%progressEvery == 0 {
			progress(i+1, len(retained))
		}
	}
	if progress != nil && progressEvery > 0 && len(retained)%progressEvery != 0 {
		progress(len(retained), len(retained))
	}

	ccd.Initialise()
	return ccd, nil
}

func applyBurnin(trees []*tree.Tree, burninFraction float64) []*tree.Tree {
	if burninFraction <= 0 {
		return trees
	}
	discard := int(float64(len(trees)) * burninFraction)
	if discard >= len(trees) {
		return nil
	}
	return trees[discard:]
}
