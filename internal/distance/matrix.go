package distance

import (
	"context"

	"github.com/alexeid/phylo-mds/tree"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc reports that column j of row i has been filled, out of n
// total trees, one of the required suspension points from spec.md section 5.
type ProgressFunc func(i, j, n int)

// kernelFor dispatches a Metric to its pairwise function, returning a
// float64 so RF/SPR (integer valued) and Path share one matrix-fill loop.
func kernelFor(m Metric) func(t1, t2 *tree.Tree) float64 {
	switch m {
	case RobinsonFoulds:
		return func(t1, t2 *tree.Tree) float64 { return float64(RF(t1, t2)) }
	case SPRApprox:
		return func(t1, t2 *tree.Tree) float64 { return float64(SPR(t1, t2)) }
	case PathDifference:
		return Path
	default:
		return func(t1, t2 *tree.Tree) float64 { return float64(RF(t1, t2)) }
	}
}

// Matrix computes the symmetric n x n distance matrix for trees under
// metric, filling only i<j and mirroring, per spec.md section 4.2.
func Matrix(trees []*tree.Tree, metric Metric) [][]float64 {
	return MatrixWithProgress(context.Background(), trees, metric, 0, nil)
}

// MatrixWithProgress is the async-progress variant: every progressEvery
// columns (a non-positive value defaults to 10, per spec.md section 5's
// suspension points) it reports (i,j,n) to progress; a nil progress
// disables reporting. The numeric result is identical to Matrix.
func MatrixWithProgress(ctx context.Context, trees []*tree.Tree, metric Metric, progressEvery int, progress ProgressFunc) [][]float64 {
	n := len(trees)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	if n < 2 {
		return d
	}
	if progressEvery <= 0 {
		progressEvery = 10
	}
	kernel := kernelFor(metric)

	var cols int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := kernel(trees[i], trees[j])
			d[i][j] = v
			d[j][i] = v

			cols++
			if progress != nil && cols%progressEvery == 0 {
				progress(i, j, n)
			}
			select {
			case <-ctx.Done():
				return d
			default:
			}
		}
	}
	if progress != nil {
		progress(n-1, n-1, n)
	}
	return d
}

// MatrixParallel fills the same matrix as Matrix, but with the n^2 fill
// parallelized across rows via an errgroup, the opt-in concurrent path
// spec.md section 5 explicitly permits. Returns the context error if
// ctx is cancelled mid-fill.
func MatrixParallel(ctx context.Context, trees []*tree.Tree, metric Metric) ([][]float64, error) {
	n := len(trees)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	if n < 2 {
		return d, nil
	}
	kernel := kernelFor(metric)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			for j := i + 1; j < n; j++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				v := kernel(trees[i], trees[j])
				d[i][j] = v
				d[j][i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}
