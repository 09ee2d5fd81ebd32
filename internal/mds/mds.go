// Package mds implements classical multidimensional scaling: double
// centering of the squared distance matrix followed by a symmetric
// eigendecomposition, per spec.md section 4.3. The eigensolver is
// gonum.org/v1/gonum/mat.EigenSym, the numerical stack used by
// js-arias/phygeo for comparable distance/embedding work.
package mds

import (
	"math"
	"sort"

	"github.com/alexeid/phylo-mds/internal/xerrors"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Coordinate is a single point's 2D classical-MDS embedding.
type Coordinate struct {
	X, Y float64
}

// Result is the full output of a classical MDS run: the 2D coordinates
// plus the eigenvalues behind them, enough to derive the summary
// statistics spec.md section 6 names but leaves undefined (see
// SPEC_FULL.md section 4).
type Result struct {
	Coords      []Coordinate
	Eigenvalues [2]float64
	// AllEigenvalues holds every eigenvalue of B, descending, used to
	// compute the fraction of variance explained by the first two.
	AllEigenvalues []float64
}

// Classical computes the 2D classical MDS embedding of the symmetric,
// zero-diagonal, nonnegative distance matrix d.
//
// Sign of eigenvectors is implementation-defined; the result is valid up
// to reflection about either axis, as spec.md section 4.3 allows.
func Classical(d [][]float64) ([]Coordinate, error) {
	res, err := ClassicalDetailed(d)
	if err != nil {
		return nil, err
	}
	return res.Coords, nil
}

// ClassicalDetailed is Classical plus the eigenvalue detail used for the
// MDS pipeline's summary statistics.
func ClassicalDetailed(d [][]float64) (Result, error) {
	n := len(d)
	if n == 0 {
		return Result{}, nil
	}
	for i := range d {
		if len(d[i]) != n {
			return Result{}, errors.Wrap(xerrors.ErrNumericFailure, "distance matrix is not square")
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d[i][j] != d[j][i] {
				return Result{}, errors.Wrapf(xerrors.ErrNumericFailure, "distance matrix not symmetric at (%d,%d)", i, j)
			}
		}
	}

	sq := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			sq.Set(i, j, d[i][j]*d[i][j])
		}
	}

	rowMean := make([]float64, n)
	for i := 0; i < n; i++ {
		var s float64
		for j := 0; j < n; j++ {
			s += sq.At(i, j)
		}
		rowMean[i] = s / float64(n)
	}
	var totalMean float64
	for i := 0; i < n; i++ {
		totalMean += rowMean[i]
	}
	totalMean /= float64(n)

	b := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := -0.5 * (sq.At(i, j) - rowMean[i] - rowMean[j] + totalMean)
			b.SetSym(i, j, v)
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(b, true); !ok {
		return Result{}, errors.Wrap(xerrors.ErrNumericFailure, "eigendecomposition did not converge")
	}

	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return values[order[a]] > values[order[b]] })

	sortedValues := make([]float64, n)
	for i, idx := range order {
		sortedValues[i] = values[idx]
	}

	lambda1 := values[order[0]]
	var lambda2 float64
	if n > 1 {
		lambda2 = values[order[1]]
	}

	coords := make([]Coordinate, n)
	if lambda1 <= 0 {
		return Result{Coords: coords, Eigenvalues: [2]float64{lambda1, lambda2}, AllEigenvalues: sortedValues}, nil
	}
	sqrtL1 := sqrtPositive(lambda1)
	sqrtL2 := sqrtPositive(lambda2)
	for i := 0; i < n; i++ {
		x := vectors.At(i, order[0]) * sqrtL1
		var y float64
		if lambda2 > 0 {
			y = vectors.At(i, order[1]) * sqrtL2
		}
		coords[i] = Coordinate{X: x, Y: y}
	}
	return Result{Coords: coords, Eigenvalues: [2]float64{lambda1, lambda2}, AllEigenvalues: sortedValues}, nil
}

func sqrtPositive(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}
