package mds_test

import (
	"math"
	"testing"

	"github.com/alexeid/phylo-mds/internal/mds"
	"github.com/stretchr/testify/require"
)

func pairwiseDist(coords []mds.Coordinate, i, j int) float64 {
	dx := coords[i].X - coords[j].X
	dy := coords[i].Y - coords[j].Y
	return math.Sqrt(dx*dx + dy*dy)
}

func TestScenarioS5Equilateral(t *testing.T) {
	d := [][]float64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}
	coords, err := mds.Classical(d)
	require.NoError(t, err)
	require.Len(t, coords, 3)

	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			require.InDelta(t, 1.0, pairwiseDist(coords, i, j), 1e-9)
		}
	}
}

func TestPreservesEuclideanPointCloud(t *testing.T) {
	pts := []mds.Coordinate{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 4}, {X: 3, Y: 4}}
	n := len(pts)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d[i][j] = pairwiseDist(pts, i, j)
		}
	}

	coords, err := mds.Classical(d)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.InDelta(t, d[i][j], pairwiseDist(coords, i, j), 1e-9)
		}
	}
}

func TestDegenerateAllZero(t *testing.T) {
	d := [][]float64{{0, 0}, {0, 0}}
	coords, err := mds.Classical(d)
	require.NoError(t, err)
	for _, c := range coords {
		require.Equal(t, 0.0, c.X)
		require.Equal(t, 0.0, c.Y)
	}
}

func TestAsymmetricInputIsNumericFailure(t *testing.T) {
	d := [][]float64{{0, 1}, {2, 0}}
	_, err := mds.Classical(d)
	require.Error(t, err)
}
