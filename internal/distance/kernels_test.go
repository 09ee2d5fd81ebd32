package distance_test

import (
	"context"
	"testing"

	"github.com/alexeid/phylo-mds/internal/distance"
	"github.com/alexeid/phylo-mds/tree"
	"github.com/stretchr/testify/require"
)

// build constructs a strictly binary tree ((x,y),z) over three labels.
func build(x, y, z string) *tree.Tree {
	a := &tree.Node{ID: 1, Label: x}
	b := &tree.Node{ID: 2, Label: y}
	ab := &tree.Node{ID: 3, Children: []*tree.Node{a, b}}
	a.Parent, b.Parent = ab, ab
	c := &tree.Node{ID: 4, Label: z}
	root := &tree.Node{ID: 5, Children: []*tree.Node{ab, c}}
	ab.Parent, c.Parent = root, root
	return tree.New(root)
}

func TestRFSymmetryAndIdentity(t *testing.T) {
	t1 := build("A", "B", "C")
	t2 := build("A", "C", "B")

	require.Equal(t, distance.RF(t1, t2), distance.RF(t2, t1))
	require.Equal(t, 0, distance.RF(t1, t1))
}

func TestScenarioS1(t *testing.T) {
	t1 := build("A", "B", "C")
	t2 := build("A", "B", "C")
	require.Equal(t, 0, distance.RF(t1, t2))
	require.Equal(t, 0.0, distance.Path(t1, t2))
}

func TestScenarioS2(t *testing.T) {
	// ((A,B),C) vs ((A,C),B)
	t1 := build("A", "B", "C")
	t2 := build("A", "C", "B")
	require.Equal(t, 2, distance.RF(t1, t2))
	require.Equal(t, 1, distance.SPR(t1, t2))
}

func TestPathSymmetry(t *testing.T) {
	t1 := build("A", "B", "C")
	t2 := build("A", "C", "B")
	require.InDelta(t, distance.Path(t1, t2), distance.Path(t2, t1), 1e-12)
	require.Equal(t, 0.0, distance.Path(t1, t1))
}

func TestMatrixShape(t *testing.T) {
	trees := []*tree.Tree{build("A", "B", "C"), build("A", "C", "B"), build("B", "C", "A")}
	m := distance.Matrix(trees, distance.RobinsonFoulds)
	require.Len(t, m, 3)
	for i := range m {
		require.Len(t, m[i], 3)
		require.Equal(t, 0.0, m[i][i])
		for j := range m {
			require.Equal(t, m[i][j], m[j][i])
		}
	}
}

func TestMatrixWithProgressReportsColumns(t *testing.T) {
	trees := []*tree.Tree{build("A", "B", "C"), build("A", "C", "B"), build("B", "C", "A"), build("C", "A", "B")}
	var calls int
	distance.MatrixWithProgress(context.Background(), trees, distance.RobinsonFoulds, 1, func(i, j, n int) {
		calls++
	})
	require.Greater(t, calls, 0)
}
