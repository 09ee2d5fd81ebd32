package phylomds_test

import (
	"context"
	"testing"

	phylomds "github.com/alexeid/phylo-mds"
	"github.com/alexeid/phylo-mds/tree"
	"github.com/stretchr/testify/require"
)

func tri(order [3]string) *tree.Tree {
	a := &tree.Node{ID: 1, Label: order[0]}
	b := &tree.Node{ID: 2, Label: order[1]}
	ab := &tree.Node{ID: 3, Children: []*tree.Node{a, b}}
	a.Parent, b.Parent = ab, ab
	c := &tree.Node{ID: 4, Label: order[2]}
	root := &tree.Node{ID: 5, Children: []*tree.Node{ab, c}}
	ab.Parent, c.Parent = root, root
	return tree.New(root)
}

func TestMDSPipelineEndToEnd(t *testing.T) {
	trees := []*tree.Tree{
		tri([3]string{"A", "B", "C"}),
		tri([3]string{"A", "C", "B"}),
		tri([3]string{"B", "C", "A"}),
	}
	result, err := phylomds.MDSPipeline(trees, phylomds.RobinsonFoulds, 0, 0)
	require.NoError(t, err)
	require.Len(t, result.Coords, 3)
	require.Equal(t, []string{"Tree 1", "Tree 2", "Tree 3"}, result.Labels)
}

func TestMDSPipelineInsufficientTrees(t *testing.T) {
	trees := []*tree.Tree{tri([3]string{"A", "B", "C"})}
	_, err := phylomds.MDSPipeline(trees, phylomds.RobinsonFoulds, 0, 0)
	require.Error(t, err)
}

func TestBuildCCDAndStatistics(t *testing.T) {
	trees := []*tree.Tree{
		tri([3]string{"A", "B", "C"}),
		tri([3]string{"A", "B", "C"}),
		tri([3]string{"A", "C", "B"}),
	}
	ccd, err := phylomds.BuildCCDFromTrees(trees, 0)
	require.NoError(t, err)

	stats := phylomds.Statistics(ccd)
	require.Equal(t, 3, stats.NumberOfTrees)
	require.Equal(t, 3, stats.NumberOfLeaves)
	require.InDelta(t, 2.0/3.0, stats.MaxTreeProbability, 1e-9)
}

func TestBuildCCDAsyncReportsProgress(t *testing.T) {
	trees := []*tree.Tree{
		tri([3]string{"A", "B", "C"}),
		tri([3]string{"A", "C", "B"}),
	}
	var calls int
	ccd, err := phylomds.BuildCCDFromTreesAsync(context.Background(), trees, 0, func(done, total int) {
		calls++
	})
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Equal(t, 2, ccd.NumTrees())
}

func TestWithinChainDissonanceEndToEnd(t *testing.T) {
	var trees []*tree.Tree
	for i := 0; i < 10; i++ {
		trees = append(trees, tri([3]string{"A", "B", "C"}))
	}
	res, err := phylomds.WithinChainDissonance(context.Background(), trees, 2, nil)
	require.NoError(t, err)
	require.InDelta(t, 0, res.Summary.Final, 1e-12)
}

func TestMDSPipelineParallelDistanceMatrixMatchesSequential(t *testing.T) {
	trees := []*tree.Tree{
		tri([3]string{"A", "B", "C"}),
		tri([3]string{"A", "C", "B"}),
		tri([3]string{"B", "C", "A"}),
	}
	sequential, err := phylomds.MDSPipeline(trees, phylomds.RobinsonFoulds, 0, 0)
	require.NoError(t, err)

	parallel, err := phylomds.MDSPipeline(trees, phylomds.RobinsonFoulds, 0, 0, phylomds.WithParallelDistanceMatrix())
	require.NoError(t, err)

	require.Equal(t, sequential.Distances, parallel.Distances)
}

func TestBurninRemovesLeadingTrees(t *testing.T) {
	trees := []*tree.Tree{
		tri([3]string{"A", "B", "C"}),
		tri([3]string{"A", "B", "C"}),
		tri([3]string{"A", "B", "C"}),
		tri([3]string{"A", "C", "B"}),
	}
	result, err := phylomds.MDSPipeline(trees, phylomds.RobinsonFoulds, 0, 0.5)
	require.NoError(t, err)
	// burninPct 0.5 of 4 trees discards the first 2.
	require.Equal(t, []string{"Tree 3", "Tree 4"}, result.Labels)
}
