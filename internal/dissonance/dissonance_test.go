package dissonance_test

import (
	"context"
	"testing"

	"github.com/alexeid/phylo-mds/internal/dissonance"
	"github.com/alexeid/phylo-mds/tree"
	"github.com/rs/zerolog"
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

// TestScenarioS6: 10 identical trees split into halves -> dissonance 0.
func TestScenarioS6(t *testing.T) {
	var trees []*tree.Tree
	for i := 0; i < 10; i++ {
		trees = append(trees, tri([3]string{"A", "B", "C"}))
	}

	res, err := dissonance.WithinChain(context.Background(), trees, 2, dissonance.Options{Log: zerolog.Nop()})
	require.NoError(t, err)
	require.InDelta(t, 0, res.Summary.Final, 1e-12)
	require.Equal(t, "Exceptional mixing", res.Interpretation)
}

// TestDissonanceNonNegative checks property 11 across a mixed sample.
func TestDissonanceNonNegative(t *testing.T) {
	var trees []*tree.Tree
	topologies := [][3]string{
		{"A", "B", "C"}, {"A", "C", "B"}, {"B", "C", "A"},
	}
	for i := 0; i < 12; i++ {
		trees = append(trees, tri(topologies[i%3]))
	}

	res, err := dissonance.WithinChain(context.Background(), trees, 3, dissonance.Options{Log: zerolog.Nop()})
	require.NoError(t, err)
	for _, d := range res.Dissonance {
		require.GreaterOrEqual(t, d, -1e-9)
	}
}

func TestInsufficientTrees(t *testing.T) {
	trees := []*tree.Tree{tri([3]string{"A", "B", "C"})}
	_, err := dissonance.WithinChain(context.Background(), trees, 2, dissonance.Options{Log: zerolog.Nop()})
	require.Error(t, err)
}

func TestProgressCallback(t *testing.T) {
	var trees []*tree.Tree
	for i := 0; i < 8; i++ {
		trees = append(trees, tri([3]string{"A", "B", "C"}))
	}
	var calls int
	_, err := dissonance.WithinChain(context.Background(), trees, 2, dissonance.Options{
		Log:      zerolog.Nop(),
		Progress: func(step, total int) { calls++ },
	})
	require.NoError(t, err)
	require.Equal(t, 4, calls)
}
