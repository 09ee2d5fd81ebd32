package tree_test

import (
	"testing"

	"github.com/alexeid/phylo-mds/tree"
	"github.com/stretchr/testify/require"
)

// abc builds ((A,B),C);
func abc() *tree.Tree {
	a := &tree.Node{ID: 1, Label: "A"}
	b := &tree.Node{ID: 2, Label: "B"}
	ab := &tree.Node{ID: 3, Children: []*tree.Node{a, b}}
	a.Parent, b.Parent = ab, ab
	c := &tree.Node{ID: 4, Label: "C"}
	root := &tree.Node{ID: 5, Children: []*tree.Node{ab, c}}
	ab.Parent, c.Parent = root, root
	return tree.New(root)
}

func TestTipLabels(t *testing.T) {
	tr := abc()
	require.ElementsMatch(t, []string{"A", "B", "C"}, tr.TipLabels())
}

func TestValidateRejectsPolytomy(t *testing.T) {
	a := &tree.Node{ID: 1, Label: "A"}
	b := &tree.Node{ID: 2, Label: "B"}
	c := &tree.Node{ID: 3, Label: "C"}
	root := &tree.Node{ID: 4, Children: []*tree.Node{a, b, c}}
	tr := tree.New(root)
	require.Error(t, tr.Validate())
}

func TestValidateRejectsUnlabeledLeaf(t *testing.T) {
	a := &tree.Node{ID: 1, Label: "A"}
	b := &tree.Node{ID: 0}
	root := &tree.Node{ID: 3, Children: []*tree.Node{a, b}}
	tr := tree.New(root)
	require.Error(t, tr.Validate())
}

func TestBranchLengthDefault(t *testing.T) {
	n := &tree.Node{}
	require.Equal(t, 1.0, n.BranchLengthOrDefault())
	n.HasBranch = true
	n.BranchLength = 0.5
	require.Equal(t, 0.5, n.BranchLengthOrDefault())
}

func TestTaxonIndexDeterministic(t *testing.T) {
	tr := abc()
	idx := tree.NewTaxonIndex([]*tree.Tree{tr})
	require.Equal(t, 3, idx.Len())
	require.Equal(t, []string{"A", "B", "C"}, idx.Labels())

	ia, err := idx.IndexOf("A")
	require.NoError(t, err)
	require.Equal(t, 0, ia)

	_, err = idx.IndexOf("Z")
	require.Error(t, err)
}
