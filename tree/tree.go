// Package tree implements the abstract rooted binary tree model consumed
// by the distance kernels, the MDS pipeline, and the CCD construction.
//
// A Tree is produced by an external tree-reader collaborator (Newick,
// Nexus, PhyloXML, NeXML, or PhyJSON) that this package does not implement;
// it only defines the shape that collaborator must hand back.
package tree

import (
	"strconv"

	"github.com/alexeid/phylo-mds/internal/xerrors"
	"github.com/pkg/errors"
)

// Node is one vertex of a rooted, strictly binary tree. An internal node
// has exactly two Children; a leaf has zero and a non-empty Label or,
// failing that, a non-zero ID (see TipLabel).
type Node struct {
	ID           int
	Label        string
	HasBranch    bool
	BranchLength float64
	HasHeight    bool
	Height       float64
	Children     []*Node
	Parent       *Node
}

// IsLeaf reports whether n is a leaf: exactly this predicate is used
// throughout the package, never a direct len(Children)==0 check outside
// of it, so callers have one place to special-case if the contract ever
// grows a third shape (e.g. sampled ancestors).
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// BranchLengthOrDefault returns n's branch length, defaulting to 1 when
// none was supplied, per spec.md section 3.
func (n *Node) BranchLengthOrDefault() float64 {
	if n.HasBranch {
		return n.BranchLength
	}
	return 1
}

// HeightOrZero returns n's height, or zero when none was supplied.
func (n *Node) HeightOrZero() float64 {
	if n.HasHeight {
		return n.Height
	}
	return 0
}

// TipLabel returns n.Label if set, otherwise the string form of n.ID, the
// tree-reader contract's fallback rule from spec.md section 6.
func (n *Node) TipLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return strconv.Itoa(n.ID)
}

// Tree is a rooted binary tree together with a cached ordered leaf list.
type Tree struct {
	Root  *Node
	Leaves []*Node
}

// New builds a Tree from a root node, computing the ordered leaf list by
// a left-to-right traversal.
func New(root *Node) *Tree {
	t := &Tree{Root: root}
	t.Leaves = collectLeaves(root, nil)
	return t
}

func collectLeaves(n *Node, into []*Node) []*Node {
	if n == nil {
		return into
	}
	if n.IsLeaf() {
		return append(into, n)
	}
	for _, c := range n.Children {
		into = collectLeaves(c, into)
	}
	return into
}

// TipLabels returns the tip labels of t in leaf-list order, per the
// tree-reader contract (spec.md section 6).
func (t *Tree) TipLabels() []string {
	labels := make([]string, len(t.Leaves))
	for i, l := range t.Leaves {
		labels[i] = l.TipLabel()
	}
	return labels
}

// Validate walks t and reports ErrMalformedTree (via the returned error)
// for any internal node that does not have exactly two children, or any
// leaf with neither a label nor an id to fall back on.
func (t *Tree) Validate() error {
	return validateNode(t.Root)
}

func validateNode(n *Node) error {
	if n == nil {
		return nil
	}
	if n.IsLeaf() {
		if n.Label == "" && n.ID == 0 {
			return errors.Wrap(xerrors.ErrMalformedTree, "leaf node has neither label nor id")
		}
		return nil
	}
	if len(n.Children) != 2 {
		return errors.Wrapf(xerrors.ErrMalformedTree, "internal node %d has %d children, want 2", n.ID, len(n.Children))
	}
	for _, c := range n.Children {
		if err := validateNode(c); err != nil {
			return err
		}
	}
	return nil
}
