// Package distance implements the pairwise tree-distance kernels (RF,
// approximate SPR, mean path difference) and the n x n distance matrix
// that feeds the MDS kernel, per spec.md section 4.2.
package distance

import (
	"math"

	"github.com/alexeid/phylo-mds/tree"
)

// Metric names a pairwise tree-distance kernel.
type Metric int

const (
	RobinsonFoulds Metric = iota
	SPRApprox
	PathDifference
)

// RF returns the Robinson-Foulds distance between t1 and t2: the size of
// the symmetric difference of their non-trivial bipartition sets.
func RF(t1, t2 *tree.Tree) int {
	return symmetricDifferenceSize(splits(t1), splits(t2))
}

// SPR returns ceil(RF/2), the acknowledged lower-bound approximation to
// true SPR distance spec.md section 4.2 mandates; this package never
// computes exact SPR.
func SPR(t1, t2 *tree.Tree) int {
	rf := RF(t1, t2)
	return (rf + 1) / 2
}

// Path returns the mean absolute difference, over every unordered pair of
// leaf labels present in both trees, of the sum of branch lengths on the
// unique path between them. Returns +Inf if the trees share fewer than two
// leaf labels.
func Path(t1, t2 *tree.Tree) float64 {
	shared := sharedLabels(t1, t2)
	if len(shared) < 2 {
		return math.Inf(1)
	}

	leavesByLabel1 := leafIndex(t1)
	leavesByLabel2 := leafIndex(t2)

	var sum float64
	var count int
	for i := 0; i < len(shared); i++ {
		for j := i + 1; j < len(shared); j++ {
			a, b := shared[i], shared[j]
			d1 := pathLength(leavesByLabel1[a], leavesByLabel1[b])
			d2 := pathLength(leavesByLabel2[a], leavesByLabel2[b])
			sum += math.Abs(d1 - d2)
			count++
		}
	}
	if count == 0 {
		return math.Inf(1)
	}
	return sum / float64(count)
}

func leafIndex(t *tree.Tree) map[string]*tree.Node {
	m := make(map[string]*tree.Node, len(t.Leaves))
	for _, l := range t.Leaves {
		m[l.TipLabel()] = l
	}
	return m
}

func sharedLabels(t1, t2 *tree.Tree) []string {
	in1 := make(map[string]struct{}, len(t1.Leaves))
	for _, l := range t1.Leaves {
		in1[l.TipLabel()] = struct{}{}
	}
	var shared []string
	for _, l := range t2.Leaves {
		lbl := l.TipLabel()
		if _, ok := in1[lbl]; ok {
			shared = append(shared, lbl)
		}
	}
	return shared
}

// pathLength sums branch lengths from a and b up to their MRCA.
func pathLength(a, b *tree.Node) float64 {
	distToRoot := make(map[*tree.Node]float64)
	var d float64
	for n := a; n != nil; n = n.Parent {
		distToRoot[n] = d
		if n.Parent != nil {
			d += n.BranchLengthOrDefault()
		}
	}

	d = 0
	for n := b; n != nil; n = n.Parent {
		if mrcaDist, ok := distToRoot[n]; ok {
			return mrcaDist + d
		}
		if n.Parent != nil {
			d += n.BranchLengthOrDefault()
		}
	}
	// a and b share no ancestor: disconnected trees, treat as 0.
	return 0
}
