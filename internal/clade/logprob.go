package clade

import (
	"math"

	"github.com/alexeid/phylo-mds/internal/bitset"
	"github.com/alexeid/phylo-mds/tree"
)

// TreeLogProbability returns the log-probability of t under this CCD:
// post-order over t, building each internal node's clade bitset from its
// children, looking up the matching clade and partition (leaf clades are
// constructed on demand, not interned), and summing partition.logCCP. If
// any clade or partition along the way is absent from the CCD the
// probability is 0 and the log-probability is -Inf, per spec.md section
// 4.4. Returns an error only for a taxon absent from the frozen taxon
// index.
func (c *CCD) TreeLogProbability(t *tree.Tree) (float64, error) {
	var logProb float64
	var missing bool

	var walk func(n *tree.Node) (bitset.Bitset, error)
	walk = func(n *tree.Node) (bitset.Bitset, error) {
		if n.IsLeaf() {
			idx, err := c.taxa.IndexOf(n.TipLabel())
			if err != nil {
				return nil, err
			}
			b := bitset.New(c.taxa.Len())
			b.Set(uint(idx))
			return b, nil
		}
		left, err := walk(n.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := walk(n.Children[1])
		if err != nil {
			return nil, err
		}
		combined := left.Clone()
		combined.Or(right)

		if missing {
			return combined, nil
		}

		parentID, ok := c.cladeByKey[combined.Key()]
		if !ok {
			missing = true
			return combined, nil
		}
		leftID, leftOK := c.cladeByKey[left.Key()]
		rightID, rightOK := c.cladeByKey[right.Key()]
		if !leftOK || !rightOK {
			missing = true
			return combined, nil
		}
		key := partitionKey(left.Key(), right.Key())
		pid, ok := c.partitionByKey[key]
		if !ok {
			missing = true
			return combined, nil
		}
		p := c.partitions[pid]
		if p.Parent != parentID || (p.Left != leftID && p.Right != leftID) {
			missing = true
			return combined, nil
		}
		logProb += p.LogCCP
		return combined, nil
	}

	if _, err := walk(t.Root); err != nil {
		return math.Inf(-1), err
	}
	if missing {
		return math.Inf(-1), nil
	}
	return logProb, nil
}
