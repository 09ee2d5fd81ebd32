package clade

import "sort"

// NumLeaves returns L, the taxon count this CCD was built over.
func (c *CCD) NumLeaves() int {
	return c.taxa.Len()
}

// TopClades returns up to k non-leaf, non-root clade ids with the
// highest marginal probability, ties broken by clade id ascending
// (assignment order) for determinism — spec.md section 6 names this
// field without specifying a tie-break; see DESIGN.md.
func (c *CCD) TopClades(k int) []CladeID {
	c.propagate()

	candidates := make([]CladeID, 0, len(c.clades))
	for _, cl := range c.clades {
		if cl.ID == c.root || cl.IsLeaf() {
			continue
		}
		candidates = append(candidates, cl.ID)
	}
	sort.Slice(candidates, func(i, j int) bool {
		pi, pj := c.clades[candidates[i]].probability, c.clades[candidates[j]].probability
		if pi != pj {
			return pi > pj
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
