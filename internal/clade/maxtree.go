package clade

import "math"

// MaxSubtreeLogCCP returns maxSubtreeLogCCP(C): 0 for a leaf, otherwise
// the maximum over C's partitions with ccp>0 of
// ln(p.ccp) + maxSubtreeLogCCP(p.left) + maxSubtreeLogCCP(p.right).
//
// Computed once by iterative relaxation over the whole clade list
// (spec.md section 4.4): leaves start at 0, and repeated passes finalise
// any clade whose children are all finalised, until a pass makes no
// change. A clade with no viable partition is left at -Inf and logged.
func (c *CCD) MaxSubtreeLogCCP(id CladeID) float64 {
	c.ensureMaxTree()
	return c.clades[id].maxSubtreeLogCCP
}

// MaxTreeLogProbability returns MaxSubtreeLogCCP(root).
func (c *CCD) MaxTreeLogProbability() float64 {
	return c.MaxSubtreeLogCCP(c.root)
}

// MaxTreeProbability returns exp(MaxTreeLogProbability()).
func (c *CCD) MaxTreeProbability() float64 {
	return math.Exp(c.MaxTreeLogProbability())
}

func (c *CCD) ensureMaxTree() {
	needsWork := false
	for _, cl := range c.clades {
		if math.IsNaN(cl.maxSubtreeLogCCP) {
			needsWork = true
			break
		}
	}
	if !needsWork {
		return
	}

	for _, cl := range c.clades {
		if cl.IsLeaf() {
			cl.maxSubtreeLogCCP = 0
			cl.maxSubtreeCCPPartition = noPartition
		} else {
			cl.maxSubtreeLogCCP = math.NaN()
			cl.maxSubtreeCCPPartition = noPartition
		}
	}

	for {
		changed := false
		for _, cl := range c.clades {
			if !math.IsNaN(cl.maxSubtreeLogCCP) {
				continue
			}
			ready := true
			for _, pid := range cl.Partitions {
				p := c.partitions[pid]
				if p.CCP <= 0 {
					continue
				}
				if math.IsNaN(c.clades[p.Left].maxSubtreeLogCCP) || math.IsNaN(c.clades[p.Right].maxSubtreeLogCCP) {
					ready = false
					break
				}
			}
			if !ready {
				continue
			}

			best := math.Inf(-1)
			bestPartition := noPartition
			for _, pid := range cl.Partitions {
				p := c.partitions[pid]
				if p.CCP <= 0 {
					continue
				}
				candidate := p.LogCCP + c.clades[p.Left].maxSubtreeLogCCP + c.clades[p.Right].maxSubtreeLogCCP
				if candidate > best {
					best = candidate
					bestPartition = p.ID
				}
			}
			if bestPartition != noPartition {
				cl.maxSubtreeLogCCP = best
				cl.maxSubtreeCCPPartition = bestPartition
				changed = true
			} else {
				// no viable partition at all: unreachable.
				cl.maxSubtreeLogCCP = math.Inf(-1)
				cl.maxSubtreeCCPPartition = noPartition
				changed = true
				c.log.Warn().Int("clade", int(cl.ID)).Msg("clade has no viable partition for max-tree probability")
			}
		}
		if !changed {
			break
		}
	}

	// Any clade still NaN after the fixed point is part of a cycle in
	// the partition graph restricted to ccp>0 edges, which spec.md
	// section 3 rules out by construction (bitset cardinality strictly
	// decreases parent to child); treat defensively as unreachable.
	for _, cl := range c.clades {
		if math.IsNaN(cl.maxSubtreeLogCCP) {
			cl.maxSubtreeLogCCP = math.Inf(-1)
		}
	}
}
