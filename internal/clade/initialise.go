package clade

import "math"

// Initialise normalises every partition's occurrence counts into CCPs
// (partitionOccurrences / sum of a clade's partition occurrences),
// clears the entropy and topology-count dirty flags, and invalidates the
// cached scalars so they are recomputed lazily, per spec.md section 4.4.
//
// Moves Accumulating -> Normalised. A subsequent AddTree moves back to
// Accumulating and requires another Initialise before querying.
func (c *CCD) Initialise() {
	for _, cl := range c.clades {
		if len(cl.Partitions) == 0 {
			continue
		}
		var sumOcc int
		for _, pid := range cl.Partitions {
			sumOcc += c.partitions[pid].OccurrenceCount
		}
		if sumOcc != cl.OccurrenceCount {
			c.log.Warn().
				Int("clade", int(cl.ID)).
				Int("partitionOccurrences", sumOcc).
				Int("cladeOccurrences", cl.OccurrenceCount).
				Msg("partition occurrence sum does not match clade occurrence count")
		}
		for _, pid := range cl.Partitions {
			p := c.partitions[pid]
			if sumOcc > 0 {
				p.CCP = float64(p.OccurrenceCount) / float64(sumOcc)
			} else {
				p.CCP = 0
			}
			if p.CCP > 0 {
				p.LogCCP = math.Log(p.CCP)
			} else {
				p.LogCCP = math.Inf(-1)
			}
		}
	}

	for _, cl := range c.clades {
		cl.probability = math.NaN()
		cl.entropyForward = math.NaN()
		cl.entropyLewis = math.NaN()
		cl.maxSubtreeLogCCP = math.NaN()
		cl.maxSubtreeCCPPartition = noPartition
	}

	c.propagated = false
	c.entropyDirty = false
	c.topologyCountDirty = false
	c.probabilitiesDirty = false
	c.state = Normalised
}

// propagate computes every clade's marginal probability by BFS from the
// root with probability 1, gated by a per-clade visit-count so a clade is
// only dequeued once every parent has contributed to it, per spec.md
// section 4.4. Clipping of rounding noise in [1, 1+1e-5] back to 1 is
// applied to every clade.
func (c *CCD) propagate() {
	if c.propagated {
		return
	}
	for _, cl := range c.clades {
		cl.probability = 0
	}
	c.clades[c.root].probability = 1

	// incoming[id] is the number of partition edges (across the whole
	// DAG, not just distinct parents) that have id as a child; a clade
	// is only ready to dequeue once every one of them has contributed.
	incoming := make(map[CladeID]int, len(c.clades))
	for _, p := range c.partitions {
		incoming[p.Left]++
		incoming[p.Right]++
	}

	visits := make(map[CladeID]int, len(c.clades))
	queue := []CladeID{c.root}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		cl := c.clades[id]

		for _, pid := range cl.Partitions {
			p := c.partitions[pid]
			contribution := cl.probability * p.CCP
			left := c.clades[p.Left]
			right := c.clades[p.Right]
			left.probability += contribution
			right.probability += contribution

			for _, child := range [2]*Clade{left, right} {
				visits[child.ID]++
				if visits[child.ID] == incoming[child.ID] {
					queue = append(queue, child.ID)
				}
			}
		}
	}

	for _, cl := range c.clades {
		if cl.probability > 1 && cl.probability <= 1+1e-5 {
			cl.probability = 1
		}
	}
	c.propagated = true
	c.state = Querying
}

// Probability returns clade id's marginal probability under the CCD,
// propagating clade probabilities first if necessary.
func (c *CCD) Probability(id CladeID) float64 {
	c.propagate()
	return c.clades[id].probability
}
