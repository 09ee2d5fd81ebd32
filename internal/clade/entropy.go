package clade

import "math"

// EntropyForward computes H = -sum over partitions of
// partition.probability * partition.logCCP, where partition.probability
// = parent.probability * partition.ccp. Requires propagated clade
// probabilities, per spec.md section 4.4.
func (c *CCD) EntropyForward() float64 {
	c.propagate()
	var h float64
	for _, cl := range c.clades {
		for _, pid := range cl.Partitions {
			p := c.partitions[pid]
			if math.IsInf(p.LogCCP, -1) {
				continue
			}
			partitionProbability := cl.probability * p.CCP
			h -= partitionProbability * p.LogCCP
		}
	}
	return h
}

// EntropyLewis computes the recursive per-clade form: H_leaf = 0;
// H(C) = sum over partitions p of p.ccp * (H(p.left) + H(p.right) - ln p.ccp).
// Returns H(root), via memoised post-order traversal of the DAG so a
// clade shared by multiple parents is evaluated once, per spec.md
// section 4.4.
func (c *CCD) EntropyLewis() float64 {
	for _, cl := range c.clades {
		cl.entropyLewis = math.NaN()
	}
	var visit func(id CladeID) float64
	visit = func(id CladeID) float64 {
		cl := c.clades[id]
		if !math.IsNaN(cl.entropyLewis) {
			return cl.entropyLewis
		}
		if cl.IsLeaf() || len(cl.Partitions) == 0 {
			cl.entropyLewis = 0
			return 0
		}
		var h float64
		for _, pid := range cl.Partitions {
			p := c.partitions[pid]
			if p.CCP <= 0 {
				continue
			}
			h += p.CCP * (visit(p.Left) + visit(p.Right) - p.LogCCP)
		}
		cl.entropyLewis = h
		return h
	}
	return visit(c.root)
}
