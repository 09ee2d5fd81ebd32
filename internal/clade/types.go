// Package clade implements the Conditional Clade Distribution DAG: Clade
// and CladePartition vertices/hyperedges, CCP normalisation, clade
// marginal probability propagation, the two entropy formulations, the
// maximum-probability tree, and per-tree log-probability, per spec.md
// section 4.4.
//
// Grounded on the teacher's (gaissmai-bart) node arena shape: stable
// integer ids into a slice rather than cyclic owning pointers, the same
// discipline the teacher applies to its []*node[V] child slices, per
// spec.md section 9's "avoid any construct that would make the DAG
// ownership-cyclic".
package clade

import (
	"math"

	"github.com/alexeid/phylo-mds/internal/bitset"
)

// Variant selects the conditional-independence assumption a CCD is built
// under. Only CCD1 (clades independent given their parent) is
// implemented; the type exists so a future CCD2 (occurrence-weighted,
// grandparent-conditioned) variant could be added without an API break.
type Variant int

const (
	CCD1 Variant = iota
)

// CladeID indexes into CCD.clades. The root clade always has id 0.
type CladeID int

// PartitionID indexes into CCD.partitions.
type PartitionID int

// noPartition is the sentinel PartitionID meaning "no valid partition".
const noPartition PartitionID = -1

// Clade is a vertex of the CCD DAG: a subset of the taxon set observed in
// at least one input tree, plus shared-substructure bookkeeping.
type Clade struct {
	ID                CladeID
	Bits              bitset.Bitset
	OccurrenceCount   int
	SumOccurredHeight float64

	// Partitions lists the hyperedges whose parent is this clade, in
	// first-observed order. Iteration order is not semantically
	// meaningful (spec.md section 5's ordering guarantee).
	Partitions []PartitionID

	// ParentClades and ChildClades are the many-to-many DAG edges: the
	// clades this one is a child of, and the union of children across
	// this clade's own Partitions.
	ParentClades map[CladeID]struct{}
	ChildClades  map[CladeID]struct{}

	// Cached scalars, invalidated by Initialise (which AddTree requires
	// before the next query) and recomputed lazily. probability, the two
	// entropy fields and maxSubtreeLogCCP use NaN as the "unset" sentinel;
	// maxSubtreeCCPPartition uses noPartition.
	probability          float64
	entropyForward        float64
	entropyLewis          float64
	maxSubtreeLogCCP      float64
	maxSubtreeCCPPartition PartitionID
}

func newClade(id CladeID, bits bitset.Bitset) *Clade {
	return &Clade{
		ID:                     id,
		Bits:                   bits,
		ParentClades:           make(map[CladeID]struct{}),
		ChildClades:            make(map[CladeID]struct{}),
		probability:            math.NaN(),
		entropyForward:         math.NaN(),
		entropyLewis:           math.NaN(),
		maxSubtreeLogCCP:       math.NaN(),
		maxSubtreeCCPPartition: noPartition,
	}
}

// IsLeaf reports whether c's bitset has exactly one member.
func (c *Clade) IsLeaf() bool {
	return c.Bits.Cardinality() == 1
}

// Partition is a hyperedge: an unordered pair of disjoint child clades
// whose union is the parent clade's bitset.
type Partition struct {
	ID                PartitionID
	Parent            CladeID
	Left, Right       CladeID
	OccurrenceCount   int
	SumOccurredHeight float64
	CCP               float64
	LogCCP            float64
}

func newPartition(id PartitionID, parent, left, right CladeID) *Partition {
	return &Partition{ID: id, Parent: parent, Left: left, Right: right, LogCCP: math.Inf(-1)}
}

// Children returns the partition's two child clade ids.
func (p *Partition) Children() (CladeID, CladeID) {
	return p.Left, p.Right
}
