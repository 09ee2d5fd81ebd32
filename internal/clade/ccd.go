package clade

import (
	"github.com/alexeid/phylo-mds/internal/bitset"
	"github.com/alexeid/phylo-mds/internal/xerrors"
	"github.com/alexeid/phylo-mds/tree"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// State is the CCD's lifecycle stage, per spec.md section 4.4.
type State int

const (
	Empty State = iota
	Accumulating
	Normalised
	Querying
)

// CCD is the DAG container: leaf count, taxon index, root clade, and the
// bitset-keyed clade/partition arenas.
type CCD struct {
	taxa *tree.TaxonIndex
	root CladeID

	clades     []*Clade
	partitions []*Partition

	cladeByKey     map[string]CladeID
	partitionByKey map[string]PartitionID

	numTrees int
	state    State

	probabilitiesDirty bool
	entropyDirty        bool
	topologyCountDirty  bool
	propagated          bool

	log zerolog.Logger
}

// New allocates an empty CCD over taxa, creating the root clade (the
// all-ones bitset) eagerly, per spec.md section 4.4.
func New(taxa *tree.TaxonIndex, log zerolog.Logger) *CCD {
	c := &CCD{
		taxa:           taxa,
		cladeByKey:     make(map[string]CladeID),
		partitionByKey: make(map[string]PartitionID),
		state:          Empty,
		log:            log,
	}
	rootBits := bitset.New(taxa.Len())
	rootBits.SetRange(0, uint(taxa.Len()))
	c.root = c.internClade(rootBits).ID
	c.state = Accumulating
	return c
}

// Taxa returns the frozen taxon index this CCD was built over.
func (c *CCD) Taxa() *tree.TaxonIndex { return c.taxa }

// Root returns the root clade's id.
func (c *CCD) Root() CladeID { return c.root }

// NumTrees returns the number of trees ingested so far.
func (c *CCD) NumTrees() int { return c.numTrees }

// NumClades returns the number of distinct clades observed.
func (c *CCD) NumClades() int { return len(c.clades) }

// State returns the CCD's current lifecycle stage.
func (c *CCD) State() State { return c.state }

// Clade returns the clade with id i.
func (c *CCD) Clade(id CladeID) *Clade { return c.clades[id] }

// Partition returns the partition with id i.
func (c *CCD) Partition(id PartitionID) *Partition { return c.partitions[id] }

// Clades returns every clade id, in arena (first-observed) order.
func (c *CCD) Clades() []CladeID {
	ids := make([]CladeID, len(c.clades))
	for i := range c.clades {
		ids[i] = CladeID(i)
	}
	return ids
}

func (c *CCD) internClade(bits bitset.Bitset) *Clade {
	key := bits.Key()
	if id, ok := c.cladeByKey[key]; ok {
		return c.clades[id]
	}
	id := CladeID(len(c.clades))
	cl := newClade(id, bits)
	c.clades = append(c.clades, cl)
	c.cladeByKey[key] = id
	return cl
}

func partitionKey(leftKey, rightKey string) string {
	if leftKey <= rightKey {
		return leftKey + "||" + rightKey
	}
	return rightKey + "||" + leftKey
}

func (c *CCD) internPartition(parent, left, right CladeID) *Partition {
	lk := c.clades[left].Bits.Key()
	rk := c.clades[right].Bits.Key()
	key := partitionKey(lk, rk)
	if id, ok := c.partitionByKey[key]; ok {
		return c.partitions[id]
	}
	id := PartitionID(len(c.partitions))
	p := newPartition(id, parent, left, right)
	c.partitions = append(c.partitions, p)
	c.partitionByKey[key] = id

	parentClade := c.clades[parent]
	parentClade.Partitions = append(parentClade.Partitions, id)
	c.clades[left].ParentClades[parent] = struct{}{}
	c.clades[right].ParentClades[parent] = struct{}{}
	parentClade.ChildClades[left] = struct{}{}
	parentClade.ChildClades[right] = struct{}{}
	return p
}

// AddTree ingests one tree into the CCD (cladifyTree in spec.md section
// 4.4): post-order visit, interning a clade per observed bitset and a
// partition per observed child pair, bumping occurrence counters and
// height sums. Marks every dirty flag. Returns ErrTaxonUnknown for a leaf
// label absent from the frozen taxon index, and ErrMalformedTree for any
// node that is not strictly binary or not a validly labelled leaf.
func (c *CCD) AddTree(t *tree.Tree) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if _, err := c.cladify(t.Root); err != nil {
		return err
	}
	c.numTrees++
	c.state = Accumulating
	c.probabilitiesDirty = true
	c.entropyDirty = true
	c.topologyCountDirty = true
	return nil
}

func (c *CCD) cladify(n *tree.Node) (*Clade, error) {
	if n.IsLeaf() {
		idx, err := c.taxa.IndexOf(n.TipLabel())
		if err != nil {
			return nil, err
		}
		bits := bitset.New(c.taxa.Len())
		bits.Set(uint(idx))
		cl := c.internClade(bits)
		cl.OccurrenceCount++
		cl.SumOccurredHeight += n.HeightOrZero()
		return cl, nil
	}

	if len(n.Children) != 2 {
		return nil, errors.Wrapf(xerrors.ErrMalformedTree, "node %d has %d children, want 2", n.ID, len(n.Children))
	}
	leftClade, err := c.cladify(n.Children[0])
	if err != nil {
		return nil, err
	}
	rightClade, err := c.cladify(n.Children[1])
	if err != nil {
		return nil, err
	}

	combined := leftClade.Bits.Clone()
	combined.Or(rightClade.Bits)
	cl := c.internClade(combined)
	cl.OccurrenceCount++
	cl.SumOccurredHeight += n.HeightOrZero()

	p := c.internPartition(cl.ID, leftClade.ID, rightClade.ID)
	p.OccurrenceCount++
	p.SumOccurredHeight += n.HeightOrZero()

	return cl, nil
}
