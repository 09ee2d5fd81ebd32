package tree

import (
	"sort"

	"github.com/alexeid/phylo-mds/internal/xerrors"
	"github.com/pkg/errors"
)

// TaxonIndex is a stable bijection between leaf labels and the integer
// range [0, L), ordered lexicographically ascending so that the bit
// position assigned to a taxon is reproducible across runs, per spec.md
// section 3.
type TaxonIndex struct {
	labels []string
	byName map[string]int
}

// NewTaxonIndex builds a TaxonIndex from the union of leaf labels across
// trees. The order is frozen at construction and never changes for the
// lifetime of the index.
func NewTaxonIndex(trees []*Tree) *TaxonIndex {
	seen := make(map[string]struct{})
	for _, t := range trees {
		for _, lbl := range t.TipLabels() {
			seen[lbl] = struct{}{}
		}
	}
	labels := make([]string, 0, len(seen))
	for lbl := range seen {
		labels = append(labels, lbl)
	}
	sort.Strings(labels)

	byName := make(map[string]int, len(labels))
	for i, lbl := range labels {
		byName[lbl] = i
	}
	return &TaxonIndex{labels: labels, byName: byName}
}

// Len returns L, the number of distinct taxa.
func (x *TaxonIndex) Len() int {
	return len(x.labels)
}

// IndexOf returns the bit position of label, or ErrTaxonUnknown if label
// was never observed while building the index.
func (x *TaxonIndex) IndexOf(label string) (int, error) {
	i, ok := x.byName[label]
	if !ok {
		return 0, errors.Wrapf(xerrors.ErrTaxonUnknown, "taxon %q", label)
	}
	return i, nil
}

// Label returns the label at bit position i.
func (x *TaxonIndex) Label(i int) string {
	return x.labels[i]
}

// Labels returns the full, index-ordered label slice. Callers must not
// mutate the returned slice.
func (x *TaxonIndex) Labels() []string {
	return x.labels
}
