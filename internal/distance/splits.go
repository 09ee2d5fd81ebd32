package distance

import (
	"sort"
	"strings"

	"github.com/alexeid/phylo-mds/tree"
)

// splitSet is the set of non-trivial bipartitions induced by a tree's
// internal edges, keyed by their canonical string form so that two splits
// from different trees compare equal under the unordered-pair equality
// spec.md section 4.2 requires.
type splitSet map[string]struct{}

// splits extracts t's non-trivial bipartitions: for every internal
// non-root node, {descendant-leaf-labels, complement}. Both sides are
// sorted; a split where either side is empty is discarded.
func splits(t *tree.Tree) splitSet {
	total := t.TipLabels()
	sort.Strings(total)

	out := make(splitSet)
	var walk func(n *tree.Node) []string
	walk = func(n *tree.Node) []string {
		if n.IsLeaf() {
			return []string{n.TipLabel()}
		}
		left := walk(n.Children[0])
		right := walk(n.Children[1])
		descendants := make([]string, 0, len(left)+len(right))
		descendants = append(descendants, left...)
		descendants = append(descendants, right...)
		sort.Strings(descendants)

		if n != t.Root {
			complement := complementOf(total, descendants)
			if len(descendants) > 0 && len(complement) > 0 {
				out[splitKey(descendants, complement)] = struct{}{}
			}
		}
		return descendants
	}
	walk(t.Root)
	return out
}

// complementOf returns total \ subset; both must be sorted ascending.
func complementOf(total, subset []string) []string {
	subsetSet := make(map[string]struct{}, len(subset))
	for _, s := range subset {
		subsetSet[s] = struct{}{}
	}
	out := make([]string, 0, len(total)-len(subset))
	for _, t := range total {
		if _, in := subsetSet[t]; !in {
			out = append(out, t)
		}
	}
	return out
}

// splitKey returns a canonical, order-independent key for the unordered
// pair (a, b): the two sides joined internally, then the two joined
// strings ordered lexicographically.
func splitKey(a, b []string) string {
	ka := strings.Join(a, ",")
	kb := strings.Join(b, ",")
	if ka <= kb {
		return ka + "|" + kb
	}
	return kb + "|" + ka
}

// symmetricDifferenceSize returns |s1 \ s2| + |s2 \ s1|.
func symmetricDifferenceSize(s1, s2 splitSet) int {
	var n int
	for k := range s1 {
		if _, ok := s2[k]; !ok {
			n++
		}
	}
	for k := range s2 {
		if _, ok := s1[k]; !ok {
			n++
		}
	}
	return n
}
