// Package phylomds is the computational core of a phylogenetic tree-set
// analysis engine.
//
// Given a collection of rooted binary phylogenetic trees over a common
// taxon set, typically a posterior sample from a Bayesian MCMC run, it
// produces two independent kinds of artefact:
//
//   - A pairwise tree-distance matrix under a selectable metric
//     (Robinson-Foulds, approximate SPR, or mean path difference), then
//     its classical Multidimensional Scaling embedding into two
//     dimensions: see MDSPipeline.
//   - A Conditional Clade Distribution built from clade frequencies,
//     together with derived quantities: entropy, maximum-probability
//     tree, clade marginal probabilities, per-tree log-probability, and
//     within-chain dissonance, a mixing diagnostic: see
//     BuildCCDFromTrees, Statistics and WithinChainDissonance.
//
// Parsing Newick/Nexus/PhyloXML/NeXML/PhyJSON into the tree package's
// Tree type is out of scope; a tree-reader collaborator supplies it.
package phylomds
