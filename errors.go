package phylomds

import "github.com/alexeid/phylo-mds/internal/xerrors"

// Sentinel error kinds, matched with errors.Is against the wrapped error
// returned from driver and package operations. Each is wrapped at the call
// site with errors.Wrapf, naming the offending object, per the propagation
// policy in spec.md section 7.
var (
	// ErrInsufficientTrees is returned when fewer than 2 trees are
	// supplied for MDS, or fewer than 2*numSplits for dissonance.
	ErrInsufficientTrees = xerrors.ErrInsufficientTrees

	// ErrMalformedTree is returned for a non-binary internal node, or a
	// leaf with neither a label nor an id.
	ErrMalformedTree = xerrors.ErrMalformedTree

	// ErrTaxonUnknown is returned when a leaf label is absent from the
	// taxon index frozen at CCD construction.
	ErrTaxonUnknown = xerrors.ErrTaxonUnknown

	// ErrFormatUnknown is returned by the (external) tree-reader
	// collaborator when it can recognise neither a tree nor a format.
	ErrFormatUnknown = xerrors.ErrFormatUnknown

	// ErrParseFailure wraps an upstream parser error.
	ErrParseFailure = xerrors.ErrParseFailure

	// ErrNumericFailure is returned on MDS eigendecomposition
	// non-convergence, or non-symmetric input.
	ErrNumericFailure = xerrors.ErrNumericFailure
)
