// Package xerrors holds the sentinel error kinds shared by every layer of
// the engine (tree, clade, mds, dissonance, newick) so that each layer
// can wrap a common root with github.com/pkg/errors without importing the
// top-level driver package. The driver re-exports these under the names
// used in spec.md section 7.
package xerrors

import "github.com/pkg/errors"

var (
	ErrInsufficientTrees = errors.New("insufficient trees")
	ErrMalformedTree     = errors.New("malformed tree")
	ErrTaxonUnknown      = errors.New("unknown taxon")
	ErrFormatUnknown     = errors.New("unknown tree format")
	ErrParseFailure      = errors.New("parse failure")
	ErrNumericFailure    = errors.New("numeric failure")
)
