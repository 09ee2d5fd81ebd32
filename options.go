package phylomds

import "github.com/rs/zerolog"

// config holds the driver-wide settings threaded through functional
// options, the idiom this package uses throughout instead of building up
// ad hoc constructor parameter lists.
type config struct {
	log              zerolog.Logger
	randSeed         uint64
	parallelDistance bool
}

func defaultConfig() config {
	return config{log: zerolog.Nop(), randSeed: 1}
}

// Option configures a driver call.
type Option func(*config)

// WithLogger sets the structured logger used for diagnostics such as the
// "partition occurrence sum mismatch" and "no viable partition" warnings
// from spec.md sections 4.4 and 7. The default is a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) { c.log = log }
}

// WithRandSeed fixes the seed used wherever this package needs
// reproducible sampling: MDS pipeline subsampling and the dissonance
// probability-comparison subsample, per spec.md section 9's
// "deterministic ordering" note.
func WithRandSeed(seed uint64) Option {
	return func(c *config) { c.randSeed = seed }
}

// WithParallelDistanceMatrix fills MDSPipeline's distance matrix with
// distance.MatrixParallel instead of distance.Matrix, fanning the n x n
// fill out across rows via an errgroup, the opt-in parallel path spec.md
// section 5 permits. Worthwhile once the tree sample is large enough
// that kernel evaluation dominates goroutine overhead.
func WithParallelDistanceMatrix() Option {
	return func(c *config) { c.parallelDistance = true }
}
