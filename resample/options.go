package resample

import (
	"math/rand/v2"
)

// options collects the tunable parameters shared by the strategy
// generators. Each generator reads only the fields that apply to it.
type options struct {
	repeats    int
	strata     string
	seed       uint64
	seedSet    bool
	apparent   bool
	oob        bool
	cumulative bool
	skip       int
}

// Option configures a strategy generator.
type Option func(*options)

func defaultOptions() options {
	return options{
		repeats:    1,
		oob:        true,
		cumulative: true,
	}
}

// WithRepeats sets the repeat count for v-fold cross-validation. Each
// repeat is an independent random partition of the rows.
func WithRepeats(repeats int) Option {
	return func(o *options) { o.repeats = repeats }
}

// WithStrata names a discrete column to stratify on. The generator runs its
// partitioning independently within each level of the column, so every
// split approximately preserves the level proportions of the full dataset.
func WithStrata(column string) Option {
	return func(o *options) { o.strata = column }
}

// WithSeed fixes the random seed, making the generated partitions
// reproducible. Without it each invocation draws a fresh seed.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seedSet = true
	}
}

// WithApparent appends one extra resample to a bootstrap set whose analysis
// and assessment sets are both the full dataset, used for apparent-error
// estimates.
func WithApparent() Option {
	return func(o *options) { o.apparent = true }
}

// WithoutOOB skips computing bootstrap out-of-bag assessment sets. Analysis
// sets are drawn exactly as before; every assessment set is explicitly
// empty.
func WithoutOOB() Option {
	return func(o *options) { o.oob = false }
}

// WithCumulative controls rolling-origin analysis windows: cumulative
// (true, the default) grows the analysis set with every slice, while false
// slides a fixed-width window of the initial size.
func WithCumulative(cumulative bool) Option {
	return func(o *options) { o.cumulative = cumulative }
}

// WithSkip sets the number of origin positions to jump over between
// consecutive rolling-origin slices.
func WithSkip(skip int) Option {
	return func(o *options) { o.skip = skip }
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// rng returns the PCG source for one generator invocation.
func (o options) rng() *rand.Rand {
	seed := o.seed
	if !o.seedSet {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}
