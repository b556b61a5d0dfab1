package log

// Standard attribute keys for resampling operations. Using these keys
// consistently across generators and the evaluation driver keeps structured
// log output filterable: one can follow a whole resampling run by strategy
// name, or a single split by its label. The keys follow a hierarchical
// naming convention (e.g. "resample.strategy", "data.rows").

// Strategy and operation context.
const (
	// StrategyKey identifies the resampling strategy.
	// Examples: "vfold_cv", "bootstraps", "mc_cv", "rolling_origin"
	StrategyKey = "resample.strategy"

	// OperationKey specifies the operation being performed.
	// Standard values: "generate", "evaluate", "attach"
	OperationKey = "resample.operation"

	// SplitIDKey carries the label of an individual split.
	// Examples: "Fold03", "Repeat2.Fold01", "Resample17", "Slice04"
	SplitIDKey = "resample.split"

	// SplitsKey indicates the number of splits in a resample set.
	SplitsKey = "resample.splits"
)

// Scheme parameters.
const (
	// FoldsKey is the fold count V of a v-fold scheme.
	FoldsKey = "resample.folds"

	// RepeatsKey is the repeat count of a repeated v-fold scheme.
	RepeatsKey = "resample.repeats"

	// TimesKey is the resample count of a bootstrap or Monte-Carlo scheme.
	TimesKey = "resample.times"

	// PropKey is the analysis proportion of a Monte-Carlo scheme.
	PropKey = "resample.prop"

	// StrataKey names the stratification column, when one is in use.
	StrataKey = "resample.strata"
)

// Data shape.
const (
	// RowsKey indicates the number of rows in the source dataset.
	RowsKey = "data.rows"

	// ColsKey indicates the number of columns in the source dataset.
	ColsKey = "data.cols"
)

// Performance.
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// WorkersKey records the worker count of a parallel evaluation.
	WorkersKey = "perf.workers"
)
