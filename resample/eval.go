package resample

import (
	"time"

	"github.com/shuesler/rsample/core/parallel"
	"github.com/shuesler/rsample/pkg/errors"
	"github.com/shuesler/rsample/pkg/log"
)

// EvalFunc is the user-supplied function the driver applies to one split.
// The driver treats it as an opaque black box: no timeout or cancellation
// is imposed, and it must not mutate the shared dataset.
type EvalFunc func(s *Split) (any, error)

type evalOptions struct {
	workers       int
	collectErrors bool
}

// EvalOption configures the evaluation driver.
type EvalOption func(*evalOptions)

// WithWorkers evaluates splits on up to workers goroutines. Per-split
// invocations are independent by contract, so this is safe; results are
// always collected in split order regardless of completion order.
func WithWorkers(workers int) EvalOption {
	return func(o *evalOptions) { o.workers = workers }
}

// WithCollectErrors switches the driver from fail-fast to collect mode: the
// evaluation runs every split, failed slots hold their *EvaluationError as
// a failure marker, successful results survive, and the joined per-split
// errors come back alongside the results.
func WithCollectErrors() EvalOption {
	return func(o *evalOptions) { o.collectErrors = true }
}

// Map applies fn to every split of the set, in order, and returns one
// result per split. By default it fails fast: the first error aborts the
// evaluation, wrapped with the offending split's label. A panic inside fn
// is recovered and treated as that split's error so it cannot corrupt the
// results of other splits.
func Map(rs *ResampleSet, fn EvalFunc, opts ...EvalOption) ([]any, error) {
	o := evalOptions{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	results, errs := parallel.OrderedMap(rs.Len(), o.workers, func(i int) (any, error) {
		s := rs.splits[i]
		var out any
		err := errors.SafeCall("EvalFunc", func() error {
			var fnErr error
			out, fnErr = fn(s)
			return fnErr
		})
		return out, err
	})

	log.Default().Debug("evaluation finished",
		log.OperationKey, "evaluate",
		log.StrategyKey, rs.Strategy(),
		log.SplitsKey, rs.Len(),
		log.WorkersKey, o.workers,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)

	if o.collectErrors {
		var joined error
		for i, err := range errs {
			if err == nil {
				continue
			}
			wrapped := errors.NewEvaluationError(rs.splits[i].Label(), err)
			results[i] = wrapped
			joined = errors.Join(joined, wrapped)
		}
		return results, joined
	}

	for i, err := range errs {
		if err != nil {
			return nil, errors.NewEvaluationError(rs.splits[i].Label(), err)
		}
	}
	return results, nil
}

// MapColumn applies fn to every split and attaches the results as a new
// column on the set. In fail-fast mode nothing is attached on error.
func MapColumn(rs *ResampleSet, name string, fn EvalFunc, opts ...EvalOption) error {
	results, err := Map(rs, fn, opts...)
	if err != nil && results == nil {
		return err
	}
	if attachErr := rs.AttachColumn(name, results); attachErr != nil {
		return attachErr
	}
	return err
}

// Field extracts one named entry from each per-split result. Results must
// be map[string]any values (the conventional shape for nested per-split
// artifacts); the extracted slice keeps split order and can feed a
// downstream Map pass or UnwrapFloat64.
func Field(results []any, key string) ([]any, error) {
	out := make([]any, len(results))
	for i, res := range results {
		m, ok := res.(map[string]any)
		if !ok {
			return nil, errors.NewValueError("Field", "result is not a map[string]any")
		}
		v, ok := m[key]
		if !ok {
			return nil, errors.NewValueError("Field", "result has no field '"+key+"'")
		}
		out[i] = v
	}
	return out, nil
}

// UnwrapFloat64 converts per-split results to a flat numeric column. It
// succeeds only when every result is a float64 or a one-element float64
// slice; anything else means the results are not scalar and should stay as
// they are.
func UnwrapFloat64(results []any) ([]float64, error) {
	out := make([]float64, len(results))
	for i, res := range results {
		switch v := res.(type) {
		case float64:
			out[i] = v
		case []float64:
			if len(v) != 1 {
				return nil, errors.NewValueError("UnwrapFloat64", "result slice does not hold exactly one value")
			}
			out[i] = v[0]
		default:
			return nil, errors.NewValueError("UnwrapFloat64", "result is not a scalar float64")
		}
	}
	return out, nil
}
