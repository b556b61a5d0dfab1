package resample

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/shuesler/rsample/pkg/errors"
	"github.com/shuesler/rsample/pkg/log"
	"github.com/shuesler/rsample/table"
)

// Bootstraps draws times resamples of the rows with replacement. Each
// analysis set has exactly n indices (duplicates expected); the assessment
// set is the out-of-bag complement, the distinct rows never drawn. Small
// datasets can legitimately produce an empty out-of-bag set, which is
// reported through the warning handler and kept as an explicit empty set.
// WithStrata draws within each level of a discrete column in proportion to
// its size; WithApparent appends a resample covering all rows on both
// sides; WithoutOOB skips assessment computation entirely.
func Bootstraps(tbl *table.Table, times int, opts ...Option) (*ResampleSet, error) {
	o := applyOptions(opts)
	n := tbl.NumRows()
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "Bootstraps")
	}
	if times < 1 {
		return nil, errors.NewValidationError("times", "must be at least 1", times)
	}

	groups, err := strataGroups(tbl, o.strata, 1)
	if err != nil {
		return nil, err
	}

	r := o.rng()
	splits := make([]*Split, 0, times)
	for k := 0; k < times; k++ {
		label := fmt.Sprintf("Resample%02d", k+1)

		analysis := make([]int, 0, n)
		for _, group := range groups {
			for range group {
				analysis = append(analysis, group[r.IntN(len(group))])
			}
		}

		assessment := []int{}
		if o.oob {
			drawn := mapset.NewThreadUnsafeSet(analysis...)
			for i := 0; i < n; i++ {
				if !drawn.Contains(i) {
					assessment = append(assessment, i)
				}
			}
			if len(assessment) == 0 {
				errors.Warn(errors.NewEmptyAssessmentWarning(label, n))
			}
		}

		part := Partition{Analysis: analysis, Assessment: assessment}
		splits = append(splits, NewSplit(tbl, part, label))
	}

	if o.apparent {
		part := Partition{Analysis: allRows(n), Assessment: allRows(n)}
		splits = append(splits, NewSplit(tbl, part, "Apparent"))
	}

	params := []Param{{Name: "times", Value: times}}
	if o.strata != "" {
		params = append(params, Param{Name: "strata", Value: o.strata})
	}
	if o.apparent {
		params = append(params, Param{Name: "apparent", Value: true})
	}

	log.Default().Debug("generated resample set",
		log.StrategyKey, "bootstraps",
		log.TimesKey, times,
		log.RowsKey, n,
		log.SplitsKey, len(splits),
	)
	return newResampleSet("bootstraps", params, splits), nil
}
