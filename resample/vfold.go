package resample

import (
	"fmt"

	"github.com/shuesler/rsample/pkg/errors"
	"github.com/shuesler/rsample/pkg/log"
	"github.com/shuesler/rsample/table"
)

// VFoldCV randomly partitions the rows into folds groups of nearly equal
// size. Each split holds out one group as its assessment set and uses the
// rest as its analysis set, so within one repeat the assessment sets form
// an exact partition of the dataset. WithRepeats produces independent
// random partitions; WithStrata balances a discrete column's levels across
// the folds.
func VFoldCV(tbl *table.Table, folds int, opts ...Option) (*ResampleSet, error) {
	o := applyOptions(opts)
	n := tbl.NumRows()
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "VFoldCV")
	}
	if folds < 2 {
		return nil, errors.NewValidationError("folds", "must be at least 2", folds)
	}
	if folds > n {
		return nil, errors.NewValidationError("folds", "cannot exceed the number of rows", folds)
	}
	if o.repeats < 1 {
		return nil, errors.NewValidationError("repeats", "must be at least 1", o.repeats)
	}

	groups, err := strataGroups(tbl, o.strata, folds)
	if err != nil {
		return nil, err
	}

	r := o.rng()
	splits := make([]*Split, 0, o.repeats*folds)
	for rep := 0; rep < o.repeats; rep++ {
		// Assessment blocks for this repeat, merged across strata.
		assess := make([][]int, folds)
		for _, group := range groups {
			perm := make([]int, len(group))
			for i, p := range r.Perm(len(group)) {
				perm[i] = group[p]
			}

			// Nearly equal blocks, remainder spread over the first folds.
			foldSize := len(group) / folds
			remainder := len(group) % folds
			cur := 0
			for f := 0; f < folds; f++ {
				size := foldSize
				if f < remainder {
					size++
				}
				assess[f] = append(assess[f], perm[cur:cur+size]...)
				cur += size
			}
		}

		for f := 0; f < folds; f++ {
			member := make([]bool, n)
			for _, idx := range assess[f] {
				member[idx] = true
			}
			part := Partition{
				Analysis:   complement(n, member),
				Assessment: sortedCopy(assess[f]),
			}
			label := fmt.Sprintf("Fold%02d", f+1)
			if o.repeats > 1 {
				label = fmt.Sprintf("Repeat%d.%s", rep+1, label)
			}
			splits = append(splits, NewSplit(tbl, part, label))
		}
	}

	params := []Param{{Name: "folds", Value: folds}}
	if o.repeats > 1 {
		params = append(params, Param{Name: "repeats", Value: o.repeats})
	}
	if o.strata != "" {
		params = append(params, Param{Name: "strata", Value: o.strata})
	}

	log.Default().Debug("generated resample set",
		log.StrategyKey, "vfold_cv",
		log.FoldsKey, folds,
		log.RepeatsKey, o.repeats,
		log.RowsKey, n,
		log.SplitsKey, len(splits),
	)
	return newResampleSet("vfold_cv", params, splits), nil
}
