package resample

import (
	"fmt"

	"github.com/shuesler/rsample/pkg/errors"
	"github.com/shuesler/rsample/pkg/log"
	"github.com/shuesler/rsample/table"
)

// LOOCV generates leave-one-out cross-validation splits: one split per row,
// holding out exactly that row as the assessment set. It is v-fold
// cross-validation with folds equal to n and needs no randomness.
func LOOCV(tbl *table.Table) (*ResampleSet, error) {
	n := tbl.NumRows()
	if n < 2 {
		return nil, errors.NewValidationError("rows", "leave-one-out needs at least 2 rows", n)
	}

	splits := make([]*Split, 0, n)
	for i := 0; i < n; i++ {
		member := make([]bool, n)
		member[i] = true
		part := Partition{
			Analysis:   complement(n, member),
			Assessment: []int{i},
		}
		splits = append(splits, NewSplit(tbl, part, fmt.Sprintf("Resample%d", i+1)))
	}

	log.Default().Debug("generated resample set",
		log.StrategyKey, "loo_cv",
		log.RowsKey, n,
		log.SplitsKey, len(splits),
	)
	return newResampleSet("loo_cv", nil, splits), nil
}
