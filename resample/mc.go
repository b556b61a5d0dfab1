package resample

import (
	"fmt"
	"math"

	"github.com/shuesler/rsample/pkg/errors"
	"github.com/shuesler/rsample/pkg/log"
	"github.com/shuesler/rsample/table"
)

// MCCV generates times Monte-Carlo splits: each one independently samples
// round(prop*n) rows without replacement as the analysis set and assigns
// the remainder to assessment. Unlike v-fold, splits are not linked — a row
// may be held out in many splits or none. WithStrata applies the proportion
// within each level of a discrete column.
func MCCV(tbl *table.Table, prop float64, times int, opts ...Option) (*ResampleSet, error) {
	o := applyOptions(opts)
	n := tbl.NumRows()
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "MCCV")
	}
	if prop <= 0 || prop >= 1 {
		return nil, errors.NewValidationError("prop", "must be in (0, 1)", prop)
	}
	if times < 1 {
		return nil, errors.NewValidationError("times", "must be at least 1", times)
	}

	groups, err := strataGroups(tbl, o.strata, 2)
	if err != nil {
		return nil, err
	}
	for _, group := range groups {
		size := int(math.Round(prop * float64(len(group))))
		if size < 1 || size >= len(group) {
			if o.strata != "" {
				return nil, errors.NewStratumError(o.strata,
					fmt.Sprintf("prop %g leaves a stratum of %d rows without both analysis and assessment rows", prop, len(group)))
			}
			return nil, errors.NewValidationError("prop",
				fmt.Sprintf("leaves no rows on one side of a split of %d rows", len(group)), prop)
		}
	}

	r := o.rng()
	splits := make([]*Split, 0, times)
	for k := 0; k < times; k++ {
		member := make([]bool, n)
		analysis := make([]int, 0, n)
		for _, group := range groups {
			size := int(math.Round(prop * float64(len(group))))
			for _, p := range r.Perm(len(group))[:size] {
				analysis = append(analysis, group[p])
			}
		}
		for _, idx := range analysis {
			member[idx] = true
		}

		part := Partition{
			Analysis:   sortedCopy(analysis),
			Assessment: complement(n, member),
		}
		splits = append(splits, NewSplit(tbl, part, fmt.Sprintf("Resample%02d", k+1)))
	}

	params := []Param{
		{Name: "prop", Value: prop},
		{Name: "times", Value: times},
	}
	if o.strata != "" {
		params = append(params, Param{Name: "strata", Value: o.strata})
	}

	log.Default().Debug("generated resample set",
		log.StrategyKey, "mc_cv",
		log.PropKey, prop,
		log.TimesKey, times,
		log.RowsKey, n,
		log.SplitsKey, len(splits),
	)
	return newResampleSet("mc_cv", params, splits), nil
}

// InitialSplit performs a single random train/test split, the MCCV scheme
// specialized to times=1. Use Training and Testing to materialize the two
// sides.
func InitialSplit(tbl *table.Table, prop float64, opts ...Option) (*Split, error) {
	rs, err := MCCV(tbl, prop, 1, opts...)
	if err != nil {
		return nil, err
	}
	s, err := rs.Split(0)
	if err != nil {
		return nil, err
	}
	return NewSplit(s.Data(), s.Partition(), "Split"), nil
}

// InitialTimeSplit performs a non-random train/test split for ordered data:
// the first floor(prop*n) rows become the analysis set, the remaining rows
// the assessment set. Row order is never permuted.
func InitialTimeSplit(tbl *table.Table, prop float64) (*Split, error) {
	n := tbl.NumRows()
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "InitialTimeSplit")
	}
	if prop <= 0 || prop >= 1 {
		return nil, errors.NewValidationError("prop", "must be in (0, 1)", prop)
	}

	size := int(math.Floor(prop * float64(n)))
	if size < 1 || size >= n {
		return nil, errors.NewValidationError("prop",
			fmt.Sprintf("leaves no rows on one side of a split of %d rows", n), prop)
	}

	rows := allRows(n)
	part := Partition{
		Analysis:   rows[:size],
		Assessment: rows[size:],
	}
	return NewSplit(tbl, part, "Split"), nil
}
