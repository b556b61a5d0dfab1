package resample

import (
	"fmt"

	"github.com/shuesler/rsample/pkg/errors"
	"github.com/shuesler/rsample/pkg/log"
	"github.com/shuesler/rsample/table"
)

// RollingOrigin generates time-series slices over rows that are assumed to
// be in temporal order. The origin starts after the first initial rows and
// advances by skip+1 positions per slice; each slice assesses the assess
// rows immediately after the origin. Analysis windows are cumulative by
// default (all rows up to the origin) or, with WithCumulative(false), a
// sliding window of exactly initial rows. Row order is never permuted and
// every analysis index precedes every assessment index.
func RollingOrigin(tbl *table.Table, initial, assess int, opts ...Option) (*ResampleSet, error) {
	o := applyOptions(opts)
	n := tbl.NumRows()
	if initial < 1 {
		return nil, errors.NewValidationError("initial", "must be at least 1", initial)
	}
	if assess < 1 {
		return nil, errors.NewValidationError("assess", "must be at least 1", assess)
	}
	if o.skip < 0 {
		return nil, errors.NewValidationError("skip", "must not be negative", o.skip)
	}
	if initial+assess >= n {
		return nil, errors.NewValidationError("initial",
			fmt.Sprintf("initial+assess (%d) must be smaller than the number of rows (%d)", initial+assess, n), initial)
	}

	rows := allRows(n)
	var splits []*Split
	for stop := initial; stop <= n-assess; stop += o.skip + 1 {
		start := 0
		if !o.cumulative {
			start = stop - initial
		}
		part := Partition{
			Analysis:   rows[start:stop],
			Assessment: rows[stop : stop+assess],
		}
		splits = append(splits, NewSplit(tbl, part, fmt.Sprintf("Slice%02d", len(splits)+1)))
	}

	params := []Param{
		{Name: "initial", Value: initial},
		{Name: "assess", Value: assess},
		{Name: "cumulative", Value: o.cumulative},
		{Name: "skip", Value: o.skip},
	}

	log.Default().Debug("generated resample set",
		log.StrategyKey, "rolling_origin",
		log.RowsKey, n,
		log.SplitsKey, len(splits),
	)
	return newResampleSet("rolling_origin", params, splits), nil
}
