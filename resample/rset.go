package resample

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/shuesler/rsample/pkg/errors"
)

// Param is one named strategy parameter, kept ordered so sets print
// deterministically.
type Param struct {
	Name  string
	Value any
}

// ResampleSet is an ordered collection of splits produced by one strategy
// invocation over one dataset, plus strategy metadata and any result
// columns attached by the evaluation driver. The split sequence is fixed at
// construction; the only permitted mutation is appending result columns.
type ResampleSet struct {
	strategy string
	params   []Param
	splits   []*Split
	colOrder []string
	columns  map[string][]any
}

func newResampleSet(strategy string, params []Param, splits []*Split) *ResampleSet {
	return &ResampleSet{
		strategy: strategy,
		params:   params,
		splits:   splits,
		columns:  make(map[string][]any),
	}
}

// Len returns the number of splits.
func (rs *ResampleSet) Len() int { return len(rs.splits) }

// Split returns the i-th split.
func (rs *ResampleSet) Split(i int) (*Split, error) {
	if i < 0 || i >= len(rs.splits) {
		return nil, errors.NewValidationError("index", "split index out of range", i)
	}
	return rs.splits[i], nil
}

// Splits returns the splits in order. The returned slice is a copy; the
// splits themselves are shared and immutable.
func (rs *ResampleSet) Splits() []*Split {
	out := make([]*Split, len(rs.splits))
	copy(out, rs.splits)
	return out
}

// Labels returns the split labels in order.
func (rs *ResampleSet) Labels() []string {
	return lo.Map(rs.splits, func(s *Split, _ int) string { return s.Label() })
}

// Strategy returns the name of the generating strategy.
func (rs *ResampleSet) Strategy() string { return rs.strategy }

// Params returns the strategy parameters in declaration order.
func (rs *ResampleSet) Params() []Param {
	out := make([]Param, len(rs.params))
	copy(out, rs.params)
	return out
}

// Param returns one strategy parameter by name.
func (rs *ResampleSet) Param(name string) (any, bool) {
	p, ok := lo.Find(rs.params, func(p Param) bool { return p.Name == name })
	return p.Value, ok
}

// AttachColumn appends a computed per-split column. The values must line up
// one-to-one with the split sequence; a length mismatch or a name collision
// is a usage error. Attached columns are never reordered.
func (rs *ResampleSet) AttachColumn(name string, values []any) error {
	if name == "" {
		return errors.NewValueError("AttachColumn", "column name must not be empty")
	}
	if _, exists := rs.columns[name]; exists {
		return errors.NewValidationError("name", "column already attached", name)
	}
	if len(values) != len(rs.splits) {
		return errors.NewDimensionError("AttachColumn", len(rs.splits), len(values))
	}

	stored := make([]any, len(values))
	copy(stored, values)
	rs.columns[name] = stored
	rs.colOrder = append(rs.colOrder, name)
	return nil
}

// Column returns a previously attached column, in split order.
func (rs *ResampleSet) Column(name string) ([]any, error) {
	values, ok := rs.columns[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrColumnNotFound, "attached column %q", name)
	}
	out := make([]any, len(values))
	copy(out, values)
	return out, nil
}

// Columns returns the names of the attached columns in attachment order.
func (rs *ResampleSet) Columns() []string {
	out := make([]string, len(rs.colOrder))
	copy(out, rs.colOrder)
	return out
}

// String summarizes the set: strategy, parameters and split count, e.g.
//
//	vfold_cv (folds=10, repeats=2, strata=class): 20 splits
func (rs *ResampleSet) String() string {
	parts := lo.Map(rs.params, func(p Param, _ int) string {
		return fmt.Sprintf("%s=%v", p.Name, p.Value)
	})
	var b strings.Builder
	b.WriteString(rs.strategy)
	if len(parts) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}
	fmt.Fprintf(&b, ": %d splits", len(rs.splits))
	return b.String()
}
