// Package table provides the in-memory tabular dataset that resampling
// strategies partition. A Table is a fixed set of equal-length named columns;
// rows are addressed by position. Tables are immutable after construction,
// which lets every split share one underlying dataset without copying.
package table

import (
	"strconv"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"

	"github.com/shuesler/rsample/core/parallel"
	"github.com/shuesler/rsample/pkg/errors"
)

// maxDiscreteLevels bounds how many distinct values a numeric column may
// hold before it is rejected as a stratification variable.
const maxDiscreteLevels = 25

// parallelThreshold is the row count above which projections fill their
// output in parallel chunks.
const parallelThreshold = 1000

// Column is a single named column. Exactly one of the value slices is set.
type Column struct {
	Name    string
	Floats  []float64
	Strings []string
}

// Float creates a numeric column.
func Float(name string, values ...float64) Column {
	return Column{Name: name, Floats: values}
}

// Str creates a string column.
func Str(name string, values ...string) Column {
	return Column{Name: name, Strings: values}
}

// Len returns the number of rows in the column.
func (c Column) Len() int {
	if c.Floats != nil {
		return len(c.Floats)
	}
	return len(c.Strings)
}

// IsFloat reports whether the column holds numeric values.
func (c Column) IsFloat() bool {
	return c.Floats != nil
}

// Table is an ordered collection of equal-length columns.
type Table struct {
	cols   []Column
	byName map[string]int
	rows   int
}

// New creates a Table from the given columns. All columns must have the
// same length and distinct names.
func New(cols ...Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, errors.NewValueError("table.New", "at least one column is required")
	}

	rows := cols[0].Len()
	byName := make(map[string]int, len(cols))
	for i, c := range cols {
		if c.Name == "" {
			return nil, errors.NewValueError("table.New", "column name must not be empty")
		}
		if c.Floats != nil && c.Strings != nil {
			return nil, errors.NewValueError("table.New", "column '"+c.Name+"' has both numeric and string values")
		}
		if _, ok := byName[c.Name]; ok {
			return nil, errors.NewValidationError("columns", "duplicate column name", c.Name)
		}
		if c.Len() != rows {
			return nil, errors.NewDimensionError("table.New", rows, c.Len())
		}
		byName[c.Name] = i
	}

	return &Table{cols: cols, byName: byName, rows: rows}, nil
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.cols) }

// Names returns the column names in table order.
func (t *Table) Names() []string {
	return lo.Map(t.cols, func(c Column, _ int) string { return c.Name })
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return Column{}, errors.Wrapf(errors.ErrColumnNotFound, "column %q", name)
	}
	return t.cols[i], nil
}

// Float returns the values of a numeric column.
func (t *Table) Float(name string) ([]float64, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if !c.IsFloat() {
		return nil, errors.NewValueError("table.Float", "column '"+name+"' is not numeric")
	}
	return c.Floats, nil
}

// Strings returns the values of a string column.
func (t *Table) Strings(name string) ([]string, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.IsFloat() {
		return nil, errors.NewValueError("table.Strings", "column '"+name+"' is numeric")
	}
	return c.Strings, nil
}

// Subset returns a new Table containing the rows at the given positions, in
// the given order. Duplicate indices produce duplicate rows, which is what
// bootstrap analysis sets require. An empty index slice yields a zero-row
// table with the same columns.
func (t *Table) Subset(indices []int) (*Table, error) {
	for _, idx := range indices {
		if idx < 0 || idx >= t.rows {
			return nil, errors.NewValidationError("indices", "row index out of range", idx)
		}
	}

	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		sub := Column{Name: c.Name}
		if c.IsFloat() {
			src := c.Floats
			dst := make([]float64, len(indices))
			parallel.ParallelizeWithThreshold(len(indices), parallelThreshold, func(start, end int) {
				for j := start; j < end; j++ {
					dst[j] = src[indices[j]]
				}
			})
			sub.Floats = dst
		} else {
			src := c.Strings
			dst := make([]string, len(indices))
			parallel.ParallelizeWithThreshold(len(indices), parallelThreshold, func(start, end int) {
				for j := start; j < end; j++ {
					dst[j] = src[indices[j]]
				}
			})
			sub.Strings = dst
		}
		cols[i] = sub
	}

	byName := make(map[string]int, len(cols))
	for i, c := range cols {
		byName[c.Name] = i
	}
	return &Table{cols: cols, byName: byName, rows: len(indices)}, nil
}

// Matrix returns the named numeric columns as a dense matrix with one row
// per table row, for handing the data to gonum-based consumers. With no
// names, every numeric column is included in table order.
func (t *Table) Matrix(names ...string) (*mat.Dense, error) {
	if len(names) == 0 {
		for _, c := range t.cols {
			if c.IsFloat() {
				names = append(names, c.Name)
			}
		}
	}
	if len(names) == 0 {
		return nil, errors.NewValueError("table.Matrix", "table has no numeric columns")
	}
	if t.rows == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "table.Matrix")
	}

	m := mat.NewDense(t.rows, len(names), nil)
	for j, name := range names {
		vals, err := t.Float(name)
		if err != nil {
			return nil, err
		}
		parallel.ParallelizeWithThreshold(t.rows, parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				m.Set(i, j, vals[i])
			}
		})
	}
	return m, nil
}

// levelKeys renders a column's values as level identifiers. Numeric columns
// are usable as strata only while they stay discrete.
func (t *Table) levelKeys(name string) ([]string, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, errors.NewStratumError(name, "column not found")
	}

	if !c.IsFloat() {
		return c.Strings, nil
	}

	keys := make([]string, len(c.Floats))
	for i, v := range c.Floats {
		keys[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	if len(lo.Uniq(keys)) > maxDiscreteLevels {
		return nil, errors.NewStratumError(name, "numeric column has too many distinct values to be treated as discrete")
	}
	return keys, nil
}

// Levels returns the distinct values of a discrete column in order of first
// appearance.
func (t *Table) Levels(name string) ([]string, error) {
	keys, err := t.levelKeys(name)
	if err != nil {
		return nil, err
	}
	return lo.Uniq(keys), nil
}

// GroupIndices partitions the row positions by the levels of a discrete
// column. Groups come back in level order (order of first appearance) and
// each group preserves original row order.
func (t *Table) GroupIndices(name string) ([]string, [][]int, error) {
	keys, err := t.levelKeys(name)
	if err != nil {
		return nil, nil, err
	}

	levels := lo.Uniq(keys)
	pos := make(map[string]int, len(levels))
	for i, lvl := range levels {
		pos[lvl] = i
	}

	groups := make([][]int, len(levels))
	for i, k := range keys {
		g := pos[k]
		groups[g] = append(groups[g], i)
	}
	return levels, groups, nil
}
