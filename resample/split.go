// Package resample generates and manages collections of reusable
// analysis/assessment row partitions over a tabular dataset. It implements
// v-fold cross-validation (optionally repeated and stratified), bootstrap
// resampling, Monte-Carlo and initial train/test splits, leave-one-out
// cross-validation, and rolling-origin resampling for ordered data, plus an
// evaluation driver that maps a user function over every split.
package resample

import (
	"fmt"

	"github.com/shuesler/rsample/table"
)

// Partition is a pair of row-index sets over a fixed-size dataset. Analysis
// rows are used for fitting, assessment rows for evaluation. For bootstrap
// partitions the analysis indices form a multiset; for every other scheme
// the two sets are disjoint.
type Partition struct {
	Analysis   []int
	Assessment []int
}

// Split binds one Partition to a shared dataset. The dataset is referenced,
// never copied; it must outlive every Split drawn from it and stay
// read-only while splits are in use. Splits are immutable once constructed.
type Split struct {
	data  *table.Table
	part  Partition
	label string
}

// NewSplit creates a Split over the given dataset.
func NewSplit(data *table.Table, part Partition, label string) *Split {
	return &Split{data: data, part: part, label: label}
}

// Label returns the split's identifier within its resample set, for
// example "Fold03", "Repeat2.Fold01", "Resample17" or "Slice04".
func (s *Split) Label() string { return s.label }

// Partition returns the split's row-index partition.
func (s *Split) Partition() Partition { return s.part }

// Data returns the shared source dataset.
func (s *Split) Data() *table.Table { return s.data }

// Analysis materializes the analysis rows as a sub-table. The projection
// preserves index multiplicity, so a bootstrap analysis set with repeated
// indices yields repeated rows.
func (s *Split) Analysis() (*table.Table, error) {
	return s.data.Subset(s.part.Analysis)
}

// Assessment materializes the assessment rows as a sub-table. An empty
// assessment set (possible for bootstrap resamples) yields a zero-row
// table, never nil.
func (s *Split) Assessment() (*table.Table, error) {
	return s.data.Subset(s.part.Assessment)
}

// String renders the split in <analysis/assessment/total> form.
func (s *Split) String() string {
	return fmt.Sprintf("<%d/%d/%d>", len(s.part.Analysis), len(s.part.Assessment), s.data.NumRows())
}

// Training returns the analysis sub-table of an initial split. It is a
// readability alias for Split.Analysis.
func Training(s *Split) (*table.Table, error) {
	return s.Analysis()
}

// Testing returns the assessment sub-table of an initial split. It is a
// readability alias for Split.Assessment.
func Testing(s *Split) (*table.Table, error) {
	return s.Assessment()
}
