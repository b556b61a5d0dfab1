package resample

import (
	"fmt"
	"sort"

	"github.com/shuesler/rsample/pkg/errors"
	"github.com/shuesler/rsample/table"
)

// strataGroups resolves the stratification setting of a generator into row
// groups. Without a strata column every row lands in one group. With one,
// the rows are grouped by the column's discrete levels; the generator then
// runs its base index algorithm per group and merges the results, which is
// what keeps level proportions stable across splits. minSize is the
// smallest group the calling scheme can partition (e.g. the fold count).
func strataGroups(tbl *table.Table, strata string, minSize int) ([][]int, error) {
	if strata == "" {
		return [][]int{allRows(tbl.NumRows())}, nil
	}

	levels, groups, err := tbl.GroupIndices(strata)
	if err != nil {
		return nil, err
	}
	for i, g := range groups {
		if len(g) < minSize {
			return nil, errors.NewStratumError(strata,
				fmt.Sprintf("stratum %q has %d rows, fewer than the required %d", levels[i], len(g), minSize))
		}
	}
	return groups, nil
}

// allRows returns the identity index sequence [0, n).
func allRows(n int) []int {
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// complement returns the ascending row indices of [0, n) not marked in the
// member set.
func complement(n int, member []bool) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !member[i] {
			out = append(out, i)
		}
	}
	return out
}

// sortedCopy returns the indices in ascending order without mutating the
// input.
func sortedCopy(indices []int) []int {
	out := make([]int, len(indices))
	copy(out, indices)
	sort.Ints(out)
	return out
}
