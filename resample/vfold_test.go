package resample

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuesler/rsample/pkg/errors"
	"github.com/shuesler/rsample/table"
)

// makeTable builds an n-row dataset with a numeric column "x" holding the
// row position and a "class" column cycling through the given levels.
func makeTable(t *testing.T, n int, levels ...string) *table.Table {
	t.Helper()
	x := make([]float64, n)
	class := make([]string, n)
	if len(levels) == 0 {
		levels = []string{"a"}
	}
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		class[i] = levels[i%len(levels)]
	}
	tbl, err := table.New(table.Float("x", x...), table.Str("class", class...))
	require.NoError(t, err)
	return tbl
}

func assertDisjoint(t *testing.T, part Partition) {
	t.Helper()
	inAssessment := make(map[int]bool, len(part.Assessment))
	for _, idx := range part.Assessment {
		inAssessment[idx] = true
	}
	for _, idx := range part.Analysis {
		assert.False(t, inAssessment[idx], "analysis index %d also in assessment", idx)
	}
}

func TestVFoldCV(t *testing.T) {
	t.Run("Assessment sets partition the rows", func(t *testing.T) {
		tbl := makeTable(t, 100)
		rs, err := VFoldCV(tbl, 10, WithSeed(42))
		require.NoError(t, err)
		require.Equal(t, 10, rs.Len())

		seen := make(map[int]int)
		for _, s := range rs.Splits() {
			part := s.Partition()
			assert.Equal(t, 10, len(part.Assessment))
			assert.Equal(t, 90, len(part.Analysis))
			assertDisjoint(t, part)
			for _, idx := range part.Assessment {
				seen[idx]++
			}
		}
		for i := 0; i < 100; i++ {
			assert.Equal(t, 1, seen[i], "row %d held out exactly once", i)
		}
	})

	t.Run("Repeated folds", func(t *testing.T) {
		tbl := makeTable(t, 100)
		rs, err := VFoldCV(tbl, 10, WithRepeats(10), WithSeed(7))
		require.NoError(t, err)
		require.Equal(t, 100, rs.Len())

		// Within each repeat the assessment sets reconstruct every row once.
		for rep := 0; rep < 10; rep++ {
			seen := make(map[int]int)
			for f := 0; f < 10; f++ {
				s, err := rs.Split(rep*10 + f)
				require.NoError(t, err)
				assert.Equal(t, fmt.Sprintf("Repeat%d.Fold%02d", rep+1, f+1), s.Label())
				assert.Equal(t, 10, len(s.Partition().Assessment))
				for _, idx := range s.Partition().Assessment {
					seen[idx]++
				}
			}
			assert.Equal(t, 100, len(seen))
			for _, count := range seen {
				assert.Equal(t, 1, count)
			}
		}
	})

	t.Run("Repeats are independent partitions", func(t *testing.T) {
		tbl := makeTable(t, 60)
		rs, err := VFoldCV(tbl, 3, WithRepeats(2), WithSeed(11))
		require.NoError(t, err)

		first, err := rs.Split(0)
		require.NoError(t, err)
		second, err := rs.Split(3)
		require.NoError(t, err)
		assert.NotEqual(t, first.Partition().Assessment, second.Partition().Assessment)
	})

	t.Run("Uneven fold sizes", func(t *testing.T) {
		tbl := makeTable(t, 23)
		rs, err := VFoldCV(tbl, 5, WithSeed(1))
		require.NoError(t, err)

		sizes := make([]int, 5)
		for i, s := range rs.Splits() {
			sizes[i] = len(s.Partition().Assessment)
		}
		assert.Equal(t, []int{5, 5, 5, 4, 4}, sizes)
	})

	t.Run("Single repeat labels", func(t *testing.T) {
		tbl := makeTable(t, 10)
		rs, err := VFoldCV(tbl, 5, WithSeed(3))
		require.NoError(t, err)
		assert.Equal(t, []string{"Fold01", "Fold02", "Fold03", "Fold04", "Fold05"}, rs.Labels())
	})

	t.Run("Reproducible with seed", func(t *testing.T) {
		tbl := makeTable(t, 40)
		a, err := VFoldCV(tbl, 4, WithSeed(99))
		require.NoError(t, err)
		b, err := VFoldCV(tbl, 4, WithSeed(99))
		require.NoError(t, err)
		for i := range a.Splits() {
			assert.Equal(t, a.Splits()[i].Partition(), b.Splits()[i].Partition())
		}
	})

	t.Run("Invalid configuration", func(t *testing.T) {
		tbl := makeTable(t, 10)
		_, err := VFoldCV(tbl, 1)
		assert.Error(t, err)
		_, err = VFoldCV(tbl, 11)
		assert.Error(t, err)
		_, err = VFoldCV(tbl, 5, WithRepeats(0))
		assert.Error(t, err)
	})
}

func TestVFoldCVStratified(t *testing.T) {
	t.Run("Stratum counts balanced across folds", func(t *testing.T) {
		// 60 rows of "a", 40 of "b".
		class := make([]string, 100)
		x := make([]float64, 100)
		for i := range class {
			x[i] = float64(i)
			if i < 60 {
				class[i] = "a"
			} else {
				class[i] = "b"
			}
		}
		tbl, err := table.New(table.Float("x", x...), table.Str("class", class...))
		require.NoError(t, err)

		rs, err := VFoldCV(tbl, 5, WithStrata("class"), WithSeed(21))
		require.NoError(t, err)
		require.Equal(t, 5, rs.Len())

		for _, s := range rs.Splits() {
			assessment, err := s.Assessment()
			require.NoError(t, err)
			counts := map[string]int{}
			vals, err := assessment.Strings("class")
			require.NoError(t, err)
			for _, v := range vals {
				counts[v]++
			}
			// 60/5 and 40/5 divide evenly, proportions hold exactly.
			assert.Equal(t, 12, counts["a"])
			assert.Equal(t, 8, counts["b"])
		}
	})

	t.Run("Stratum counts differ by at most one", func(t *testing.T) {
		tbl := makeTable(t, 47, "a", "b", "c")
		rs, err := VFoldCV(tbl, 4, WithStrata("class"), WithSeed(5))
		require.NoError(t, err)

		perLevel := map[string][]int{}
		for _, s := range rs.Splits() {
			assessment, err := s.Assessment()
			require.NoError(t, err)
			vals, err := assessment.Strings("class")
			require.NoError(t, err)
			counts := map[string]int{}
			for _, v := range vals {
				counts[v]++
			}
			for lvl, c := range counts {
				perLevel[lvl] = append(perLevel[lvl], c)
			}
		}
		for lvl, counts := range perLevel {
			minC, maxC := counts[0], counts[0]
			for _, c := range counts {
				if c < minC {
					minC = c
				}
				if c > maxC {
					maxC = c
				}
			}
			assert.LessOrEqual(t, maxC-minC, 1, "level %s spread", lvl)
		}
	})

	t.Run("Stratum smaller than fold count", func(t *testing.T) {
		tbl := makeTable(t, 12, "a", "a", "a", "b")
		_, err := VFoldCV(tbl, 5, WithStrata("class"))
		require.Error(t, err)
		var stratErr *errors.StratumError
		assert.True(t, errors.As(err, &stratErr))
	})

	t.Run("Missing strata column", func(t *testing.T) {
		tbl := makeTable(t, 10)
		_, err := VFoldCV(tbl, 2, WithStrata("nope"))
		assert.Error(t, err)
	})
}

func TestLOOCV(t *testing.T) {
	t.Run("One split per row", func(t *testing.T) {
		tbl := makeTable(t, 8)
		rs, err := LOOCV(tbl)
		require.NoError(t, err)
		require.Equal(t, 8, rs.Len())

		for i, s := range rs.Splits() {
			part := s.Partition()
			assert.Equal(t, []int{i}, part.Assessment)
			assert.Equal(t, 7, len(part.Analysis))
			assertDisjoint(t, part)
			assert.Equal(t, fmt.Sprintf("Resample%d", i+1), s.Label())
		}
	})

	t.Run("Too few rows", func(t *testing.T) {
		tbl := makeTable(t, 1)
		_, err := LOOCV(tbl)
		assert.Error(t, err)
	})
}
