package table

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuesler/rsample/pkg/errors"
)

func TestNew(t *testing.T) {
	t.Run("Valid table", func(t *testing.T) {
		tbl, err := New(
			Float("x", 1, 2, 3),
			Str("class", "a", "b", "a"),
		)
		require.NoError(t, err)
		assert.Equal(t, 3, tbl.NumRows())
		assert.Equal(t, 2, tbl.NumCols())
		assert.Equal(t, []string{"x", "class"}, tbl.Names())
	})

	t.Run("Length mismatch", func(t *testing.T) {
		_, err := New(
			Float("x", 1, 2, 3),
			Str("class", "a", "b"),
		)
		require.Error(t, err)
		var dimErr *errors.DimensionError
		assert.True(t, errors.As(err, &dimErr))
	})

	t.Run("Duplicate column name", func(t *testing.T) {
		_, err := New(
			Float("x", 1, 2),
			Float("x", 3, 4),
		)
		require.Error(t, err)
		var valErr *errors.ValidationError
		assert.True(t, errors.As(err, &valErr))
	})

	t.Run("No columns", func(t *testing.T) {
		_, err := New()
		assert.Error(t, err)
	})
}

func TestColumnAccess(t *testing.T) {
	tbl, err := New(
		Float("x", 1.5, 2.5),
		Str("class", "a", "b"),
	)
	require.NoError(t, err)

	t.Run("Float column", func(t *testing.T) {
		x, err := tbl.Float("x")
		require.NoError(t, err)
		assert.Equal(t, []float64{1.5, 2.5}, x)
	})

	t.Run("String column", func(t *testing.T) {
		class, err := tbl.Strings("class")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, class)
	})

	t.Run("Wrong type", func(t *testing.T) {
		_, err := tbl.Float("class")
		assert.Error(t, err)
		_, err = tbl.Strings("x")
		assert.Error(t, err)
	})

	t.Run("Missing column", func(t *testing.T) {
		_, err := tbl.Column("nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrColumnNotFound))
	})
}

func TestSubset(t *testing.T) {
	tbl, err := New(
		Float("x", 10, 20, 30, 40),
		Str("class", "a", "b", "c", "d"),
	)
	require.NoError(t, err)

	t.Run("Selection preserves order", func(t *testing.T) {
		sub, err := tbl.Subset([]int{3, 0, 2})
		require.NoError(t, err)
		x, _ := sub.Float("x")
		assert.Equal(t, []float64{40, 10, 30}, x)
		class, _ := sub.Strings("class")
		assert.Equal(t, []string{"d", "a", "c"}, class)
	})

	t.Run("Duplicate indices duplicate rows", func(t *testing.T) {
		sub, err := tbl.Subset([]int{1, 1, 1})
		require.NoError(t, err)
		assert.Equal(t, 3, sub.NumRows())
		x, _ := sub.Float("x")
		assert.Equal(t, []float64{20, 20, 20}, x)
	})

	t.Run("Empty index set", func(t *testing.T) {
		sub, err := tbl.Subset([]int{})
		require.NoError(t, err)
		assert.Equal(t, 0, sub.NumRows())
		assert.Equal(t, 2, sub.NumCols())
	})

	t.Run("Out of range", func(t *testing.T) {
		_, err := tbl.Subset([]int{0, 4})
		assert.Error(t, err)
		_, err = tbl.Subset([]int{-1})
		assert.Error(t, err)
	})

	t.Run("Large selection fills chunks correctly", func(t *testing.T) {
		// Enough rows to cross the chunked-fill threshold.
		n := 5000
		x := make([]float64, n)
		class := make([]string, n)
		for i := range x {
			x[i] = float64(i)
			class[i] = strconv.Itoa(i)
		}
		big, err := New(Float("x", x...), Str("class", class...))
		require.NoError(t, err)

		reversed := make([]int, n)
		for i := range reversed {
			reversed[i] = n - 1 - i
		}
		sub, err := big.Subset(reversed)
		require.NoError(t, err)
		require.Equal(t, n, sub.NumRows())

		subX, err := sub.Float("x")
		require.NoError(t, err)
		subClass, err := sub.Strings("class")
		require.NoError(t, err)
		for i := 0; i < n; i += 499 {
			assert.Equal(t, float64(n-1-i), subX[i])
			assert.Equal(t, strconv.Itoa(n-1-i), subClass[i])
		}

		m, err := sub.Matrix("x")
		require.NoError(t, err)
		assert.Equal(t, float64(n-1), m.At(0, 0))
		assert.Equal(t, 0.0, m.At(n-1, 0))
	})
}

func TestMatrix(t *testing.T) {
	tbl, err := New(
		Float("x", 1, 2),
		Float("y", 3, 4),
		Str("class", "a", "b"),
	)
	require.NoError(t, err)

	t.Run("All numeric columns", func(t *testing.T) {
		m, err := tbl.Matrix()
		require.NoError(t, err)
		r, c := m.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 2, c)
		assert.Equal(t, 1.0, m.At(0, 0))
		assert.Equal(t, 4.0, m.At(1, 1))
	})

	t.Run("Named column", func(t *testing.T) {
		m, err := tbl.Matrix("y")
		require.NoError(t, err)
		_, c := m.Dims()
		assert.Equal(t, 1, c)
		assert.Equal(t, 3.0, m.At(0, 0))
	})

	t.Run("Non-numeric column", func(t *testing.T) {
		_, err := tbl.Matrix("class")
		assert.Error(t, err)
	})
}

func TestGroupIndices(t *testing.T) {
	t.Run("String strata", func(t *testing.T) {
		tbl, err := New(Str("class", "a", "b", "a", "b", "a"))
		require.NoError(t, err)

		levels, groups, err := tbl.GroupIndices("class")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, levels)
		assert.Equal(t, [][]int{{0, 2, 4}, {1, 3}}, groups)
	})

	t.Run("Discrete numeric strata", func(t *testing.T) {
		tbl, err := New(Float("group", 1, 2, 1, 2))
		require.NoError(t, err)

		levels, groups, err := tbl.GroupIndices("group")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2"}, levels)
		assert.Equal(t, [][]int{{0, 2}, {1, 3}}, groups)
	})

	t.Run("Continuous numeric strata rejected", func(t *testing.T) {
		values := make([]float64, 100)
		for i := range values {
			values[i] = float64(i) + 0.5
		}
		tbl, err := New(Float("x", values...))
		require.NoError(t, err)

		_, _, err = tbl.GroupIndices("x")
		require.Error(t, err)
		var stratErr *errors.StratumError
		assert.True(t, errors.As(err, &stratErr))
	})

	t.Run("Missing column", func(t *testing.T) {
		tbl, err := New(Float("x", 1))
		require.NoError(t, err)

		_, _, err = tbl.GroupIndices("nope")
		assert.Error(t, err)
	})
}

func TestLevels(t *testing.T) {
	tbl, err := New(Str("class", "b", "a", "b", "c"))
	require.NoError(t, err)

	levels, err := tbl.Levels("class")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, levels)
}
