package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnStatsCounts(t *testing.T) {
	col := NewColumnStats("city")
	for _, v := range []string{"Lisbon", "", "Porto", "Lisbon", "   ", "Faro"} {
		col.Observe(v)
	}

	assert.Equal(t, 6, col.TotalCount())
	assert.Equal(t, 2, col.EmptyCount())
	assert.Equal(t, 4, col.NonEmptyCount())
	assert.Equal(t, 3, col.DistinctCount())
}

func TestColumnStatsCountConservation(t *testing.T) {
	col := NewColumnStats("x")
	values := []string{"a", "", "b", "a", "", "c", "a", "  ", "b"}
	for _, v := range values {
		col.Observe(v)
	}

	sum := 0
	for _, vc := range col.TopN(col.DistinctCount()) {
		sum += vc.Count
	}
	assert.Equal(t, col.TotalCount(), col.EmptyCount()+sum)
}

func TestColumnStatsTrimsValues(t *testing.T) {
	col := NewColumnStats("x")
	col.Observe(" a ")
	col.Observe("a")

	assert.Equal(t, 1, col.DistinctCount())
	top := col.TopN(1)
	require.Len(t, top, 1)
	assert.Equal(t, "a", top[0].Value)
	assert.Equal(t, 2, top[0].Count)
}

func TestTopNOrdering(t *testing.T) {
	col := NewColumnStats("x")
	for _, v := range []string{"a", "b", "a", "c", "b", "a"} {
		col.Observe(v)
	}

	top := col.TopN(5)
	require.Len(t, top, 3)

	assert.Equal(t, "a", top[0].Value)
	assert.Equal(t, 3, top[0].Count)
	assert.InDelta(t, 50.0, top[0].Percent, 0.01)

	assert.Equal(t, "b", top[1].Value)
	assert.Equal(t, 2, top[1].Count)
	assert.InDelta(t, 33.33, top[1].Percent, 0.01)

	assert.Equal(t, "c", top[2].Value)
	assert.Equal(t, 1, top[2].Count)
	assert.InDelta(t, 16.67, top[2].Percent, 0.01)
}

func TestTopNTieBreaksByFirstOccurrence(t *testing.T) {
	col := NewColumnStats("x")
	for _, v := range []string{"z", "m", "a", "z", "m", "a"} {
		col.Observe(v)
	}

	top := col.TopN(3)
	require.Len(t, top, 3)
	assert.Equal(t, "z", top[0].Value)
	assert.Equal(t, "m", top[1].Value)
	assert.Equal(t, "a", top[2].Value)
}

func TestTopNLimitsResults(t *testing.T) {
	col := NewColumnStats("x")
	for _, v := range []string{"a", "b", "c", "d"} {
		col.Observe(v)
	}

	assert.Len(t, col.TopN(2), 2)
	assert.Nil(t, col.TopN(0))
}

func TestPredominantType(t *testing.T) {
	col := NewColumnStats("x")
	for _, v := range []string{"1", "2", "3.5", "4"} {
		col.Observe(v)
	}

	got, ok := col.PredominantType()
	require.True(t, ok)
	assert.Equal(t, TypeInteger, got)
}

func TestPredominantTypeTieResolvesByPrecedence(t *testing.T) {
	col := NewColumnStats("amount")
	col.Observe("10.5")
	col.Observe("20")

	// One float, one integer: integer comes first in the precedence order.
	got, ok := col.PredominantType()
	require.True(t, ok)
	assert.Equal(t, TypeInteger, got)
}

func TestPredominantTypeAllEmpty(t *testing.T) {
	col := NewColumnStats("x")
	col.Observe("")
	col.Observe("   ")

	_, ok := col.PredominantType()
	assert.False(t, ok)
	assert.Nil(t, col.TopN(5))
}
