package item_test

import (
	"testing"

	"github.com/katalvlaran/knapsack/item"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_RejectsBadItems verifies the per-item sentinels.
func TestNew_RejectsBadItems(t *testing.T) {
	_, err := item.New(1, 0, 5)
	assert.ErrorIs(t, err, item.ErrNonPositiveWeight, "zero weight must be rejected")

	_, err = item.New(1, -3, 5)
	assert.ErrorIs(t, err, item.ErrNonPositiveWeight, "negative weight must be rejected")

	_, err = item.New(1, 3, -1)
	assert.ErrorIs(t, err, item.ErrNegativeValue, "negative value must be rejected")

	_, err = item.New(1, item.MaxWeight+1, 5)
	assert.ErrorIs(t, err, item.ErrWeightOutOfRange, "weight above MaxWeight must be rejected")

	_, err = item.New(1, 3, item.MaxValue+1)
	assert.ErrorIs(t, err, item.ErrValueOutOfRange, "value above MaxValue must be rejected")

	_, err = item.New(1, item.MaxWeight, item.MaxValue)
	require.NoError(t, err, "bounds are inclusive")

	it, err := item.New(7, 3, 0)
	require.NoError(t, err, "zero value is allowed")
	assert.Equal(t, item.Item{ID: 7, Weight: 3, Value: 0}, it)
}

// TestFromPairs checks ID assignment and error wrapping.
func TestFromPairs(t *testing.T) {
	items, err := item.FromPairs([]int{2, 3}, []int{3, 4})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)

	_, err = item.FromPairs([]int{2}, []int{3, 4})
	assert.ErrorIs(t, err, item.ErrLengthMismatch)

	_, err = item.FromPairs([]int{2, 0}, []int{3, 4})
	assert.ErrorIs(t, err, item.ErrInvalidItem, "wrapper sentinel")
	assert.ErrorIs(t, err, item.ErrNonPositiveWeight, "cause sentinel")
	assert.Contains(t, err.Error(), "2", "offending ID is reported")

	empty, err := item.FromPairs(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestComputeRatio covers the happy path and the domain error.
func TestComputeRatio(t *testing.T) {
	it := item.Item{ID: 1, Weight: 4, Value: 10}
	r, err := item.ComputeRatio(&it)
	require.NoError(t, err)
	assert.Equal(t, 2.5, r)
	assert.Equal(t, 2.5, it.Ratio, "ratio is stored on the item")

	bad := item.Item{ID: 2, Weight: 0, Value: 10}
	_, err = item.ComputeRatio(&bad)
	assert.ErrorIs(t, err, item.ErrNonPositiveWeight)
	assert.Zero(t, bad.Ratio, "failed computation leaves ratio untouched")

	items := []item.Item{{ID: 1, Weight: 2, Value: 3}, {ID: 2, Weight: 0, Value: 1}}
	err = item.ComputeRatios(items)
	assert.ErrorIs(t, err, item.ErrInvalidItem)
	assert.ErrorIs(t, err, item.ErrNonPositiveWeight)
}

// TestSortByRatioDesc checks ordering, stability on ties and that only
// positions change.
func TestSortByRatioDesc(t *testing.T) {
	items, err := item.FromPairs(
		[]int{10, 20, 30, 5, 4},
		[]int{60, 100, 120, 30, 8},
	)
	require.NoError(t, err)
	require.NoError(t, item.ComputeRatios(items))
	orig := item.Clone(items)

	item.SortByRatioDesc(items)

	// ratios: 6, 5, 4, 6, 2 → IDs 1 and 4 tie at 6 and keep input order.
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	assert.Equal(t, []int{1, 4, 2, 3, 5}, ids)

	for i := 1; i < len(items); i++ {
		assert.GreaterOrEqual(t, items[i-1].Ratio, items[i].Ratio, "descending at %d", i)
	}
	assert.ElementsMatch(t, orig, items, "sorting must not alter item fields")
}

// TestClone ensures copies are independent.
func TestClone(t *testing.T) {
	assert.Nil(t, item.Clone(nil))

	src := []item.Item{{ID: 1, Weight: 1, Value: 1}}
	dst := item.Clone(src)
	dst[0].Value = 99
	assert.Equal(t, 1, src[0].Value, "mutating the clone must not affect the source")
}

// TestTotals sums the selected subset by ID.
func TestTotals(t *testing.T) {
	items, err := item.FromPairs([]int{2, 3, 4}, []int{3, 4, 5})
	require.NoError(t, err)

	w, v := item.Totals(items, []int{1, 3, 42})
	assert.Equal(t, 6, w)
	assert.Equal(t, 8, v)
}
