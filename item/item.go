package item

import (
	"fmt"
	"sort"
)

// New builds a validated item. The ratio is left unset.
func New(id, weight, value int) (Item, error) {
	it := Item{ID: id, Weight: weight, Value: value}
	if err := Check(it); err != nil {
		return Item{}, err
	}

	return it, nil
}

// Check reports the first per-item violation, or nil.
func Check(it Item) error {
	if it.Weight <= 0 {
		return ErrNonPositiveWeight
	}
	if it.Weight > MaxWeight {
		return ErrWeightOutOfRange
	}
	if it.Value < 0 {
		return ErrNegativeValue
	}
	if it.Value > MaxValue {
		return ErrValueOutOfRange
	}

	return nil
}

// FromPairs builds a collection with IDs 1..n from parallel weight/value slices.
// The first invalid pair is reported as ErrInvalidItem wrapping the cause.
func FromPairs(weights, values []int) ([]Item, error) {
	if len(weights) != len(values) {
		return nil, ErrLengthMismatch
	}
	items := make([]Item, len(weights))

	var (
		i   int
		err error
	)
	for i = range weights {
		items[i], err = New(i+1, weights[i], values[i])
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidItem, i+1, err)
		}
	}

	return items, nil
}

// ComputeRatio stores Value/Weight into it.Ratio and returns it.
// A non-positive weight is a contract violation and yields ErrNonPositiveWeight
// without touching the item.
func ComputeRatio(it *Item) (float64, error) {
	if it.Weight <= 0 {
		return 0, ErrNonPositiveWeight
	}
	it.Ratio = float64(it.Value) / float64(it.Weight)

	return it.Ratio, nil
}

// ComputeRatios computes the ratio of every item in place.
func ComputeRatios(items []Item) error {
	var i int
	for i = range items {
		if _, err := ComputeRatio(&items[i]); err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidItem, items[i].ID, err)
		}
	}

	return nil
}

// byRatioDesc implements sort.Interface: ratio descending.
type byRatioDesc []Item

func (s byRatioDesc) Len() int           { return len(s) }
func (s byRatioDesc) Less(i, j int) bool { return s[i].Ratio > s[j].Ratio }
func (s byRatioDesc) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }

// SortByRatioDesc reorders items in place by Ratio, highest first.
// The sort is stable: equal ratios keep their input order.
// Ratios must have been computed beforehand.
func SortByRatioDesc(items []Item) {
	sort.Stable(byRatioDesc(items))
}

// Clone returns an independent copy of items (nil for nil).
func Clone(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)

	return out
}

// Totals sums weight and value of the items whose IDs appear in ids.
// Unknown IDs are ignored.
func Totals(items []Item, ids []int) (weight, value int) {
	byID := make(map[int]Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			weight += it.Weight
			value += it.Value
		}
	}

	return weight, value
}
