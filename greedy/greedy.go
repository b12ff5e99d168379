package greedy

import (
	"errors"

	"github.com/katalvlaran/knapsack/item"
)

// ErrNegativeCapacity indicates capacity < 0.
var ErrNegativeCapacity = errors.New("greedy: capacity must be non-negative")

// Portion records how much of one item the greedy fill took.
type Portion struct {
	ID       int     `json:"id"`
	Fraction float64 `json:"fraction"` // in (0, 1]; 1 means the whole item
}

// Result is the outcome of Solve.
type Result struct {
	Value float64
	Taken []Portion // in ratio-descending order of selection
}

// SolveFractional returns the fractional knapsack optimum.
func SolveFractional(items []item.Item, capacity int) (float64, error) {
	res, err := Solve(items, capacity)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// Solve computes ratios, sorts items by ratio descending (in place) and fills
// the capacity greedily, splitting at most one item.
//
// Errors: ErrNegativeCapacity; item.ErrInvalidItem wrapping the weight/value
// sentinel (checked before any ratio is computed).
//
// Complexity: O(n log n).
func Solve(items []item.Item, capacity int) (Result, error) {
	if capacity < 0 {
		return Result{}, ErrNegativeCapacity
	}
	if err := item.CheckAll(items); err != nil {
		return Result{}, err
	}
	if err := item.ComputeRatios(items); err != nil {
		return Result{}, err
	}
	item.SortByRatioDesc(items)

	var res Result
	remaining := capacity
	for _, it := range items {
		if remaining <= 0 {
			break
		}
		if it.Weight <= remaining {
			res.Value += float64(it.Value)
			remaining -= it.Weight
			res.Taken = append(res.Taken, Portion{ID: it.ID, Fraction: 1})

			continue
		}
		frac := float64(remaining) / float64(it.Weight)
		res.Value += float64(it.Value) * frac
		res.Taken = append(res.Taken, Portion{ID: it.ID, Fraction: frac})
		remaining = 0
	}

	return res, nil
}

// Relax returns the fractional fill of sorted[from:] into remaining capacity:
// whole items while they fit, then one fractional term, then stop.
// sorted must already be in ratio-descending order; from ≥ len(sorted) or
// remaining ≤ 0 yields 0.
//
// Complexity: O(len(sorted) - from).
func Relax(sorted []item.Item, from, remaining int) float64 {
	var (
		total float64
		j     int
	)
	for j = from; j < len(sorted); j++ {
		if remaining <= 0 {
			break
		}
		if sorted[j].Weight <= remaining {
			remaining -= sorted[j].Weight
			total += float64(sorted[j].Value)

			continue
		}
		total += float64(sorted[j].Value) * (float64(remaining) / float64(sorted[j].Weight))
		break
	}

	return total
}
