// Package bnb - Branch-and-Bound (exact search with an admissible upper bound).
//
// SolveBranchAndBound explores include/exclude decisions item by item in a
// depth-first search and cuts every branch whose optimistic bound cannot beat
// the incumbent.
//
// Rationale (succinct):
//  1. Items are validated first (weight ≤ 0 never reaches a division), then
//     their ratios are computed and they are sorted by ratio descending.
//  2. Bound: for a state (level, weight, profit) the bound is
//     profit + greedy.Relax(items, level+1, capacity-weight), i.e. the
//     fractional optimum of the undecided suffix. Items are ratio-sorted,
//     so this is the tightest fractional value and ≥ any 0/1 completion.
//  3. Search: at each level try INCLUDE (only if it fits; update the
//     incumbent immediately; descend iff bound > best) then EXCLUDE
//     (descend iff bound > best). At level == n, commit profit if larger.
//  4. The incumbent lives in a per-call engine; every call starts from 0.
//
// Complexity:
//   - Worst case O(2^n) nodes; pruning is what makes it practical.
//   - Per node: O(n) bound.
//   - Memory: O(n) for decisions + recursion depth n.
package bnb

import (
	"math"
	"sort"

	"github.com/katalvlaran/knapsack/greedy"
	"github.com/katalvlaran/knapsack/item"
)

// bbEngine holds the search data of one run.
type bbEngine struct {
	// Instance (ratio-sorted)
	items    []item.Item
	n        int
	capacity int

	// Policy
	useBound bool

	// Incumbent
	best     int
	bestTake []bool

	// Current decision path: take[i] is meaningful for i < level only.
	take []bool

	stats Stats
}

// bound returns the optimistic value reachable from a state whose items
// [0..level] are decided. NoBound returns +Inf so nothing is cut.
func (e *bbEngine) bound(level, weight, profit int) float64 {
	if !e.useBound {
		return math.Inf(1)
	}

	return float64(profit) + greedy.Relax(e.items, level+1, e.capacity-weight)
}

// record commits a new incumbent. Decisions beyond depth are treated as excluded.
func (e *bbEngine) record(depth, profit int) {
	e.best = profit
	copy(e.bestTake, e.take[:depth])
	for i := depth; i < e.n; i++ {
		e.bestTake[i] = false
	}
}

// promising tells whether a child with the given bound is worth descending into.
func (e *bbEngine) promising(b float64) bool {
	if b > float64(e.best) {
		return true
	}
	e.stats.Pruned++

	return false
}

// dfs decides item 'level' given the running weight and profit.
func (e *bbEngine) dfs(level, weight, profit int) {
	e.stats.Nodes++

	if level == e.n {
		if profit > e.best {
			e.record(level, profit)
		}

		return
	}
	it := e.items[level]

	// Branch 1: include, only if it fits. weight <= capacity, so the
	// subtraction cannot overflow.
	if it.Weight <= e.capacity-weight {
		w, p := weight+it.Weight, profit+it.Value
		e.take[level] = true
		if p > e.best {
			e.record(level+1, p)
		}
		if e.promising(e.bound(level, w, p)) {
			e.dfs(level+1, w, p)
		}
	}

	// Branch 2: exclude, always valid.
	e.take[level] = false
	if e.promising(e.bound(level, weight, profit)) {
		e.dfs(level+1, weight, profit)
	}
}

// selection maps the incumbent decisions back to original IDs, ascending.
func (e *bbEngine) selection() []int {
	ids := make([]int, 0, e.n)
	for i, taken := range e.bestTake {
		if taken {
			ids = append(ids, e.items[i].ID)
		}
	}
	sort.Ints(ids)

	return ids
}

// SolveBranchAndBound returns the exact 0/1 optimum using the fractional bound.
// The caller's slice is ratio-sorted in place.
func SolveBranchAndBound(items []item.Item, capacity int) (int, error) {
	res, err := Solve(items, capacity, DefaultOptions())
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// Solve is the full entry point: it prepares the engine, runs the search and
// returns the optimum, one optimal selection and search statistics.
//
// Errors:
//   - ErrNegativeCapacity, ErrUnsupportedBound.
//   - item.ErrInvalidItem wrapping item.ErrNonPositiveWeight / item.ErrNegativeValue,
//     reported before any ratio is computed or the slice is reordered.
func Solve(items []item.Item, capacity int, opts Options) (Result, error) {
	if capacity < 0 {
		return Result{}, ErrNegativeCapacity
	}
	if opts.BoundAlgo != FractionalBound && opts.BoundAlgo != NoBound {
		return Result{}, ErrUnsupportedBound
	}
	if err := item.CheckAll(items); err != nil {
		return Result{}, err
	}

	// Nothing to decide: answer without entering the search.
	if len(items) == 0 || capacity == 0 {
		return Result{Items: []int{}}, nil
	}

	// Preprocessing: ratios and ratio-descending order drive the bound.
	if err := item.ComputeRatios(items); err != nil {
		return Result{}, err
	}
	item.SortByRatioDesc(items)

	e := bbEngine{
		items:    items,
		n:        len(items),
		capacity: capacity,
		useBound: opts.BoundAlgo == FractionalBound,
		bestTake: make([]bool, len(items)),
		take:     make([]bool, len(items)),
	}
	e.dfs(0, 0, 0)

	return Result{Value: e.best, Items: e.selection(), Stats: e.stats}, nil
}
