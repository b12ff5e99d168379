package dp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/knapsack/item"
)

// SolveDP returns the exact 0/1 knapsack optimum of items under capacity.
// Items are read in their given order and never modified.
func SolveDP(items []item.Item, capacity int) (int, error) {
	opts := DefaultOptions()
	res, err := Solve(items, capacity, &opts)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// Solve tabulates the 0/1 knapsack recurrence.
//
// Algorithm Outline (FullTable):
//  1. Allocate (n+1)×(capacity+1) table; row 0 and column 0 stay zero.
//  2. For i = 1..n, w = 1..capacity:
//     exclude = dp[i-1][w]
//     include = value(i) + dp[i-1][w-weight(i)]   (only if weight(i) ≤ w)
//     dp[i][w] = max(exclude, include)
//  3. Value = dp[n][capacity].
//  4. If ReturnItems, walk i = n..1: dp[i][w] != dp[i-1][w] means item i was taken.
//
// Errors:
//   - ErrNegativeCapacity, ErrBadMemoryMode, ErrItemsNeedTable, ErrTableTooLarge.
//   - item.ErrInvalidItem (wrapping the weight/value sentinel).
//
// Complexity: O(n·capacity) time; memory per MemoryMode.
func Solve(items []item.Item, capacity int, opts *Options) (Result, error) {
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.MemoryMode != FullTable && cfg.MemoryMode != TwoRows {
		return Result{}, ErrBadMemoryMode
	}
	if cfg.ReturnItems && cfg.MemoryMode != FullTable {
		return Result{}, ErrItemsNeedTable
	}
	if capacity < 0 {
		return Result{}, ErrNegativeCapacity
	}
	if err := item.CheckAll(items); err != nil {
		return Result{}, err
	}
	if err := checkSize(len(items), capacity, cfg.MemoryMode); err != nil {
		return Result{}, err
	}

	if cfg.MemoryMode == TwoRows {
		return Result{Value: solveTwoRows(items, capacity)}, nil
	}

	table := fill(items, capacity)
	res := Result{Value: table[len(items)][capacity]}
	if cfg.ReturnItems {
		res.Items = backtrack(table, items, capacity)
	}

	return res, nil
}

// checkSize rejects instances whose table would exceed MaxCells.
// Division keeps the product from overflowing.
func checkSize(n, capacity int, mode MemoryMode) error {
	rows := n + 1
	if mode == TwoRows {
		rows = 2
	}
	if capacity >= MaxCells || rows > MaxCells/(capacity+1) {
		return fmt.Errorf("%w: %d rows x %d columns (max %d cells)", ErrTableTooLarge, rows, capacity+1, MaxCells)
	}

	return nil
}

// fill builds the full (n+1)×(capacity+1) table.
func fill(items []item.Item, capacity int) [][]int {
	n := len(items)
	table := make([][]int, n+1)
	cells := make([]int, (n+1)*(capacity+1)) // one backing array
	var i, w int
	for i = 0; i <= n; i++ {
		table[i] = cells[i*(capacity+1) : (i+1)*(capacity+1)]
	}

	for i = 1; i <= n; i++ {
		wt, val := items[i-1].Weight, items[i-1].Value
		prev, curr := table[i-1], table[i]
		for w = 1; w <= capacity; w++ {
			curr[w] = prev[w]
			if wt <= w {
				if include := val + prev[w-wt]; include > curr[w] {
					curr[w] = include
				}
			}
		}
	}

	return table
}

// solveTwoRows runs the same recurrence keeping only two rows.
func solveTwoRows(items []item.Item, capacity int) int {
	prev := make([]int, capacity+1)
	curr := make([]int, capacity+1)
	var w int
	for _, it := range items {
		for w = 0; w <= capacity; w++ {
			curr[w] = prev[w]
			if it.Weight <= w {
				if include := it.Value + prev[w-it.Weight]; include > curr[w] {
					curr[w] = include
				}
			}
		}
		prev, curr = curr, prev
	}

	return prev[capacity]
}

// backtrack recovers one optimal subset from a full table.
func backtrack(table [][]int, items []item.Item, capacity int) []int {
	ids := make([]int, 0, len(items))
	w := capacity
	for i := len(items); i > 0; i-- {
		if table[i][w] != table[i-1][w] {
			ids = append(ids, items[i-1].ID)
			w -= items[i-1].Weight
		}
	}
	sort.Ints(ids)

	return ids
}
