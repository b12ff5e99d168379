// Package testutil holds fixtures shared by the solver tests: the scenarios
// with known optima, a seeded random instance generator and an exhaustive
// subset oracle to check exact solvers against.
package testutil

import (
	"math/rand"

	"github.com/katalvlaran/knapsack/item"
)

// Scenario is an instance with known optima.
type Scenario struct {
	Name       string
	Weights    []int
	Values     []int
	Capacity   int
	Exact      int     // 0/1 optimum
	Fractional float64 // fractional optimum
}

// Items materializes the scenario as a fresh collection (IDs 1..n).
// It panics on malformed fixtures, which only happens on a broken test table.
func (s Scenario) Items() []item.Item {
	items, err := item.FromPairs(s.Weights, s.Values)
	if err != nil {
		panic(err)
	}

	return items
}

// Scenarios returns the reference instances.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Name:       "four items cap 5",
			Weights:    []int{2, 3, 4, 5},
			Values:     []int{3, 4, 5, 6},
			Capacity:   5,
			Exact:      7,
			Fractional: 7,
		},
		{
			Name:       "classic 50",
			Weights:    []int{10, 20, 30},
			Values:     []int{60, 100, 120},
			Capacity:   50,
			Exact:      220,
			Fractional: 240,
		},
		{
			Name:     "no items",
			Capacity: 10,
		},
		{
			Name:     "zero capacity",
			Weights:  []int{1, 2},
			Values:   []int{5, 6},
			Capacity: 0,
		},
		{
			Name:       "single heavy item",
			Weights:    []int{10},
			Values:     []int{10},
			Capacity:   5,
			Exact:      0,
			Fractional: 5,
		},
		{
			Name:       "greedy trap",
			Weights:    []int{1, 50, 50},
			Values:     []int{2, 60, 60},
			Capacity:   100,
			Exact:      120,
			Fractional: 2 + 60 + 60*49.0/50.0,
		},
		{
			Name:       "everything fits",
			Weights:    []int{3, 4, 5},
			Values:     []int{1, 0, 7},
			Capacity:   100,
			Exact:      8,
			Fractional: 8,
		},
	}
}

// RandomItems draws n items with weights in [1, maxW] and values in [0, maxV].
func RandomItems(rng *rand.Rand, n, maxW, maxV int) []item.Item {
	items := make([]item.Item, n)
	for i := range items {
		items[i] = item.Item{
			ID:     i + 1,
			Weight: 1 + rng.Intn(maxW),
			Value:  rng.Intn(maxV + 1),
		}
	}

	return items
}

// BruteForce enumerates all 2^n subsets and returns the best feasible value.
// Only for small n.
func BruteForce(items []item.Item, capacity int) int {
	n := len(items)
	best := 0
	for mask := 0; mask < 1<<n; mask++ {
		w, v := 0, 0
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				w += items[i].Weight
				v += items[i].Value
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}
