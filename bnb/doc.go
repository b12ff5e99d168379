// Package bnb provides an exact 0/1 knapsack solver based on depth-first
// Branch-and-Bound.
//
// It shares its bounding function with package greedy: the fractional
// relaxation of the items not yet decided. Use it on small instances
// (n ≲ a few tens); the search is exponential in the worst case.
//
//	res, err := bnb.Solve(items, capacity, bnb.DefaultOptions())
//	// res.Value, res.Items (original IDs), res.Stats.Nodes / Pruned
//
// Every call owns its incumbent, so back-to-back runs on unrelated
// instances never observe each other's best value.
package bnb
