// Package item defines the shared input model of the knapsack solvers:
// the Item (weight, value, derived value density) and the helpers that
// validate, copy and order a collection of items.
//
// 🚀 What lives here?
//
//	• Item         - ID (1-based original position), Weight in [1, MaxWeight], Value in [0, MaxValue], Ratio
//	• ComputeRatio - derives Value/Weight, rejecting non-positive weights
//	• SortByRatioDesc - stable ratio-descending order used by greedy and bnb
//	• Validate     - count / capacity / per-item checks against Limits
//	• Clone        - private copies, so solvers that reorder never leak into each other
//
// Ordering contract:
//
//	SortByRatioDesc permutes the slice in place. Items with identical ratios
//	keep their relative input order; no solver outcome depends on the tie order,
//	only on the optimal value.
//
// Errors (sentinel):
//
//	– ErrNonPositiveWeight if an item has Weight ≤ 0.
//	– ErrNegativeValue     if an item has Value < 0.
//	– ErrInvalidCount      if len(items) is outside [0, Limits.MaxItems].
//	– ErrInvalidCapacity   if capacity is outside [0, Limits.MaxCapacity].
//	– ErrInvalidItem       wraps the per-item sentinel together with the item ID.
package item
