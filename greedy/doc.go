// Package greedy solves the fractional knapsack problem: items are divisible,
// so filling the capacity in descending value/weight order is optimal.
//
// The fractional optimum is an upper bound on the 0/1 optimum of the same
// instance. Relax exposes the fill itself over a ratio-sorted suffix; package
// bnb uses it as the bounding function of its search.
//
// Mutation contract: SolveFractional and Solve compute ratios on, and sort,
// the caller's slice. Pass item.Clone(items) if the original order matters.
package greedy
