// Package dp solves the 0/1 knapsack problem exactly by bottom-up tabulation.
//
// 🚀 What is the 0/1 knapsack DP?
//
//	Given n items (weight, value) and a capacity W, dp[i][w] is the best value
//	reachable with the first i items (original order) under weight limit w:
//
//	  dp[0][w] = 0,  dp[i][0] = 0
//	  dp[i][w] = dp[i-1][w]                                   if w < weight(i)
//	  dp[i][w] = max(dp[i-1][w], value(i) + dp[i-1][w-weight(i)])   otherwise
//
//	The answer is dp[n][W].
//
// ✨ Key features:
//   - FullTable mode: the whole (n+1)×(W+1) table, supports item recovery
//   - TwoRows mode: two rolling rows, O(W) memory, value only
//   - the table is sized from the instance itself on every call; there is no
//     fixed buffer to overflow
//
// ⚙️ Usage:
//
//	opts := dp.DefaultOptions()
//	opts.ReturnItems = true
//	res, err := dp.Solve(items, 50, &opts)
//	// res.Value, res.Items (chosen IDs, ascending)
//
// Performance:
//
//   - Time:   O(n·W)
//   - Memory: O(n·W) (FullTable) or O(W) (TwoRows)
package dp
