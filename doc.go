// Package knapsack is a small warehouse-packing toolkit: three strategies for
// the knapsack problem over one shared item model, plus a driver that runs
// them side by side.
//
// 🚀 What is knapsack?
//
//	Given items with a positive integer weight and a non-negative integer
//	value, and a warehouse of integer capacity, find the most valuable load:
//		• Exact 0/1 optimum by dynamic programming (dp)
//		• Fractional optimum by greedy value/weight ratio (greedy)
//		• Exact 0/1 optimum by Branch-and-Bound with a fractional bound (bnb)
//
// ✨ Key features
//
//   - One validation path – limits, count, capacity, then items; first failure wins
//   - No hidden state – every call owns its tables and its incumbent
//   - Explainable results – selected IDs, fractional portions, B&B node counts
//   - Cross-checked – DP and B&B must agree, the relaxation must dominate both
//
// Under the hood:
//
//	item/              - Item, Limits, sentinel errors, validation, ratio sort
//	dp/                - bottom-up table, full or two-row memory
//	greedy/            - fractional greedy and the Relax bound helper
//	bnb/               - depth-first include/exclude search with pruning
//	compare/           - runs all three on private copies, spans + slog
//	internal/problem   - YAML loader and interactive prompt
//	internal/config    - flags, KNAPSACK_* env, config file, .env
//	internal/report    - plain, table and JSON renderings
//	internal/telemetry - OpenTelemetry tracer provider
//	cmd/knapsack       - the CLI
//
// Quick example (capacity 50):
//
//	weight: 10  20  30
//	value:  60 100 120
//
//	0/1 optimum 220 (items 2 and 3), fractional optimum 240.
//
//	go install github.com/katalvlaran/knapsack/cmd/knapsack@latest
package knapsack
