// Command knapsack compares the exact 0/1, fractional greedy and
// Branch-and-Bound knapsack strategies on one instance.
package main

import "github.com/katalvlaran/knapsack/cmd/knapsack/commands"

func main() {
	commands.Execute()
}
