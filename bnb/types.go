package bnb

import "errors"

// Sentinel errors returned by the branch-and-bound solver.
var (
	// ErrNegativeCapacity indicates capacity < 0.
	ErrNegativeCapacity = errors.New("bnb: capacity must be non-negative")

	// ErrUnsupportedBound indicates an unknown BoundAlgo.
	ErrUnsupportedBound = errors.New("bnb: unsupported bound algorithm")
)

// BoundAlgo selects the upper bound used for pruning.
type BoundAlgo int

const (
	// FractionalBound prunes with the fractional relaxation of the remaining
	// items (greedy.Relax). This is the default.
	FractionalBound BoundAlgo = iota

	// NoBound disables pruning and enumerates every feasible decision path.
	// Testing and benchmarking only.
	NoBound
)

// String returns the configuration name of the bound.
func (b BoundAlgo) String() string {
	switch b {
	case FractionalBound:
		return "fractional"
	case NoBound:
		return "none"
	default:
		return "unknown"
	}
}

// ParseBoundAlgo maps "fractional" / "none" back to a BoundAlgo.
func ParseBoundAlgo(s string) (BoundAlgo, error) {
	switch s {
	case "fractional", "":
		return FractionalBound, nil
	case "none":
		return NoBound, nil
	default:
		return 0, ErrUnsupportedBound
	}
}

// Options configures Solve.
type Options struct {
	BoundAlgo BoundAlgo
}

// DefaultOptions returns the fractional bound policy.
func DefaultOptions() Options {
	return Options{BoundAlgo: FractionalBound}
}

// Stats counts search events of one run.
type Stats struct {
	Nodes  int // dfs frames entered, leaves included
	Pruned int // child branches cut because bound ≤ best
}

// Result is the outcome of Solve.
type Result struct {
	// Value is the exact 0/1 optimum.
	Value int

	// Items are the original IDs of one optimal selection, ascending.
	Items []int

	Stats Stats
}
