package dp

import "errors"

// Sentinel errors returned by the DP solver.
var (
	// ErrNegativeCapacity indicates capacity < 0.
	ErrNegativeCapacity = errors.New("dp: capacity must be non-negative")

	// ErrItemsNeedTable indicates ReturnItems was requested without FullTable.
	ErrItemsNeedTable = errors.New("dp: ReturnItems requires MemoryMode=FullTable")

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = errors.New("dp: unknown memory mode")

	// ErrTableTooLarge indicates the table for this instance would exceed MaxCells.
	ErrTableTooLarge = errors.New("dp: table too large")
)

// MaxCells caps the number of int cells Solve allocates (256 MiB on 64-bit).
const MaxCells = 1 << 25

// MemoryMode controls how the DP table is stored.
//
//   - FullTable - keep all (n+1)×(W+1) cells; allows recovering the chosen items.
//   - TwoRows   - keep only the previous and current rows; value only.
type MemoryMode int

const (
	// FullTable stores every row.
	FullTable MemoryMode = iota

	// TwoRows stores two rolling rows.
	TwoRows
)

// String returns the configuration name of the mode.
func (m MemoryMode) String() string {
	switch m {
	case FullTable:
		return "full"
	case TwoRows:
		return "tworows"
	default:
		return "unknown"
	}
}

// ParseMemoryMode maps "full" / "tworows" back to a MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch s {
	case "full", "":
		return FullTable, nil
	case "tworows":
		return TwoRows, nil
	default:
		return 0, ErrBadMemoryMode
	}
}

// Options configures Solve.
//
//   - MemoryMode  - FullTable or TwoRows.
//   - ReturnItems - backtrack the table and report the chosen item IDs.
//     Requires FullTable.
type Options struct {
	MemoryMode  MemoryMode
	ReturnItems bool
}

// DefaultOptions returns FullTable without item recovery.
func DefaultOptions() Options {
	return Options{MemoryMode: FullTable}
}

// Result is the outcome of Solve.
type Result struct {
	// Value is dp[n][capacity], the exact 0/1 optimum.
	Value int

	// Items holds the chosen IDs in ascending order when ReturnItems is set,
	// nil otherwise.
	Items []int
}
