package item

import (
	"errors"
	"math"
)

// Sentinel errors returned by the item package.
var (
	// ErrNonPositiveWeight indicates an item whose weight is zero or negative.
	// Such an item has no defined value density and could be packed without
	// consuming capacity.
	ErrNonPositiveWeight = errors.New("item: weight must be positive")

	// ErrNegativeValue indicates an item with a negative value.
	ErrNegativeValue = errors.New("item: value must be non-negative")

	// ErrLengthMismatch indicates that weights and values differ in length.
	ErrLengthMismatch = errors.New("item: weights and values differ in length")

	// ErrInvalidCount indicates an item count outside [0, MaxItems].
	ErrInvalidCount = errors.New("item: invalid number of items")

	// ErrInvalidCapacity indicates a capacity outside [0, MaxCapacity].
	ErrInvalidCapacity = errors.New("item: invalid capacity")

	// ErrInvalidItem wraps a per-item validation failure (weight or value).
	ErrInvalidItem = errors.New("item: invalid item")

	// ErrWeightOutOfRange indicates a weight above MaxWeight.
	ErrWeightOutOfRange = errors.New("item: weight out of range")

	// ErrValueOutOfRange indicates a value above MaxValue.
	ErrValueOutOfRange = errors.New("item: value out of range")

	// ErrInvalidLimits indicates that a Limits value has a negative bound.
	ErrInvalidLimits = errors.New("item: limits must be non-negative")
)

const (
	// MaxItems is the item bound for exact search (bnb and the comparison run).
	MaxItems = 15

	// MaxCapacity is the capacity bound for exact search.
	MaxCapacity = 100

	// MaxWeight bounds a single item's weight.
	MaxWeight = math.MaxInt32

	// MaxValue bounds a single item's value; sums of up to 2^32 values stay
	// within int64.
	MaxValue = math.MaxInt32

	// MaxItemsDP is the item bound of the DP-only variant.
	MaxItemsDP = 50

	// MaxCapacityDP is the capacity bound of the DP-only variant.
	MaxCapacityDP = 50
)

// Item is one packable good.
//
//   - ID     - stable 1-based position in the original input.
//   - Weight - in [1, MaxWeight].
//   - Value  - in [0, MaxValue].
//   - Ratio  - Value/Weight; only meaningful after ComputeRatio and must be
//     recomputed if Weight or Value change.
type Item struct {
	ID     int
	Weight int
	Value  int
	Ratio  float64
}

// Limits bounds an input instance.
type Limits struct {
	MaxItems    int // inclusive upper bound on len(items)
	MaxCapacity int // inclusive upper bound on capacity
}

// DefaultLimits returns the exact-search bounds {MaxItems, MaxCapacity}.
func DefaultLimits() Limits {
	return Limits{MaxItems: MaxItems, MaxCapacity: MaxCapacity}
}

// DPLimits returns the bounds of the DP-only variant.
func DPLimits() Limits {
	return Limits{MaxItems: MaxItemsDP, MaxCapacity: MaxCapacityDP}
}
