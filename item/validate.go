// Package item - input validation shared by every solver entry point.
//
// Validation order (first failure wins, whole instance rejected):
//  1. Limits themselves (non-negative bounds).
//  2. Item count in [0, MaxItems].
//  3. Capacity in [0, MaxCapacity].
//  4. Every item: Weight in [1, MaxWeight], then Value in [0, MaxValue].
//
// Deterministic, side-effect free; no logging, only sentinel errors from types.go.
package item

import "fmt"

// Validate checks a full instance against lim.
//
// Complexity: O(n).
func Validate(items []Item, capacity int, lim Limits) error {
	// Stage 1: limits sanity.
	if lim.MaxItems < 0 || lim.MaxCapacity < 0 {
		return ErrInvalidLimits
	}

	// Stage 2: count.
	if err := ValidateCount(len(items), lim); err != nil {
		return err
	}

	// Stage 3: capacity.
	if err := ValidateCapacity(capacity, lim); err != nil {
		return err
	}

	// Stage 4: per-item checks, reported with the offending ID.
	return CheckAll(items)
}

// ValidateCount checks 0 ≤ n ≤ lim.MaxItems.
func ValidateCount(n int, lim Limits) error {
	if n < 0 || n > lim.MaxItems {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidCount, n, lim.MaxItems)
	}

	return nil
}

// ValidateCapacity checks 0 ≤ capacity ≤ lim.MaxCapacity.
func ValidateCapacity(capacity int, lim Limits) error {
	if capacity < 0 || capacity > lim.MaxCapacity {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidCapacity, capacity, lim.MaxCapacity)
	}

	return nil
}

// CheckAll verifies the per-item contract only (no count/capacity bounds).
// Solvers call it before computing ratios so a zero weight never reaches a division.
func CheckAll(items []Item) error {
	var i int
	for i = range items {
		if err := Check(items[i]); err != nil {
			return fmt.Errorf("%w %d: %w", ErrInvalidItem, items[i].ID, err)
		}
	}

	return nil
}
