package solver

import "errors"

var (
	// ErrNoItems is returned when the instance contains no items.
	ErrNoItems = errors.New("instance must contain at least one item")
	// ErrNonPositiveMajorSetup is returned when the major setup cost A is zero or negative.
	ErrNonPositiveMajorSetup = errors.New("major setup cost A must be positive")
	// ErrNonPositiveHoldingRate is returned when the holding charge rate r is zero or negative.
	ErrNonPositiveHoldingRate = errors.New("holding charge rate r must be positive")
	// ErrDegenerateInstance is returned when no item has positive demand-value,
	// which leaves the base cycle undefined.
	ErrDegenerateInstance = errors.New("no item has positive demand and unit value")
)
