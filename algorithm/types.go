// Package algorithm defines configuration options and sentinel errors for
// the grid traversal and search functions.
package algorithm

import (
	"errors"
	"math"
)

// Sentinel errors for algorithm operations.
var (
	// ErrOutOfBounds indicates a search endpoint outside the grid.
	ErrOutOfBounds = errors.New("algorithm: coordinate out of grid bounds")

	// ErrNegativeCost indicates the cost function returned a negative value
	// during path expansion. Costs must be non-negative, and must be ≥ 1 for
	// the Manhattan heuristic to stay admissible.
	ErrNegativeCost = errors.New("algorithm: negative tile cost")

	// ErrBadMaxCost indicates WithMaxCost was given a negative cap.
	ErrBadMaxCost = errors.New("algorithm: MaxCost must be non-negative")

	// ErrBadImpassableCost indicates WithImpassableCost was given a
	// non-positive threshold, which would wall off every tile.
	ErrBadImpassableCost = errors.New("algorithm: ImpassableCost must be positive")
)

// Options configures ShortestPath.
//
// MaxCost        – cap on accumulated path cost; cells beyond it are not
// explored. Default math.MaxInt (no cap).
// ImpassableCost – tiles whose cost is ≥ this threshold are treated as
// walls and never entered. Default math.MaxInt (no walls beyond what the
// cost function encodes).
type Options struct {
	MaxCost        int // Maximum accumulated cost to explore
	ImpassableCost int // Cost threshold above which a tile is a wall
}

// Option is a functional option for configuring ShortestPath.
type Option func(*Options)

// DefaultOptions returns an Options with no cost cap and no impassable
// threshold.
func DefaultOptions() Options {
	return Options{
		MaxCost:        math.MaxInt,
		ImpassableCost: math.MaxInt,
	}
}

// WithMaxCost caps the accumulated path cost; candidate steps that would
// exceed the cap are not explored, so a target beyond it reports as
// unreachable (empty path). Negative caps panic with ErrBadMaxCost.
func WithMaxCost(cap int) Option {
	return func(o *Options) {
		if cap < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = cap
	}
}

// WithImpassableCost treats tiles whose cost is ≥ threshold as walls.
// Non-positive thresholds panic with ErrBadImpassableCost.
func WithImpassableCost(threshold int) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadImpassableCost.Error())
		}
		o.ImpassableCost = threshold
	}
}
