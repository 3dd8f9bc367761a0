// Package order types and sentinel errors.
package order

import "errors"

// Sentinel errors for order sampling.
var (
	// ErrOrderLength indicates a partial order whose length differs from
	// the requested permutation size.
	ErrOrderLength = errors.New("order: partial order length must equal vertex count")

	// ErrOffsetRange indicates a shuffle offset outside [0, len(vec)].
	ErrOffsetRange = errors.New("order: shuffle offset out of range")

	// ErrTieMethod indicates an unsupported tie-breaking method.
	ErrTieMethod = errors.New("order: unsupported tie method")
)

// TieMethod selects how Rank breaks ties between equal keys.
type TieMethod int

const (
	// TieRandom breaks ties uniformly at random: equal keys receive a
	// random permutation of the rank positions they jointly occupy.
	TieRandom TieMethod = iota
)
