// SPDX-License-Identifier: MIT

package capacity

import "errors"

var (
	// ErrNoDimensions indicates an empty bound vector.
	ErrNoDimensions = errors.New("capacity: bound vector must have at least one dimension")

	// ErrNegativeBound indicates a bound component below zero.
	ErrNegativeBound = errors.New("capacity: bound must be non-negative")

	// ErrOverflow indicates that Π(bound_d+1) does not fit in an int.
	ErrOverflow = errors.New("capacity: state count overflows int")
)
