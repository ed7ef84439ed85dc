// SPDX-License-Identifier: MIT

package number

import "math/big"

// RatRange is the closed interval [Start, EndInclusive] of rationals.
// A range whose start exceeds its end is empty.
type RatRange struct {
	start, end *big.Rat
}

// EmptyRatRange is the canonical empty range [1, 0].
var EmptyRatRange = NewRatRange(big.NewRat(1, 1), big.NewRat(0, 1))

// NewRatRange returns [start, endInclusive]. Nil bounds are read as zero.
func NewRatRange(start, endInclusive *big.Rat) RatRange {
	return RatRange{start: cloneRat(start), end: cloneRat(endInclusive)}
}

// Start returns a copy of the lower bound.
func (r RatRange) Start() *big.Rat { return cloneRat(r.start) }

// EndInclusive returns a copy of the upper bound.
func (r RatRange) EndInclusive() *big.Rat { return cloneRat(r.end) }

// IsEmpty reports whether no rational lies in r.
func (r RatRange) IsEmpty() bool { return r.lo().Cmp(r.hi()) > 0 }

// Contains reports whether start <= x <= endInclusive.
func (r RatRange) Contains(x *big.Rat) bool {
	if x == nil {
		x = ratZero
	}
	return r.lo().Cmp(x) <= 0 && x.Cmp(r.hi()) <= 0
}

func (r RatRange) lo() *big.Rat {
	if r.start == nil {
		return ratZero
	}
	return r.start
}

func (r RatRange) hi() *big.Rat {
	if r.end == nil {
		return ratZero
	}
	return r.end
}
