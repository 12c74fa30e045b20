package coords

import (
	"fmt"
	"math"
)

// Number is the set of numeric types a Pixel component may be projected
// into. Callers compose X/Y pairs of their own point types from it.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// XY projects both components of p into the numeric type N, for assembling
// caller-side point types with narrower fields. Fractional parts are
// truncated toward zero for integer targets; a component outside N's range
// (or a NaN/Inf component with an integer target) fails with ErrOverflow
// rather than wrapping or saturating silently.
// Complexity: O(1).
func XY[N Number](p Pixel) (x, y N, err error) {
	if x, err = Component[N](p.X); err != nil {
		return 0, 0, err
	}
	if y, err = Component[N](p.Y); err != nil {
		return 0, 0, err
	}

	return x, y, nil
}

// Component converts a single pixel component to N with range checking.
// See XY for the conversion rules.
func Component[N Number](v float64) (N, error) {
	var zero N

	// Float targets: only an overflow to ±Inf on a finite input is an error;
	// precision loss is inherent to the narrower type.
	if isFloat[N]() {
		n := N(v)
		if math.IsInf(float64(n), 0) && !math.IsInf(v, 0) {
			return zero, fmt.Errorf("%w: %g", ErrOverflow, v)
		}

		return n, nil
	}

	// Integer targets: reject non-finite input, then truncate and verify the
	// value survives a round trip through the widest carrier of its sign.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return zero, fmt.Errorf("%w: %g", ErrOverflow, v)
	}
	t := math.Trunc(v)
	if isSigned[N]() {
		if t < -math.Ldexp(1, 63) || t >= math.Ldexp(1, 63) {
			return zero, fmt.Errorf("%w: %g", ErrOverflow, v)
		}
		i := int64(t)
		n := N(i)
		if int64(n) != i {
			return zero, fmt.Errorf("%w: %g", ErrOverflow, v)
		}

		return n, nil
	}
	if t < 0 || t >= math.Ldexp(1, 64) {
		return zero, fmt.Errorf("%w: %g", ErrOverflow, v)
	}
	u := uint64(t)
	n := N(u)
	if uint64(n) != u {
		return zero, fmt.Errorf("%w: %g", ErrOverflow, v)
	}

	return n, nil
}

// isFloat reports whether N is a floating-point type: 1/2 keeps the
// fraction only for float kinds.
func isFloat[N Number]() bool {
	var one, two N = 1, 2

	return one/two != 0
}

// isSigned reports whether N is a signed kind; unsigned kinds wrap N(0)-1
// around to their maximum.
func isSigned[N Number]() bool {
	var zero N

	return zero-1 < zero
}
