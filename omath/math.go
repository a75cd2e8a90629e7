package omath

import (
	"github.com/chewxy/math32"
)

// Epsilon is the default tolerance for the approximate comparisons in this package.
const Epsilon float32 = 1e-6

// gimbalLockThreshold is the |forward.y| at and above which EulerAngles treats the matrix as
// pointing straight up or down.
const gimbalLockThreshold float32 = 0.99999

// ClampFloat clamps the given value to the given range. If min > max, min wins.
func ClampFloat(num, min, max float32) float32 {
	return math32.Max(min, math32.Min(max, num))
}

// Float32ApproxEq determines whether two floating point numbers are within eps of each other.
func Float32ApproxEq(a, b, eps float32) bool {
	return math32.Abs(a-b) < eps
}

// Round32 rounds val to precision decimal places. Halves round away from zero.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Sign returns -1, 0 or 1 depending on the sign of f. NaN maps to 0.
func Sign(f float32) float32 {
	if f > 0 {
		return 1
	} else if f < 0 {
		return -1
	}
	return 0
}

// safeDiv divides a by b, returning 0 instead of an infinity or NaN when b is zero.
func safeDiv(a, b float32) float32 {
	if b != 0 {
		return a / b
	}
	return 0
}

// lerp interpolates between a and b so that t=0 and t=1 reproduce a and b exactly.
func lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}
