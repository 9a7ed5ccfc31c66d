package mathx

import (
	"errors"
	"math"
)

var (
	// ErrNoSignChange indicates that f(lo) and f(hi) have the same sign.
	ErrNoSignChange = errors.New("mathx: no sign change in bracket")

	// ErrNoConvergence indicates that bisection exhausted its iterations.
	ErrNoConvergence = errors.New("mathx: bisection did not converge")
)

// Sum returns the sum of xs.
func Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

// Dot returns Σ a[i]*b[i] over the shorter of the two slices.
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))
	var s float64
	for i := 0; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

// Finite reports whether x is neither NaN nor ±Inf.
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// CeilInt rounds x up to the next int.
func CeilInt(x float64) int {
	return int(math.Ceil(x))
}

// Bisect finds a root of f inside [lo, hi].
//
// It stops when |f(mid)| < tol or the bracket width drops below tol, and
// returns ErrNoSignChange when f(lo) and f(hi) do not bracket a root.
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, error) {
	fLo, fHi := f(lo), f(hi)
	if fLo == 0 {
		return lo, nil
	}
	if fHi == 0 {
		return hi, nil
	}
	if math.IsNaN(fLo) || math.IsNaN(fHi) || fLo*fHi > 0 {
		return 0, ErrNoSignChange
	}

	for i := 0; i < maxIter; i++ {
		mid := 0.5 * (lo + hi)
		fMid := f(mid)
		if math.Abs(fMid) < tol || (hi-lo) < tol {
			return mid, nil
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo, fLo = mid, fMid
		}
	}
	return 0, ErrNoConvergence
}
