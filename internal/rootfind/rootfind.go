// Package rootfind provides the bracketing and root-finding routines used by the
// section design searches: an equal-interval bracket scan, Brent's method and bisection.
//
// Every routine takes the governing equation as a closure. Callers bind whatever extra
// parameters the equation needs (target moment, required eccentricity, trial neutral axis)
// when they build the closure, so the same solver serves every design search.
package rootfind

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidArgument is returned for a non-positive interval count or iteration budget.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoBracket is returned when no sign change is found, or when the ends of a
	// supplied bracket share a sign.
	ErrNoBracket = errors.New("no bracket found")

	// ErrNoConvergence is returned when the iteration budget is exhausted.
	ErrNoConvergence = errors.New("did not converge")
)

// Default iteration budget and tolerance
const (
	DefaultMaxIter = 30
	DefaultTol     = 1e-12
)

// Func is a scalar equation f(x) whose root is sought
type Func func(x float64) float64

// FindBracket divides [xStart, xEnd] into n equal parts and returns the first pair of
// adjacent nodes at which f changes sign. A node at which f is exactly zero is returned
// as the degenerate bracket (x, x).
func FindBracket(f Func, xStart, xEnd float64, n int) (float64, float64, error) {
	if n <= 0 {
		return 0, 0, fmt.Errorf("find bracket: n=%d must be positive: %w", n, ErrInvalidArgument)
	}

	dx := (xEnd - xStart) / float64(n)

	xPrev := xStart
	fPrev := f(xPrev)
	if fPrev == 0 {
		return xPrev, xPrev, nil
	}

	for i := 1; i <= n; i++ {
		xCurr := xStart + float64(i)*dx
		if i == n {
			// avoid stepping past xEnd through rounding
			xCurr = xEnd
		}
		fCurr := f(xCurr)

		if fPrev*fCurr < 0 {
			return xPrev, xCurr, nil
		}
		if fCurr == 0 {
			return xCurr, xCurr, nil
		}

		xPrev, fPrev = xCurr, fCurr
	}

	return 0, 0, fmt.Errorf("find bracket: [%g, %g] with %d intervals: %w", xStart, xEnd, n, ErrNoBracket)
}

// Brent finds a root of f inside the bracket [x1, x2] with Brent's method: inverse
// quadratic interpolation or a secant step when the step stays well inside the bracket,
// bisection otherwise.
func Brent(f Func, x1, x2 float64, maxIter int, tol float64) (float64, error) {
	if maxIter <= 0 {
		return 0, fmt.Errorf("brent: maxIter=%d: %w", maxIter, ErrInvalidArgument)
	}

	a, b := x1, x2
	fa, fb := f(a), f(b)

	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if sameSign(fa, fb) {
		return 0, fmt.Errorf("brent: interval [%g, %g] does not bracket a root: %w", x1, x2, ErrNoBracket)
	}

	c, fc := b, fb
	var d, e float64

	for iter := 0; iter < maxIter; iter++ {
		if sameSign(fb, fc) {
			// b and c on the same side: restore the bracket from a
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tolAct := 2 * tol * math.Max(math.Abs(b), 1.0)
		m := 0.5 * (c - b)

		if math.Abs(m) <= tolAct || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tolAct && math.Abs(fa) > math.Abs(fb) {
			var p, q float64
			s := fb / fa
			if a == c {
				// secant
				p = 2 * m * s
				q = 1 - s
			} else {
				// inverse quadratic interpolation
				qq := fa / fc
				r := fb / fc
				p = s * (2*m*qq*(qq-r) - (b-a)*(r-1))
				q = (qq - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)

			if 2*p < math.Min(3*m*q-math.Abs(tolAct*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = m
			}
		} else {
			d = m
			e = m
		}

		a, fa = b, fb
		if math.Abs(d) > tolAct {
			b += d
		} else {
			b += math.Copysign(tolAct, m)
		}
		fb = f(b)
	}

	return 0, fmt.Errorf("brent: after %d iterations: %w", maxIter, ErrNoConvergence)
}

// Bisection finds a root of f inside the bracket [x1, x2] by repeated halving. It
// converges when |f| at the midpoint falls below tol.
func Bisection(f Func, x1, x2 float64, maxIter int, tol float64) (float64, error) {
	if maxIter <= 0 {
		return 0, fmt.Errorf("bisection: maxIter=%d: %w", maxIter, ErrInvalidArgument)
	}

	f1, f2 := f(x1), f(x2)

	if f1 == 0 {
		return x1, nil
	}
	if f2 == 0 {
		return x2, nil
	}
	if sameSign(f1, f2) {
		return 0, fmt.Errorf("bisection: interval [%g, %g] does not bracket a root: %w", x1, x2, ErrNoBracket)
	}

	for iter := 0; iter < maxIter; iter++ {
		xm := 0.5 * (x1 + x2)
		fm := f(xm)

		if math.Abs(fm) < tol {
			return xm, nil
		}

		if f1*fm < 0 {
			x2 = xm
		} else {
			x1, f1 = xm, fm
		}
	}

	return 0, fmt.Errorf("bisection: after %d iterations: %w", maxIter, ErrNoConvergence)
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
