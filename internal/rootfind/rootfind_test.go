package rootfind

import (
	"errors"
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func cubic(x float64) float64 {
	return 2.5*x*x*x - 3*x*x - 6*x + 2
}

func Test_bracket01(tst *testing.T) {

	chk.PrintTitle("bracket01. each real root of the cubic")

	for _, rng := range [][2]float64{{0, 1}, {1, 3}, {-2, -1}} {
		x1, x2, err := FindBracket(cubic, rng[0], rng[1], 100)
		if err != nil {
			tst.Errorf("find bracket on %v failed: %v", rng, err)
			return
		}
		if x1 < rng[0] || x2 > rng[1] || x1 > x2 {
			tst.Errorf("bracket [%g, %g] outside %v", x1, x2, rng)
			return
		}
		if cubic(x1)*cubic(x2) > 0 {
			tst.Errorf("bracket [%g, %g] has no sign change", x1, x2)
			return
		}

		xb, err := Brent(cubic, x1, x2, 100, 1e-12)
		if err != nil {
			tst.Errorf("brent failed: %v", err)
			return
		}
		xs, err := Bisection(cubic, x1, x2, 100, 1e-12)
		if err != nil {
			tst.Errorf("bisection failed: %v", err)
			return
		}
		chk.Float64(tst, "brent vs bisection", 1e-9, xb, xs)
		chk.Float64(tst, "f(root)", 1e-9, cubic(xb), 0)
	}
}

func Test_bracket02(tst *testing.T) {

	chk.PrintTitle("bracket02. whole interval returns the first sign change")

	x1, x2, err := FindBracket(cubic, -10, 10, 100)
	if err != nil {
		tst.Errorf("find bracket failed: %v", err)
		return
	}
	chk.Float64(tst, "x1", 1e-12, x1, -1.4)
	chk.Float64(tst, "x2", 1e-12, x2, -1.2)
}

func Test_bracket03(tst *testing.T) {

	chk.PrintTitle("bracket03. exact zero at a node")

	f := func(x float64) float64 { return x - 0.5 }
	x1, x2, err := FindBracket(f, 0, 1, 4)
	if err != nil {
		tst.Errorf("find bracket failed: %v", err)
		return
	}
	chk.Float64(tst, "x1", 1e-15, x1, 0.5)
	chk.Float64(tst, "x2", 1e-15, x2, 0.5)

	x, err := Brent(f, x1, x2, 10, 1e-12)
	if err != nil {
		tst.Errorf("brent on degenerate bracket failed: %v", err)
		return
	}
	chk.Float64(tst, "root", 1e-15, x, 0.5)
}

func Test_bracket04(tst *testing.T) {

	chk.PrintTitle("bracket04. failures")

	if _, _, err := FindBracket(cubic, 0, 1, 0); !errors.Is(err, ErrInvalidArgument) {
		tst.Errorf("n=0: expected ErrInvalidArgument, got %v", err)
	}

	square := func(x float64) float64 { return x*x + 1 }
	if _, _, err := FindBracket(square, -5, 5, 50); !errors.Is(err, ErrNoBracket) {
		tst.Errorf("x^2+1: expected ErrNoBracket, got %v", err)
	}
	if _, err := Brent(cubic, 1.5, 2.0, 30, 1e-12); !errors.Is(err, ErrNoBracket) {
		tst.Errorf("brent same sign: expected ErrNoBracket, got %v", err)
	}
	if _, err := Bisection(cubic, 1.5, 2.0, 30, 1e-12); !errors.Is(err, ErrNoBracket) {
		tst.Errorf("bisection same sign: expected ErrNoBracket, got %v", err)
	}
}

func Test_bracket05(tst *testing.T) {

	chk.PrintTitle("bracket05. iteration budget")

	if _, err := Bisection(cubic, 0, 1, 3, 1e-12); !errors.Is(err, ErrNoConvergence) {
		tst.Errorf("bisection: expected ErrNoConvergence, got %v", err)
	}
	if _, err := Brent(cubic, -10, 10, 2, 1e-15); !errors.Is(err, ErrNoConvergence) {
		tst.Errorf("brent: expected ErrNoConvergence, got %v", err)
	}
}

func Test_bracket06(tst *testing.T) {

	chk.PrintTitle("bracket06. closure carries the extra parameters")

	quad := func(a, b, c float64) Func {
		return func(x float64) float64 { return a*x*x + b*x + c }
	}
	f := quad(2, -3, -4)
	x1, x2, err := FindBracket(f, -10, 10, 100)
	if err != nil {
		tst.Errorf("find bracket failed: %v", err)
		return
	}
	x, err := Brent(f, x1, x2, DefaultMaxIter, DefaultTol)
	if err != nil {
		tst.Errorf("brent failed: %v", err)
		return
	}
	chk.Float64(tst, "root", 1e-10, x, (3-math.Sqrt(41))/4)
}
