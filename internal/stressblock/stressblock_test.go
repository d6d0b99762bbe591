package stressblock

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gorcsec/internal/is456"
	"github.com/cpmech/gosl/chk"
)

func Test_block01(tst *testing.T) {

	chk.PrintTitle("block01. balanced block coefficients")

	b, err := New(1)
	if err != nil {
		tst.Errorf("New failed: %v", err)
		return
	}
	chk.Float64(tst, "alpha", 1e-15, b.AlphaK, 4.0/7.0)

	area, err := b.Area(0, 4.0/7.0)
	if err != nil {
		tst.Errorf("area failed: %v", err)
		return
	}
	chk.Float64(tst, "area(0, 4/7)", 1e-14, area, 2.0/3.0*4.0/7.0)

	area, _ = b.Area(0, 1)
	chk.Float64(tst, "area(0, 1)", 1e-14, area, 17.0/21.0)

	m, _ := b.Moment(0, 1)
	chk.Float64(tst, "moment(0, 1)", 1e-14, m, 139.0/294.0)

	c, _ := b.Centroid(0, 1)
	chk.Float64(tst, "centroid(0, 1)", 1e-14, c, 99.0/238.0)

	// 4/9 of the area gives the familiar 0.36 fck
	chk.Float64(tst, "0.36 fck", 2e-3, 4.0/9.0*area, 0.36)
}

func Test_block02(tst *testing.T) {

	chk.PrintTitle("block02. reversed ranges and splitting")

	b, _ := New(0.5)
	a1, _ := b.Area(0.1, 0.4)
	a2, _ := b.Area(0.4, 0.1)
	chk.Float64(tst, "swap", 1e-15, a1, a2)

	par, con, err := b.ZValues(0, 0.5)
	if err != nil {
		tst.Errorf("ZValues failed: %v", err)
		return
	}
	if !par.Valid || !con.Valid {
		tst.Errorf("expected both parts, got %v %v", par, con)
		return
	}
	chk.Float64(tst, "split", 1e-15, par.Z2, b.AlphaK)
	chk.Float64(tst, "split", 1e-15, con.Z1, b.AlphaK)

	par, con, _ = b.ZValues(0, 0.1)
	if !par.Valid || con.Valid {
		tst.Errorf("expected parabolic part only, got %v %v", par, con)
	}
	par, con, _ = b.ZValues(0.4, 0.5)
	if par.Valid || !con.Valid {
		tst.Errorf("expected constant part only, got %v %v", par, con)
	}

	// additivity
	left, _ := b.Area(0, 0.2)
	right, _ := b.Area(0.2, 0.5)
	whole, _ := b.Area(0, 0.5)
	chk.Float64(tst, "additive", 1e-14, left+right, whole)
}

func Test_block03(tst *testing.T) {

	chk.PrintTitle("block03. neutral axis outside the section")

	b, _ := New(2)
	chk.Float64(tst, "alpha", 1e-15, b.AlphaK, 2-3.0/7.0)

	lo, hi := b.Domain()
	chk.Float64(tst, "lo", 1e-15, lo, 1)
	chk.Float64(tst, "hi", 1e-15, hi, 2)

	area, err := b.Area(1, 2)
	if err != nil {
		tst.Errorf("area failed: %v", err)
		return
	}
	chk.Float64(tst, "area", 1e-12, area, 0.9748130657221565)

	if _, err := b.Area(0.5, 2); !errors.Is(err, ErrOutOfDomain) {
		tst.Errorf("expected ErrOutOfDomain, got %v", err)
	}
}

func Test_block04(tst *testing.T) {

	chk.PrintTitle("block04. closed forms match the material law")

	conc := is456.NewConcrete(25)
	fd := conc.Fd()

	for _, k := range []float64{0.3, 0.8, 1.0, 1.4, 3.0} {
		b, _ := New(k)
		lo, hi := b.Domain()

		// midpoint rule on the stress at strain EcY·z/AlphaK
		n := 20000
		dz := (hi - lo) / float64(n)
		area, moment := 0.0, 0.0
		for i := 0; i < n; i++ {
			z := lo + (float64(i)+0.5)*dz
			s := conc.Fc(is456.EcY*z/b.AlphaK) / fd
			area += s * dz
			moment += s * z * dz
		}

		a, _ := b.Area(lo, hi)
		m, _ := b.Moment(lo, hi)
		chk.Float64(tst, "area", 1e-7, a, area)
		chk.Float64(tst, "moment", 1e-7, m, moment)
	}
}

func Test_block05(tst *testing.T) {

	chk.PrintTitle("block05. failures and the empty block")

	if _, err := New(-0.1); !errors.Is(err, ErrInvalidK) {
		tst.Errorf("expected ErrInvalidK, got %v", err)
	}

	b, _ := New(0.5)
	if _, err := b.Area(0, 0.6); !errors.Is(err, ErrOutOfDomain) {
		tst.Errorf("expected ErrOutOfDomain, got %v", err)
	}

	// rounding on the upper limit is tolerated
	if _, err := b.Area(0, 0.5+1e-12); err != nil {
		tst.Errorf("tolerance: %v", err)
	}

	z, _ := New(0)
	area, centroid, err := z.Whole()
	if err != nil {
		tst.Errorf("empty block: %v", err)
		return
	}
	chk.Float64(tst, "area", 1e-15, area, 0)
	chk.Float64(tst, "centroid", 1e-15, centroid, 0)

	if _, err := z.Centroid(0, 0); !errors.Is(err, ErrOutOfDomain) {
		tst.Errorf("expected ErrOutOfDomain for the empty centroid, got %v", err)
	}
}
