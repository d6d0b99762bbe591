package is456

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_rebar01(tst *testing.T) {

	chk.PrintTitle("rebar01. odd symmetry of both laws")

	bars := []Rebar{NewMildSteel(250), NewHYSD(415), NewHYSD(500)}
	for _, bar := range bars {
		for i := 0; i <= 200; i++ {
			es := 0.00005 * float64(i)
			if bar.Fs(-es) != -bar.Fs(es) {
				tst.Errorf("%s: fs(-%g)=%g, -fs(%g)=%g", bar.Name(), es, bar.Fs(-es), es, -bar.Fs(es))
				return
			}
		}
	}
}

func Test_rebar02(tst *testing.T) {

	chk.PrintTitle("rebar02. mild steel is elastic-ideal plastic")

	ms := NewMildSteel(250)
	fd := 250 * 100.0 / 115.0
	chk.Float64(tst, "fd", 1e-12, ms.Fd(), fd)
	chk.Float64(tst, "elastic", 1e-12, ms.Fs(0.0005), 100)
	chk.Float64(tst, "yield", 1e-9, ms.Fs(fd/Es), fd)
	chk.Float64(tst, "plastic", 1e-12, ms.Fs(0.01), fd)
	chk.Float64(tst, "plastic comp", 1e-12, ms.Fs(-0.01), -fd)
}

func Test_rebar03(tst *testing.T) {

	chk.PrintTitle("rebar03. HYSD table and curve")

	h := NewHYSD(415)
	fd := h.Fd()
	t := h.Table()

	chk.Float64(tst, "first point", 1e-15, t[0][0], 0)
	chk.Float64(tst, "0.8fd strain", 1e-15, t[1][0], 0.8*fd/Es)
	chk.Float64(tst, "last strain", 1e-15, t[6][0], fd/Es+0.002)
	chk.Float64(tst, "last stress", 1e-12, t[6][1], fd)

	// the curve passes through its table points
	for i := 1; i < len(t); i++ {
		chk.Float64(tst, "table point", 1e-9, h.Fs(t[i][0]), t[i][1])
	}

	chk.Float64(tst, "elastic", 1e-12, h.Fs(0.001), 200)
	chk.Float64(tst, "plateau", 1e-12, h.Fs(0.01), fd)

	// midway between the 0.9 and 0.95 points
	es := 0.5 * (t[3][0] + t[4][0])
	chk.Float64(tst, "interpolated", 1e-9, h.Fs(es), 0.925*fd)

	prev := 0.0
	for i := 0; i <= 400; i++ {
		fs := h.Fs(0.00001 * float64(i))
		if fs < prev {
			tst.Errorf("fs decreasing at step %d", i)
			return
		}
		prev = fs
	}
}

func Test_rebar04(tst *testing.T) {

	chk.PrintTitle("rebar04. grade labels")

	bar, err := ParseRebar("Fe500")
	if err != nil {
		tst.Errorf("Fe500: %v", err)
		return
	}
	if _, ok := bar.(HYSD); !ok {
		tst.Errorf("Fe500 should be HYSD, got %T", bar)
	}
	if bar.Name() != "Fe 500" {
		tst.Errorf("name: got %q", bar.Name())
	}

	for _, label := range []string{"MS250", "Fe 250"} {
		bar, err = ParseRebar(label)
		if err != nil {
			tst.Errorf("%s: %v", label, err)
			return
		}
		if _, ok := bar.(MildSteel); !ok {
			tst.Errorf("%s should be mild steel, got %T", label, bar)
		}
	}

	for _, label := range []string{"", "Grade60", "Fe", "FeX"} {
		if _, err := ParseRebar(label); !errors.Is(err, ErrUnknownGrade) {
			tst.Errorf("%q: expected ErrUnknownGrade, got %v", label, err)
		}
	}
}
