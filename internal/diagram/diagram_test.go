package diagram

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gorcsec/internal/beam"
	"github.com/alexiusacademia/gorcsec/internal/column"
	"github.com/alexiusacademia/gorcsec/internal/is456"
	"github.com/cpmech/gosl/chk"
)

func testBeam() beam.RectSection {
	return beam.NewRectSection(230, 450, 25, is456.NewConcrete(20), is456.NewHYSD(415))
}

func Test_curves01(tst *testing.T) {

	chk.PrintTitle("curves01. sampled laws")

	cc, err := ConcreteCurve(is456.NewConcrete(20), 3)
	if err != nil {
		tst.Errorf("ConcreteCurve failed: %v", err)
		return
	}
	chk.Float64(tst, "fc(0)", 1e-15, cc[0].Y, 0)
	chk.Float64(tst, "fc(0.00175)", 1e-12, cc[1].Y, 8.75)
	chk.Float64(tst, "fc(EcU)", 1e-12, cc[2].Y, 80.0/9)

	rc, err := RebarCurve(is456.NewMildSteel(250), 0.004, 5)
	if err != nil {
		tst.Errorf("RebarCurve failed: %v", err)
		return
	}
	for i := range rc {
		j := len(rc) - 1 - i
		chk.Float64(tst, "odd", 1e-12, rc[i].Y, -rc[j].Y)
	}
	chk.Float64(tst, "fs(0.002)", 1e-12, rc[3].Y, 250*100.0/115)

	if _, err := ConcreteCurve(is456.NewConcrete(20), 1); !errors.Is(err, ErrTooFewPoints) {
		tst.Errorf("expected ErrTooFewPoints, got %v", err)
	}
	chk.Float64(tst, "εy HYSD", 1e-15, YieldStrain(is456.NewHYSD(415)), 415*100.0/115/2e5+0.002)
	chk.Float64(tst, "εy MS", 1e-15, YieldStrain(is456.NewMildSteel(250)), 250*100.0/115/2e5)
}

func Test_ascii01(tst *testing.T) {

	chk.PrintTitle("ascii01. beam diagrams")

	s := testBeam()
	data := FromBeam(s, 150, 1000, 0)
	chk.Float64(tst, "εst", 1e-15, data.EpsilonT, 0.0035*265/150)
	chk.Float64(tst, "fst", 1e-9, data.FsTension, 415*100.0/115)
	chk.Float64(tst, "plateau", 1e-12, data.PlateauDepth, 150*3.0/7)
	if !data.TensionYields || data.IsDoubly {
		tst.Errorf("expected yielding tension steel in a singly reinforced section")
	}

	out := DrawASCIISectionDiagram(data)
	for _, want := range []string{"N.A.", "εcu = 0.0035", "(yields)", "fcd = 8.89"} {
		if !strings.Contains(out, want) {
			tst.Errorf("section diagram lacks %q", want)
		}
	}
	if !strings.Contains(DrawStrainDiagram(data), "εst=0.0062") {
		tst.Errorf("strain diagram lacks the steel strain")
	}
	if !strings.Contains(DrawStressBlock(data), "Ast = 1000.0") {
		tst.Errorf("stress block lacks the steel area")
	}

	doubly := FromBeam(s, s.XuMax(), 1500, 300)
	if !doubly.IsDoubly || doubly.CompSteelY != s.Dc() {
		tst.Errorf("compression steel not set: %+v", doubly)
	}
	if !strings.Contains(DrawASCIISectionDiagram(doubly), "εsc") {
		tst.Errorf("doubly diagram lacks the compression steel strain")
	}

	content := []string{"Ast = 1000 mm²", "τv = 0.94 N/mm²"}
	box := DrawSummaryBox("Result", content)
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")

	// top border, title, separator, content, bottom border
	if len(lines) != len(content)+4 {
		tst.Errorf("summary box: expected %d lines, got %d", len(content)+4, len(lines))
		return
	}
	for _, l := range lines[1:] {
		if len([]rune(l)) != len([]rune(lines[0])) {
			tst.Errorf("ragged box line %q", l)
		}
	}
}

func Test_image01(tst *testing.T) {

	chk.PrintTitle("image01. exported plots")

	dir := tst.TempDir()
	s := testBeam()
	data := FromBeam(s, 150, 1000, 0)
	data.Vertices = []Point{{335, 0}, {565, 0}, {565, 300}, {900, 300}, {900, 450}, {0, 450}, {0, 300}, {335, 300}}

	interaction, err := column.RectSection{
		Width:    300,
		Depth:    500,
		Cover:    50,
		Concrete: is456.NewConcrete(20),
		Steel:    is456.NewHYSD(500),
	}.WithSteelPercentage(2).Interaction(20)
	if err != nil {
		tst.Errorf("Interaction failed: %v", err)
		return
	}

	for name, export := range map[string]func(string) error{
		"section.png": func(f string) error { return ExportSectionDiagram(data, f) },
		"strain.svg":  func(f string) error { return ExportStrainDiagram(data, f) },
		"curves.png":  func(f string) error { return ExportStressStrain(f, s.Concrete, s.TensionBars, is456.NewMildSteel(250)) },
		"pumu/pm.png": func(f string) error { return ExportInteraction(f, "C1", interaction, 1600e3, 120e6) },
		"noextension": func(f string) error { return ExportSectionDiagram(data, f) },
	} {
		filename := filepath.Join(dir, name)
		if err := export(filename); err != nil {
			tst.Errorf("%s: %v", name, err)
			continue
		}
		if filepath.Ext(name) == "" {
			filename += ".png"
		}
		if fi, err := os.Stat(filename); err != nil || fi.Size() == 0 {
			tst.Errorf("%s: nothing written", name)
		}
	}

	if err := ExportInteraction(filepath.Join(dir, "x.png"), "", nil, 0, 0); !errors.Is(err, ErrTooFewPoints) {
		tst.Errorf("expected ErrTooFewPoints, got %v", err)
	}
}

func Test_clip01(tst *testing.T) {

	chk.PrintTitle("clip01. band of a T outline")

	t := []Point{{335, 0}, {565, 0}, {565, 300}, {900, 300}, {900, 450}, {0, 450}, {0, 300}, {335, 300}}

	area := func(band []Point) float64 {
		var a float64
		for i := range band {
			j := (i + 1) % len(band)
			a += band[i].X*band[j].Y - band[j].X*band[i].Y
		}
		return a / 2
	}
	toPoints := func(lo, hi float64) []Point {
		var pts []Point
		for _, xy := range clipBand(t, lo, hi) {
			pts = append(pts, Point{xy.X, xy.Y})
		}
		return pts
	}

	chk.Float64(tst, "flange band", 1e-9, area(toPoints(350, 450)), 900*100)
	chk.Float64(tst, "mixed band", 1e-9, area(toPoints(250, 350)), 900*50+230*50)
	if len(clipBand(t, 300, 300)) != 0 {
		tst.Errorf("empty band must give no polygon")
	}
}
