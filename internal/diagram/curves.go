package diagram

import (
	"errors"
	"image/color"

	"github.com/alexiusacademia/gorcsec/internal/column"
	"github.com/alexiusacademia/gorcsec/internal/is456"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrTooFewPoints is returned when a curve needs more samples
var ErrTooFewPoints = errors.New("at least two points are required")

var palette = []color.Color{
	color.RGBA{R: 0, G: 0, B: 139, A: 255},
	color.RGBA{R: 178, G: 34, B: 34, A: 255},
	color.RGBA{R: 0, G: 100, B: 0, A: 255},
	color.RGBA{R: 255, G: 140, B: 0, A: 255},
}

// ConcreteCurve samples the design stress-strain law of concrete on [0, EcU] with n points
func ConcreteCurve(c is456.Concrete, n int) (plotter.XYs, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	pts := make(plotter.XYs, n)
	for i := range pts {
		e := is456.EcU * float64(i) / float64(n-1)
		pts[i] = plotter.XY{X: e, Y: c.Fc(e)}
	}
	return pts, nil
}

// RebarCurve samples the design stress-strain law of a rebar on [-emax, emax] with n points
func RebarCurve(r is456.Rebar, emax float64, n int) (plotter.XYs, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	pts := make(plotter.XYs, n)
	for i := range pts {
		e := -emax + 2*emax*float64(i)/float64(n-1)
		pts[i] = plotter.XY{X: e, Y: r.Fs(e)}
	}
	return pts, nil
}

// ExportStressStrain plots the concrete law and the design laws of the given rebars on the
// tension side, as in the usual design charts
func ExportStressStrain(filename string, conc is456.Concrete, bars ...is456.Rebar) error {
	p := plot.New()
	p.Title.Text = "Design Stress-Strain Curves"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Stress (N/mm²)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	cc, err := ConcreteCurve(conc, 101)
	if err != nil {
		return err
	}
	line, err := plotter.NewLine(cc)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.Gray{Y: 80}
	p.Add(line)
	p.Legend.Add(conc.String(), line)

	for i, r := range bars {
		emax := 1.5 * YieldStrain(r)
		rc, err := RebarCurve(r, emax, 201)
		if err != nil {
			return err
		}
		line, err := plotter.NewLine(rc[len(rc)/2:])
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = palette[i%len(palette)]
		p.Add(line)
		p.Legend.Add(r.Name(), line)
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportInteraction plots a Pu-Mu interaction curve (kN, kN·m). A positive demand point
// (pu in N, mu in N·mm) is marked on the chart.
func ExportInteraction(filename, title string, pts []column.Point, pu, mu float64) error {
	if len(pts) < 2 {
		return ErrTooFewPoints
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Mu (kN·m)"
	p.Y.Label.Text = "Pu (kN)"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i] = plotter.XY{X: pt.Mu / 1e6, Y: pt.Pu / 1e3}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = palette[0]
	p.Add(line)

	if pu > 0 || mu > 0 {
		demand, err := plotter.NewScatter(plotter.XYs{{X: mu / 1e6, Y: pu / 1e3}})
		if err != nil {
			return err
		}
		demand.GlyphStyle.Color = palette[1]
		demand.GlyphStyle.Radius = vg.Points(5)
		demand.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(demand)
		p.Legend.Add("demand", demand)
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}
