package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	plateauColor  = color.RGBA{R: 100, G: 149, B: 237, A: 170}
	parabolaColor = color.RGBA{R: 100, G: 149, B: 237, A: 80}
	edgeColor     = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	steelColor    = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// ExportSectionDiagram exports a section diagram with the neutral axis and both zones of the
// stress block to an image file
func ExportSectionDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Section at Ultimate Limit State"
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	vertices := data.Vertices
	if len(vertices) < 3 {
		vertices = []Point{{0, 0}, {data.Width, 0}, {data.Width, data.Height}, {0, data.Height}}
	}

	minX, maxX := vertices[0].X, vertices[0].X
	outline := make(plotter.XYs, len(vertices)+1)
	for i, v := range vertices {
		outline[i] = plotter.XY{X: v.X, Y: v.Y}
		minX = min(minX, v.X)
		maxX = max(maxX, v.X)
	}
	outline[len(vertices)] = outline[0]

	outlineLine, err := plotter.NewLine(outline)
	if err != nil {
		return err
	}
	outlineLine.LineStyle.Width = vg.Points(2)
	outlineLine.LineStyle.Color = color.Black
	p.Add(outlineLine)

	// a neutral axis below the section leaves the whole outline in compression
	naDepth := min(data.NeutralAxisDepth, data.Height)
	plateau := min(data.PlateauDepth, naDepth)

	zones := []struct {
		top, bottom float64
		fill        color.Color
	}{
		{0, plateau, plateauColor},
		{plateau, naDepth, parabolaColor},
	}
	for _, z := range zones {
		pts := clipBand(vertices, data.Height-z.bottom, data.Height-z.top)
		if len(pts) < 3 {
			continue
		}
		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return err
		}
		poly.Color = z.fill
		poly.LineStyle.Color = edgeColor
		p.Add(poly)
	}

	naY := data.Height - data.NeutralAxisDepth
	naLine, err := plotter.NewLine(plotter.XYs{
		{X: minX - 20, Y: naY},
		{X: maxX + 20, Y: naY},
	})
	if err != nil {
		return err
	}
	naLine.LineStyle.Width = vg.Points(1.5)
	naLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	naLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(naLine)

	// place the bars in the web
	webMinX, webMaxX := findWidthAtY(vertices, data.TensionSteelY, minX, maxX)
	webCenter := (webMinX + webMaxX) / 2
	webWidth := webMaxX - webMinX

	tensionY := data.TensionSteelY
	tensionSteel, err := plotter.NewScatter(plotter.XYs{
		{X: webCenter - webWidth*0.3, Y: tensionY},
		{X: webCenter, Y: tensionY},
		{X: webCenter + webWidth*0.3, Y: tensionY},
	})
	if err != nil {
		return err
	}
	tensionSteel.GlyphStyle.Color = steelColor
	tensionSteel.GlyphStyle.Radius = vg.Points(6)
	tensionSteel.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(tensionSteel)

	if data.IsDoubly && data.CompSteelArea > 0 {
		compY := data.Height - data.CompSteelY
		compSteel, err := plotter.NewScatter(plotter.XYs{
			{X: webCenter - webWidth*0.3, Y: compY},
			{X: webCenter + webWidth*0.3, Y: compY},
		})
		if err != nil {
			return err
		}
		compSteel.GlyphStyle.Color = steelColor
		compSteel.GlyphStyle.Radius = vg.Points(5)
		compSteel.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(compSteel)
	}

	labels := []struct {
		x, y float64
		text string
	}{
		{maxX + 30, naY, fmt.Sprintf("N.A. xu=%.1fmm", data.NeutralAxisDepth)},
		{maxX + 30, data.Height - plateau/2, fmt.Sprintf("fcd=%.2f", data.Fcd)},
		{webCenter, tensionY - 25, fmt.Sprintf("Ast=%.0fmm²", data.TensionSteelArea)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// save writes the plot in the format given by the file extension; a missing extension gets .png
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".eps", ".tif", ".tiff":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// clipBand clips the polygon to the band yLow ≤ y ≤ yHigh
func clipBand(vertices []Point, yLow, yHigh float64) plotter.XYs {
	if yHigh <= yLow {
		return nil
	}
	pts := clip(vertices, yLow, true)
	pts = clip(pts, yHigh, false)

	out := make(plotter.XYs, len(pts))
	for i, v := range pts {
		out[i] = plotter.XY{X: v.X, Y: v.Y}
	}
	return out
}

// clip keeps the part of the polygon above (or below) a horizontal line
func clip(vertices []Point, y float64, above bool) []Point {
	inside := func(v Point) bool {
		if above {
			return v.Y >= y
		}
		return v.Y <= y
	}

	var result []Point
	n := len(vertices)
	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]

		if inside(curr) {
			result = append(result, curr)
		}
		if inside(curr) != inside(next) {
			t := (y - curr.Y) / (next.Y - curr.Y)
			result = append(result, Point{X: curr.X + t*(next.X-curr.X), Y: y})
		}
	}
	return result
}

// findWidthAtY finds the min and max X at a given Y level
func findWidthAtY(vertices []Point, y, defaultMin, defaultMax float64) (float64, float64) {
	var intersections []float64
	n := len(vertices)
	for i := 0; i < n; i++ {
		curr := vertices[i]
		next := vertices[(i+1)%n]
		if (curr.Y <= y && next.Y > y) || (next.Y <= y && curr.Y > y) {
			t := (y - curr.Y) / (next.Y - curr.Y)
			intersections = append(intersections, curr.X+t*(next.X-curr.X))
		}
	}

	if len(intersections) < 2 {
		return defaultMin, defaultMax
	}

	minX, maxX := intersections[0], intersections[0]
	for _, x := range intersections {
		minX = min(minX, x)
		maxX = max(maxX, x)
	}
	return minX, maxX
}

// ExportStrainDiagram exports the strain distribution over the depth
func ExportStrainDiagram(data SectionDiagramData, filename string) error {
	p := plot.New()
	p.Title.Text = "Strain Distribution"
	p.X.Label.Text = "Strain"
	p.Y.Label.Text = "Height (mm)"

	// compression positive, plotted against height above the bottom face
	top := plotter.XY{X: data.EpsilonCU, Y: data.Height}
	na := plotter.XY{X: 0, Y: data.Height - data.NeutralAxisDepth}
	steel := plotter.XY{X: -data.EpsilonT, Y: data.TensionSteelY}

	strainLine, err := plotter.NewLine(plotter.XYs{top, na, steel})
	if err != nil {
		return err
	}
	strainLine.LineStyle.Width = vg.Points(2)
	strainLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(strainLine)

	for _, x := range []float64{0, data.EpsilonY, -data.EpsilonY} {
		ref, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: data.Height}})
		if err != nil {
			return err
		}
		if x == 0 {
			ref.LineStyle.Color = color.Gray{Y: 128}
			ref.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		} else {
			ref.LineStyle.Color = color.RGBA{R: 255, G: 165, B: 0, A: 255}
			ref.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		}
		p.Add(ref)
	}

	keyPoints, err := plotter.NewScatter(plotter.XYs{top, na, steel})
	if err != nil {
		return err
	}
	keyPoints.GlyphStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	keyPoints.GlyphStyle.Radius = vg.Points(4)
	p.Add(keyPoints)

	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}
