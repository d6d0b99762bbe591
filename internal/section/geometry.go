package section

import (
	"math"
	"sort"

	"github.com/alexiusacademia/gorcsec/internal/is456"
)

// Outline returns the vertices of the concrete outline, counter-clockwise, with the origin
// at the bottom left and y pointing up toward the compression face
func (c *Case) Outline() []Point {
	b, D := c.Width, c.Depth
	if c.Kind != KindFlanged {
		return []Point{{0, 0}, {b, 0}, {b, D}, {0, D}}
	}

	bf, df := c.FlangeWidth, c.FlangeDepth
	x0 := (bf - b) / 2
	return []Point{
		{x0, 0},
		{x0 + b, 0},
		{x0 + b, D - df},
		{bf, D - df},
		{bf, D},
		{0, D},
		{0, D - df},
		{x0, D - df},
	}
}

// CalculateProperties computes geometric properties of the outline
func (c *Case) CalculateProperties() *Properties {
	props := &Properties{}
	vertices := c.Outline()

	props.MinX, props.MaxX = vertices[0].X, vertices[0].X
	props.MinY, props.MaxY = vertices[0].Y, vertices[0].Y
	for _, v := range vertices {
		props.MinX = math.Min(props.MinX, v.X)
		props.MaxX = math.Max(props.MaxX, v.X)
		props.MinY = math.Min(props.MinY, v.Y)
		props.MaxY = math.Max(props.MaxY, v.Y)
	}
	props.Width = props.MaxX - props.MinX
	props.Height = props.MaxY - props.MinY

	props.Area, props.CentroidX, props.CentroidY = areaAndCentroid(vertices)
	return props
}

// areaAndCentroid uses the shoelace formula
func areaAndCentroid(vertices []Point) (area, cx, cy float64) {
	n := len(vertices)
	if n < 3 {
		return 0, 0, 0
	}

	var signedArea float64
	var sumX, sumY float64

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
		signedArea += cross
		sumX += (vertices[i].X + vertices[j].X) * cross
		sumY += (vertices[i].Y + vertices[j].Y) * cross
	}

	signedArea /= 2
	area = math.Abs(signedArea)

	if area > 0 {
		cx = sumX / (6 * signedArea)
		cy = sumY / (6 * signedArea)
	}
	return area, cx, cy
}

// WidthAtDepth returns the width of the outline at a depth below the compression face
func (c *Case) WidthAtDepth(depthFromTop float64) float64 {
	vertices := c.Outline()
	return widthAtY(vertices, c.Depth-depthFromTop)
}

func widthAtY(vertices []Point, y float64) float64 {
	intersections := intersectionsAtY(vertices, y)
	if len(intersections) < 2 {
		return 0
	}
	sort.Float64s(intersections)

	var total float64
	for i := 0; i+1 < len(intersections); i += 2 {
		total += intersections[i+1] - intersections[i]
	}
	return total
}

// intersectionsAtY finds all X coordinates where a horizontal line at y crosses the outline
func intersectionsAtY(vertices []Point, y float64) []float64 {
	var xs []float64
	n := len(vertices)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		v1, v2 := vertices[i], vertices[j]
		if (v1.Y <= y && v2.Y > y) || (v2.Y <= y && v1.Y > y) {
			t := (y - v1.Y) / (v2.Y - v1.Y)
			xs = append(xs, v1.X+t*(v2.X-v1.X))
		}
	}
	return xs
}

// CompressionForce integrates the concrete stress over the outline for a neutral axis at
// depth xu ≤ D (mm), with the extreme fiber at EcU. It returns the force (N) and its depth
// below the compression face (mm). The integration is numerical and serves as a check on
// the closed-form stress block.
func (c *Case) CompressionForce(conc is456.Concrete, xu float64) (force, depth float64) {
	if xu <= 0 {
		return 0, 0
	}
	vertices := c.Outline()

	const numSteps = 400
	dy := xu / numSteps
	var moment float64
	for i := 0; i < numSteps; i++ {
		y := (float64(i) + 0.5) * dy // depth below the compression face
		strain := is456.EcU * (xu - y) / xu
		df := conc.Fc(strain) * widthAtY(vertices, c.Depth-y) * dy
		force += df
		moment += df * y
	}
	if force > 0 {
		depth = moment / force
	}
	return force, depth
}
