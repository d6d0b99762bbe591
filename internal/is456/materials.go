package is456

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// IS 456:2000 Material Constants

const (
	// Concrete strain limits (Section 38.1)
	EcY = 0.002  // Strain at the end of the parabolic rise
	EcU = 0.0035 // Ultimate compressive strain in bending

	// Modulus of elasticity for steel (Section 5.6.3)
	Es = 2e5 // N/mm²

	// Partial safety factors (Section 36.4.2) folded into the design strengths
	ConcreteDesignFactor = 4.0 / 9.0     // 0.67/1.5 rounded to the stress-block convention
	SteelDesignFactor    = 100.0 / 115.0 // 1/1.15
)

// ErrUnknownGrade is returned when a material grade label cannot be recognised
var ErrUnknownGrade = errors.New("unrecognized material grade")

// Concrete holds the characteristic strength of a concrete grade
type Concrete struct {
	Fck   float64 // characteristic cube strength (N/mm²)
	Label string  // e.g. "M20"
}

// NewConcrete creates a concrete of characteristic strength fck
func NewConcrete(fck float64) Concrete {
	return Concrete{Fck: fck, Label: fmt.Sprintf("M%g", fck)}
}

// ParseConcrete reads a grade label such as "M20" or "m 25"
func ParseConcrete(label string) (Concrete, error) {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(label), " ", ""))
	if !strings.HasPrefix(s, "M") {
		return Concrete{}, fmt.Errorf("concrete %q: %w", label, ErrUnknownGrade)
	}
	fck, err := strconv.ParseFloat(s[1:], 64)
	if err != nil || fck <= 0 {
		return Concrete{}, fmt.Errorf("concrete %q: %w", label, ErrUnknownGrade)
	}
	return NewConcrete(fck), nil
}

func (c Concrete) String() string {
	return c.Label
}

// Fd is the design strength of concrete in the stress block
func (c Concrete) Fd() float64 {
	return ConcreteDesignFactor * c.Fck
}

// Fc returns the design compressive stress at strain ec using the parabolic-rectangular
// idealization of Figure 21. Tensile strains and strains beyond EcU carry no stress.
func (c Concrete) Fc(ec float64) float64 {
	if ec <= 0 || ec > EcU {
		return 0
	}
	fd := c.Fd()
	if ec >= EcY {
		return fd
	}
	r := ec / EcY
	return fd * (2*r - r*r)
}

// Table 20 - Maximum shear stress τc,max (N/mm²)
var tauCMaxTable = [][2]float64{
	{15, 2.5},
	{20, 2.8},
	{25, 3.1},
	{30, 3.5},
	{35, 3.7},
	{40, 4.0},
}

// TauCMax returns the maximum shear stress permitted for the grade (Table 20)
func (c Concrete) TauCMax() float64 {
	return Interpolate(tauCMaxTable, c.Fck)
}

// TauC returns the design shear strength of concrete for a tension steel percentage pt,
// the closed form behind Table 19. A section without tension steel (pt ≤ 0) has no
// concrete shear strength, so TauC is 0 there and the shear falls to the links.
func (c Concrete) TauC(pt float64) float64 {
	if pt <= 0 {
		return 0
	}
	beta := math.Max(1.0, 0.8*c.Fck/(6.89*pt))
	return 0.85 * math.Sqrt(0.8*c.Fck) * (math.Sqrt(1+5*beta) - 1) / (6 * beta)
}

// Interpolate performs linear interpolation on a table of (x, y) rows sorted by x.
// Values outside the table are clamped to the end rows.
func Interpolate(table [][2]float64, x float64) float64 {
	n := len(table)
	if n == 0 {
		return 0
	}
	if x <= table[0][0] {
		return table[0][1]
	}
	if x >= table[n-1][0] {
		return table[n-1][1]
	}
	for i := 1; i < n; i++ {
		if x <= table[i][0] {
			x1, y1 := table[i-1][0], table[i-1][1]
			x2, y2 := table[i][0], table[i][1]
			return y1 + (y2-y1)/(x2-x1)*(x-x1)
		}
	}
	return table[n-1][1]
}
