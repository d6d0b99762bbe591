package section

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gorcsec/internal/beam"
	"github.com/alexiusacademia/gorcsec/internal/column"
	"github.com/alexiusacademia/gorcsec/internal/is456"
)

// Kind is the type of section a case describes
type Kind string

const (
	KindBeam    Kind = "beam"
	KindFlanged Kind = "flanged"
	KindColumn  Kind = "column"
)

// Case is one design case: a section, its materials and its factored loads.
// Lengths are in mm, forces in kN and moments in kN·m.
type Case struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Kind        Kind   `json:"kind"`
	Member      string `json:"member,omitempty"` // "beam" or "slab"

	// Materials, as grade labels
	Concrete   string `json:"concrete"`              // e.g. "M20"
	Steel      string `json:"steel"`                 // e.g. "Fe500"
	ShearSteel string `json:"shear_steel,omitempty"` // defaults to Steel

	// Geometry (mm)
	Width       float64 `json:"width"`
	Depth       float64 `json:"depth"`
	Cover       float64 `json:"cover"` // clear cover for beams, face to bar centroid for columns
	FlangeWidth float64 `json:"flange_width,omitempty"`
	FlangeDepth float64 `json:"flange_depth,omitempty"`

	// Bars (mm)
	TensionBarDia     float64 `json:"tension_bar_dia,omitempty"`
	CompressionBarDia float64 `json:"compression_bar_dia,omitempty"`
	StirrupDia        float64 `json:"stirrup_dia,omitempty"`
	StirrupLegs       int     `json:"stirrup_legs,omitempty"`

	// Column steel (percent of b·D), used by column capacity checks
	SteelPercentage float64 `json:"steel_percentage,omitempty"`

	Loads Loads `json:"loads"`
}

// Loads are the factored actions on the section
type Loads struct {
	Mu float64 `json:"mu"`           // kN·m
	Vu float64 `json:"vu,omitempty"` // kN
	Tu float64 `json:"tu,omitempty"` // kN·m
	Pu float64 `json:"pu,omitempty"` // kN
}

// Point represents a 2D coordinate
type Point struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// Properties holds calculated geometric properties of the outline
type Properties struct {
	Width  float64 // Maximum width (mm)
	Height float64 // Total height (mm)
	Area   float64 // Gross area (mm²)

	CentroidX float64 // mm
	CentroidY float64 // mm

	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Validate checks if the case definition is valid
func (c *Case) Validate() error {
	switch c.Kind {
	case KindBeam, KindFlanged, KindColumn:
	case "":
		return &ValidationError{msg: "kind is required (beam, flanged or column)"}
	default:
		return &ValidationError{msg: fmt.Sprintf("unknown kind %q", c.Kind)}
	}
	if c.Width <= 0 || c.Depth <= 0 {
		return &ValidationError{msg: "width and depth must be positive"}
	}
	if c.Cover <= 0 {
		return &ValidationError{msg: "cover must be positive"}
	}
	if _, err := beam.ParseMemberType(c.Member); err != nil {
		return &ValidationError{msg: fmt.Sprintf("unknown member %q", c.Member)}
	}
	if _, _, err := c.Materials(); err != nil {
		return &ValidationError{msg: err.Error(), err: err}
	}
	if c.Loads.Mu < 0 || c.Loads.Vu < 0 || c.Loads.Tu < 0 {
		return &ValidationError{msg: "loads must not be negative"}
	}

	switch c.Kind {
	case KindFlanged:
		if c.FlangeWidth < c.Width {
			return &ValidationError{msg: "flange width must not be less than the web width"}
		}
		if c.FlangeDepth <= 0 || c.FlangeDepth >= c.Depth {
			return &ValidationError{msg: "flange depth must lie between 0 and the overall depth"}
		}
	case KindColumn:
		if 2*c.Cover >= c.Depth {
			return &ValidationError{msg: "column cover must be less than half the depth"}
		}
		if c.SteelPercentage < 0 || c.SteelPercentage > column.MaxSteelPercentage {
			return &ValidationError{msg: fmt.Sprintf("steel percentage must lie between 0 and %g", column.MaxSteelPercentage)}
		}
	}
	return nil
}

// Materials parses the concrete and the steel grades. The second rebar is the shear steel.
func (c *Case) Materials() (is456.Concrete, [2]is456.Rebar, error) {
	var bars [2]is456.Rebar
	conc, err := is456.ParseConcrete(c.Concrete)
	if err != nil {
		return conc, bars, err
	}
	if bars[0], err = is456.ParseRebar(c.Steel); err != nil {
		return conc, bars, err
	}
	bars[1] = bars[0]
	if strings.TrimSpace(c.ShearSteel) != "" {
		if bars[1], err = is456.ParseRebar(c.ShearSteel); err != nil {
			return conc, bars, err
		}
	}
	return conc, bars, nil
}

// ValidationError represents a case validation error
type ValidationError struct {
	msg string
	err error
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.err
}
