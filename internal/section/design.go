package section

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcsec/internal/beam"
	"github.com/alexiusacademia/gorcsec/internal/column"
)

// Defaults applied to bar sizes a case leaves out (mm)
const (
	DefaultBarDia     = 20
	DefaultStirrupDia = 6
	DefaultLegs       = 2
)

// LoadFromFile loads a design case from a JSON file
func LoadFromFile(filepath string) (*Case, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a design case
func Parse(data []byte) (*Case, error) {
	var c Case
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// RectBeam builds the rectangular section of a beam case, or the web of a flanged case
func (c *Case) RectBeam() (beam.RectSection, error) {
	conc, bars, err := c.Materials()
	if err != nil {
		return beam.RectSection{}, err
	}
	member, err := beam.ParseMemberType(c.Member)
	if err != nil {
		return beam.RectSection{}, err
	}

	s := beam.NewRectSection(c.Width, c.Depth, c.Cover, conc, bars[0])
	s.ShearBars = bars[1]
	s.Member = member
	s.TensionBarDia = orDefault(c.TensionBarDia, DefaultBarDia)
	s.CompressionBarDia = orDefault(c.CompressionBarDia, DefaultBarDia)
	s.StirrupDia = orDefault(c.StirrupDia, DefaultStirrupDia)
	s.StirrupLegs = c.StirrupLegs
	if s.StirrupLegs <= 0 {
		s.StirrupLegs = DefaultLegs
	}
	return s, s.Validate()
}

// Flanged builds the flanged section of a case
func (c *Case) Flanged() (beam.FlangedSection, error) {
	web, err := c.RectBeam()
	if err != nil {
		return beam.FlangedSection{}, err
	}
	f := beam.NewFlangedSection(web, c.FlangeWidth, c.FlangeDepth)
	return f, f.Validate()
}

// Column builds the column section of a case with the case's steel percentage
func (c *Case) Column() (column.RectSection, error) {
	conc, bars, err := c.Materials()
	if err != nil {
		return column.RectSection{}, err
	}
	s := column.RectSection{
		Width:    c.Width,
		Depth:    c.Depth,
		Cover:    c.Cover,
		Concrete: conc,
		Steel:    bars[0],
	}.WithSteelPercentage(c.SteelPercentage)
	return s, s.Validate()
}

func orDefault(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// Outcome is the result of designing a case. Exactly one of Beam and Column is set.
type Outcome struct {
	Case       string
	Kind       Kind
	Section    string
	Properties *Properties

	Beam   *beam.DesignResult
	Column *column.DesignState

	// Numerical integration of the concrete block over the outline at the design xu (N)
	CheckForce float64
}

// Design runs the design for the case kind. Loads are converted from kN and kN·m.
func (c *Case) Design() (*Outcome, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := &Outcome{
		Case:       c.Name,
		Kind:       c.Kind,
		Properties: c.CalculateProperties(),
	}

	mu := c.Loads.Mu * 1e6
	vu := c.Loads.Vu * 1e3
	tu := c.Loads.Tu * 1e6

	switch c.Kind {
	case KindBeam:
		s, err := c.RectBeam()
		if err != nil {
			return nil, err
		}
		out.Section = s.String()
		if out.Beam, err = s.DesignSection(mu, vu, tu); err != nil {
			return nil, err
		}

	case KindFlanged:
		f, err := c.Flanged()
		if err != nil {
			return nil, err
		}
		out.Section = f.String()
		if out.Beam, err = f.DesignSection(mu, vu, tu); err != nil {
			return nil, err
		}

	case KindColumn:
		if c.Loads.Pu <= 0 {
			return nil, &ValidationError{msg: "column axial load pu must be positive"}
		}
		s, err := c.Column()
		if err != nil {
			return nil, err
		}
		out.Section = s.String()
		if out.Column, err = s.Design(c.Loads.Pu*1e3, mu); err != nil {
			return nil, err
		}
		return out, nil

	default:
		return nil, &ValidationError{msg: fmt.Sprintf("unknown kind %q", c.Kind)}
	}

	conc, _, _ := c.Materials()
	out.CheckForce, _ = c.CompressionForce(conc, out.Beam.Xu)
	return out, nil
}

// Summary returns the key results as printable lines
func (o *Outcome) Summary() []string {
	lines := []string{
		fmt.Sprintf("Case: %s (%s)", o.Case, o.Kind),
		o.Section,
	}
	if r := o.Beam; r != nil {
		lines = append(lines,
			fmt.Sprintf("Mu,lim = %.2f kN·m, xu = %.2f mm (xu,max = %.2f mm)", r.Mulim/1e6, r.Xu, r.XuMax),
			fmt.Sprintf("Ast = %.0f mm² (pt = %.2f%%), Asc = %.0f mm²", r.Ast, r.Pt, r.Asc),
			fmt.Sprintf("τv = %.3f, τc = %.3f, τc,max = %.3f N/mm²", r.TauV, r.TauC, r.TauCMax),
			fmt.Sprintf("Stirrups: Asv = %.1f mm² @ %.0f mm (sv,max = %.0f mm)", r.Asv, r.Sv, r.SvMax),
			r.Message,
		)
	}
	if st := o.Column; st != nil {
		lines = append(lines,
			fmt.Sprintf("xu = %.2f mm, ps = %.3f%%, As = %.0f mm²", st.Xu, st.Ps, st.AsTotal),
			fmt.Sprintf("Pu = %.2f kN, Mu = %.2f kN·m after %d iterations", st.Report.Pu/1e3, st.Report.Mu/1e6, len(st.Iterations)),
		)
	}
	return lines
}
