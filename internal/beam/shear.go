package beam

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcsec/internal/is456"
)

// ErrShearCapacityExceeded is returned when τv exceeds τc,max
var ErrShearCapacityExceeded = errors.New("shear capacity exceeded")

// Clause 40.2.1.1 - enhancement of τc for solid slabs
var slabDepthFactor = [][2]float64{
	{150, 1.30},
	{175, 1.25},
	{200, 1.20},
	{225, 1.15},
	{250, 1.10},
	{275, 1.05},
	{300, 1.00},
}

// TauCMax returns τc,max for the member; slabs get half the beam value
func (s RectSection) TauCMax() float64 {
	tau := s.Concrete.TauCMax()
	if s.Member == Slab {
		return tau / 2
	}
	return tau
}

// TauC returns the design shear strength of concrete for tension steel ast (mm²)
func (s RectSection) TauC(ast float64) float64 {
	pt := ast * 100 / (s.Width * s.EffectiveDepth())
	tau := s.Concrete.TauC(pt)
	if s.Member == Slab {
		return is456.Interpolate(slabDepthFactor, s.Depth) * tau
	}
	return tau
}

// AsvSv returns the required Asv/sv (mm²/mm) for shear vu (N) with stirrups inclined at
// alpha degrees. Below τc the minimum shear reinforcement 0.4b/fd is returned.
func (s RectSection) AsvSv(ast, vu, alpha float64) (float64, error) {
	d := s.EffectiveDepth()
	tauV := vu / (s.Width * d)
	tauC := s.TauC(ast)
	tauCMax := s.TauCMax()

	if tauV > tauCMax {
		return 0, fmt.Errorf("τv=%.2f N/mm² exceeds τc,max=%.2f N/mm²: %w", tauV, tauCMax, ErrShearCapacityExceeded)
	}

	fd := s.ShearBars.Fd()
	if tauV < tauC {
		return 0.4 * s.Width / fd, nil
	}

	rad := alpha * math.Pi / 180
	vus := vu - tauC*s.Width*d
	return vus / (fd * d * (math.Sin(rad) + math.Cos(rad))), nil
}

// Stirrups returns the vertical stirrups described by the section
func (s RectSection) Stirrups() Stirrups {
	return NewStirrups(s.ShearBars, s.StirrupDia, s.StirrupLegs)
}

// BentUpBars returns n of the section's tension bars bent up at 45°
func (s RectSection) BentUpBars(n int) BentUpBars {
	return NewBentUpBars(s.TensionBars, s.TensionBarDia, n)
}

// designShear fills the shear part of r for the equivalent shear r.Ve carried by links
func (s RectSection) designShear(r *DesignResult, links Stirrups) error {
	if links.Rebar == nil || links.Dia <= 0 || links.Legs <= 0 {
		return fmt.Errorf("invalid shear reinforcement: dia=%.2f, legs=%d: %w", links.Dia, links.Legs, ErrInvalidSection)
	}
	if links.Alpha < 45 || links.Alpha > 90 {
		return fmt.Errorf("shear reinforcement at %.1f° must be inclined between 45° and 90°: %w", links.Alpha, ErrInvalidSection)
	}

	b, d := s.Width, s.EffectiveDepth()
	r.TauV = r.Ve / (b * d)
	r.TauC = s.TauC(r.Ast)
	r.TauCMax = s.TauCMax()
	r.Alpha = links.Alpha

	ls := s
	ls.ShearBars = links.Rebar
	var err error
	if r.AsvSv, err = ls.AsvSv(r.Ast, r.Ve, links.Alpha); err != nil {
		return fmt.Errorf("shear: %w", err)
	}

	r.Asv = links.Asv()
	if r.TauV < r.TauC {
		r.Sv = r.Asv / r.AsvSv
	} else {
		r.Sv = links.Sv(r.Ve-r.TauC*b*d, b, d)
	}
	r.Sv = math.Min(r.Sv, d)
	r.SvMax = links.SvMax(b, d)
	return nil
}

// Stirrups are vertical or inclined shear links
type Stirrups struct {
	Rebar is456.Rebar
	Dia   float64 // bar diameter (mm)
	Legs  int
	Alpha float64 // inclination to the member axis (degrees)
}

// NewStirrups creates vertical stirrups
func NewStirrups(rebar is456.Rebar, dia float64, legs int) Stirrups {
	return Stirrups{Rebar: rebar, Dia: dia, Legs: legs, Alpha: 90}
}

// Asv is the area of all legs of one stirrup (mm²)
func (st Stirrups) Asv() float64 {
	return float64(st.Legs) * math.Pi * st.Dia * st.Dia / 4
}

// SvMax returns the maximum spacing (mm) of Clause 26.5.1.5 and the minimum shear
// reinforcement of Clause 26.5.1.6
func (st Stirrups) SvMax(b, d float64) float64 {
	sv1 := 0.75 * d
	if st.Alpha == 45 {
		sv1 = d
	}
	return math.Min(math.Min(sv1, st.Rebar.Fd()*st.Asv()/(0.4*b)), 300)
}

// Sv returns the spacing (mm) needed to carry vus (N) on an effective depth d
func (st Stirrups) Sv(vus, b, d float64) float64 {
	if vus <= 0 {
		return st.SvMax(b, d)
	}
	sv := st.Rebar.Fd() * st.Asv() * d / vus
	if st.Alpha != 90 {
		rad := st.Alpha * math.Pi / 180
		sv *= math.Sin(rad) + math.Cos(rad)
	}
	return sv
}

// BentUpBars are a series of main bars bent up at 45°
type BentUpBars struct {
	Stirrups
}

// NewBentUpBars creates n bent-up bars of diameter dia
func NewBentUpBars(rebar is456.Rebar, dia float64, n int) BentUpBars {
	return BentUpBars{Stirrups{Rebar: rebar, Dia: dia, Legs: n, Alpha: 45}}
}
