package beam

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcsec/internal/rootfind"
	"github.com/alexiusacademia/gorcsec/internal/stressblock"
)

// ErrDoublyReinforced is returned when a flanged section needs compression steel
var ErrDoublyReinforced = errors.New("section must be doubly reinforced")

// Search settings for the neutral axis below the flange
const (
	flangeBracketIntervals = 10
	flangeMaxIter          = 100
	flangeTol              = 1e-12
)

// FlangeRegime tells where the neutral axis lies relative to the flange
type FlangeRegime int

const (
	InFlange    FlangeRegime = iota // xu ≤ Df
	ThinFlange                      // Df ≤ 3/7·xu, the flange is entirely on the plateau
	ThickFlange                     // the flange spans the parabola and the plateau
)

func (r FlangeRegime) String() string {
	switch r {
	case InFlange:
		return "NA within flange"
	case ThinFlange:
		return "thin flange"
	case ThickFlange:
		return "thick flange"
	}
	return fmt.Sprintf("FlangeRegime(%d)", int(r))
}

// FlangedSection represents a T or L beam. The web is a rectangular section whose width
// is bw; its materials, bars and member type apply to the whole section.
type FlangedSection struct {
	Web         RectSection
	FlangeWidth float64 // bf (mm)
	FlangeDepth float64 // Df (mm)
}

// NewFlangedSection creates a flanged section on a rectangular web
func NewFlangedSection(web RectSection, bf, df float64) FlangedSection {
	return FlangedSection{Web: web, FlangeWidth: bf, FlangeDepth: df}
}

// Validate checks the web and the flange
func (f FlangedSection) Validate() error {
	if err := f.Web.Validate(); err != nil {
		return err
	}
	if f.FlangeWidth < f.Web.Width {
		return fmt.Errorf("flange width bf=%.2f less than web width bw=%.2f: %w", f.FlangeWidth, f.Web.Width, ErrInvalidSection)
	}
	if f.FlangeDepth <= 0 || f.FlangeDepth >= f.Web.Depth {
		return fmt.Errorf("invalid flange depth Df=%.2f for D=%.2f: %w", f.FlangeDepth, f.Web.Depth, ErrInvalidSection)
	}
	return nil
}

// XuMax is the limiting depth of the neutral axis (mm)
func (f FlangedSection) XuMax() float64 {
	return f.Web.XuMax()
}

// Regime classifies a neutral axis depth
func (f FlangedSection) Regime(xu float64) FlangeRegime {
	switch {
	case xu <= f.FlangeDepth:
		return InFlange
	case f.FlangeDepth <= xu*3/7:
		return ThinFlange
	default:
		return ThickFlange
	}
}

func (f FlangedSection) check(xu float64) error {
	xumax := f.XuMax()
	if xu > xumax*(1+xuEps) {
		return fmt.Errorf("xu=%.3f exceeds xu,max=%.3f: %w", xu, xumax, ErrOverReinforced)
	}
	if xu < 0 || xu > f.Web.Depth {
		return fmt.Errorf("xu=%.3f, D=%.3f: %w", xu, f.Web.Depth, ErrNAOutsideSection)
	}
	return nil
}

// Force returns the total concrete compression (N) and its depth below the extreme fiber (mm)
func (f FlangedSection) Force(xu float64) (force, depth float64, err error) {
	if err := f.check(xu); err != nil {
		return 0, 0, err
	}
	mu, err := f.Mu(xu)
	if err != nil {
		return 0, 0, err
	}

	D := f.Web.Depth
	fd := f.Web.Concrete.Fd()
	k := xu / D
	csb, err := stressblock.New(k)
	if err != nil {
		return 0, 0, err
	}

	web, _, err := csb.Whole()
	if err != nil {
		return 0, 0, err
	}
	if f.Regime(xu) == InFlange {
		force = fd * D * web * f.FlangeWidth
	} else {
		flange, err := csb.Area((xu-f.FlangeDepth)/D, k)
		if err != nil {
			return 0, 0, err
		}
		force = fd * D * (web*f.Web.Width + flange*(f.FlangeWidth-f.Web.Width))
	}
	if force == 0 {
		return 0, 0, nil
	}
	return force, f.Web.EffectiveDepth() - mu/force, nil
}

// Mu returns the moment of resistance (N·mm) for a neutral axis at depth xu (mm)
func (f FlangedSection) Mu(xu float64) (float64, error) {
	if err := f.check(xu); err != nil {
		return 0, err
	}

	if f.Regime(xu) == InFlange {
		return f.Web.mu(xu, f.FlangeWidth)
	}

	mw, err := f.Web.Mu(xu)
	if err != nil {
		return 0, err
	}

	// flange outstand over [xu-Df, xu] measured from the neutral axis; the same integral
	// covers both the thin and the thick flange
	D := f.Web.Depth
	k := xu / D
	csb, err := stressblock.New(k)
	if err != nil {
		return 0, err
	}
	z1 := (xu - f.FlangeDepth) / D
	area, err := csb.Area(z1, k)
	if err != nil {
		return 0, err
	}
	xbar, err := csb.Centroid(z1, k)
	if err != nil {
		return 0, err
	}
	af := f.Web.Concrete.Fd() * D * area * (f.FlangeWidth - f.Web.Width)
	mf := af * (f.Web.EffectiveDepth() - xbar*D)
	return mw + mf, nil
}

// Mulim is the limiting moment of resistance of the section (N·mm)
func (f FlangedSection) Mulim() (float64, error) {
	return f.Mu(f.XuMax())
}

// ReqdXu returns the neutral axis depth (mm) needed to resist mu as a singly reinforced
// section. Inside the flange the rectangular closed form with bf applies; below it the
// depth is found numerically.
func (f FlangedSection) ReqdXu(mu float64) (float64, error) {
	xumax := f.XuMax()
	df := f.FlangeDepth

	inFlange := xumax <= df
	if !inFlange {
		mu1, err := f.Mu(df)
		if err != nil {
			return 0, err
		}
		inFlange = mu <= mu1
	}

	if inFlange {
		d := f.Web.EffectiveDepth()
		r, err := reqdXuD(mu, f.Web.Concrete.Fck, f.FlangeWidth, d)
		if errors.Is(err, ErrOverReinforced) {
			return 0, fmt.Errorf("Mu=%.3e on bf=%.0f: %w", mu, f.FlangeWidth, ErrDoublyReinforced)
		}
		if err != nil {
			return 0, err
		}
		xu := r * d
		if xu > xumax*(1+xuEps) {
			return 0, fmt.Errorf("required xu=%.3f exceeds xu,max=%.3f: %w", xu, xumax, ErrDoublyReinforced)
		}
		return math.Min(xu, xumax), nil
	}

	mulim, err := f.Mulim()
	if err != nil {
		return 0, err
	}
	if mu > mulim {
		return 0, fmt.Errorf("Mu=%.3e exceeds Mu,lim=%.3e: %w", mu, mulim, ErrDoublyReinforced)
	}

	var muErr error
	g := func(xu float64) float64 {
		m, err := f.Mu(xu)
		if err != nil && muErr == nil {
			muErr = err
		}
		return mu - m
	}

	x1, x2, err := rootfind.FindBracket(g, df, xumax, flangeBracketIntervals)
	if err != nil {
		return 0, fmt.Errorf("flanged section reqd xu: %w", err)
	}
	xu, err := rootfind.Brent(g, x1, x2, flangeMaxIter, flangeTol)
	if err != nil {
		return 0, fmt.Errorf("flanged section reqd xu: %w", err)
	}
	if muErr != nil {
		return 0, fmt.Errorf("flanged section reqd xu: %w", muErr)
	}
	return xu, nil
}

// ReqdAst returns the tension steel (mm²) balancing the concrete compression for mu
func (f FlangedSection) ReqdAst(mu float64) (float64, error) {
	xu, err := f.ReqdXu(mu)
	if err != nil {
		return 0, err
	}
	force, _, err := f.Force(xu)
	if err != nil {
		return 0, err
	}
	return force / f.Web.TensionBars.Fd(), nil
}

// DesignSection designs the tension and shear steel of a singly reinforced flanged
// section. Shear is carried by the web.
func (f FlangedSection) DesignSection(mu, vu, tu float64) (*DesignResult, error) {
	return f.DesignSectionWith(mu, vu, tu, f.Web.Stirrups())
}

// DesignSectionWith is DesignSection with the web shear carried by links
func (f FlangedSection) DesignSectionWith(mu, vu, tu float64, links Stirrups) (*DesignResult, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	web := f.Web
	d := web.EffectiveDepth()
	r := &DesignResult{
		Mu:    mu,
		Vu:    vu,
		Tu:    tu,
		XuMax: f.XuMax(),
	}

	var err error
	if r.Mulim, err = f.Mulim(); err != nil {
		return nil, err
	}

	r.Mt = tu * (1 + web.Depth/web.Width) / 1.7
	r.Me = mu + r.Mt
	r.Ve = vu + 1.6*tu/web.Width

	if r.Xu, err = f.ReqdXu(r.Me); err != nil {
		return nil, fmt.Errorf("flexure: %w", err)
	}
	if r.Ast, err = f.ReqdAst(r.Me); err != nil {
		return nil, fmt.Errorf("flexure: %w", err)
	}
	r.Pt = 100 * r.Ast / (web.Width * d)

	if err := web.designShear(r, links); err != nil {
		return nil, err
	}

	r.Message = "Singly reinforced, " + f.Regime(r.Xu).String()
	if r.Sv > r.SvMax {
		r.Message += fmt.Sprintf(" | WARNING: spacing %.0f mm exceeds sv,max=%.0f mm", r.Sv, r.SvMax)
	}
	return r, nil
}

func (f FlangedSection) String() string {
	s := fmt.Sprintf("Flanged Section: %gx%g", f.Web.Width, f.Web.Depth)
	if f.FlangeWidth > 0 && f.FlangeDepth > 0 {
		s += fmt.Sprintf(" bf=%g Df=%g", f.FlangeWidth, f.FlangeDepth)
	}
	return s
}
