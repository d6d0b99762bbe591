package beam

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gorcsec/internal/is456"
	"github.com/alexiusacademia/gorcsec/internal/stressblock"
)

var (
	ErrInvalidSection   = errors.New("invalid section")
	ErrNAOutsideSection = errors.New("neutral axis outside section")
	ErrOverReinforced   = errors.New("neutral axis exceeds limiting depth")
)

// Coefficients of the stress block when the neutral axis is inside the section
const (
	Ac   = 68.0 / 189.0 // C = Ac·fck·b·xu, i.e. 4/9 · 17/21
	Xbar = 99.0 / 238.0 // depth of C below the extreme fiber as a fraction of xu

	reqdA = 238.0 / 198.0 // xu/d = reqdA - sqrt(reqdA² - reqdB·Mu/(fck·b·d²))
	reqdB = 147.0 / 22.0

	// relative slack on xu before it is rejected as over-reinforced
	xuEps = 1e-9
)

// MemberType selects the shear rules
type MemberType int

const (
	Beam MemberType = iota
	Slab
)

func (m MemberType) String() string {
	switch m {
	case Beam:
		return "beam"
	case Slab:
		return "slab"
	}
	return fmt.Sprintf("MemberType(%d)", int(m))
}

// ParseMemberType reads "beam" or "slab"; an empty string means beam
func ParseMemberType(s string) (MemberType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "beam":
		return Beam, nil
	case "slab":
		return Slab, nil
	}
	return Beam, fmt.Errorf("member type %q: %w", s, ErrInvalidSection)
}

// RectSection represents a rectangular beam or slab section
type RectSection struct {
	// Geometry (mm)
	Width      float64 // b
	Depth      float64 // D - overall depth
	ClearCover float64 // clear cover to the main bars

	// Materials
	Concrete        is456.Concrete
	TensionBars     is456.Rebar
	CompressionBars is456.Rebar
	ShearBars       is456.Rebar

	// Bars (mm)
	TensionBarDia     float64
	CompressionBarDia float64
	StirrupDia        float64
	StirrupLegs       int

	Member MemberType
}

// NewRectSection creates a beam with one steel grade for every bar, 20 mm main bars and
// two-legged 6 mm stirrups
func NewRectSection(width, depth, clearCover float64, conc is456.Concrete, steel is456.Rebar) RectSection {
	return RectSection{
		Width:             width,
		Depth:             depth,
		ClearCover:        clearCover,
		Concrete:          conc,
		TensionBars:       steel,
		CompressionBars:   steel,
		ShearBars:         steel,
		TensionBarDia:     20,
		CompressionBarDia: 20,
		StirrupDia:        6,
		StirrupLegs:       2,
		Member:            Beam,
	}
}

// Validate checks the geometry and materials
func (s RectSection) Validate() error {
	if s.Width <= 0 || s.Depth <= 0 {
		return fmt.Errorf("invalid beam dimensions: width=%.2f, depth=%.2f: %w", s.Width, s.Depth, ErrInvalidSection)
	}
	if s.ClearCover < 0 || s.EffectiveDepth() <= 0 {
		return fmt.Errorf("invalid cover: cover=%.2f, d=%.2f: %w", s.ClearCover, s.EffectiveDepth(), ErrInvalidSection)
	}
	if s.Concrete.Fck <= 0 {
		return fmt.Errorf("invalid concrete strength: fck=%.2f: %w", s.Concrete.Fck, ErrInvalidSection)
	}
	if s.TensionBars == nil || s.CompressionBars == nil || s.ShearBars == nil {
		return fmt.Errorf("missing reinforcement grade: %w", ErrInvalidSection)
	}
	return nil
}

// EffectiveDepth returns d, assuming a single layer of tension bars
func (s RectSection) EffectiveDepth() float64 {
	return s.Depth - (s.ClearCover + s.TensionBarDia/2)
}

// Dc returns the depth of the compression bars below the extreme fiber
func (s RectSection) Dc() float64 {
	return s.ClearCover + s.CompressionBarDia/2
}

// XuMaxD is the limiting neutral axis ratio xu,max/d from strain compatibility
func (s RectSection) XuMaxD() float64 {
	return is456.EcU / (is456.EcY + is456.EcU + s.TensionBars.Fd()/is456.Es)
}

// XuMax is the limiting depth of the neutral axis (mm)
func (s RectSection) XuMax() float64 {
	return s.XuMaxD() * s.EffectiveDepth()
}

// PtLimFyFck returns pt,lim·fy/fck, the limiting steel percentage scaled by fy/fck
func (s RectSection) PtLimFyFck() float64 {
	return 115 * Ac * s.XuMaxD()
}

// Mu returns the moment of resistance (N·mm) for a neutral axis at depth xu (mm)
func (s RectSection) Mu(xu float64) (float64, error) {
	xumax := s.XuMax()
	if xu > xumax*(1+xuEps) {
		return 0, fmt.Errorf("xu=%.3f exceeds xu,max=%.3f: %w", xu, xumax, ErrOverReinforced)
	}
	if xu < 0 || xu > s.Depth {
		return 0, fmt.Errorf("xu=%.3f, D=%.3f: %w", xu, s.Depth, ErrNAOutsideSection)
	}
	return s.mu(xu, s.Width)
}

// mu integrates the block over a width b without any limit checks
func (s RectSection) mu(xu, b float64) (float64, error) {
	k := xu / s.Depth
	csb, err := stressblock.New(k)
	if err != nil {
		return 0, err
	}
	area, centroid, err := csb.Whole()
	if err != nil {
		return 0, err
	}
	force := area * s.Concrete.Fd() * s.Depth * b
	return force * (s.EffectiveDepth() - centroid*s.Depth), nil
}

// Mulim is the limiting moment of resistance of a singly reinforced section (N·mm)
func (s RectSection) Mulim() float64 {
	xumax := s.XuMax()
	return Ac * s.Concrete.Fck * s.Width * xumax * (s.EffectiveDepth() - Xbar*xumax)
}

// ReqdXuD returns xu/d for an under-reinforced section resisting mu
func (s RectSection) ReqdXuD(mu float64) (float64, error) {
	return reqdXuD(mu, s.Concrete.Fck, s.Width, s.EffectiveDepth())
}

func reqdXuD(mu, fck, b, d float64) (float64, error) {
	if mu < 0 {
		return 0, fmt.Errorf("negative moment %.3f: %w", mu, ErrInvalidSection)
	}
	disc := reqdA*reqdA - reqdB*mu/(fck*b*d*d)
	if disc < 0 {
		return 0, fmt.Errorf("Mu=%.3e cannot be resisted by the concrete: %w", mu, ErrOverReinforced)
	}
	return reqdA - math.Sqrt(disc), nil
}

// ReqdXu returns the neutral axis depth (mm) of a singly reinforced section resisting mu
func (s RectSection) ReqdXu(mu float64) (float64, error) {
	r, err := s.ReqdXuD(mu)
	if err != nil {
		return 0, err
	}
	xu := r * s.EffectiveDepth()
	xumax := s.XuMax()
	if xu > xumax*(1+xuEps) {
		return 0, fmt.Errorf("required xu=%.3f exceeds xu,max=%.3f: %w", xu, xumax, ErrOverReinforced)
	}
	return math.Min(xu, xumax), nil
}

// ReqdAst returns the tension steel (mm²) of a singly reinforced section resisting mu
func (s RectSection) ReqdAst(mu float64) (float64, error) {
	xu, err := s.ReqdXu(mu)
	if err != nil {
		return 0, err
	}
	return mu / (s.TensionBars.Fd() * (s.EffectiveDepth() - Xbar*xu)), nil
}

// GetAsc returns the compression and tension steel (mm²) for mu. Up to Mulim the section
// is singly reinforced; beyond it the excess moment is carried by a steel couple with the
// neutral axis held at xu,max.
func (s RectSection) GetAsc(mu float64) (asc, ast float64, err error) {
	mulim := s.Mulim()
	if mu <= mulim {
		ast, err = s.ReqdAst(mu)
		return 0, ast, err
	}

	d, dc := s.EffectiveDepth(), s.Dc()
	xumax := s.XuMax()
	fd := s.TensionBars.Fd()

	ast1 := Ac * s.Concrete.Fck * s.Width * xumax / fd

	esc := is456.EcU / xumax * (xumax - dc)
	fcc := s.Concrete.Fc(esc)
	fsc := s.CompressionBars.Fs(esc)
	if fsc-fcc <= 0 {
		return 0, 0, fmt.Errorf("compression bars at %.2f mm are not in compression (xu,max=%.2f): %w", dc, xumax, ErrInvalidSection)
	}

	mu2 := mu - mulim
	asc = mu2 / ((fsc - fcc) * (d - dc))
	ast2 := asc * (fsc - fcc) / fd
	return asc, ast1 + ast2, nil
}

// AscAst designs the section as singly reinforced up to factor·Mulim and as doubly
// reinforced beyond
func (s RectSection) AscAst(mu, factor float64) (asc, ast float64, err error) {
	if mu <= factor*s.Mulim() {
		ast, err = s.ReqdAst(mu)
		return 0, ast, err
	}
	return s.GetAsc(mu)
}

// AnalysisResult holds the capacity of a singly reinforced section with given steel
type AnalysisResult struct {
	Ast   float64 // tension steel (mm²)
	Pt    float64 // steel percentage
	Xu    float64 // neutral axis depth from C = T (mm)
	XuMax float64 // limiting depth (mm)
	Mu    float64 // moment of resistance (N·mm)

	IsOverReinforced bool
	Message          string
}

// Analyze returns the moment of resistance for a tension steel area ast (mm²). Steel
// beyond the balanced amount is not counted: the capacity is then limited to Mulim.
func (s RectSection) Analyze(ast float64) (*AnalysisResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if ast <= 0 {
		return nil, fmt.Errorf("invalid reinforcement area: Ast=%.2f: %w", ast, ErrInvalidSection)
	}

	d := s.EffectiveDepth()
	result := &AnalysisResult{
		Ast:   ast,
		Pt:    100 * ast / (s.Width * d),
		XuMax: s.XuMax(),
	}

	// C = T with the steel at its design strength
	result.Xu = s.TensionBars.Fd() * ast / (Ac * s.Concrete.Fck * s.Width)

	if result.Xu > result.XuMax {
		result.IsOverReinforced = true
		result.Mu = s.Mulim()
		result.Message = fmt.Sprintf("Over-reinforced: xu=%.2f mm > xu,max=%.2f mm, capacity limited to Mu,lim", result.Xu, result.XuMax)
		return result, nil
	}

	mu, err := s.Mu(result.Xu)
	if err != nil {
		return nil, err
	}
	result.Mu = mu
	result.Message = "Under-reinforced section"
	return result, nil
}

// DesignResult holds the flexure and shear design of a section
type DesignResult struct {
	// Demand (N, N·mm)
	Mu float64 // factored bending moment
	Vu float64 // factored shear
	Tu float64 // factored torsion
	Mt float64 // equivalent moment of the torsion
	Me float64 // design moment Mu + Mt
	Ve float64 // equivalent shear

	// Flexure
	Mulim    float64 // N·mm
	Xu       float64 // neutral axis depth (mm)
	XuMax    float64 // limiting depth (mm)
	Asc      float64 // compression steel (mm²)
	Ast      float64 // tension steel (mm²)
	Pt       float64 // tension steel percentage
	IsDoubly bool

	// Shear (N/mm², mm)
	TauV    float64
	TauC    float64
	TauCMax float64
	Alpha   float64 // inclination of the shear reinforcement (degrees)
	Asv     float64 // area of one stirrup set (mm²)
	AsvSv   float64 // required Asv/sv (mm²/mm)
	Sv      float64 // stirrup spacing
	SvMax   float64 // maximum spacing allowed for the stirrups

	Message string
}

// DesignSection designs the tension, compression and shear steel for mu, vu and tu
// (N·mm, N, N·mm) with the section's vertical stirrups
func (s RectSection) DesignSection(mu, vu, tu float64) (*DesignResult, error) {
	return s.DesignSectionWith(mu, vu, tu, s.Stirrups())
}

// DesignSectionWith is DesignSection with the shear carried by links, which may be
// inclined stirrups or bent-up bars
func (s RectSection) DesignSectionWith(mu, vu, tu float64, links Stirrups) (*DesignResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	d := s.EffectiveDepth()
	r := &DesignResult{
		Mu:    mu,
		Vu:    vu,
		Tu:    tu,
		Mulim: s.Mulim(),
		XuMax: s.XuMax(),
	}

	// Torsion
	r.Mt = tu * (1 + s.Depth/s.Width) / 1.7
	r.Me = mu + r.Mt
	r.Ve = vu + 1.6*tu/s.Width

	var err error
	r.Asc, r.Ast, err = s.AscAst(r.Me, 1.0)
	if err != nil {
		return nil, fmt.Errorf("flexure: %w", err)
	}
	r.IsDoubly = r.Asc > 0
	if r.IsDoubly {
		r.Xu = r.XuMax
	} else {
		r.Xu, err = s.ReqdXu(r.Me)
		if err != nil {
			return nil, fmt.Errorf("flexure: %w", err)
		}
	}
	r.Pt = 100 * r.Ast / (s.Width * d)

	if err := s.designShear(r, links); err != nil {
		return nil, err
	}

	switch {
	case r.IsDoubly:
		r.Message = "Doubly reinforced: Mu exceeds Mu,lim"
	default:
		r.Message = "Singly reinforced"
	}
	if r.TauV < r.TauC {
		r.Message += " | nominal shear reinforcement"
	}
	if r.Sv > r.SvMax {
		r.Message += fmt.Sprintf(" | WARNING: spacing %.0f mm exceeds sv,max=%.0f mm", r.Sv, r.SvMax)
	}

	return r, nil
}

func (s RectSection) String() string {
	return fmt.Sprintf("Rectangular Section: %gx%g Concrete: %s Tension bars: %s",
		s.Width, s.Depth, s.Concrete, rebarName(s.TensionBars))
}

func rebarName(r is456.Rebar) string {
	if r == nil {
		return "-"
	}
	return r.Name()
}
