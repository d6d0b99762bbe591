package beam

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gorcsec/internal/is456"
	"github.com/cpmech/gosl/chk"
)

func fe415Beam() RectSection {
	return NewRectSection(230, 450, 25, is456.NewConcrete(20), is456.NewHYSD(415))
}

func fe500Beam() RectSection {
	return NewRectSection(230, 450, 25, is456.NewConcrete(20), is456.NewHYSD(500))
}

func Test_rect01(tst *testing.T) {

	chk.PrintTitle("rect01. limiting depth and moment")

	s := fe415Beam()
	chk.Float64(tst, "d", 1e-12, s.EffectiveDepth(), 415)
	chk.Float64(tst, "dc", 1e-12, s.Dc(), 35)
	chk.Float64(tst, "xu,max", 1e-9, s.XuMax(), 198.85416666666669)
	chk.Float64(tst, "Mu,lim", 1e-3, s.Mulim()/1e6, 109.35741025171642)

	// closed form and stress block agree at xu,max
	mu, err := s.Mu(s.XuMax())
	if err != nil {
		tst.Errorf("Mu(xu,max) failed: %v", err)
		return
	}
	chk.Float64(tst, "Mu(xu,max)/Mu,lim", 1e-12, mu/s.Mulim(), 1)

	// pt,lim for Fe415 is close to 19.82 fck/fy
	chk.Float64(tst, "pt,lim fy/fck", 0.05, s.PtLimFyFck(), 19.82)
}

func Test_rect02(tst *testing.T) {

	chk.PrintTitle("rect02. reqd xu round trip")

	s := fe500Beam()
	mulim := s.Mulim()
	for _, frac := range []float64{0.05, 0.2, 0.5, 0.8, 0.95, 0.999} {
		target := frac * mulim
		xu, err := s.ReqdXu(target)
		if err != nil {
			tst.Errorf("ReqdXu(%g) failed: %v", target, err)
			return
		}
		mu, err := s.Mu(xu)
		if err != nil {
			tst.Errorf("Mu(%g) failed: %v", xu, err)
			return
		}
		chk.Float64(tst, "Mu/target", 1e-6, mu/target, 1)
	}

	xu, _ := s.ReqdXu(100e6)
	chk.Float64(tst, "xu for 100 kNm", 1e-6, xu, 176.99553989985017)
}

func Test_rect03(tst *testing.T) {

	chk.PrintTitle("rect03. Mu strictly increasing in xu")

	s := fe500Beam()
	xumax := s.XuMax()
	prev := 0.0
	for i := 1; i <= 200; i++ {
		xu := xumax * float64(i) / 200
		mu, err := s.Mu(xu)
		if err != nil {
			tst.Errorf("Mu(%g) failed: %v", xu, err)
			return
		}
		if mu <= prev {
			tst.Errorf("Mu not increasing at xu=%g: %g <= %g", xu, mu, prev)
			return
		}
		prev = mu
	}
}

func Test_rect04(tst *testing.T) {

	chk.PrintTitle("rect04. limits")

	s := fe415Beam()
	if _, err := s.Mu(s.XuMax() + 1); !errors.Is(err, ErrOverReinforced) {
		tst.Errorf("expected ErrOverReinforced, got %v", err)
	}
	if _, err := s.Mu(-1); !errors.Is(err, ErrNAOutsideSection) {
		tst.Errorf("expected ErrNAOutsideSection, got %v", err)
	}
	if _, err := s.ReqdXu(1.2 * s.Mulim()); !errors.Is(err, ErrOverReinforced) {
		tst.Errorf("expected ErrOverReinforced above Mu,lim, got %v", err)
	}
	if _, err := s.ReqdXu(10 * s.Mulim()); !errors.Is(err, ErrOverReinforced) {
		tst.Errorf("expected ErrOverReinforced for a negative discriminant, got %v", err)
	}

	bad := s
	bad.Width = 0
	if err := bad.Validate(); !errors.Is(err, ErrInvalidSection) {
		tst.Errorf("expected ErrInvalidSection, got %v", err)
	}
	if _, err := bad.DesignSection(10e6, 10e3, 0); !errors.Is(err, ErrInvalidSection) {
		tst.Errorf("design: expected ErrInvalidSection, got %v", err)
	}
}

func Test_rect05(tst *testing.T) {

	chk.PrintTitle("rect05. singly and doubly reinforced steel")

	s := fe415Beam()

	asc, ast, err := s.AscAst(90e6, 1)
	if err != nil {
		tst.Errorf("AscAst(90) failed: %v", err)
		return
	}
	chk.Float64(tst, "asc", 1e-15, asc, 0)
	chk.Float64(tst, "ast", 1e-6, ast, 711.6397607911738)

	asc, ast, err = s.AscAst(140e6, 1)
	if err != nil {
		tst.Errorf("AscAst(140) failed: %v", err)
		return
	}
	chk.Float64(tst, "asc", 1e-6, asc, 234.3896368195524)
	chk.Float64(tst, "ast", 1e-6, ast, 1135.4443269638655)

	// equilibrium of the doubly reinforced section
	xumax := s.XuMax()
	esc := is456.EcU / xumax * (xumax - s.Dc())
	fsc := s.CompressionBars.Fs(esc) - s.Concrete.Fc(esc)
	c := Ac * s.Concrete.Fck * s.Width * xumax
	chk.Float64(tst, "C = T", 1e-6, c+asc*fsc, ast*s.TensionBars.Fd())
	chk.Float64(tst, "M", 1e-3, c*(s.EffectiveDepth()-Xbar*xumax)+asc*fsc*(s.EffectiveDepth()-s.Dc()), 140e6)

	// below Mu,lim GetAsc is the singly reinforced design
	asc, ast, err = s.GetAsc(90e6)
	if err != nil {
		tst.Errorf("GetAsc(90) failed: %v", err)
		return
	}
	chk.Float64(tst, "asc", 1e-15, asc, 0)
	chk.Float64(tst, "ast", 1e-6, ast, 711.6397607911738)

	// a factor below one switches to the doubly reinforced path early
	asc, _, err = s.AscAst(100e6, 0.5)
	if err != nil {
		tst.Errorf("AscAst with factor failed: %v", err)
		return
	}
	chk.Float64(tst, "asc below Mu,lim", 1e-15, asc, 0)
}

func Test_rect06(tst *testing.T) {

	chk.PrintTitle("rect06. capacity from steel")

	s := fe500Beam()
	ast, err := s.ReqdAst(80e6)
	if err != nil {
		tst.Errorf("ReqdAst failed: %v", err)
		return
	}
	res, err := s.Analyze(ast)
	if err != nil {
		tst.Errorf("Analyze failed: %v", err)
		return
	}
	if res.IsOverReinforced {
		tst.Errorf("section should be under-reinforced")
	}
	chk.Float64(tst, "Mu", 1e-3, res.Mu, 80e6)

	res, err = s.Analyze(5000)
	if err != nil {
		tst.Errorf("Analyze(5000) failed: %v", err)
		return
	}
	if !res.IsOverReinforced {
		tst.Errorf("5000 mm² should be over-reinforced")
	}
	chk.Float64(tst, "Mu,lim", 1e-6, res.Mu, s.Mulim())

	if _, err := s.Analyze(0); !errors.Is(err, ErrInvalidSection) {
		tst.Errorf("expected ErrInvalidSection, got %v", err)
	}
}

func Test_member01(tst *testing.T) {

	chk.PrintTitle("member01. member type labels")

	m, err := ParseMemberType("Slab")
	if err != nil || m != Slab {
		tst.Errorf("slab: got %v, %v", m, err)
	}
	m, err = ParseMemberType("")
	if err != nil || m != Beam {
		tst.Errorf("empty: got %v, %v", m, err)
	}
	if _, err := ParseMemberType("wall"); !errors.Is(err, ErrInvalidSection) {
		tst.Errorf("expected ErrInvalidSection, got %v", err)
	}
	if Slab.String() != "slab" {
		tst.Errorf("slab label: %q", Slab.String())
	}
}
