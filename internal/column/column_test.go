package column

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gorcsec/internal/is456"
	"github.com/alexiusacademia/gorcsec/internal/rootfind"
	"github.com/cpmech/gosl/chk"
)

func col300x500() RectSection {
	return RectSection{
		Width:    300,
		Depth:    500,
		Cover:    50,
		Concrete: is456.NewConcrete(20),
		Steel:    is456.NewHYSD(500),
	}.WithSteelPercentage(2)
}

func Test_pumu01(tst *testing.T) {

	chk.PrintTitle("pumu01. capacity at selected neutral axis depths")

	s := col300x500()
	chk.Float64(tst, "ps", 1e-12, s.SteelPercentage(), 2)

	for _, c := range []struct{ xu, pu, mu float64 }{
		{450, 1593575.810692375, 185449856.0160261},
		{500, 1803113.61888398, 149804515.16001594},
		{3000, 2412466.756613904, 7710144.219205898},
	} {
		pu, mu, rep, err := s.PuMu(c.xu)
		if err != nil {
			tst.Errorf("PuMu(%g) failed: %v", c.xu, err)
			return
		}
		chk.Float64(tst, "Pu", 1e-3, pu, c.pu)
		chk.Float64(tst, "Mu", 1e-1, mu, c.mu)
		chk.Float64(tst, "report Pu", 1e-15, rep.Pu, pu)
		chk.Float64(tst, "P = Pc + Ps1 + Ps2", 1e-6, rep.P, rep.Pc+rep.Ps1+rep.Ps2)
	}

	ms := RectSection{Width: 300, Depth: 500, Cover: 50, Concrete: is456.NewConcrete(20), Steel: is456.NewMildSteel(250)}.WithSteelPercentage(4)
	pu, mu, _, err := ms.PuMu(550)
	if err != nil {
		tst.Errorf("mild steel PuMu failed: %v", err)
		return
	}
	chk.Float64(tst, "MS Pu", 1e-3, pu, 2118815.286357554)
	chk.Float64(tst, "MS Mu", 1e-1, mu, 89164686.76290305)
}

func Test_pumu02(tst *testing.T) {

	chk.PrintTitle("pumu02. beyond the balanced point Pu rises and e falls")

	s := col300x500()
	p1, m1, _, err := s.PuMu(s.Depth)
	if err != nil {
		tst.Errorf("PuMu(D) failed: %v", err)
		return
	}
	p2, m2, _, err := s.PuMu(6 * s.Depth)
	if err != nil {
		tst.Errorf("PuMu(6D) failed: %v", err)
		return
	}
	if p2 <= p1 {
		tst.Errorf("Pu must increase: %g <= %g", p2, p1)
	}
	if m2/p2 >= m1/p1 {
		tst.Errorf("e must decrease: %g >= %g", m2/p2, m1/p1)
	}

	// strain at the compressed face is continuous at k = 1
	_, _, below, _ := s.PuMu(s.Depth)
	_, _, above, _ := s.PuMu(s.Depth * (1 + 1e-9))
	chk.Float64(tst, "es,max", 1e-9, above.EsMax, below.EsMax)
	chk.Float64(tst, "es,max at k=1", 1e-15, below.EsMax, is456.EcU)
}

func Test_pumu03(tst *testing.T) {

	chk.PrintTitle("pumu03. strains follow the neutral axis")

	s := col300x500()

	// neutral axis inside the section: the far bars are in tension
	_, _, rep, err := s.PuMu(200)
	if err != nil {
		tst.Errorf("PuMu failed: %v", err)
		return
	}
	chk.Float64(tst, "es2", 1e-15, rep.Es2, is456.EcU*150/200)
	chk.Float64(tst, "es1", 1e-15, rep.Es1, is456.EcU*(-250)/200)
	if rep.Ps1 >= 0 {
		tst.Errorf("least compressed bars should be in tension, Ps1=%g", rep.Ps1)
	}
	chk.Float64(tst, "Ps1", 1e-9, rep.Ps1, s.AsTotal/2*s.Steel.Fs(rep.Es1))

	// shallow neutral axis below 3D/7 keeps a finite strain
	_, _, rep, err = s.PuMu(100)
	if err != nil {
		tst.Errorf("PuMu failed: %v", err)
		return
	}
	chk.Float64(tst, "es2 shallow", 1e-15, rep.Es2, is456.EcU*50/100)

	if _, _, _, err := s.PuMu(0); !errors.Is(err, ErrInvalidSection) {
		tst.Errorf("expected ErrInvalidSection, got %v", err)
	}
}

func Test_design01(tst *testing.T) {

	chk.PrintTitle("design01. neutral axis and steel searches")

	s := col300x500()

	xu, err := s.DesignXu(1600e3, 120e6, 2)
	if err != nil {
		tst.Errorf("DesignXu failed: %v", err)
		return
	}
	chk.Float64(tst, "xu", 1e-2, xu, 516.89453125)
	pu, mu, _, _ := s.PuMu(xu)
	chk.Float64(tst, "e", 1e-3, mu/pu, 120e6/1600e3)

	ps, err := s.DesignPs(1600e3, 120e6, 500)
	if err != nil {
		tst.Errorf("DesignPs failed: %v", err)
		return
	}
	chk.Float64(tst, "ps", 1e-6, ps, 1.4387177079916)
	pu, _, _, _ = s.WithSteelPercentage(ps).PuMu(500)
	chk.Float64(tst, "Pu", 1e-3, pu, 1600e3)
}

func Test_design02(tst *testing.T) {

	chk.PrintTitle("design02. outer loop converges")

	s := col300x500()
	state, err := s.Design(1600e3, 120e6)
	if err != nil {
		tst.Errorf("Design failed: %v", err)
		return
	}
	if !state.Converged {
		tst.Errorf("state not marked converged")
	}
	chk.Float64(tst, "xu", 1.0, state.Xu, 500.5)
	chk.Float64(tst, "ps", 1e-2, state.Ps, 1.4347)
	if len(state.Iterations) > MaxDesignIterations {
		tst.Errorf("too many iterations: %d", len(state.Iterations))
	}

	last := state.Iterations[len(state.Iterations)-1]
	chk.Float64(tst, "Pu residual", 1e-2, last.Pu/1600e3, 1)
	chk.Float64(tst, "Mu residual", 1e-4, last.Mu/120e6, 1)
	chk.Float64(tst, "As", 1e-9, state.AsTotal, state.Ps/100*300*500)
}

func Test_design03(tst *testing.T) {

	chk.PrintTitle("design03. failures")

	s := col300x500()

	state, err := s.DesignWithLimit(1600e3, 120e6, 1)
	if !errors.Is(err, ErrNoConvergence) {
		tst.Errorf("expected ErrNoConvergence, got %v", err)
		return
	}
	if len(state.Iterations) != 1 || state.Converged {
		tst.Errorf("state after one pass: %d iterations, converged=%v", len(state.Iterations), state.Converged)
	}

	// needs less than the minimum steel
	if _, err := s.Design(800e3, 75e6); !errors.Is(err, rootfind.ErrNoBracket) {
		tst.Errorf("expected ErrNoBracket, got %v", err)
	}

	if _, err := s.Design(-1, 75e6); !errors.Is(err, ErrInvalidSection) {
		tst.Errorf("expected ErrInvalidSection, got %v", err)
	}

	bad := s
	bad.Cover = 300
	if err := bad.Validate(); !errors.Is(err, ErrInvalidSection) {
		tst.Errorf("expected ErrInvalidSection, got %v", err)
	}
}

func Test_interaction01(tst *testing.T) {

	chk.PrintTitle("interaction01. sampled curve")

	s := col300x500()
	pts, err := s.Interaction(60)
	if err != nil {
		tst.Errorf("Interaction failed: %v", err)
		return
	}
	if len(pts) != 60 {
		tst.Errorf("expected 60 points, got %d", len(pts))
		return
	}
	chk.Float64(tst, "first xu", 1e-12, pts[0].Xu, 50)
	chk.Float64(tst, "last xu", 1e-9, pts[59].Xu, 3000)

	// axial capacity grows with the neutral axis depth
	for i := 1; i < len(pts); i++ {
		if pts[i].Pu <= pts[i-1].Pu {
			tst.Errorf("Pu not increasing at xu=%g", pts[i].Xu)
			return
		}
	}

	if _, err := s.Interaction(1); !errors.Is(err, rootfind.ErrInvalidArgument) {
		tst.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}
