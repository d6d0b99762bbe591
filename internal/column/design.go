package column

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcsec/internal/rootfind"
)

const (
	// MaxDesignIterations bounds the alternating xu / ps search in Design
	MaxDesignIterations = 50

	// InitialSteelPercentage is the first trial of Design
	InitialSteelPercentage = 2.0

	// MinSteelPercentage and MaxSteelPercentage bound the steel search
	MinSteelPercentage = 0.25
	MaxSteelPercentage = 6.0

	puTol = 1e-2
	muTol = 1e-4

	xuStep    = 5.0  // mm per bracket interval
	psStep    = 0.25 // percent per bracket interval
	searchMax = 50
	searchTol = 1e-3
)

// DesignXu finds the neutral axis depth (mm) at which the section with ps percent of
// steel carries pu and mu at the same eccentricity. A non-positive ps keeps AsTotal.
func (s RectSection) DesignXu(pu, mu, ps float64) (float64, error) {
	if pu <= 0 {
		return 0, fmt.Errorf("axial load Pu=%g must be compressive: %w", pu, ErrInvalidSection)
	}
	if ps > 0 {
		s = s.WithSteelPercentage(ps)
	}
	if err := s.Validate(); err != nil {
		return 0, err
	}

	eReqd := mu / pu

	var evalErr error
	f := func(xu float64) float64 {
		p, m, _, err := s.PuMu(xu)
		if err != nil {
			if evalErr == nil {
				evalErr = err
			}
			return math.NaN()
		}
		return eReqd - m/p
	}

	// neutral axis at the least compressed bars
	xu1 := s.Depth - s.Cover
	p1, m1, _, err := s.PuMu(xu1)
	if err != nil {
		return 0, err
	}
	e1 := m1 / p1

	var lo, hi float64
	if eReqd < e1 {
		lo, hi = xu1, 6*s.Depth
	} else {
		lo, hi = s.Cover, xu1
	}
	n := int((hi - lo) / xuStep)
	if n < 1 {
		n = 1
	}

	x1, x2, err := rootfind.FindBracket(f, lo, hi, n)
	if err != nil {
		return 0, fmt.Errorf("design xu for e=%.2f mm: %w", eReqd, err)
	}
	xu, err := rootfind.Bisection(f, x1, x2, searchMax, searchTol)
	if err != nil {
		return 0, fmt.Errorf("design xu for e=%.2f mm: %w", eReqd, err)
	}
	if evalErr != nil {
		return 0, fmt.Errorf("design xu: %w", evalErr)
	}
	return xu, nil
}

// DesignPs finds the steel percentage at which the section carries pu with the neutral
// axis at xu. The search starts from the current AsTotal.
func (s RectSection) DesignPs(pu, mu, xu float64) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}

	pCalc, _, _, err := s.PuMu(xu)
	if err != nil {
		return 0, err
	}

	ps := s.SteelPercentage()
	var lo, hi float64
	switch {
	case pCalc < pu:
		lo, hi = ps, MaxSteelPercentage
	case pCalc > pu:
		lo, hi = MinSteelPercentage, ps
	default:
		return ps, nil
	}
	n := int((hi - lo) / psStep)
	if n < 1 {
		n = 1
	}

	var evalErr error
	f := func(p float64) float64 {
		pc, _, _, err := s.WithSteelPercentage(p).PuMu(xu)
		if err != nil {
			if evalErr == nil {
				evalErr = err
			}
			return math.NaN()
		}
		return pu - pc
	}

	p1, p2, err := rootfind.FindBracket(f, lo, hi, n)
	if err != nil {
		return 0, fmt.Errorf("design ps for Pu=%.0f N, Mu=%.0f N·mm: %w", pu, mu, err)
	}
	psReqd, err := rootfind.Bisection(f, p1, p2, searchMax, searchTol)
	if err != nil {
		return 0, fmt.Errorf("design ps: %w", err)
	}
	if evalErr != nil {
		return 0, fmt.Errorf("design ps: %w", evalErr)
	}
	return psReqd, nil
}

// Iteration is one pass of the design loop
type Iteration struct {
	Xu float64 // mm
	Ps float64 // percent
	Pu float64 // N, capacity at (Xu, Ps)
	Mu float64 // N·mm
}

// DesignState is the outcome of Design
type DesignState struct {
	Pu, Mu     float64 // demand
	Xu         float64 // neutral axis depth (mm)
	Ps         float64 // steel percentage
	AsTotal    float64 // mm²
	Report     Report
	Iterations []Iteration
	Converged  bool
}

// Design finds the neutral axis depth and steel percentage for pu (N) and mu (N·mm)
func (s RectSection) Design(pu, mu float64) (*DesignState, error) {
	return s.DesignWithLimit(pu, mu, MaxDesignIterations)
}

// DesignWithLimit is Design with an explicit bound on the outer iterations. The state
// reached so far is returned along with ErrNoConvergence when the bound is hit.
func (s RectSection) DesignWithLimit(pu, mu float64, maxIter int) (*DesignState, error) {
	if pu <= 0 || mu <= 0 {
		return nil, fmt.Errorf("Pu=%g, Mu=%g must be positive: %w", pu, mu, ErrInvalidSection)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	state := &DesignState{Pu: pu, Mu: mu}
	ps := InitialSteelPercentage

	for iter := 0; iter < maxIter; iter++ {
		trial := s.WithSteelPercentage(ps)

		xu, err := trial.DesignXu(pu, mu, 0)
		if err != nil {
			return state, err
		}
		ps, err = trial.DesignPs(pu, mu, xu)
		if err != nil {
			return state, err
		}

		sec := s.WithSteelPercentage(ps)
		pCalc, mCalc, rep, err := sec.PuMu(xu)
		if err != nil {
			return state, err
		}

		state.Xu = xu
		state.Ps = ps
		state.AsTotal = sec.AsTotal
		state.Report = rep
		state.Iterations = append(state.Iterations, Iteration{Xu: xu, Ps: ps, Pu: pCalc, Mu: mCalc})

		if math.Abs(pCalc-pu)/pu <= puTol && math.Abs(mCalc-mu)/mu <= muTol {
			state.Converged = true
			return state, nil
		}
	}

	return state, fmt.Errorf("after %d iterations: %w", maxIter, ErrNoConvergence)
}

// Point is one point of the interaction curve
type Point struct {
	Xu float64 // mm
	Pu float64 // N
	Mu float64 // N·mm
}

// Interaction samples the Pu-Mu curve at n neutral axis depths from dc to 6D
func (s RectSection) Interaction(n int) ([]Point, error) {
	if n < 2 {
		return nil, fmt.Errorf("interaction needs at least 2 points, got %d: %w", n, rootfind.ErrInvalidArgument)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	lo, hi := s.Cover, 6*s.Depth
	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		xu := lo + (hi-lo)*float64(i)/float64(n-1)
		pu, mu, _, err := s.PuMu(xu)
		if err != nil {
			continue
		}
		pts = append(pts, Point{Xu: xu, Pu: pu, Mu: mu})
	}
	return pts, nil
}
