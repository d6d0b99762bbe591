// Package column analyzes and designs rectangular columns with equal steel on two
// opposite faces under axial load and uniaxial bending.
//
// The neutral axis depth xu is measured from the highly compressed face and may exceed the
// overall depth D, in which case the whole section is in compression and the strain at
// the compressed face drops below EcU so that the strain at 3D/7 from it stays at EcY.
package column

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcsec/internal/is456"
	"github.com/alexiusacademia/gorcsec/internal/stressblock"
)

var (
	ErrInvalidSection = errors.New("invalid column section")
	ErrNoConvergence  = errors.New("column design did not converge")
)

// RectSection represents a rectangular column section
type RectSection struct {
	// Geometry (mm)
	Width float64 // b
	Depth float64 // D, in the plane of bending
	Cover float64 // dc - distance from each face to the centroid of its bars

	// Materials
	Concrete is456.Concrete
	Steel    is456.Rebar

	// Reinforcement (mm²)
	AsTotal float64 // split equally between the two faces
}

// Report is the breakdown of one PuMu evaluation
type Report struct {
	Xu    float64 // neutral axis depth (mm)
	K     float64 // xu/D
	EsMax float64 // strain at the highly compressed face

	// Concrete
	Pc float64 // N
	Mc float64 // about the neutral axis (N·mm)

	// Steel layers: 1 at the least compressed face, 2 at the highly compressed face
	X1, X2   float64 // distance from the neutral axis (mm)
	Es1, Es2 float64
	Fs1, Fs2 float64 // steel stress (N/mm²)
	Fc1, Fc2 float64 // displaced concrete stress (N/mm²)
	Ps1, Ps2 float64 // net force (N)

	// Resultant
	P  float64 // N
	M  float64 // about the neutral axis (N·mm)
	E  float64 // eccentricity from mid-depth (mm)
	Pu float64 // N
	Mu float64 // N·mm
}

// Validate checks the geometry and materials
func (s RectSection) Validate() error {
	if s.Width <= 0 || s.Depth <= 0 {
		return fmt.Errorf("invalid column dimensions: width=%.2f, depth=%.2f: %w", s.Width, s.Depth, ErrInvalidSection)
	}
	if s.Cover <= 0 || 2*s.Cover >= s.Depth {
		return fmt.Errorf("invalid bar position: dc=%.2f, D=%.2f: %w", s.Cover, s.Depth, ErrInvalidSection)
	}
	if s.Concrete.Fck <= 0 || s.Steel == nil {
		return fmt.Errorf("invalid materials: %w", ErrInvalidSection)
	}
	if s.AsTotal < 0 {
		return fmt.Errorf("invalid steel area: As=%.2f: %w", s.AsTotal, ErrInvalidSection)
	}
	return nil
}

// SteelPercentage returns 100·As/(b·D)
func (s RectSection) SteelPercentage() float64 {
	return 100 * s.AsTotal / (s.Width * s.Depth)
}

// WithSteelPercentage returns a copy of the section with ps percent of steel
func (s RectSection) WithSteelPercentage(ps float64) RectSection {
	s.AsTotal = ps / 100 * s.Width * s.Depth
	return s
}

// PuMu returns the axial capacity (N) and the moment (N·mm) about mid-depth for a
// neutral axis at depth xu (mm)
func (s RectSection) PuMu(xu float64) (pu, mu float64, rep Report, err error) {
	if xu <= 0 || math.IsNaN(xu) {
		return 0, 0, rep, fmt.Errorf("xu=%g must be positive: %w", xu, ErrInvalidSection)
	}

	D, b := s.Depth, s.Width
	fd := s.Concrete.Fd()
	k := xu / D

	rep.Xu = xu
	rep.K = k

	var z1 float64
	if k <= 1 {
		rep.EsMax = is456.EcU
	} else {
		z1 = k - 1
		rep.EsMax = is456.EcY * k / stressblock.AlphaK(k)
	}

	csb, err := stressblock.New(k)
	if err != nil {
		return 0, 0, rep, err
	}
	area, err := csb.Area(z1, k)
	if err != nil {
		return 0, 0, rep, err
	}
	moment, err := csb.Moment(z1, k)
	if err != nil {
		return 0, 0, rep, err
	}
	rep.Pc = area * fd * D * b
	rep.Mc = moment * fd * D * D * b

	as := s.AsTotal / 2
	rep.X1 = xu - D + s.Cover
	rep.X2 = xu - s.Cover
	rep.Es1 = rep.EsMax * rep.X1 / xu
	rep.Es2 = rep.EsMax * rep.X2 / xu

	rep.Fs1, rep.Fc1, rep.Ps1 = s.layer(as, rep.Es1)
	rep.Fs2, rep.Fc2, rep.Ps2 = s.layer(as, rep.Es2)

	rep.P = rep.Pc + rep.Ps1 + rep.Ps2
	rep.M = rep.Mc + rep.Ps1*rep.X1 + rep.Ps2*rep.X2
	if rep.P == 0 {
		return 0, 0, rep, fmt.Errorf("zero axial force at xu=%g: %w", xu, ErrInvalidSection)
	}

	// about mid-depth; either face may be the compressed one as the steel is symmetric
	rep.E = xu - D/2 - rep.M/rep.P
	rep.Pu = rep.P
	rep.Mu = rep.P * math.Abs(rep.E)

	return rep.Pu, rep.Mu, rep, nil
}

// layer returns the stress, displaced concrete stress and net force of one steel layer
func (s RectSection) layer(as, es float64) (fs, fc, p float64) {
	fs = s.Steel.Fs(es)
	fc = s.Concrete.Fc(es)
	if es > 0 {
		return fs, fc, as * (fs - fc)
	}
	return fs, fc, as * fs
}

func (s RectSection) String() string {
	name := "-"
	if s.Steel != nil {
		name = s.Steel.Name()
	}
	return fmt.Sprintf("Rectangular Column Section: %gx%g dc=%g Concrete: %s Steel: %s As=%.2f mm²",
		s.Width, s.Depth, s.Cover, s.Concrete, name, s.AsTotal)
}
