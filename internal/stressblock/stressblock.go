// Package stressblock integrates the parabolic-rectangular concrete stress block in closed form.
//
// Ordinates are normalized by the overall section depth D. The ordinate z runs from the
// neutral axis (z = 0) toward the extreme compression fiber (z = k, with k = xu/D). The
// stress rises parabolically from the neutral axis up to z = AlphaK and is constant from
// there to the extreme fiber. When the neutral axis lies outside the section (k > 1) only the
// part z ≥ k-1 is inside the concrete.
//
// Areas and moments are dimensionless: multiply an area by Fd·D·b to get a force and a
// moment by Fd·D²·b to get its first moment about the neutral axis.
package stressblock

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/gorcsec/internal/is456"
)

var (
	// ErrInvalidK is returned for a negative neutral-axis ratio
	ErrInvalidK = errors.New("invalid neutral-axis ratio")

	// ErrOutOfDomain is returned when an integration range leaves the stress block
	ErrOutOfDomain = errors.New("range outside stress block")
)

// relative slack allowed on the domain limits before a range is rejected
const domainEps = 1e-9

// Block is the stress block for one neutral-axis ratio
type Block struct {
	K      float64 // xu/D
	AlphaK float64 // ordinate where the parabola meets the plateau
}

// Interval is a sub-range [Z1, Z2] of the block; Valid is false when the part is absent
type Interval struct {
	Z1, Z2 float64
	Valid  bool
}

// New creates the stress block for k = xu/D
func New(k float64) (Block, error) {
	if k < 0 || math.IsNaN(k) {
		return Block{}, fmt.Errorf("k=%g: %w", k, ErrInvalidK)
	}
	return Block{K: k, AlphaK: AlphaK(k)}, nil
}

// AlphaK returns the parabola/plateau boundary: 4/7·k for k ≤ 1, k - 3/7 beyond.
// The ratio follows from EcY/EcU = 4/7.
func AlphaK(k float64) float64 {
	if k <= 1 {
		return is456.EcY / is456.EcU * k
	}
	return k - (1 - is456.EcY/is456.EcU)
}

// Domain returns the valid ordinate range of the block
func (b Block) Domain() (float64, float64) {
	if b.K <= 1 {
		return 0, b.K
	}
	return b.K - 1, b.K
}

// ZValues splits [z1, z2] into its parabolic and constant parts. A reversed range is
// swapped first.
func (b Block) ZValues(z1, z2 float64) (parabolic, constant Interval, err error) {
	if z1 > z2 {
		z1, z2 = z2, z1
	}

	lo, hi := b.Domain()
	eps := domainEps * math.Max(1, b.K)
	if z1 < lo-eps || z2 > hi+eps {
		return Interval{}, Interval{}, fmt.Errorf("[%g, %g] not within [%g, %g]: %w", z1, z2, lo, hi, ErrOutOfDomain)
	}
	z1 = math.Max(z1, lo)
	z2 = math.Min(z2, hi)

	a := b.AlphaK
	if z1 < a {
		parabolic = Interval{Z1: z1, Z2: math.Min(z2, a), Valid: true}
	}
	if z2 > a {
		constant = Interval{Z1: math.Max(z1, a), Z2: z2, Valid: true}
	}
	return parabolic, constant, nil
}

// Area returns the normalized force of the block between z1 and z2
func (b Block) Area(z1, z2 float64) (float64, error) {
	par, con, err := b.ZValues(z1, z2)
	if err != nil {
		return 0, err
	}

	area := 0.0
	if par.Valid && par.Z2 > par.Z1 {
		a := b.AlphaK
		p1, p2 := par.Z1, par.Z2
		area += (p2*p2-p1*p1)/a - (p2*p2*p2-p1*p1*p1)/(3*a*a)
	}
	if con.Valid {
		area += con.Z2 - con.Z1
	}
	return area, nil
}

// Moment returns the first moment of the block between z1 and z2 about the neutral axis
func (b Block) Moment(z1, z2 float64) (float64, error) {
	par, con, err := b.ZValues(z1, z2)
	if err != nil {
		return 0, err
	}

	m := 0.0
	if par.Valid && par.Z2 > par.Z1 {
		a := b.AlphaK
		p1, p2 := par.Z1, par.Z2
		m += 2*(p2*p2*p2-p1*p1*p1)/(3*a) - (p2*p2*p2*p2-p1*p1*p1*p1)/(4*a*a)
	}
	if con.Valid {
		m += (con.Z2*con.Z2 - con.Z1*con.Z1) / 2
	}
	return m, nil
}

// Centroid returns the distance of the resultant of [z1, z2] from the extreme fiber
func (b Block) Centroid(z1, z2 float64) (float64, error) {
	area, err := b.Area(z1, z2)
	if err != nil {
		return 0, err
	}
	if area == 0 {
		return 0, fmt.Errorf("centroid of empty range [%g, %g]: %w", z1, z2, ErrOutOfDomain)
	}
	m, err := b.Moment(z1, z2)
	if err != nil {
		return 0, err
	}
	return b.K - m/area, nil
}

// Whole returns the area and the centroid depth of the full block inside the section
func (b Block) Whole() (area, centroid float64, err error) {
	lo, hi := b.Domain()
	area, err = b.Area(lo, hi)
	if err != nil {
		return 0, 0, err
	}
	if area == 0 {
		return 0, 0, nil
	}
	centroid, err = b.Centroid(lo, hi)
	return area, centroid, err
}
