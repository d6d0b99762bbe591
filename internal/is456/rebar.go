package is456

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rebar is a reinforcement steel grade with a design stress-strain law.
// Strain and stress share a sign: compression negative, tension positive, or the reverse,
// as long as the caller is consistent.
type Rebar interface {
	// Fs returns the design stress at strain es
	Fs(es float64) float64
	// Fd is the design yield strength
	Fd() float64
	// Name is the label used in reports
	Name() string
}

// MildSteel is a bilinear elastic, ideally plastic reinforcement (Figure 23B)
type MildSteel struct {
	Fy    float64 // characteristic yield strength (N/mm²)
	Label string
}

// NewMildSteel creates a mild steel grade
func NewMildSteel(fy float64) MildSteel {
	return MildSteel{Fy: fy, Label: fmt.Sprintf("MS %g", fy)}
}

func (m MildSteel) Fd() float64 {
	return SteelDesignFactor * m.Fy
}

func (m MildSteel) Name() string {
	return m.Label
}

// Fs returns es·Es up to the yield strain and ±Fd beyond it
func (m MildSteel) Fs(es float64) float64 {
	fd := m.Fd()
	if math.Abs(es) < fd/Es {
		return es * Es
	}
	return math.Copysign(fd, es)
}

// Figure 23A - inelastic strain offsets and stress fractions of Fd for cold worked bars
var (
	hysdOffsets   = [7]float64{0, 0, 0.0001, 0.0003, 0.0007, 0.001, 0.002}
	hysdFractions = [7]float64{0, 0.8, 0.85, 0.9, 0.95, 0.975, 1.0}
)

// HYSD is a high yield strength deformed bar with the rounded stress-strain curve of
// Figure 23A
type HYSD struct {
	Fy    float64 // characteristic 0.2% proof stress (N/mm²)
	Label string
}

// NewHYSD creates a HYSD grade, e.g. NewHYSD(500) for Fe 500
func NewHYSD(fy float64) HYSD {
	return HYSD{Fy: fy, Label: fmt.Sprintf("Fe %g", fy)}
}

func (h HYSD) Fd() float64 {
	return SteelDesignFactor * h.Fy
}

func (h HYSD) Name() string {
	return h.Label
}

// Table returns the (strain, stress) points of the design curve
func (h HYSD) Table() [7][2]float64 {
	var t [7][2]float64
	fd := h.Fd()
	for i := range t {
		fs := fd * hysdFractions[i]
		t[i] = [2]float64{fs/Es + hysdOffsets[i], fs}
	}
	return t
}

// Fs returns the design stress at strain es. The curve is linear up to 0.8 Fd,
// interpolated between the table points and flat beyond the last one.
func (h HYSD) Fs(es float64) float64 {
	t := h.Table()
	e := math.Abs(es)

	if e <= t[1][0] {
		return es * Es
	}
	last := len(t) - 1
	if e >= t[last][0] {
		return math.Copysign(t[last][1], es)
	}

	i := 2
	for i < last && e > t[i][0] {
		i++
	}
	x1, y1 := t[i-1][0], t[i-1][1]
	x2, y2 := t[i][0], t[i][1]
	fs := y1 + (y2-y1)/(x2-x1)*(e-x1)
	return math.Copysign(fs, es)
}

// ParseRebar reads a grade label. "Fe415", "Fe 500" give HYSD bars; "MS250" or "Fe250"
// give mild steel.
func ParseRebar(label string) (Rebar, error) {
	s := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(label), " ", ""))
	var prefix string
	switch {
	case strings.HasPrefix(s, "FE"):
		prefix = "FE"
	case strings.HasPrefix(s, "MS"):
		prefix = "MS"
	default:
		return nil, fmt.Errorf("rebar %q: %w", label, ErrUnknownGrade)
	}
	fy, err := strconv.ParseFloat(s[len(prefix):], 64)
	if err != nil || fy <= 0 {
		return nil, fmt.Errorf("rebar %q: %w", label, ErrUnknownGrade)
	}
	if prefix == "MS" || fy <= 250 {
		return NewMildSteel(fy), nil
	}
	return NewHYSD(fy), nil
}
