package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gorcsec/internal/beam"
	"github.com/alexiusacademia/gorcsec/internal/is456"
)

// Point represents a 2D coordinate for section vertices
type Point struct {
	X float64
	Y float64
}

// SectionDiagramData holds data for drawing a section with its parabolic-rectangular stress block
type SectionDiagramData struct {
	// Section dimensions
	Width  float64 // mm
	Height float64 // mm

	// Custom section vertices (if provided, draws actual shape)
	Vertices []Point // Counter-clockwise from bottom-left

	// Stress block
	NeutralAxisDepth float64 // xu - from top (mm)
	PlateauDepth     float64 // depth of the constant stress zone, 3/7·xu (mm)

	// Reinforcement
	TensionSteelY    float64 // Distance from bottom (mm)
	TensionSteelArea float64 // mm²
	CompSteelY       float64 // Distance from top (mm), 0 if none
	CompSteelArea    float64 // mm², 0 if none

	// Strains
	EpsilonCU float64 // Concrete ultimate strain (0.0035)
	EpsilonT  float64 // Tension steel strain
	EpsilonSC float64 // Compression steel strain (if applicable)
	EpsilonY  float64 // Strain at which the tension steel reaches its design stress

	// Stresses (N/mm²)
	Fcd       float64 // Design concrete stress on the plateau (0.446 fck)
	FsTension float64 // Tension steel stress
	FsComp    float64 // Compression steel stress

	// Status
	TensionYields bool
	CompYields    bool
	IsDoubly      bool
}

// YieldStrain is the strain at which a rebar reaches its design stress
func YieldStrain(r is456.Rebar) float64 {
	if _, ok := r.(is456.HYSD); ok {
		return r.Fd()/is456.Es + 0.002
	}
	return r.Fd() / is456.Es
}

// FromBeam fills the diagram data of a rectangular beam at the neutral axis depth xu
// with the given steel areas
func FromBeam(s beam.RectSection, xu, ast, asc float64) SectionDiagramData {
	d := s.EffectiveDepth()
	data := SectionDiagramData{
		Width:            s.Width,
		Height:           s.Depth,
		NeutralAxisDepth: xu,
		PlateauDepth:     xu * 3 / 7,
		TensionSteelY:    s.Depth - d,
		TensionSteelArea: ast,
		EpsilonCU:        is456.EcU,
		EpsilonY:         YieldStrain(s.TensionBars),
		Fcd:              s.Concrete.Fd(),
		IsDoubly:         asc > 0,
	}
	if xu <= 0 {
		return data
	}
	data.EpsilonT = is456.EcU * (d - xu) / xu
	data.FsTension = s.TensionBars.Fs(data.EpsilonT)
	data.TensionYields = data.EpsilonT >= data.EpsilonY
	if data.IsDoubly {
		dc := s.Dc()
		data.CompSteelY = dc
		data.CompSteelArea = asc
		data.EpsilonSC = is456.EcU * (xu - dc) / xu
		data.FsComp = s.CompressionBars.Fs(data.EpsilonSC)
		data.CompYields = data.EpsilonSC >= YieldStrain(s.CompressionBars)
	}
	return data
}

// DrawASCIISectionDiagram creates an ASCII representation of the section with its stress block
func DrawASCIISectionDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	widthChars := 30
	heightChars := 20

	naLine := int(data.NeutralAxisDepth / data.Height * float64(heightChars))
	plateauLine := int(data.PlateauDepth / data.Height * float64(heightChars))
	tensionLine := heightChars - int(data.TensionSteelY/data.Height*float64(heightChars))
	compLine := int(data.CompSteelY / data.Height * float64(heightChars))

	sb.WriteString("\n")
	sb.WriteString("  SECTION                         STRAIN              STRESS\n")
	sb.WriteString("  ───────                         ──────              ──────\n")

	for i := 0; i <= heightChars; i++ {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		} else if i == heightChars {
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		} else {
			// dense shading on the plateau, light on the parabola
			fill := []rune(strings.Repeat(" ", widthChars))
			switch {
			case i <= plateauLine:
				fill = []rune(strings.Repeat("▒", widthChars))
			case i <= naLine:
				fill = []rune(strings.Repeat("░", widthChars))
			}

			mid := widthChars / 2
			if data.IsDoubly && i == compLine {
				copy(fill[mid-2:], []rune("●──●"))
			}
			if i == tensionLine {
				copy(fill[mid-3:], []rune("●────●"))
			}

			sb.WriteString(fmt.Sprintf("  │%s│", string(fill)))
			if i == naLine {
				sb.WriteString(" ◄─ N.A.")
			} else {
				sb.WriteString("        ")
			}
		}

		// Strain column
		sb.WriteString("    ")
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  ├── εcu = %.4f", data.EpsilonCU))
		case i == naLine:
			sb.WriteString("  ├── ε = 0")
		case i == tensionLine:
			yieldMark := ""
			if data.TensionYields {
				yieldMark = " (yields)"
			}
			sb.WriteString(fmt.Sprintf("  ├── εst = %.4f%s", data.EpsilonT, yieldMark))
		case data.IsDoubly && i == compLine:
			yieldMark := ""
			if data.CompYields {
				yieldMark = " (yields)"
			}
			sb.WriteString(fmt.Sprintf("  ├── εsc = %.4f%s", data.EpsilonSC, yieldMark))
		case i < heightChars:
			sb.WriteString("  │")
		}

		// Stress column
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("      ┌── fcd = %.2f N/mm²", data.Fcd))
		case i == plateauLine && plateauLine > 0:
			sb.WriteString("      ├── (end of plateau, ε = 0.002)")
		case i == naLine && naLine > 0:
			sb.WriteString("      └── (parabola)")
		case i == tensionLine:
			sb.WriteString(fmt.Sprintf("      ── fst = %.1f N/mm²", data.FsTension))
		case data.IsDoubly && i == compLine:
			sb.WriteString(fmt.Sprintf("      ── fsc = %.1f N/mm²", data.FsComp))
		}

		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ▒▒▒ = Constant stress zone\n")
	sb.WriteString("  ░░░ = Parabolic stress zone\n")
	sb.WriteString("  ●●● = Reinforcement\n")
	sb.WriteString(fmt.Sprintf("  N.A. = Neutral Axis at xu = %.1f mm from top\n", data.NeutralAxisDepth))
	sb.WriteString(fmt.Sprintf("  Plateau depth = %.1f mm\n", data.PlateauDepth))

	return sb.String()
}

// DrawStrainDiagram creates an ASCII strain distribution diagram
func DrawStrainDiagram(data SectionDiagramData) string {
	var sb strings.Builder

	height := 15
	width := 40

	maxStrain := max(data.EpsilonCU, data.EpsilonT)
	scale := float64(width-10) / maxStrain

	sb.WriteString("\n")
	sb.WriteString("  STRAIN DISTRIBUTION DIAGRAM\n")
	sb.WriteString("  ───────────────────────────\n\n")

	naLine := int(data.NeutralAxisDepth / data.Height * float64(height))
	tensionLine := height - int((data.TensionSteelY/data.Height)*float64(height))

	for i := 0; i <= height; i++ {
		depth := float64(i) / float64(height) * data.Height

		// magnitude only, compression above the neutral axis
		strain := data.EpsilonCU * (data.NeutralAxisDepth - depth) / data.NeutralAxisDepth
		if strain < 0 {
			strain = -strain
		}
		barLen := max(int(strain*scale), 0)

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  Top    │%s▶ εcu=%.4f\n", strings.Repeat("█", barLen), data.EpsilonCU))
		case i == naLine:
			sb.WriteString(fmt.Sprintf("  N.A.   ├%s (ε=0)\n", strings.Repeat("─", 5)))
		case i == tensionLine:
			mark := ""
			if data.TensionYields {
				mark = " ✓yields"
			}
			sb.WriteString(fmt.Sprintf("  Steel  │%s▶ εst=%.4f%s\n", strings.Repeat("█", barLen), data.EpsilonT, mark))
		case i == height:
			sb.WriteString(fmt.Sprintf("  Bottom │%s\n", strings.Repeat("█", barLen)))
		default:
			sb.WriteString(fmt.Sprintf("         │%s\n", strings.Repeat("█", barLen)))
		}
	}

	yieldBar := int(data.EpsilonY * scale)
	sb.WriteString(fmt.Sprintf("\n  εy = %.4f %s (design yield strain)\n", data.EpsilonY, strings.Repeat("─", yieldBar)+"┤"))

	return sb.String()
}

// DrawStressBlock creates a simple diagram of the parabolic-rectangular stress block
func DrawStressBlock(data SectionDiagramData) string {
	var sb strings.Builder

	force := beam.Ac * data.Fcd / is456.ConcreteDesignFactor * data.Width * data.NeutralAxisDepth

	sb.WriteString("\n")
	sb.WriteString("  PARABOLIC-RECTANGULAR STRESS BLOCK\n")
	sb.WriteString("  ──────────────────────────────────\n\n")

	sb.WriteString("       ┌───────────────┐\n")
	sb.WriteString(fmt.Sprintf("       │ fcd=%6.2f    │ ← 3/7·xu = %.1f mm\n", data.Fcd, data.PlateauDepth))
	sb.WriteString("       ├───────────────┘\n")
	sb.WriteString("       │           ╱\n")
	sb.WriteString("       │       ╱        (parabola)\n")
	sb.WriteString("       │  ╱\n")
	sb.WriteString(fmt.Sprintf("       ─ ─ ─ ─ ─ ─ ─ ─ ─ ← N.A. (xu = %.1f mm)\n", data.NeutralAxisDepth))
	sb.WriteString(fmt.Sprintf("         C = 0.36·fck·b·xu = %.1f kN at %.1f mm\n", force/1000, beam.Xbar*data.NeutralAxisDepth))
	sb.WriteString("                         │\n")
	sb.WriteString("       ●═══════════════● ← Tension Steel\n")
	sb.WriteString(fmt.Sprintf("         Ast = %.1f mm²\n", data.TensionSteelArea))
	sb.WriteString(fmt.Sprintf("         T = Ast·fst = %.1f kN\n", data.TensionSteelArea*data.FsTension/1000))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := func(s string) int { return len([]rune(s)) }
	maxLen := width(title)
	for _, line := range lines {
		maxLen = max(maxLen, width(line))
	}
	maxLen += 4

	pad := func(s string) string { return s + strings.Repeat(" ", maxLen-4-width(s)) }

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
