package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/alexiusacademia/gorcsec/internal/beam"
	"github.com/alexiusacademia/gorcsec/internal/section"
	"github.com/spf13/cobra"
)

// beamFlags are the section inputs shared by the beam and flanged commands
type beamFlags struct {
	width, depth, cover float64
	concrete, steel     string
	shearSteel          string
	member              string
	tensionDia          float64
	compressionDia      float64
	stirrupDia          float64
	legs                int
}

func (f *beamFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.width, "width", "b", 0, "Beam width b (mm) [required]")
	cmd.Flags().Float64Var(&f.depth, "depth", 0, "Overall depth D (mm) [required]")
	cmd.Flags().Float64VarP(&f.cover, "cover", "c", 25, "Clear cover to the main bars (mm)")
	cmd.Flags().StringVar(&f.concrete, "concrete", "", "Concrete grade, e.g. M20 (default from RCSEC_CONCRETE)")
	cmd.Flags().StringVar(&f.steel, "steel", "", "Main steel grade, e.g. Fe500 (default from RCSEC_STEEL)")
	cmd.Flags().StringVar(&f.shearSteel, "shear-steel", "", "Stirrup steel grade (default: main steel)")
	cmd.Flags().StringVar(&f.member, "member", "beam", "Member type: beam or slab")
	cmd.Flags().Float64Var(&f.tensionDia, "tension-dia", section.DefaultBarDia, "Tension bar diameter (mm)")
	cmd.Flags().Float64Var(&f.compressionDia, "compression-dia", section.DefaultBarDia, "Compression bar diameter (mm)")
	cmd.Flags().Float64Var(&f.stirrupDia, "stirrup-dia", section.DefaultStirrupDia, "Stirrup diameter (mm)")
	cmd.Flags().IntVar(&f.legs, "legs", section.DefaultLegs, "Number of stirrup legs")

	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("depth")
}

// shearFlags choose the shear reinforcement of the design commands
type shearFlags struct {
	angle  float64
	bentUp int
}

func (f *shearFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.angle, "stirrup-angle", 90, "Stirrup inclination to the member axis, 45 to 90 degrees")
	cmd.Flags().IntVar(&f.bentUp, "bent-up", 0, "Carry the shear by this many tension bars bent up at 45° instead of stirrups")
}

// links returns the shear reinforcement of s chosen by the flags
func (f *shearFlags) links(s beam.RectSection) beam.Stirrups {
	if f.bentUp > 0 {
		return s.BentUpBars(f.bentUp).Stirrups
	}
	st := s.Stirrups()
	st.Alpha = f.angle
	return st
}

// toCase describes the flags as a design case so that the case defaults and checks apply
func (f *beamFlags) toCase(kind section.Kind) *section.Case {
	return &section.Case{
		Kind:              kind,
		Member:            f.member,
		Concrete:          orConfig(f.concrete, cfg.Concrete),
		Steel:             orConfig(f.steel, cfg.Steel),
		ShearSteel:        f.shearSteel,
		Width:             f.width,
		Depth:             f.depth,
		Cover:             f.cover,
		TensionBarDia:     f.tensionDia,
		CompressionBarDia: f.compressionDia,
		StirrupDia:        f.stirrupDia,
		StirrupLegs:       f.legs,
	}
}

func orConfig(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

// outputPath places a relative file name in the configured output directory
func outputPath(name string) string {
	if name == "" || filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(cfg.OutputDir, name)
}

func printTitle(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printHeading(heading string) {
	fmt.Println(heading)
	fmt.Println("───────────────────────────────────────────────────────────────")
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// Common bar diameters in mm
var barSizes = []float64{10, 12, 16, 20, 25, 32}

func barArea(dia float64) float64 {
	return math.Pi * dia * dia / 4
}

func printBarSuggestions(asRequired float64) {
	if asRequired <= 0 {
		return
	}
	printHeading("SUGGESTED BAR COMBINATIONS:")

	w := newTable()
	fmt.Fprintf(w, "  Bars\tAs Provided\tRatio\n")
	fmt.Fprintf(w, "  ────\t───────────\t─────\n")
	for _, dia := range barSizes {
		area := barArea(dia)
		count := int(math.Ceil(asRequired / area))
		if count < 2 || count > 8 {
			continue
		}
		total := float64(count) * area
		fmt.Fprintf(w, "  %d - %gφ\t%.2f mm²\t%.2f\n", count, dia, total, total/asRequired)
	}
	w.Flush()
	fmt.Println()
}
