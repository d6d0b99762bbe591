package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gorcsec/internal/beam"
	"github.com/alexiusacademia/gorcsec/internal/diagram"
	"github.com/alexiusacademia/gorcsec/internal/section"
	"github.com/spf13/cobra"
)

var (
	designBeam beamFlags
	designMu   float64
	designVu   float64
	designTu   float64
	designLink shearFlags

	// Diagram options
	designShowDiagram bool
	designExportFile  string
)

var beamDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design reinforcement for a rectangular beam",
	Long: `Calculate the tension steel (Ast), the compression steel (Asc) when the
moment exceeds Mu,lim, and the stirrup spacing for a rectangular section.

Torsion is converted to an equivalent moment Mt = Tu(1 + D/b)/1.7 and an
equivalent shear Ve = Vu + 1.6·Tu/b.

Examples:
  # Design a 230x450 mm beam for Mu = 120 kN·m and Vu = 90 kN
  gorcsec beam design --width 230 --depth 450 --concrete M20 --steel Fe415 --mu 120 --vu 90

  # Slab strip 1000 mm wide
  gorcsec beam design -b 1000 --depth 150 -c 20 --member slab --tension-dia 10 --mu 20

  # Two tension bars bent up at 45° in place of stirrups
  gorcsec beam design -b 230 --depth 450 --steel Fe415 --mu 120 --vu 90 --bent-up 2`,
	RunE: runBeamDesign,
}

func init() {
	beamCmd.AddCommand(beamDesignCmd)

	designBeam.bind(beamDesignCmd)
	beamDesignCmd.Flags().Float64VarP(&designMu, "mu", "m", 0, "Factored moment Mu (kN·m) [required]")
	beamDesignCmd.Flags().Float64Var(&designVu, "vu", 0, "Factored shear Vu (kN)")
	beamDesignCmd.Flags().Float64Var(&designTu, "tu", 0, "Factored torsion Tu (kN·m)")
	beamDesignCmd.MarkFlagRequired("mu")
	designLink.bind(beamDesignCmd)

	beamDesignCmd.Flags().BoolVar(&designShowDiagram, "diagram", false, "Show ASCII section, strain and stress diagrams")
	beamDesignCmd.Flags().StringVarP(&designExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

func runBeamDesign(cmd *cobra.Command, args []string) error {
	c := designBeam.toCase(section.KindBeam)
	s, err := c.RectBeam()
	if err != nil {
		return err
	}

	result, err := s.DesignSectionWith(designMu*1e6, designVu*1e3, designTu*1e6, designLink.links(s))
	if err != nil {
		return err
	}

	printTitle("RECTANGULAR BEAM DESIGN - IS 456 LIMIT STATE")
	printSectionInfo(s)
	printDesignResult(result)

	data := diagram.FromBeam(s, result.Xu, result.Ast, result.Asc)
	if designShowDiagram {
		fmt.Println(diagram.DrawASCIISectionDiagram(data))
		fmt.Println(diagram.DrawStrainDiagram(data))
		fmt.Println(diagram.DrawStressBlock(data))
	}
	if designExportFile != "" {
		file := outputPath(designExportFile)
		if err := diagram.ExportSectionDiagram(data, file); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", file)

		strain := strings.TrimSuffix(file, filepath.Ext(file)) + "_strain.png"
		if err := diagram.ExportStrainDiagram(data, strain); err != nil {
			return fmt.Errorf("exporting strain diagram: %w", err)
		}
		fmt.Printf("Strain diagram exported to: %s\n", strain)
	}
	return nil
}

func printSectionInfo(s beam.RectSection) {
	printHeading("INPUT PARAMETERS:")
	w := newTable()
	fmt.Fprintf(w, "  Width (b):\t%.0f mm\n", s.Width)
	fmt.Fprintf(w, "  Overall depth (D):\t%.0f mm\n", s.Depth)
	fmt.Fprintf(w, "  Effective depth (d):\t%.1f mm\n", s.EffectiveDepth())
	fmt.Fprintf(w, "  Clear cover:\t%.0f mm\n", s.ClearCover)
	fmt.Fprintf(w, "  Concrete:\t%s (fd = %.2f N/mm²)\n", s.Concrete, s.Concrete.Fd())
	fmt.Fprintf(w, "  Main steel:\t%s (fd = %.2f N/mm²)\n", s.TensionBars.Name(), s.TensionBars.Fd())
	fmt.Fprintf(w, "  Stirrups:\t%d-legged %gφ %s\n", s.StirrupLegs, s.StirrupDia, s.ShearBars.Name())
	fmt.Fprintf(w, "  Member:\t%s\n", s.Member)
	w.Flush()
	fmt.Println()
}

func printDesignResult(r *beam.DesignResult) {
	printHeading("FLEXURE:")
	w := newTable()
	if r.Tu > 0 {
		fmt.Fprintf(w, "  Equivalent moment Me = Mu + Mt:\t%.2f kN·m\n", r.Me/1e6)
	}
	fmt.Fprintf(w, "  Limiting moment (Mu,lim):\t%.2f kN·m\n", r.Mulim/1e6)
	fmt.Fprintf(w, "  Neutral axis depth (xu):\t%.2f mm\n", r.Xu)
	fmt.Fprintf(w, "  Limiting depth (xu,max):\t%.2f mm\n", r.XuMax)
	fmt.Fprintf(w, "  Tension steel (Ast):\t%.2f mm² (pt = %.3f%%)\n", r.Ast, r.Pt)
	fmt.Fprintf(w, "  Compression steel (Asc):\t%.2f mm²\n", r.Asc)
	w.Flush()
	fmt.Println()

	printHeading("SHEAR:")
	w = newTable()
	if r.Tu > 0 {
		fmt.Fprintf(w, "  Equivalent shear Ve:\t%.2f kN\n", r.Ve/1e3)
	}
	fmt.Fprintf(w, "  τv:\t%.3f N/mm²\n", r.TauV)
	fmt.Fprintf(w, "  τc:\t%.3f N/mm²\n", r.TauC)
	fmt.Fprintf(w, "  τc,max:\t%.3f N/mm²\n", r.TauCMax)
	fmt.Fprintf(w, "  Asv/sv required:\t%.4f mm²/mm\n", r.AsvSv)
	fmt.Fprintf(w, "  Stirrup spacing:\t%.0f mm (Asv = %.1f mm² at %.0f°, sv,max = %.0f mm)\n", r.Sv, r.Asv, r.Alpha, r.SvMax)
	w.Flush()
	fmt.Println()

	printHeading("DESIGN RESULT:")
	fmt.Printf("  %s\n", r.Message)
	fmt.Println()

	printBarSuggestions(r.Ast)
	if r.Asc > 0 {
		fmt.Println("  Compression steel:")
		printBarSuggestions(r.Asc)
	}
}
