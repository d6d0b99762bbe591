package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gorcsec/internal/column"
	"github.com/alexiusacademia/gorcsec/internal/diagram"
	"github.com/alexiusacademia/gorcsec/internal/section"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var (
	colWidth, colDepth, colCover float64
	colConcrete, colSteel        string
	colPs                        float64

	colXu      float64
	colPu      float64
	colMu      float64
	colMaxIter int
	colVerbose bool
	colPoints  int
	colPlot    string
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Rectangular column design for axial load and uniaxial bending",
	Long: `Analyze and design rectangular columns with equal steel on the two faces
perpendicular to the plane of bending.

Subcommands:
  analyze      - Pu and Mu at a neutral axis depth
  design       - Neutral axis depth and steel percentage for Pu and Mu
  interaction  - Pu-Mu interaction curve`,
}

var columnAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Axial load and moment capacity at a neutral axis depth",
	Long: `Calculate the axial load Pu and the moment Mu about mid-depth carried by a
column for a neutral axis depth xu. The neutral axis may lie outside the
section (xu > D).

Examples:
  gorcsec column analyze -b 300 --depth 500 --cover 50 --ps 2 --xu 400`,
	RunE: runColumnAnalyze,
}

var columnDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design a column for Pu and Mu",
	Long: `Find the neutral axis depth and the steel percentage for which the
section carries the factored axial load Pu and moment Mu. The two are
adjusted in turn until both match.

Examples:
  gorcsec column design -b 300 --depth 500 --cover 50 --pu 1600 --mu 120 --verbose`,
	RunE: runColumnDesign,
}

var columnInteractionCmd = &cobra.Command{
	Use:   "interaction",
	Short: "Pu-Mu interaction curve of a column",
	Long: `Sample the interaction curve from xu = dc to xu = 6D and print it, or
plot it with the optional demand point.

Examples:
  gorcsec column interaction -b 300 --depth 500 --cover 50 --ps 2 -o pm.png --pu 1600 --mu 120`,
	RunE: runColumnInteraction,
}

func init() {
	rootCmd.AddCommand(columnCmd)
	columnCmd.AddCommand(columnAnalyzeCmd, columnDesignCmd, columnInteractionCmd)

	for _, c := range []*cobra.Command{columnAnalyzeCmd, columnDesignCmd, columnInteractionCmd} {
		c.Flags().Float64VarP(&colWidth, "width", "b", 0, "Column width b (mm) [required]")
		c.Flags().Float64Var(&colDepth, "depth", 0, "Depth D in the plane of bending (mm) [required]")
		c.Flags().Float64VarP(&colCover, "cover", "c", 50, "Distance from each face to the bar centroid (mm)")
		c.Flags().StringVar(&colConcrete, "concrete", "", "Concrete grade (default from RCSEC_CONCRETE)")
		c.Flags().StringVar(&colSteel, "steel", "", "Steel grade (default from RCSEC_STEEL)")
		c.MarkFlagRequired("width")
		c.MarkFlagRequired("depth")
	}
	for _, c := range []*cobra.Command{columnAnalyzeCmd, columnInteractionCmd} {
		c.Flags().Float64Var(&colPs, "ps", column.InitialSteelPercentage, "Steel percentage of b·D")
	}
	for _, c := range []*cobra.Command{columnDesignCmd, columnInteractionCmd} {
		c.Flags().Float64Var(&colPu, "pu", 0, "Factored axial load Pu (kN)")
		c.Flags().Float64VarP(&colMu, "mu", "m", 0, "Factored moment Mu (kN·m)")
	}

	columnAnalyzeCmd.Flags().Float64Var(&colXu, "xu", 0, "Neutral axis depth xu (mm) [required]")
	columnAnalyzeCmd.MarkFlagRequired("xu")

	columnDesignCmd.Flags().IntVar(&colMaxIter, "max-iter", column.MaxDesignIterations, "Maximum design iterations")
	columnDesignCmd.Flags().BoolVarP(&colVerbose, "verbose", "v", false, "Print the design iterations")
	columnDesignCmd.MarkFlagRequired("pu")
	columnDesignCmd.MarkFlagRequired("mu")

	columnInteractionCmd.Flags().IntVar(&colPoints, "points", 25, "Number of neutral axis depths")
	columnInteractionCmd.Flags().StringVarP(&colPlot, "output", "o", "", "Plot the curve to file (png, svg, pdf)")
}

func columnCase(ps float64) (column.RectSection, error) {
	c := &section.Case{
		Kind:            section.KindColumn,
		Concrete:        orConfig(colConcrete, cfg.Concrete),
		Steel:           orConfig(colSteel, cfg.Steel),
		Width:           colWidth,
		Depth:           colDepth,
		Cover:           colCover,
		SteelPercentage: ps,
	}
	if err := c.Validate(); err != nil {
		return column.RectSection{}, err
	}
	return c.Column()
}

func runColumnAnalyze(cmd *cobra.Command, args []string) error {
	s, err := columnCase(colPs)
	if err != nil {
		return err
	}
	pu, mu, rep, err := s.PuMu(colXu)
	if err != nil {
		return err
	}

	printTitle("COLUMN ANALYSIS - IS 456 LIMIT STATE")
	fmt.Printf("  %s\n\n", s)
	printColumnReport(rep)

	printHeading("RESULT:")
	fmt.Printf("  Pu = %.2f kN, Mu = %.2f kN·m, e = %.2f mm\n", pu/1e3, mu/1e6, rep.E)
	fmt.Println()
	return nil
}

func runColumnDesign(cmd *cobra.Command, args []string) error {
	s, err := columnCase(0)
	if err != nil {
		return err
	}

	state, err := s.DesignWithLimit(colPu*1e3, colMu*1e6, colMaxIter)
	if colVerbose && state != nil {
		io.Pf("\n%4s %12s %10s %14s %14s\n", "iter", "xu (mm)", "ps (%)", "Pu (kN)", "Mu (kN·m)")
		for i, it := range state.Iterations {
			io.Pforan("%4d %12.4f %10.5f %14.3f %14.3f\n", i+1, it.Xu, it.Ps, it.Pu/1e3, it.Mu/1e6)
		}
	}
	if errors.Is(err, column.ErrNoConvergence) && state != nil {
		fmt.Printf("  Last state: xu = %.2f mm, ps = %.3f%%\n", state.Xu, state.Ps)
	}
	if err != nil {
		return err
	}

	printTitle("COLUMN DESIGN - IS 456 LIMIT STATE")
	fmt.Printf("  %s\n\n", s)
	printColumnReport(state.Report)

	printHeading("DESIGN RESULT:")
	w := newTable()
	fmt.Fprintf(w, "  Demand:\tPu = %.2f kN, Mu = %.2f kN·m\n", state.Pu/1e3, state.Mu/1e6)
	fmt.Fprintf(w, "  Neutral axis depth (xu):\t%.2f mm\n", state.Xu)
	fmt.Fprintf(w, "  Steel percentage (ps):\t%.3f %%\n", state.Ps)
	fmt.Fprintf(w, "  Total steel (As):\t%.0f mm² (%.0f mm² per face)\n", state.AsTotal, state.AsTotal/2)
	fmt.Fprintf(w, "  Iterations:\t%d\n", len(state.Iterations))
	w.Flush()
	fmt.Println()

	fmt.Println("  Steel per face:")
	printBarSuggestions(state.AsTotal / 2)
	return nil
}

func runColumnInteraction(cmd *cobra.Command, args []string) error {
	s, err := columnCase(colPs)
	if err != nil {
		return err
	}
	pts, err := s.Interaction(colPoints)
	if err != nil {
		return err
	}

	printTitle("COLUMN INTERACTION CURVE")
	fmt.Printf("  %s\n\n", s)
	w := newTable()
	fmt.Fprintf(w, "  xu (mm)\tPu (kN)\tMu (kN·m)\n")
	fmt.Fprintf(w, "  ───────\t───────\t─────────\n")
	for _, p := range pts {
		fmt.Fprintf(w, "  %.1f\t%.2f\t%.2f\n", p.Xu, p.Pu/1e3, p.Mu/1e6)
	}
	w.Flush()
	fmt.Println()

	if colPlot != "" {
		file := outputPath(colPlot)
		title := fmt.Sprintf("Interaction %gx%g, ps = %g%%", s.Width, s.Depth, s.SteelPercentage())
		if err := diagram.ExportInteraction(file, title, pts, colPu*1e3, colMu*1e6); err != nil {
			return fmt.Errorf("exporting plot: %w", err)
		}
		fmt.Printf("Plot exported to: %s\n", file)
	}
	return nil
}

func printColumnReport(r column.Report) {
	printHeading("STRAINS AND STRESSES:")
	w := newTable()
	fmt.Fprintf(w, "  xu:\t%.2f mm (k = %.3f)\n", r.Xu, r.K)
	fmt.Fprintf(w, "  Strain at the compressed face:\t%.5f\n", r.EsMax)
	fmt.Fprintf(w, "  Concrete:\tPc = %.2f kN\n", r.Pc/1e3)
	fmt.Fprintf(w, "  Layer 1 (x = %.1f mm):\tes = %.5f, fs = %.2f, fc = %.2f N/mm², P = %.2f kN\n", r.X1, r.Es1, r.Fs1, r.Fc1, r.Ps1/1e3)
	fmt.Fprintf(w, "  Layer 2 (x = %.1f mm):\tes = %.5f, fs = %.2f, fc = %.2f N/mm², P = %.2f kN\n", r.X2, r.Es2, r.Fs2, r.Fc2, r.Ps2/1e3)
	fmt.Fprintf(w, "  Eccentricity:\t%.2f mm\n", r.E)
	w.Flush()
	fmt.Println()
}
