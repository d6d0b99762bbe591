package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcsec/internal/diagram"
	"github.com/alexiusacademia/gorcsec/internal/is456"
	"github.com/spf13/cobra"
)

var materialPlot string

var materialCmd = &cobra.Command{
	Use:   "material GRADE...",
	Short: "Design properties of concrete and steel grades",
	Long: `Print the design strengths of concrete grades (M15, M20, ...) and steel
grades (Fe415, Fe500, MS250, ...), with the stress-strain table of HYSD bars.

Examples:
  gorcsec material M25 Fe500
  gorcsec material M20 Fe415 MS250 -o curves.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMaterial,
}

func init() {
	rootCmd.AddCommand(materialCmd)
	materialCmd.Flags().StringVarP(&materialPlot, "output", "o", "", "Plot the design stress-strain curves to file")
}

func runMaterial(cmd *cobra.Command, args []string) error {
	conc := is456.Concrete{}
	var bars []is456.Rebar

	printTitle("MATERIAL PROPERTIES - IS 456")
	for _, grade := range args {
		if c, err := is456.ParseConcrete(grade); err == nil {
			conc = c
			printHeading(fmt.Sprintf("CONCRETE %s:", c))
			w := newTable()
			fmt.Fprintf(w, "  fck:\t%.1f N/mm²\n", c.Fck)
			fmt.Fprintf(w, "  Design strength (0.446 fck):\t%.3f N/mm²\n", c.Fd())
			fmt.Fprintf(w, "  τc,max:\t%.2f N/mm²\n", c.TauCMax())
			fmt.Fprintf(w, "  τc at pt = 0.5 / 1.0 / 2.0 %%:\t%.3f / %.3f / %.3f N/mm²\n", c.TauC(0.5), c.TauC(1), c.TauC(2))
			w.Flush()
			fmt.Println()
			continue
		}

		bar, err := is456.ParseRebar(grade)
		if err != nil {
			return fmt.Errorf("%q is neither a concrete nor a steel grade: %w", grade, err)
		}
		bars = append(bars, bar)

		printHeading(fmt.Sprintf("STEEL %s:", bar.Name()))
		w := newTable()
		fmt.Fprintf(w, "  Design strength (0.87 fy):\t%.2f N/mm²\n", bar.Fd())
		fmt.Fprintf(w, "  Strain at design strength:\t%.5f\n", diagram.YieldStrain(bar))
		if h, ok := bar.(is456.HYSD); ok {
			fmt.Fprintf(w, "  Strain\tStress (N/mm²)\n")
			for _, p := range h.Table() {
				fmt.Fprintf(w, "  %.5f\t%.2f\n", p[0], p[1])
			}
		}
		w.Flush()
		fmt.Println()
	}

	if materialPlot != "" {
		if conc.Fck == 0 {
			conc, _ = is456.ParseConcrete(cfg.Concrete)
		}
		file := outputPath(materialPlot)
		if err := diagram.ExportStressStrain(file, conc, bars...); err != nil {
			return fmt.Errorf("exporting plot: %w", err)
		}
		fmt.Printf("Plot exported to: %s\n", file)
	}
	return nil
}
