package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Rectangular beam and slab design and analysis",
	Long: `Design and analyze rectangular reinforced concrete beams and slabs
by the limit state method of IS 456.

Subcommands:
  design   - Tension, compression and shear steel for Mu, Vu and Tu
  analyze  - Moment of resistance for a given tension steel area

Loads are in kN and kN·m, dimensions in mm.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
