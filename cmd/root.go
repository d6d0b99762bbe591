package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcsec/internal/config"
	"github.com/alexiusacademia/gorcsec/internal/version"
	"github.com/spf13/cobra"
)

var (
	envFile string
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gorcsec",
	Short: "Reinforced Concrete Section Capacity Tool",
	Long: `gorcsec - Go Reinforced Concrete Section engine

A CLI tool for the limit state design of reinforced concrete sections
using the parabolic-rectangular stress block of IS 456.

This tool helps structural engineers perform:
  - Flexural design and analysis of rectangular beams and slabs
  - Design of flanged (T and L) beams with the neutral axis in the web
  - Shear and torsion checks with stirrup spacing
  - Column design for axial load with uniaxial bending
  - Pu-Mu interaction curves, PDF reports and spreadsheet batches

Settings are read from an optional .env file and RCSEC_* environment variables.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(envFile)
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gorcsec v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Reinforced Concrete Section Engine                   ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Limit state design of reinforced concrete sections (IS 456).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Singly and doubly reinforced rectangular beams")
		fmt.Println("    • Flanged beams, shear and torsion")
		fmt.Println("    • Columns with axial load and bending, interaction curves")
		fmt.Println("    • JSON case files, spreadsheet batches, PDF reports, HTTP API")
		fmt.Println()
		fmt.Println("  Use 'gorcsec --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Settings file (ignored when missing)")
}
