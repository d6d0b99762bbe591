package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gorcsec/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gorcsec",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Reinforced Concrete Section Capacity Tool")
		fmt.Println("Limit state method of IS 456 (parabolic-rectangular stress block)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
