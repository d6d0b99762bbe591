package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alexiusacademia/gorcsec/internal/batch"
	"github.com/spf13/cobra"
)

var (
	batchWorkers int
	batchOutput  string
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE.xlsx",
	Short: "Design every case row of a spreadsheet",
	Long: `Read the first sheet of a workbook, one design case per row, and design
the rows in parallel. The header row names the case fields:

  name, kind, member, concrete, steel, shear_steel, width, depth, cover,
  flange_width, flange_depth, tension_bar_dia, compression_bar_dia,
  stirrup_dia, stirrup_legs, steel_percentage, mu, vu, tu, pu

Rows that fail are reported and do not stop the batch.

Examples:
  gorcsec batch beams.xlsx
  gorcsec batch beams.xlsx --workers 8 -o results.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Worker pool size (default from RCSEC_WORKERS)")
	batchCmd.Flags().StringVarP(&batchOutput, "output", "o", "results.xlsx", "Results workbook")
}

func runBatch(cmd *cobra.Command, args []string) error {
	in, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer in.Close()

	workers := batchWorkers
	if workers <= 0 {
		workers = cfg.Workers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := batch.Run(ctx, in, workers)
	if err != nil && results == nil {
		return err
	}

	printTitle("BATCH DESIGN")
	w := newTable()
	fmt.Fprintf(w, "  Row\tName\tKind\tResult\n")
	fmt.Fprintf(w, "  ───\t────\t────\t──────\n")
	failed := 0
	for _, res := range results {
		name, kind := "", ""
		if res.Case != nil {
			name, kind = res.Case.Name, string(res.Case.Kind)
		}
		switch o := res.Outcome; {
		case res.Err != nil:
			failed++
			fmt.Fprintf(w, "  %d\t%s\t%s\tError: %v\n", res.Row, name, kind, res.Err)
		case o.Beam != nil:
			fmt.Fprintf(w, "  %d\t%s\t%s\tAst = %.0f mm², Asc = %.0f mm², sv = %.0f mm\n", res.Row, name, kind, o.Beam.Ast, o.Beam.Asc, o.Beam.Sv)
		case o.Column != nil:
			fmt.Fprintf(w, "  %d\t%s\t%s\tps = %.3f %%, As = %.0f mm²\n", res.Row, name, kind, o.Column.Ps, o.Column.AsTotal)
		}
	}
	w.Flush()
	fmt.Printf("\n  %d rows, %d failed\n\n", len(results), failed)

	file := outputPath(batchOutput)
	out, werr := os.Create(file)
	if werr != nil {
		return werr
	}
	if werr := batch.WriteResults(results, out); werr != nil {
		out.Close()
		return fmt.Errorf("writing results: %w", werr)
	}
	if werr := out.Close(); werr != nil {
		return werr
	}
	fmt.Printf("Results written to: %s\n", file)
	return err
}
