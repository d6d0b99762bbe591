package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gorcsec/internal/diagram"
	"github.com/alexiusacademia/gorcsec/internal/report"
	"github.com/alexiusacademia/gorcsec/internal/section"
	"github.com/spf13/cobra"
)

var (
	sectionFile        string
	sectionShowDiagram bool
	sectionExportFile  string
	sectionReportFile  string
	sectionProject     string
	sectionAuthor      string
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Design a section described in a JSON case file",
	Long: `Design a beam, flanged beam or column described in a JSON case file.
The case names the materials, the geometry and the factored loads.

Example JSON file structure:
{
  "name": "T1",
  "kind": "flanged",
  "concrete": "M20",
  "steel": "Fe500",
  "width": 230,
  "depth": 450,
  "cover": 25,
  "flange_width": 900,
  "flange_depth": 150,
  "loads": {"mu": 360, "vu": 120}
}

Examples:
  gorcsec section --file t-beam.json
  gorcsec section -f column.json --report column.pdf`,
	RunE: runSection,
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	sectionCmd.Flags().StringVarP(&sectionFile, "file", "f", "", "Path to case JSON file [required]")
	sectionCmd.MarkFlagRequired("file")

	sectionCmd.Flags().BoolVar(&sectionShowDiagram, "diagram", false, "Show ASCII section diagram (beams)")
	sectionCmd.Flags().StringVarP(&sectionExportFile, "output", "o", "", "Export section diagram to file (beams)")
	sectionCmd.Flags().StringVarP(&sectionReportFile, "report", "r", "", "Write a PDF design report")
	sectionCmd.Flags().StringVar(&sectionProject, "project", "", "Project name for the report")
	sectionCmd.Flags().StringVar(&sectionAuthor, "author", "", "Author for the report")
}

func runSection(cmd *cobra.Command, args []string) error {
	c, err := section.LoadFromFile(sectionFile)
	if err != nil {
		return fmt.Errorf("loading case: %w", err)
	}

	out, err := c.Design()
	if err != nil {
		return fmt.Errorf("designing %s: %w", c.Name, err)
	}

	printTitle("SECTION DESIGN - IS 456 LIMIT STATE")
	if c.Description != "" {
		fmt.Printf("  %s\n\n", c.Description)
	}

	props := out.Properties
	printHeading("GROSS SECTION:")
	w := newTable()
	fmt.Fprintf(w, "  Bounding box:\t%.0f x %.0f mm\n", props.Width, props.Height)
	fmt.Fprintf(w, "  Area:\t%.0f mm²\n", props.Area)
	fmt.Fprintf(w, "  Centroid from bottom:\t%.2f mm\n", props.CentroidY)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("RESULTS", out.Summary()))
	fmt.Println()

	if out.Beam != nil {
		fmt.Printf("  Concrete force check (numerical): %.2f kN\n\n", out.CheckForce/1e3)
		printBarSuggestions(out.Beam.Ast)

		web, err := c.RectBeam()
		if err != nil {
			return err
		}
		data := diagram.FromBeam(web, out.Beam.Xu, out.Beam.Ast, out.Beam.Asc)
		if c.Kind == section.KindFlanged {
			data.Width = c.FlangeWidth
			for _, v := range c.Outline() {
				data.Vertices = append(data.Vertices, diagram.Point{X: v.X, Y: v.Y})
			}
		}
		if sectionShowDiagram {
			fmt.Println(diagram.DrawASCIISectionDiagram(data))
		}
		if sectionExportFile != "" {
			file := outputPath(sectionExportFile)
			if err := diagram.ExportSectionDiagram(data, file); err != nil {
				return fmt.Errorf("exporting diagram: %w", err)
			}
			fmt.Printf("Diagram exported to: %s\n", file)
		}
	}

	if sectionReportFile != "" {
		r := report.FromOutcome(c, out)
		r.Project = sectionProject
		r.Author = sectionAuthor

		file := outputPath(sectionReportFile)
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		if err := r.Write(f); err != nil {
			f.Close()
			return fmt.Errorf("writing report: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("Report written to: %s\n", file)
	}
	return nil
}
