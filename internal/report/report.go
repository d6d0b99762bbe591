package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexiusacademia/gorcsec/internal/section"
	"github.com/phpdave11/gofpdf"
)

// ErrEmptyReport is returned when a report has nothing to write
var ErrEmptyReport = errors.New("report has no sections")

// Report is a printable design report
type Report struct {
	Title    string
	Project  string
	Author   string
	Date     time.Time
	Sections []Section
}

// Section is a headed block of free lines followed by a two-column table
type Section struct {
	Heading string
	Lines   []string
	Rows    [][2]string
}

// the core fonts only cover cp1252
var symbols = strings.NewReplacer(
	"τ", "tau", "ε", "eps", "≤", "<=", "≥", ">=", "φ", "phi", "✓", "ok",
)

// Write renders the report as PDF
func (r Report) Write(w io.Writer) error {
	if len(r.Sections) == 0 {
		return ErrEmptyReport
	}
	if r.Title == "" {
		r.Title = "Section Design Report"
	}
	if r.Date.IsZero() {
		r.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(symbols.Replace(s)) }

	pdf.SetTitle(r.Title, true)
	pdf.SetAuthor(r.Author, true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, text(r.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if r.Project != "" {
		pdf.Cell(0, 6, text(fmt.Sprintf("Project: %s", r.Project)))
		pdf.Ln(6)
	}
	if r.Author != "" {
		pdf.Cell(0, 6, text(fmt.Sprintf("Author: %s", r.Author)))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", r.Date.Format("2006-01-02")))
	pdf.Ln(10)

	for _, s := range r.Sections {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, text(s.Heading))
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "", 11)
		for _, line := range s.Lines {
			pdf.MultiCell(0, 6, text(line), "", "L", false)
		}
		if len(s.Rows) > 0 {
			pdf.Ln(2)
			for i, row := range s.Rows {
				fill := i%2 == 0
				pdf.SetFillColor(235, 240, 250)
				pdf.CellFormat(80, 6, text(row[0]), "1", 0, "L", fill, 0, "")
				pdf.CellFormat(90, 6, text(row[1]), "1", 1, "R", fill, 0, "")
			}
		}
		pdf.Ln(6)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// FromOutcome builds the standard report of a designed case
func FromOutcome(c *section.Case, o *section.Outcome) Report {
	name := c.Name
	if name == "" {
		name = string(c.Kind)
	}
	r := Report{
		Title: fmt.Sprintf("Design of %s", name),
	}

	input := Section{
		Heading: "Input",
		Lines:   []string{o.Section},
		Rows: [][2]string{
			{"Concrete", c.Concrete},
			{"Steel", c.Steel},
			{"Width b (mm)", fmt.Sprintf("%.0f", c.Width)},
			{"Depth D (mm)", fmt.Sprintf("%.0f", c.Depth)},
			{"Cover (mm)", fmt.Sprintf("%.0f", c.Cover)},
		},
	}
	if c.Description != "" {
		input.Lines = append([]string{c.Description}, input.Lines...)
	}
	if c.Kind == section.KindFlanged {
		input.Rows = append(input.Rows,
			[2]string{"Flange width bf (mm)", fmt.Sprintf("%.0f", c.FlangeWidth)},
			[2]string{"Flange depth Df (mm)", fmt.Sprintf("%.0f", c.FlangeDepth)},
		)
	}
	loads := [][2]string{{"Mu (kN·m)", fmt.Sprintf("%.2f", c.Loads.Mu)}}
	if c.Kind == section.KindColumn {
		loads = append(loads, [2]string{"Pu (kN)", fmt.Sprintf("%.2f", c.Loads.Pu)})
	} else {
		loads = append(loads,
			[2]string{"Vu (kN)", fmt.Sprintf("%.2f", c.Loads.Vu)},
			[2]string{"Tu (kN·m)", fmt.Sprintf("%.2f", c.Loads.Tu)},
		)
	}
	input.Rows = append(input.Rows, loads...)
	r.Sections = append(r.Sections, input)

	if p := o.Properties; p != nil {
		r.Sections = append(r.Sections, Section{
			Heading: "Gross Section",
			Rows: [][2]string{
				{"Area (mm²)", fmt.Sprintf("%.0f", p.Area)},
				{"Centroid from bottom (mm)", fmt.Sprintf("%.2f", p.CentroidY)},
			},
		})
	}

	results := Section{Heading: "Results", Lines: o.Summary()[2:]}
	if b := o.Beam; b != nil {
		results.Rows = [][2]string{
			{"Mu,lim (kN·m)", fmt.Sprintf("%.2f", b.Mulim/1e6)},
			{"xu (mm)", fmt.Sprintf("%.2f", b.Xu)},
			{"xu,max (mm)", fmt.Sprintf("%.2f", b.XuMax)},
			{"Ast (mm²)", fmt.Sprintf("%.0f", b.Ast)},
			{"Asc (mm²)", fmt.Sprintf("%.0f", b.Asc)},
			{"Stirrup spacing (mm)", fmt.Sprintf("%.0f", b.Sv)},
		}
		if o.CheckForce > 0 {
			results.Rows = append(results.Rows, [2]string{"Concrete force, numerical (kN)", fmt.Sprintf("%.1f", o.CheckForce/1e3)})
		}
	}
	r.Sections = append(r.Sections, results)

	if st := o.Column; st != nil {
		hist := Section{Heading: "Design Iterations"}
		for i, it := range st.Iterations {
			hist.Rows = append(hist.Rows, [2]string{
				fmt.Sprintf("%d: xu = %.2f mm, ps = %.3f%%", i+1, it.Xu, it.Ps),
				fmt.Sprintf("Pu = %.1f kN, Mu = %.1f kN·m", it.Pu/1e3, it.Mu/1e6),
			})
		}
		r.Sections = append(r.Sections, hist)
	}
	return r
}
