package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/alexiusacademia/gorcsec/internal/section"
	"github.com/xuri/excelize/v2"
)

// ResultsSheet is the name of the sheet written by WriteResults
const ResultsSheet = "Results"

// ErrEmptySheet is returned when the first sheet has no case rows
var ErrEmptySheet = errors.New("sheet has no case rows")

// Result is the outcome of one spreadsheet row. Err is set when the row could not be read or
// designed; Case is nil when the row could not be read.
type Result struct {
	Row     int // 1-based row number in the sheet
	Case    *section.Case
	Outcome *section.Outcome
	Err     error
}

// Run reads the first sheet of the workbook and designs every row on a pool of workers.
// The first row is a header naming the case fields (name, kind, member, concrete, steel,
// shear_steel, width, depth, cover, flange_width, flange_depth, tension_bar_dia,
// compression_bar_dia, stirrup_dia, stirrup_legs, steel_percentage, mu, vu, tu, pu).
// Results come back in row order; failed rows do not stop the batch.
func Run(ctx context.Context, r io.Reader, workers int) ([]Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptySheet
	}
	header := parseHeader(rows[0])

	results := make([]Result, len(rows)-1)
	for i := range results {
		results[i].Row = i + 2
	}

	if workers < 1 {
		workers = 1
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res := &results[i]
				if err := ctx.Err(); err != nil {
					res.Err = err
					continue
				}
				res.Case, res.Err = parseRow(header, rows[i+1])
				if res.Err != nil {
					continue
				}
				res.Outcome, res.Err = res.Case.Design()
			}
		}()
	}

	for i := range results {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, ctx.Err()
}

func parseHeader(row []string) map[string]int {
	header := make(map[string]int, len(row))
	for i, name := range row {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return header
}

func parseRow(header map[string]int, row []string) (*section.Case, error) {
	var err error
	cell := func(name string) string {
		i, ok := header[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(name string) float64 {
		s := cell(name)
		if s == "" || err != nil {
			return 0
		}
		v, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			err = fmt.Errorf("column %s: %q is not a number", name, s)
		}
		return v
	}

	c := &section.Case{
		Name:              cell("name"),
		Description:       cell("description"),
		Kind:              section.Kind(strings.ToLower(cell("kind"))),
		Member:            cell("member"),
		Concrete:          cell("concrete"),
		Steel:             cell("steel"),
		ShearSteel:        cell("shear_steel"),
		Width:             num("width"),
		Depth:             num("depth"),
		Cover:             num("cover"),
		FlangeWidth:       num("flange_width"),
		FlangeDepth:       num("flange_depth"),
		TensionBarDia:     num("tension_bar_dia"),
		CompressionBarDia: num("compression_bar_dia"),
		StirrupDia:        num("stirrup_dia"),
		StirrupLegs:       int(num("stirrup_legs")),
		SteelPercentage:   num("steel_percentage"),
		Loads: section.Loads{
			Mu: num("mu"),
			Vu: num("vu"),
			Tu: num("tu"),
			Pu: num("pu"),
		},
	}
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var resultHeader = []interface{}{
	"Row", "Name", "Kind", "Section", "xu (mm)", "Ast (mm²)", "Asc (mm²)", "sv (mm)", "ps (%)", "As (mm²)", "Status",
}

// WriteResults writes the results to a new workbook with a single Results sheet
func WriteResults(results []Result, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(ResultsSheet, "A1", &resultHeader); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(ResultsSheet, 1, 1, bold); err != nil {
		return err
	}

	for i, res := range results {
		row := []interface{}{res.Row}
		if res.Case != nil {
			row = append(row, res.Case.Name, string(res.Case.Kind))
		} else {
			row = append(row, "", "")
		}

		switch o := res.Outcome; {
		case res.Err != nil || o == nil:
			status := "error"
			if res.Err != nil {
				status = "error: " + res.Err.Error()
			}
			row = append(row, "", "", "", "", "", "", "", status)
		case o.Beam != nil:
			b := o.Beam
			row = append(row, o.Section, b.Xu, b.Ast, b.Asc, b.Sv, "", "", b.Message)
		case o.Column != nil:
			st := o.Column
			row = append(row, o.Section, st.Xu, "", "", "", st.Ps, st.AsTotal, "converged")
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ResultsSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
