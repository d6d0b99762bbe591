package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/alexiusacademia/gorcsec/internal/section"
	"github.com/cpmech/gosl/chk"
)

func Test_report01(tst *testing.T) {

	chk.PrintTitle("report01. beam and column reports")

	for _, file := range []string{"beam.json", "tbeam.json", "column.json"} {
		c, err := section.LoadFromFile("../section/testdata/" + file)
		if err != nil {
			tst.Errorf("%s: %v", file, err)
			continue
		}
		o, err := c.Design()
		if err != nil {
			tst.Errorf("%s: %v", file, err)
			continue
		}

		r := FromOutcome(c, o)
		r.Project = "Test project"
		r.Author = "QA"
		r.Date = time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
		if !strings.Contains(r.Title, c.Name) {
			tst.Errorf("%s: title %q lacks the case name", file, r.Title)
		}
		wantSections := 3
		if c.Kind == section.KindColumn {
			wantSections = 4
		}
		if len(r.Sections) != wantSections {
			tst.Errorf("%s: expected %d sections, got %d", file, wantSections, len(r.Sections))
		}

		var buf bytes.Buffer
		if err := r.Write(&buf); err != nil {
			tst.Errorf("%s: Write failed: %v", file, err)
			continue
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
			tst.Errorf("%s: output is not a PDF", file)
		}
	}
}

func Test_report02(tst *testing.T) {

	chk.PrintTitle("report02. empty report")

	var buf bytes.Buffer
	if err := (Report{Title: "x"}).Write(&buf); !errors.Is(err, ErrEmptyReport) {
		tst.Errorf("expected ErrEmptyReport, got %v", err)
	}
	if buf.Len() != 0 {
		tst.Errorf("nothing must be written")
	}
}
