package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/alexiusacademia/gorcsec/internal/section"
	"github.com/cpmech/gosl/chk"
)

const beamCase = `{"name": "B", "kind": "beam", "concrete": "M20", "steel": "Fe415", "width": 230, "depth": 450, "cover": 25, "loads": {"mu": 50, "vu": 40}}`

func do(tst *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func Test_api01(tst *testing.T) {

	chk.PrintTitle("api01. design and report")

	h := NewRouter(100, 100)

	data, err := os.ReadFile("../section/testdata/beam.json")
	if err != nil {
		tst.Errorf("cannot read fixture: %v", err)
		return
	}
	rec := do(tst, h, "POST", "/api/design", string(data))
	if rec.Code != http.StatusOK {
		tst.Errorf("design: status %d: %s", rec.Code, rec.Body.String())
		return
	}
	var out section.Outcome
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		tst.Errorf("cannot decode outcome: %v", err)
		return
	}
	chk.Float64(tst, "asc", 1e-6, out.Beam.Asc, 81.40672072468705)

	rec = do(tst, h, "POST", "/api/report", string(data))
	if rec.Code != http.StatusOK || !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		tst.Errorf("report: status %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		tst.Errorf("report: content type %q", ct)
	}

	for _, c := range []struct {
		body string
		code int
	}{
		{`{"kind": `, http.StatusBadRequest},
		{`{"kind": "beam", "concrete": "C30", "steel": "Fe415", "width": 230, "depth": 450, "cover": 25}`, http.StatusBadRequest},
		{`{"kind": "beam", "concrete": "M20", "steel": "Fe415", "width": 230, "depth": 450, "cover": 25, "loads": {"mu": 50, "vu": 500}}`, http.StatusUnprocessableEntity},
		{`{"kind": "flanged", "concrete": "M20", "steel": "Fe500", "width": 230, "depth": 450, "cover": 25, "flange_width": 900, "flange_depth": 150, "loads": {"mu": 500}}`, http.StatusUnprocessableEntity},
		{`{"kind": "column", "concrete": "M20", "steel": "Fe500", "width": 300, "depth": 500, "cover": 50, "loads": {"mu": 120}}`, http.StatusBadRequest},
	} {
		if rec := do(tst, h, "POST", "/api/design", c.body); rec.Code != c.code {
			tst.Errorf("%s: expected %d, got %d", c.body, c.code, rec.Code)
		}
	}

	for _, c := range []struct{ method, path string }{
		{"GET", "/api/design"},
		{"PUT", "/api/report"},
		{"GET", "/api/beam/capacity"},
		{"DELETE", "/api/column/capacity"},
		{"POST", "/api/materials/M20"},
	} {
		if rec := do(tst, h, c.method, c.path, ""); rec.Code != http.StatusMethodNotAllowed {
			tst.Errorf("%s %s: expected 405, got %d", c.method, c.path, rec.Code)
		}
	}
	if rec := do(tst, h, "POST", "/api/unknown", "{}"); rec.Code != http.StatusNotFound {
		tst.Errorf("unknown path: expected 404, got %d", rec.Code)
	}
}

func Test_api02(tst *testing.T) {

	chk.PrintTitle("api02. capacities")

	h := NewRouter(100, 100)

	rec := do(tst, h, "POST", "/api/beam/capacity", `{"case": `+beamCase+`, "xu": 150}`)
	if rec.Code != http.StatusOK {
		tst.Errorf("beam capacity: status %d: %s", rec.Code, rec.Body.String())
		return
	}
	var bc BeamCapacity
	json.NewDecoder(rec.Body).Decode(&bc)
	chk.Float64(tst, "mu", 1e-9, bc.Mu, 87.53560090702946)
	chk.Float64(tst, "force", 1e-9, bc.Force, 248.25396825396823)
	chk.Float64(tst, "ast", 1e-9, bc.Ast, 687.9326831134059)

	if rec := do(tst, h, "POST", "/api/beam/capacity", `{"case": `+beamCase+`, "xu": 300}`); rec.Code != http.StatusBadRequest {
		tst.Errorf("xu beyond xu,max: expected 400, got %d", rec.Code)
	}

	column := `{"kind": "column", "concrete": "M20", "steel": "Fe500", "width": 300, "depth": 500, "cover": 50}`
	rec = do(tst, h, "POST", "/api/column/capacity", `{"case": `+column+`, "xu": 500}`)
	if rec.Code != http.StatusOK {
		tst.Errorf("column capacity: status %d: %s", rec.Code, rec.Body.String())
		return
	}
	var cc ColumnCapacity
	json.NewDecoder(rec.Body).Decode(&cc)
	chk.Float64(tst, "pu", 1e-9, cc.Pu, 1079.3650793650793)
	chk.Float64(tst, "report pu", 1e-6, cc.Report.Pu/1e3, cc.Pu)

	if rec := do(tst, h, "POST", "/api/column/capacity", `{"case": `+column+`, "xu": 0}`); rec.Code != http.StatusBadRequest {
		tst.Errorf("xu = 0: expected 400, got %d", rec.Code)
	}
	if rec := do(tst, h, "POST", "/api/column/capacity", `{"case": `+beamCase+`, "xu": 100}`); rec.Code != http.StatusBadRequest {
		tst.Errorf("beam case on the column route: expected 400, got %d", rec.Code)
	}
}

func Test_api03(tst *testing.T) {

	chk.PrintTitle("api03. materials and rate limit")

	h := NewRouter(100, 100)

	rec := do(tst, h, "GET", "/api/materials/M25", "")
	var m Material
	json.NewDecoder(rec.Body).Decode(&m)
	if rec.Code != http.StatusOK || m.Kind != "concrete" {
		tst.Errorf("M25: status %d, kind %q", rec.Code, m.Kind)
	}
	chk.Float64(tst, "fd", 1e-12, m.Fd, 100.0/9)
	chk.Float64(tst, "τc,max", 1e-12, m.TauCMax, 3.1)
	chk.Float64(tst, "curve end", 1e-12, m.Curve[len(m.Curve)-1][1], 100.0/9)

	rec = do(tst, h, "GET", "/api/materials/Fe500", "")
	m = Material{}
	json.NewDecoder(rec.Body).Decode(&m)
	if rec.Code != http.StatusOK || m.Kind != "steel" {
		tst.Errorf("Fe500: status %d, kind %q", rec.Code, m.Kind)
	}
	chk.Float64(tst, "fd", 1e-12, m.Fd, 500*100.0/115)

	if rec := do(tst, h, "GET", "/api/materials/C30", ""); rec.Code != http.StatusNotFound {
		tst.Errorf("C30: expected 404, got %d", rec.Code)
	}

	limited := NewRouter(1, 2)
	codes := make([]int, 3)
	for i := range codes {
		codes[i] = do(tst, limited, "GET", "/api/materials/M20", "").Code
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		tst.Errorf("rate limit: got %v", codes)
	}
}
