package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexiusacademia/gorcsec/internal/beam"
	"github.com/alexiusacademia/gorcsec/internal/column"
	"github.com/alexiusacademia/gorcsec/internal/is456"
	"github.com/alexiusacademia/gorcsec/internal/report"
	"github.com/alexiusacademia/gorcsec/internal/section"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// maximum request body (bytes)
const maxBody = 1 << 20

// NewRouter returns the API routes behind a per-client rate limit of limit requests per
// second with bursts of burst
func NewRouter(limit float64, burst int) *mux.Router {
	r := mux.NewRouter()
	h := &Handler{}

	r.Use(NewIPRateLimiter(rate.Limit(limit), burst).LimitMiddleware)

	// full paths on the root router so a known path with the wrong method gets 405
	r.HandleFunc("/api/design", h.Design).Methods("POST")
	r.HandleFunc("/api/report", h.Report).Methods("POST")
	r.HandleFunc("/api/beam/capacity", h.BeamCapacity).Methods("POST")
	r.HandleFunc("/api/column/capacity", h.ColumnCapacity).Methods("POST")
	r.HandleFunc("/api/materials/{grade}", h.Material).Methods("GET")
	return r
}

// Handler serves the section design operations
type Handler struct{}

// CapacityRequest asks for the capacity of a case's section at a neutral axis depth
type CapacityRequest struct {
	Case section.Case `json:"case"`
	Xu   float64      `json:"xu"` // mm
}

// BeamCapacity is the moment of resistance of a beam section
type BeamCapacity struct {
	Xu    float64 `json:"xu"`     // mm
	XuMax float64 `json:"xu_max"` // mm
	Mu    float64 `json:"mu"`     // kN·m
	Force float64 `json:"force"`  // concrete compression (kN)
	Ast   float64 `json:"ast"`    // tension steel balancing the compression (mm²)
}

// ColumnCapacity is the axial load and moment a column carries at a neutral axis depth
type ColumnCapacity struct {
	Xu     float64       `json:"xu"` // mm
	Pu     float64       `json:"pu"` // kN
	Mu     float64       `json:"mu"` // kN·m
	Report column.Report `json:"report"`
}

// Material describes a concrete or steel grade
type Material struct {
	Label   string       `json:"label"`
	Kind    string       `json:"kind"` // "concrete" or "steel"
	Fck     float64      `json:"fck,omitempty"`
	Fd      float64      `json:"fd"`
	TauCMax float64      `json:"tau_c_max,omitempty"`
	Curve   [][2]float64 `json:"curve"` // design stress-strain law, (strain, N/mm²)
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(v); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// StatusFor maps a design error to an HTTP status
func StatusFor(err error) int {
	switch {
	case errors.Is(err, beam.ErrShearCapacityExceeded), errors.Is(err, beam.ErrDoublyReinforced):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), StatusFor(err))
}

// Design runs the design of a case
func (h *Handler) Design(w http.ResponseWriter, r *http.Request) {
	var c section.Case
	if !decode(w, r, &c) {
		return
	}
	out, err := c.Design()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, out)
}

// Report designs a case and returns the PDF report
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	var c section.Case
	if !decode(w, r, &c) {
		return
	}
	out, err := c.Design()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := report.FromOutcome(&c, out).Write(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
	}
}

// BeamCapacity evaluates a rectangular or flanged beam at the requested neutral axis depth
func (h *Handler) BeamCapacity(w http.ResponseWriter, r *http.Request) {
	var req CapacityRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Case.Validate(); err != nil {
		writeError(w, err)
		return
	}

	var (
		res   BeamCapacity
		fd    float64
		force float64
		err   error
	)
	res.Xu = req.Xu
	switch req.Case.Kind {
	case section.KindBeam:
		var s beam.RectSection
		if s, err = req.Case.RectBeam(); err != nil {
			break
		}
		res.XuMax = s.XuMax()
		if res.Mu, err = s.Mu(req.Xu); err != nil {
			break
		}
		force = beam.Ac * s.Concrete.Fck * s.Width * req.Xu
		fd = s.TensionBars.Fd()
	case section.KindFlanged:
		var f beam.FlangedSection
		if f, err = req.Case.Flanged(); err != nil {
			break
		}
		res.XuMax = f.XuMax()
		if res.Mu, err = f.Mu(req.Xu); err != nil {
			break
		}
		force, _, err = f.Force(req.Xu)
		fd = f.Web.TensionBars.Fd()
	default:
		err = fmt.Errorf("case kind %q is not a beam", req.Case.Kind)
	}
	if err != nil {
		writeError(w, err)
		return
	}

	res.Mu /= 1e6
	res.Force = force / 1e3
	res.Ast = force / fd
	writeJSON(w, res)
}

// ColumnCapacity evaluates a column at the requested neutral axis depth
func (h *Handler) ColumnCapacity(w http.ResponseWriter, r *http.Request) {
	var req CapacityRequest
	if !decode(w, r, &req) {
		return
	}
	if err := req.Case.Validate(); err != nil {
		writeError(w, err)
		return
	}
	if req.Case.Kind != section.KindColumn {
		writeError(w, fmt.Errorf("case kind %q is not a column", req.Case.Kind))
		return
	}
	s, err := req.Case.Column()
	if err != nil {
		writeError(w, err)
		return
	}
	pu, mu, rep, err := s.PuMu(req.Xu)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, ColumnCapacity{Xu: req.Xu, Pu: pu / 1e3, Mu: mu / 1e6, Report: rep})
}

// Material describes a grade label such as M25, Fe500 or MS250
func (h *Handler) Material(w http.ResponseWriter, r *http.Request) {
	grade := mux.Vars(r)["grade"]

	if c, err := is456.ParseConcrete(grade); err == nil {
		m := Material{
			Label:   c.String(),
			Kind:    "concrete",
			Fck:     c.Fck,
			Fd:      c.Fd(),
			TauCMax: c.TauCMax(),
		}
		for i := 0; i <= 14; i++ {
			e := is456.EcU * float64(i) / 14
			m.Curve = append(m.Curve, [2]float64{e, c.Fc(e)})
		}
		writeJSON(w, m)
		return
	}

	bar, err := is456.ParseRebar(grade)
	if err != nil {
		http.Error(w, fmt.Sprintf("unknown grade %q", grade), http.StatusNotFound)
		return
	}
	m := Material{
		Label: bar.Name(),
		Kind:  "steel",
		Fd:    bar.Fd(),
	}
	emax := 1.5 * (bar.Fd()/is456.Es + 0.002)
	for i := 0; i <= 20; i++ {
		e := emax * float64(i) / 20
		m.Curve = append(m.Curve, [2]float64{e, bar.Fs(e)})
	}
	writeJSON(w, m)
}
