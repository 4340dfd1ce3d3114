// Package server exposes the analysis engine as a local JSON API for the
// dashboard and report layers.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/racewinner/dreamtool/pkg/catalog"
	"github.com/racewinner/dreamtool/pkg/compare"
	"github.com/racewinner/dreamtool/pkg/pipeline"
	"github.com/racewinner/dreamtool/pkg/scenario"
	"github.com/racewinner/dreamtool/pkg/validation"
)

// Server serves analysis results for one project directory.
type Server struct {
	projectPath string
	port        int
	catalog     *catalog.Catalog
}

// New creates a server for the given project directory.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		catalog:     catalog.Default(),
	}
}

// Routes returns the chi router for the API.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/api/healthz", s.handleHealthz)
	r.Get("/api/scenario", s.handleScenario)
	r.Get("/api/validation", s.handleValidation)
	r.Post("/api/analyze", s.handleAnalyze)
	r.Post("/api/compare", s.handleCompare)
	return r
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("dreamtool server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)
	return http.ListenAndServe(addr, s.Routes())
}

// analyzeRequest optionally overrides the project scenario. An empty body
// analyzes the scenario on disk.
type analyzeRequest struct {
	Equipment  []scenario.Equipment `json:"equipment,omitempty"`
	Parameters *scenario.Parameters `json:"parameters,omitempty"`
}

type compareRequest struct {
	Current    *scenario.Scenario   `json:"current,omitempty"`
	Ideal      *scenario.Scenario   `json:"ideal,omitempty"`
	Parameters *scenario.Parameters `json:"parameters,omitempty"`
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScenario(w http.ResponseWriter, _ *http.Request) {
	sc, params, err := s.loadProject()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"scenario":   sc,
		"parameters": params,
	})
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	sc, params, err := s.loadProject()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, validation.ValidateScenario(sc, params))
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	sc, params, err := s.loadProject()
	if err != nil {
		writeError(w, err)
		return
	}

	var req analyzeRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Equipment != nil {
		sc.Equipment, err = s.catalog.ResolveAll(req.Equipment)
		if err != nil {
			writeError(w, err)
			return
		}
	}
	if req.Parameters != nil {
		params = req.Parameters
	}

	result, err := pipeline.Run(sc, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	// The project may not ship an ideal.yaml when the request body
	// supplies both scenarios.
	current, ideal, params, err := scenario.LoadComparison(s.projectPath)
	if err != nil {
		current, ideal, params = nil, nil, nil
	}

	var req compareRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Current != nil {
		current = req.Current
	}
	if req.Ideal != nil {
		ideal = req.Ideal
	}
	if req.Parameters != nil {
		params = req.Parameters
	}
	if current == nil || ideal == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "both current and ideal scenarios are required",
		})
		return
	}
	if params == nil {
		p := scenario.DefaultParameters()
		params = &p
	}

	if current.Equipment, err = s.catalog.ResolveAll(current.Equipment); err != nil {
		writeError(w, err)
		return
	}
	if ideal.Equipment, err = s.catalog.ResolveAll(ideal.Equipment); err != nil {
		writeError(w, err)
		return
	}

	comparison, err := compare.Compare(current, ideal, params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comparison)
}

func (s *Server) loadProject() (*scenario.Scenario, *scenario.Parameters, error) {
	sc, params, err := scenario.LoadProject(s.projectPath)
	if err != nil {
		return nil, nil, err
	}
	sc.Equipment, err = s.catalog.ResolveAll(sc.Equipment)
	if err != nil {
		return nil, nil, err
	}
	return sc, params, nil
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

// writeError maps validation failures to 400 and everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if _, ok := validation.AsFieldError(err); ok {
		status = http.StatusBadRequest
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
