package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/mux"

	"github.com/bpmnchain/compiler/internal/bpmnerr"
	"github.com/bpmnchain/compiler/internal/pipeline"
	"github.com/bpmnchain/compiler/pkg/logger"
)

// Server wires the compiler pipeline behind a small JSON HTTP API. The
// single mutex serializes requests targeting the shared outputDir, the one
// concurrency hazard a network caller can introduce that a single CLI
// invocation never could.
type Server struct {
	outputDir string
	log       *logger.Logger
	mu        sync.Mutex
	router    *mux.Router
}

// NewServer builds a Server writing compiled artifacts to outputDir.
func NewServer(outputDir string, log *logger.Logger) *Server {
	s := &Server{outputDir: outputDir, log: log}
	s.router = mux.NewRouter()
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/compile", s.handleCompile).Methods(http.MethodPost)
	return s
}

// Router exposes the mux.Router so main can hand it to http.ListenAndServe.
func (s *Server) Router() *mux.Router {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// compileRequest is the JSON body POST /compile expects: the diagram as
// inline XML text, the target contract name, and a participant display-name
// to address map, mirroring the three inputs the CLI's interactive prompt
// collects.
type compileRequest struct {
	Diagram      string            `json:"diagram"`
	ContractName string            `json:"contractName"`
	Addresses    map[string]string `json:"addresses"`
}

// compileResponse inlines the emitted contract source. The analysis report
// is not inlined: ReportPath names the report file on the daemon's host.
type compileResponse struct {
	RunID        string   `json:"runId"`
	ContractName string   `json:"contractName"`
	Source       string   `json:"source"`
	ReportPath   string   `json:"reportPath"`
	Warnings     []string `json:"warnings"`
}

func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	var req compileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	outcome, err := pipeline.Compile(pipeline.Request{
		Diagram:      strings.NewReader(req.Diagram),
		ContractName: req.ContractName,
		Addresses:    req.Addresses,
		OutputDir:    s.outputDir,
	}, s.log.With("compile"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(compileResponse{
		RunID:        outcome.RunID,
		ContractName: req.ContractName,
		Source:       outcome.Source,
		ReportPath:   outcome.ReportPath,
		Warnings:     outcome.Warnings,
	})
}

// writeError maps the typed bpmnerr taxonomy to HTTP status codes: malformed
// input is a client error (400), everything else is a server-side failure.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var invalidName *bpmnerr.InvalidContractName
	var invalidAddr *bpmnerr.InvalidAddress
	var modelInvalid *bpmnerr.ModelInvalid
	var collision *bpmnerr.NameCollision
	switch {
	case errors.As(err, &invalidName), errors.As(err, &invalidAddr), errors.As(err, &modelInvalid), errors.As(err, &collision):
		status = http.StatusBadRequest
	}

	http.Error(w, err.Error(), status)
}
