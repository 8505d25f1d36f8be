// Package httpapi is a thin adapter around the core pipeline: it
// exposes the run and verify operations over HTTP. None of the
// determinism-critical logic lives here — handlers only decode
// requests, call the core packages, and encode results.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"epgs/internal/orchestrator"
	"epgs/internal/scenario"
	"epgs/internal/verifier"
)

type Handlers struct {
	defaultOutputRoot string
}

func NewHandlers(defaultOutputRoot string) *Handlers {
	return &Handlers{defaultOutputRoot: defaultOutputRoot}
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

type runRequest struct {
	ScenarioPath string `json:"scenario_path"`
	OutputRoot   string `json:"output_root"`
}

// Run handles POST /run.
func (h *Handlers) Run(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req runRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.ScenarioPath) == "" {
		writeErr(w, http.StatusBadRequest, "scenario_path required")
		return
	}

	outputRoot := req.OutputRoot
	if strings.TrimSpace(outputRoot) == "" {
		outputRoot = h.defaultOutputRoot
	}

	result, err := orchestrator.RunScenario(req.ScenarioPath, outputRoot)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, scenario.ErrValidation) {
			code = http.StatusBadRequest
		}
		writeErr(w, code, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Verify handles GET /verify?ledger_dir=...
func (h *Handlers) Verify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ledgerDir := r.URL.Query().Get("ledger_dir")
	if strings.TrimSpace(ledgerDir) == "" {
		writeErr(w, http.StatusBadRequest, "ledger_dir required")
		return
	}

	writeJSON(w, http.StatusOK, verifier.Verify(ledgerDir))
}
