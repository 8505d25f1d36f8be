package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"epgs/internal/scenario"
)

func writeScenarioFile(t *testing.T, dir string) string {
	t.Helper()
	s, err := scenario.LoadFixture("S-STABLE-SAFE")
	if err != nil {
		t.Fatal(err)
	}
	raw, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "scenario.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestHealthz(t *testing.T) {
	h := NewHandlers(t.TempDir())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	h.Healthz(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRunRejectsNonPost(t *testing.T) {
	h := NewHandlers(t.TempDir())
	req := httptest.NewRequest(http.MethodGet, "/run", nil)
	rec := httptest.NewRecorder()

	h.Run(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestRunRejectsMissingScenarioPath(t *testing.T) {
	h := NewHandlers(t.TempDir())
	req := httptest.NewRequest(http.MethodPost, "/run", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()

	h.Run(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRunFailsOnUnreadableScenarioFile(t *testing.T) {
	dir := t.TempDir()
	h := NewHandlers(dir)

	body, _ := json.Marshal(map[string]string{"scenario_path": filepath.Join(dir, "missing.json")})
	req := httptest.NewRequest(http.MethodPost, "/run", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	h.Run(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unreadable scenario file, got %d", rec.Code)
	}
}

func TestRunSucceedsAndVerifyRoundTrips(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := writeScenarioFile(t, dir)
	h := NewHandlers(filepath.Join(dir, "output"))

	body, _ := json.Marshal(map[string]string{"scenario_path": scenarioPath})
	req := httptest.NewRequest(http.MethodPost, "/run", bytes.NewBuffer(body))
	rec := httptest.NewRecorder()

	h.Run(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result struct {
		LedgerDir string `json:"ledger_dir"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}

	verifyReq := httptest.NewRequest(http.MethodGet, "/verify?ledger_dir="+result.LedgerDir, nil)
	verifyRec := httptest.NewRecorder()
	h.Verify(verifyRec, verifyReq)

	if verifyRec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", verifyRec.Code, verifyRec.Body.String())
	}

	var vr struct {
		OK bool `json:"ok"`
	}
	if err := json.Unmarshal(verifyRec.Body.Bytes(), &vr); err != nil {
		t.Fatal(err)
	}
	if !vr.OK {
		t.Fatalf("expected verify ok=true, got %s", verifyRec.Body.String())
	}
}

func TestVerifyRejectsMissingLedgerDir(t *testing.T) {
	h := NewHandlers(t.TempDir())
	req := httptest.NewRequest(http.MethodGet, "/verify", nil)
	rec := httptest.NewRecorder()

	h.Verify(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

