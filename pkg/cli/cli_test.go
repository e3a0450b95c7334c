package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
)

func writeDevices(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.json")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newOpenFDAServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Query().Get("search"), `device_name:"AS"`) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"No matches found!"}}`))
			return
		}
		resp := map[string]any{
			"meta": map[string]any{"results": map[string]any{"skip": 0, "limit": 1000, "total": 2}},
			"results": []map[string]any{
				{"applicant": "Acme", "device_name": "AS", "date_received": "2021-01-01", "decision_date": "2021-01-21"},
				{"applicant": "Acme", "device_name": "AS", "date_received": "2021-01-11", "decision_date": "2021-01-31"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		gt.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
}

func TestRunCommand(t *testing.T) {
	srv := newOpenFDAServer(t)
	defer srv.Close()

	devices := writeDevices(t, `{"devices":[
		{"manufacturer":"Acme","aliases":["AcmeScan","AS"]},
		{"manufacturer":"Nobody","aliases":["Ghost"]}
	]}`)

	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), []string{
		"benchmark510k", "--log-format", "json",
		"run",
		"--devices", devices,
		"--openfda-url", srv.URL,
		"--openfda-page-delay", "0s",
	})
	gt.NoError(t, err)

	report := out.String()
	gt.S(t, report).Contains("| Percentile | Mean Days Between Submissions | Days Since Last Submission | Mean Time to Decision |")
	gt.S(t, report).Contains("| 50% | 10 |")
	gt.S(t, report).Contains("| **n** | **1** | **1** | **1** |")
}

func TestRunCommandMissingDevices(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), []string{
		"benchmark510k", "--log-format", "json",
		"run", "--devices", filepath.Join(t.TempDir(), "missing.json"),
	})
	gt.Error(t, err)
	gt.Equal(t, out.Len(), 0)
}

func TestRunCommandOpenFDAFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	devices := writeDevices(t, `{"devices":[{"manufacturer":"Acme","aliases":["AS"]}]}`)

	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), []string{
		"benchmark510k", "--log-format", "json",
		"run", "--devices", devices, "--openfda-url", srv.URL, "--openfda-page-delay", "0s",
	})
	gt.Error(t, err)
	gt.Equal(t, out.Len(), 0)
}

func TestDevicesCommand(t *testing.T) {
	devices := writeDevices(t, `{"devices":[{"manufacturer":"Acme","aliases":["AcmeScan","AS"]}]}`)

	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), []string{
		"benchmark510k", "--log-format", "json",
		"devices", "--devices", devices,
	})
	gt.NoError(t, err)
	gt.S(t, out.String()).Contains("Acme (AcmeScan, AS)")
	gt.S(t, out.String()).Contains(`applicant:"Acme" AND device_name:"AS"`)
}

func TestReportCommandRequiresFirestore(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), []string{
		"benchmark510k", "--log-format", "json",
		"report", "--run-id", "0190b6c4-7a4e-7cc1-9d6e-1f2a3b4c5d6e",
	})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("--firestore-project")
	gt.Equal(t, out.Len(), 0)
}

func TestReportCommandRequiresRunID(t *testing.T) {
	var out bytes.Buffer
	err := newApp(&out).Run(context.Background(), []string{
		"benchmark510k", "--log-format", "json",
		"report", "--firestore-project", "demo",
	})
	gt.Error(t, err)
}
