//go:build integration

package integration

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"topofix-hq/topofix/internal/fixtures"
	"topofix-hq/topofix/pkg/analysis"
	"topofix-hq/topofix/pkg/telemetry/health"
	"topofix-hq/topofix/pkg/telemetry/metrics"
	"topofix-hq/topofix/pkg/watch"
)

// TestWatchTriggersRerun tests that touching a watched input re-runs
// the analysis after the debounce window.
func TestWatchTriggersRerun(t *testing.T) {
	tmpDir := t.TempDir()
	errFile, topFile := fixtures.WriteInputs(t, tmpDir)
	reportFile := filepath.Join(tmpDir, "report.txt")

	runner := analysis.NewRunner(&analysis.Config{
		ErrorFile:    errFile,
		TopologyFile: topFile,
		ReportFile:   reportFile,
		ParamsFile:   filepath.Join(tmpDir, "params.itp"),
		Console:      io.Discard,
	})

	watcher, err := watch.NewFileWatcher(&watch.Config{
		Paths:            []string{errFile, topFile},
		DebounceInterval: 150 * time.Millisecond,
	}, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher() error = %v", err)
	}
	defer watcher.Close()

	ranCh := make(chan []string, 4)
	onChange := func(paths []string) error {
		if _, err := runner.Run(); err != nil {
			return err
		}
		ranCh <- paths
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watchErrCh := make(chan error, 1)
	go func() {
		watchErrCh <- watcher.Watch(ctx, onChange)
	}()

	// Give the watcher time to register the directories
	time.Sleep(200 * time.Millisecond)

	f, err := os.OpenFile(errFile, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatalf("failed to open error log: %v", err)
	}
	if _, err := f.WriteString("\nERROR 4 [file topol.top, line 12]:\n  No default Angle types\n"); err != nil {
		t.Fatalf("failed to append: %v", err)
	}
	f.Close()

	select {
	case paths := <-ranCh:
		found := false
		for _, p := range paths {
			if p == errFile {
				found = true
			}
		}
		if !found {
			t.Errorf("change callback got %v, want %s listed", paths, errFile)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("analysis did not re-run within 3 seconds of the input change")
	}

	if _, err := os.Stat(reportFile); err != nil {
		t.Errorf("report not written by the re-run: %v", err)
	}

	// Cancellation stops the watch loop cleanly
	cancel()
	select {
	case err := <-watchErrCh:
		if err != nil {
			t.Errorf("Watch() returned %v on cancellation, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Watch() did not return after cancellation")
	}
}

// TestMetricsAndHealthEndpoints tests the watch-mode HTTP surface
// against a live test server.
func TestMetricsAndHealthEndpoints(t *testing.T) {
	collector := metrics.NewCollector(nil)
	collector.RecordRun("success", 120*time.Millisecond)
	collector.RecordErrorsParsed(3)
	collector.RecordDummyParameters("angle", 2)
	collector.MarkWatchRun(time.Now())

	checker := health.New(2 * time.Second)
	checker.RegisterCheck("inputs", func(ctx context.Context) error {
		return nil
	})
	checker.RegisterCheck("archive", func(ctx context.Context) error {
		return errors.New("archive unreachable")
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	checker.Register(mux)

	srv := httptest.NewServer(mux)
	defer srv.Close()

	t.Run("metrics expose run counters", func(t *testing.T) {
		body := httpGet(t, srv.URL+"/metrics", http.StatusOK)
		if !strings.Contains(body, `topofix_runs_total{status="success"} 1`) {
			t.Errorf("metrics missing run counter:\n%s", body)
		}
		if !strings.Contains(body, `topofix_dummy_parameters_total{kind="angle"} 2`) {
			t.Errorf("metrics missing dummy parameter counter:\n%s", body)
		}
		if !strings.Contains(body, "topofix_errors_parsed_total 3") {
			t.Errorf("metrics missing parsed counter:\n%s", body)
		}
	})

	t.Run("liveness is unconditional", func(t *testing.T) {
		body := httpGet(t, srv.URL+"/healthz", http.StatusOK)
		if !strings.Contains(body, `"status":"ok"`) {
			t.Errorf("liveness body = %s", body)
		}
	})

	t.Run("readiness fails on a failing check", func(t *testing.T) {
		body := httpGet(t, srv.URL+"/readyz", http.StatusServiceUnavailable)
		if !strings.Contains(body, "archive unreachable") {
			t.Errorf("readiness body should name the failing check: %s", body)
		}
	})
}

// httpGet fetches a URL and asserts the response status
func httpGet(t *testing.T, url string, wantStatus int) string {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		t.Errorf("GET %s status = %d, want %d", url, resp.StatusCode, wantStatus)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(body)
}
