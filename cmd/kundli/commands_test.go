package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samvad-hq/kundli-sdk/internal/app"
	"github.com/samvad-hq/kundli-sdk/internal/config"
)

func TestParseParams(t *testing.T) {
	got, err := parseParams([]string{"chart_id=D9", "planet_name= mars", "empty="})
	if err != nil {
		t.Fatalf("parseParams: %v", err)
	}
	if got["chart_id"] != "D9" || got["planet_name"] != " mars" || got["empty"] != "" {
		t.Fatalf("unexpected params %#v", got)
	}

	for _, bad := range []string{"chart_id", "=D9"} {
		if _, err := parseParams([]string{bad}); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestReadPayload(t *testing.T) {
	raw, err := readPayload("", "", nil)
	if err != nil || string(raw) != "{}" {
		t.Fatalf("empty payload = %q, %v", raw, err)
	}

	raw, err = readPayload("-", "", strings.NewReader(" {\"day\":1}\n"))
	if err != nil || string(raw) != `{"day":1}` {
		t.Fatalf("stdin payload = %q, %v", raw, err)
	}

	path := filepath.Join(t.TempDir(), "birth.json")
	if err := os.WriteFile(path, []byte(`{"year":1990}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw, err = readPayload("", path, nil)
	if err != nil || string(raw) != `{"year":1990}` {
		t.Fatalf("file payload = %q, %v", raw, err)
	}
}

func newTestCLI(t *testing.T, handler http.HandlerFunc) (*cli, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		BaseURI:                srv.URL + "/v1",
		APITimeout:             2 * time.Second,
		StorageType:            "bbolt",
		BBoltPath:              filepath.Join(t.TempDir(), "history.db"),
		StorageTTL:             time.Hour,
		StorageCleanupInterval: time.Hour,
	}
	var stdout, stderr bytes.Buffer
	c := &cli{
		stdin:  strings.NewReader(""),
		stdout: &stdout,
		stderr: &stderr,
		newRunner: func(ctx context.Context) (*app.Runner, error) {
			return app.NewRunner(ctx, cfg, nil)
		},
	}
	return c, &stdout, &stderr
}

func TestCallCommandPrintsBody(t *testing.T) {
	var gotPath, gotBody string
	c, stdout, _ := newTestCLI(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = io.WriteString(w, `{"chart":"D9"}`)
	})

	root := newRootCommand(c)
	root.SetArgs([]string{"call", "horo_chart", "-p", "chart_id=D9", "-d", `{"day":10}`})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if gotPath != "/v1/horo_chart/D9" {
		t.Fatalf("path = %s", gotPath)
	}
	if gotBody != `{"day":10}` {
		t.Fatalf("body = %s", gotBody)
	}
	if strings.TrimSpace(stdout.String()) != `{"chart":"D9"}` {
		t.Fatalf("stdout = %q", stdout.String())
	}

	root = newRootCommand(c)
	root.SetArgs([]string{"history", "--json"})
	stdout.Reset()
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(stdout.String(), `"operation": "horo_chart"`) {
		t.Fatalf("history output missing call: %s", stdout.String())
	}
}

func TestCallCommandReportsAPIError(t *testing.T) {
	c, _, stderr := newTestCLI(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"msg":"bad"}`, http.StatusBadRequest)
	})

	root := newRootCommand(c)
	root.SetArgs([]string{"call", "planets"})
	err := root.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "400") {
		t.Fatalf("expected 400 error, got %v", err)
	}
	if !strings.Contains(stderr.String(), `{"msg":"bad"}`) {
		t.Fatalf("error body not shown: %q", stderr.String())
	}
}

func TestEndpointsCommandListsCatalog(t *testing.T) {
	c, stdout, _ := newTestCLI(t, func(http.ResponseWriter, *http.Request) {})

	root := newRootCommand(c)
	root.SetArgs([]string{"endpoints"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("execute: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"NAME", "astro_details", "/horo_chart/{chart_id}"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBatchCommandReportsEveryJob(t *testing.T) {
	c, stdout, _ := newTestCLI(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{}`)
	})

	jobs := filepath.Join(t.TempDir(), "jobs.yaml")
	body := "jobs:\n  - id: a\n    operation: astro_details\n  - id: b\n    operation: horo_chart\n"
	if err := os.WriteFile(jobs, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	root := newRootCommand(c)
	root.SetArgs([]string{"batch", jobs})
	err := root.ExecuteContext(context.Background())
	if err == nil || !strings.Contains(err.Error(), "job b") {
		t.Fatalf("expected job b failure, got %v", err)
	}
	out := stdout.String()
	if !strings.Contains(out, "a ") || !strings.Contains(out, "chart_id") {
		t.Fatalf("batch output incomplete:\n%s", out)
	}
}
