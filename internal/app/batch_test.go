package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samvad-hq/kundli-sdk/pkg/kundli"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadJobsYAML(t *testing.T) {
	path := writeFile(t, "jobs.yaml", `
jobs:
  - id: chart
    operation: horo_chart
    params:
      chart_id: D9
    payload:
      day: 10
      month: 5
  - operation: astro_details
`)
	jobs, err := LoadJobs(path)
	if err != nil {
		t.Fatalf("LoadJobs: %v", err)
	}
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Params["chart_id"] != "D9" {
		t.Fatalf("params not decoded: %#v", jobs[0].Params)
	}
	if jobs[1].ID != "job-2" {
		t.Fatalf("default id = %q", jobs[1].ID)
	}
}

func TestLoadJobsRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty.json":  `{"jobs":[]}`,
		"noop.json":   `{"jobs":[{"id":"a"}]}`,
		"dup.json":    `{"jobs":[{"id":"a","operation":"planets"},{"id":"a","operation":"planets"}]}`,
		"jobs.toml":   `jobs = []`,
		"broken.yaml": "jobs: [",
	}
	for name, body := range cases {
		if _, err := LoadJobs(writeFile(t, name, body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestRunBatchContinuesPastFailures(t *testing.T) {
	api := newAPIStub(t)
	r := newTestRunner(t, testConfig(t, api.srv.URL))

	jobs := []Job{
		{ID: "one", Operation: kundli.EndpointBirthDetails, Payload: map[string]any{"day": 1}},
		{ID: "two", Operation: kundli.EndpointHoroChart},
		{ID: "three", Operation: kundli.EndpointHoroChart, Params: map[string]string{kundli.ParamChartID: "D1"}},
	}
	results, err := r.RunBatch(context.Background(), jobs, CallOptions{})
	if err == nil || !strings.Contains(err.Error(), "job two") {
		t.Fatalf("expected joined error naming job two, got %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Fatalf("unexpected failures: %v / %v", results[0].Err, results[2].Err)
	}
	if got := api.seen(); len(got) != 2 {
		t.Fatalf("expected 2 requests on the wire, got %v", got)
	}
}

func TestRunBatchStopsOnCancelledContext(t *testing.T) {
	api := newAPIStub(t)
	r := newTestRunner(t, testConfig(t, api.srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := r.RunBatch(ctx, []Job{{ID: "a", Operation: kundli.EndpointPlanets}}, CallOptions{})
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
	if len(results) != 0 || len(api.seen()) != 0 {
		t.Fatalf("nothing should run after cancellation")
	}
}
