package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/samvad-hq/kundli-sdk/internal/domain"
	"gopkg.in/yaml.v3"
)

// Job is one call in a batch file.
type Job struct {
	ID        string            `json:"id" yaml:"id"`
	Operation string            `json:"operation" yaml:"operation"`
	Params    map[string]string `json:"params" yaml:"params"`
	Payload   any               `json:"payload" yaml:"payload"`
}

// JobResult is the outcome of one batch job.
type JobResult struct {
	JobID  string
	Record domain.CallRecord
	Err    error
}

type jobsFile struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
}

// LoadJobs reads a YAML or JSON batch file.
func LoadJobs(path string) ([]Job, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("jobs file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read jobs file: %w", err)
	}

	var file jobsFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(raw, &file)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(raw, &file)
	default:
		return nil, fmt.Errorf("jobs file format %q not recognized (expected YAML or JSON)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode jobs file: %w", err)
	}
	if len(file.Jobs) == 0 {
		return nil, errors.New("jobs file contains no jobs")
	}

	seen := make(map[string]struct{}, len(file.Jobs))
	for i := range file.Jobs {
		job := &file.Jobs[i]
		job.ID = strings.TrimSpace(job.ID)
		job.Operation = strings.TrimSpace(job.Operation)
		if job.ID == "" {
			job.ID = fmt.Sprintf("job-%d", i+1)
		}
		if job.Operation == "" {
			return nil, fmt.Errorf("jobs[%d]: operation is required", i)
		}
		if _, dup := seen[job.ID]; dup {
			return nil, fmt.Errorf("duplicate job id %q", job.ID)
		}
		seen[job.ID] = struct{}{}
	}
	return file.Jobs, nil
}

// RunBatch executes jobs in order. A failing job does not stop the batch;
// a cancelled context does. All failures are joined into the returned error.
func (r *Runner) RunBatch(ctx context.Context, jobs []Job, opts CallOptions) ([]JobResult, error) {
	if len(jobs) == 0 {
		return nil, errors.New("no jobs to run")
	}

	results := make([]JobResult, 0, len(jobs))
	var errs []error
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("batch interrupted before job %s: %w", job.ID, err))
			break
		}

		rec, err := r.Call(ctx, job.Operation, job.Params, job.Payload, opts)
		results = append(results, JobResult{JobID: job.ID, Record: rec, Err: err})
		if err != nil {
			errs = append(errs, fmt.Errorf("job %s: %w", job.ID, err))
			r.log.ErrorObj("batch job failed", "job_error", map[string]any{
				"job_id":    job.ID,
				"operation": job.Operation,
				"error":     err.Error(),
			})
		}
	}

	r.log.InfoObj("batch completed", "batch_meta", map[string]any{
		"jobs":   len(jobs),
		"ran":    len(results),
		"failed": len(errs),
	})
	return results, errors.Join(errs...)
}
