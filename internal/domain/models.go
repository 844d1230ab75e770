package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Domain contains core models shared by the app, storage and publishers.

// CallRecord describes one API call made through the runner.
type CallRecord struct {
	ID          string            `json:"id"`
	Operation   string            `json:"operation"`
	Params      map[string]string `json:"params,omitempty"`
	URL         string            `json:"url,omitempty"`
	StatusCode  int               `json:"status_code"`
	Request     json.RawMessage   `json:"request,omitempty"`
	Response    []byte            `json:"-"`
	Error       string            `json:"error,omitempty"`
	RequestedAt time.Time         `json:"requested_at"`
	DurationMs  int64             `json:"duration_ms"`
}

// NewCallRecord stamps a fresh record for operation.
func NewCallRecord(operation string, params map[string]string, request json.RawMessage) CallRecord {
	return CallRecord{
		ID:          uuid.NewString(),
		Operation:   operation,
		Params:      params,
		Request:     request,
		RequestedAt: time.Now().UTC(),
	}
}

// Succeeded reports whether the call returned a success status.
func (r CallRecord) Succeeded() bool {
	return r.Error == "" && r.StatusCode >= 200 && r.StatusCode <= 206
}

// ResponseJSON returns the response body when it is valid JSON.
func (r CallRecord) ResponseJSON() (json.RawMessage, bool) {
	if len(r.Response) == 0 || !json.Valid(r.Response) {
		return nil, false
	}
	return json.RawMessage(r.Response), true
}
