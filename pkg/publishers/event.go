package publishers

import (
	"encoding/json"
	"time"

	"github.com/samvad-hq/kundli-sdk/internal/domain"
)

// Event represents a computed result published downstream.
type Event struct {
	CallID     string            `json:"call_id"`
	Operation  string            `json:"operation"`
	Params     map[string]string `json:"params,omitempty"`
	StatusCode int               `json:"status_code"`
	Request    json.RawMessage   `json:"request,omitempty"`
	Result     json.RawMessage   `json:"result,omitempty"`
	ResultText string            `json:"result_text,omitempty"`
	ComputedAt time.Time         `json:"computed_at"`
}

// NewEvent builds an Event from a completed call. Non-JSON bodies are
// carried as text.
func NewEvent(rec domain.CallRecord) Event {
	evt := Event{
		CallID:     rec.ID,
		Operation:  rec.Operation,
		Params:     rec.Params,
		StatusCode: rec.StatusCode,
		Request:    rec.Request,
		ComputedAt: time.Now().UTC(),
	}
	if body, ok := rec.ResponseJSON(); ok {
		evt.Result = body
	} else if len(rec.Response) > 0 {
		evt.ResultText = string(rec.Response)
	}
	return evt
}

// attributes are the routing attributes attached by queue/topic publishers.
func (e Event) attributes() map[string]string {
	return map[string]string{
		"call_id":   e.CallID,
		"operation": e.Operation,
	}
}
