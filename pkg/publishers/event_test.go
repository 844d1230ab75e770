package publishers

import (
	"testing"

	"github.com/samvad-hq/kundli-sdk/internal/domain"
)

func TestNewEventCarriesJSONResult(t *testing.T) {
	rec := domain.NewCallRecord("astro_details", nil, []byte(`{"day":10}`))
	rec.StatusCode = 200
	rec.Response = []byte(`{"sign":"Leo"}`)

	evt := NewEvent(rec)
	if evt.CallID != rec.ID || evt.Operation != "astro_details" {
		t.Fatalf("identity not copied: %#v", evt)
	}
	if string(evt.Result) != `{"sign":"Leo"}` || evt.ResultText != "" {
		t.Fatalf("expected JSON result, got %q / %q", evt.Result, evt.ResultText)
	}
}

func TestNewEventFallsBackToText(t *testing.T) {
	rec := domain.NewCallRecord("planets", nil, nil)
	rec.Response = []byte("not json")

	evt := NewEvent(rec)
	if evt.Result != nil || evt.ResultText != "not json" {
		t.Fatalf("expected text result, got %q / %q", evt.Result, evt.ResultText)
	}
}
