package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientPostSendsBodyHeadersAndAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST, got %s", r.Method)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "u" || pass != "p" {
			t.Fatalf("basic auth = %q/%q ok=%v", user, pass, ok)
		}
		if got := r.Header.Get("X-Test"); got != "1" {
			t.Fatalf("missing header, got %q", got)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"a":1}` {
			t.Fatalf("body = %s", body)
		}
		w.Header().Set("X-Reply", "yes")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`ok`))
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	resp, err := client.Post(context.Background(), srv.URL, map[string]string{"X-Test": "1"}, []byte(`{"a":1}`), &BasicAuth{Username: "u", Password: "p"})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if resp.StatusCode() != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode())
	}
	if string(resp.Body()) != "ok" {
		t.Fatalf("body = %q", resp.Body())
	}
	if resp.Header().Get("X-Reply") != "yes" {
		t.Fatalf("reply header missing")
	}
}

func TestRestyClientPostOmitsAuthWhenNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "" {
			t.Fatalf("unexpected Authorization header %q", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if _, err := NewRestyClient(time.Second).Post(context.Background(), srv.URL, nil, []byte(`{}`), nil); err != nil {
		t.Fatalf("Post: %v", err)
	}
}

func TestRestyClientDoesNotFollowRedirects(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("redirect target should not be reached")
	}))
	defer target.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusMovedPermanently)
	}))
	defer srv.Close()

	resp, err := NewRestyClient(time.Second).Post(context.Background(), srv.URL, nil, []byte(`{}`), nil)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if resp.StatusCode() != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", resp.StatusCode())
	}
}
