package httpclient

import (
	"context"
	"net/http"
)

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
	Header() http.Header
}

// BasicAuth carries HTTP basic authentication credentials.
type BasicAuth struct {
	Username string
	Password string
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
type Client interface {
	Post(ctx context.Context, url string, headers map[string]string, body []byte, auth *BasicAuth) (Response, error)
}
