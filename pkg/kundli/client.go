// Package kundli is a client for the Vedic Rishi astrology API. Every remote
// operation is a POST of a JSON body to a path from the endpoint catalog;
// responses are returned untouched.
package kundli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/samvad-hq/kundli-sdk/pkg/httpclient"
)

const (
	headerAccept      = "application/json"
	headerContentType = "application/json; charset=utf-8"
)

// Client issues calls against the API. It is safe for concurrent use.
type Client struct {
	cfg     Config
	http    httpclient.Client
	catalog *Catalog
	log     Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the resty transport.
func WithHTTPClient(h httpclient.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger attaches a structured logger.
func WithLogger(log Logger) Option {
	return func(c *Client) { c.log = ensureLogger(log) }
}

// WithCatalog replaces the embedded endpoint table.
func WithCatalog(cat *Catalog) Option {
	return func(c *Client) {
		if cat != nil {
			c.catalog = cat
		}
	}
}

// New builds a Client. Empty config fields take their DefaultConfig values.
func New(cfg Config, opts ...Option) *Client {
	cfg = cfg.withDefaults()
	c := &Client{
		cfg:     cfg,
		catalog: DefaultCatalog(),
		log:     noopLogger{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(cfg.Timeout)
	}
	return c
}

// Config returns the effective configuration.
func (c *Client) Config() Config { return c.cfg }

// Catalog returns the endpoint table the client resolves names against.
func (c *Client) Catalog() *Catalog { return c.catalog }

// Response is a successful API reply.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// String returns the body as text.
func (r *Response) String() string {
	if r == nil {
		return ""
	}
	return string(r.Body)
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if r == nil {
		return errors.New("response is nil")
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Invoke calls the catalog endpoint registered under name.
func (c *Client) Invoke(ctx context.Context, name string, params PathParams, payload any) (*Response, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	ep, ok := c.catalog.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEndpoint, name)
	}
	return c.InvokeEndpoint(ctx, ep, params, payload)
}

// InvokeEndpoint calls ep directly. Missing template parameters and
// unencodable payloads fail before anything is sent.
func (c *Client) InvokeEndpoint(ctx context.Context, ep Endpoint, params PathParams, payload any) (*Response, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ep.checkParams(params); err != nil {
		return nil, err
	}
	body, err := EncodePayload(payload)
	if err != nil {
		return nil, err
	}

	url := ResolveURL(c.cfg.BaseURI, ep.Path, params)
	start := time.Now()
	resp, err := c.http.Post(ctx, url, c.headers(), body, c.auth())
	if err != nil {
		c.log.WarnObj("kundli request failed", "kundli_error", map[string]any{
			"endpoint": ep.Name,
			"url":      url,
			"error":    err.Error(),
		})
		return nil, &APIError{Message: ResponseNotOK, Err: err}
	}

	code := resp.StatusCode()
	if code < http.StatusOK || code > http.StatusPartialContent {
		c.log.WarnObj("kundli response not ok", "kundli_error", map[string]any{
			"endpoint":    ep.Name,
			"url":         url,
			"status_code": code,
		})
		return nil, &APIError{StatusCode: code, Message: ResponseNotOK, Body: resp.Body()}
	}

	c.log.DebugObj("kundli call completed", "kundli_call", map[string]any{
		"endpoint":    ep.Name,
		"url":         url,
		"status_code": code,
		"elapsed_ms":  time.Since(start).Milliseconds(),
	})
	return &Response{StatusCode: code, Body: resp.Body(), Header: resp.Header()}, nil
}

// EncodePayload renders payload as the JSON request body. Byte slices and
// json.RawMessage are sent verbatim once validated.
func EncodePayload(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case json.RawMessage:
		return validJSON(p)
	case []byte:
		return validJSON(p)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return body, nil
}

func validJSON(raw []byte) ([]byte, error) {
	if !json.Valid(raw) {
		return nil, &SerializationError{Err: errors.New("payload is not valid JSON")}
	}
	return raw, nil
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"Accept":       headerAccept,
		"Content-Type": headerContentType,
		"User-Agent":   c.cfg.UserAgent,
	}
}

// auth returns nil when no credentials are configured; requests still go out.
func (c *Client) auth() *httpclient.BasicAuth {
	if c.cfg.Username == "" && c.cfg.Password == "" {
		return nil
	}
	return &httpclient.BasicAuth{Username: c.cfg.Username, Password: c.cfg.Password}
}
