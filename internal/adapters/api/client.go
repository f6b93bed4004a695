// Package api holds the base REST client for the league API. Resource
// packages (league, team, ...) build their typed clients on top of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when the API reports a missing resource. Pages
// render a "not found" fallback instead of failing.
var ErrNotFound = errors.New("resource not found")

// Error is a server-rejected request (4xx/5xx other than 404). Message is
// the server's error field when present, otherwise derived from the status.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }

// RefreshCookieName is the upstream HTTP-only cookie carrying the refresh
// token. The browser never sees it; this app holds it per session.
const RefreshCookieName = "refresh_token"

// Observer receives a timing record per upstream call.
type Observer interface {
	ObserveUpstream(operation string, status int, d time.Duration)
}

// Client is the shared HTTP client for the league API.
type Client struct {
	baseURL  string
	httpc    *http.Client
	observer Observer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithObserver wires upstream-call timing into the perf collector.
func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient creates a client for the API at baseURL.
// PRE: baseURL is non-empty, no trailing slash required
// POST: Returns a ready-to-use client with a 15s timeout
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Response carries what a resource client needs from an upstream reply.
type Response struct {
	StatusCode int
	Body       []byte
	Cookies    []*http.Cookie
}

// NoContent reports whether the reply had an empty body (204 or empty 200).
func (r *Response) NoContent() bool {
	return r.StatusCode == http.StatusNoContent || len(r.Body) == 0
}

// Decode unmarshals the body into out. An empty body leaves out untouched.
func (r *Response) Decode(out any) error {
	if r.NoContent() || out == nil {
		return nil
	}
	if err := json.Unmarshal(r.Body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Do performs one API call. The bearer token and refresh-cookie value are
// taken from ctx (see WithBearer / WithRefreshToken). Non-2xx replies other
// than 404 return *Error; 404 returns ErrNotFound.
// PRE: method is a valid HTTP method; path starts with "/"
// POST: On nil error the status is 2xx and Body holds the raw reply
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := BearerFromContext(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	if rt := RefreshTokenFromContext(ctx); rt != "" {
		req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: rt})
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.observe(method+" "+path, 0, start)
		slog.Warn("api_call_failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("league api unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		c.observe(method+" "+path, resp.StatusCode, start)
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.observe(method+" "+path, resp.StatusCode, start)

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}

	return &Response{StatusCode: resp.StatusCode, Body: raw, Cookies: resp.Cookies()}, nil
}

// Get performs a GET and decodes the reply into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// Post performs a POST and decodes the reply into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	resp, err := c.Do(ctx, http.MethodPost, path, body)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// Patch performs a PATCH and decodes the reply into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	resp, err := c.Do(ctx, http.MethodPatch, path, body)
	if err != nil {
		return err
	}
	return resp.Decode(out)
}

// Delete performs a DELETE, ignoring any reply body.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) observe(operation string, status int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveUpstream(operation, status, time.Since(start))
	}
}

// errorMessage extracts the server's error message. The API usually replies
// with {"error": "..."} but some endpoints send plain text; fall back to an
// HTTP-status-derived message when neither yields anything.
func errorMessage(status int, raw []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	return fmt.Sprintf("request failed: %s", http.StatusText(status))
}
