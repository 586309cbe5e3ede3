// Package remote talks to the appointment REST service. Paths and verbs are
// the integration contract with the server and must not change.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/appt/pkg/appointment"
)

const (
	apiPrefix      = "/appointmentapi"
	pathAll        = apiPrefix + "/all"
	pathAdd        = apiPrefix + "/add"
	pathUpdate     = apiPrefix + "/update"
	pathDelete     = apiPrefix + "/delete/"
	pathGet        = apiPrefix + "/get/"
	requestIDKey   = "X-Request-ID"
	contentTypeKey = "Content-Type"
	jsonType       = "application/json"

	maxErrorBody = 200
)

// ErrNotFound is returned by Get when the remote has no record for the id.
var ErrNotFound = errors.New("remote: appointment not found")

// StatusError reports a non-2xx response.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	body := truncate(strings.TrimSpace(e.Body), maxErrorBody)
	if body == "" {
		return fmt.Sprintf("remote: %s: unexpected status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("remote: %s: unexpected status %d: %s", e.Op, e.Code, body)
}

// Client is an HTTP client for the appointment service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets a per-request timeout on the http.Client. Zero, the
// default, leaves requests unbounded apart from the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger attaches a logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l.Named("remote")
		}
	}
}

// New creates a Client rooted at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// List fetches every appointment.
func (c *Client) List(ctx context.Context) ([]appointment.Appointment, error) {
	body, _, err := c.do(ctx, "list", http.MethodGet, pathAll, nil)
	if err != nil {
		return nil, err
	}
	out := make([]appointment.Appointment, 0)
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("remote: list: decode json: %w", err)
	}
	return out, nil
}

// Create posts a new appointment. The identifier is never sent.
func (c *Client) Create(ctx context.Context, a appointment.Appointment) (*appointment.Appointment, error) {
	body, _, err := c.do(ctx, "create", http.MethodPost, pathAdd, a.WithoutID())
	if err != nil {
		return nil, err
	}
	return c.decodeOutcome("create", body), nil
}

// Update replaces an existing appointment, identifier included.
func (c *Client) Update(ctx context.Context, a appointment.Appointment) (*appointment.Appointment, error) {
	body, _, err := c.do(ctx, "update", http.MethodPut, pathUpdate, a)
	if err != nil {
		return nil, err
	}
	return c.decodeOutcome("update", body), nil
}

// Delete removes the appointment and returns the server's confirmation text.
func (c *Client) Delete(ctx context.Context, id string) (string, error) {
	body, _, err := c.do(ctx, "delete", http.MethodDelete, pathDelete+url.PathEscape(strings.TrimSpace(id)), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

// Get fetches one appointment. A 404 is reported as ErrNotFound.
func (c *Client) Get(ctx context.Context, id string) (*appointment.Appointment, error) {
	body, _, err := c.do(ctx, "get", http.MethodGet, pathGet+url.PathEscape(strings.TrimSpace(id)), nil)
	if err != nil {
		var se *StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rec, err := decodeRecord("get", body)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (c *Client) do(ctx context.Context, op, method, path string, payload any) ([]byte, int, error) {
	if c.baseURL == "" {
		return nil, 0, fmt.Errorf("remote: %s: base url not configured", op)
	}

	var reader io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("remote: %s: encode json: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("remote: %s: create request: %w", op, err)
	}
	rid := uuid.NewString()
	req.Header.Set(requestIDKey, rid)
	req.Header.Set("Accept", jsonType)
	if payload != nil {
		req.Header.Set(contentTypeKey, jsonType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return nil, 0, fmt.Errorf("remote: %s: %w", op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("remote: %s: read body: %w", op, err)
	}

	c.log.Debug("request",
		zap.String("op", op),
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", rid),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, &StatusError{Op: op, Code: resp.StatusCode, Body: string(body)}
	}
	return body, resp.StatusCode, nil
}

// decodeOutcome reads the body of a successful add or update. The service may
// answer with the record or with a plain status line; anything that is not a
// JSON object yields nil.
func (c *Client) decodeOutcome(op string, body []byte) *appointment.Appointment {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] != '{' {
		c.log.Debug("non-record response", zap.String("op", op), zap.String("body", truncate(string(trimmed), maxErrorBody)))
		return nil
	}
	rec, err := decodeRecord(op, trimmed)
	if err != nil {
		c.log.Debug("undecodable response", zap.String("op", op), zap.Error(err))
		return nil
	}
	return rec
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

func decodeRecord(op string, body []byte) (*appointment.Appointment, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}
	var a appointment.Appointment
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, fmt.Errorf("remote: %s: decode json: %w", op, err)
	}
	return &a, nil
}
