// Package restclient implements ports.EmployeeAPI over the /api/employees
// REST endpoint. It performs exactly one HTTP round-trip per call and never
// retries; every failure is returned as a *domain.NotFoundError or a
// *domain.NetworkError.
package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/csg33k/employee-console/internal/domain"
	"github.com/csg33k/employee-console/internal/ports"
)

// BasePath is the collection path relative to the backend's base URL.
const BasePath = "/api/employees"

// RequestIDHeader correlates console log lines with backend log lines.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of an error response is kept for diagnostics.
const maxErrorBody = 512

type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

var _ ports.EmployeeAPI = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets a whole-request timeout. Zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a client for the backend at baseURL, e.g. "http://localhost:8081".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) List(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	status, err := c.do(ctx, "list", http.MethodGet, BasePath, nil, &out)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, &domain.NetworkError{Op: "list", StatusCode: status}
	}
	if out == nil {
		out = []domain.Employee{}
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, d domain.EmployeeDraft) (*domain.Employee, error) {
	var out domain.Employee
	status, err := c.do(ctx, "create", http.MethodPost, BasePath, d, &out)
	if err != nil {
		return nil, err
	}
	if !success(status) {
		return nil, &domain.NetworkError{Op: "create", StatusCode: status}
	}
	return &out, nil
}

func (c *Client) Update(ctx context.Context, id int64, d domain.EmployeeDraft) (*domain.Employee, error) {
	var out domain.Employee
	status, err := c.do(ctx, "update", http.MethodPut, itemPath(id), d, &out)
	if err != nil {
		return nil, err
	}
	switch {
	case success(status):
		return &out, nil
	case status == http.StatusNotFound:
		return nil, &domain.NotFoundError{ID: id}
	default:
		return nil, &domain.NetworkError{Op: "update", StatusCode: status}
	}
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	status, err := c.do(ctx, "delete", http.MethodDelete, itemPath(id), nil, nil)
	if err != nil {
		return err
	}
	switch {
	case success(status):
		return nil
	case status == http.StatusNotFound:
		return &domain.NotFoundError{ID: id}
	default:
		return &domain.NetworkError{Op: "delete", StatusCode: status}
	}
}

func success(status int) bool {
	return status >= 200 && status <= 299
}

func itemPath(id int64) string {
	return BasePath + "/" + strconv.FormatInt(id, 10)
}

// do performs one request. A non-nil error is always a *domain.NetworkError
// for transport or decoding failures; HTTP status handling is left to the
// caller. out is decoded only for 2xx responses with a body.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return 0, &domain.NetworkError{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, &domain.NetworkError{Op: op, Err: err}
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("api request failed", "op", op, "method", method, "path", path, "request_id", reqID, "err", err)
		return 0, &domain.NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("api request", "op", op, "method", method, "path", path,
		"status", resp.StatusCode, "request_id", reqID, "duration", time.Since(start))

	if !success(resp.StatusCode) {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.log.Warn("api request rejected", "op", op, "status", resp.StatusCode,
			"request_id", reqID, "body", strings.TrimSpace(string(snippet)))
		return resp.StatusCode, nil
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return resp.StatusCode, &domain.NetworkError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}
	return resp.StatusCode, nil
}
