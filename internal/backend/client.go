// Package backend is the HTTP client for the ratings backend REST API.
// All data reads and writes go through this package; the UI service holds
// no state of its own beyond sessions.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/ratehub/ratehub-ui/internal/errors"
)

// Config captures the subset of backend behaviour we need.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// ExposeErrorDetail forwards upstream error messages to callers instead
	// of the fixed per-operation messages. Off in production.
	ExposeErrorDetail bool
	Client            *http.Client
	Logger            *slog.Logger
}

// Client talks to the ratings backend. A zero token on read-only calls is
// allowed where the backend serves public data (store listings).
type Client struct {
	baseURL      string
	exposeDetail bool
	client       *http.Client
	logger       *slog.Logger
}

// NewClient builds a backend API client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("backend base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:      baseURL,
		exposeDetail: cfg.ExposeErrorDetail,
		client:       hc,
		logger:       logger,
	}, nil
}

// apiError carries the status and parsed message of a non-2xx backend reply.
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend returned %d", e.Status)
}

func isStatus(err error, status int) bool {
	var apiErr *apiError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// doJSON performs one JSON round trip. A non-empty token is sent as a bearer
// header; a nil body sends no request body; a nil out discards the response.
// Non-2xx replies come back as *apiError.
func (c *Client) doJSON(ctx context.Context, method, path, token string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode backend request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("create backend request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if method == http.MethodGet {
		// Backend data is always read fresh; intermediaries must not cache.
		req.Header.Set("Cache-Control", "no-store")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("backend request failed: %w", err)
	}

	respBody, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return fmt.Errorf("read backend response: %w", readErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close backend response body: %w", closeErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := parseErrorMessage(respBody)
		c.logger.DebugContext(ctx, "backend call failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"detail", detail,
		)
		return &apiError{Status: resp.StatusCode, Message: detail}
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode backend response: %w", err)
	}
	return nil
}

// parseErrorMessage extracts a human message from a backend error body,
// accepting either a {"message": ...} or {"error": ...} shape.
func parseErrorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}

// upstream converts a transport or API error into the fixed message shown to
// users. With ExposeErrorDetail enabled, a parsed upstream message replaces
// the fixed one.
func (c *Client) upstream(err error, fixed string) *apperrors.AppError {
	if err == nil {
		return nil
	}
	message := fixed
	var apiErr *apiError
	if c.exposeDetail && errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}
	return apperrors.Wrap(err, apperrors.ErrCodeUpstream, message)
}
