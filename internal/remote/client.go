// Package remote talks to the hosted document store that backs reports when
// REPORT_BACKEND=remote. The store exposes a single endpoint dispatched by an
// "action" parameter and wraps every result in a {success, data, error} envelope.
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

	"github.com/cenkalti/backoff/v4"

	"github.com/outliner-coach/letmeknowme/internal/logger"
)

// APIError is a failure reported by the store inside a well-formed envelope
type APIError struct {
	Action  string
	Message string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request was not successful"
	}
	return fmt.Sprintf("remote %s: %s", e.Action, msg)
}

// NotFound reports whether the store rejected the call because the id is unknown.
// The store answers a missing report with an empty error or a "not found" message.
func (e *APIError) NotFound() bool {
	msg := strings.ToLower(strings.TrimSpace(e.Message))
	return msg == "" || strings.Contains(msg, "not found") || strings.Contains(msg, "찾을 수 없")
}

// IsNotFound reports whether err is an APIError for an unknown id
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.NotFound()
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// Client performs action calls with a per-request timeout and bounded retries
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxElapsed time.Duration
	log        *logger.Logger
}

// NewClient creates a client for the store at baseURL
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxElapsed: 3 * timeout,
		log:        log.Component("remote.client"),
	}
}

// Get calls a read action with query parameters and decodes data into target
func (c *Client) Get(ctx context.Context, action string, params url.Values, target any) error {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("action", action)
	endpoint := c.baseURL + "?" + q.Encode()

	return c.do(ctx, action, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	}, target)
}

// Post calls a write action with a JSON body and decodes data into target
func (c *Client) Post(ctx context.Context, action string, payload map[string]any, target any) error {
	body := map[string]any{"action": action}
	for k, v := range payload {
		body[k] = v
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", action, err)
	}

	return c.do(ctx, action, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}, target)
}

func (c *Client) do(ctx context.Context, action string, newRequest func() (*http.Request, error), target any) error {
	log := c.log.WithField("action", action)
	attempt := 0

	op := func() error {
		attempt++
		req, err := newRequest()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create request: %w", err))
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			log.WithField("attempt", attempt).WithError(err).Warn("request failed")
			return err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			log.WithField("attempt", attempt).WithField("status", resp.StatusCode).Warn("retryable status")
			return fmt.Errorf("remote %s: status %d", action, resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("remote %s: status %d: %s", action, resp.StatusCode, string(body)))
		}

		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return backoff.Permanent(fmt.Errorf("decode %s envelope: %w", action, err))
		}
		if !env.Success {
			return backoff.Permanent(&APIError{Action: action, Message: env.Error})
		}
		if target == nil || len(env.Data) == 0 || string(env.Data) == "null" {
			return nil
		}
		if err := json.Unmarshal(env.Data, target); err != nil {
			return backoff.Permanent(fmt.Errorf("decode %s data: %w", action, err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 200 * time.Millisecond
	b.MaxElapsedTime = c.maxElapsed

	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		log.WithError(err).Error("remote call failed")
		return err
	}
	log.WithField("attempts", attempt).Debug("remote call completed")
	return nil
}
