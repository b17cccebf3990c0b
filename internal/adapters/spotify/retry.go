package spotify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"
)

const (
	defaultMaxRetries = 3
	defaultBackoff    = 500 * time.Millisecond
)

// getJSON issues a GET and decodes a 200 response into out. Other statuses
// are returned as *statusError so callers can branch on the code.
func (c *Client) getJSON(ctx context.Context, op, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("spotify adapter: failed to create %s request: %w", op, err)
	}
	return c.execute(req, op, out, http.StatusOK)
}

// sendJSON encodes body and issues a write request.
func (c *Client) sendJSON(ctx context.Context, method, op, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("spotify adapter: failed to marshal %s request: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("spotify adapter: failed to create %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.execute(req, op, out, http.StatusOK, http.StatusCreated)
}

func (c *Client) execute(req *http.Request, op string, out any, okStatuses ...int) error {
	resp, err := c.doRequestWithRetry(req)
	if err != nil {
		return fmt.Errorf("spotify adapter: %s request failed: %w", op, err)
	}
	defer resp.Body.Close()

	ok := false
	for _, s := range okStatuses {
		if resp.StatusCode == s {
			ok = true
			break
		}
	}
	if !ok {
		return &statusError{Op: op, Code: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("spotify adapter: %s decode error: %w", op, err)
	}
	return nil
}

// statusError is an unexpected HTTP status from the API.
type statusError struct {
	Op   string
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("spotify adapter: %s status %d", e.Op, e.Code)
}

func (c *Client) doRequestWithRetry(req *http.Request) (*http.Response, error) {
	maxRetries := c.maxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	baseBackoff := c.baseBackoff
	if baseBackoff <= 0 {
		baseBackoff = defaultBackoff
	}

	if req.Body != nil && req.GetBody == nil {
		bodyBytes, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("spotify adapter: read request body: %w", err)
		}
		_ = req.Body.Close()
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(bodyBytes)), nil
		}
	}

	ctx := req.Context()
	var lastErr error
	lastStatus := 0
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("spotify adapter: request canceled: %w", err)
		}

		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return nil, fmt.Errorf("spotify adapter: reset request body: %w", err)
			}
			req.Body = body
		}

		// #nosec G107 -- URL built from the configured API base
		resp, err := c.httpClient.Do(req)
		retryAfter, retry := shouldRetry(resp, err)
		if !retry {
			return resp, err
		}

		lastErr, lastStatus = err, 0
		if err != nil {
			log.Printf("WARN spotify adapter: attempt %d/%d failed: %v", attempt, maxRetries, err)
		} else {
			lastStatus = resp.StatusCode
			log.Printf("WARN spotify adapter: attempt %d/%d got status %d", attempt, maxRetries, resp.StatusCode)
			_ = resp.Body.Close()
		}

		if attempt == maxRetries {
			break
		}

		wait := baseBackoff << (attempt - 1)
		if retryAfter > 0 {
			wait = retryAfter
		}
		if err := sleepWithContext(ctx, wait); err != nil {
			return nil, err
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("spotify adapter: gave up after %d attempts: %w", maxRetries, lastErr)
	}
	return nil, fmt.Errorf("spotify adapter: gave up after %d attempts: status %d", maxRetries, lastStatus)
}

// shouldRetry reports whether a response is transient: transport errors,
// 429 and 5xx.
func shouldRetry(resp *http.Response, err error) (time.Duration, bool) {
	if err != nil {
		return 0, true
	}
	if resp == nil {
		return 0, false
	}
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return parseRetryAfter(resp.Header.Get("Retry-After")), true
	}
	return 0, false
}

// parseRetryAfter accepts both the delay-seconds and HTTP-date forms.
func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if when, err := http.ParseTime(v); err == nil {
		if until := time.Until(when); until > 0 {
			return until
		}
	}
	return 0
}

func sleepWithContext(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("spotify adapter: request canceled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
