package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/jsamuelsen11/go-item-service/internal/platform/config"
	"github.com/jsamuelsen11/go-item-service/internal/platform/logging"
)

// jitter spreads each delay by up to ±25%.
const jitter = 0.25

type retryPolicy struct {
	attempts   int
	initial    time.Duration
	max        time.Duration
	multiplier float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	p := retryPolicy{
		attempts:   cfg.MaxAttempts,
		initial:    cfg.InitialInterval,
		max:        cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
	if p.attempts < 1 {
		p.attempts = 1
	}
	if p.multiplier <= 0 {
		p.multiplier = 1
	}
	return p
}

// delay is the pause before retry n (1 for the first retry).
func (p retryPolicy) delay(n int) time.Duration {
	d := float64(p.initial) * math.Pow(p.multiplier, float64(n-1))
	if p.max > 0 && d > float64(p.max) {
		d = float64(p.max)
	}
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// send performs req with retries. The body is buffered once so every attempt
// replays it. Only idempotent methods are retried; a POST gets one attempt and
// its 5xx or 429 response is returned with an error.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	attempts := c.retry.attempts
	if !idempotent(req.Method) {
		attempts = 1
	}

	var body []byte
	if req.Body != nil && req.Body != http.NoBody {
		b, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("buffering request body: %w", err)
		}
		body = b
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, lastErr); err != nil {
				return nil, err
			}
		}
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if !retryable(err) {
				return nil, err
			}
			lastErr = err
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("%s responded %d", c.peer, resp.StatusCode)
		if attempt == attempts-1 {
			return resp, lastErr
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
	return nil, lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, lastErr error) error {
	d := c.retry.delay(attempt)

	logging.FromContext(ctx).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.peer),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retry.attempts),
		slog.Duration("backoff", d),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryable reports whether a transport error is worth another attempt.
// Caller cancellation and deadlines are final.
func retryable(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// idempotent reports whether repeating a request with method cannot create
// a second resource.
func idempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodPut, http.MethodDelete:
		return true
	default:
		return false
	}
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
