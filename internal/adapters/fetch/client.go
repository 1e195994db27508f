// Package fetch is the outbound HTTP adapter used for source pages and
// asset downloads.
package fetch

import (
	"context"
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrNotFound = errors.New("fetch: not found")
	ErrTooLarge = errors.New("fetch: response too large")
)

// maxBodyBytes caps a single download. Pages and assets beyond this are
// rejected rather than buffered.
const maxBodyBytes = 25 << 20

type Client struct {
	hc      *http.Client
	rl      *rate.Limiter
	retries int
}

// New builds a client with a hard per-request timeout, client-side rate
// limiting and bounded retries on transient failures.
func New(timeout time.Duration, retries, rps int) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if rps <= 0 {
		rps = 10
	}
	if retries < 0 {
		retries = 0
	}
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		rl:      rate.NewLimiter(rate.Limit(rps), rps),
		retries: retries,
	}
}

// Get downloads url and returns the full body. Retries on network errors,
// 429 and transient 5xx, honoring Retry-After when provided.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	var lastErr error
	for i := 0; i <= c.retries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "hotel-builder/1.0")
		req.Header.Set("Accept", "*/*")

		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			if i < c.retries && sleepCtx(ctx, backoff(i)) {
				continue
			}
			return nil, lastErr
		}

		switch resp.StatusCode {
		case http.StatusOK:
			body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
			resp.Body.Close()
			if err != nil {
				return nil, err
			}
			if len(body) > maxBodyBytes {
				return nil, ErrTooLarge
			}
			return body, nil

		case http.StatusNotFound, http.StatusGone:
			resp.Body.Close()
			return nil, ErrNotFound

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < c.retries && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}
	return nil, lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). Returns 0 if absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff doubles each attempt (200ms, 400ms, ...) with up to +50% jitter.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
