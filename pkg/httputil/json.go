// Package httputil provides a minimal JSON-over-HTTP helper shared by API
// clients. Requests are attempted exactly once: any transport failure or
// non-success status aborts the caller's run, so there is no retry logic.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/matzehuels/toplangs/pkg/errors"
)

// defaultTimeout bounds a single request including body read.
const defaultTimeout = 30 * time.Second

// Client wraps an http.Client with fixed headers and JSON encoding.
type Client struct {
	HTTP    *http.Client
	Headers map[string]string
}

// NewClient creates a client that attaches headers to every request.
func NewClient(headers map[string]string) *Client {
	return &Client{
		HTTP:    &http.Client{Timeout: defaultTimeout},
		Headers: headers,
	}
}

// PostJSON sends body as a JSON POST to url and decodes the response into
// out. A non-2xx status yields a TRANSPORT_ERROR wrapping the status code;
// the response body is still drained so connections can be reused.
func (c *Client) PostJSON(ctx context.Context, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "encode request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(errors.ErrCodeTransport, err, "build request for %s", url)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeTransport, err, "post %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return errors.New(errors.ErrCodeTransport, "unexpected status %d from %s", resp.StatusCode, url)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(errors.ErrCodeTransport, err, "decode response from %s", url)
	}
	return nil
}
