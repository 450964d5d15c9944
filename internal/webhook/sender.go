// Package webhook delivers finished payloads to a Slack incoming webhook.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/CodexForgeBR/slack-notify/internal/payload"
)

// DeliveryError reports a failed POST to the webhook endpoint.
type DeliveryError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("post to %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("post to %s: unexpected status %d", e.URL, e.StatusCode)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Client posts payloads to a webhook URL.
type Client struct {
	HTTP *http.Client
}

// New returns a Client with a 10-second request timeout.
func New() *Client {
	return &Client{HTTP: &http.Client{Timeout: 10 * time.Second}}
}

// Post serializes p and performs a single best-effort POST. No retry; a
// transport failure or non-2xx status comes back as a DeliveryError.
func (c *Client) Post(ctx context.Context, url string, p *payload.Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &DeliveryError{URL: url, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	client := c.HTTP
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return &DeliveryError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &DeliveryError{URL: url, StatusCode: resp.StatusCode}
	}
	return nil
}
