// Package webhook posts trigger requests to the external automation
// platform. Triggers are one-way: the response body carries no result
// and is discarded, and outcome is judged by HTTP status alone.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

// DefaultTimeout bounds one trigger request. Workflows acknowledge
// quickly; long waits belong to the poll loop, not the trigger.
const DefaultTimeout = 60 * time.Second

var _ driven.WebhookTrigger = (*Client)(nil)

// Client posts triggers over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a webhook trigger client.
func NewClient() *Client {
	return &Client{httpClient: &http.Client{Timeout: DefaultTimeout}}
}

// NewClientWithHTTPClient creates a client with a custom HTTP client.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}

// Trigger POSTs payload as JSON to endpoint, with query appended to
// the URL.
func (c *Client) Trigger(ctx context.Context, endpoint string, payload any, query map[string]string) error {
	target, err := withQuery(endpoint, query)
	if err != nil {
		return fmt.Errorf("trigger: %w", err)
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("trigger: encode payload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
	if err != nil {
		return fmt.Errorf("trigger: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req)
}

// TriggerForm POSTs fields as a multipart form.
func (c *Client) TriggerForm(ctx context.Context, endpoint string, fields map[string]string) error {
	return c.TriggerFile(ctx, endpoint, fields, "", "", nil)
}

// TriggerFile POSTs fields plus one binary attachment. fileField may
// be empty for a fields-only form.
func (c *Client) TriggerFile(ctx context.Context, endpoint string, fields map[string]string, fileField, filename string, r io.Reader) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("trigger: write form field %s: %w", name, err)
		}
	}
	if fileField != "" && r != nil {
		part, err := mw.CreateFormFile(fileField, filename)
		if err != nil {
			return fmt.Errorf("trigger: create form file: %w", err)
		}
		if _, err := io.Copy(part, r); err != nil {
			return fmt.Errorf("trigger: copy attachment: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("trigger: finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return fmt.Errorf("trigger: create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.send(req)
}

func (c *Client) send(req *http.Request) error {
	logger.Debug("webhook: POST %s", req.URL.Redacted())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("trigger: %w", err)
	}
	defer resp.Body.Close()

	// Results never travel back on this channel.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &driven.TriggerStatusError{Status: resp.StatusCode}
	}
	return nil
}

func withQuery(endpoint string, query map[string]string) (string, error) {
	if len(query) == 0 {
		return endpoint, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
