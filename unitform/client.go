package unitform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrSubmitFailed wraps every submission failure.
var ErrSubmitFailed = errors.New("unitform: submit failed")

const (
	MsgCreated = "Unit created successfully!"
	MsgFailed  = "Failed to create unit."
)

// Ack is the decoded JSON acknowledgment.
type Ack map[string]any

type Client struct {
	Endpoint string
	HTTP     *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Submit posts the form payload and decodes the JSON acknowledgment.
func (c *Client) Submit(ctx context.Context, form Form) (Ack, error) {
	body, err := json.Marshal(form.Payload())
	if err != nil {
		return nil, fmt.Errorf("%w: encode: %w", ErrSubmitFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrSubmitFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrSubmitFailed, resp.StatusCode, bytes.TrimSpace(raw))
	}

	var ack Ack
	if err := json.Unmarshal(raw, &ack); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrSubmitFailed, err)
	}
	return ack, nil
}
