// Package client implements the remote storefront REST API collaborators:
// the product catalog and the order gateway. All persistence and business
// logic live on the server side; this package only shapes requests and
// surfaces server errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
}

// New builds a client for the API at baseURL. token returns the current
// bearer token and may return "" when nobody is signed in. A nil
// httpClient gets a default with a 10s timeout.
func New(baseURL string, httpClient *http.Client, token func() string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if token == nil {
		token = func() string { return "" }
	}

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		token:   token,
	}, nil
}

// APIError carries the server's message for the UI layer to display.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// Responses are wrapped in a {data, message} envelope.
type apiEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (c *Client) doJSON(ctx context.Context, method, path string, header http.Header, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	var envelope apiEnvelope
	if len(data) > 0 {
		// a non-envelope error body is tolerated, the status code decides
		_ = json.Unmarshal(data, &envelope)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		message := envelope.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("json.Unmarshal data: %w", err)
	}
	return nil
}
