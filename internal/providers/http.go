package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds the single outbound HTTP call per invocation.
const DefaultTimeout = 60 * time.Second

// APIError is a non-2xx response from a provider. The body is kept so the
// user sees the provider's own error message.
type APIError struct {
	Provider   string
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s returned %s: %s", e.Provider, e.Status, truncate(e.Body, 700))
}

// NetworkError is a transport-level failure: timeout, DNS, refused
// connection. Reported distinctly from APIError.
type NetworkError struct {
	Provider string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.Provider, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ListingUnsupportedError indicates the provider has no model-listing
// endpoint.
type ListingUnsupportedError struct {
	Provider string
}

func (e *ListingUnsupportedError) Error() string {
	return fmt.Sprintf("%s does not support listing models", e.Provider)
}

func defaultHTTPClient(input *http.Client) *http.Client {
	if input != nil {
		return input
	}
	return &http.Client{Timeout: DefaultTimeout}
}

// doJSON sends req with an optional JSON payload and decodes the JSON
// response into out. Non-2xx statuses become APIError, transport failures
// become NetworkError.
func doJSON(ctx context.Context, provider string, client *http.Client, req *http.Request, payload any, out any) error {
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request JSON: %w", err)
		}
		req.Body = io.NopCloser(bytes.NewReader(buf))
		req.ContentLength = int64(len(buf))
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req.WithContext(ctx))
	if err != nil {
		return &NetworkError{Provider: provider, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Provider: provider, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Provider:   provider,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	if out == nil || strings.TrimSpace(string(body)) == "" {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response JSON: %w; body=%s", provider, err, truncate(string(body), 700))
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func joinURL(base, path string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	path = strings.TrimSpace(path)
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
