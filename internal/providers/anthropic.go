package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const (
	anthropicVersion   = "2023-06-01"
	anthropicMaxTokens = 4000
)

type anthropicClient struct {
	apiKey string
	base   string
	http   *http.Client
}

func newAnthropicClient(opts ClientOptions) Client {
	base := opts.BaseURL
	if strings.TrimSpace(base) == "" {
		base = "https://api.anthropic.com"
	}
	return &anthropicClient{
		apiKey: strings.TrimSpace(opts.APIKey),
		base:   strings.TrimRight(strings.TrimSpace(base), "/"),
		http:   defaultHTTPClient(opts.HTTPClient),
	}
}

func (c *anthropicClient) Name() string { return "anthropic" }

// ListModels always fails: Anthropic does not expose a listing endpoint
// in this client.
func (c *anthropicClient) ListModels(ctx context.Context) ([]Model, error) {
	return nil, &ListingUnsupportedError{Provider: "anthropic"}
}

func (c *anthropicClient) Complete(ctx context.Context, reqBody Request) (Response, error) {
	req, err := http.NewRequest(http.MethodPost, joinURL(c.base, "/v1/messages"), nil)
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	payload := map[string]any{
		"model":      reqBody.Model,
		"max_tokens": anthropicMaxTokens,
		"messages": []map[string]string{
			{"role": "user", "content": reqBody.Prompt},
		},
		"temperature": 0.7,
	}

	var resp struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	if err := doJSON(ctx, "anthropic", c.http, req, payload, &resp); err != nil {
		return Response{}, err
	}

	parts := make([]string, 0, len(resp.Content))
	for _, block := range resp.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			parts = append(parts, block.Text)
		}
	}
	if len(parts) == 0 {
		return Response{}, fmt.Errorf("no text content returned by anthropic")
	}
	return Response{Text: strings.Join(parts, "\n")}, nil
}
