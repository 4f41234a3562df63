package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// chatClient talks to an OpenAI-style chat completions API. Both OpenAI and
// OpenRouter share this wire shape.
type chatClient struct {
	name    string
	apiKey  string
	base    string
	http    *http.Client
	headers map[string]string
}

func newChatClient(name, base string, opts ClientOptions, headers map[string]string) *chatClient {
	if strings.TrimSpace(opts.BaseURL) != "" {
		base = opts.BaseURL
	}
	return &chatClient{
		name:    name,
		apiKey:  strings.TrimSpace(opts.APIKey),
		base:    strings.TrimRight(strings.TrimSpace(base), "/"),
		http:    defaultHTTPClient(opts.HTTPClient),
		headers: headers,
	}
}

func (c *chatClient) Name() string { return c.name }

// ListModels returns the provider's models in the order the API sent them.
func (c *chatClient) ListModels(ctx context.Context) ([]Model, error) {
	req, err := http.NewRequest(http.MethodGet, joinURL(c.base, "/models"), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)

	var resp struct {
		Data []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := doJSON(ctx, c.name, c.http, req, nil, &resp); err != nil {
		return nil, err
	}

	models := make([]Model, 0, len(resp.Data))
	for _, m := range resp.Data {
		id := strings.TrimSpace(m.ID)
		if id == "" {
			continue
		}
		name := strings.TrimSpace(m.Name)
		if name == "" {
			name = id
		}
		models = append(models, Model{ID: id, DisplayName: name})
	}
	return models, nil
}

func (c *chatClient) Complete(ctx context.Context, reqBody Request) (Response, error) {
	req, err := http.NewRequest(http.MethodPost, joinURL(c.base, "/chat/completions"), nil)
	if err != nil {
		return Response{}, fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)

	payload := map[string]any{
		"model": reqBody.Model,
		"messages": []map[string]string{
			{"role": "user", "content": reqBody.Prompt},
		},
		"temperature": 0.7,
	}

	var resp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := doJSON(ctx, c.name, c.http, req, payload, &resp); err != nil {
		return Response{}, err
	}
	if len(resp.Choices) == 0 {
		return Response{}, fmt.Errorf("no choices returned by %s", c.name)
	}
	return Response{Text: resp.Choices[0].Message.Content}, nil
}

func (c *chatClient) setHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
}
