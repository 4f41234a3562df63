package providers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAnthropicCompleteSendsExpectedPayload(t *testing.T) {
	var gotPath, gotKey, gotVersion string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		buf, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(buf, &gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "first"},
				{"type": "tool_use"},
				{"type": "text", "text": "second"},
			},
		})
	}))
	defer server.Close()

	client, err := New("anthropic", ClientOptions{APIKey: "sk-ant", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	resp, err := client.Complete(context.Background(), Request{Model: "claude-3-opus-20240229", Prompt: "hi"})
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if resp.Text != "first\nsecond" {
		t.Fatalf("resp.Text = %q", resp.Text)
	}
	if gotPath != "/v1/messages" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "sk-ant" {
		t.Fatalf("x-api-key = %q", gotKey)
	}
	if gotVersion != "2023-06-01" {
		t.Fatalf("anthropic-version = %q", gotVersion)
	}
	if gotBody["max_tokens"] != float64(4000) {
		t.Fatalf("max_tokens = %v", gotBody["max_tokens"])
	}
	if gotBody["model"] != "claude-3-opus-20240229" {
		t.Fatalf("model = %v", gotBody["model"])
	}
}

func TestAnthropicListModelsIsUnsupported(t *testing.T) {
	client, err := New("anthropic", ClientOptions{APIKey: "sk-ant"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	_, err = client.ListModels(context.Background())

	var unsupported *ListingUnsupportedError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want ListingUnsupportedError", err)
	}
	if unsupported.Provider != "anthropic" {
		t.Fatalf("provider = %q", unsupported.Provider)
	}
}

func TestAnthropicCompleteNoTextContentIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"content": []any{}})
	}))
	defer server.Close()

	client, err := New("anthropic", ClientOptions{APIKey: "k", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := client.Complete(context.Background(), Request{Model: "m", Prompt: "p"}); err == nil {
		t.Fatal("expected error for empty content")
	}
}
