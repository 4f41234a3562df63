package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Model describes a model identifier exposed by a provider.
type Model struct {
	ID          string
	DisplayName string
}

// Request is the prompt payload sent to a provider.
type Request struct {
	Model  string
	Prompt string
}

// Response is the text returned by a provider.
type Response struct {
	Text string
}

// Client is the provider client interface used by the CLI.
type Client interface {
	Name() string
	ListModels(ctx context.Context) ([]Model, error)
	Complete(ctx context.Context, req Request) (Response, error)
}

// ClientOptions configures shared client settings for all providers.
type ClientOptions struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a provider client by name. The provider set is closed:
// openai, openrouter, and anthropic.
func New(name string, opts ClientOptions) (Client, error) {
	switch normalize(name) {
	case "openai":
		return newOpenAIClient(opts), nil
	case "openrouter":
		return newOpenRouterClient(opts), nil
	case "anthropic":
		return newAnthropicClient(opts), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q (choose openai, openrouter, or anthropic)", name)
	}
}

// Supported returns the provider names in canonical order.
func Supported() []string {
	return []string{"openai", "openrouter", "anthropic"}
}

// IsSupported reports whether name is a known provider.
func IsSupported(name string) bool {
	switch normalize(name) {
	case "openai", "openrouter", "anthropic":
		return true
	}
	return false
}

// SupportsListing reports whether the provider exposes a model-listing
// endpoint. Anthropic does not.
func SupportsListing(name string) bool {
	return normalize(name) != "anthropic"
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
