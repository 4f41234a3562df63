package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Keys holds the per-provider API keys persisted in the credentials file.
// An empty string means no key is configured.
type Keys struct {
	OpenAI     string `json:"openai"`
	OpenRouter string `json:"openrouter"`
	Anthropic  string `json:"anthropic"`
}

// LoadKeys reads the credentials file at path. A missing file is not an
// error: all keys load as empty. Malformed JSON is fatal.
func LoadKeys(path string) (Keys, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Keys{}, nil
		}
		return Keys{}, fmt.Errorf("read credentials %s: %w", path, err)
	}

	var keys Keys
	if err := json.Unmarshal(buf, &keys); err != nil {
		return Keys{}, fmt.Errorf("decode credentials %s: %w (fix the file or re-run --setup)", path, err)
	}
	return keys, nil
}

// SaveKeys overwrites the credentials file wholesale.
func SaveKeys(path string, keys Keys) error {
	return writeJSONFile(path, keys)
}

// Key returns the stored API key for provider, or "" when unset or unknown.
func (k Keys) Key(provider string) string {
	switch provider {
	case "openai":
		return strings.TrimSpace(k.OpenAI)
	case "openrouter":
		return strings.TrimSpace(k.OpenRouter)
	case "anthropic":
		return strings.TrimSpace(k.Anthropic)
	}
	return ""
}

// SetKey stores an API key for provider. Unknown providers are ignored.
func (k *Keys) SetKey(provider, value string) {
	value = strings.TrimSpace(value)
	switch provider {
	case "openai":
		k.OpenAI = value
	case "openrouter":
		k.OpenRouter = value
	case "anthropic":
		k.Anthropic = value
	}
}
