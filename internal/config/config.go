package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	configFileName = ".ai_prompt_config.json"
	keysFileName   = ".ai_prompt_keys.json"
	envConfigPath  = "AI_PROMPT_CONFIG"
	envKeysPath    = "AI_PROMPT_KEYS"

	defaultOpenAIModel     = "gpt-3.5-turbo"
	defaultOpenRouterModel = "google/gemini-2.0-pro-exp-02-05:free"
	defaultAnthropicModel  = "claude-3-opus-20240229"
	defaultProvider        = "openrouter"
)

// ErrConfigNotFound indicates the config file does not exist yet.
var ErrConfigNotFound = errors.New("config file not found")

// ProviderConfig stores per-provider defaults. APIKey is always persisted
// empty: real keys live only in the credentials file. The field stays in the
// on-disk format for compatibility with older versions.
type ProviderConfig struct {
	APIKey       string `json:"api_key"`
	DefaultModel string `json:"default_model"`
}

// Config is the persisted aiprompt configuration.
type Config struct {
	OpenAI          ProviderConfig `json:"openai"`
	OpenRouter      ProviderConfig `json:"openrouter"`
	Anthropic       ProviderConfig `json:"anthropic"`
	DefaultProvider string         `json:"default_provider"`
}

// ProviderNames returns the supported provider names in setup order.
func ProviderNames() []string {
	return []string{"openai", "openrouter", "anthropic"}
}

// IsProvider reports whether name is a supported provider. The match is
// exact: setup rejects anything else.
func IsProvider(name string) bool {
	switch name {
	case "openai", "openrouter", "anthropic":
		return true
	}
	return false
}

// Path returns the config file location: the AI_PROMPT_CONFIG environment
// variable when set, otherwise the fixed file in the user's home directory.
func Path() (string, error) {
	return resolvePath(envConfigPath, configFileName)
}

// KeysPath returns the credentials file location, honoring AI_PROMPT_KEYS.
func KeysPath() (string, error) {
	return resolvePath(envKeysPath, keysFileName)
}

func resolvePath(envVar, fileName string) (string, error) {
	if custom := strings.TrimSpace(os.Getenv(envVar)); custom != "" {
		return filepath.Clean(custom), nil
	}
	home, err := os.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", fmt.Errorf("resolve user home directory: %w", err)
	}
	return filepath.Join(home, fileName), nil
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		OpenAI:          ProviderConfig{DefaultModel: defaultOpenAIModel},
		OpenRouter:      ProviderConfig{DefaultModel: defaultOpenRouterModel},
		Anthropic:       ProviderConfig{DefaultModel: defaultAnthropicModel},
		DefaultProvider: defaultProvider,
	}
}

// Load reads the config from path. When the file is missing it returns
// DefaultConfig and ErrConfigNotFound; malformed JSON is fatal.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), ErrConfigNotFound
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w (fix the file or re-run --setup)", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

// Save persists the config to path. The api_key fields are written empty
// regardless of in-memory state; keys belong to the credentials file.
func Save(path string, cfg *Config) error {
	out := *cfg
	out.normalize()
	out.OpenAI.APIKey = ""
	out.OpenRouter.APIKey = ""
	out.Anthropic.APIKey = ""
	return writeJSONFile(path, &out)
}

// Model returns the configured default model for provider.
func (c *Config) Model(provider string) string {
	if rec := c.record(provider); rec != nil {
		return strings.TrimSpace(rec.DefaultModel)
	}
	return ""
}

// SetModel sets the default model for provider. Unknown providers are ignored.
func (c *Config) SetModel(provider, model string) {
	if rec := c.record(provider); rec != nil {
		rec.DefaultModel = strings.TrimSpace(model)
	}
}

func (c *Config) record(provider string) *ProviderConfig {
	switch provider {
	case "openai":
		return &c.OpenAI
	case "openrouter":
		return &c.OpenRouter
	case "anthropic":
		return &c.Anthropic
	}
	return nil
}

// normalize fills absent model fields with the built-in defaults and falls
// back to the default provider when the persisted value is unrecognized.
// Strict provider validation is a setup-time concern.
func (c *Config) normalize() {
	if strings.TrimSpace(c.OpenAI.DefaultModel) == "" {
		c.OpenAI.DefaultModel = defaultOpenAIModel
	}
	if strings.TrimSpace(c.OpenRouter.DefaultModel) == "" {
		c.OpenRouter.DefaultModel = defaultOpenRouterModel
	}
	if strings.TrimSpace(c.Anthropic.DefaultModel) == "" {
		c.Anthropic.DefaultModel = defaultAnthropicModel
	}
	c.DefaultProvider = strings.TrimSpace(c.DefaultProvider)
	if !IsProvider(c.DefaultProvider) {
		c.DefaultProvider = defaultProvider
	}
}

func writeJSONFile(path string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	encoded = append(encoded, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encoded, 0o600); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("set config file permissions: %w", err)
	}
	return nil
}
