package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg, err := Load(path)
	if err != ErrConfigNotFound {
		t.Fatalf("Load() error = %v, want ErrConfigNotFound", err)
	}
	if cfg.OpenAI.DefaultModel != "gpt-3.5-turbo" {
		t.Fatalf("openai model = %q", cfg.OpenAI.DefaultModel)
	}
	if cfg.OpenRouter.DefaultModel != "google/gemini-2.0-pro-exp-02-05:free" {
		t.Fatalf("openrouter model = %q", cfg.OpenRouter.DefaultModel)
	}
	if cfg.Anthropic.DefaultModel != "claude-3-opus-20240229" {
		t.Fatalf("anthropic model = %q", cfg.Anthropic.DefaultModel)
	}
	if cfg.DefaultProvider != "openrouter" {
		t.Fatalf("default provider = %q", cfg.DefaultProvider)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SetModel("openai", "gpt-4o")
	cfg.SetModel("anthropic", "claude-3-haiku-20240307")
	cfg.DefaultProvider = "openai"

	path := filepath.Join(t.TempDir(), "config.json")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Model("openai") != "gpt-4o" {
		t.Fatalf("openai model = %q", loaded.Model("openai"))
	}
	if loaded.Model("anthropic") != "claude-3-haiku-20240307" {
		t.Fatalf("anthropic model = %q", loaded.Model("anthropic"))
	}
	if loaded.Model("openrouter") != cfg.OpenRouter.DefaultModel {
		t.Fatalf("openrouter model = %q", loaded.Model("openrouter"))
	}
	if loaded.DefaultProvider != "openai" {
		t.Fatalf("default provider = %q", loaded.DefaultProvider)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat config: %v", err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Fatalf("mode = %o, want 600", info.Mode().Perm())
		}
	}
}

func TestSaveAlwaysWritesEmptyAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "sk-should-never-land-here"

	path := filepath.Join(t.TempDir(), "config.json")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	content := string(buf)
	if strings.Contains(content, "sk-should-never-land-here") {
		t.Fatalf("api key leaked into config file: %s", content)
	}
	if strings.Count(content, `"api_key": ""`) != 3 {
		t.Fatalf("expected three empty api_key fields, got: %s", content)
	}
}

func TestLoadMalformedConfigIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for malformed JSON")
	}
}

func TestLoadFillsAbsentFieldsWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	partial := `{"default_provider": "openai"}`
	if err := os.WriteFile(path, []byte(partial), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultProvider != "openai" {
		t.Fatalf("default provider = %q", cfg.DefaultProvider)
	}
	if cfg.Model("openrouter") == "" {
		t.Fatal("expected default openrouter model to be filled in")
	}
}

func TestLoadUnknownDefaultProviderFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{"default_provider": "azure"}`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DefaultProvider != "openrouter" {
		t.Fatalf("default provider = %q, want openrouter", cfg.DefaultProvider)
	}
}

func TestPathEnvOverride(t *testing.T) {
	t.Setenv("AI_PROMPT_CONFIG", "/tmp/custom-config.json")
	path, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if path != filepath.Clean("/tmp/custom-config.json") {
		t.Fatalf("path = %q", path)
	}
}

func TestDefaultPathsLiveInHome(t *testing.T) {
	cfgPath, err := Path()
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if !strings.HasSuffix(cfgPath, ".ai_prompt_config.json") {
		t.Fatalf("config path = %q", cfgPath)
	}
	keysPath, err := KeysPath()
	if err != nil {
		t.Fatalf("KeysPath() error = %v", err)
	}
	if !strings.HasSuffix(keysPath, ".ai_prompt_keys.json") {
		t.Fatalf("keys path = %q", keysPath)
	}
}

func TestIsProviderIsCaseSensitive(t *testing.T) {
	if !IsProvider("openai") || !IsProvider("openrouter") || !IsProvider("anthropic") {
		t.Fatal("expected all three providers to be recognized")
	}
	for _, name := range []string{"OpenAI", "azure", "", " openai"} {
		if IsProvider(name) {
			t.Fatalf("IsProvider(%q) = true, want false", name)
		}
	}
}
