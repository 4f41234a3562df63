package cli

import (
	"testing"
	"time"
)

func TestParseArgsFlagsAndPositional(t *testing.T) {
	opts, positional, err := parseArgs([]string{"-p", "openrouter", "-m", "m1", "--markdown", "hello", "world"})
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if opts.Provider != "openrouter" || opts.Model != "m1" {
		t.Fatalf("opts = %+v", opts)
	}
	if !opts.Markdown {
		t.Fatal("expected markdown to be set")
	}
	if positional != "hello world" {
		t.Fatalf("positional = %q", positional)
	}
}

func TestParseArgsEqualsForm(t *testing.T) {
	opts, _, err := parseArgs([]string{"--provider=openai", "--file=notes.txt"})
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if opts.Provider != "openai" || opts.File != "notes.txt" {
		t.Fatalf("opts = %+v", opts)
	}
}

func TestParseArgsModes(t *testing.T) {
	opts, _, err := parseArgs([]string{"--setup"})
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if !opts.Setup {
		t.Fatal("expected setup mode")
	}

	opts, _, err = parseArgs([]string{"--list-models", "-p", "openai"})
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if !opts.ListModels || opts.Provider != "openai" {
		t.Fatalf("opts = %+v", opts)
	}
}

func TestParseArgsUnknownFlag(t *testing.T) {
	if _, _, err := parseArgs([]string{"--bogus"}); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestParseArgsTimeout(t *testing.T) {
	opts, _, err := parseArgs([]string{"--timeout", "5", "hi"})
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if opts.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", opts.Timeout)
	}

	opts, _, err = parseArgs([]string{"--timeout", "1m30s", "hi"})
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if opts.Timeout != 90*time.Second {
		t.Fatalf("timeout = %v", opts.Timeout)
	}

	if _, _, err := parseArgs([]string{"--timeout", "-3"}); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestParseArgsDefaultTimeout(t *testing.T) {
	opts, _, err := parseArgs([]string{"hi"})
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if opts.Timeout != 60*time.Second {
		t.Fatalf("timeout = %v", opts.Timeout)
	}
}
