package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/terminal-ai/aiprompt/internal/providers"
)

type options struct {
	Provider    string
	Model       string
	File        string
	Setup       bool
	ListModels  bool
	Markdown    bool
	Timeout     time.Duration
	ShowHelp    bool
	ShowVersion bool
}

// parseArgs scans the flat flag surface and returns the remaining words as
// the positional prompt.
func parseArgs(args []string) (options, string, error) {
	opts := options{Timeout: providers.DefaultTimeout}

	rest, err := scanOptions(args, []optionSpec{
		{Names: []string{"provider", "p"}, TakesValue: true, Set: func(v string) error { opts.Provider = strings.TrimSpace(v); return nil }},
		{Names: []string{"model", "m"}, TakesValue: true, Set: func(v string) error { opts.Model = strings.TrimSpace(v); return nil }},
		{Names: []string{"file", "f"}, TakesValue: true, Set: func(v string) error { opts.File = strings.TrimSpace(v); return nil }},
		{Names: []string{"setup"}, TakesValue: false, Set: func(string) error { opts.Setup = true; return nil }},
		{Names: []string{"list-models"}, TakesValue: false, Set: func(string) error { opts.ListModels = true; return nil }},
		{Names: []string{"markdown"}, TakesValue: false, Set: func(string) error { opts.Markdown = true; return nil }},
		{Names: []string{"timeout"}, TakesValue: true, Set: func(v string) error {
			d, err := parseDuration(v)
			if err != nil {
				return fmt.Errorf("--timeout: %w", err)
			}
			opts.Timeout = d
			return nil
		}},
		{Names: []string{"help", "h"}, TakesValue: false, Set: func(string) error { opts.ShowHelp = true; return nil }},
		{Names: []string{"version", "v"}, TakesValue: false, Set: func(string) error { opts.ShowVersion = true; return nil }},
	})
	if err != nil {
		return opts, "", err
	}

	return opts, strings.Join(rest, " "), nil
}

// parseDuration accepts plain seconds ("30") or Go durations ("1m30s").
func parseDuration(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("timeout value is empty")
	}
	if strings.ContainsAny(raw, "hms") {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return 0, err
		}
		if d <= 0 {
			return 0, fmt.Errorf("timeout must be positive")
		}
		return d, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("timeout must be a positive integer seconds or duration")
	}
	return time.Duration(seconds) * time.Second, nil
}
