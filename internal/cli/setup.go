package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/terminal-ai/aiprompt/internal/config"
)

// runSetup walks the interactive configuration flow once, top to bottom:
// API keys first, then default models, then the default provider. Both
// files are rewritten unconditionally at the end of their section.
func runSetup(cfgPath, keysPath string, p Prompter, stdout io.Writer) error {
	fmt.Fprintln(stdout, "AI Prompt Configuration Setup")
	fmt.Fprintln(stdout, "=============================")

	keys, err := config.LoadKeys(keysPath)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "API Key Configuration")
	fmt.Fprintln(stdout, "=====================")
	for _, provider := range config.ProviderNames() {
		question := fmt.Sprintf("Do you have an %s API key?", provider)
		if keys.Key(provider) != "" {
			question = fmt.Sprintf("Update the %s API key?", provider)
		}
		yes, err := p.AskYesNo(question)
		if err != nil {
			return err
		}
		if !yes {
			continue
		}
		secret, err := p.AskSecret(fmt.Sprintf("Enter %s API key: ", provider))
		if err != nil {
			return err
		}
		// Empty input keeps the prior value.
		if secret != "" {
			keys.SetKey(provider, secret)
		}
	}
	if err := config.SaveKeys(keysPath, keys); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Credentials saved to %s\n", keysPath)

	cfg, err := config.Load(cfgPath)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return err
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Model Configuration")
	fmt.Fprintln(stdout, "===================")
	for _, provider := range config.ProviderNames() {
		model, err := p.AskDefault(fmt.Sprintf("Default %s model", provider), cfg.Model(provider))
		if err != nil {
			return err
		}
		if model != "" {
			cfg.SetModel(provider, model)
		}
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Default Provider")
	fmt.Fprintln(stdout, "================")
	choice, err := p.AskDefault("Default provider (openai/openrouter/anthropic)", cfg.DefaultProvider)
	if err != nil {
		return err
	}
	if choice != "" {
		// Exact match required; a bad answer keeps the previous value and
		// is a warning, not a failure.
		if config.IsProvider(choice) {
			cfg.DefaultProvider = choice
		} else {
			fmt.Fprintf(stdout, "Invalid provider %q. Keeping %q.\n", choice, cfg.DefaultProvider)
		}
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nConfiguration saved to %s\n", cfgPath)
	return nil
}
