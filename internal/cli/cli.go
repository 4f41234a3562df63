package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/terminal-ai/aiprompt/internal/config"
	"github.com/terminal-ai/aiprompt/internal/prompt"
	"github.com/terminal-ai/aiprompt/internal/providers"
	"github.com/terminal-ai/aiprompt/internal/render"

	"golang.org/x/term"
)

const version = "1.0.0"

// MissingKeyError indicates no API key is configured for a provider.
type MissingKeyError struct {
	Provider string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("no API key configured for %s; run `aiprompt --setup` to add one", e.Provider)
}

// App holds the CLI runtime dependencies and loaded configuration.
type App struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	cfg    *config.Config
	keys   config.Keys

	// newClient is swappable so tests can capture dispatch requests.
	newClient func(provider string, opts providers.ClientOptions) (providers.Client, error)
}

// Run executes the aiprompt CLI with the provided process arguments and
// streams. Every invocation is one pass: setup, list-models, or prompt.
func Run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	opts, positional, err := parseArgs(args)
	if err != nil {
		return err
	}
	if opts.ShowHelp {
		printUsage(stdout)
		return nil
	}
	if opts.ShowVersion {
		fmt.Fprintln(stdout, version)
		return nil
	}

	cfgPath, err := config.Path()
	if err != nil {
		return err
	}
	keysPath, err := config.KeysPath()
	if err != nil {
		return err
	}

	if opts.Setup {
		return runSetup(cfgPath, keysPath, newTerminalPrompter(stdin, stdout), stdout)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return err
	}
	keys, err := config.LoadKeys(keysPath)
	if err != nil {
		return err
	}

	app := &App{stdin: stdin, stdout: stdout, stderr: stderr, cfg: cfg, keys: keys, newClient: providers.New}

	if opts.ListModels {
		return app.listModels(opts)
	}
	return app.runPrompt(opts, positional)
}

// runPrompt resolves provider, model, and prompt text, performs the single
// HTTP round trip, and prints the response.
func (a *App) runPrompt(opts options, positional string) error {
	provider, err := a.resolveProvider(opts.Provider)
	if err != nil {
		return err
	}

	key := a.keys.Key(provider)
	if key == "" {
		return &MissingKeyError{Provider: provider}
	}

	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = a.cfg.Model(provider)
	}

	text, err := prompt.Resolve(opts.File, positional, a.stdin)
	if err != nil {
		return err
	}

	client, err := a.clientFor(provider, key, opts.Timeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	stop := startSpinner(isTerminalWriter(a.stderr), a.stderr, "Waiting for "+provider)
	resp, err := client.Complete(ctx, providers.Request{Model: model, Prompt: text})
	stop()
	if err != nil {
		return err
	}

	if opts.Markdown {
		fmt.Fprintln(a.stdout, render.Markdown(resp.Text, terminalWidth(a.stdout)))
		return nil
	}
	fmt.Fprintln(a.stdout, resp.Text)
	return nil
}

// listModels prints the provider's model identifiers one per line, in the
// order the API returned them.
func (a *App) listModels(opts options) error {
	provider, err := a.resolveProvider(opts.Provider)
	if err != nil {
		return err
	}
	if !providers.SupportsListing(provider) {
		return &providers.ListingUnsupportedError{Provider: provider}
	}

	key := a.keys.Key(provider)
	if key == "" {
		return &MissingKeyError{Provider: provider}
	}

	client, err := a.clientFor(provider, key, opts.Timeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	stop := startSpinner(isTerminalWriter(a.stderr), a.stderr, "Fetching models from "+provider)
	models, err := client.ListModels(ctx)
	stop()
	if err != nil {
		return err
	}

	for _, m := range models {
		fmt.Fprintln(a.stdout, m.ID)
	}
	return nil
}

func (a *App) resolveProvider(override string) (string, error) {
	provider := strings.TrimSpace(override)
	if provider == "" {
		provider = a.cfg.DefaultProvider
	}
	if !providers.IsSupported(provider) {
		return "", fmt.Errorf("unsupported provider %q (choose openai, openrouter, or anthropic)", provider)
	}
	return provider, nil
}

func (a *App) clientFor(provider, key string, timeout time.Duration) (providers.Client, error) {
	if timeout <= 0 {
		timeout = providers.DefaultTimeout
	}
	return a.newClient(provider, providers.ClientOptions{
		APIKey:     key,
		HTTPClient: &http.Client{Timeout: timeout},
	})
}

func terminalWidth(w io.Writer) int {
	const fallback = 100
	fdw, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return fallback
	}
	fd := int(fdw.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
