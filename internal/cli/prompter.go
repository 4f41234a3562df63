package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// Prompter isolates interactive input so the setup flow can run against a
// real terminal or scripted answers in tests.
type Prompter interface {
	// AskYesNo asks a yes/no question; empty input means no.
	AskYesNo(question string) (bool, error)
	// AskSecret reads a value without echoing it when possible.
	AskSecret(promptText string) (string, error)
	// AskDefault reads a value with the current one offered as the
	// default; it returns "" when the user wants to keep the current value.
	AskDefault(promptText, current string) (string, error)
}

type terminalPrompter struct {
	stdin  io.Reader
	stdout io.Writer
	buf    *bufio.Reader
}

func newTerminalPrompter(stdin io.Reader, stdout io.Writer) *terminalPrompter {
	return &terminalPrompter{stdin: stdin, stdout: stdout, buf: bufio.NewReader(stdin)}
}

func (p *terminalPrompter) AskYesNo(question string) (bool, error) {
	line, err := p.readLine(question + " [y/N]: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *terminalPrompter) AskSecret(promptText string) (string, error) {
	fd, ok := terminalFd(p.stdin)
	if !ok {
		return p.readLine(promptText)
	}

	fmt.Fprint(p.stdout, promptText)
	secret, err := term.ReadPassword(fd)
	fmt.Fprintln(p.stdout)
	if err != nil {
		return "", fmt.Errorf("read api key: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

// AskDefault uses readline's prefill on a terminal so the current value is
// editable inline; elsewhere it shows the current value in brackets.
func (p *terminalPrompter) AskDefault(promptText, current string) (string, error) {
	if _, ok := terminalFd(p.stdin); !ok {
		return p.readLine(fmt.Sprintf("%s [%s]: ", promptText, current))
	}

	cfg := &readline.Config{
		Prompt: promptText + ": ",
		Stdout: p.stdout,
	}
	if in, ok := p.stdin.(io.ReadCloser); ok {
		cfg.Stdin = in
	} else {
		cfg.Stdin = io.NopCloser(p.stdin)
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return p.readLine(fmt.Sprintf("%s [%s]: ", promptText, current))
	}
	defer rl.Close()

	line, err := rl.ReadlineWithDefault(current)
	if err == readline.ErrInterrupt || err == io.EOF {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == current {
		return "", nil
	}
	return line, nil
}

func (p *terminalPrompter) readLine(promptText string) (string, error) {
	fmt.Fprint(p.stdout, promptText)
	line, err := p.buf.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func terminalFd(r io.Reader) (int, bool) {
	file, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(file.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	return fd, true
}
