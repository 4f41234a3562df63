// Package prompt resolves the prompt text for an invocation from one of
// three sources, first match wins: a file path, a positional argument, or
// standard input.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEmptyPrompt indicates no prompt text could be resolved.
var ErrEmptyPrompt = errors.New("no prompt provided; pass text as an argument, use --file, or pipe to stdin")

// Resolve returns the prompt text. A file path beats a positional argument;
// stdin is read only when neither is given.
func Resolve(filePath, positional string, stdin io.Reader) (string, error) {
	if strings.TrimSpace(filePath) != "" {
		buf, err := os.ReadFile(filePath)
		if err != nil {
			return "", fmt.Errorf("read prompt file %s: %w", filePath, err)
		}
		return string(buf), nil
	}

	if positional != "" {
		return positional, nil
	}

	buf, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read prompt from stdin: %w", err)
	}
	text := string(buf)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyPrompt
	}
	return text, nil
}
