// Command aiprompt sends a prompt to OpenAI, OpenRouter, or Anthropic and
// prints the response. Credentials and per-provider defaults live in two
// JSON files in the user's home directory, managed by `aiprompt --setup`.
package main

import (
	"fmt"
	"os"

	"github.com/terminal-ai/aiprompt/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
