package cli

import (
	"fmt"
	"io"
)

func printUsage(w io.Writer) {
	fmt.Fprint(w, `aiprompt - query AI models from the terminal

Usage:
  aiprompt [flags] [prompt]

The prompt comes from the first matching source: --file, the positional
argument, or standard input.

Flags:
  -p, --provider <name>   provider for this invocation: openai, openrouter,
                          or anthropic (default: configured default_provider)
  -m, --model <model>     model for this invocation (default: the provider's
                          configured default_model)
  -f, --file <path>       read the prompt from a file
      --setup             run the interactive configuration setup and exit
      --list-models       list the provider's available models and exit
      --markdown          render the response as terminal markdown
      --timeout <dur>     request timeout, seconds or Go duration (default 60s)
  -h, --help              show this help
  -v, --version           show the version

Files:
  ~/.ai_prompt_keys.json     API keys per provider
  ~/.ai_prompt_config.json   default models and default provider

Examples:
  aiprompt "explain cgroups in one paragraph"
  aiprompt -p openai -m gpt-4o "write a haiku about DNS"
  git diff | aiprompt
  aiprompt --list-models -p openrouter
`)
}
