package providers

// OpenRouter speaks the OpenAI chat-completions shape. The extra headers
// identify the calling app, which OpenRouter uses for attribution.
func newOpenRouterClient(opts ClientOptions) Client {
	return newChatClient("openrouter", "https://openrouter.ai/api/v1", opts, map[string]string{
		"HTTP-Referer": "https://github.com/terminal-ai/aiprompt",
		"X-Title":      "Terminal AI Prompt",
	})
}
