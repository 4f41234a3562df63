package providers

func newOpenAIClient(opts ClientOptions) Client {
	return newChatClient("openai", "https://api.openai.com/v1", opts, nil)
}
