package llm

const DeepSeekBaseURL = "https://api.deepseek.com/v1"

// NewDeepSeekProvider returns a provider for DeepSeek's OpenAI-compatible API.
func NewDeepSeekProvider(apiKey string) *OpenAIProvider {
	return newOpenAICompatible(string(ProviderDeepSeek), apiKey, DeepSeekBaseURL)
}
