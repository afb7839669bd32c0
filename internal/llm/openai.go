package llm

import (
	"context"
	"math"

	"github.com/sashabaranov/go-openai"

	serrors "github.com/brijrajsingh/SuperTerminal/internal/errors"
)

// OpenAIProvider talks to OpenAI or any API with the same chat completion
// endpoint.
type OpenAIProvider struct {
	client *openai.Client
	name   string
}

// NewOpenAIProvider returns a provider for the official API, or for baseURL
// when it is not empty.
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	return newOpenAICompatible(string(ProviderOpenAI), apiKey, baseURL)
}

func newOpenAICompatible(name, apiKey, baseURL string) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientConfig.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client: openai.NewClientWithConfig(clientConfig),
		name:   name,
	}
}

func (p *OpenAIProvider) Name() string {
	return p.name
}

func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.SystemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.UserPrompt,
			},
		},
		Temperature: wireTemperature(req.Temperature),
		MaxTokens:   int(req.MaxTokens),
	})
	if err != nil {
		return "", serrors.API(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", serrors.ErrNoResponse
	}

	return resp.Choices[0].Message.Content, nil
}

// The temperature field is omitted from the JSON body when zero, which the
// API reads as its default of 1.0.
func wireTemperature(t float32) float32 {
	if t == 0 {
		return math.SmallestNonzeroFloat32
	}
	return t
}
