package llm

import (
	"context"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	serrors "github.com/brijrajsingh/SuperTerminal/internal/errors"
)

// Anthropic accepts temperatures up to 1.0.
const claudeMaxTemperature = 1.0

type ClaudeProvider struct {
	client *anthropic.Client
}

func NewClaudeProvider(apiKey string, opts ...option.RequestOption) *ClaudeProvider {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &ClaudeProvider{
		client: anthropic.NewClient(opts...),
	}
}

func (p *ClaudeProvider) Name() string {
	return string(ProviderClaude)
}

func (p *ClaudeProvider) Generate(ctx context.Context, req Request) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	temperature := float64(req.Temperature)
	if temperature > claudeMaxTemperature {
		temperature = claudeMaxTemperature
	}

	message, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.F(req.Model),
		MaxTokens:   anthropic.F(int64(req.MaxTokens)),
		Temperature: anthropic.F(temperature),
		System: anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(req.SystemPrompt),
		}),
		Messages: anthropic.F([]anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.UserPrompt)),
		}),
	})
	if err != nil {
		return "", serrors.API(err)
	}

	var result strings.Builder
	for _, block := range message.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			result.WriteString(block.Text)
		}
	}

	if result.Len() == 0 {
		return "", serrors.ErrNoResponse
	}
	return result.String(), nil
}
