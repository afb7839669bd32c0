package llm

import (
	"context"
	"strings"

	"github.com/brijrajsingh/SuperTerminal/internal/config"
	serrors "github.com/brijrajsingh/SuperTerminal/internal/errors"
)

// Request is one chat completion: a system and a user message plus the
// sampling parameters.
type Request struct {
	Model        string
	SystemPrompt string
	UserPrompt   string
	MaxTokens    uint32
	Temperature  float32
}

// Validate reports requests that cannot be sent.
func (r Request) Validate() error {
	switch {
	case strings.TrimSpace(r.Model) == "":
		return serrors.Config("model is not set")
	case r.SystemPrompt == "" || r.UserPrompt == "":
		return serrors.Config("request needs a system and a user message")
	case r.MaxTokens == 0:
		return serrors.Config("max_tokens must be greater than 0")
	case !(r.Temperature >= config.MinTemperature && r.Temperature <= config.MaxTemperature):
		return serrors.Config("temperature %v is outside [%.1f, %.1f]", r.Temperature, config.MinTemperature, config.MaxTemperature)
	}
	return nil
}

// Provider sends a single request to a hosted model and returns its raw text.
// Implementations return serrors.ErrNoResponse when the model produced no
// content and an API-kind error for transport or provider failures.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

type ProviderType string

const (
	ProviderOpenAI   ProviderType = "openai"
	ProviderClaude   ProviderType = "claude"
	ProviderDeepSeek ProviderType = "deepseek"
)

// ProviderTypeForModel picks the backend serving a model name.
func ProviderTypeForModel(model string) ProviderType {
	m := strings.ToLower(strings.TrimSpace(model))
	switch {
	case strings.HasPrefix(m, "claude"):
		return ProviderClaude
	case strings.HasPrefix(m, "deepseek"):
		return ProviderDeepSeek
	default:
		return ProviderOpenAI
	}
}

// NewProvider builds the backend for cfg.Model using cfg.APIKey.
func NewProvider(cfg *config.Config) (Provider, error) {
	if !cfg.HasAPIKey() {
		return nil, serrors.MissingAPIKey()
	}

	switch ProviderTypeForModel(cfg.Model) {
	case ProviderClaude:
		return NewClaudeProvider(cfg.APIKey), nil
	case ProviderDeepSeek:
		return NewDeepSeekProvider(cfg.APIKey), nil
	default:
		return NewOpenAIProvider(cfg.APIKey, ""), nil
	}
}

func ListProviders() []string {
	return []string{
		string(ProviderOpenAI),
		string(ProviderClaude),
		string(ProviderDeepSeek),
	}
}
