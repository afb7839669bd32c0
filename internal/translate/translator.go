package translate

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/brijrajsingh/SuperTerminal/internal/command"
	"github.com/brijrajsingh/SuperTerminal/internal/config"
	serrors "github.com/brijrajsingh/SuperTerminal/internal/errors"
	"github.com/brijrajsingh/SuperTerminal/internal/llm"
	"github.com/brijrajsingh/SuperTerminal/internal/logging"
	"github.com/brijrajsingh/SuperTerminal/internal/prompt"
)

// Translator turns natural-language requests into shell commands using a
// single provider call per request.
type Translator struct {
	provider     llm.Provider
	model        string
	maxTokens    uint32
	temperature  float32
	systemPrompt string
	log          *logrus.Entry
}

// New returns a Translator for cfg's model parameters. The system prompt is
// rendered once for sys.
func New(provider llm.Provider, cfg *config.Config, sys prompt.SystemContext, log logrus.FieldLogger) *Translator {
	if log == nil {
		log = logging.Discard()
	}
	return &Translator{
		provider:     provider,
		model:        cfg.Model,
		maxTokens:    cfg.MaxTokens,
		temperature:  cfg.Temperature,
		systemPrompt: prompt.BuildSystemPrompt(sys),
		log:          logging.WithComponent(log, "translate"),
	}
}

// Translate returns the sanitized command for query. An empty query is
// rejected before any request is made.
func (t *Translator) Translate(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", serrors.InvalidInput("Input cannot be empty")
	}

	req := llm.Request{
		Model:        t.model,
		SystemPrompt: t.systemPrompt,
		UserPrompt:   prompt.BuildUserPrompt(query),
		MaxTokens:    t.maxTokens,
		Temperature:  t.temperature,
	}

	start := time.Now()
	raw, err := t.provider.Generate(ctx, req)
	log := t.log.WithFields(logrus.Fields{
		"provider": t.provider.Name(),
		"model":    t.model,
		"elapsed":  time.Since(start).Round(time.Millisecond),
	})
	if err != nil {
		log.WithError(err).Debug("generation failed")
		return "", err
	}
	log.WithField("raw", raw).Debug("model responded")

	return command.Extract(raw), nil
}
