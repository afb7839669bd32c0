package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed examples.yaml
var examplesYAML []byte

// Example is one few-shot request/command pair shown to the model.
type Example struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

var examples = mustParseExamples(examplesYAML)

func mustParseExamples(data []byte) []Example {
	var out []Example
	if err := yaml.Unmarshal(data, &out); err != nil {
		panic("prompt: invalid embedded examples.yaml: " + err.Error())
	}
	return out
}

// Examples returns a copy of the embedded few-shot examples.
func Examples() []Example {
	return append([]Example(nil), examples...)
}

const rules = `You are a helpful assistant that converts natural language requests into shell commands.
Rules:
1. Return ONLY the shell command, nothing else
2. Do not include explanations or markdown formatting
3. Do not include code block markers (` + "```" + `)
4. Return a single command or a pipeline of commands
5. Make commands safe and avoid destructive operations without explicit confirmation
6. The user runs %s on %s; use syntax that works in that shell
7. If the request is ambiguous, make reasonable assumptions
8. Do not include comments in the command
`

const userTemplate = "Convert this natural language request to a shell command: %s"

// BuildSystemPrompt renders the fixed instructions for the given system.
func BuildSystemPrompt(ctx SystemContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, rules, ctx.Shell, ctx.OSName())
	if hint := GetOSHints(ctx.OS); hint != "" {
		fmt.Fprintf(&b, "Platform note: %s\n", hint)
	}

	b.WriteString("\nExamples:\n")
	for i, ex := range examples {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Input: \"%s\"\nOutput: %s\n", ex.Input, ex.Output)
	}

	return b.String()
}

// BuildUserPrompt embeds the raw request in the user message.
func BuildUserPrompt(request string) string {
	return fmt.Sprintf(userTemplate, request)
}
