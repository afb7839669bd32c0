package command

import (
	"strings"
)

const fence = "```"

// Opening fences, checked in order; only the first match is removed.
var openingFences = []string{fence + "bash", fence + "sh", fence}

// Extract turns raw model output into a single command line. It strips one
// surrounding markdown fence and returns the first non-blank line, or "" when
// there is none.
func Extract(response string) string {
	content := strings.TrimSpace(response)

	for _, prefix := range openingFences {
		if strings.HasPrefix(content, prefix) {
			content = strings.TrimPrefix(content, prefix)
			break
		}
	}

	content = strings.TrimSpace(content)

	if strings.HasSuffix(content, fence) {
		content = strings.TrimSpace(strings.TrimSuffix(content, fence))
	}

	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
