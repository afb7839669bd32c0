package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFirstTool(t *testing.T) {
	tests := []struct {
		command  string
		expected string
	}{
		{"ls -la", "ls"},
		{"  df -h  ", "df"},
		{"find . -name \"*.txt\" -exec wc -l {} +", "find"},
		{"cat access.log | grep 404 | wc -l", "cat"},
		{"cd /tmp && ls", "cd"},
		{"sudo apt install jq", "apt"},
		{"sudo -u root ls", "sudo"},
		{"env FOO=bar make test", "make"},
		{"nohup python3 server.py &", "python3"},
		{"time go test ./...", "go"},
		{"FOO=1 npm run build", "npm"},
		{"(cd src && make)", "cd"},
		{"$(which go) version", ""},
		{"for f in *.go; do gofmt -l $f; done", "gofmt"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetFirstTool(tt.command), "command %q", tt.command)
	}
}

func TestGetFirstToolFallsBackOnParseError(t *testing.T) {
	// Unbalanced quote: the parser rejects it, the field split still works.
	assert.Equal(t, "echo", GetFirstTool(`echo "unterminated`))
	assert.Equal(t, "grep", GetFirstTool(`sudo grep 'oops`))
}

func TestCheckSyntax(t *testing.T) {
	assert.NoError(t, CheckSyntax("ls -la | sort", "bash"))
	assert.NoError(t, CheckSyntax("ls -la | sort", "sh"))
	assert.NoError(t, CheckSyntax("ls -la | sort", "mksh"))
	assert.Error(t, CheckSyntax("echo 'unterminated", "zsh"))
	assert.Error(t, CheckSyntax("if true; then", "bash"))

	// Bash-only syntax is rejected by the POSIX parser.
	assert.NoError(t, CheckSyntax("files=(a b) && echo done", "bash"))
	assert.Error(t, CheckSyntax("files=(a b) && echo done", "dash"))

	// Unknown shells are not checked.
	assert.NoError(t, CheckSyntax("Get-ChildItem | Where-Object {", "powershell"))
	assert.NoError(t, CheckSyntax("echo 'unterminated", "fish"))
}

func TestIsToolAvailable(t *testing.T) {
	assert.True(t, IsToolAvailable(""))
	assert.True(t, IsToolAvailable("cd"))
	assert.True(t, IsToolAvailable("echo"))
	assert.False(t, IsToolAvailable("definitely-not-a-real-tool-4b1d"))
}
