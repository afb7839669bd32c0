package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brijrajsingh/SuperTerminal/internal/config"
	serrors "github.com/brijrajsingh/SuperTerminal/internal/errors"
	"github.com/brijrajsingh/SuperTerminal/internal/llm"
	"github.com/brijrajsingh/SuperTerminal/internal/logging"
)

func init() {
	color.NoColor = true
}

type stubProvider struct {
	response string
	err      error
	calls    int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Generate(context.Context, llm.Request) (string, error) {
	s.calls++
	return s.response, s.err
}

type fakeClipboard struct {
	err    error
	text   string
	writes int
}

func (f *fakeClipboard) Name() string { return "fake" }

func (f *fakeClipboard) WriteText(text string) error {
	f.writes++
	if f.err != nil {
		return f.err
	}
	f.text = text
	return nil
}

type fakeConfirmer struct {
	answer bool
	err    error
	calls  int
}

func (f *fakeConfirmer) Confirm(string, bool) (bool, error) {
	f.calls++
	return f.answer, f.err
}

type fixedShell string

func (s fixedShell) Detect() string { return string(s) }

type testApp struct {
	*App
	out       *bytes.Buffer
	errOut    *bytes.Buffer
	provider  *stubProvider
	clipboard *fakeClipboard
	confirmer *fakeConfirmer
}

func newTestApp(t *testing.T, env map[string]string) *testApp {
	t.Helper()
	ta := &testApp{
		out:       &bytes.Buffer{},
		errOut:    &bytes.Buffer{},
		provider:  &stubProvider{response: "```sh\ndf -h\n```"},
		clipboard: &fakeClipboard{},
		confirmer: &fakeConfirmer{answer: true},
	}
	ta.App = &App{
		Out: ta.out,
		Err: ta.errOut,
		Store: &config.Store{
			Path:   filepath.Join(t.TempDir(), config.FileName),
			Getenv: func(key string) string { return env[key] },
		},
		NewProvider: func(cfg *config.Config) (llm.Provider, error) {
			if !cfg.HasAPIKey() {
				return nil, serrors.MissingAPIKey()
			}
			return ta.provider, nil
		},
		Clipboard: ta.clipboard,
		Confirmer: ta.confirmer,
		Shells:    fixedShell("bash"),
		Log:       logging.New(ta.errOut, false),
	}
	return ta
}

func withKey() map[string]string {
	return map[string]string{config.APIKeyEnv: "sk-test"}
}

func (ta *testApp) run(args ...string) error {
	return ta.Execute(context.Background(), args)
}

func TestQueryWithYesCopiesWithoutPrompting(t *testing.T) {
	ta := newTestApp(t, withKey())

	err := ta.run("--yes", "show disk usage")

	require.NoError(t, err)
	out := ta.out.String()
	assert.Contains(t, out, "Translating to shell command...")
	assert.Contains(t, out, "Generated Command:\n  df -h\n")
	assert.Contains(t, out, "✓ Command copied to clipboard!\ndf -h\n")
	assert.Equal(t, "df -h", ta.clipboard.text)
	assert.Equal(t, 1, ta.clipboard.writes)
	assert.Zero(t, ta.confirmer.calls)
	assert.Equal(t, 1, ta.provider.calls)
}

func TestQueryJoinsWords(t *testing.T) {
	ta := newTestApp(t, withKey())
	ta.provider.response = "ls -la"

	require.NoError(t, ta.run("-y", "list", "all", "files"))

	assert.Equal(t, "ls -la", ta.clipboard.text)
}

func TestQueryAsksBeforeCopying(t *testing.T) {
	ta := newTestApp(t, withKey())

	require.NoError(t, ta.run("show disk usage"))

	assert.Equal(t, 1, ta.confirmer.calls)
	assert.Equal(t, "df -h", ta.clipboard.text)
}

func TestQueryDeclined(t *testing.T) {
	ta := newTestApp(t, withKey())
	ta.confirmer.answer = false

	require.NoError(t, ta.run("show disk usage"))

	assert.Contains(t, ta.out.String(), "Command not copied.")
	assert.Zero(t, ta.clipboard.writes)
}

func TestQueryPromptAborted(t *testing.T) {
	ta := newTestApp(t, withKey())
	ta.confirmer.err = errors.New("interrupt")

	err := ta.run("show disk usage")

	assert.True(t, serrors.IsKind(err, serrors.KindUserCancelled))
	assert.Equal(t, "User cancelled the operation", err.Error())
	assert.Zero(t, ta.clipboard.writes)
}

func TestQueryClipboardFailureFallsBackToPlainText(t *testing.T) {
	ta := newTestApp(t, withKey())
	ta.clipboard.err = errors.New("xclip not found")

	err := ta.run("-y", "show disk usage")

	require.NoError(t, err)
	assert.Contains(t, ta.errOut.String(), "Warning: Failed to copy to clipboard: xclip not found")
	assert.Contains(t, ta.out.String(), "Command ready to use:\ndf -h\n")
	assert.NotContains(t, ta.out.String(), "copied to clipboard!")
}

func TestQueryEmptyInput(t *testing.T) {
	ta := newTestApp(t, withKey())

	err := ta.run("   ")

	assert.True(t, serrors.IsKind(err, serrors.KindInvalidInput))
	assert.Zero(t, ta.provider.calls)
}

func TestQueryProviderError(t *testing.T) {
	ta := newTestApp(t, withKey())
	ta.provider.err = serrors.API(errors.New("status code: 500"))

	err := ta.run("-y", "show disk usage")

	assert.True(t, serrors.IsKind(err, serrors.KindAPI))
	assert.Equal(t, "OpenAI API error: status code: 500", err.Error())
	assert.Zero(t, ta.clipboard.writes)
}

func TestQueryBlankResponse(t *testing.T) {
	ta := newTestApp(t, withKey())
	ta.provider.response = "```\n```"

	require.NoError(t, ta.run("-y", "do something"))

	assert.Contains(t, ta.out.String(), "Could not generate a command")
	assert.Zero(t, ta.clipboard.writes)
}

func TestQueryMissingAPIKey(t *testing.T) {
	ta := newTestApp(t, nil)

	err := ta.run("show disk usage")

	assert.True(t, serrors.IsKind(err, serrors.KindMissingAPIKey))
	assert.Zero(t, ta.provider.calls)
}

func TestQueryVerbose(t *testing.T) {
	ta := newTestApp(t, withKey())
	ta.provider.response = "definitely-not-installed-4b1d --all"

	require.NoError(t, ta.run("-v", "-y", "do the thing"))

	out := ta.out.String()
	assert.Contains(t, out, "Detected shell: bash\n")
	assert.Contains(t, out, "Processing query: do the thing\n")
	assert.Contains(t, out, "('definitely-not-installed-4b1d' not found - install it first)")
	assert.Contains(t, ta.errOut.String(), "[debug] [translate] model responded")
}

func TestNoArgumentsPrintsHelp(t *testing.T) {
	ta := newTestApp(t, withKey())

	require.NoError(t, ta.run())

	assert.Contains(t, ta.out.String(), "Usage:")
	assert.Contains(t, ta.out.String(), "superterminal [query]")
	assert.Zero(t, ta.provider.calls)
}

func TestVersionFlag(t *testing.T) {
	ta := newTestApp(t, withKey())

	require.NoError(t, ta.run("--version"))

	assert.True(t, strings.HasPrefix(ta.out.String(), "superterminal dev"))
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer

	PrintError(&buf, serrors.InvalidInput("Input cannot be empty"))

	assert.Equal(t, "Error: Invalid input: Input cannot be empty\n", buf.String())
}
