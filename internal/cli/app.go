package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brijrajsingh/SuperTerminal/internal/clipboard"
	"github.com/brijrajsingh/SuperTerminal/internal/command"
	"github.com/brijrajsingh/SuperTerminal/internal/config"
	serrors "github.com/brijrajsingh/SuperTerminal/internal/errors"
	"github.com/brijrajsingh/SuperTerminal/internal/llm"
	"github.com/brijrajsingh/SuperTerminal/internal/logging"
	"github.com/brijrajsingh/SuperTerminal/internal/prompt"
	"github.com/brijrajsingh/SuperTerminal/internal/translate"
)

var (
	yellow   = color.New(color.FgYellow)
	red      = color.New(color.FgRed, color.Bold)
	green    = color.New(color.FgGreen, color.Bold)
	cyan     = color.New(color.FgCyan)
	cyanBold = color.New(color.FgCyan, color.Bold)
	dim      = color.New(color.Faint)
)

var (
	Version   = "dev"
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

// App wires the translator, config store and terminal adapters together.
// Every dependency is a field so tests can swap it out.
type App struct {
	Out         io.Writer
	Err         io.Writer
	Store       *config.Store
	NewProvider func(*config.Config) (llm.Provider, error)
	Clipboard   clipboard.Clipboard
	Confirmer   Confirmer
	Shells      prompt.ShellDetector
	Log         *logrus.Logger
	// Interactive enables the animated spinner.
	Interactive bool

	yes     bool
	verbose bool
}

// NewApp returns an App bound to the real terminal, environment and config file.
func NewApp() (*App, error) {
	log := logging.New(os.Stderr, false)

	store, err := config.NewStore(log)
	if err != nil {
		return nil, err
	}

	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))

	return &App{
		Out:         os.Stdout,
		Err:         os.Stderr,
		Store:       store,
		NewProvider: llm.NewProvider,
		Clipboard:   clipboard.New(os.Stdout, stdoutTTY),
		Confirmer:   NewConfirmer(),
		Shells:      prompt.NewShellDetector(),
		Log:         log,
		Interactive: stdoutTTY,
	}, nil
}

// Execute runs the command line in args (without the program name).
func (a *App) Execute(ctx context.Context, args []string) error {
	cmd := a.NewRootCmd()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func (a *App) NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "superterminal [query]",
		Short: "AI-powered CLI that converts natural language to shell commands",
		Long: `SuperTerminal lets you describe what you want to do in natural language
and converts the request into a shell command. The command is displayed
for your review and copied to the clipboard once you confirm.
It is never executed for you.`,
		Example: `  superterminal "find all python files"
  superterminal -y "show disk usage"
  superterminal config --show
  superterminal config --model gpt-4o --temperature 0.2`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return a.runQuery(cmd.Context(), strings.Join(args, " "))
		},
	}

	rootCmd.SetOut(a.Out)
	rootCmd.SetErr(a.Err)
	rootCmd.SetVersionTemplate(fmt.Sprintf("superterminal {{.Version}} (commit %s, built %s)\n", CommitSHA, BuildDate))

	rootCmd.Flags().BoolVarP(&a.yes, "yes", "y", false, "skip confirmation and copy the command right away")
	rootCmd.Flags().BoolVarP(&a.verbose, "verbose", "v", false, "show debug information")

	rootCmd.AddCommand(a.newConfigCmd())

	return rootCmd
}

func (a *App) runQuery(ctx context.Context, query string) error {
	if a.verbose && a.Log != nil {
		a.Log.SetLevel(logrus.DebugLevel)
	}

	sys := prompt.GatherContext(a.Shells)
	if a.verbose {
		cyan.Fprint(a.Out, "Detected shell: ")
		cyanBold.Fprintln(a.Out, sys.Shell)
		cyan.Fprint(a.Out, "Processing query: ")
		fmt.Fprintln(a.Out, query)
	}

	cfg, err := a.Store.LoadOrDefault()
	if err != nil {
		return err
	}

	provider, err := a.NewProvider(cfg)
	if err != nil {
		return err
	}

	translator := translate.New(provider, cfg, sys, a.Log)

	spinner := NewSpinner(a.Out, "Translating to shell command...", a.Interactive)
	spinner.Start()
	cmdline, err := translator.Translate(ctx, query)
	spinner.Stop()
	if err != nil {
		return err
	}

	if cmdline == "" {
		yellow.Fprintln(a.Out, "Could not generate a command")
		fmt.Fprintln(a.Out, "Try being more specific")
		return nil
	}

	fmt.Fprintln(a.Out)
	green.Fprintln(a.Out, "Generated Command:")
	fmt.Fprintf(a.Out, "  %s\n", cyan.Sprint(cmdline))
	fmt.Fprintln(a.Out)

	a.describe(cmdline, sys.Shell)

	confirmed := a.yes
	if !confirmed {
		confirmed, err = a.Confirmer.Confirm("Copy this command to clipboard?", true)
		if err != nil {
			return serrors.UserCancelled(err)
		}
	}

	if !confirmed {
		yellow.Fprintln(a.Out, "Command not copied.")
		return nil
	}

	a.copyToClipboard(cmdline)
	return nil
}

// describe prints hints about the generated command. They never block it.
func (a *App) describe(cmdline, shell string) {
	if tool := command.GetFirstTool(cmdline); !command.IsToolAvailable(tool) {
		dim.Fprintf(a.Out, "('%s' not found - install it first)\n", tool)
	}

	if err := command.CheckSyntax(cmdline, shell); err != nil && a.Log != nil {
		a.Log.WithError(err).WithField("shell", shell).Debug("generated command does not parse")
	}
}

func (a *App) copyToClipboard(cmdline string) {
	if err := a.Clipboard.WriteText(cmdline); err != nil {
		yellow.Fprintf(a.Err, "Warning: Failed to copy to clipboard: %v\n", err)
		fmt.Fprintln(a.Out)
		green.Fprintln(a.Out, "Command ready to use:")
		fmt.Fprintln(a.Out, cmdline)
		dim.Fprintln(a.Out, "You can now copy and paste this command into your terminal.")
		return
	}

	fmt.Fprintln(a.Out)
	green.Fprintln(a.Out, "✓ Command copied to clipboard!")
	fmt.Fprintln(a.Out, cmdline)
	if a.Clipboard.Name() == "osc52" {
		dim.Fprintln(a.Out, "Sent to your terminal's clipboard; some terminals ignore this.")
	} else {
		dim.Fprintln(a.Out, "Paste it anywhere with Ctrl+V (or Cmd+V on Mac)")
	}
}

// PrintError reports err the way every failure is shown to the user.
func PrintError(w io.Writer, err error) {
	red.Fprint(w, "Error:")
	fmt.Fprintf(w, " %v\n", err)
}
