package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brijrajsingh/SuperTerminal/internal/config"
)

type configOptions struct {
	model       string
	maxTokens   uint32
	temperature float32
	show        bool
}

func (a *App) newConfigCmd() *cobra.Command {
	opts := &configOptions{}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configure SuperTerminal settings",
		Long: fmt.Sprintf(`View or change SuperTerminal settings.

Settings are stored as JSON in the per-user config directory
(override the directory with $%s). On first run the API key
is read from $%s.`, config.EnvConfigDir, config.APIKeyEnv),
		Example: `  superterminal config --show
  superterminal config --model gpt-4o-mini
  superterminal config --max-tokens 200 --temperature 0.1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runConfig(cmd, opts)
		},
	}

	configCmd.Flags().StringVar(&opts.model, "model", "", "set the model to use")
	configCmd.Flags().Uint32Var(&opts.maxTokens, "max-tokens", 0, "set the maximum tokens for responses")
	configCmd.Flags().Float32Var(&opts.temperature, "temperature", 0, "set the temperature (0.0 to 2.0)")
	configCmd.Flags().BoolVar(&opts.show, "show", false, "show current configuration")

	return configCmd
}

func (a *App) runConfig(cmd *cobra.Command, opts *configOptions) error {
	cfg, err := a.Store.LoadOrDefault()
	if err != nil {
		return err
	}

	if opts.show {
		a.showConfig(cfg)
		return nil
	}

	var update config.Update
	if cmd.Flags().Changed("model") {
		update.Model = &opts.model
	}
	if cmd.Flags().Changed("max-tokens") {
		update.MaxTokens = &opts.maxTokens
	}
	if cmd.Flags().Changed("temperature") {
		update.Temperature = &opts.temperature
	}

	changed, err := cfg.Apply(update)
	if err != nil {
		return err
	}

	if !changed {
		yellow.Fprintln(a.Out, "No configuration changes specified.")
		fmt.Fprintln(a.Out, "Use --show to see current configuration.")
		return nil
	}

	if err := a.Store.Save(cfg); err != nil {
		return err
	}
	green.Fprintln(a.Out, "Configuration updated successfully!")
	return nil
}

func (a *App) showConfig(cfg *config.Config) {
	cyanBold.Fprintln(a.Out, "Current Configuration:")
	fmt.Fprintf(a.Out, "  Model:         %s\n", cfg.Model)
	fmt.Fprintf(a.Out, "  Max Tokens:    %d\n", cfg.MaxTokens)
	fmt.Fprintf(a.Out, "  Temperature:   %v\n", cfg.Temperature)
	fmt.Fprintf(a.Out, "  API Key:       %s\n", keyStatus(cfg.APIKey))
	fmt.Fprintf(a.Out, "  Config File:   %s\n", a.Store.Path)
}

func keyStatus(key string) string {
	if key == "" {
		return "Not set"
	}
	return "Set"
}
