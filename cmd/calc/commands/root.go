package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"calc/internal/app"
)

var (
	configPath string
	maxLength  int
	precision  int
	logLevel   string
	serverURL  string
	appCtx     *app.Wire
)

// Execute runs the calc CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "calc",
		Short:         "Keypad calculator engine",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd.Flags())
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx = w
			return nil
		},
	}

	def := app.DefaultConfig()
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().IntVar(&maxLength, "max-length", def.MaxLength, "display width in characters")
	root.PersistentFlags().IntVar(&precision, "precision", def.Precision, "fractional digits before trailing zeros are trimmed")
	root.PersistentFlags().StringVar(&logLevel, "log-level", def.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "calcd base URL (e.g. http://127.0.0.1:8080); evaluate remotely")

	root.AddCommand(evalCmd(), keysCmd(), replCmd())
	return root
}

// resolveConfig loads --config and lets explicitly set flags override it.
func resolveConfig(fs *pflag.FlagSet) (app.Config, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if fs.Changed("max-length") {
		cfg.MaxLength = maxLength
	}
	if fs.Changed("precision") {
		cfg.Precision = precision
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}
