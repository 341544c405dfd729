package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/mindful/internal/config"
	"github.com/rshade/mindful/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// baseLogger is logger without the cli component, for handing to other components.
var baseLogger zerolog.Logger //nolint:gochecknoglobals // Set alongside logger.

type configKey struct{}

// configFrom returns the configuration loaded by the root command, or the
// defaults when a command runs without it.
func configFrom(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok && cfg != nil {
		return cfg
	}
	return config.Default()
}

// NewRootCmd creates the root Cobra command for the mindful CLI. Without a
// subcommand it shows the page: interactively on a terminal, as static text
// otherwise.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "mindful",
		Short:   "The Weight of Intelligence: the carbon cost of AI queries",
		Long:    "mindful shows what everyday AI use costs in CO₂ and how to use it with intention.",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Context() == nil {
				cmd.SetContext(context.Background())
			}
			loadConfig(cmd)
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
		RunE: runPage,
		// main prints the error.
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $MINDFUL_HOME/config.yaml)")
	cmd.Flags().Bool("no-animation", false, "show every section at once")
	cmd.Flags().Bool("plain", false, "plain text output without colour or the interactive page")
	cmd.Flags().Int("width", 0, "page width for non-interactive output (default: terminal width)")

	cmd.AddCommand(
		NewEstimateCmd(), newCatalogCmd(), NewRenderCmd(),
		NewServeCmd(), newConfigCmd(),
	)

	return cmd
}

// loadConfig resolves and loads the configuration into the command context.
// Load problems are reported on stderr before file logging exists.
func loadConfig(cmd *cobra.Command) {
	flagPath, _ := cmd.Flags().GetString("config")

	boot := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: true}).
		Level(zerolog.WarnLevel)
	ctx := boot.WithContext(cmd.Context())

	path := config.ResolvePath(ctx, flagPath)
	cfg := config.LoadOrDefault(ctx, path)
	cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
}

const rootCmdExample = `  # Explore the page in your terminal
  mindful

  # Print the page as plain text
  mindful --plain | less

  # Estimate the footprint of 40 long answers a day
  mindful estimate --queries 40 --length long

  # List the ways AI gets used, as JSON
  mindful catalog list --output json

  # Write the page as an HTML file
  mindful render --out weight.html

  # Serve the page on http://127.0.0.1:8080
  mindful serve

  # Initialize configuration
  mindful config init`

// newCatalogCmd creates the catalog command group.
func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "catalog", Short: "Browse how AI gets used and its impact"}
	cmd.AddCommand(NewCatalogListCmd(), NewCatalogShowCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
