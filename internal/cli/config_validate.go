package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/mindful/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the configuration file for syntax and semantic correctness.

This includes:
- YAML syntax and known top-level sections
- Config version compatibility
- Output format and logging settings
- Calculator defaults (queries 1-100, length short/medium/long)
- Display and server settings`,
		Example: `  # Validate current configuration
  mindful config validate

  # Validate with details
  mindful config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configFrom(cmd.Context()).ConfigPath()

			// Load again so malformed files fail here instead of falling back.
			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("configuration load failed: %w", err)
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			cmd.Println("✅ Configuration is valid")
			if verbose {
				printVerboseDetails(cmd, cfg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed configuration")

	return cmd
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = "stderr"
	}

	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Configuration file: %s\n", cfg.ConfigPath())
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Calculator: %d queries, %s answers\n",
		cfg.Calculator.DefaultQueries, cfg.Calculator.DefaultLength)
	cmd.Printf("  Animations: %t (step %s)\n", cfg.Display.Animations, cfg.RevealStep())
	cmd.Printf("  Server: %s\n", cfg.Server.Addr)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", logFile)
}
