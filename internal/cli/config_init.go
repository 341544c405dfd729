package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/mindful/internal/config"
)

// sectionNote explains that a section in the file replaces the whole
// default section.
const sectionNote = `Each top-level section in the file replaces the matching default section
as a whole: fields left out of a section become zero, not default. Write
every field of a section you change, for example:

  calculator:
    default_queries: 20
    default_length: medium
  display:
    animations: true
    reveal_step_ms: 100`

// NewConfigInitCmd creates the config init command for initializing configuration.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values at the path given by
--config, $MINDFUL_CONFIG, or $MINDFUL_HOME/config.yaml (default ~/.mindful).

` + sectionNote,
		Example: `  # Create configuration
  mindful config init

  # Create configuration, overwriting existing
  mindful config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

func initConfig(cmd *cobra.Command, force bool) error {
	cfg := config.Default()
	cfg.SetConfigPath(configFrom(cmd.Context()).ConfigPath())

	if !force {
		if _, err := os.Stat(cfg.ConfigPath()); err == nil {
			return errors.New("configuration file already exists, use --force to overwrite")
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("cannot access config path %s: %w", cfg.ConfigPath(), err)
		}
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", cfg.ConfigPath())
	cmd.Printf("\n%s\n", sectionNote)

	return nil
}
