package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd.Context())
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshalling configuration: %w", err)
			}
			cmd.Printf("# %s\n%s", cfg.ConfigPath(), data)
			return nil
		},
	}
}
