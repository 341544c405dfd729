package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/mindful/internal/catalog"
	"github.com/rshade/mindful/internal/config"
	"github.com/rshade/mindful/internal/greenops"
	"github.com/rshade/mindful/internal/session"
	"github.com/rshade/mindful/internal/tui"
)

// runPage routes the root command to the interactive page or a static
// rendering based on the detected output mode.
func runPage(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := configFrom(ctx)

	s, err := newConfiguredSession(cfg)
	if err != nil {
		return err
	}

	plain, _ := cmd.Flags().GetBool("plain")
	noAnimation, _ := cmd.Flags().GetBool("no-animation")
	width, _ := cmd.Flags().GetInt("width")

	mode := tui.DetectOutputMode(plain, false, false)
	logger.Debug().Ctx(ctx).Str("operation", "page").Str("mode", mode.String()).Msg("rendering page")

	switch mode {
	case tui.OutputModeInteractive:
		return runInteractivePage(ctx, s, tui.PageOptions{
			Animate:    cfg.Display.Animations && !noAnimation,
			RevealStep: cfg.RevealStep(),
		})
	case tui.OutputModeStyled, tui.OutputModePlain:
		return renderStaticPage(cmd.OutOrStdout(), s, width, mode == tui.OutputModePlain)
	default:
		return renderStaticPage(cmd.OutOrStdout(), s, width, true)
	}
}

// newConfiguredSession starts a session at the configured calculator position.
func newConfiguredSession(cfg *config.Config) (*session.Session, error) {
	in, err := configuredInput(cfg)
	if err != nil {
		return nil, err
	}
	return session.NewSessionWithDefaults(catalog.Default(), in)
}

func configuredInput(cfg *config.Config) (greenops.CalculatorInput, error) {
	in, err := cfg.CalculatorInput()
	if err != nil {
		return greenops.CalculatorInput{}, fmt.Errorf("invalid calculator defaults in %s: %w", cfg.ConfigPath(), err)
	}
	return in, nil
}

func runInteractivePage(ctx context.Context, s *session.Session, opts tui.PageOptions) error {
	model := tui.NewPageModel(ctx, s, opts)
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive page: %w", err)
	}
	return nil
}

func renderStaticPage(w io.Writer, s *session.Session, width int, plain bool) error {
	if width <= 0 && isTerminal(os.Stdout) {
		if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = tw
		}
	}
	return tui.RenderStaticPage(w, s, tui.StaticOptions{Width: width, Plain: plain})
}
