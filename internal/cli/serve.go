package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/mindful/internal/web"
)

// NewServeCmd creates the "serve" command.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the page and JSON API over HTTP",
		Long: `Serves the HTML page at / and a JSON API:

  GET /api/estimate?q=N&len=short|medium|long
  GET /api/catalog
  GET /api/catalog/{rank}
  GET /healthz

The server stops gracefully on SIGINT or SIGTERM.`,
		Example: `  # Listen on the configured address (default 127.0.0.1:8080)
  mindful serve

  # Listen on all interfaces
  mindful serve --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFrom(cmd.Context())
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}

			defaults, err := configuredInput(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := web.New(web.Config{
				Addr:              addr,
				ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
				Defaults:          defaults,
			}, nil, baseLogger)

			cmd.Printf("Serving on http://%s (Ctrl+C to stop)\n", srv.Addr())
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from configuration)")
	return cmd
}
