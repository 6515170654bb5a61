package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vango-dev/slider/internal/errors"
	"github.com/vango-dev/slider/pkg/server"
)

func serveCmd(c *cli) *cobra.Command {
	var (
		state stateFlags
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the slider page and live patch stream",
		Long: `Start the HTTP server.

Routes:
  GET /          page with the slider and a control panel
  GET /slider    the slider fragment
  GET /ws        WebSocket patch stream
  GET /metrics   Prometheus metrics
  GET /healthz   liveness

The server stops gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			initial, err := state.resolve(cmd, cfg)
			if err != nil {
				return err
			}

			read, write, shutdown := cfg.Timeouts()
			srv := server.New(&server.ServerConfig{
				Address:         cfg.Server.Addr,
				Title:           cfg.Server.Title,
				InitialState:    initial,
				CheckOrigin:     server.AllowOrigins(cfg.Server.AllowedOrigins),
				ReadTimeout:     read,
				WriteTimeout:    write,
				ShutdownTimeout: shutdown,
				Logger:          c.logger,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			printBanner(out)
			info(out, "Listening on %s", cfg.Server.Addr)
			info(out, "Press Ctrl+C to stop")

			if err := srv.Run(ctx); err != nil {
				return errors.FromError(err, errors.CodeServeFailed).
					WithSuggestion("Check that " + cfg.Server.Addr + " is free, or pass --addr")
			}
			success(out, "Server stopped")
			return nil
		},
	}

	addStateFlags(cmd, &state)
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from slider.json, then :3000)")

	return cmd
}
