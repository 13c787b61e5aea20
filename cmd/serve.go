package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/huangsam/moodtrack/internal/api"
	"github.com/huangsam/moodtrack/internal/store"
	"github.com/spf13/cobra"
)

// serveCmd runs the dashboard JSON API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard JSON API over HTTP",
	Long: `Start an HTTP server exposing check-ins, trend, summary and overview as JSON.

Routes:
  GET  /healthz
  GET  /api/entries
  POST /api/entries
  GET  /api/trend?window=N
  GET  /api/summary?end=YYYY-MM-DD&limit=N
  GET  /api/overview

The server drains in-flight requests on SIGINT or SIGTERM.

Examples:
  moodtrack serve --listen :9090`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		ctx, stop := signal.NotifyContext(rootCtx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		return api.ListenAndServe(ctx, cfg, store.Manager, logger)
	},
}
