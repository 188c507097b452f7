package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/vango-dev/featuregrid/internal/server"
	"github.com/vango-dev/featuregrid/pkg/middleware"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the builder server",
		Long: `Start the HTTP server hosting the interactive builder.

Each browser gets its own builder session. Prometheus metrics are
served on /metrics and a health check on /healthz.

Examples:
  featuregrid serve
  featuregrid serve --port=8080
  featuregrid serve --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if port > 0 {
				a.cfg.Server.Port = port
			}
			if host != "" {
				a.cfg.Server.Host = host
			}
			return runServe(cmd.Context(), a)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from featuregrid.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from featuregrid.json)")

	return cmd
}

func runServe(ctx context.Context, a *app) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(
		middleware.WithRegistry(reg),
		middleware.WithKnownCategory(a.reg.HasCategory),
	)

	srv := server.New(a.cfg, a.cat, a.resolver(metrics),
		server.WithMetrics(metrics, reg),
		server.WithTracing(middleware.NewTracing()),
		server.WithLogger(a.logger),
	)

	success(os.Stdout, "Builder ready at %s", a.cfg.URL())
	return srv.Serve(ctx)
}
