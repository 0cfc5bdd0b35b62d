package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/naija/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP data server",
	Long: `Run an HTTP server exposing the generator as a JSON API under /v1.
Configuration comes from the environment: HTTP_ADDR, HTTP_READ_TIMEOUT,
HTTP_WRITE_TIMEOUT, HTTP_IDLE_TIMEOUT and HTTP_SHUTDOWN_TIMEOUT. The server
shuts down gracefully on SIGINT and SIGTERM.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		var cfg serveConfig
		if err := loadConfig(&cfg); err != nil {
			return err
		}

		gen, err := newGenerator()
		if err != nil {
			return err
		}

		handler := httpapi.Router(httpapi.RouterOptions{
			Generator: gen,
			Logger:    log,
		})
		srv := httpapi.NewServer(
			httpapi.WithAddr(cfg.Addr),
			httpapi.WithReadTimeout(cfg.ReadTimeout),
			httpapi.WithWriteTimeout(cfg.WriteTimeout),
			httpapi.WithIdleTimeout(cfg.IdleTimeout),
			httpapi.WithShutdownTimeout(cfg.ShutdownTimeout),
			httpapi.WithServerLogger(log),
		)

		log.Info("starting http server", "addr", cfg.Addr)
		return srv.Run(cmd.Context(), handler)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
