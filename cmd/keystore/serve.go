package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/keystore/internal/api"
	"github.com/AlexZinkM/keystore/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// @title        Keystore API
// @version      1.0
// @description  Local API over an encrypted wallet key directory
// @BasePath     /

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var (
		host string
		port string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the keystore over a local HTTP API with swagger UI",
		Example: `  keystore serve
  keystore serve --port 9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = config.GetPort()
			}

			s, err := opts.openStore()
			if err != nil {
				return err
			}

			router, err := api.SetupRouter(s, config.GetDefaultChain())
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              net.JoinHostPort(host, port),
				Handler:           router,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info().Str("addr", srv.Addr).Str("dir", s.Dir()).Int("wallets", len(s.Wallets())).Msg("Keystore API listening")
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info().Msg("Shutting down keystore API")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "127.0.0.1", "Listen address; the API accepts passwords, keep it local")
	cmd.Flags().StringVar(&port, "port", "", "Listen port (default from PORT)")
	return cmd
}
