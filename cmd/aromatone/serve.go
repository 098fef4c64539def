package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mughesh03/aromatone"
	"github.com/mughesh03/aromatone/internal/cli"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Starts the wizard, recipe, platform and AI proxy API over HTTP.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
			if err := cfg.Validate(); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("wizards") {
			cfg.WizardDir, _ = cmd.Flags().GetString("wizards")
		}

		app, err := aromatone.New(cfg, aromatone.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("initializing aromatone: %w", err)
		}
		defer app.Close()

		srv := &http.Server{
			Addr:              cfg.Addr(),
			Handler:           app.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", srv.Addr, "backend", cfg.SessionBackend, "generator", cfg.RecipeGenerator)
			serverErrors <- srv.ListenAndServe()
		}()

		sc := cli.NewSignalContext(cmd.Context())
		defer sc.Cancel()

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server error: %w", err)

		case <-sc.Done():
			logger.Info("shutting down", "signal", fmt.Sprint(sc.Signal()))

			// Give outstanding requests a deadline for completion. SSE
			// streams are long-lived, so they are cut when it passes.
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("graceful shutdown did not complete", "timeout", shutdownTimeout, "err", err)
				if err := srv.Close(); err != nil {
					return fmt.Errorf("killing server: %w", err)
				}
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 3000, "Port to listen on; overrides PORT")
	serveCmd.Flags().String("wizards", "", "Directory of extra YAML wizard definitions; overrides WIZARD_DIR")
}
