package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/vidcode-api/api"
	"github.com/killallgit/vidcode-api/internal/services/cleanup"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		serverHost string
		serverPort int
	)

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: `Start the Video Coding API server with the configured settings.

The database schema is migrated before the server starts listening.

Example:
  vidcode-api serve
  vidcode-api serve --port 9090
  vidcode-api serve --host 0.0.0.0 --port 8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			// Flags override config values
			if serverHost != "" {
				cfg.Server.Host = serverHost
			}
			if serverPort != 0 {
				cfg.Server.Port = serverPort
			}
			if cfg.Environment == "production" {
				gin.SetMode(gin.ReleaseMode)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer db.Close()

			server := api.NewServer(cfg)
			server.SetDatabase(db)
			if err := server.Initialize(); err != nil {
				return fmt.Errorf("failed to initialize server: %w", err)
			}

			sweeper := cleanup.NewService(cfg.Storage.UploadDir, cfg.Storage.StaleUploadAge, cfg.Storage.CleanupInterval)
			sweeper.Start(cmd.Context())
			defer sweeper.Stop()

			return runServer(cmd.Context(), server, cfg.Server.ShutdownTimeout)
		},
	}

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
	return serveCmd
}

// runServer serves until ctx is cancelled or the listener fails, then shuts
// down gracefully within timeout
func runServer(ctx context.Context, server *api.Server, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
		close(serverErr)
	}()

	log.Info().Str("addr", server.Addr()).Msg("server is ready to handle requests")

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
	case err, ok := <-serverErr:
		if ok {
			runErr = err
			log.Error().Err(err).Msg("shutting down server")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		return err
	}

	log.Info().Msg("server gracefully stopped")
	return runErr
}
