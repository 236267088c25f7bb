package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimgiray/repostats/internal/handlers"
	"github.com/alimgiray/repostats/internal/services"
	"github.com/alimgiray/repostats/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCommand(opts *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the reports over HTTP from the current table snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg
			gin.SetMode(cfg.Server.Mode)

			renderer, err := services.NewReportRenderer()
			if err != nil {
				return err
			}

			global, contributors, err := loadReporters(cfg)
			if err != nil {
				return err
			}

			router := handlers.NewRouter(
				renderer.Templates(),
				handlers.NewStatsHandler(global, contributors),
				handlers.NewHealthHandler(cfg.Stats.Store),
			)

			server := &http.Server{
				Addr:              ":" + cfg.Server.Port,
				Handler:           router,
				ReadHeaderTimeout: 15 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Infof("Server starting on :%s", cfg.Server.Port)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Infof("Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVarP(&opts.cfg.Server.Port, "port", "p", opts.cfg.Server.Port, "Port to listen on")

	return cmd
}
