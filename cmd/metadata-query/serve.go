package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apmstack/metadata-query/internal/config"
	"github.com/apmstack/metadata-query/internal/handlers"
	"github.com/apmstack/metadata-query/internal/server"
)

func newServeCmd(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the metadata query HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			h := handlers.New(a.metadata)
			srv := server.NewServer(cfg, a.registry, a.store.Ping, func(router *gin.RouterGroup) {
				h.RegisterRoutes(router)
			})

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(ctx)
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				zap.S().Errorw("graceful shutdown failed", "error", err)
				return err
			}
			return nil
		},
	}
}
