// Package server provides the HTTP server of the metadata query service.
//
// The server uses the Gin web framework. Dev mode runs gin in debug mode,
// prod mode switches it to release mode.
//
//	┌───────────────────────────────────────────────────────────────┐
//	│                         HTTP Server                           │
//	├───────────────────────────────────────────────────────────────┤
//	│                       Middleware Stack                        │
//	│  RequestID (X-Request-ID, generated when absent)              │
//	│  ginzap.Ginzap (access log on the "http" logger)              │
//	│  ginzap.RecoveryWithZap (panic recovery, 500)                 │
//	├───────────────────────────────────────────────────────────────┤
//	│  /metrics  → promhttp handler over the given gatherer         │
//	│  /health   → 200 once the store answers a ping                │
//	│  /api/v1   → handlers registered via callback                 │
//	└───────────────────────────────────────────────────────────────┘
//
// # Lifecycle
//
//	srv := server.NewServer(cfg, gatherer, func(router *gin.RouterGroup) {
//	    handler.RegisterRoutes(router)
//	})
//
//	go func() {
//	    if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
//	        zap.S().Errorw("server error", "error", err)
//	    }
//	}()
//
//	<-ctx.Done()
//	srv.Stop(shutdownCtx)
//
// Stop performs a graceful shutdown, waiting for in-flight requests.
package server
