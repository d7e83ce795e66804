package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"tourism-server/config"
)

type TourismHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	cfg       *config.Config
	logger    *slog.Logger
}

func NewTourismHttpServer(router *Router, muxRouter *mux.Router, cfg *config.Config, logger *slog.Logger) *TourismHttpServer {
	return &TourismHttpServer{
		router:    router,
		muxRouter: muxRouter,
		cfg:       cfg,
		logger:    logger.With("component", "http_server"),
	}
}

// Handler registers the routes and returns the full middleware chain:
// request id, CORS and gzip around the router, access logging inside it.
func (s *TourismHttpServer) Handler() http.Handler {
	s.router.RegisterRoutes()
	s.muxRouter.Use(AccessMiddleware(s.logger))
	return RequestIDMiddleware(CORSMiddleware(GzipMiddleware(s.muxRouter)))
}

// Start serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully within the configured timeout.
func (s *TourismHttpServer) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         s.cfg.HTTPAddr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", s.cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down the server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("server exiting")
	return nil
}
