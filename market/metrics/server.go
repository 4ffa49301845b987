package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Server struct {
	svr    *http.Server
	logger *zap.Logger
}

// Start serves the default prometheus registry on addr in the background.
func Start(addr string, logger *zap.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s := &Server{
		svr: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}

	go func() {
		logger.Info("Starting metrics server", zap.String("addr", addr))
		if err := s.svr.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	return s
}

func (s *Server) Stop(ctx context.Context) {
	if err := s.svr.Shutdown(ctx); err != nil {
		s.logger.Error("failed to stop metrics server", zap.Error(err))
		return
	}
	s.logger.Info("Metrics server stopped")
}
