package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ydb-platform/httpcore/app/config"
	"github.com/ydb-platform/httpcore/app/server/utils"
	"github.com/ydb-platform/httpcore/library/go/core/log"
	"golang.org/x/xerrors"
)

type serviceMetrics struct {
	httpServer *http.Server
	logger     log.Logger
}

func (s *serviceMetrics) start() error {
	s.logger.Debug("starting HTTP metrics server", log.String("address", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return xerrors.Errorf("http metrics server listen and serve: %w", err)
	}

	return nil
}

const shutdownTimeout = 5 * time.Second

func (s *serviceMetrics) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown http metrics server", log.Error(err))
	}
}

func newServiceMetrics(logger log.Logger, cfg *config.MetricsServerConfig, registry *prometheus.Registry) service {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	httpServer := &http.Server{
		Addr:              utils.EndpointToString(cfg.Endpoint),
		Handler:           mux,
		ReadHeaderTimeout: shutdownTimeout,
	}

	logger.Warn("metrics server will use insecure connections")

	return &serviceMetrics{
		httpServer: httpServer,
		logger:     logger,
	}
}
