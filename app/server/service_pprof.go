package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/pprof"

	"github.com/ydb-platform/httpcore/app/config"
	"github.com/ydb-platform/httpcore/app/server/utils"
	"github.com/ydb-platform/httpcore/library/go/core/log"
	"golang.org/x/xerrors"
)

type servicePprof struct {
	httpServer *http.Server
	logger     log.Logger
}

func (s *servicePprof) start() error {
	s.logger.Debug("starting HTTP pprof server", log.String("address", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return xerrors.Errorf("http pprof server listen and serve: %w", err)
	}

	return nil
}

func (s *servicePprof) stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("shutdown http pprof server", log.Error(err))
	}
}

func newServicePprof(logger log.Logger, cfg *config.PprofServerConfig) service {
	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	httpServer := &http.Server{
		Addr:              utils.EndpointToString(cfg.Endpoint),
		Handler:           mux,
		ReadHeaderTimeout: shutdownTimeout,
	}

	logger.Warn("pprof server will use insecure connections")

	return &servicePprof{
		httpServer: httpServer,
		logger:     logger,
	}
}
