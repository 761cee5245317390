package server

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/ydb-platform/httpcore/app/config"
	"github.com/ydb-platform/httpcore/app/server/transfer"
	"github.com/ydb-platform/httpcore/app/server/utils"
	"github.com/ydb-platform/httpcore/library/go/core/log"
	"golang.org/x/xerrors"
)

type service interface {
	start() error
	stop()
}

type launcher struct {
	services map[string]service
	logger   log.Logger
}

func (l *launcher) start() <-chan error {
	errChan := make(chan error, len(l.services))

	for key := range l.services {
		key := key
		go func(key string) {
			l.logger.Info("starting service", log.String("service", key))

			// blocking call
			errChan <- l.services[key].start()
		}(key)
	}

	return errChan
}

func (l *launcher) stop() {
	for key, s := range l.services {
		l.logger.Info("stopping service", log.String("service", key))
		s.stop()
	}
}

const (
	httpServiceKey    = "http"
	metricsServiceKey = "metrics"
	pprofServiceKey   = "pprof"
)

func newLauncher(logger log.Logger, cfg *config.ServerConfig) (*launcher, error) {
	l := &launcher{
		services: make(map[string]service, 3),
		logger:   logger,
	}

	registry := newMetricsRegistry()

	httpService, err := newServiceHTTP(
		log.With(logger, log.String("service", httpServiceKey)),
		cfg,
		registry,
		transfer.NewSendfileSender(),
	)
	if err != nil {
		return nil, xerrors.Errorf("new http server: %w", err)
	}

	l.services[httpServiceKey] = httpService

	if cfg.MetricsServer != nil {
		l.services[metricsServiceKey] = newServiceMetrics(
			log.With(logger, log.String("service", metricsServiceKey)),
			cfg.MetricsServer,
			registry)
	}

	if cfg.PprofServer != nil {
		l.services[pprofServiceKey] = newServicePprof(
			log.With(logger, log.String("service", pprofServiceKey)),
			cfg.PprofServer)
	}

	return l, nil
}

func run(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString(configFlag)
	if err != nil {
		return xerrors.Errorf("get config flag: %v", err)
	}

	cfg, err := newConfigFromPath(configPath)
	if err != nil {
		return xerrors.Errorf("new config: %w", err)
	}

	logger, err := utils.NewLoggerFromConfig(cfg.Logger)
	if err != nil {
		return xerrors.Errorf("new logger from config: %w", err)
	}

	l, err := newLauncher(logger, cfg)
	if err != nil {
		return xerrors.Errorf("new launcher: %w", err)
	}

	errChan := l.start()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		logger.Error("service fatal error", log.Error(err))
		l.stop()

		return xerrors.Errorf("service fatal error: %w", err)
	case sig := <-signalChan:
		logger.Info("interrupting signal", log.Any("value", sig))
		l.stop()
	}

	return nil
}
