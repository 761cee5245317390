package utils

import (
	"io"
	"testing"

	"github.com/ydb-platform/httpcore/app/config"
	"github.com/ydb-platform/httpcore/library/go/core/log"
	"github.com/ydb-platform/httpcore/library/go/core/log/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/xerrors"
)

func LogCloserError(logger log.Logger, closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Error(msg, log.Error(err))
	}
}

func NewLoggerFromConfig(cfg *config.LoggerConfig) (log.Logger, error) {
	if cfg == nil {
		return NewDefaultLogger()
	}

	logger, err := zap.New(zap.ConsoleConfig(cfg.LogLevel))
	if err != nil {
		return nil, xerrors.Errorf("new logger: %w", err)
	}

	return logger, nil
}

func NewDefaultLogger() (log.Logger, error) {
	return NewLoggerFromConfig(&config.LoggerConfig{LogLevel: log.TraceLevel})
}

func NewTestLogger(t *testing.T) log.Logger { return &zap.Logger{L: zaptest.NewLogger(t)} }
