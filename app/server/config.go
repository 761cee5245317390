package server

import (
	"bytes"
	"errors"
	"io"
	"math"
	"os"

	"github.com/ydb-platform/httpcore/app/config"
	"github.com/ydb-platform/httpcore/app/server/utils"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

func validateServerConfig(c *config.ServerConfig) error {
	if err := validateHTTPServerConfig(c.HTTPServer); err != nil {
		return xerrors.Errorf("validate `http_server`: %w", err)
	}

	if err := validateRoutingConfig(c.Routing); err != nil {
		return xerrors.Errorf("validate `routing`: %w", err)
	}

	if err := validateCaptureConfig(c.Capture); err != nil {
		return xerrors.Errorf("validate `capture`: %w", err)
	}

	if err := validateMetricsServerConfig(c.MetricsServer); err != nil {
		return xerrors.Errorf("validate `metrics_server`: %w", err)
	}

	if err := validatePprofServerConfig(c.PprofServer); err != nil {
		return xerrors.Errorf("validate `pprof_server`: %w", err)
	}

	return nil
}

func validateHTTPServerConfig(c *config.HTTPServerConfig) error {
	if c == nil {
		return xerrors.Errorf("required field is missing: %w", utils.ErrInvalidConfig)
	}

	if err := validateEndpoint(c.Endpoint); err != nil {
		return xerrors.Errorf("validate `endpoint`: %w", err)
	}

	if c.MaxConnections <= 0 {
		return xerrors.Errorf("invalid value of field `max_connections`: %v: %w", c.MaxConnections, utils.ErrInvalidConfig)
	}

	if c.ReadTimeout <= 0 {
		return xerrors.Errorf("invalid value of field `read_timeout`: %v: %w", c.ReadTimeout, utils.ErrInvalidConfig)
	}

	if c.WriteTimeout <= 0 {
		return xerrors.Errorf("invalid value of field `write_timeout`: %v: %w", c.WriteTimeout, utils.ErrInvalidConfig)
	}

	if c.MaxHeaderBytes <= 0 {
		return xerrors.Errorf("invalid value of field `max_header_bytes`: %v: %w", c.MaxHeaderBytes, utils.ErrInvalidConfig)
	}

	if c.ReadBufferSize <= 0 {
		return xerrors.Errorf("invalid value of field `read_buffer_size`: %v: %w", c.ReadBufferSize, utils.ErrInvalidConfig)
	}

	return nil
}

func validateEndpoint(c *config.Endpoint) error {
	if c == nil {
		return xerrors.Errorf("required field is missing: %w", utils.ErrInvalidConfig)
	}

	if c.Host == "" {
		return xerrors.Errorf("invalid value of field `host`: %v: %w", c.Host, utils.ErrInvalidConfig)
	}

	if c.Port == 0 || c.Port > math.MaxUint16 {
		return xerrors.Errorf("invalid value of field `port`: %v: %w", c.Port, utils.ErrInvalidConfig)
	}

	return nil
}

func validateRoutingConfig(c *config.RoutingConfig) error {
	if c == nil {
		return xerrors.Errorf("required field is missing: %w", utils.ErrInvalidConfig)
	}

	for target, path := range c.Get {
		if target == "" || path == "" {
			return xerrors.Errorf("invalid route in field `get`: '%s' -> '%s': %w", target, path, utils.ErrInvalidConfig)
		}
	}

	for _, target := range c.Post {
		if target == "" {
			return xerrors.Errorf("empty target in field `post`: %w", utils.ErrInvalidConfig)
		}
	}

	if err := validateErrorPagesConfig(c.ErrorPages); err != nil {
		return xerrors.Errorf("validate `error_pages`: %w", err)
	}

	return nil
}

func validateErrorPagesConfig(c *config.ErrorPagesConfig) error {
	if c == nil {
		return xerrors.Errorf("required field is missing: %w", utils.ErrInvalidConfig)
	}

	pages := []struct {
		field string
		path  string
	}{
		{"bad_request", c.BadRequest},
		{"method_not_allowed", c.MethodNotAllowed},
		{"http_version_not_supported", c.HTTPVersionNotSupported},
		{"not_found", c.NotFound},
		{"internal_server_error", c.InternalServerError},
	}

	for _, page := range pages {
		if err := fileMustExist(page.path); err != nil {
			return xerrors.Errorf("invalid value of field `%s`: %w", page.field, err)
		}
	}

	return nil
}

func validateCaptureConfig(c *config.CaptureConfig) error {
	if c == nil || c.Directory == "" {
		return xerrors.Errorf("required field `directory` is missing: %w", utils.ErrInvalidConfig)
	}

	info, err := os.Stat(c.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			// created on startup
			return nil
		}

		return xerrors.Errorf("stat '%s': %w", c.Directory, err)
	}

	if !info.IsDir() {
		return xerrors.Errorf("path '%s' is not a directory: %w", c.Directory, utils.ErrInvalidConfig)
	}

	return nil
}

func validateMetricsServerConfig(c *config.MetricsServerConfig) error {
	if c == nil {
		// It's OK to disable metrics
		return nil
	}

	if err := validateEndpoint(c.Endpoint); err != nil {
		return xerrors.Errorf("validate `endpoint`: %w", err)
	}

	return nil
}

func validatePprofServerConfig(c *config.PprofServerConfig) error {
	if c == nil {
		// It's OK to disable profiler
		return nil
	}

	if err := validateEndpoint(c.Endpoint); err != nil {
		return xerrors.Errorf("validate `endpoint`: %w", err)
	}

	return nil
}

func fileMustExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return xerrors.Errorf("path '%s' does not exist: %w", path, utils.ErrInvalidConfig)
	}

	if err != nil {
		return xerrors.Errorf("stat '%s': %w", path, err)
	}

	if info.IsDir() {
		return xerrors.Errorf("path '%s' is a directory: %w", path, utils.ErrInvalidConfig)
	}

	return nil
}

func newConfigFromYAML(data []byte) (*config.ServerConfig, error) {
	var cfg config.ServerConfig

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	// an empty document keeps every default
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, xerrors.Errorf("yaml decode: %w", err)
	}

	cfg.FillDefaults()

	if err := validateServerConfig(&cfg); err != nil {
		return nil, xerrors.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func newConfigFromPath(configPath string) (*config.ServerConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, xerrors.Errorf("read file %v: %w", configPath, err)
	}

	cfg, err := newConfigFromYAML(data)
	if err != nil {
		return nil, xerrors.Errorf("parse '%s': %w", configPath, err)
	}

	return cfg, nil
}
