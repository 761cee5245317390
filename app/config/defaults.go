package config

import (
	"time"

	"github.com/ydb-platform/httpcore/library/go/core/log"
)

const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 8081
	DefaultMaxConnections = 128
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxHeaderBytes = 8 << 10
	DefaultReadBufferSize = 32 << 10
	DefaultCaptureDir     = "artifacts"
)

func NewDefaultHTTPServerConfig() *HTTPServerConfig {
	return &HTTPServerConfig{
		Endpoint:       &Endpoint{Host: DefaultHost, Port: DefaultPort},
		MaxConnections: DefaultMaxConnections,
		ReadTimeout:    DefaultReadTimeout,
		WriteTimeout:   DefaultWriteTimeout,
		MaxHeaderBytes: DefaultMaxHeaderBytes,
		ReadBufferSize: DefaultReadBufferSize,
	}
}

func NewDefaultRoutingConfig() *RoutingConfig {
	return &RoutingConfig{
		Get: map[string]string{
			"/":           "www/index.html",
			"/index.html": "www/index.html",
			"/api/status": "data/status.json",
		},
		Post:       []string{"/api/set"},
		ErrorPages: NewDefaultErrorPagesConfig(),
	}
}

func NewDefaultErrorPagesConfig() *ErrorPagesConfig {
	return &ErrorPagesConfig{
		BadRequest:              "www/bad_request.html",
		MethodNotAllowed:        "www/method_not_allowed.html",
		HTTPVersionNotSupported: "www/http_version_not_supported.html",
		NotFound:                "www/not_found.html",
		InternalServerError:     "www/internal_server_error.html",
	}
}

func NewDefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		HTTPServer: NewDefaultHTTPServerConfig(),
		Routing:    NewDefaultRoutingConfig(),
		Capture:    &CaptureConfig{Directory: DefaultCaptureDir},
		Logger:     &LoggerConfig{LogLevel: log.InfoLevel},
	}
}

// FillDefaults sets every omitted section or field to its default value.
func (c *ServerConfig) FillDefaults() {
	if c.HTTPServer == nil {
		c.HTTPServer = NewDefaultHTTPServerConfig()
	}

	c.HTTPServer.fillDefaults()

	if c.Routing == nil {
		c.Routing = NewDefaultRoutingConfig()
	}

	if c.Routing.ErrorPages == nil {
		c.Routing.ErrorPages = NewDefaultErrorPagesConfig()
	}

	if c.Capture == nil {
		c.Capture = &CaptureConfig{}
	}

	if c.Capture.Directory == "" {
		c.Capture.Directory = DefaultCaptureDir
	}

	if c.Logger == nil {
		c.Logger = &LoggerConfig{LogLevel: log.InfoLevel}
	}
}

func (c *HTTPServerConfig) fillDefaults() {
	if c.Endpoint == nil {
		c.Endpoint = &Endpoint{Host: DefaultHost, Port: DefaultPort}
	}

	if c.MaxConnections == 0 {
		c.MaxConnections = DefaultMaxConnections
	}

	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}

	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}

	if c.MaxHeaderBytes == 0 {
		c.MaxHeaderBytes = DefaultMaxHeaderBytes
	}

	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = DefaultReadBufferSize
	}
}
