// Package config describes the YAML configuration of the server.
package config

import (
	"time"

	"github.com/ydb-platform/httpcore/library/go/core/log"
)

type ServerConfig struct {
	HTTPServer    *HTTPServerConfig    `yaml:"http_server"`
	Routing       *RoutingConfig       `yaml:"routing"`
	Capture       *CaptureConfig       `yaml:"capture"`
	Logger        *LoggerConfig        `yaml:"logger"`
	MetricsServer *MetricsServerConfig `yaml:"metrics_server"`
	PprofServer   *PprofServerConfig   `yaml:"pprof_server"`
}

func (c *ServerConfig) GetHTTPServer() *HTTPServerConfig {
	if c == nil {
		return nil
	}

	return c.HTTPServer
}

func (c *ServerConfig) GetRouting() *RoutingConfig {
	if c == nil {
		return nil
	}

	return c.Routing
}

func (c *ServerConfig) GetLogger() *LoggerConfig {
	if c == nil {
		return nil
	}

	return c.Logger
}

type Endpoint struct {
	Host string `yaml:"host"`
	Port uint32 `yaml:"port"`
}

func (e *Endpoint) GetHost() string {
	if e == nil {
		return ""
	}

	return e.Host
}

func (e *Endpoint) GetPort() uint32 {
	if e == nil {
		return 0
	}

	return e.Port
}

type HTTPServerConfig struct {
	Endpoint *Endpoint `yaml:"endpoint"`
	// MaxConnections limits the number of connections served simultaneously
	MaxConnections int `yaml:"max_connections"`
	// ReadTimeout bounds every blocking read from a client socket
	ReadTimeout time.Duration `yaml:"read_timeout"`
	// WriteTimeout bounds every blocking write into a client socket, including sendfile
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// MaxHeaderBytes limits the size of the request header block
	MaxHeaderBytes int `yaml:"max_header_bytes"`
	// ReadBufferSize is the size of the buffer used to capture request bodies
	ReadBufferSize int `yaml:"read_buffer_size"`
}

func (c *HTTPServerConfig) GetEndpoint() *Endpoint {
	if c == nil {
		return nil
	}

	return c.Endpoint
}

type RoutingConfig struct {
	// Get maps GET targets onto resource paths
	Get map[string]string `yaml:"get"`
	// Post lists the targets accepting request bodies
	Post       []string          `yaml:"post"`
	ErrorPages *ErrorPagesConfig `yaml:"error_pages"`
}

type ErrorPagesConfig struct {
	BadRequest              string `yaml:"bad_request"`
	MethodNotAllowed        string `yaml:"method_not_allowed"`
	HTTPVersionNotSupported string `yaml:"http_version_not_supported"`
	NotFound                string `yaml:"not_found"`
	InternalServerError     string `yaml:"internal_server_error"`
}

type CaptureConfig struct {
	// Directory keeps one file per captured content type
	Directory string `yaml:"directory"`
}

type LoggerConfig struct {
	LogLevel log.Level `yaml:"log_level"`
}

type MetricsServerConfig struct {
	Endpoint *Endpoint `yaml:"endpoint"`
}

type PprofServerConfig struct {
	Endpoint *Endpoint `yaml:"endpoint"`
}
