package server

import (
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"github.com/ydb-platform/httpcore/app/config"
	"github.com/ydb-platform/httpcore/app/server/request"
	"github.com/ydb-platform/httpcore/app/server/response"
	"github.com/ydb-platform/httpcore/app/server/routing"
	"github.com/ydb-platform/httpcore/app/server/storage"
	"github.com/ydb-platform/httpcore/app/server/transfer"
	"github.com/ydb-platform/httpcore/app/server/utils"
)

var testFiles = map[string]string{
	"www/index.html":                      "<html>index</html>",
	"www/bad_request.html":                "<html>400</html>",
	"www/method_not_allowed.html":         "<html>405</html>",
	"www/http_version_not_supported.html": "<html>505</html>",
	"www/not_found.html":                  "<html>404</html>",
	"www/internal_server_error.html":      "<html>500</html>",
	"data/status.json":                    `{"status":"ok"}`,
}

// newTestConfig lays out a document root in a temporary directory.
func newTestConfig(t *testing.T) (*config.ServerConfig, string) {
	dir := t.TempDir()

	for name, content := range testFiles {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	at := func(name string) string { return filepath.Join(dir, name) }

	cfg := &config.ServerConfig{
		HTTPServer: &config.HTTPServerConfig{
			Endpoint: &config.Endpoint{Host: "127.0.0.1", Port: 0},
		},
		Routing: &config.RoutingConfig{
			Get: map[string]string{
				"/":           at("www/index.html"),
				"/index.html": at("www/index.html"),
				"/api/status": at("data/status.json"),
				"/gone":       at("www/gone.html"),
			},
			Post: []string{"/api/set"},
			ErrorPages: &config.ErrorPagesConfig{
				BadRequest:              at("www/bad_request.html"),
				MethodNotAllowed:        at("www/method_not_allowed.html"),
				HTTPVersionNotSupported: at("www/http_version_not_supported.html"),
				NotFound:                at("www/not_found.html"),
				InternalServerError:     at("www/internal_server_error.html"),
			},
		},
		Capture: &config.CaptureConfig{Directory: at("artifacts")},
	}

	cfg.FillDefaults()

	return cfg, dir
}

func newTestHandler(t *testing.T, cfg *config.ServerConfig, sender transfer.Sender) *connectionHandler {
	require.NoError(t, os.MkdirAll(cfg.Capture.Directory, 0o755))

	router := routing.NewRouter(cfg.Routing)
	st := storage.NewLocal()

	return &connectionHandler{
		cfg:      cfg.HTTPServer,
		parser:   request.NewParser(router),
		decider:  response.NewDecider(st, router.ErrorPages()),
		capturer: transfer.NewCapturer(st, cfg.Capture.Directory, cfg.HTTPServer.ReadBufferSize),
		sender:   sender,
		metrics:  newConnectionMetrics(prometheus.NewRegistry()),
	}
}

// exchange pushes raw into a piped connection served by h and returns everything
// written back before the handler closed the connection.
func exchange(t *testing.T, h *connectionHandler, raw string) string {
	client, server := net.Pipe()

	done := make(chan struct{})

	go func() {
		defer close(done)

		h.serve(utils.NewTestLogger(t), server)
	}()

	require.NoError(t, client.SetDeadline(time.Now().Add(10*time.Second)))

	_, err := client.Write([]byte(raw))
	require.NoError(t, err)

	data, err := io.ReadAll(client)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	<-done

	return string(data)
}

// sendRequest sends raw over a fresh TCP connection and reads until the server closes it.
func sendRequest(addr net.Addr, raw string) (string, error) {
	conn, err := net.Dial("tcp", addr.String())
	if err != nil {
		return "", err
	}

	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return "", err
	}

	if _, err := conn.Write([]byte(raw)); err != nil {
		return "", err
	}

	data, err := io.ReadAll(conn)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func roundTrip(t *testing.T, addr net.Addr, raw string) string {
	resp, err := sendRequest(addr, raw)
	require.NoError(t, err)

	return resp
}
