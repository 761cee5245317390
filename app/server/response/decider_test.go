package response

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ydb-platform/httpcore/app/config"
	"github.com/ydb-platform/httpcore/app/server/contenttype"
	"github.com/ydb-platform/httpcore/app/server/request"
	"github.com/ydb-platform/httpcore/app/server/routing"
	"github.com/ydb-platform/httpcore/app/server/storage"
	"github.com/ydb-platform/httpcore/app/server/utils"
	"golang.org/x/xerrors"
)

type testEnv struct {
	dir    string
	router *routing.Router
	parser *request.Parser
}

func (e *testEnv) path(name string) string {
	return filepath.Join(e.dir, name)
}

func newTestEnv(t *testing.T) *testEnv {
	dir := t.TempDir()

	files := map[string]string{
		"index.html":                      "<html>index</html>",
		"status.json":                     `{"status":"ok"}`,
		"bad_request.html":                "<html>400</html>",
		"method_not_allowed.html":         "<html>405</html>",
		"http_version_not_supported.html": "<html>505</html>",
		"not_found.html":                  "<html>404 not found</html>",
		"internal_server_error.html":      "<html>500 internal</html>",
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	env := &testEnv{dir: dir}

	env.router = routing.NewRouter(&config.RoutingConfig{
		Get: map[string]string{
			"/":           env.path("index.html"),
			"/index.html": env.path("index.html"),
			"/api/status": env.path("status.json"),
			"/gone":       env.path("gone.html"),
		},
		Post: []string{"/api/set"},
		ErrorPages: &config.ErrorPagesConfig{
			BadRequest:              env.path("bad_request.html"),
			MethodNotAllowed:        env.path("method_not_allowed.html"),
			HTTPVersionNotSupported: env.path("http_version_not_supported.html"),
			NotFound:                env.path("not_found.html"),
			InternalServerError:     env.path("internal_server_error.html"),
		},
	})
	env.parser = request.NewParser(env.router)

	return env
}

func fileSize(t *testing.T, path string) uint64 {
	info, err := os.Stat(path)
	require.NoError(t, err)

	return uint64(info.Size())
}

func TestDecide(t *testing.T) {
	env := newTestEnv(t)
	decider := NewDecider(storage.NewLocal(), env.router.ErrorPages())

	type testCase struct {
		name        string
		input       string
		status      Status
		path        string
		contentType contenttype.ContentType
	}

	tcs := []testCase{
		{
			name:        "index",
			input:       "GET / HTTP/1.1\r\n\r\n",
			status:      StatusOk,
			path:        env.path("index.html"),
			contentType: contenttype.HTML,
		},
		{
			name:        "index alias",
			input:       "GET /index.html HTTP/1.1\r\n\r\n",
			status:      StatusOk,
			path:        env.path("index.html"),
			contentType: contenttype.HTML,
		},
		{
			name:        "api status",
			input:       "GET /api/status HTTP/1.1\r\n\r\n",
			status:      StatusOk,
			path:        env.path("status.json"),
			contentType: contenttype.JSON,
		},
		{
			name:        "missing version",
			input:       "GET /missing_parameter\r\n\r\n",
			status:      StatusBadRequest,
			path:        env.path("bad_request.html"),
			contentType: contenttype.HTML,
		},
		{
			name:        "unsupported method",
			input:       "PUT /index.html HTTP/1.1\r\n\r\n",
			status:      StatusMethodNotAllowed,
			path:        env.path("method_not_allowed.html"),
			contentType: contenttype.HTML,
		},
		{
			name:        "unsupported method wins over unsupported version",
			input:       "PUT /index.html FOO\r\n\r\n",
			status:      StatusMethodNotAllowed,
			path:        env.path("method_not_allowed.html"),
			contentType: contenttype.HTML,
		},
		{
			name:        "unsupported version",
			input:       "GET /index.html FOO\r\n\r\n",
			status:      StatusHTTPVersionNotSupported,
			path:        env.path("http_version_not_supported.html"),
			contentType: contenttype.HTML,
		},
		{
			name:        "unsupported version wins over post",
			input:       "POST /api/set HTTP/1.0\r\n\r\n",
			status:      StatusHTTPVersionNotSupported,
			path:        env.path("http_version_not_supported.html"),
			contentType: contenttype.HTML,
		},
		{
			name:        "not found",
			input:       "GET /not_found HTTP/1.1\r\n\r\n",
			status:      StatusNotFound,
			path:        env.path("not_found.html"),
			contentType: contenttype.HTML,
		},
		{
			name:        "route without resource",
			input:       "GET /gone HTTP/1.1\r\n\r\n",
			status:      StatusInternalServerError,
			path:        env.path("internal_server_error.html"),
			contentType: contenttype.HTML,
		},
	}

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			resp, err := decider.Decide(env.parser.Parse(tc.input))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.Status)
			require.Equal(t, tc.path, resp.Payload.Path)
			require.Equal(t, tc.contentType, resp.Payload.ContentType)
			require.Equal(t, fileSize(t, tc.path), resp.Payload.ContentLength)
			require.True(t, resp.HasBody())
		})
	}
}

func TestDecideIndexAliases(t *testing.T) {
	env := newTestEnv(t)
	decider := NewDecider(storage.NewLocal(), env.router.ErrorPages())

	root, err := decider.Decide(env.parser.Parse("GET / HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)

	alias, err := decider.Decide(env.parser.Parse("GET /index.html HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)

	require.Equal(t, root, alias)
}

func TestDecidePost(t *testing.T) {
	env := newTestEnv(t)

	inputs := []string{
		"POST /api/set HTTP/1.1\r\nContent-Type: application/json\r\nContent-Length: 5\r\n\r\n",
		"POST /api/set HTTP/1.1\r\n\r\n",
		// address resolution is not consulted for a well-formed POST
		"POST /api/not_found HTTP/1.1\r\n\r\n",
		"POST / HTTP/1.1\r\n\r\n",
	}

	for _, input := range inputs {
		input := input

		t.Run(input, func(t *testing.T) {
			// neither Exists nor Size may be called: no expectations are set
			st := &storage.StorageMock{}
			decider := NewDecider(st, env.router.ErrorPages())

			resp, err := decider.Decide(env.parser.Parse(input))
			require.NoError(t, err)
			require.Equal(t, &Response{
				Status:  StatusNoContent,
				Payload: Payload{ContentType: contenttype.Unknown},
			}, resp)
			require.False(t, resp.HasBody())

			st.AssertExpectations(t)
		})
	}
}

func TestDecideMeasuresErrorPages(t *testing.T) {
	pages := routing.ErrorPages{NotFound: "www/not_found.html"}

	st := &storage.StorageMock{}
	st.On("Size", "www/not_found.html").Return(uint64(123), nil).Once()

	decider := NewDecider(st, pages)

	resp, err := decider.Decide(&request.Header{
		Syntax:      request.SyntaxKnown,
		HTTPVersion: request.HTTPVersion11,
		Method:      routing.MethodGet,
	})
	require.NoError(t, err)
	require.Equal(t, StatusNotFound, resp.Status)
	require.Equal(t, uint64(123), resp.Payload.ContentLength)

	st.AssertExpectations(t)
	st.AssertNotCalled(t, "Exists", mock.Anything)
}

func TestDecideMissingErrorPage(t *testing.T) {
	st := &storage.StorageMock{}
	st.On("Size", "www/bad_request.html").Return(
		uint64(0),
		xerrors.Errorf("stat: %w", utils.ErrResourceNotFound),
	).Once()

	decider := NewDecider(st, routing.ErrorPages{BadRequest: "www/bad_request.html"})

	resp, err := decider.Decide(&request.Header{})
	require.Nil(t, resp)
	require.True(t, errors.Is(err, utils.ErrResourceNotFound))

	st.AssertExpectations(t)
}
