package request

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/ydb-platform/httpcore/app/config"
	"github.com/ydb-platform/httpcore/app/server/contenttype"
	"github.com/ydb-platform/httpcore/app/server/routing"
)

func newTestParser() *Parser {
	return NewParser(routing.NewRouter(config.NewDefaultRoutingConfig()))
}

func TestParse(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected Header
	}

	tcs := []testCase{
		{
			name:  "index",
			input: "GET / HTTP/1.1\r\n\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodGet,
				Target:      "/",
				Address:     "www/index.html",
			},
		},
		{
			name:  "index alias",
			input: "GET /index.html HTTP/1.1\r\n\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodGet,
				Target:      "/index.html",
				Address:     "www/index.html",
			},
		},
		{
			name:  "api read",
			input: "GET /api/status HTTP/1.1\r\nHost: localhost\r\n\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodGet,
				Target:      "/api/status",
				Address:     "data/status.json",
			},
		},
		{
			name:  "api write with payload",
			input: "POST /api/set HTTP/1.1\r\nContent-Type: application/json\r\nContent-Length: 5\r\n\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodPost,
				Target:      "/api/set",
				Address:     "/api/set",
				Payload:     Payload{ContentType: contenttype.JSON, ContentLength: 5},
			},
		},
		{
			name:  "unsupported method keeps parsing",
			input: "PUT /index.html HTTP/1.1\r\nContent-Length: 3\r\n\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodUnknown,
				Target:      "/index.html",
				Address:     "www/index.html",
				Payload:     Payload{ContentLength: 3},
			},
		},
		{
			name:  "unsupported version keeps parsing",
			input: "GET /index.html FOO\r\n\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersionUnknown,
				Method:      routing.MethodGet,
				Target:      "/index.html",
				Address:     "www/index.html",
			},
		},
		{
			name:  "unknown address",
			input: "GET /not_found HTTP/1.1\r\n\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodGet,
				Target:      "/not_found",
			},
		},
		{
			name:  "post to unknown address",
			input: "POST /api/not_found HTTP/1.1\r\n\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodPost,
				Target:      "/api/not_found",
			},
		},
		{
			name:  "header names are case insensitive, last one wins",
			input: "POST /api/set HTTP/1.1\r\ncontent-type: text/plain\r\nCONTENT-LENGTH: 1\r\nContent-Type:image/png\r\ncontent-length:  42 \r\n\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodPost,
				Target:      "/api/set",
				Address:     "/api/set",
				Payload:     Payload{ContentType: contenttype.PNG, ContentLength: 42},
			},
		},
		{
			name:  "malformed length and unknown type",
			input: "POST /api/set HTTP/1.1\r\nContent-Type: application/xml\r\nContent-Length: -5\r\n\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodPost,
				Target:      "/api/set",
				Address:     "/api/set",
			},
		},
		{
			name:  "malformed length resets an earlier value",
			input: "POST /api/set HTTP/1.1\r\nContent-Length: 10\r\nContent-Length: ten\r\n\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodPost,
				Target:      "/api/set",
				Address:     "/api/set",
			},
		},
		{
			name:  "lines after the header block are ignored",
			input: "POST /api/set HTTP/1.1\r\nContent-Length: 2\r\n\r\nContent-Length: 9\r\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodPost,
				Target:      "/api/set",
				Address:     "/api/set",
				Payload:     Payload{ContentLength: 2},
			},
		},
		{
			name:  "bare line feeds",
			input: "GET / HTTP/1.1\nContent-Type: text/html\n\n",
			expected: Header{
				Syntax:      SyntaxKnown,
				HTTPVersion: HTTPVersion11,
				Method:      routing.MethodGet,
				Target:      "/",
				Address:     "www/index.html",
				Payload:     Payload{ContentType: contenttype.HTML},
			},
		},
	}

	parser := newTestParser()

	for _, tc := range tcs {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			actual := parser.Parse(tc.input)
			if diff := cmp.Diff(tc.expected, *actual); diff != "" {
				t.Fatalf("header mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseBadSyntax(t *testing.T) {
	inputs := []string{
		"GET /missing_parameter\r\n\r\n",
		"GET /too many params\n",
		"GET  / HTTP/1.1\r\n\r\n",
		"GET\r\n\r\n",
		"\r\n",
		"",
		"POST /api/set HTTP/1.1 extra\r\nContent-Type: application/json\r\nContent-Length: 5\r\n\r\n",
	}

	parser := newTestParser()

	for _, input := range inputs {
		input := input

		t.Run(input, func(t *testing.T) {
			hdr := parser.Parse(input)
			require.Equal(t, Header{}, *hdr)
			require.Equal(t, SyntaxUnknown, hdr.Syntax)
			require.Equal(t, routing.MethodUnknown, hdr.Method)
			require.Equal(t, HTTPVersionUnknown, hdr.HTTPVersion)
			require.Empty(t, hdr.Address)
			require.False(t, hdr.HasBody())
		})
	}
}

func TestHasBody(t *testing.T) {
	parser := newTestParser()

	require.True(t, parser.Parse("POST /api/set HTTP/1.1\r\nContent-Length: 1\r\n\r\n").HasBody())
	require.False(t, parser.Parse("POST /api/set HTTP/1.1\r\n\r\n").HasBody())
	require.False(t, parser.Parse("GET / HTTP/1.1\r\nContent-Length: 1\r\n\r\n").HasBody())
}

func TestParseWithAlternateRoutes(t *testing.T) {
	router := routing.NewRouter(&config.RoutingConfig{
		Get: map[string]string{"/custom": "www/custom.html"},
	})

	hdr := NewParser(router).Parse("GET /custom HTTP/1.1\r\n\r\n")
	require.Equal(t, "www/custom.html", hdr.Address)

	hdr = NewParser(router).Parse("GET / HTTP/1.1\r\n\r\n")
	require.Empty(t, hdr.Address)
}
