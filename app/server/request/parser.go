// Package request parses the header block of an HTTP/1.1 request.
package request

import (
	"strconv"
	"strings"

	"github.com/ydb-platform/httpcore/app/server/contenttype"
	"github.com/ydb-platform/httpcore/app/server/routing"
	"github.com/ydb-platform/httpcore/library/go/httputil/headers"
)

var (
	contentTypePrefix   = strings.ToLower(headers.ContentTypeKey) + ":"
	contentLengthPrefix = strings.ToLower(headers.ContentLengthKey) + ":"
)

type Parser struct {
	router *routing.Router
}

// Parse builds the Header for one connection; it never fails.
func (p *Parser) Parse(text string) *Header {
	var hdr Header

	lines := splitLines(text)
	if len(lines) == 0 {
		return &hdr
	}

	requestLine := strings.Split(lines[0], " ")
	if len(requestLine) != 3 {
		return &hdr
	}

	hdr.Syntax = SyntaxKnown
	hdr.Method = parseMethod(requestLine[0])
	hdr.Target = requestLine[1]
	hdr.HTTPVersion = parseVersion(requestLine[2])
	hdr.Address = p.router.Resolve(hdr.Method, hdr.Target)

	for _, line := range lines[1:] {
		lowered := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lowered, contentTypePrefix):
			hdr.Payload.ContentType = contenttype.FromContentTypeString(headerValue(line))
		case strings.HasPrefix(lowered, contentLengthPrefix):
			hdr.Payload.ContentLength = parseContentLength(headerValue(line))
		}
	}

	return &hdr
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")

	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	// drop the empty line terminating the header block and anything after it
	for i, line := range lines {
		if line == "" {
			return lines[:i]
		}
	}

	return lines
}

func parseMethod(token string) routing.Method {
	switch token {
	case "GET":
		return routing.MethodGet
	case "POST":
		return routing.MethodPost
	default:
		return routing.MethodUnknown
	}
}

func parseVersion(token string) HTTPVersion {
	if token == http11 {
		return HTTPVersion11
	}

	return HTTPVersionUnknown
}

func headerValue(line string) string {
	_, value, _ := strings.Cut(line, ":")

	return strings.TrimSpace(value)
}

func parseContentLength(value string) uint64 {
	length, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0
	}

	return length
}

func NewParser(router *routing.Router) *Parser {
	return &Parser{router: router}
}
