package request

import (
	"github.com/ydb-platform/httpcore/app/server/contenttype"
	"github.com/ydb-platform/httpcore/app/server/routing"
)

type Syntax int

const (
	SyntaxUnknown Syntax = iota
	SyntaxKnown
)

type HTTPVersion int

const (
	HTTPVersionUnknown HTTPVersion = iota
	HTTPVersion11
)

const http11 = "HTTP/1.1"

func (v HTTPVersion) String() string {
	if v == HTTPVersion11 {
		return http11
	}

	return ""
}

// Payload describes the request body declared by the client.
type Payload struct {
	ContentType   contenttype.ContentType
	ContentLength uint64
}

// Header is the parsed request header block. Irregularities are encoded
// as Unknown values rather than errors. When Syntax is SyntaxUnknown every
// other field keeps its zero value.
type Header struct {
	Syntax      Syntax
	HTTPVersion HTTPVersion
	Method      routing.Method
	// Target is the raw request target, kept for logging only
	Target  string
	Address string
	Payload Payload
}

// HasBody reports whether the request carries a body that must be captured.
func (h *Header) HasBody() bool {
	return h.Method == routing.MethodPost && h.Payload.ContentLength > 0
}
