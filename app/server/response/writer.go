package response

import (
	"fmt"
	"io"
	"strings"

	"github.com/ydb-platform/httpcore/library/go/httputil/headers"
	"golang.org/x/xerrors"
)

const protocolVersion = "HTTP/1.1"

// Header serializes the status line and the headers of the response,
// terminated by an empty line.
func (r *Response) Header() []byte {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s %d %s\r\n", protocolVersion, r.Status.Code(), r.Status.Reason())
	fmt.Fprintf(&sb, "%s: %d\r\n", headers.ContentLengthKey, r.Payload.ContentLength)

	if r.Payload.ContentLength > 0 {
		if mime := r.Payload.ContentType.MIME(); mime != "" {
			fmt.Fprintf(&sb, "%s: %s\r\n", headers.ContentTypeKey, mime)
		}
	}

	sb.WriteString("\r\n")

	return []byte(sb.String())
}

// HasBody reports whether payload bytes follow the header.
func (r *Response) HasBody() bool {
	return r.Payload.ContentLength > 0
}

func (r *Response) WriteHeader(w io.Writer) error {
	if _, err := w.Write(r.Header()); err != nil {
		return xerrors.Errorf("write response header: %w", err)
	}

	return nil
}
