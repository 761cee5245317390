package response

import (
	"github.com/ydb-platform/httpcore/app/server/contenttype"
	"github.com/ydb-platform/httpcore/app/server/request"
	"github.com/ydb-platform/httpcore/app/server/routing"
	"github.com/ydb-platform/httpcore/app/server/storage"
	"golang.org/x/xerrors"
)

// Payload is the resource sent back to the client.
type Payload struct {
	Path          string
	ContentType   contenttype.ContentType
	ContentLength uint64
}

type Response struct {
	Status  Status
	Payload Payload
}

type Decider struct {
	storage    storage.Storage
	errorPages routing.ErrorPages
}

// Decide picks the response status and payload. The only error it returns
// comes from measuring the chosen resource, which means the server itself
// is misconfigured (e.g. an error page has been removed).
func (d *Decider) Decide(hdr *request.Header) (*Response, error) {
	status, path := d.decideStatus(hdr)

	resp := &Response{
		Status: status,
		Payload: Payload{
			Path:        path,
			ContentType: contenttype.FromFileName(path),
		},
	}

	if status == StatusNoContent {
		return resp, nil
	}

	size, err := d.storage.Size(path)
	if err != nil {
		return nil, xerrors.Errorf("measure payload for status '%v': %w", status, err)
	}

	resp.Payload.ContentLength = size

	return resp, nil
}

// decideStatus walks an ordered list of checks; the first match wins.
func (d *Decider) decideStatus(hdr *request.Header) (Status, string) {
	switch {
	case hdr.Syntax == request.SyntaxUnknown:
		return StatusBadRequest, d.errorPages.BadRequest
	case hdr.Method == routing.MethodUnknown:
		return StatusMethodNotAllowed, d.errorPages.MethodNotAllowed
	case hdr.HTTPVersion == request.HTTPVersionUnknown:
		return StatusHTTPVersionNotSupported, d.errorPages.HTTPVersionNotSupported
	case hdr.Method == routing.MethodPost:
		// the address of a well-formed POST is not consulted
		return StatusNoContent, ""
	case hdr.Address == "":
		return StatusNotFound, d.errorPages.NotFound
	case d.storage.Exists(hdr.Address):
		return StatusOk, hdr.Address
	default:
		// the route is known but its resource is gone
		return StatusInternalServerError, d.errorPages.InternalServerError
	}
}

func NewDecider(st storage.Storage, errorPages routing.ErrorPages) *Decider {
	return &Decider{
		storage:    st,
		errorPages: errorPages,
	}
}
