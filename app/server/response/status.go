// Package response decides the response for a parsed request and serializes its header.
package response

import (
	"fmt"
)

type Status int

const (
	StatusOk Status = iota
	StatusNoContent
	StatusBadRequest
	StatusNotFound
	StatusMethodNotAllowed
	StatusInternalServerError
	StatusHTTPVersionNotSupported
)

type statusLine struct {
	code   uint16
	reason string
}

var statusLines = map[Status]statusLine{
	StatusOk:                      {code: 200, reason: "OK"},
	StatusNoContent:               {code: 204, reason: "No Content"},
	StatusBadRequest:              {code: 400, reason: "Bad Request"},
	StatusNotFound:                {code: 404, reason: "Not Found"},
	StatusMethodNotAllowed:        {code: 405, reason: "Method Not Allowed"},
	StatusInternalServerError:     {code: 500, reason: "Internal Server Error"},
	StatusHTTPVersionNotSupported: {code: 505, reason: "HTTP Version Not Supported"},
}

func (s Status) Code() uint16 {
	return statusLines[s].code
}

func (s Status) Reason() string {
	return statusLines[s].reason
}

// String returns "<code> <reason>", the tail of the status line.
func (s Status) String() string {
	line, ok := statusLines[s]
	if !ok {
		return fmt.Sprintf("Status(%d)", int(s))
	}

	return fmt.Sprintf("%d %s", line.code, line.reason)
}
