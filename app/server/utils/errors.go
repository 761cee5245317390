package utils

import (
	"errors"

	"golang.org/x/xerrors"
)

var (
	ErrResourceNotFound   = xerrors.New("resource not found")
	ErrHeaderTooLarge     = xerrors.New("request header block is too large")
	ErrBodyLengthExceeded = xerrors.New("request body is larger than declared content length")
	ErrBodyTruncated      = xerrors.New("request body is shorter than declared content length")
	ErrInvalidText        = xerrors.New("request body is not valid UTF-8 text")
	ErrSendFailed         = xerrors.New("send file failed")
	ErrInvalidConfig      = xerrors.New("invalid config")
)

// IsTransferError reports whether err is caused by a client that broke
// the body accounting or the encoding rules. Such errors terminate only
// the offending connection.
func IsTransferError(err error) bool {
	switch {
	case errors.Is(err, ErrBodyLengthExceeded):
		return true
	case errors.Is(err, ErrBodyTruncated):
		return true
	case errors.Is(err, ErrInvalidText):
		return true
	default:
		return false
	}
}
