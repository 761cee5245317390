//go:build !linux

package transfer

import (
	"errors"
	"os"
	"syscall"
)

const sendfileSupported = false

func sendfile(syscall.RawConn, *os.File, int64) error {
	return errors.ErrUnsupported
}
