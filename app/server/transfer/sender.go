package transfer

import (
	"io"
	"net"
	"os"
	"syscall"

	"github.com/ydb-platform/httpcore/app/server/utils"
	"go.uber.org/multierr"
	"golang.org/x/xerrors"
)

// Sender delivers the first length bytes of the file at path into socket.
type Sender interface {
	Send(path string, length uint64, socket net.Conn) error
}

var _ Sender = (*SendfileSender)(nil)

// SendfileSender moves file contents into the socket inside the kernel when
// the socket exposes its descriptor, and copies through user space otherwise.
type SendfileSender struct{}

func (s *SendfileSender) Send(path string, length uint64, socket net.Conn) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return xerrors.Errorf("open file '%s': %w", path, err)
	}

	defer multierr.AppendInvoke(&err, multierr.Close(file))

	conn, ok := socket.(syscall.Conn)
	if !ok || !sendfileSupported {
		return copyFile(file, length, socket)
	}

	rawConn, err := conn.SyscallConn()
	if err != nil {
		return copyFile(file, length, socket)
	}

	if err := sendfile(rawConn, file, int64(length)); err != nil {
		return xerrors.Errorf("sendfile '%s' (%d bytes): %v: %w", path, length, err, utils.ErrSendFailed)
	}

	return nil
}

func copyFile(file *os.File, length uint64, socket io.Writer) error {
	if _, err := io.CopyN(socket, file, int64(length)); err != nil {
		return xerrors.Errorf("copy '%s' (%d bytes): %v: %w", file.Name(), length, err, utils.ErrSendFailed)
	}

	return nil
}

func NewSendfileSender() *SendfileSender {
	return &SendfileSender{}
}
