package transfer

import (
	"io"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

const sendfileSupported = true

// a single sendfile call never moves more than this
const maxSendfileChunk = 1 << 30

func sendfile(rawConn syscall.RawConn, file *os.File, length int64) error {
	var (
		offset    int64
		remaining = length
		sendErr   error
	)

	src := int(file.Fd())

	err := rawConn.Write(func(fd uintptr) bool {
		for remaining > 0 {
			chunk := remaining
			if chunk > maxSendfileChunk {
				chunk = maxSendfileChunk
			}

			n, err := unix.Sendfile(int(fd), src, &offset, int(chunk))
			if n > 0 {
				remaining -= int64(n)
			}

			switch {
			case err == unix.EAGAIN:
				// wait until the socket is writable again
				return false
			case err == unix.EINTR:
				continue
			case err != nil:
				sendErr = err

				return true
			case n == 0:
				// the file is shorter than announced
				sendErr = io.ErrUnexpectedEOF

				return true
			}
		}

		return true
	})

	if err != nil {
		return err
	}

	return sendErr
}
