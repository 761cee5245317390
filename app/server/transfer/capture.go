// Package transfer moves request and response bodies between client sockets and files.
package transfer

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/ydb-platform/httpcore/app/server/contenttype"
	"github.com/ydb-platform/httpcore/app/server/request"
	"github.com/ydb-platform/httpcore/app/server/storage"
	"github.com/ydb-platform/httpcore/app/server/utils"
	"github.com/ydb-platform/httpcore/library/go/core/log"
	"go.uber.org/multierr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
	"golang.org/x/xerrors"
)

const sinkSuffix = "-data"

// SinkPath returns the file that collects request bodies of the given content type.
func SinkPath(directory string, ct contenttype.ContentType) string {
	return filepath.Join(directory, ct.String()+sinkSuffix)
}

type Capturer struct {
	storage    storage.Storage
	directory  string
	bufferSize int
}

// Capture reads exactly payload.ContentLength bytes from reader into the sink
// selected by payload.ContentType. A chunk that does not fit into the declared
// length aborts the transfer before it reaches the sink.
func (c *Capturer) Capture(logger log.Logger, reader io.Reader, payload request.Payload) (uint64, error) {
	path := SinkPath(c.directory, payload.ContentType)

	file, err := c.storage.OpenForWrite(path)
	if err != nil {
		return 0, xerrors.Errorf("open sink: %w", err)
	}

	sink := &recordingWriter{w: file}

	var out io.Writer = sink

	var validator *transform.Writer

	if !payload.ContentType.IsBinary() {
		validator = transform.NewWriter(sink, encoding.UTF8Validator)
		out = validator
	}

	written, err := c.copyBody(reader, out, sink, payload.ContentLength)

	if validator != nil {
		// flushes the tail and rejects an incomplete trailing sequence
		if closeErr := validator.Close(); closeErr != nil && err == nil {
			err = classifyWriteError(closeErr, sink)
		}
	}

	err = multierr.Append(err, file.Close())
	if err != nil {
		return written, xerrors.Errorf("capture body into '%s': %w", path, err)
	}

	logger.Debug(
		"request body captured",
		log.String("sink", path),
		log.String("size", humanize.Bytes(written)),
	)

	return written, nil
}

func (c *Capturer) copyBody(reader io.Reader, out io.Writer, sink *recordingWriter, length uint64) (uint64, error) {
	buf := make([]byte, c.bufferSize)
	written := utils.NewCounter[uint64]()

	for written.Value() < length {
		remaining := length - written.Value()

		n, err := reader.Read(buf)
		if n > 0 {
			if uint64(n) > remaining {
				return written.Value(), xerrors.Errorf(
					"read %d bytes while %d bytes left: %w", n, remaining, utils.ErrBodyLengthExceeded)
			}

			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return written.Value(), classifyWriteError(writeErr, sink)
			}

			written.Add(uint64(n))
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				if written.Value() == length {
					break
				}

				return written.Value(), xerrors.Errorf(
					"got %d of %d bytes: %w", written.Value(), length, utils.ErrBodyTruncated)
			}

			return written.Value(), xerrors.Errorf("read body: %w", err)
		}
	}

	return written.Value(), nil
}

// classifyWriteError tells a rejected text chunk apart from a failing sink.
func classifyWriteError(err error, sink *recordingWriter) error {
	if sink.err != nil {
		return xerrors.Errorf("write sink: %w", sink.err)
	}

	return xerrors.Errorf("%v: %w", err, utils.ErrInvalidText)
}

// recordingWriter remembers the last error of the underlying writer.
type recordingWriter struct {
	w   io.Writer
	err error
}

func (r *recordingWriter) Write(p []byte) (int, error) {
	n, err := r.w.Write(p)
	if err != nil {
		r.err = err
	}

	return n, err
}

func NewCapturer(st storage.Storage, directory string, bufferSize int) *Capturer {
	return &Capturer{
		storage:    st,
		directory:  directory,
		bufferSize: bufferSize,
	}
}
