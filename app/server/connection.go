package server

import (
	"bufio"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ydb-platform/httpcore/app/config"
	"github.com/ydb-platform/httpcore/app/server/request"
	"github.com/ydb-platform/httpcore/app/server/response"
	"github.com/ydb-platform/httpcore/app/server/transfer"
	"github.com/ydb-platform/httpcore/app/server/utils"
	"github.com/ydb-platform/httpcore/library/go/core/log"
	"golang.org/x/xerrors"
)

// connectionHandler serves exactly one request per connection.
type connectionHandler struct {
	cfg      *config.HTTPServerConfig
	parser   *request.Parser
	decider  *response.Decider
	capturer *transfer.Capturer
	sender   transfer.Sender
	metrics  *connectionMetrics
}

// serve never fails: errors are logged and the connection is closed.
func (h *connectionHandler) serve(logger log.Logger, conn net.Conn) {
	startTime := h.metrics.connectionStarted()
	defer h.metrics.connectionFinished(startTime)

	defer utils.LogCloserError(logger, conn, "close connection")

	if err := h.handle(logger, conn); err != nil {
		h.metrics.connectionFailed(errorKind(err))

		// client faults are warnings
		level := log.ErrorLevel
		if utils.IsTransferError(err) {
			level = log.WarnLevel
		}

		log.WriteAt(logger, level, "request handling failed", log.Error(err))
	}
}

func (h *connectionHandler) handle(logger log.Logger, conn net.Conn) error {
	reader := bufio.NewReaderSize(&deadlineReader{conn: conn, timeout: h.cfg.ReadTimeout}, h.cfg.ReadBufferSize)

	text, err := readHeaderBlock(reader, h.cfg.MaxHeaderBytes)
	if err != nil {
		return &stageError{kind: errorKindHeader, err: xerrors.Errorf("read header block: %w", err)}
	}

	logger.Debug("request header received", log.String("header", text))

	hdr := h.parser.Parse(text)

	logger.Info(
		"request handling started",
		log.String("method", hdr.Method.String()),
		log.String("target", hdr.Target),
	)

	if hdr.HasBody() {
		n, err := h.capturer.Capture(logger, reader, hdr.Payload)
		if err != nil {
			return &stageError{kind: errorKindTransfer, err: xerrors.Errorf("capture request body: %w", err)}
		}

		h.metrics.bodyCaptured(n)
	}

	resp, err := h.decider.Decide(hdr)
	if err != nil {
		return &stageError{kind: errorKindDecide, err: xerrors.Errorf("decide response: %w", err)}
	}

	if err := conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout)); err != nil {
		return &stageError{kind: errorKindIO, err: xerrors.Errorf("set write deadline: %w", err)}
	}

	if err := resp.WriteHeader(conn); err != nil {
		return &stageError{kind: errorKindIO, err: err}
	}

	if resp.HasBody() {
		if err := h.sender.Send(resp.Payload.Path, resp.Payload.ContentLength, conn); err != nil {
			return &stageError{kind: errorKindSend, err: xerrors.Errorf("send payload: %w", err)}
		}
	}

	h.metrics.responseSent(resp)

	logger.Info(
		"request handling finished",
		log.String("status", resp.Status.String()),
		log.String("payload", resp.Payload.Path),
		log.String("size", humanize.Bytes(resp.Payload.ContentLength)),
	)

	return nil
}

const maxBlankLineLength = 2

// readHeaderBlock reads lines until a blank one (bare CRLF or LF) and returns
// them as a single string, the blank line included.
func readHeaderBlock(reader *bufio.Reader, limit int) (string, error) {
	var (
		sb         strings.Builder
		lineLength int
	)

	for {
		chunk, err := reader.ReadSlice('\n')

		if sb.Len()+len(chunk) > limit {
			return "", xerrors.Errorf("more than %d bytes: %w", limit, utils.ErrHeaderTooLarge)
		}

		sb.Write(chunk)
		lineLength += len(chunk)

		if errors.Is(err, bufio.ErrBufferFull) {
			// the line goes on
			continue
		}

		if err != nil {
			return "", xerrors.Errorf("read line: %w", err)
		}

		if lineLength <= maxBlankLineLength {
			return sb.String(), nil
		}

		lineLength = 0
	}
}

// deadlineReader bounds every read from the connection.
type deadlineReader struct {
	conn    net.Conn
	timeout time.Duration
}

func (r *deadlineReader) Read(p []byte) (int, error) {
	if err := r.conn.SetReadDeadline(time.Now().Add(r.timeout)); err != nil {
		return 0, xerrors.Errorf("set read deadline: %w", err)
	}

	return r.conn.Read(p)
}

// stageError labels a connection failure with the stage it happened at.
type stageError struct {
	kind string
	err  error
}

func (e *stageError) Error() string { return e.err.Error() }

func (e *stageError) Unwrap() error { return e.err }

func errorKind(err error) string {
	var se *stageError
	if errors.As(err, &se) {
		return se.kind
	}

	return errorKindIO
}
