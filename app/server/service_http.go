package server

import (
	"errors"
	"net"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/ydb-platform/httpcore/app/config"
	"github.com/ydb-platform/httpcore/app/server/request"
	"github.com/ydb-platform/httpcore/app/server/response"
	"github.com/ydb-platform/httpcore/app/server/routing"
	"github.com/ydb-platform/httpcore/app/server/storage"
	"github.com/ydb-platform/httpcore/app/server/transfer"
	"github.com/ydb-platform/httpcore/app/server/utils"
	"github.com/ydb-platform/httpcore/library/go/core/log"
	"go.uber.org/atomic"
	"golang.org/x/xerrors"
)

// serviceHTTP accepts client connections and serves each one in its own goroutine.
type serviceHTTP struct {
	listener net.Listener
	handler  *connectionHandler
	logger   log.Logger
	// slots bounds the number of connections served at once; accepted connections
	// are served unwrapped so that the sender can reach the socket descriptor
	slots         chan struct{}
	connectionIDs atomic.Uint64
	stopping      atomic.Bool
	wg            sync.WaitGroup
}

func (s *serviceHTTP) start() error {
	s.logger.Debug("starting HTTP server", log.String("address", s.listener.Addr().String()))

	for {
		s.slots <- struct{}{}

		conn, err := s.listener.Accept()
		if err != nil {
			<-s.slots

			if s.stopping.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}

			return xerrors.Errorf("listener accept: %w", err)
		}

		logger := log.With(
			s.logger,
			log.UInt64("connection_id", s.connectionIDs.Inc()),
			log.String("remote_addr", conn.RemoteAddr().String()),
		)

		s.wg.Add(1)

		go func() {
			defer func() {
				<-s.slots
				s.wg.Done()
			}()

			s.handler.serve(logger, conn)
		}()
	}
}

// stop closes the listener and waits for the connections in flight.
func (s *serviceHTTP) stop() {
	s.stopping.Store(true)

	if err := s.listener.Close(); err != nil {
		s.logger.Error("close listener", log.Error(err))
	}

	s.wg.Wait()
}

func (s *serviceHTTP) address() net.Addr {
	return s.listener.Addr()
}

const captureDirPerm = 0o755

func newServiceHTTP(
	logger log.Logger,
	cfg *config.ServerConfig,
	registerer prometheus.Registerer,
	sender transfer.Sender,
) (*serviceHTTP, error) {
	if err := os.MkdirAll(cfg.Capture.Directory, captureDirPerm); err != nil {
		return nil, xerrors.Errorf("make capture directory: %w", err)
	}

	router := routing.NewRouter(cfg.Routing)
	st := storage.NewLocal()

	handler := &connectionHandler{
		cfg:      cfg.HTTPServer,
		parser:   request.NewParser(router),
		decider:  response.NewDecider(st, router.ErrorPages()),
		capturer: transfer.NewCapturer(st, cfg.Capture.Directory, cfg.HTTPServer.ReadBufferSize),
		sender:   sender,
		metrics:  newConnectionMetrics(registerer),
	}

	listener, err := net.Listen("tcp", utils.EndpointToString(cfg.HTTPServer.Endpoint))
	if err != nil {
		return nil, xerrors.Errorf("net listen: %w", err)
	}

	logger.Info(
		"HTTP server configured",
		log.String("address", listener.Addr().String()),
		log.Int("max_connections", cfg.HTTPServer.MaxConnections),
	)

	return &serviceHTTP{
		listener: listener,
		handler:  handler,
		logger:   logger,
		slots:    make(chan struct{}, cfg.HTTPServer.MaxConnections),
	}, nil
}
