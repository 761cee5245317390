package client

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ydb-platform/httpcore/app/server/utils"
	"github.com/ydb-platform/httpcore/library/go/core/log"
	"github.com/ydb-platform/httpcore/library/go/httputil/headers"
	"golang.org/x/xerrors"
)

// requestParams describe a single raw request sent to the server.
type requestParams struct {
	address     string
	method      string
	target      string
	version     string
	contentType string
	body        []byte
	timeout     time.Duration
}

func (p *requestParams) build() []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "%s %s %s\r\n", p.method, p.target, p.version)

	if p.contentType != "" {
		fmt.Fprintf(&buf, "%s: %s\r\n", headers.ContentTypeKey, p.contentType)
	}

	if len(p.body) > 0 {
		fmt.Fprintf(&buf, "%s: %d\r\n", headers.ContentLengthKey, len(p.body))
	}

	buf.WriteString("\r\n")
	buf.Write(p.body)

	return buf.Bytes()
}

// callServer sends the request and copies everything the server answers into out.
func callServer(logger log.Logger, params *requestParams, out io.Writer) error {
	conn, err := net.DialTimeout("tcp", params.address, params.timeout)
	if err != nil {
		return xerrors.Errorf("dial '%s': %w", params.address, err)
	}

	defer utils.LogCloserError(logger, conn, "connection close")

	if err := conn.SetDeadline(time.Now().Add(params.timeout)); err != nil {
		return xerrors.Errorf("set deadline: %w", err)
	}

	req := params.build()

	logger.Debug("sending request", log.String("request", string(req)))

	if _, err := conn.Write(req); err != nil {
		return xerrors.Errorf("write request: %w", err)
	}

	// the server closes the connection after the response
	n, err := io.Copy(out, conn)
	if err != nil {
		return xerrors.Errorf("read response: %w", err)
	}

	logger.Debug("response received", log.String("size", humanize.Bytes(uint64(n))))

	return nil
}

func runClient(cmd *cobra.Command, _ []string) error {
	logger, err := utils.NewDefaultLogger()
	if err != nil {
		return xerrors.Errorf("new logger: %w", err)
	}

	params, err := paramsFromFlags(cmd.Flags())
	if err != nil {
		return xerrors.Errorf("read flags: %w", err)
	}

	if err := callServer(logger, params, os.Stdout); err != nil {
		return xerrors.Errorf("call server: %w", err)
	}

	return nil
}

const (
	addressFlag     = "address"
	methodFlag      = "method"
	targetFlag      = "target"
	versionFlag     = "version"
	contentTypeFlag = "content-type"
	bodyFlag        = "body"
	timeoutFlag     = "timeout"
)

func paramsFromFlags(flags *pflag.FlagSet) (*requestParams, error) {
	params := &requestParams{}

	var err error

	for flag, dst := range map[string]*string{
		addressFlag:     &params.address,
		methodFlag:      &params.method,
		targetFlag:      &params.target,
		versionFlag:     &params.version,
		contentTypeFlag: &params.contentType,
	} {
		if *dst, err = flags.GetString(flag); err != nil {
			return nil, xerrors.Errorf("get flag `%s`: %w", flag, err)
		}
	}

	if params.timeout, err = flags.GetDuration(timeoutFlag); err != nil {
		return nil, xerrors.Errorf("get flag `%s`: %w", timeoutFlag, err)
	}

	bodyPath, err := flags.GetString(bodyFlag)
	if err != nil {
		return nil, xerrors.Errorf("get flag `%s`: %w", bodyFlag, err)
	}

	if bodyPath != "" {
		if params.body, err = os.ReadFile(bodyPath); err != nil {
			return nil, xerrors.Errorf("read body file: %w", err)
		}
	}

	return params, nil
}

var Cmd = &cobra.Command{
	Use:   "client",
	Short: "send a single request to the server and print the raw response",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runClient(cmd, args); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	Cmd.Flags().StringP(addressFlag, "a", "127.0.0.1:8081", "server address")
	Cmd.Flags().StringP(methodFlag, "m", "GET", "request method")
	Cmd.Flags().StringP(targetFlag, "t", "/", "request target")
	Cmd.Flags().String(versionFlag, "HTTP/1.1", "protocol version")
	Cmd.Flags().String(contentTypeFlag, "", "value of the Content-Type header")
	Cmd.Flags().StringP(bodyFlag, "b", "", "path to the file sent as request body")
	Cmd.Flags().Duration(timeoutFlag, 10*time.Second, "connection timeout")
}
