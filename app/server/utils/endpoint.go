package utils

import (
	"fmt"

	"github.com/ydb-platform/httpcore/app/config"
)

func EndpointToString(ep *config.Endpoint) string {
	return fmt.Sprintf("%s:%d", ep.GetHost(), ep.GetPort())
}
