// Package routing resolves request targets into resource paths.
package routing

import (
	"github.com/ydb-platform/httpcore/app/config"
)

type Method int

const (
	MethodUnknown Method = iota
	MethodGet
	MethodPost
)

func (m Method) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	default:
		return "UNKNOWN"
	}
}

// ErrorPages keeps the fixed resources returned for every non-successful decision.
type ErrorPages struct {
	BadRequest              string
	MethodNotAllowed        string
	HTTPVersionNotSupported string
	NotFound                string
	InternalServerError     string
}

// Router is an immutable per-method lookup table; it is safe for concurrent use.
type Router struct {
	get        map[string]string
	post       map[string]string
	errorPages ErrorPages
}

// Resolve returns the resource path for a GET target or the identifier of a POST target.
// Unresolved targets yield an empty string. Unknown methods are looked up in the GET table,
// so the address of a rejected request is still reported.
func (r *Router) Resolve(method Method, target string) string {
	switch method {
	case MethodPost:
		return r.post[target]
	default:
		return r.get[target]
	}
}

func (r *Router) ErrorPages() ErrorPages {
	return r.errorPages
}

func NewRouter(cfg *config.RoutingConfig) *Router {
	r := &Router{
		get:  make(map[string]string, len(cfg.Get)),
		post: make(map[string]string, len(cfg.Post)),
	}

	for target, path := range cfg.Get {
		r.get[target] = path
	}

	// write targets are opaque identifiers, not filesystem paths
	for _, target := range cfg.Post {
		r.post[target] = target
	}

	if pages := cfg.ErrorPages; pages != nil {
		r.errorPages = ErrorPages{
			BadRequest:              pages.BadRequest,
			MethodNotAllowed:        pages.MethodNotAllowed,
			HTTPVersionNotSupported: pages.HTTPVersionNotSupported,
			NotFound:                pages.NotFound,
			InternalServerError:     pages.InternalServerError,
		}
	}

	return r
}
