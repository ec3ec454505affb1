package utils

import (
	"net"
	"net/http"
	"strings"
)

// ExtractIP returns the client IP for the given request. When the request
// came through a proxy the first X-Forwarded-For entry wins, otherwise the
// connection's remote address is used with its port stripped.
func ExtractIP(r *http.Request) string {
	if forwardedFor := r.Header.Get("X-Forwarded-For"); forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
