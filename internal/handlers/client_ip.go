package handlers

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the caller's address: Fastly-Client-IP, then the first
// X-Forwarded-For hop, then X-Appengine-User-Ip, then the connection peer.
func ClientIP(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("Fastly-Client-IP")); ip != "" {
		return ip
	}
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Appengine-User-Ip")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
