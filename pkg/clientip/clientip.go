package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// headers are checked in order before falling back to RemoteAddr.
var headers = []string{"CF-Connecting-IP", "X-Real-IP"}

// GetIP returns the client address of r. Proxy headers are trusted, so the
// service must run behind a proxy that overwrites them.
// X-Forwarded-For wins over the single-value headers; its first valid entry is used.
func GetIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for candidate := range strings.SplitSeq(forwarded, ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	for _, h := range headers {
		if ip := parseIP(r.Header.Get(h)); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return addr.Unmap().String()
}
