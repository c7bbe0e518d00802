package httpapi

import (
	"net"
	"net/http"
	"strings"
)

// Proxy headers are checked before the socket address. The first parseable
// value wins.
var (
	clientIPHeaders      = []string{"Fly-Client-IP", "X-Forwarded-For", "X-Real-IP"}
	clientCountryHeaders = []string{"Fly-Client-Country", "CF-IPCountry", "X-Vercel-IP-Country", "CloudFront-Viewer-Country"}
)

const unknownCountry = "ZZ"

type clientOrigin struct {
	IP      string
	Country string
}

func resolveClientOrigin(r *http.Request) clientOrigin {
	origin := clientOrigin{Country: unknownCountry}
	for _, header := range clientIPHeaders {
		if ip := parseClientIP(r.Header.Get(header)); ip != "" {
			origin.IP = ip
			break
		}
	}
	if origin.IP == "" {
		origin.IP = parseClientIP(r.RemoteAddr)
	}
	for _, header := range clientCountryHeaders {
		if code := parseCountryCode(r.Header.Get(header)); code != "" {
			origin.Country = code
			break
		}
	}
	return origin
}

// parseClientIP accepts a bare address, host:port, or a forwarded chain
// where the left-most entry is the client.
func parseClientIP(raw string) string {
	value, _, _ := strings.Cut(raw, ",")
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(value); err == nil {
		value = host
	}
	ip := net.ParseIP(value)
	if ip == nil {
		return ""
	}
	return ip.String()
}

func parseCountryCode(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return ""
	}
	return code
}
