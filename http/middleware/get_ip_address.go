package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/xy-planning-network/wings"
)

// unknownIP is returned when no public address can be found for a request.
const unknownIP = "0.0.0.0"

// sharedAddrSpace is the carrier-grade NAT range net.IP.IsPrivate does not cover.
var sharedAddrSpace = &net.IPNet{IP: net.IPv4(100, 64, 0, 0), Mask: net.CIDRMask(10, 32)}

// InjectIPAddress promotes the address found by GetIPAddress to *http.Request.Context
// under wings.IpAddrKey.
func InjectIPAddress() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), wings.IpAddrKey, GetIPAddress(r))
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// GetIPAddress finds the public address r originated from.
//
// The "X-Forwarded-For" and "X-Real-Ip" headers are walked from right to left,
// so the address right before our proxy wins.
// Without a public address in either, the host of r.RemoteAddr is used if it is public.
func GetIPAddress(r *http.Request) string {
	for _, h := range []string{"X-Forwarded-For", "X-Real-Ip"} {
		addrs := strings.Split(r.Header.Get(h), ",")
		for i := len(addrs) - 1; i >= 0; i-- {
			if ip := strings.TrimSpace(addrs[i]); isPublic(ip) {
				return ip
			}
		}
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && isPublic(host) {
		return host
	}

	return unknownIP
}

func isPublic(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil || !ip.IsGlobalUnicast() || ip.IsPrivate() {
		return false
	}

	return !sharedAddrSpace.Contains(ip)
}
