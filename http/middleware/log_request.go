package middleware

import (
	"net/http"
	"strings"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/logger"
)

// LogRequest logs the request's originating IP address, method, requested URL,
// response status, and duration using the enclosed implementation of logger.Logger.
//
// LogRequest scrubs the values for the following keys:
// - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)

			lc := &logger.LogContext{
				Data: map[string]any{
					"duration": m.Duration.String(),
					"size":     m.Written,
					"status":   m.Code,
				},
			}
			if id, ok := r.Context().Value(wings.RequestIDKey).(string); ok {
				lc.RequestID = id
			}

			ls.Info(requestLine(r), lc)
		})
	}
}

// requestLine formats r as "[ip] METHOD uri", masking sensitive query values.
func requestLine(r *http.Request) string {
	uri := r.URL.Path
	q := r.URL.Query()
	wings.Mask(q, "password")
	if query := q.Encode(); query != "" {
		uri += "?" + query
	}

	strs := []string{r.Method, uri}
	if ip, ok := r.Context().Value(wings.IpAddrKey).(string); ok && ip != "" {
		strs = append([]string{ip}, strs...)
	}

	return strings.Join(strs, " ")
}
