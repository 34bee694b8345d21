package middleware

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/wings"
)

// ForceHTTPS redirects HTTP requests to HTTPS unless env is wings.Development.
//
// The "X-Forwarded-Proto" header is trusted, so apps behind a TLS-terminating proxy are not redirected.
func ForceHTTPS(env wings.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				handler.ServeHTTP(w, r)
				return
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}
