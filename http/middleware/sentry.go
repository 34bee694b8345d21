package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/wings"
)

// ReportPanic recovers panics raised further down the chain and ships them to Sentry,
// replying with a 500.
//
// In wings.Development, panics are left alone so they surface in the terminal.
func ReportPanic(env wings.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: !env.IsTesting(),
	})

	return func(h http.Handler) http.Handler {
		return sh.Handle(recoverer(h))
	}
}

// recoverer answers with a 500 after the sentryhttp handler has captured a panic.
func recoverer(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				panic(err)
			}
		}()

		h.ServeHTTP(w, r)
	})
}
