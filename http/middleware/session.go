package middleware

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/http/session"
	"github.com/xy-planning-network/wings/report"
)

// InjectSession stores the session associated with the *http.Request in *http.Request.Context
// under wings.SessionKey.
//
// A session that cannot be retrieved is handed to reporter and the request continues without one.
//
// If store is nil, NoopAdapter returns and this middleware does nothing.
func InjectSession(store session.SessionStorer, reporter report.Reporter) Adapter {
	if store == nil {
		return NoopAdapter
	}

	if reporter == nil {
		reporter = report.Discard
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := store.GetSession(r)
			if err != nil {
				reporter.Report(r.Context(), err)
				h.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), wings.SessionKey, s)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
