package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/wings"
)

const requestIDHeader = "X-Request-Id"

// RequestID stashes a uuid in *http.Request.Context under wings.RequestIDKey
// and echoes it back in the "X-Request-Id" response header.
//
// A well-formed UUID sent by the client in that header is reused.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)
			ctx := context.WithValue(r.Context(), wings.RequestIDKey, id)
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
