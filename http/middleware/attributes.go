package middleware

import (
	"net/http"

	"github.com/xy-planning-network/wings/http/host"
)

// InjectAttributes stashes a fresh, empty set of host.Attributes in *http.Request.Context.
//
// Every controller context built further down the chain for the request shares this one set;
// no other request can see it.
func InjectAttributes() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := host.NewAttributesContext(r.Context(), make(host.Attributes))
			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}
