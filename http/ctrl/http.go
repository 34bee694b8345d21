package ctrl

import (
	"context"
	"net/http"

	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/http/host"
	"github.com/xy-planning-network/wings/http/session"
	"github.com/xy-planning-network/wings/http/urlparam"
)

// A HandlerFunc handles one request through its Context.
type HandlerFunc func(c *Context)

// FromHTTP builds a Context for the request r being answered through w.
//
// URL parameters resolve from r.URL's query string and path parameters from gorilla/mux route variables.
// opts are applied after those defaults and can override them.
func FromHTTP(w http.ResponseWriter, r *http.Request, s session.Sessionable, opts ...Option) *Context {
	ctx := context.WithValue(r.Context(), wings.HTTPRequestKey, r)
	defaults := []Option{
		WithContext(ctx),
		WithURLResolver(urlparam.NewQuery(r.URL)),
		WithPathResolver(urlparam.NewPath(r)),
	}

	return New(host.NewHTTPRequest(r), host.NewHTTPResponse(w), s, append(defaults, opts...)...)
}

// Handle adapts fn into an http.Handler.
//
// Each request gets a fresh Context, bound to the session stashed in the request's context
// under wings.SessionKey, if any.
// Once fn returns, whatever it wrote and did not Stop is flushed.
func Handle(fn HandlerFunc, opts ...Option) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, _ := r.Context().Value(wings.SessionKey).(session.Sessionable)
		c := FromHTTP(w, r, s, opts...)
		c.ctx = NewContext(c.ctx, c)

		fn(c)

		if c.out != nil && !c.stopped {
			c.Flush()
		}
	})
}

// NewContext stashes c in ctx, returning the resulting context.
func NewContext(ctx context.Context, c *Context) context.Context {
	return context.WithValue(ctx, wings.ControllerKey, c)
}

// FromContext retrieves the Context stashed in ctx.
func FromContext(ctx context.Context) (*Context, bool) {
	c, ok := ctx.Value(wings.ControllerKey).(*Context)
	return c, ok && c != nil
}
