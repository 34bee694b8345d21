package router

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/http/ctrl"
	"github.com/xy-planning-network/wings/http/middleware"
	"github.com/xy-planning-network/wings/http/req"
	"github.com/xy-planning-network/wings/report"
)

// assetsMaxAge is 30 days.
const assetsMaxAge = "max-age=2592000"

// A Route maps a path and HTTP method to a [ctrl.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// A Route without a Method matches every method.
type Route struct {
	Path        string
	Method      string
	Handler     ctrl.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests to the controllers handling them,
// building a fresh [*ctrl.Context] for each one.
type Router struct {
	Env           wings.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	parser        *req.Parser
	reporter      report.Reporter
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
//
// Controllers report failures to reporter.
// logReq logs requests for assets; add it to OnEveryRequest to log requests for controllers too.
// Either may be nil.
func New(env wings.Environment, reporter report.Reporter, logReq middleware.Adapter) *Router {
	if reporter == nil {
		reporter = report.Discard
	}

	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	return &Router{
		Env:      env,
		logReq:   logReq,
		parser:   req.NewParser(),
		reporter: reporter,
		r:        mux.NewRouter(),
	}
}

// CatchAll funnels every request not matching an already registered Route to fn,
// for e.g. maintenance mode.
func (r *Router) CatchAll(fn ctrl.HandlerFunc) {
	r.r.PathPrefix("/").Handler(middleware.Chain(r.controller(fn), r.everyReqStack...))
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleAssets serves files in fsys to requests for paths starting with prefix.
// Responses are marked cacheable for 30 days.
func (r *Router) HandleAssets(prefix string, fsys fs.FS) {
	r.r.PathPrefix(prefix).Handler(middleware.Chain(
		http.StripPrefix(prefix, http.FileServer(http.FS(fsys))),
		r.logReq,
		cacheControl(assetsMaxAge),
	))
}

// HandleNotFound sets fn as the controller for when no other registered Route is matched.
// The middlewares added through OnEveryRequest so far are applied.
func (r *Router) HandleNotFound(fn ctrl.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(r.controller(fn), r.everyReqStack...)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares))
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)

		rt := r.r.Handle(route.Path, middleware.Chain(r.controller(route.Handler), mws...))
		if route.Method != "" {
			rt.Methods(route.Method)
		}
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(prefix string) *Router {
	stack := make([]middleware.Adapter, len(r.everyReqStack))
	copy(stack, r.everyReqStack)

	return &Router{
		Env:           r.Env,
		everyReqStack: stack,
		logReq:        r.logReq,
		parser:        r.parser,
		reporter:      r.reporter,
		r:             r.r.PathPrefix(prefix).Subrouter(),
	}
}

// controller adapts fn into an http.Handler recovering and reporting panics.
// Every controller shares the Router's *req.Parser.
func (r *Router) controller(fn ctrl.HandlerFunc) http.Handler {
	return middleware.ReportPanic(r.Env)(ctrl.Handle(fn, ctrl.WithParser(r.parser), ctrl.WithReporter(r.reporter)))
}

// cacheControl sets the "Cache-Control" header on the response to val.
func cacheControl(val string) middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", val)
			handler.ServeHTTP(w, r)
		})
	}
}
