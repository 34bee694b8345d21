package ctrl

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/http/host"
	"github.com/xy-planning-network/wings/http/req"
	"github.com/xy-planning-network/wings/http/session"
	"github.com/xy-planning-network/wings/http/urlparam"
	"github.com/xy-planning-network/wings/report"
)

// A Context is the request-scoped surface controllers use to read a request and reply to it.
type Context struct {
	ctx  context.Context
	req  host.Request
	res  host.Response
	sess session.Sessionable

	// out is nil when the response's output could not be opened.
	out     host.Output
	stopped bool
	parsed  bool

	parser   *req.Parser
	reporter report.Reporter
	urls     urlparam.Resolver
	paths    urlparam.Resolver
}

// New binds r, res and s into a Context and opens res's output.
//
// If the output cannot be opened, New reports why and the Context is still usable;
// writes through it and Stop then report host.ErrClosed instead.
//
// Unless configured through an Option, URL parameters resolve from r.URL()
// and path parameters never resolve.
func New(r host.Request, res host.Response, s session.Sessionable, opts ...Option) *Context {
	c := &Context{
		ctx:      context.Background(),
		req:      r,
		res:      res,
		sess:     s,
		reporter: report.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.urls == nil {
		c.urls = urlparam.NewQuery(r.URL())
	}

	if c.paths == nil {
		c.paths = urlparam.ResolverFunc(func(name string) (string, error) {
			return "", &urlparam.ParamError{Name: name, Err: urlparam.ErrNotFound}
		})
	}

	if res == nil {
		c.report(fmt.Errorf("%w: cannot open output", host.ErrNoResponse))
		return c
	}

	out, err := res.Output()
	if err != nil {
		c.report(fmt.Errorf("cannot open output: %w", err))
		return c
	}

	c.out = out
	return c
}

// Context returns the context.Context of the request the Context was built for.
func (c *Context) Context() context.Context { return c.ctx }

// Request returns the host request.
func (c *Context) Request() host.Request { return c.req }

// Response returns the host response.
func (c *Context) Response() host.Response { return c.res }

// Session returns the session bound to the request, which may be nil.
func (c *Context) Session() session.Sessionable { return c.sess }

// Param returns the value the client submitted for name, or "" if none was.
func (c *Context) Param(name string) string {
	val, _ := c.LookupParam(name)
	return val
}

// LookupParam returns the value the client submitted for name and whether one was.
func (c *Context) LookupParam(name string) (string, bool) {
	c.checkParse()
	return c.req.Param(name)
}

// Params snapshots every submitted parameter into a new map.
// Later changes to the request's parameters are not reflected in the map.
func (c *Context) Params() map[string]string {
	c.checkParse()
	names := c.req.ParamNames()
	params := make(map[string]string, len(names))
	for _, name := range names {
		params[name], _ = c.req.Param(name)
	}

	return params
}

// Decode binds the submitted parameters onto the fields of structPtr named by their "schema" tags,
// then checks the rules in their "validate" tags.
//
// Decode returns a req.ValidationErrors when the parameters do not fit structPtr.
// Binding errors are returned, not reported.
// A failure parsing the request's form is still reported, once, as with Params.
func (c *Context) Decode(structPtr any) error {
	params := c.Params()
	vals := make(url.Values, len(params))
	for name, val := range params {
		vals.Set(name, val)
	}

	return c.reqParser().ParseParams(vals, structPtr)
}

// DecodeJSON binds the JSON request body onto structPtr, then checks the rules in its "validate" tags.
//
// DecodeJSON reads the whole body; it can be called once.
// DecodeJSON does not report errors.
func (c *Context) DecodeJSON(structPtr any) error {
	b, ok := c.req.(bodier)
	if !ok {
		return fmt.Errorf("%w: %T has no body", wings.ErrNotImplemented, c.req)
	}

	return c.reqParser().ParseBody(b.Body(), structPtr)
}

// Attribute returns the value stored under name for this request, or nil if none was.
func (c *Context) Attribute(name string) any {
	val, _ := c.LookupAttribute(name)
	return val
}

// LookupAttribute returns the value stored under name for this request and whether one was.
func (c *Context) LookupAttribute(name string) (any, bool) {
	return c.req.Attribute(name)
}

// SetAttribute stores val under name for the rest of this request, replacing any prior value.
// Every holder of the same request sees it.
func (c *Context) SetAttribute(name string, val any) {
	c.req.SetAttribute(name, val)
}

// URLParam returns the value of name in the URL's query string.
//
// If name cannot be resolved, URLParam reports why and returns "".
func (c *Context) URLParam(name string) string {
	val, err := c.LookupURLParam(name)
	if err != nil {
		c.report(err)
		return ""
	}

	return val
}

// LookupURLParam returns the value of name in the URL's query string
// or a *urlparam.ParamError explaining why there is none.
// LookupURLParam does not report the error.
func (c *Context) LookupURLParam(name string) (string, error) {
	return c.urls.Param(name)
}

// PathParam returns the route variable name.
//
// If name cannot be resolved, PathParam reports why and returns "".
func (c *Context) PathParam(name string) string {
	val, err := c.LookupPathParam(name)
	if err != nil {
		c.report(err)
		return ""
	}

	return val
}

// LookupPathParam returns the route variable name
// or a *urlparam.ParamError explaining why there is none.
// LookupPathParam does not report the error.
func (c *Context) LookupPathParam(name string) (string, error) {
	return c.paths.Param(name)
}

// Write writes p to the client through the buffered output.
// Write reports and returns any error writing.
func (c *Context) Write(p []byte) (int, error) {
	if c.out == nil {
		return 0, c.report(host.ErrClosed)
	}

	n, err := c.out.Write(p)
	if err != nil {
		return n, c.report(fmt.Errorf("cannot write: %w", err))
	}

	return n, nil
}

// WriteString writes s to the client through the buffered output.
// WriteString reports and returns any error writing.
func (c *Context) WriteString(s string) (int, error) {
	if c.out == nil {
		return 0, c.report(host.ErrClosed)
	}

	n, err := c.out.WriteString(s)
	if err != nil {
		return n, c.report(fmt.Errorf("cannot write: %w", err))
	}

	return n, nil
}

// Printf formats according to format and writes the result to the client.
func (c *Context) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c, format, args...)
}

// Flush sends everything written so far to the client without ending the reply.
func (c *Context) Flush() {
	if c.out == nil {
		c.report(host.ErrClosed)
		return
	}

	if err := c.out.Flush(); err != nil {
		c.report(fmt.Errorf("cannot flush: %w", err))
	}
}

// Stop flushes everything written so far to the client and closes the output.
// Nothing more can be written for this request.
//
// Calling Stop more than once, or writing after Stop, is a programming error:
// the output rejects it with host.ErrClosed, which is reported.
func (c *Context) Stop() {
	if c.out == nil {
		c.report(host.ErrClosed)
		return
	}

	c.stopped = true
	if err := c.out.Close(); err != nil {
		c.report(fmt.Errorf("cannot stop: %w", err))
	}
}

// Stopped asserts whether Stop has been called.
func (c *Context) Stopped() bool { return c.stopped }

// bodier is implemented by host requests exposing their raw body, like *host.HTTPRequest.
type bodier interface {
	Body() io.Reader
}

func (c *Context) reqParser() *req.Parser {
	if c.parser == nil {
		c.parser = req.NewParser()
	}

	return c.parser
}

// parseErrer is implemented by host requests that parse parameters lazily
// and can fail doing so, like *host.HTTPRequest.
type parseErrer interface {
	ParseErr() error
}

// checkParse reports, once, why the request's parameters could not be fully parsed.
func (c *Context) checkParse() {
	if c.parsed {
		return
	}

	c.parsed = true
	if pe, ok := c.req.(parseErrer); ok {
		if err := pe.ParseErr(); err != nil {
			c.report(err)
		}
	}
}

// report hands err to the Reporter, returning err.
func (c *Context) report(err error) error {
	c.reporter.Report(c.ctx, err)
	return err
}
