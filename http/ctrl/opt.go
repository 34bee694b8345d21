package ctrl

import (
	"context"

	"github.com/xy-planning-network/wings/http/req"
	"github.com/xy-planning-network/wings/http/urlparam"
	"github.com/xy-planning-network/wings/report"
)

// An Option configures a *Context while New constructs it.
type Option func(*Context)

// WithContext sets the context.Context the request is handled under.
// Reports are made with it.
func WithContext(ctx context.Context) Option {
	return func(c *Context) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithParser sets the *req.Parser Decode and DecodeJSON use.
// Without one, the Context constructs its own on first use.
func WithParser(p *req.Parser) Option {
	return func(c *Context) { c.parser = p }
}

// WithReporter sets the Reporter failures are handed to.
func WithReporter(r report.Reporter) Option {
	return func(c *Context) {
		if r != nil {
			c.reporter = r
		}
	}
}

// WithURLResolver sets how URLParam resolves values.
func WithURLResolver(r urlparam.Resolver) Option {
	return func(c *Context) { c.urls = r }
}

// WithPathResolver sets how PathParam resolves values.
func WithPathResolver(r urlparam.Resolver) Option {
	return func(c *Context) { c.paths = r }
}
