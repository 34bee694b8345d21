package urlparam

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

var (
	ErrMalformed = errors.New("malformed")
	ErrNotFound  = errors.New("not found")
)

// A ParamError records why the URL parameter Name could not be resolved.
type ParamError struct {
	Name string
	Err  error
}

func (e *ParamError) Error() string { return fmt.Sprintf("url param %q: %s", e.Name, e.Err) }

func (e *ParamError) Unwrap() error { return e.Err }

// A Resolver looks up a named value in the URL of the request it was built for.
type Resolver interface {
	Param(name string) (string, error)
}

// ResolverFunc adapts an ordinary function into a Resolver.
type ResolverFunc func(name string) (string, error)

func (fn ResolverFunc) Param(name string) (string, error) { return fn(name) }

// Query resolves values out of a URL's query string.
// The query string is parsed once, on first use.
type Query struct {
	u      *url.URL
	parsed bool
	vals   url.Values
	err    error
}

// NewQuery constructs a *Query over u.
func NewQuery(u *url.URL) *Query { return &Query{u: u} }

// Param returns the first value for name in the query string.
//
// A name set without a value resolves to "".
// If name is absent, Param returns a *ParamError wrapping ErrNotFound.
// If the query string cannot be parsed, Param returns a *ParamError wrapping ErrMalformed
// for every name.
func (q *Query) Param(name string) (string, error) {
	if !q.parsed {
		q.parsed = true
		if q.u != nil {
			q.vals, q.err = url.ParseQuery(q.u.RawQuery)
		}
	}

	if q.err != nil {
		return "", &ParamError{Name: name, Err: fmt.Errorf("%w: %s", ErrMalformed, q.err)}
	}

	vals, ok := q.vals[name]
	if !ok || len(vals) == 0 {
		return "", &ParamError{Name: name, Err: ErrNotFound}
	}

	return vals[0], nil
}

// Path resolves the route variables gorilla/mux matched for a request.
type Path struct {
	vars map[string]string
}

// NewPath constructs a *Path over the route variables set on r.
func NewPath(r *http.Request) *Path { return &Path{vars: mux.Vars(r)} }

// Param returns the route variable name.
// If the route has no such variable, Param returns a *ParamError wrapping ErrNotFound.
func (p *Path) Param(name string) (string, error) {
	val, ok := p.vars[name]
	if !ok {
		return "", &ParamError{Name: name, Err: ErrNotFound}
	}

	return val, nil
}
