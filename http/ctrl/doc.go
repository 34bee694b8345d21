/*
Package ctrl provides the controller context: one [Context] per request,
wrapping that request, its response and its session.

Controllers read parameters, attributes and URL values through a [Context],
write their reply through it, and end the reply early with [*Context.Stop].

# Failing soft

Nothing a controller calls on a [Context] returns an error it must handle.
When the host cannot open the response's output or a URL parameter cannot be resolved,
the [Context] hands the error to its [report.Reporter] and returns "" or does nothing.
Callers wanting the error use the Lookup variants, e.g. [*Context.LookupURLParam].

# Isolation

A [Context] belongs to exactly one request.
Nothing is shared between two Contexts other than what their requests share,
so concurrent requests never observe each other's parameters, attributes or output.
A [Context] is not safe for use by more than one goroutine at a time.

# Usage

	router.Route{Path: "/greet", Method: http.MethodGet, Handler: func(c *ctrl.Context) {
		if c.Param("name") == "" {
			c.WriteString("who are you?")
			c.Stop()
			return
		}

		c.Printf("hello, %s", c.Param("name"))
	}}
*/
package ctrl
