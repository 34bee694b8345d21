/*
The middleware package defines what a middleware is in wings and a set of basic middlewares.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectAttributes
- InjectIPAddress
- InjectSession
- LogRequest
- RateLimit
- ReportPanic
- RequestID

Due to the amount of configuration required, middleware does not provide a default middleware chain.
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.InjectAttributes(),
		middleware.InjectSession(sessionStore, reporter),
	}

InjectAttributes must run before any controller context is built for the request,
otherwise each context owns attributes no one else can see.
*/
package middleware
