/*
Package router routes HTTP requests to wings controllers.

A [*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path and an HTTP method comprise a [Route].
A [ctrl.HandlerFunc] is the function called when a request matches a Route;
it receives a [*ctrl.Context] built for that request alone.
Before a request gets to a controller, though,
any middlewares added to the Route are called in the order they appear.

Route paths may declare gorilla/mux variables, e.g. "/users/{id}",
which controllers read with [ctrl.Context.PathParam].

It is often the case that many routes for a web server share identical middleware stacks.
[Router.OnEveryRequest] and [Router.HandleRoutes] make a single call register
many logically associated Routes.
*/
package router
