/*
Package host describes what a controller context needs from the server handling a request,
and adapts net/http to it.

A [Request] exposes client-submitted parameters and a request-scoped attribute store.
A [Response] opens a buffered text [Output] back to the client.
[HTTPRequest] and [HTTPResponse] satisfy both over *http.Request and http.ResponseWriter;
tests may substitute in-memory fakes.
*/
package host
