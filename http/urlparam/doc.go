/*
Package urlparam resolves named values out of a request's URL.

[Query] reads the query string; [Path] reads the route variables gorilla/mux matched.
Both report failures as a [*ParamError] wrapping [ErrNotFound] or [ErrMalformed].
*/
package urlparam
