package host

import (
	"errors"
	"io"
	"net/url"
)

var (
	ErrClosed     = errors.New("output closed")
	ErrNoResponse = errors.New("no response")
	ErrParseForm  = errors.New("cannot parse form")
)

// A Request is the part of an incoming request a controller reads from and annotates.
type Request interface {
	// Param returns the first value submitted for name and whether any was.
	Param(name string) (string, bool)

	// ParamNames returns the names of every submitted parameter.
	ParamNames() []string

	// Attribute returns the value stored under name for the lifetime of the request.
	Attribute(name string) (any, bool)

	// SetAttribute stores val under name, replacing any prior value.
	SetAttribute(name string, val any)

	// URL is the requested URL.
	URL() *url.URL
}

// A Response opens the channel a controller writes its reply through.
type Response interface {
	Output() (Output, error)
}

// An Output is a buffered text channel to the client.
//
// Writing to, flushing or closing an Output after Close returns ErrClosed.
type Output interface {
	io.Writer
	io.StringWriter
	Flush() error
	Close() error
}
