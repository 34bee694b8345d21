package host

import (
	"bufio"
	"net/http"
)

var _ Response = (*HTTPResponse)(nil)

// HTTPResponse adapts an http.ResponseWriter into a Response.
type HTTPResponse struct {
	w   http.ResponseWriter
	out *output
}

func NewHTTPResponse(w http.ResponseWriter) *HTTPResponse { return &HTTPResponse{w: w} }

// HTTP returns the underlying http.ResponseWriter.
func (hr *HTTPResponse) HTTP() http.ResponseWriter { return hr.w }

// Output opens the buffered text channel to the client.
// Once opened, Output returns the same channel until it is closed.
//
// Output returns ErrNoResponse if there is no http.ResponseWriter to write to
// and ErrClosed if the channel was already closed.
func (hr *HTTPResponse) Output() (Output, error) {
	if hr.w == nil {
		return nil, ErrNoResponse
	}

	if hr.out != nil {
		if hr.out.closed {
			return nil, ErrClosed
		}

		return hr.out, nil
	}

	hr.out = &output{w: hr.w, bw: bufio.NewWriter(hr.w)}
	return hr.out, nil
}

type output struct {
	w      http.ResponseWriter
	bw     *bufio.Writer
	closed bool
}

func (o *output) Write(p []byte) (int, error) {
	if o.closed {
		return 0, ErrClosed
	}

	return o.bw.Write(p)
}

func (o *output) WriteString(s string) (int, error) {
	if o.closed {
		return 0, ErrClosed
	}

	return o.bw.WriteString(s)
}

// Flush pushes buffered bytes to the client.
func (o *output) Flush() error {
	if o.closed {
		return ErrClosed
	}

	if err := o.bw.Flush(); err != nil {
		return err
	}

	if f, ok := o.w.(http.Flusher); ok {
		f.Flush()
	}

	return nil
}

// Close flushes and then rejects any further use.
func (o *output) Close() error {
	if o.closed {
		return ErrClosed
	}

	err := o.Flush()
	o.closed = true
	return err
}
