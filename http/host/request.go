package host

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
)

// defaultMaxMemory mirrors the limit net/http uses for *http.Request.FormValue.
const defaultMaxMemory = 32 << 20

var _ Request = (*HTTPRequest)(nil)

// HTTPRequest adapts an *http.Request into a Request.
//
// Parameters are the union of the URL query and a urlencoded or multipart body,
// parsed on first access.
// Only the first value submitted for a name is exposed.
type HTTPRequest struct {
	r        *http.Request
	attrs    Attributes
	parsed   bool
	parseErr error
}

// NewHTTPRequest constructs an *HTTPRequest for r.
//
// Attributes are shared with every other holder of the Attributes stashed in r's context.
// If none were stashed, the *HTTPRequest owns a fresh set.
func NewHTTPRequest(r *http.Request) *HTTPRequest {
	attrs, ok := AttributesFromContext(r.Context())
	if !ok {
		attrs = make(Attributes)
	}

	return &HTTPRequest{r: r, attrs: attrs}
}

// Body returns the raw request body.
// Once parameters have been read, a urlencoded or multipart body has already been consumed.
func (hr *HTTPRequest) Body() io.Reader { return hr.r.Body }

// HTTP returns the underlying *http.Request.
func (hr *HTTPRequest) HTTP() *http.Request { return hr.r }

// Param returns the first value submitted for name.
func (hr *HTTPRequest) Param(name string) (string, bool) {
	hr.parse()
	vals, ok := hr.r.Form[name]
	if !ok || len(vals) == 0 {
		return "", false
	}

	return vals[0], true
}

// ParamNames returns the sorted names of every submitted parameter.
func (hr *HTTPRequest) ParamNames() []string {
	hr.parse()
	names := make([]string, 0, len(hr.r.Form))
	for name := range hr.r.Form {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// ParseErr returns why the request's form could not be parsed, if it could not.
//
// Whatever parsed before the failure remains available through Param.
func (hr *HTTPRequest) ParseErr() error {
	hr.parse()
	return hr.parseErr
}

func (hr *HTTPRequest) Attribute(name string) (any, bool) { return hr.attrs.Get(name) }

func (hr *HTTPRequest) SetAttribute(name string, val any) { hr.attrs.Set(name, val) }

func (hr *HTTPRequest) URL() *url.URL { return hr.r.URL }

func (hr *HTTPRequest) parse() {
	if hr.parsed {
		return
	}

	hr.parsed = true
	err := hr.r.ParseMultipartForm(defaultMaxMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		hr.parseErr = fmt.Errorf("%w: %s", ErrParseForm, err)
	}

	if hr.r.Form == nil {
		hr.r.Form = make(url.Values)
	}
}
