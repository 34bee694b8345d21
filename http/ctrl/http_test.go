package ctrl_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/http/ctrl"
	"github.com/xy-planning-network/wings/http/host"
	"github.com/xy-planning-network/wings/http/session"
	"github.com/xy-planning-network/wings/report"
)

func TestFromHTTPBodyParams(t *testing.T) {
	// Arrange
	form := url.Values{"user": {"bob"}}
	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	rec := new(report.Recorder)

	// Act
	c := ctrl.FromHTTP(w, r, nil, ctrl.WithReporter(rec))

	// Assert
	require.Equal(t, "bob", c.Param("user"))
	require.Equal(t, map[string]string{"user": "bob"}, c.Params())
	require.Zero(t, rec.Len())
}

func TestFromHTTPURLParam(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/?id=42&name=Alice", nil)
	rec := new(report.Recorder)
	c := ctrl.FromHTTP(httptest.NewRecorder(), r, nil, ctrl.WithReporter(rec))

	// Act + Assert
	require.Equal(t, "42", c.URLParam("id"))
	require.Equal(t, "Alice", c.URLParam("name"))
	require.Zero(t, rec.Len())

	require.Equal(t, "", c.URLParam("missing"))
	require.Equal(t, 1, rec.Len())
}

func TestFromHTTPPathParam(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	r = mux.SetURLVars(r, map[string]string{"id": "7"})
	rec := new(report.Recorder)
	c := ctrl.FromHTTP(httptest.NewRecorder(), r, nil, ctrl.WithReporter(rec))

	// Act + Assert
	require.Equal(t, "7", c.PathParam("id"))
	require.Equal(t, "", c.PathParam("slug"))
	require.Equal(t, 1, rec.Len())
}

func TestFromHTTPParseError(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodPost, "/?page=2", strings.NewReader("user=%zz"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := new(report.Recorder)
	c := ctrl.FromHTTP(httptest.NewRecorder(), r, nil, ctrl.WithReporter(rec))

	// Act
	_, ok := c.LookupParam("user")
	c.Params()
	c.Param("page")

	// Assert
	require.False(t, ok)
	require.Equal(t, 1, rec.Len())
	require.ErrorIs(t, rec.Errs()[0], host.ErrParseForm)
}

func TestFromHTTPContext(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	// Act
	c := ctrl.FromHTTP(httptest.NewRecorder(), r, nil)

	// Assert
	actual, ok := c.Context().Value(wings.HTTPRequestKey).(*http.Request)
	require.True(t, ok)
	require.Equal(t, r, actual)
}

func TestFromHTTPStop(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := new(report.Recorder)
	c := ctrl.FromHTTP(w, r, nil, ctrl.WithReporter(rec))

	c.WriteString("access ")
	c.Printf("denied: %s", "no session")
	require.Empty(t, w.Body.String())

	// Act
	c.Stop()

	// Assert
	require.Equal(t, "access denied: no session", w.Body.String())
	require.True(t, w.Flushed)

	// Act
	_, err := c.WriteString("!")

	// Assert
	require.ErrorIs(t, err, host.ErrClosed)
	require.Equal(t, "access denied: no session", w.Body.String())
	require.Equal(t, 1, rec.Len())
}

func TestHandle(t *testing.T) {
	// Arrange
	var got *ctrl.Context
	h := ctrl.Handle(func(c *ctrl.Context) {
		var ok bool
		got, ok = ctrl.FromContext(c.Context())
		require.True(t, ok)

		c.Printf("hello, %s", c.URLParam("name"))
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/?name=Alice", nil)

	// Act
	h.ServeHTTP(w, r)

	// Assert
	require.NotNil(t, got)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "hello, Alice", w.Body.String())
}

func TestHandleSession(t *testing.T) {
	// Arrange
	stub := session.NewStub(map[any]any{"user": "bob"})
	s, err := stub.GetSession(nil)
	require.Nil(t, err)

	h := ctrl.Handle(func(c *ctrl.Context) {
		require.NotNil(t, c.Session())
		c.WriteString(c.Session().Get("user").(string))
	})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(context.WithValue(r.Context(), wings.SessionKey, s))

	// Act
	h.ServeHTTP(w, r)

	// Assert
	require.Equal(t, "bob", w.Body.String())
}

func TestHandleStopped(t *testing.T) {
	// Arrange
	rec := new(report.Recorder)
	h := ctrl.Handle(func(c *ctrl.Context) {
		c.WriteString("done")
		c.Stop()
	}, ctrl.WithReporter(rec))

	w := httptest.NewRecorder()

	// Act
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	// Assert
	require.Equal(t, "done", w.Body.String())
	require.Zero(t, rec.Len())
}

func TestHandleConcurrentIsolation(t *testing.T) {
	// Arrange
	rec := new(report.Recorder)
	h := ctrl.Handle(func(c *ctrl.Context) {
		id := c.URLParam("id")
		c.SetAttribute("id", id)
		c.WriteString(c.Attribute("id").(string))
		c.Stop()
	}, ctrl.WithReporter(rec))

	srv := httptest.NewServer(h)
	defer srv.Close()

	const n = 20
	var wg sync.WaitGroup
	got := make([]string, n)
	errs := make([]error, n)

	// Act
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := http.Get(fmt.Sprintf("%s/?id=%d", srv.URL, i))
			if err != nil {
				errs[i] = err
				return
			}
			defer res.Body.Close()

			b, err := io.ReadAll(res.Body)
			errs[i] = err
			got[i] = string(b)
		}(i)
	}
	wg.Wait()

	// Assert
	for i := 0; i < n; i++ {
		require.Nil(t, errs[i])
		require.Equal(t, fmt.Sprint(i), got[i])
	}
	require.Zero(t, rec.Len())
}
