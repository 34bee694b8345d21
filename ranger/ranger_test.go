package ranger_test

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/http/ctrl"
	"github.com/xy-planning-network/wings/http/router"
	"github.com/xy-planning-network/wings/http/session"
	"github.com/xy-planning-network/wings/logger"
	"github.com/xy-planning-network/wings/ranger"
	"github.com/xy-planning-network/wings/report"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"BASE_URL",
		"CORS_ORIGIN",
		"ENVIRONMENT",
		"HOST",
		"LOG_LEVEL",
		"PORT",
		"REDIS_URL",
		"SENTRY_DSN",
		"SESSION_AUTH_KEY",
		"SESSION_ENCRYPTION_KEY",
		"SESSION_NAME",
	} {
		t.Setenv(key, "")
	}
}

func testLogger(b *bytes.Buffer) logger.Logger {
	return logger.NewWingsLogger(logger.WithLogger(log.New(b, "", 0)))
}

func TestNewDefaults(t *testing.T) {
	// Arrange
	clearEnv(t)
	b := new(bytes.Buffer)

	// Act
	rng, err := ranger.New(ranger.WithLogger(testLogger(b)))

	// Assert
	require.Nil(t, err)
	require.Equal(t, wings.Development, rng.EmitEnv())
	require.Equal(t, "http://localhost:3000", rng.EmitURL().String())
	require.Equal(t, ":3000", rng.EmitServer().Addr)
	require.Equal(t, ranger.DefaultServerReadTimeout, rng.EmitServer().ReadTimeout)
	require.NotNil(t, rng.EmitReporter())
	require.Nil(t, rng.EmitSessionStore())
	require.Contains(t, b.String(), "sessions are disabled")
}

func TestNewFromEnv(t *testing.T) {
	// Arrange
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "testing")
	t.Setenv("BASE_URL", "https://example.com:8443")
	t.Setenv("SERVER_READ_TIMEOUT", "1s")
	t.Setenv("SESSION_AUTH_KEY", "0123456789abcdef0123456789abcdef")
	t.Setenv("SESSION_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")

	// Act
	rng, err := ranger.New(ranger.WithLogger(testLogger(new(bytes.Buffer))))

	// Assert
	require.Nil(t, err)
	require.Equal(t, wings.Testing, rng.EmitEnv())
	require.Equal(t, ":8443", rng.EmitServer().Addr)
	require.Equal(t, "1s", rng.EmitServer().ReadTimeout.String())
	require.IsType(t, new(session.Service), rng.EmitSessionStore())
}

func TestNewBadSessionKey(t *testing.T) {
	// Arrange
	clearEnv(t)
	t.Setenv("SESSION_AUTH_KEY", "not-hex")

	// Act
	rng, err := ranger.New(ranger.WithLogger(testLogger(new(bytes.Buffer))))

	// Assert
	require.Nil(t, rng)
	require.ErrorIs(t, err, wings.ErrBadConfig)
}

func TestNewOptions(t *testing.T) {
	// Arrange
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "STAGING")
	rec := new(report.Recorder)
	srv := &http.Server{Addr: ":4000"}
	u, _ := url.Parse("https://wings.example.com")
	store := session.NewStub(nil)

	tcs := []struct {
		name string
		opt  ranger.RangerOption
	}{
		{"Nil-Context", ranger.WithContext(nil)},
		{"Nil-Server", ranger.WithServer(nil)},
		{"Nil-URL", ranger.WithURL(nil)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			_, err := ranger.New(tc.opt)

			// Assert
			require.ErrorIs(t, err, wings.ErrBadConfig)
			require.ErrorIs(t, err, wings.ErrMissingData)
		})
	}

	// Act
	rng, err := ranger.New(
		ranger.WithEnv("NOT-AN-ENV"),
		ranger.WithLogger(testLogger(new(bytes.Buffer))),
		ranger.WithReporter(rec),
		ranger.WithServer(srv),
		ranger.WithSessionStore(store),
		ranger.WithURL(u),
	)

	// Assert
	require.Nil(t, err)
	require.Equal(t, wings.Staging, rng.EmitEnv())
	require.Equal(t, rec, rng.EmitReporter())
	require.Equal(t, srv, rng.EmitServer())
	require.Equal(t, rng.Router, srv.Handler)
	require.Equal(t, store, rng.EmitSessionStore())
	require.Equal(t, u, rng.EmitURL())
}

func TestRangerServesControllers(t *testing.T) {
	// Arrange
	clearEnv(t)
	rec := new(report.Recorder)
	store := session.NewStub(map[any]any{"user": "bob"})
	b := new(bytes.Buffer)

	rng, err := ranger.New(
		ranger.WithEnv("TESTING"),
		ranger.WithLogger(testLogger(b)),
		ranger.WithReporter(rec),
		ranger.WithSessionStore(store),
		ranger.WithRoutes(router.Route{
			Path:   "/greet/{greeting}",
			Method: http.MethodGet,
			Handler: func(c *ctrl.Context) {
				c.SetAttribute("user", c.Session().Get("user"))
				c.Printf("%s, %s", c.PathParam("greeting"), c.Attribute("user"))
				c.URLParam("missing")
			},
		}),
	)
	require.Nil(t, err)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/greet/hello?password=hunter2", nil)
	r.Header.Set("X-Forwarded-For", "1.1.1.1")

	// Act
	rng.ServeHTTP(w, r)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "hello, bob", w.Body.String())

	_, err = uuid.Parse(w.Header().Get("X-Request-Id"))
	require.Nil(t, err)

	require.Equal(t, 1, rec.Len())
	require.Contains(t, b.String(), "1.1.1.1 GET /greet/hello?password="+wings.LogMaskVal)
	require.NotContains(t, b.String(), "hunter2")
}

func TestRangerPrivateClientsNotThrottled(t *testing.T) {
	// Arrange
	clearEnv(t)
	rng, err := ranger.New(
		ranger.WithEnv("TESTING"),
		ranger.WithLogger(testLogger(new(bytes.Buffer))),
		ranger.WithRoutes(router.Route{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: func(c *ctrl.Context) { c.WriteString("ok") },
		}),
	)
	require.Nil(t, err)

	// Act
	codes := make(map[int]int)
	for i := 0; i < 40; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = fmt.Sprintf("10.0.%d.%d:1234", i/250, i%250+1)
		rng.ServeHTTP(w, r)
		codes[w.Code]++
	}

	// Assert
	require.Equal(t, map[int]int{http.StatusOK: 40}, codes)
}
