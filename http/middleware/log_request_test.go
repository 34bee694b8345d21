package middleware_test

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/http/middleware"
	"github.com/xy-planning-network/wings/logger"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	color.NoColor = true
	tcs := []struct {
		name     string
		method   string
		target   string
		ip       string
		expected string
	}{
		{"Zero-Value", http.MethodGet, "/", "", "GET /"},
		{"With-IP", http.MethodPost, "/", "1.1.1.1", "1.1.1.1 POST /"},
		{"With-Query-Params", http.MethodPut, "/hitting/the/wings?param=true", "", "PUT /hitting/the/wings?param=true"},
		{
			"With-Query-Params-Hid",
			http.MethodGet,
			"/?param=true&password=hunter2",
			"",
			"GET /?param=true&password=" + wings.LogMaskVal,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.NewWingsLogger(logger.WithLogger(log.New(b, "", 0)), logger.WithLevel(logger.LogLevelInfo))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, nil)
			r = r.Clone(context.WithValue(r.Context(), wings.RequestIDKey, "test-id"))
			if tc.ip != "" {
				r = r.Clone(context.WithValue(r.Context(), wings.IpAddrKey, tc.ip))
			}

			// Act
			middleware.LogRequest(l)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				wx.WriteHeader(http.StatusTeapot)
				fmt.Fprint(wx, "test")
			})).ServeHTTP(w, r)

			// Assert
			require.Contains(t, b.String(), tc.expected)
			require.Contains(t, b.String(), `"status":418`)
			require.Contains(t, b.String(), `"size":4`)
			require.Contains(t, b.String(), `"requestId":"test-id"`)
			require.NotContains(t, b.String(), "hunter2")
		})
	}
}
