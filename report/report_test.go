package report_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/logger"
	"github.com/xy-planning-network/wings/report"
)

func TestLogReporter(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.NewWingsLogger(logger.WithLogger(log.New(b, "", 0)))
	r := httptest.NewRequest(http.MethodGet, "https://example.com/path?id=1", nil)
	ctx := context.WithValue(context.Background(), wings.RequestIDKey, "req-1")
	ctx = context.WithValue(ctx, wings.HTTPRequestKey, r)

	lr := report.NewLogReporter(l)

	// Act
	lr.Report(ctx, errors.New("boom"))

	// Assert
	require.Contains(t, b.String(), "[ERROR]")
	require.Contains(t, b.String(), "'boom'")
	require.Contains(t, b.String(), `"requestId":"req-1"`)
	require.Contains(t, b.String(), `"url":"https://example.com/path?id=1"`)

	// Arrange
	b.Reset()

	// Act
	lr.Report(context.Background(), nil)
	lr.Report(context.Background(), errors.New("no ctx"))

	// Assert
	require.Contains(t, b.String(), "'no ctx'")
	require.NotContains(t, b.String(), "requestId")
}

func TestMulti(t *testing.T) {
	// Arrange
	var first, second report.Recorder
	var order []string
	m := report.Multi(
		&first,
		nil,
		report.ReporterFunc(func(context.Context, error) { order = append(order, "func") }),
		&second,
	)

	// Act
	m.Report(context.Background(), errors.New("oops"))

	// Assert
	require.Equal(t, 1, first.Len())
	require.Equal(t, 1, second.Len())
	require.Equal(t, []string{"func"}, order)
}

func TestRecorder(t *testing.T) {
	// Arrange
	var rec report.Recorder
	var wg sync.WaitGroup
	sentinel := errors.New("sentinel")

	// Act
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Report(context.Background(), sentinel)
		}()
	}
	wg.Wait()

	// Assert
	require.Equal(t, 50, rec.Len())
	errs := rec.Errs()
	require.Len(t, errs, 50)
	require.ErrorIs(t, errs[0], sentinel)

	errs[0] = nil
	require.NotNil(t, rec.Errs()[0])
}

func TestDiscard(t *testing.T) {
	require.NotPanics(t, func() { report.Discard.Report(context.Background(), errors.New("gone")) })
}
