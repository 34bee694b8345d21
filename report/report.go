package report

import (
	"context"
	"net/http"
	"sync"

	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/logger"
)

// A Reporter records an error encountered while handling a request.
type Reporter interface {
	Report(ctx context.Context, err error)
}

// ReporterFunc adapts an ordinary function into a Reporter.
type ReporterFunc func(ctx context.Context, err error)

func (fn ReporterFunc) Report(ctx context.Context, err error) { fn(ctx, err) }

// Discard drops every error.
var Discard Reporter = ReporterFunc(func(context.Context, error) {})

type multi []Reporter

// Multi constructs a Reporter handing each error to every non-nil Reporter in rs, in order.
func Multi(rs ...Reporter) Reporter {
	m := make(multi, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			m = append(m, r)
		}
	}

	return m
}

func (m multi) Report(ctx context.Context, err error) {
	for _, r := range m {
		r.Report(ctx, err)
	}
}

// LogReporter reports errors by logging them at error level.
type LogReporter struct {
	l logger.Logger
}

const logReporterFrames = 1

// NewLogReporter constructs a *LogReporter logging through l.
func NewLogReporter(l logger.Logger) *LogReporter {
	if sl, ok := l.(logger.SkipLogger); ok {
		l = sl.AddSkip(sl.Skip() + logReporterFrames)
	}

	return &LogReporter{l: l}
}

// Report logs err, attaching the request ID and *http.Request found in ctx, if any.
// A nil err is not reported.
func (lr *LogReporter) Report(ctx context.Context, err error) {
	if err == nil {
		return
	}

	lc := &logger.LogContext{Error: err}
	if ctx != nil {
		if id, ok := ctx.Value(wings.RequestIDKey).(string); ok {
			lc.RequestID = id
		}

		if r, ok := ctx.Value(wings.HTTPRequestKey).(*http.Request); ok {
			lc.Request = r
		}
	}

	lr.l.Error(err.Error(), lc)
}

// A Recorder keeps every reported error in memory.
// It is safe for concurrent use.
type Recorder struct {
	mu   sync.Mutex
	errs []error
}

func (r *Recorder) Report(_ context.Context, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// Errs returns a copy of the errors reported so far.
func (r *Recorder) Errs() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

// Len returns the number of errors reported so far.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.errs)
}
