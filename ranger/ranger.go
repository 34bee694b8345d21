package ranger

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/http/router"
	"github.com/xy-planning-network/wings/http/session"
	"github.com/xy-planning-network/wings/logger"
	"github.com/xy-planning-network/wings/report"
)

const shutdownTimeout = 5 * time.Second

// A Ranger manages and exposes all components of a wings app to one another.
type Ranger struct {
	*router.Router

	ctx      context.Context
	cancel   context.CancelFunc
	env      wings.Environment
	l        logger.Logger
	reporter report.Reporter
	sessions session.SessionStorer
	srv      *http.Server
	url      *url.URL

	stopOnce sync.Once
	stopErr  error
}

// New constructs a Ranger from the provided options.
// Options run first; every component they leave unset is then configured with its default,
// in dependency order: environment, base URL, logger, reporter, session store, router, server.
// Followups returned by options run last.
func New(opts ...RangerOption) (*Ranger, error) {
	r := new(Ranger)
	followups := make([]OptFollowup, 0)

	for _, opt := range opts {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", wings.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if err := r.setDefaults(); err != nil {
		return nil, fmt.Errorf("%w: %w", wings.ErrBadConfig, err)
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %w", wings.ErrBadConfig, err)
		}
	}

	r.srv.Handler = r.Router
	return r, nil
}

func (r *Ranger) EmitEnv() wings.Environment              { return r.env }
func (r *Ranger) EmitLogger() logger.Logger               { return r.l }
func (r *Ranger) EmitReporter() report.Reporter           { return r.reporter }
func (r *Ranger) EmitServer() *http.Server                { return r.srv }
func (r *Ranger) EmitSessionStore() session.SessionStorer { return r.sessions }
func (r *Ranger) EmitURL() *url.URL                       { return r.url }

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (r *Ranger) Guide() error {
	ln, err := net.Listen("tcp", r.srv.Addr)
	if err != nil {
		return fmt.Errorf("could not listen: %w", err)
	}

	return r.serve(ln)
}

// serve runs the web server on ln until a signal arrives or Shutdown is called.
func (r *Ranger) serve(ln net.Listener) error {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", ln.Addr()), nil)
		if err := r.srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not serve: %w", err)
			return
		}

		errCh <- nil
	}()

	select {
	case err := <-errCh:
		r.cancel()
		return err
	case <-r.ctx.Done():
		return r.Shutdown()
	}
}

// Shutdown gracefully shuts down the web server, waiting on in-flight requests for up to 5 seconds.
// Calling Shutdown again returns the result of the first call.
func (r *Ranger) Shutdown() error {
	r.stopOnce.Do(func() {
		r.cancel()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		r.l.Info("shutting down web server", nil)
		if err := r.srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			r.stopErr = fmt.Errorf("could not shutdown: %w", err)
			return
		}

		r.l.Info("web server shutdown successfully", nil)
	})

	return r.stopErr
}
