package ranger

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/http/router"
	"github.com/xy-planning-network/wings/http/session"
	"github.com/xy-planning-network/wings/logger"
	"github.com/xy-planning-network/wings/report"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require components New configures by default,
// and thus an OptFollowup can be returned in order to be called once those are available.
//
// WithLogger is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithRoutes is an example of the second.
// Routes are registered on the *Ranger's router only when the closure it returns is called.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithContext sets the context.Context every request's context descends from.
// Guide stops when ctx is done.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context.Context", wings.ErrMissingData)
		}

		rng.ctx = ctx
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment.
//
// If env is not a valid wings.Environment, the ENVIRONMENT environment variable is read instead.
// If both fail, the default Environment is set to wings.Development.
func WithEnv(env string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		e := wings.Environment(env)
		if err := e.Valid(); err != nil {
			e = wings.EnvVarOrEnv(environmentEnvVar, wings.Development)
		}

		rng.env = e
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the wings app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.l = l
		return nil, nil
	}
}

// WithReporter sets where controllers report failures to.
//
// The default reporter logs failures through the wings app's logger.Logger.
func WithReporter(r report.Reporter) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.reporter = r
		return nil, nil
	}
}

// WithRouter exposes the *router.Router to the wings app in place of the default one.
//
// None of the default middlewares are applied to r.
func WithRouter(r *router.Router) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.Router = r
		return nil, nil
	}
}

// WithRoutes constructs a followup option that, when called,
// registers routes on the wings app's router.
func WithRoutes(routes ...router.Route) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		return func() error {
			rng.HandleRoutes(routes)
			return nil
		}, nil
	}
}

// WithServer exposes the *http.Server to the wings app.
// Its Handler is replaced by the wings app's router.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: nil *http.Server", wings.ErrMissingData)
		}

		rng.srv = s
		return nil, nil
	}
}

// WithSessionStore exposes the session.SessionStorer to the wings app.
func WithSessionStore(store session.SessionStorer) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.sessions = store
		return nil, nil
	}
}

// WithURL sets the base URL the wings app is served over.
// Unless WithServer is used, the server listens on its port.
func WithURL(u *url.URL) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if u == nil {
			return nil, fmt.Errorf("%w: nil *url.URL", wings.ErrMissingData)
		}

		rng.url = u
		return nil, nil
	}
}
