package ranger

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/xy-planning-network/wings"
	"github.com/xy-planning-network/wings/http/middleware"
	"github.com/xy-planning-network/wings/http/router"
	"github.com/xy-planning-network/wings/http/session"
	"github.com/xy-planning-network/wings/logger"
	"github.com/xy-planning-network/wings/report"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// CORS defaults
	corsOriginEnvVar = "CORS_ORIGIN"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"
	defaultLogLvl  = logger.LogLevelInfo

	// Web server defaults
	DefaultHost               = "localhost"
	hostEnvVar                = "HOST"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Session defaults
	SessionAuthKeyEnvVar    = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar = "SESSION_ENCRYPTION_KEY"
	sessionNameEnvVar       = "SESSION_NAME"
	defaultSessionName      = "wings"
	redisURLEnvVar          = "REDIS_URL"
	redisPassEnvVar         = "REDIS_PASSWORD"
)

// setDefaults configures every component options left unset.
func (r *Ranger) setDefaults() error {
	if r.env == "" {
		r.env = wings.EnvVarOrEnv(environmentEnvVar, wings.Development)
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}
	base := r.ctx
	r.ctx, r.cancel = context.WithCancel(base)

	if r.url == nil {
		host := wings.EnvVarOrString(hostEnvVar, DefaultHost)
		port := wings.EnvVarOrString(portEnvVar, DefaultPort)
		r.url = wings.EnvVarOrURL(BaseURLEnvVar, "http://"+host+port)
		if r.url == nil {
			return fmt.Errorf("%w: %s is not a URL", wings.ErrNotValid, BaseURLEnvVar)
		}
	}

	if r.l == nil {
		r.l = defaultLogger(r.env)
	}

	if r.reporter == nil {
		r.reporter = report.NewLogReporter(r.l)
	}

	if r.sessions == nil {
		store, err := defaultSessionStore(r.env, r.l)
		if err != nil {
			return err
		}

		// NOTE: a nil Service would still be a non-nil SessionStorer
		if store != nil {
			r.sessions = store
		}
	}

	if r.Router == nil {
		r.Router = defaultRouter(r.env, r.l, r.reporter, r.sessions)
	}

	if r.srv == nil {
		port := r.url.Port()
		if port == "" {
			port = strings.TrimPrefix(wings.EnvVarOrString(portEnvVar, DefaultPort), ":")
		}

		r.srv = defaultServer(base, port)
	}

	return nil
}

// defaultLogger constructs a logger.Logger at the level LOG_LEVEL sets.
// When SENTRY_DSN is set, errors are shipped to Sentry as well.
func defaultLogger(env wings.Environment) logger.Logger {
	return logger.New(
		logger.WithEnv(env.String()),
		logger.WithLevel(envVarOrLogLevel(logLevelEnvVar, defaultLogLvl)),
	)
}

// defaultSessionStore constructs a session.Service from the SESSION_* env vars,
// backed by Redis when REDIS_URL is set and by cookies otherwise.
//
// Without SESSION_AUTH_KEY, there is no session store and requests carry no session.
func defaultSessionStore(env wings.Environment, l logger.Logger) (*session.Service, error) {
	ak := os.Getenv(SessionAuthKeyEnvVar)
	if ak == "" {
		l.Warn(fmt.Sprintf("%s not set, sessions are disabled", SessionAuthKeyEnvVar), nil)
		return nil, nil
	}

	cfg := session.Config{
		Env:         env,
		SessionName: wings.EnvVarOrString(sessionNameEnvVar, defaultSessionName),
		AuthKey:     ak,
		EncryptKey:  os.Getenv(SessionEncryptKeyEnvVar),
	}

	var opts []session.ServiceOpt
	if uri := os.Getenv(redisURLEnvVar); uri != "" {
		opts = append(opts, session.WithRedis(uri, os.Getenv(redisPassEnvVar)))
	}

	s, err := session.NewStoreService(cfg, opts...)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// defaultRouter constructs a *router.Router applying the default middleware stack to every request.
func defaultRouter(
	env wings.Environment,
	l logger.Logger,
	reporter report.Reporter,
	sessions session.SessionStorer,
) *router.Router {
	logReq := middleware.LogRequest(l)
	r := router.New(env, reporter, logReq)
	r.OnEveryRequest(
		middleware.ForceHTTPS(forceHTTPSEnv(env)),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		logReq,
		middleware.CORS(os.Getenv(corsOriginEnvVar)),
		middleware.InjectAttributes(),
		middleware.InjectSession(sessions, reporter),
	)

	return r
}

// forceHTTPSEnv only lets ForceHTTPS redirect in Production.
func forceHTTPSEnv(env wings.Environment) wings.Environment {
	if env.IsProduction() {
		return env
	}

	return wings.Development
}

// defaultServer constructs a *http.Server listening on port,
// with the SERVER_* env vars setting its timeouts.
//
// Every request's context descends from ctx, which shutting down the server does not cancel.
func defaultServer(ctx context.Context, port string) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		BaseContext:  func(net.Listener) context.Context { return ctx },
		ReadTimeout:  wings.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		IdleTimeout:  wings.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		WriteTimeout: wings.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
}

// envVarOrLogLevel gets the environment variable from the provided key,
// creates a logger.LogLevel from the retrieved value,
// or returns the provided default logger.LogLevel
// if the value is an unknown logger.LogLevel.
func envVarOrLogLevel(key string, def logger.LogLevel) logger.LogLevel {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	ll := logger.NewLogLevel(val)
	if ll == logger.LogLevelUnk {
		return def
	}

	return ll
}
