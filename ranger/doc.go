/*
Package ranger initializes and manages a wings app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New].
Every component not configured through a [RangerOption] gets a default.

The default router builds a fresh controller context for each request
and applies these middlewares to every request, in order:
ForceHTTPS (in PRODUCTION only), RequestID, InjectIPAddress, LogRequest,
CORS (when CORS_ORIGIN is set), InjectAttributes, InjectSession.

Rate limiting is opt-in:

	rng.OnEveryRequest(middleware.RateLimit(middleware.NewVisitors()))

[*Ranger.Guide] begins a wings app's web server.
By default, [*Ranger.Guide] listens on the port of BASE_URL, or [DefaultPort].

Upon calling [*Ranger.Guide], all routes configured up to that point are now active.
Stop that web server with [*Ranger.Shutdown]
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a wings app through environment variables and [RangerOption]s.

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_URL: the base URL the application runs on; replaces HOST & PORT
  - CORS_ORIGIN: the one origin allowed to make cross-origin requests
  - ENVIRONMENT: the environment the application is running in; cf. [wings.Environment]
  - HOST: the host the application is running on; default: localhost
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - REDIS_URL: the address of a Redis server to store sessions in; default: sessions are stored in cookies
  - REDIS_PASSWORD: the password for authenticating to REDIS_URL
  - SENTRY_DSN: the Sentry project errors are shipped to
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; without it, sessions are disabled; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]
  - SESSION_NAME: the name sessions are stored under; default: wings
*/
package ranger
