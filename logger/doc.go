/*
Package logger provides logging functionality to a wings app by defining the required behavior in [Logger]
and providing an implementation of it with [WingsLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, if [WingsLogger] is initialized with [LogLevelWarn],
only [*WingsLogger.Warn], [*WingsLogger.Error], and [*WingsLogger.Fatal] produce messages.

# WingsLogger

Log messages emitted by [WingsLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2024/04/28 15:55:21 [ERROR] wings/report/log.go:43 'url param "id": not found' log_context: {"error":"...","requestId":"..."}

# SentryLogger

When SENTRY_DSN is set, [New] wraps the [WingsLogger] in a [SentryLogger].
Errors attached to a [LogContext] logged at warn level or above are then shipped to Sentry.
*/
package logger
