/*
Package report funnels failures that must not interrupt a request into one place.

A [Reporter] accepts an error and records it somewhere: a log line, Sentry, a test's memory.
Reporting is fire-and-forget; callers never learn whether or how an error was recorded.
*/
package report
