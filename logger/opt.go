package logger

import "log"

// A LoggerOptFn is a functional option configuring a WingsLogger when constructing a new one.
type LoggerOptFn func(*WingsLogger)

// WithEnv sets the environment WingsLogger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(l *WingsLogger) {
		l.env = env
	}
}

// WithLevel sets the log level WingsLogger uses.
func WithLevel(level LogLevel) LoggerOptFn {
	return func(l *WingsLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger WingsLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *WingsLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *WingsLogger) {
		l.skip = skip
	}
}
