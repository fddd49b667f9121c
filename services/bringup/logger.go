package bringup

// Logger receives one line per bring-up event. Level is "info", "warn" or "err".
type Logger interface {
	Log(level, msg string)
}

type consoleLogger struct{}

func (consoleLogger) Log(level, msg string) { println("[bringup]", level+":", msg) }

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(level, msg string)

func (f LoggerFunc) Log(level, msg string) { f(level, msg) }
