package renderer

// Logger receives progress messages during long renders. log.Logger
// satisfies it.
type Logger interface {
	Printf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// NopLogger discards all progress messages.
var NopLogger Logger = nopLogger{}
