package core

// Logger interface for raytracer logging.
// *logging.Logger from github.com/op/go-logging satisfies it.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Noticef(format string, args ...interface{})
}

// NopLogger discards every message
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...interface{})  {}
func (NopLogger) Infof(format string, args ...interface{})   {}
func (NopLogger) Noticef(format string, args ...interface{}) {}
