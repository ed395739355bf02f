package log

import (
	"io"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
)

type Logger struct {
	*log.Entry
	traced string
}

var (
	level     log.Level = log.WarnLevel
	output    io.Writer = os.Stderr
	tracePath string
	loggers   = make(map[string]*Logger)
	mu        sync.Mutex
)

// NewLogger returns the logger of module, creating it on first use. Level,
// output and tracer set so far are applied to it.
func NewLogger(module string) *Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger, ok := loggers[module]; ok {
		return logger
	}

	base := log.New()

	base.SetFormatter(&log.TextFormatter{
		DisableColors:    false,
		DisableTimestamp: false,
	})

	base.SetOutput(output)
	base.SetLevel(level)

	logger := &Logger{Entry: base.WithFields(
		log.Fields{
			"name": module,
		})}
	logger.trace(tracePath)
	loggers[module] = logger
	return logger
}

// trace points the file tracer of l at path. An empty path removes it.
func (l *Logger) trace(path string) {
	if l.traced == path {
		return
	}
	l.Logger.ReplaceHooks(make(log.LevelHooks))
	if path != "" {
		AddTracer(l.Logger, path)
	}
	l.traced = path
}

// SetLevel parses name ("debug", "warn", ...) and applies it to every
// logger created so far and to the ones created later.
func SetLevel(name string) error {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	level = lvl
	for _, l := range loggers {
		l.Logger.SetLevel(lvl)
	}
	return nil
}

// SetOutput redirects every logger.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	for _, l := range loggers {
		l.Logger.SetOutput(w)
	}
}

// SetTracer sends every logger, present and future, to the file tracer at
// path. Setting the same path again is a no-op; "" turns tracing off.
func SetTracer(path string) {
	mu.Lock()
	defer mu.Unlock()
	tracePath = path
	for _, l := range loggers {
		l.trace(path)
	}
}
