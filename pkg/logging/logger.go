package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// timeLayout is the timestamp prefix of every line.
const timeLayout = "15:04:05.000"

// Logger writes the program's own diagnostics. It never writes to the menu's
// output; by default everything is discarded.
type Logger struct {
	mu     sync.Mutex
	writer io.Writer
	debug  bool
	now    func() time.Time
}

// NewLogger creates a logger that discards its output until SetWriter is called.
func NewLogger() *Logger {
	return &Logger{
		writer: io.Discard,
		now:    time.Now,
	}
}

// Write implements io.Writer so the standard library logger can be pointed
// at it. Each call becomes one INFO line.
func (l *Logger) Write(p []byte) (n int, err error) {
	l.logf(LevelInfo, "%s", p)
	return len(p), nil
}

// SetWriter sets the output destination for the logger.
func (l *Logger) SetWriter(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writer = w
}

// SetDebug enables or disables debug-level logging.
func (l *Logger) SetDebug(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = enable
}

func (l *Logger) IsDebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *Logger) logf(level LogLevel, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level == LevelDebug && !l.debug {
		return
	}
	if l.writer == nil {
		return
	}

	message := strings.TrimRight(fmt.Sprintf(format, v...), "\n")
	fmt.Fprintf(l.writer, "%s %-5s %s\n", l.now().Format(timeLayout), level.String(), message)
}

// Infof logs a formatted informational message.
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf(LevelInfo, format, v...)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf(LevelWarn, format, v...)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf(LevelError, format, v...)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf(LevelDebug, format, v...)
}

// ---- Global / Default Logger ----

var defaultLogger = NewLogger()

// SetDefault replaces the default logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// Default returns the logger used by the package-level functions.
func Default() *Logger {
	return defaultLogger
}

// Infof logs a formatted informational message using the default logger.
func Infof(format string, v ...interface{}) {
	defaultLogger.Infof(format, v...)
}

// Warnf logs a formatted warning message using the default logger.
func Warnf(format string, v ...interface{}) {
	defaultLogger.Warnf(format, v...)
}

// Errorf logs a formatted error message using the default logger.
func Errorf(format string, v ...interface{}) {
	defaultLogger.Errorf(format, v...)
}

// Debugf logs a formatted debug message using the default logger.
func Debugf(format string, v ...interface{}) {
	defaultLogger.Debugf(format, v...)
}
