package lignum

import (
	"fmt"
	"log"
	"os"
	"sync"
)

type Logger interface {
	DebugEnabled() bool
	SetDebug(enabled bool)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// DefaultLogger writes leveled lines to stdout, warnings and errors to
// stderr. The debug gate is mutex-guarded so UI callbacks can flip it
// while the viewer runs.
type DefaultLogger struct {
	mu    sync.Mutex
	debug bool
	tag   string
	info  *log.Logger
	alert *log.Logger
}

func NewDefaultLogger(prefix string, debug bool) *DefaultLogger {
	tag := ""
	if prefix != "" {
		tag = prefix + ": "
	}
	return &DefaultLogger{
		debug: debug,
		tag:   tag,
		info:  log.New(os.Stdout, "", log.LstdFlags),
		alert: log.New(os.Stderr, "", log.LstdFlags),
	}
}

func (l *DefaultLogger) DebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *DefaultLogger) SetDebug(enabled bool) {
	l.mu.Lock()
	l.debug = enabled
	l.mu.Unlock()
}

func (l *DefaultLogger) logf(dst *log.Logger, level, format string, args ...any) {
	dst.Printf("%-5s %s%s", level, l.tag, fmt.Sprintf(format, args...))
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	if !l.DebugEnabled() {
		return
	}
	l.logf(l.info, "debug", format, args...)
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.logf(l.info, "info", format, args...)
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.logf(l.alert, "warn", format, args...)
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.logf(l.alert, "error", format, args...)
}

// LoggingModule installs a default logger as a resource.
type LoggingModule struct {
	Prefix string
	Debug  bool
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewDefaultLogger(m.Prefix, m.Debug))
}

type nopLogger struct{}

func NewNopLogger() Logger { return &nopLogger{} }

func (n *nopLogger) DebugEnabled() bool                { return false }
func (n *nopLogger) SetDebug(enabled bool)             {}
func (n *nopLogger) Debugf(format string, args ...any) {}
func (n *nopLogger) Infof(format string, args ...any)  {}
func (n *nopLogger) Warnf(format string, args ...any)  {}
func (n *nopLogger) Errorf(format string, args ...any) {}
